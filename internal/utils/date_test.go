package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-03-01")
	require.NoError(t, err)
	require.Equal(t, 2024, day.Year())
	require.Equal(t, time.March, day.Month())
	require.Equal(t, 1, day.Day())

	for _, invalid := range []string{"", "01/03/2024", "2024-3-1", "2024-03-01T00:00:00Z", "not-a-date"} {
		_, err := ParseDay(invalid)
		require.Error(t, err, "expected %q to be rejected", invalid)
	}
}

func TestDaysRemainingInYear(t *testing.T) {
	jan1 := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 364, DaysRemainingInYear(jan1))

	dec31 := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 0, DaysRemainingInYear(dec31))
}
