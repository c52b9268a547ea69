package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		answers map[string]any
		want    int
	}{
		{
			name:    "sedentary fitness recommends level 1",
			answers: map[string]any{"fitness": "Sedentary", "finance": "Stable"},
			want:    1,
		},
		{
			name:    "debt finance recommends level 1",
			answers: map[string]any{"fitness": "Active", "finance": "Debt"},
			want:    1,
		},
		{
			name:    "both gates hit still recommends level 1",
			answers: map[string]any{"fitness": "Sedentary", "finance": "Debt"},
			want:    1,
		},
		{
			name:    "active and stable recommends level 2",
			answers: map[string]any{"fitness": "Active", "finance": "Stable"},
			want:    2,
		},
		{
			name:    "empty answers default to level 2",
			answers: map[string]any{},
			want:    2,
		},
		{
			name: "other questions do not affect the result",
			answers: map[string]any{
				"fitness": "Active",
				"finance": "Stable",
				"sleep":   "Terrible",
				"mind":    "Chaotic",
			},
			want: 2,
		},
		{
			name: "unrelated questions cannot trigger level 1",
			answers: map[string]any{
				"sleep": "Sedentary",
				"mood":  "Debt",
			},
			want: 2,
		},
		{
			name:    "non-string answer values are ignored",
			answers: map[string]any{"fitness": 1, "finance": true},
			want:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Evaluate(tt.answers))

			// Deterministic: repeated evaluation of the same answers
			// yields the same level.
			require.Equal(t, tt.want, Evaluate(tt.answers))
		})
	}
}
