package constants

// Session
const (
	SessionCookieName = "life_session"
	ContextKeyUserID  = "user_id"
)

// Auth
const (
	MinPasswordLength = 8
)

// Track levels form a closed range; level 1 is the onboarding default.
const (
	MinTrackLevel     = 1
	MaxTrackLevel     = 4
	DefaultTrackLevel = 1
)
