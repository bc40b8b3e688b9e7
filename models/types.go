package models

import "time"

// MoodLevel is an ordinal mood rating from 1 (worst) to 5 (best).
type MoodLevel int

// Mood level constants
const (
	MoodVerySad   MoodLevel = 1
	MoodSad       MoodLevel = 2
	MoodNeutral   MoodLevel = 3
	MoodHappy     MoodLevel = 4
	MoodVeryHappy MoodLevel = 5
)

// Valid reports whether the level is within the 1-5 scale.
func (l MoodLevel) Valid() bool {
	return l >= MoodVerySad && l <= MoodVeryHappy
}

// Request types

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateMoodRequest struct {
	Level MoodLevel `json:"level"`
	Note  string    `json:"note"`
}

type UpdateMoodRequest struct {
	Level MoodLevel `json:"level"`
	Note  string    `json:"note"`
}

// Response types

type AuthResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type TodayResponse struct {
	Entry     MoodEntry `json:"entry"`
	LoggedAgo string    `json:"logged_ago"`
}

type MoodListResponse struct {
	Moods []MoodEntry `json:"moods"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	DisplayName  string    `json:"display_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// MoodEntry is one logged mood for one calendar day. Date is a normalized
// "YYYY-MM-DD" key; for a given user at most one entry exists per date.
type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MoodLevel MoodLevel `json:"mood_level"`
	Note      string    `json:"note,omitempty"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// MoodOption maps a mood level to its display metadata. Tag is a symbolic
// name for the glyph; the presentation layer decides what to draw for it.
type MoodOption struct {
	Level MoodLevel `json:"level"`
	Label string    `json:"label"`
	Color string    `json:"color"`
	Tag   string    `json:"tag"`
}

// MoodOptions is the static lookup table for the five mood levels,
// ordered best to worst.
var MoodOptions = []MoodOption{
	{Level: MoodVeryHappy, Label: "Very Happy", Color: "#00C853", Tag: "laugh"},
	{Level: MoodHappy, Label: "Happy", Color: "#64DD17", Tag: "smile"},
	{Level: MoodNeutral, Label: "Neutral", Color: "#FFC107", Tag: "meh"},
	{Level: MoodSad, Label: "Sad", Color: "#FF9800", Tag: "frown"},
	{Level: MoodVerySad, Label: "Very Sad", Color: "#F44336", Tag: "angry"},
}

// OptionForLevel returns the option row for a level, or false when the
// level is off the scale.
func OptionForLevel(level MoodLevel) (MoodOption, bool) {
	for _, opt := range MoodOptions {
		if opt.Level == level {
			return opt, true
		}
	}
	return MoodOption{}, false
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
