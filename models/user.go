package models

import "math"

// Role classifies what a signed-in account is allowed to do.
type Role string

const (
	// RoleStudent is the default role assigned at registration.
	RoleStudent Role = "student"

	// RoleAdmin grants access to moderation operations and aggregate stats.
	RoleAdmin Role = "admin"

	// RoleGuest marks an ephemeral demo session. Guest profiles are never
	// persisted to the user collection and must be treated as read-mostly
	// by consumers.
	RoleGuest Role = "guest"
)

// Status controls whether an account may start a session.
type Status string

const (
	// StatusActive allows login. Assigned to every account at registration.
	StatusActive Status = "active"

	// StatusDisabled blocks login. Only admin moderation flips this value.
	StatusDisabled Status = "disabled"
)

// XPPerLevelUnit is the divisor of the level curve: a user's level is
// floor(sqrt(xp/XPPerLevelUnit)) + 1.
const XPPerLevelUnit = 50

// UserProfile is a registered (or guest) account together with its public
// profile attributes and gamification state. The whole collection of profiles
// is persisted as one blob; a denormalized copy of one profile doubles as the
// session record.
type UserProfile struct {
	// ID is the opaque unique identifier assigned at creation. Immutable.
	ID string `json:"id"`

	// Email is the natural key of the collection. Used for lookups and login.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password. Empty for
	// guest profiles and for accounts imported from builds that predate
	// hashing. It travels with the record through the local blob store;
	// nothing here ever leaves the machine.
	PasswordHash string `json:"passwordHash,omitempty"`

	Name          string   `json:"name"`
	University    string   `json:"university"`
	Year          string   `json:"year"`
	Domain        string   `json:"domain"`
	Bio           string   `json:"bio"`
	Skills        []string `json:"skills"`
	ContactMethod string   `json:"contactMethod,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	AvatarURL     string   `json:"avatarUrl,omitempty"`

	// Role is derived from the email at registration and re-asserted at
	// every login.
	Role Role `json:"role"`

	// Status defaults to active; mutated only through admin operations.
	Status Status `json:"status"`

	Gamification Gamification `json:"gamification"`
}

// IsDisabled reports whether the account is blocked from starting sessions.
func (u UserProfile) IsDisabled() bool {
	return u.Status == StatusDisabled
}

// IsGuest reports whether the profile belongs to an ephemeral demo session.
func (u UserProfile) IsGuest() bool {
	return u.Role == RoleGuest
}

// Gamification is the engagement state embedded in every profile.
// Level is never stored independently of XP: every XP mutation recomputes it
// via LevelForXP.
type Gamification struct {
	// XP is the accumulated experience. Non-negative, monotonically
	// non-decreasing under normal play.
	XP int `json:"xp"`

	// Level is a pure function of XP; see LevelForXP.
	Level int `json:"level"`

	// Badges is the set of earned badges, unique by name.
	Badges []Badge `json:"badges"`

	// StreakDays counts consecutive days with recorded activity.
	StreakDays int `json:"streakDays"`

	// LastActiveDate is the calendar day (YYYY-MM-DD) of the most recent
	// streak touch. Empty for profiles that never recorded activity.
	LastActiveDate string `json:"lastActiveDate,omitempty"`

	// StudyHoursTotal is the lifetime sum of logged study hours.
	StudyHoursTotal float64 `json:"studyHoursTotal"`
}

// HasBadge reports whether a badge with the given name was already earned.
func (g Gamification) HasBadge(name string) bool {
	for _, b := range g.Badges {
		if b.Name == name {
			return true
		}
	}
	return false
}

// Badge is an earned achievement. Immutable once granted.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	DateEarned  string `json:"dateEarned"`
}

// LevelForXP maps accumulated XP to a level. Level 1 starts at 0 XP and the
// curve grows quadratically: level N requires (N-1)^2 * XPPerLevelUnit XP.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return int(math.Floor(math.Sqrt(float64(xp)/XPPerLevelUnit))) + 1
}
