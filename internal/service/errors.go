package service

import "errors"

// Domain error taxonomy. Service operations surface these to the UI layer
// rather than swallowing them; match with [errors.Is].
var (
	// ErrDuplicateUser is returned when registration collides with an
	// existing email.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials is returned when login matches no account or
	// the password is rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled is returned when login is blocked by admin action.
	ErrAccountDisabled = errors.New("account has been disabled by administrator")

	// ErrInvalidProfile is returned when a registration profile fails
	// validation.
	ErrInvalidProfile = errors.New("invalid profile data")

	// ErrNegativeXP is returned when an XP award carries a negative amount.
	ErrNegativeXP = errors.New("xp amount must be non-negative")

	// ErrAdminImmutable is returned when a status toggle targets an
	// admin-role account. The service refuses this regardless of what the
	// UI allows; the boundary is enforced here, not only at the caller.
	ErrAdminImmutable = errors.New("admin accounts cannot be disabled")

	// ErrGuestReadOnly is returned when a mutation is attempted for a guest
	// session's profile.
	ErrGuestReadOnly = errors.New("guest sessions cannot be persisted")
)
