package service

import "github.com/google/uuid"

// NewID returns a time-ordered unique identifier. UUIDv7 keeps ids roughly
// monotonic; on the unlikely generation failure a random v4 is used instead.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
