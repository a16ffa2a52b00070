package store

import (
	"fmt"

	"github.com/study2skills/study2skills/models"
)

// Storage layout: one key for the whole serialized user collection, one key
// for the current session snapshot, and one key per (userID, kind) pair of
// per-user data.
const (
	usersKey   = "study2skills_users"
	sessionKey = "study2skills_session"
)

func userDataKey(userID string, kind models.DataKind) string {
	return fmt.Sprintf("data_%s_%s", userID, kind)
}
