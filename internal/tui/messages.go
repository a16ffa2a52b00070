package tui

import (
	"github.com/study2skills/study2skills/models"
)

// NavigateTo switches the router to another page. An optional Payload is
// re-emitted as a message for the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload interface{}
}

// LoginResult finishes the authentication flow. Guest sessions arrive
// through the same message with Guest set.
type LoginResult struct {
	Err   error
	User  models.UserProfile
	Guest bool
}

// RegisterResult reports the outcome of an account creation attempt.
type RegisterResult struct {
	Err  error
	User models.UserProfile
}

// RegisterSuccessNotice is passed back to the menu page after a successful
// registration.
type RegisterSuccessNotice struct {
	Email string
}

type leaderboardLoadedMsg struct {
	users []models.UserProfile
}

type statsLoadedMsg struct {
	stats models.AdminStats
}

type usersLoadedMsg struct {
	users []models.UserProfile
}

type toggleDoneMsg struct {
	err   error
	email string
}

type profileSavedMsg struct {
	err  error
	user models.UserProfile
}

type jobsRefreshMsg struct{}

type copiedMsg struct{}

type clearStatusMsg struct{}
