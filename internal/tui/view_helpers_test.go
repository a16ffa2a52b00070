package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/study2skills/study2skills/models"
)

func TestRenderPage_DataAndHotkeys(t *testing.T) {
	out := renderPage("LEADERBOARD", "row one", "r: refresh")

	assert.Contains(t, out, "LEADERBOARD")
	assert.Contains(t, out, "row one")
	assert.Contains(t, out, "r: refresh")
	assert.Contains(t, out, "ctrl+c: quit")
}

func TestRenderPage_EmptyDataShowsDash(t *testing.T) {
	out := renderPage("JOBS", "  \n", "")

	assert.Contains(t, out, "-")
	assert.Contains(t, out, "ctrl+c: quit")
}

func TestMainLoop_AdminViewListsLoadedUsers(t *testing.T) {
	m := mainLoopModel{screen: screenAdmin, statsReady: true}

	updated, _ := m.Update(usersLoadedMsg{users: []models.UserProfile{
		{Email: "student@mail.com", Role: models.RoleStudent, Status: models.StatusActive},
		{Email: "blocked@mail.com", Role: models.RoleStudent, Status: models.StatusDisabled},
	}})

	out := updated.View()
	assert.Contains(t, out, "student@mail.com")
	assert.Contains(t, out, "blocked@mail.com")
	assert.Contains(t, out, string(models.StatusDisabled))
}

func TestRenderBuildInfoWindow_FillsMissingFields(t *testing.T) {
	out := renderBuildInfoWindow(models.AppBuildInfo{})

	assert.Contains(t, out, "ABOUT")
	assert.Contains(t, out, "N/A")
}
