package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/study2skills/study2skills/internal/service"
	"github.com/study2skills/study2skills/models"
)

type mainScreen int

const (
	screenDashboard mainScreen = iota
	screenLeaderboard
	screenJobs
	screenJobsAdd
	screenProfile
	screenProfileEdit
	screenAdmin
	screenAdminToggle
)

const jobsRefreshEvery = 500 * time.Millisecond

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.UserProfile

	screen mainScreen
	status string
	errMsg string

	board      []models.UserProfile
	stats      models.AdminStats
	statsReady bool
	adminUsers []models.UserProfile

	jobs    []models.JobApplication
	jobsIdx int

	addInputs []textinput.Model
	addFocus  int

	editInputs []textinput.Model
	editFocus  int
	editSaving bool

	toggleInput  textinput.Model
	toggleSaving bool

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.UserProfile) mainLoopModel {
	toggle := textinput.New()
	toggle.Placeholder = "email"
	toggle.CharLimit = 254
	toggle.Width = 40

	return mainLoopModel{
		ctx:         ctx,
		services:    services,
		user:        user,
		screen:      screenDashboard,
		toggleInput: toggle,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case leaderboardLoadedMsg:
		m.board = msg.users
		return m, nil
	case statsLoadedMsg:
		m.stats = msg.stats
		m.statsReady = true
		return m, nil
	case usersLoadedMsg:
		m.adminUsers = msg.users
		return m, nil
	case toggleDoneMsg:
		m.toggleSaving = false
		if msg.err != nil {
			m.errMsg = humanizeServiceError(msg.err)
			return m, nil
		}
		m.status = "Status toggled for " + msg.email
		m.errMsg = ""
		m.statsReady = false
		m.screen = screenAdmin
		return m, tea.Batch(m.cmdLoadStats(), m.cmdLoadUsers(), m.cmdClearStatus())
	case profileSavedMsg:
		m.editSaving = false
		if msg.err != nil {
			m.errMsg = humanizeServiceError(msg.err)
			return m, nil
		}
		m.user = msg.user
		m.status = "Profile saved"
		m.errMsg = ""
		m.screen = screenProfile
		return m, m.cmdClearStatus()
	case jobsRefreshMsg:
		m.jobs = m.services.Jobs.Snapshot()
		if m.jobsIdx >= len(m.jobs) {
			m.jobsIdx = len(m.jobs) - 1
		}
		if m.jobsIdx < 0 {
			m.jobsIdx = 0
		}
		if m.screen == screenJobs && m.services.Jobs.Running() {
			return m, m.cmdJobsRefresh()
		}
		return m, nil
	case copiedMsg:
		m.status = "Cover letter copied to clipboard"
		return m, m.cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenDashboard:
		return m.updateDashboard(keyMsg)
	case screenLeaderboard:
		return m.updateLeaderboard(keyMsg)
	case screenJobs:
		return m.updateJobs(keyMsg)
	case screenJobsAdd:
		return m.updateJobsAdd(msg, keyMsg)
	case screenProfile:
		return m.updateProfile(keyMsg)
	case screenProfileEdit:
		return m.updateProfileEdit(msg, keyMsg)
	case screenAdmin:
		return m.updateAdmin(keyMsg)
	case screenAdminToggle:
		return m.updateAdminToggle(msg, keyMsg)
	}
	return m, nil
}

func (m mainLoopModel) updateDashboard(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "o":
		m.logout = true
		return m, tea.Quit
	case "b":
		m.screen = screenLeaderboard
		return m, m.cmdLoadLeaderboard()
	case "a":
		m.screen = screenJobs
		m.jobs = m.services.Jobs.Snapshot()
		if m.services.Jobs.Running() {
			return m, m.cmdJobsRefresh()
		}
		return m, nil
	case "p":
		m.screen = screenProfile
		return m, nil
	case "m":
		if m.user.Role == models.RoleAdmin {
			m.screen = screenAdmin
			return m, tea.Batch(m.cmdLoadStats(), m.cmdLoadUsers())
		}
	}
	return m, nil
}

func (m mainLoopModel) updateLeaderboard(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.screen = screenDashboard
	case "r":
		return m, m.cmdLoadLeaderboard()
	}
	return m, nil
}

func (m mainLoopModel) updateJobs(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.screen = screenDashboard
		return m, nil
	case "up", "k":
		if m.jobsIdx > 0 {
			m.jobsIdx--
		}
		return m, nil
	case "down", "j":
		if m.jobsIdx < len(m.jobs)-1 {
			m.jobsIdx++
		}
		return m, nil
	case "n":
		m.screen = screenJobsAdd
		m.addInputs = newJobInputs()
		m.addFocus = 0
		return m, textinput.Blink
	case "s":
		if m.user.IsGuest() {
			m.errMsg = "Guest sessions cannot run automation"
			return m, nil
		}
		if m.services.Jobs.Running() {
			m.services.Jobs.Stop()
			m.status = "Automation paused"
			m.jobs = m.services.Jobs.Snapshot()
			return m, m.cmdClearStatus()
		}
		m.services.Jobs.Start(m.ctx)
		m.status = "Automation running"
		return m, tea.Batch(m.cmdJobsRefresh(), m.cmdClearStatus())
	case "c":
		if len(m.jobs) == 0 {
			return m, nil
		}
		letter := m.jobs[m.jobsIdx].CoverLetter
		if strings.TrimSpace(letter) == "" {
			m.errMsg = "No cover letter generated yet"
			return m, nil
		}
		m.errMsg = ""
		return m, cmdCopyToClipboard(letter)
	case "r":
		m.jobs = m.services.Jobs.Snapshot()
		return m, nil
	}
	return m, nil
}

func (m mainLoopModel) updateJobsAdd(msg tea.Msg, keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.screen = screenJobs
		return m, nil
	case "tab":
		m.addInputs[m.addFocus].Blur()
		m.addFocus = (m.addFocus + 1) % len(m.addInputs)
		m.addInputs[m.addFocus].Focus()
		return m, nil
	case "shift+tab":
		m.addInputs[m.addFocus].Blur()
		m.addFocus = (m.addFocus - 1 + len(m.addInputs)) % len(m.addInputs)
		m.addInputs[m.addFocus].Focus()
		return m, nil
	case "enter":
		role := strings.TrimSpace(m.addInputs[0].Value())
		company := strings.TrimSpace(m.addInputs[1].Value())
		if role == "" || company == "" {
			m.errMsg = "Role and company are required"
			return m, nil
		}
		m.services.Jobs.Enqueue(models.JobApplication{Role: role, Company: company})
		m.jobs = m.services.Jobs.Snapshot()
		m.errMsg = ""
		m.status = "Application queued"
		m.screen = screenJobs
		return m, m.cmdClearStatus()
	}

	var cmd tea.Cmd
	m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateProfile(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.screen = screenDashboard
	case "e":
		if m.user.IsGuest() {
			m.errMsg = "Guest profiles are read-only"
			return m, nil
		}
		m.screen = screenProfileEdit
		m.editInputs = newProfileInputs(m.user)
		m.editFocus = 0
		return m, textinput.Blink
	}
	return m, nil
}

func (m mainLoopModel) updateProfileEdit(msg tea.Msg, keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.screen = screenProfile
		return m, nil
	case "tab":
		m.editInputs[m.editFocus].Blur()
		m.editFocus = (m.editFocus + 1) % len(m.editInputs)
		m.editInputs[m.editFocus].Focus()
		return m, nil
	case "shift+tab":
		m.editInputs[m.editFocus].Blur()
		m.editFocus = (m.editFocus - 1 + len(m.editInputs)) % len(m.editInputs)
		m.editInputs[m.editFocus].Focus()
		return m, nil
	case "enter":
		if m.editSaving {
			return m, nil
		}

		updated := m.user
		updated.Name = strings.TrimSpace(m.editInputs[0].Value())
		updated.University = strings.TrimSpace(m.editInputs[1].Value())
		updated.Year = strings.TrimSpace(m.editInputs[2].Value())
		updated.Domain = strings.TrimSpace(m.editInputs[3].Value())
		updated.Bio = strings.TrimSpace(m.editInputs[4].Value())

		if updated.Name == "" {
			m.errMsg = "Name is required"
			return m, nil
		}

		m.errMsg = ""
		m.editSaving = true
		return m, m.cmdSaveProfile(updated)
	}

	var cmd tea.Cmd
	m.editInputs[m.editFocus], cmd = m.editInputs[m.editFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateAdmin(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.screen = screenDashboard
	case "r":
		m.statsReady = false
		return m, tea.Batch(m.cmdLoadStats(), m.cmdLoadUsers())
	case "t":
		m.screen = screenAdminToggle
		m.toggleInput.SetValue("")
		m.toggleInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m mainLoopModel) updateAdminToggle(msg tea.Msg, keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.screen = screenAdmin
		return m, nil
	case "enter":
		if m.toggleSaving {
			return m, nil
		}
		email := strings.TrimSpace(m.toggleInput.Value())
		if email == "" {
			m.errMsg = "Email is required"
			return m, nil
		}
		m.errMsg = ""
		m.toggleSaving = true
		return m, m.cmdToggleStatus(email)
	}

	var cmd tea.Cmd
	m.toggleInput, cmd = m.toggleInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenLeaderboard:
		return m.viewLeaderboard()
	case screenJobs:
		return m.viewJobs()
	case screenJobsAdd:
		return m.viewJobsAdd()
	case screenProfile:
		return m.viewProfile()
	case screenProfileEdit:
		return m.viewProfileEdit()
	case screenAdmin:
		return m.viewAdmin()
	case screenAdminToggle:
		return m.viewAdminToggle()
	}
	return m.viewDashboard()
}

func (m mainLoopModel) viewDashboard() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Signed in: %s <%s>\n", m.user.Name, m.user.Email)
	fmt.Fprintf(&b, "Level %d │ %d XP │ %d-day streak │ %.1f study hours\n",
		m.user.Gamification.Level,
		m.user.Gamification.XP,
		m.user.Gamification.StreakDays,
		m.user.Gamification.StudyHoursTotal,
	)

	if len(m.user.Gamification.Badges) > 0 {
		b.WriteString("Badges: ")
		for i, badge := range m.user.Gamification.Badges {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(badge.Icon)
			b.WriteString(" ")
			b.WriteString(badge.Name)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("b: leaderboard\n")
	b.WriteString("a: application automation\n")
	b.WriteString("p: profile\n")
	if m.user.Role == models.RoleAdmin {
		b.WriteString("m: admin stats\n")
	}

	m.appendNotices(&b)

	return renderPage("STUDY2SKILLS", strings.TrimRight(b.String(), "\n"), "o: logout │ q: quit")
}

func (m mainLoopModel) viewLeaderboard() string {
	var b strings.Builder

	if len(m.board) == 0 {
		b.WriteString("Loading...")
	} else {
		b.WriteString(fmt.Sprintf("%-4s │ %-24s │ %-6s │ %s\n", "#", "Name", "Level", "XP"))
		b.WriteString(strings.Repeat("─", 52))
		b.WriteString("\n")
		for i, u := range m.board {
			marker := " "
			if u.Email == m.user.Email {
				marker = ">"
			}
			b.WriteString(fmt.Sprintf("%s%-3d │ %-24s │ %-6d │ %d\n",
				marker, i+1, fitText(u.Name, 24), u.Gamification.Level, u.Gamification.XP))
		}
	}

	m.appendNotices(&b)

	return renderPage("LEADERBOARD", strings.TrimRight(b.String(), "\n"), "r: refresh │ esc: back")
}

func (m mainLoopModel) viewJobs() string {
	var b strings.Builder

	engineState := "paused"
	if m.services.Jobs.Running() {
		engineState = "running"
	}
	if m.services.Jobs.Done() && len(m.jobs) > 0 {
		engineState = "done"
	}
	fmt.Fprintf(&b, "Engine: %s │ %d in queue\n\n", engineState, len(m.jobs))

	if len(m.jobs) == 0 {
		b.WriteString("Queue is empty. Press n to add an application.")
	} else {
		b.WriteString(fmt.Sprintf("%-2s %-22s │ %-18s │ %s\n", "", "Role", "Company", "Status"))
		b.WriteString(strings.Repeat("─", 70))
		b.WriteString("\n")
		for i, job := range m.jobs {
			cursor := " "
			if i == m.jobsIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s  %-22s │ %-18s │ %s\n",
				cursor, fitText(job.Role, 22), fitText(job.Company, 18), job.Status))
		}

		selected := m.jobs[m.jobsIdx]
		if strings.TrimSpace(selected.CoverLetter) != "" {
			b.WriteString("\nCover letter:\n")
			b.WriteString(fitText(selected.CoverLetter, 300))
			b.WriteString("\n")
		}
	}

	m.appendNotices(&b)

	return renderPage("APPLICATION AUTOMATION", strings.TrimRight(b.String(), "\n"),
		"n: new │ s: start/stop │ c: copy letter │ r: refresh │ esc: back")
}

func (m mainLoopModel) viewJobsAdd() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Role     │ [")
	b.WriteString(m.addInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Company  │ [")
	b.WriteString(m.addInputs[1].View())
	b.WriteString("]\n")

	m.appendNotices(&b)

	return renderPage("NEW APPLICATION", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: queue")
}

func (m mainLoopModel) viewProfile() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Name        │ %s\n", valueOrDash(m.user.Name))
	fmt.Fprintf(&b, "Email       │ %s\n", valueOrDash(m.user.Email))
	fmt.Fprintf(&b, "University  │ %s\n", valueOrDash(m.user.University))
	fmt.Fprintf(&b, "Year        │ %s\n", valueOrDash(m.user.Year))
	fmt.Fprintf(&b, "Domain      │ %s\n", valueOrDash(m.user.Domain))
	fmt.Fprintf(&b, "Bio         │ %s\n", valueOrDash(fitText(m.user.Bio, 60)))
	fmt.Fprintf(&b, "Skills      │ %s\n", valueOrDash(strings.Join(m.user.Skills, ", ")))
	fmt.Fprintf(&b, "Role        │ %s\n", string(m.user.Role))

	m.appendNotices(&b)

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "e: edit │ esc: back")
}

func (m mainLoopModel) viewProfileEdit() string {
	labels := []string{"Name", "University", "Year", "Domain", "Bio"}

	var b strings.Builder
	b.WriteString("Field       │ Value\n")
	b.WriteString("────────────┼────────────────────────────────────────\n")
	for i, label := range labels {
		fmt.Fprintf(&b, "%-11s │ [%s]\n", label, m.editInputs[i].View())
	}

	if m.editSaving {
		b.WriteString("\n[Save...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	m.appendNotices(&b)

	return renderPage("EDIT PROFILE", strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter: save")
}

func (m mainLoopModel) viewAdmin() string {
	var b strings.Builder

	if !m.statsReady {
		b.WriteString("Loading...")
	} else {
		fmt.Fprintf(&b, "Total users   │ %d\n", m.stats.TotalUsers)
		fmt.Fprintf(&b, "Active users  │ %d\n", m.stats.ActiveUsers)
		fmt.Fprintf(&b, "Growth        │ %.1f%%\n", m.stats.Growth)

		if len(m.stats.DomainDistribution) > 0 {
			b.WriteString("\nDomains:\n")
			for _, d := range m.stats.DomainDistribution {
				fmt.Fprintf(&b, "  %-24s %d\n", fitText(d.Name, 24), d.Value)
			}
		}

		if len(m.adminUsers) > 0 {
			b.WriteString("\nUsers:\n")
			for _, u := range m.adminUsers {
				fmt.Fprintf(&b, "  %-28s %-8s %s\n", fitText(u.Email, 28), u.Role, u.Status)
			}
		}
	}

	m.appendNotices(&b)

	return renderPage("ADMIN STATS", strings.TrimRight(b.String(), "\n"), "t: toggle user status │ r: refresh │ esc: back")
}

func (m mainLoopModel) viewAdminToggle() string {
	var b strings.Builder
	b.WriteString("Email │ [")
	b.WriteString(m.toggleInput.View())
	b.WriteString("]\n")

	m.appendNotices(&b)

	return renderPage("TOGGLE USER STATUS", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: toggle")
}

func (m mainLoopModel) appendNotices(b *strings.Builder) {
	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
}

func (m mainLoopModel) cmdLoadLeaderboard() tea.Cmd {
	ctx := m.ctx
	board := m.services.Leaderboard

	return func() tea.Msg {
		return leaderboardLoadedMsg{users: board.Leaderboard(ctx)}
	}
}

func (m mainLoopModel) cmdLoadStats() tea.Cmd {
	ctx := m.ctx
	admin := m.services.Admin

	return func() tea.Msg {
		return statsLoadedMsg{stats: admin.Stats(ctx)}
	}
}

func (m mainLoopModel) cmdLoadUsers() tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth

	return func() tea.Msg {
		return usersLoadedMsg{users: auth.ListUsers(ctx)}
	}
}

func (m mainLoopModel) cmdToggleStatus(email string) tea.Cmd {
	ctx := m.ctx
	admin := m.services.Admin

	return func() tea.Msg {
		return toggleDoneMsg{err: admin.ToggleStatus(ctx, email), email: email}
	}
}

func (m mainLoopModel) cmdSaveProfile(profile models.UserProfile) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth

	return func() tea.Msg {
		saved, err := auth.UpdateProfile(ctx, profile)
		return profileSavedMsg{err: err, user: saved}
	}
}

func (m mainLoopModel) cmdJobsRefresh() tea.Cmd {
	return tea.Tick(jobsRefreshEvery, func(time.Time) tea.Msg {
		return jobsRefreshMsg{}
	})
}

func (m mainLoopModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func newJobInputs() []textinput.Model {
	role := textinput.New()
	role.Placeholder = "role (e.g. Backend Engineer)"
	role.Width = 40
	role.Focus()

	company := textinput.New()
	company.Placeholder = "company"
	company.Width = 40

	return []textinput.Model{role, company}
}

func newProfileInputs(user models.UserProfile) []textinput.Model {
	values := []string{user.Name, user.University, user.Year, user.Domain, user.Bio}
	placeholders := []string{"name", "university", "year", "study domain", "bio"}

	inputs := make([]textinput.Model, len(values))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].Width = 40
		inputs[i].SetValue(values[i])
	}
	inputs[0].Focus()
	return inputs
}
