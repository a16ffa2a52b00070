package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/internal/store"
	"github.com/study2skills/study2skills/models"
)

// Hardcoded demo admin. This identity bypasses the repository entirely: the
// synthetic record below is written straight into the session and is never
// persisted into the user collection.
const (
	demoAdminEmail    = "admin@study2skills.com"
	demoAdminPassword = "admin123"
)

type authService struct {
	users    store.UserCollectionStore
	sessions store.SessionStore
	userData store.UserDataStore

	adminMarker string
	validate    *validator.Validate

	logger *logger.Logger
}

// registerInput carries the fields checked at registration.
type registerInput struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required"`
}

// NewAuthService constructs the [AuthService] backed by the given stores.
// adminMarker is the substring that assigns the admin role when present in
// an email (case-insensitive).
func NewAuthService(storages *store.ClientStorages, adminMarker string, logger *logger.Logger) AuthService {
	return &authService{
		users:       storages.Users,
		sessions:    storages.Session,
		userData:    storages.UserData,
		adminMarker: strings.ToLower(adminMarker),
		validate:    validator.New(),
		logger:      logger,
	}
}

// deriveRole maps an email to a role by the admin marker substring.
func (a *authService) deriveRole(email string) models.Role {
	if strings.Contains(strings.ToLower(email), a.adminMarker) {
		return models.RoleAdmin
	}
	return models.RoleStudent
}

// Register implements [AuthService].
func (a *authService) Register(ctx context.Context, profile models.UserProfile, password string) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	in := registerInput{Email: profile.Email, Name: profile.Name}
	if err := a.validate.Struct(in); err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	users := a.users.Load(ctx)
	for _, u := range users {
		// Case-sensitive exact match, mirroring the lookup used at login.
		if u.Email == profile.Email {
			return models.UserProfile{}, ErrDuplicateUser
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	profile.ID = NewID()
	profile.PasswordHash = string(hash)
	profile.Role = a.deriveRole(profile.Email)
	profile.Status = models.StatusActive
	profile.Gamification = models.Gamification{
		XP:    0,
		Level: 1,
		Badges: []models.Badge{
			{
				ID:          NewID(),
				Name:        "Newbie",
				Description: "Joined the platform",
				Icon:        "🌱",
				DateEarned:  now.Format(time.RFC3339),
			},
		},
		StreakDays:     1,
		LastActiveDate: now.Format("2006-01-02"),
	}

	users = append(users, profile)
	if err = a.users.Save(ctx, users); err != nil {
		return models.UserProfile{}, fmt.Errorf("register: %w", err)
	}

	// Seed the per-user roadmap slot so the roadmap page can distinguish
	// "never generated" from "storage failure".
	if err = a.userData.Set(ctx, profile.ID, models.DataKindRoadmap, []byte("null")); err != nil {
		log.Warn().
			Err(err).
			Str("func", "authService.Register").
			Str("user_id", profile.ID).
			Msg("failed to seed roadmap entry")
	}

	if err = a.sessions.Set(ctx, profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("register start session: %w", err)
	}

	log.Info().
		Str("func", "authService.Register").
		Str("user_id", profile.ID).
		Str("role", string(profile.Role)).
		Msg("user registered")
	return profile, nil
}

// Login implements [AuthService].
func (a *authService) Login(ctx context.Context, email, password string) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	if email == demoAdminEmail && password == demoAdminPassword {
		admin := syntheticAdmin()
		if err := a.sessions.Set(ctx, admin); err != nil {
			return models.UserProfile{}, fmt.Errorf("login start session: %w", err)
		}
		return admin, nil
	}

	users := a.users.Load(ctx)
	idx := -1
	for i, u := range users {
		if u.Email == email {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.UserProfile{}, ErrInvalidCredentials
	}

	user := users[idx]
	if user.IsDisabled() {
		return models.UserProfile{}, ErrAccountDisabled
	}

	// Accounts created before hashing existed carry an empty hash and
	// accept any password. Demo-grade fallback, not auth.
	if user.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return models.UserProfile{}, ErrInvalidCredentials
		}
	}

	// Re-assert the derived role in case the admin marker now matches a
	// record registered under different rules.
	if derived := a.deriveRole(user.Email); derived == models.RoleAdmin && user.Role != models.RoleAdmin {
		user.Role = models.RoleAdmin
		users[idx] = user
		if err := a.users.Save(ctx, users); err != nil {
			log.Warn().
				Err(err).
				Str("func", "authService.Login").
				Str("user_id", user.ID).
				Msg("failed to persist re-derived role")
		}
	}

	if err := a.sessions.Set(ctx, user); err != nil {
		return models.UserProfile{}, fmt.Errorf("login start session: %w", err)
	}

	log.Info().
		Str("func", "authService.Login").
		Str("user_id", user.ID).
		Msg("user logged in")
	return user, nil
}

// Logout implements [AuthService].
func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// CurrentUser implements [AuthService].
func (a *authService) CurrentUser(ctx context.Context) (models.UserProfile, bool) {
	user, err := a.sessions.Get(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			a.logger.Warn().
				Err(err).
				Str("func", "authService.CurrentUser").
				Msg("failed to read session")
		}
		return models.UserProfile{}, false
	}
	return user, true
}

// StartGuestSession implements [AuthService]. Guest profiles are fabricated
// with fixed demo values; downstream consumers can only tell them apart from
// real sessions via the role field.
func (a *authService) StartGuestSession(ctx context.Context) (models.UserProfile, error) {
	now := time.Now()
	guest := models.UserProfile{
		ID:         fmt.Sprintf("guest_%d", now.UnixMilli()),
		Email:      "guest@demo.com",
		Name:       "Guest User",
		Domain:     "Full Stack Development",
		University: "Demo University",
		Year:       "1st Year",
		Skills:     []string{"React", "TypeScript"},
		Bio:        "Exploring study2skills in guest mode",
		Role:       models.RoleGuest,
		Status:     models.StatusActive,
		Gamification: models.Gamification{
			XP:         120,
			Level:      models.LevelForXP(120),
			Badges:     []models.Badge{},
			StreakDays: 1,
		},
	}

	if err := a.sessions.Set(ctx, guest); err != nil {
		return models.UserProfile{}, fmt.Errorf("start guest session: %w", err)
	}

	return guest, nil
}

// UpdateProfile implements [AuthService]. Guest sessions are read-only and
// rejected outright. The repository entry is matched by email; if the email
// itself was edited, the lookup misses and only the session snapshot is
// refreshed. Keying mutations by the immutable ID would close that gap, but
// the collection is deliberately left addressed by its natural key here.
func (a *authService) UpdateProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	if profile.IsGuest() {
		return models.UserProfile{}, ErrGuestReadOnly
	}

	users := a.users.Load(ctx)
	for i, u := range users {
		if u.Email == profile.Email {
			// Preserve credential and moderation fields the UI never
			// carries.
			if profile.PasswordHash == "" {
				profile.PasswordHash = u.PasswordHash
			}
			users[i] = profile
			if err := a.users.Save(ctx, users); err != nil {
				return models.UserProfile{}, fmt.Errorf("update profile: %w", err)
			}
			break
		}
	}

	if err := a.sessions.Set(ctx, profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("update session snapshot: %w", err)
	}

	log.Debug().
		Str("func", "authService.UpdateProfile").
		Str("user_id", profile.ID).
		Msg("profile updated")
	return profile, nil
}

// ListUsers implements [AuthService].
func (a *authService) ListUsers(ctx context.Context) []models.UserProfile {
	return a.users.Load(ctx)
}

// syntheticAdmin is the fixed record produced for the hardcoded demo admin
// login.
func syntheticAdmin() models.UserProfile {
	return models.UserProfile{
		ID:         "admin_001",
		Email:      demoAdminEmail,
		Name:       "System Admin",
		Role:       models.RoleAdmin,
		Domain:     "Administration",
		University: "N/A",
		Year:       "N/A",
		Skills:     []string{},
		Bio:        "Administrator",
		Status:     models.StatusActive,
		Gamification: models.Gamification{
			XP:              99999,
			Level:           99,
			Badges:          []models.Badge{},
			StreakDays:      999,
			StudyHoursTotal: 9999,
		},
	}
}
