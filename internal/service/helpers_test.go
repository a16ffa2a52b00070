package service

import (
	"context"
	"sync"

	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/internal/store"
	"github.com/study2skills/study2skills/models"
)

// In-memory store fakes. They mirror the blob semantics of the real SQLite
// stores without touching a database, so service tests stay fast and
// deterministic.

type memUsers struct {
	mu    sync.Mutex
	users []models.UserProfile

	saveErr error
}

func (m *memUsers) Load(context.Context) []models.UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.UserProfile, len(m.users))
	copy(out, m.users)
	return out
}

func (m *memUsers) Save(_ context.Context, users []models.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.users = make([]models.UserProfile, len(users))
	copy(m.users, users)
	return nil
}

type memSession struct {
	mu   sync.Mutex
	user models.UserProfile
	set  bool
}

func (m *memSession) Get(context.Context) (models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return models.UserProfile{}, store.ErrSessionNotFound
	}
	return m.user, nil
}

func (m *memSession) Set(_ context.Context, user models.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
	m.set = true
	return nil
}

func (m *memSession) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = models.UserProfile{}
	m.set = false
	return nil
}

type memUserData struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemUserData() *memUserData {
	return &memUserData{data: make(map[string][]byte)}
}

func (m *memUserData) key(userID string, kind models.DataKind) string {
	return userID + "|" + string(kind)
}

func (m *memUserData) Get(_ context.Context, userID string, kind models.DataKind) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[m.key(userID, kind)]
	return raw, ok
}

func (m *memUserData) Set(_ context.Context, userID string, kind models.DataKind, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[m.key(userID, kind)] = raw
	return nil
}

type testStores struct {
	users    *memUsers
	session  *memSession
	userData *memUserData
	storages *store.ClientStorages
}

func newTestStores() testStores {
	users := &memUsers{}
	session := &memSession{}
	userData := newMemUserData()
	return testStores{
		users:    users,
		session:  session,
		userData: userData,
		storages: &store.ClientStorages{
			Users:    users,
			Session:  session,
			UserData: userData,
		},
	}
}

func newTestAuth(ts testStores) AuthService {
	return NewAuthService(ts.storages, "admin", logger.Nop())
}
