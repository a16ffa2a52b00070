package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/internal/mock"
	"github.com/study2skills/study2skills/models"
	"go.uber.org/mock/gomock"
)

func TestSessionSetGet_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	sessions := NewSessionStore(kv, logger.Nop())
	ctx := context.Background()

	user := models.UserProfile{
		ID:    "u1",
		Email: "a@x.com",
		Role:  models.RoleStudent,
		Gamification: models.Gamification{
			XP:    120,
			Level: models.LevelForXP(120),
		},
	}
	raw, err := json.Marshal(user)
	require.NoError(t, err)

	kv.EXPECT().Set(ctx, "study2skills_session", raw).Return(nil)
	kv.EXPECT().Get(ctx, "study2skills_session").Return(raw, nil)

	require.NoError(t, sessions.Set(ctx, user))

	got, err := sessions.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestSessionGet_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	sessions := NewSessionStore(kv, logger.Nop())
	ctx := context.Background()

	kv.EXPECT().Get(ctx, "study2skills_session").Return(nil, ErrKeyNotFound)

	_, err := sessions.Get(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionGet_CorruptTreatedAsAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	sessions := NewSessionStore(kv, logger.Nop())
	ctx := context.Background()

	kv.EXPECT().Get(ctx, "study2skills_session").Return([]byte("???"), nil)

	_, err := sessions.Get(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionClear_DelegatesDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	sessions := NewSessionStore(kv, logger.Nop())
	ctx := context.Background()

	kv.EXPECT().Delete(ctx, "study2skills_session").Return(nil)

	assert.NoError(t, sessions.Clear(ctx))
}
