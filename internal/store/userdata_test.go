package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/internal/mock"
	"github.com/study2skills/study2skills/models"
	"go.uber.org/mock/gomock"
)

func TestUserDataSetGet_KeyedByUserAndKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	data := NewUserDataStore(kv, logger.Nop())
	ctx := context.Background()

	raw := []byte(`["course-1","course-2"]`)

	kv.EXPECT().Set(ctx, "data_u1_completed_courses", raw).Return(nil)
	kv.EXPECT().Get(ctx, "data_u1_completed_courses").Return(raw, nil)

	require.NoError(t, data.Set(ctx, "u1", models.DataKindCompletedCourses, raw))

	got, ok := data.Get(ctx, "u1", models.DataKindCompletedCourses)
	require.True(t, ok)
	assert.Equal(t, raw, got)
}

func TestUserDataGet_AbsentReportsFalse(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	data := NewUserDataStore(kv, logger.Nop())
	ctx := context.Background()

	kv.EXPECT().Get(ctx, "data_u2_roadmap").Return(nil, ErrKeyNotFound)

	_, ok := data.Get(ctx, "u2", models.DataKindRoadmap)
	assert.False(t, ok)
}

func TestUserDataGet_ReadErrorReportsFalse(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	data := NewUserDataStore(kv, logger.Nop())
	ctx := context.Background()

	kv.EXPECT().Get(ctx, "data_u2_roadmap").Return(nil, errors.New("database is locked"))

	_, ok := data.Get(ctx, "u2", models.DataKindRoadmap)
	assert.False(t, ok)
}

func TestUserDataKey_SeparatesUsers(t *testing.T) {
	assert.NotEqual(t,
		userDataKey("u1", models.DataKindRoadmap),
		userDataKey("u2", models.DataKindRoadmap),
	)
	assert.NotEqual(t,
		userDataKey("u1", models.DataKindRoadmap),
		userDataKey("u1", models.DataKindResumeVersions),
	)
}
