package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/models"
)

// spyAI counts generation calls and can be switched to permanent failure or
// to blocking until the call's context is cancelled.
type spyAI struct {
	calls   atomic.Int64
	fail    bool
	waitCtx bool
	started chan struct{}
}

func (s *spyAI) GenerateJobApplication(ctx context.Context, _ models.UserProfile, role, company string) (models.JobApplicationDraft, error) {
	s.calls.Add(1)
	if s.started != nil {
		select {
		case s.started <- struct{}{}:
		default:
		}
	}
	if s.waitCtx {
		<-ctx.Done()
		return models.JobApplicationDraft{}, ctx.Err()
	}
	if s.fail {
		return models.JobApplicationDraft{}, errors.New("upstream unavailable")
	}
	return models.JobApplicationDraft{
		CoverLetter:     "Dear " + company,
		TailoredSummary: "Summary for " + role,
	}, nil
}

func (s *spyAI) GenerateRoadmap(context.Context, string) (models.RoadmapData, error) {
	return models.RoadmapData{}, nil
}

func (s *spyAI) AnalyzeResume(context.Context, string) (models.ResumeAnalysis, error) {
	return models.ResumeAnalysis{}, nil
}

func (s *spyAI) GenerateResumeContent(context.Context, models.UserProfile) (string, error) {
	return "", nil
}

func (s *spyAI) GenerateInterviewQuestion(context.Context, string, models.InterviewType) (string, error) {
	return "", nil
}

func (s *spyAI) InterviewFeedback(context.Context, string, string, models.InterviewType) (models.InterviewFeedback, error) {
	return models.InterviewFeedback{}, nil
}

func (s *spyAI) MarketInsights(context.Context, string) (models.InsightsResponse, error) {
	return models.InsightsResponse{}, nil
}

func (s *spyAI) MentorChat(context.Context, []models.ChatMessage, string) (string, error) {
	return "", nil
}

// spyNotifier counts job-match notifications and can simulate failures.
type spyNotifier struct {
	jobMatches atomic.Int64
	err        error
}

func (s *spyNotifier) SendJobMatch(context.Context, string, string, string) error {
	s.jobMatches.Add(1)
	return s.err
}

func (s *spyNotifier) SendProgressUpdate(context.Context, string, int) error { return nil }

func (s *spyNotifier) SendMentorshipConfirmation(context.Context, string, string) error { return nil }

func newTestEngine(t *testing.T, ai *spyAI, notifier *spyNotifier) JobEngine {
	t.Helper()

	ts := newTestStores()
	auth := newTestAuth(ts)
	_, err := auth.Register(context.Background(), models.UserProfile{Email: "stud@x.com", Name: "A"}, "pw")
	require.NoError(t, err)

	return NewJobEngine(ai, notifier, auth, 5*time.Millisecond, logger.Nop())
}

func waitForDone(t *testing.T, engine JobEngine, within time.Duration) {
	t.Helper()

	deadline := time.Now().Add(within)
	for time.Now().Before(deadline) {
		if engine.Done() && !engine.Running() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("engine did not finish within %v; queue: %+v", within, engine.Snapshot())
}

func TestJobEngine_AdvancesAllToApplied(t *testing.T) {
	ai := &spyAI{}
	notifier := &spyNotifier{}
	engine := newTestEngine(t, ai, notifier)

	engine.Enqueue(
		models.JobApplication{Role: "Backend Engineer", Company: "Acme"},
		models.JobApplication{Role: "Data Analyst", Company: "Globex"},
	)
	engine.Start(context.Background())
	waitForDone(t, engine, 5*time.Second)

	tasks := engine.Snapshot()
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, models.JobApplied, task.Status)
		assert.NotEmpty(t, task.ID)
		assert.Contains(t, task.CoverLetter, "Dear")
	}

	// One generation call and one notification per task.
	assert.Equal(t, int64(2), ai.calls.Load())
	assert.Equal(t, int64(2), notifier.jobMatches.Load())
}

func TestJobEngine_EnqueueDefaultsToScanning(t *testing.T) {
	engine := newTestEngine(t, &spyAI{}, &spyNotifier{})

	engine.Enqueue(models.JobApplication{Role: "R", Company: "C"})
	engine.Enqueue(models.JobApplication{Role: "R2", Company: "C2", Status: models.JobEmailing})

	tasks := engine.Snapshot()
	require.Len(t, tasks, 2)
	assert.Equal(t, models.JobScanning, tasks[0].Status)
	assert.Equal(t, models.JobEmailing, tasks[1].Status)
}

func TestJobEngine_StopPausesExactly(t *testing.T) {
	engine := newTestEngine(t, &spyAI{}, &spyNotifier{})

	engine.Enqueue(
		models.JobApplication{Role: "R1", Company: "C1"},
		models.JobApplication{Role: "R2", Company: "C2"},
		models.JobApplication{Role: "R3", Company: "C3"},
	)
	engine.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	engine.Stop()

	assert.False(t, engine.Running())
	frozen := engine.Snapshot()

	// No transitions while stopped.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, frozen, engine.Snapshot())

	// Resume continues from the frozen state to completion.
	engine.Start(context.Background())
	waitForDone(t, engine, 5*time.Second)
	for _, task := range engine.Snapshot() {
		assert.Equal(t, models.JobApplied, task.Status)
	}
}

func TestJobEngine_AIFailureAdvancesWithEmptyContent(t *testing.T) {
	ai := &spyAI{fail: true}
	notifier := &spyNotifier{}
	engine := newTestEngine(t, ai, notifier)

	engine.Enqueue(models.JobApplication{Role: "R", Company: "C"})
	engine.Start(context.Background())
	waitForDone(t, engine, 10*time.Second)

	tasks := engine.Snapshot()
	require.Len(t, tasks, 1)
	assert.Equal(t, models.JobApplied, tasks[0].Status)
	assert.Empty(t, tasks[0].CoverLetter)
	assert.Empty(t, tasks[0].TailoredSummary)

	// Retries happened: initial attempt plus backoff retries.
	assert.Greater(t, ai.calls.Load(), int64(1))
	// The pipeline still completed and notified.
	assert.Equal(t, int64(1), notifier.jobMatches.Load())
}

func TestJobEngine_StopDuringGenerationKeepsTaskInPlace(t *testing.T) {
	ai := &spyAI{waitCtx: true, started: make(chan struct{}, 1)}
	notifier := &spyNotifier{}
	engine := newTestEngine(t, ai, notifier)

	engine.Enqueue(models.JobApplication{Role: "R", Company: "C", Status: models.JobGeneratingCoverLetter})
	engine.Start(context.Background())

	select {
	case <-ai.started:
	case <-time.After(5 * time.Second):
		t.Fatal("generation call never started")
	}
	engine.Stop()

	// The interrupted call commits nothing: the task keeps its stage and a
	// resume repeats the generation instead of shipping empty content.
	tasks := engine.Snapshot()
	require.Len(t, tasks, 1)
	assert.Equal(t, models.JobGeneratingCoverLetter, tasks[0].Status)
	assert.Empty(t, tasks[0].CoverLetter)
	assert.Empty(t, tasks[0].TailoredSummary)
	assert.Equal(t, int64(0), notifier.jobMatches.Load())

	ai.waitCtx = false
	engine.Start(context.Background())
	waitForDone(t, engine, 5*time.Second)

	tasks = engine.Snapshot()
	require.Len(t, tasks, 1)
	assert.Equal(t, models.JobApplied, tasks[0].Status)
	assert.Contains(t, tasks[0].CoverLetter, "Dear")
	assert.Equal(t, int64(1), notifier.jobMatches.Load())
}

func TestJobEngine_NotifierFailureDoesNotBreakFlow(t *testing.T) {
	notifier := &spyNotifier{err: errors.New("smtp down")}
	engine := newTestEngine(t, &spyAI{}, notifier)

	engine.Enqueue(models.JobApplication{Role: "R", Company: "C"})
	engine.Start(context.Background())
	waitForDone(t, engine, 5*time.Second)

	assert.Equal(t, models.JobApplied, engine.Snapshot()[0].Status)
	assert.Equal(t, int64(1), notifier.jobMatches.Load())
}

func TestJobEngine_StopBeforeStartNoPanic(t *testing.T) {
	engine := newTestEngine(t, &spyAI{}, &spyNotifier{})

	assert.NotPanics(t, func() { engine.Stop() })
}

func TestJobEngine_DoubleStopNoPanic(t *testing.T) {
	engine := newTestEngine(t, &spyAI{}, &spyNotifier{})

	engine.Enqueue(models.JobApplication{Role: "R", Company: "C"})
	engine.Start(context.Background())
	engine.Stop()
	assert.NotPanics(t, func() { engine.Stop() })
}

func TestJobEngine_DoneOnEmptyQueue(t *testing.T) {
	engine := newTestEngine(t, &spyAI{}, &spyNotifier{})
	assert.True(t, engine.Done())

	engine.Enqueue(models.JobApplication{Role: "R", Company: "C"})
	assert.False(t, engine.Done())
}

func TestJobEngine_HaltsItselfWhenFinished(t *testing.T) {
	engine := newTestEngine(t, &spyAI{}, &spyNotifier{})

	engine.Enqueue(models.JobApplication{Role: "R", Company: "C"})
	engine.Start(context.Background())
	waitForDone(t, engine, 5*time.Second)

	assert.False(t, engine.Running())
}
