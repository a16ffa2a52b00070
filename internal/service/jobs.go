package service

import (
	"context"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/study2skills/study2skills/internal/adapter"
	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/models"
)

const (
	defaultTickInterval = 1 * time.Second

	// Retry policy for the generation call on the cover-letter transition.
	aiRetryBase     = 500 * time.Millisecond
	aiRetryMaxTries = 3
)

// jobEngine advances a queue of simulated applications one state per tick.
// Exactly one goroutine owns the loop; Stop pauses it at a tick boundary and
// a later Start resumes from the retained queue state.
type jobEngine struct {
	ai       adapter.AIAdapter
	notifier adapter.Notifier
	auth     AuthService

	interval time.Duration

	mu     sync.Mutex
	tasks  []models.JobApplication
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewJobEngine creates an idle [JobEngine]. interval defaults when zero or
// negative.
func NewJobEngine(ai adapter.AIAdapter, notifier adapter.Notifier, auth AuthService, interval time.Duration, logger *logger.Logger) JobEngine {
	if interval <= 0 {
		interval = defaultTickInterval
	}

	return &jobEngine{
		ai:       ai,
		notifier: notifier,
		auth:     auth,
		interval: interval,
		logger:   logger,
	}
}

// Enqueue implements [JobEngine]. Tasks without an id get one assigned; all
// tasks enter the queue in Scanning unless a later state was already set.
func (e *jobEngine) Enqueue(tasks ...models.JobApplication) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, t := range tasks {
		if t.ID == "" {
			t.ID = NewID()
		}
		if t.Status == "" {
			t.Status = models.JobScanning
		}
		e.tasks = append(e.tasks, t)
	}
}

// Start implements [JobEngine]. It stops any previously running loop, then
// launches a goroutine that advances one task per tick. The goroutine exits
// when ctx is cancelled, Stop is called, or every task is Applied.
func (e *jobEngine) Start(ctx context.Context) {
	e.Stop()

	e.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.wg.Add(1)
	e.mu.Unlock()

	go func() {
		defer e.wg.Done()
		t := time.NewTicker(e.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				if finished := e.tick(loopCtx); finished {
					e.mu.Lock()
					if e.cancel != nil {
						e.cancel()
						e.cancel = nil
					}
					e.mu.Unlock()
					e.logger.Info().
						Str("func", "jobEngine.Start").
						Msg("all applications applied, automation halted")
					return
				}
			}
		}
	}()
}

// Stop implements [JobEngine]. It cancels the loop's context and blocks
// until the goroutine has fully exited, so no transition is ever observed
// half-applied. Safe to call when the engine is not running.
func (e *jobEngine) Stop() {
	e.mu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.wg.Wait()
}

// Running implements [JobEngine].
func (e *jobEngine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cancel != nil
}

// Snapshot implements [JobEngine]. Returns a copy for the UI; the engine's
// own slice is never exposed.
func (e *jobEngine) Snapshot() []models.JobApplication {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.JobApplication, len(e.tasks))
	copy(out, e.tasks)
	return out
}

// Done implements [JobEngine].
func (e *jobEngine) Done() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, t := range e.tasks {
		if !t.Status.Terminal() {
			return false
		}
	}
	return true
}

// tick advances the first non-terminal task by exactly one state. Returns
// true when no such task remains.
func (e *jobEngine) tick(ctx context.Context) bool {
	e.mu.Lock()
	idx := -1
	for i, t := range e.tasks {
		if !t.Status.Terminal() {
			idx = i
			break
		}
	}
	if idx == -1 {
		e.mu.Unlock()
		return true
	}
	task := e.tasks[idx]
	e.mu.Unlock()

	// The cover-letter transition is the only one with an external side
	// effect; the quiet path below it simulates work by just consuming the
	// tick delay.
	var draft models.JobApplicationDraft
	if task.Status == models.JobGeneratingCoverLetter {
		var err error
		draft, err = e.generateDraft(ctx, task)
		if err != nil {
			// Pause interrupted the generation call. Leave the task where
			// it is so a later Start repeats the call instead of committing
			// empty content.
			return false
		}
	}

	e.mu.Lock()
	// Re-check under lock: the queue may only have grown, indexes are
	// stable, but the task could have been advanced by a concurrent
	// Start/Stop cycle.
	if idx >= len(e.tasks) || e.tasks[idx].ID != task.ID || e.tasks[idx].Status != task.Status {
		e.mu.Unlock()
		return false
	}

	if task.Status == models.JobGeneratingCoverLetter {
		e.tasks[idx].CoverLetter = draft.CoverLetter
		e.tasks[idx].TailoredSummary = draft.TailoredSummary
	}
	e.tasks[idx].Status = task.Status.Next()
	applied := e.tasks[idx].Status.Terminal()
	notifyTask := e.tasks[idx]
	e.mu.Unlock()

	e.logger.Debug().
		Str("func", "jobEngine.tick").
		Str("task_id", notifyTask.ID).
		Str("status", string(notifyTask.Status)).
		Msg("application advanced")

	if applied {
		e.notifyApplied(ctx, notifyTask)
	}

	return false
}

// generateDraft calls the generation API with bounded exponential backoff.
// A cancelled ctx (Stop during the call) is reported as an error so the
// caller keeps the task in place for a later resume. After genuine retry
// exhaustion the task still advances, with empty content: the pipeline is a
// demo flow and must not wedge on a flaky upstream.
func (e *jobEngine) generateDraft(ctx context.Context, task models.JobApplication) (models.JobApplicationDraft, error) {
	profile, _ := e.auth.CurrentUser(ctx)

	var draft models.JobApplicationDraft
	backoff := retry.WithMaxRetries(aiRetryMaxTries, retry.NewExponential(aiRetryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		d, err := e.ai.GenerateJobApplication(ctx, profile, task.Role, task.Company)
		if err != nil {
			return retry.RetryableError(err)
		}
		draft = d
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return models.JobApplicationDraft{}, ctx.Err()
		}
		e.logger.Warn().
			Err(err).
			Str("func", "jobEngine.generateDraft").
			Str("task_id", task.ID).
			Str("company", task.Company).
			Msg("cover letter generation failed, advancing with empty content")
		return models.JobApplicationDraft{}, nil
	}

	return draft, nil
}

// notifyApplied fires the job-match notification. Delivery failures are
// logged and never propagate into the automation flow.
func (e *jobEngine) notifyApplied(ctx context.Context, task models.JobApplication) {
	profile, ok := e.auth.CurrentUser(ctx)
	if !ok || profile.Email == "" {
		return
	}

	if err := e.notifier.SendJobMatch(ctx, profile.Email, task.Role, task.Company); err != nil {
		e.logger.Warn().
			Err(err).
			Str("func", "jobEngine.notifyApplied").
			Str("task_id", task.ID).
			Msg("job match notification failed")
	}
}
