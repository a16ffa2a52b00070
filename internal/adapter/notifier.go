package adapter

import (
	"context"
	"fmt"

	sendgrid "github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/study2skills/study2skills/internal/config"
	"github.com/study2skills/study2skills/internal/logger"
)

const notifySenderName = "study2skills"

// sendgridNotifier delivers notifications through SendGrid.
type sendgridNotifier struct {
	client *sendgrid.Client
	from   *sgmail.Email

	logger *logger.Logger
}

// logNotifier only logs what would have been sent. Used when no SendGrid
// key is configured; the rest of the application cannot tell the difference.
type logNotifier struct {
	logger *logger.Logger
}

// NewNotifier selects the notification backend from cfg: SendGrid when a
// key is present, a log-only notifier otherwise.
func NewNotifier(cfg config.ClientNotify, logger *logger.Logger) Notifier {
	if cfg.SendGridKey == "" {
		logger.Info().Msg("no sendgrid key configured, notifications will only be logged")
		return &logNotifier{logger: logger}
	}

	return &sendgridNotifier{
		client: sendgrid.NewSendClient(cfg.SendGridKey),
		from:   sgmail.NewEmail(notifySenderName, cfg.FromEmail),
		logger: logger,
	}
}

func (n *sendgridNotifier) send(ctx context.Context, to, subject, body string) error {
	message := sgmail.NewSingleEmail(n.from, subject, sgmail.NewEmail("", to), body, "")

	resp, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d", resp.StatusCode)
	}

	n.logger.Debug().
		Str("func", "sendgridNotifier.send").
		Str("to", to).
		Str("subject", subject).
		Msg("notification sent")
	return nil
}

// SendJobMatch implements [Notifier].
func (n *sendgridNotifier) SendJobMatch(ctx context.Context, email, jobTitle, company string) error {
	subject := fmt.Sprintf("New Job Match: %s at %s", jobTitle, company)
	body := fmt.Sprintf("Our AI agent found a match and applied on your behalf: %s at %s.", jobTitle, company)
	return n.send(ctx, email, subject, body)
}

// SendProgressUpdate implements [Notifier].
func (n *sendgridNotifier) SendProgressUpdate(ctx context.Context, email string, progress int) error {
	subject := "Your Weekly Progress - study2skills"
	body := fmt.Sprintf("You are %d%% through your current roadmap. Keep going!", progress)
	return n.send(ctx, email, subject, body)
}

// SendMentorshipConfirmation implements [Notifier].
func (n *sendgridNotifier) SendMentorshipConfirmation(ctx context.Context, email, mentorName string) error {
	subject := "Mentorship Session Confirmed - study2skills"
	body := fmt.Sprintf("Your session with %s is confirmed. A calendar invite follows separately.", mentorName)
	return n.send(ctx, email, subject, body)
}

func (n *logNotifier) SendJobMatch(_ context.Context, email, jobTitle, company string) error {
	n.logger.Info().
		Str("to", email).
		Str("job", jobTitle).
		Str("company", company).
		Msg("[notify] job match")
	return nil
}

func (n *logNotifier) SendProgressUpdate(_ context.Context, email string, progress int) error {
	n.logger.Info().
		Str("to", email).
		Int("progress", progress).
		Msg("[notify] progress update")
	return nil
}

func (n *logNotifier) SendMentorshipConfirmation(_ context.Context, email, mentorName string) error {
	n.logger.Info().
		Str("to", email).
		Str("mentor", mentorName).
		Msg("[notify] mentorship confirmation")
	return nil
}
