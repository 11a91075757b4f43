package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
)

// Mailer delivers account email. Delivery is fire and forget: callers log
// failures and carry on.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to domain.User, link string) error
}

// LogMailer writes messages to the structured log instead of sending them.
// It is the default until an SMTP relay is configured.
type LogMailer struct {
	Logger *slog.Logger
}

func (m LogMailer) SendPasswordReset(ctx context.Context, to domain.User, link string) error {
	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "password reset email",
		slog.String("to", to.Email),
		slog.String("link", link),
	)
	return nil
}
