package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// LogEmailer satisfies ports.Emailer by logging the verification link.
// Real delivery is handled outside this service; in development the link in
// the log is what you click.
type LogEmailer struct {
	baseURL string
	logger  zerolog.Logger
}

func NewLogEmailer(baseURL string, logger zerolog.Logger) *LogEmailer {
	return &LogEmailer{baseURL: baseURL, logger: logger}
}

func (e *LogEmailer) SendVerification(_ context.Context, email, fullName, verificationToken string) error {
	link := fmt.Sprintf("%s/api/users/verify-email?token=%s", e.baseURL, verificationToken)
	e.logger.Info().
		Str("email", email).
		Str("full_name", fullName).
		Str("link", link).
		Msg("verification mail dispatched")
	return nil
}
