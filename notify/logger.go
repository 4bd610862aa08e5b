package notify

import (
	"context"
	"log/slog"

	"github.com/International-Combat-Archery-Alliance/email"
)

var _ email.Sender = &LogSender{}

// LogSender is an email.Sender for local dev that logs the email instead of sending it.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (ls *LogSender) SendEmail(ctx context.Context, e email.Email) error {
	ls.logger.InfoContext(ctx, "email that would be sent",
		slog.String("from", e.FromAddress),
		slog.Any("to", e.ToAddresses),
		slog.String("subject", e.Subject),
		slog.String("body", e.TextBody),
	)

	return nil
}
