package notify

import (
	"context"
	"log/slog"
)

// Message is one outbound email. To may hold several comma-joined addresses,
// exactly as rendered from the rule's recipients template. Body is plain
// text with literal newlines; transport-specific encoding (HTML breaks,
// quoted-printable) is the collaborator's responsibility.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender is the mail collaborator boundary. Implementations must resolve or
// fail within their own bound; the dispatcher imposes no timeout of its own.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender simulates delivery by writing the message to the log. It stands
// in for a real transport during development, mirroring the console fallback
// the product ships without a configured mail provider.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	slog.Info("simulated email send", "to", msg.To, "subject", msg.Subject)
	slog.Debug("simulated email body", "body", msg.Body)
	return nil
}
