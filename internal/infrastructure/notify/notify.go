package notify

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"plantapp/pkg/helpers"
	"plantapp/pkg/mailer"
)

// MailgunNotifier delivers reminders directly through Mailgun.
type MailgunNotifier struct {
	Mailer *mailer.Mailgun
}

func NewMailgunNotifier(m *mailer.Mailgun) *MailgunNotifier {
	return &MailgunNotifier{Mailer: m}
}

func (n *MailgunNotifier) Send(ctx context.Context, to, subject, body string) error {
	return n.Mailer.Send(ctx, to, subject, body, "")
}

// QueueNotifier hands reminders to RabbitMQ; the reminder worker drains the
// queue and does the actual Mailgun send.
type QueueNotifier struct {
	Pub *helpers.RabbitPublisher
}

func NewQueueNotifier(pub *helpers.RabbitPublisher) *QueueNotifier {
	return &QueueNotifier{Pub: pub}
}

func (n *QueueNotifier) Send(ctx context.Context, to, subject, body string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return n.Pub.PublishJSON(ctx, mailer.EmailJob{To: to, Subject: subject, Text: body})
}

// LogNotifier records reminders in the log instead of sending them; used when
// mail sending is disabled.
type LogNotifier struct {
	Logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) Send(_ context.Context, to, subject, _ string) error {
	n.Logger.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("mail sending disabled, reminder dropped")
	return nil
}
