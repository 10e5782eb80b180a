// internal/app/notifier.go
package app

import (
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Notifier delivers plain text messages to the single configured chat.
// Delivery errors are logged and swallowed so that polling is never interrupted.
type Notifier struct {
	client     domainTelegram.Client
	chatID     string
	logger     *logrus.Entry
	lastSendOK bool
}

func NewNotifier(client domainTelegram.Client, chatID string, logger *logrus.Entry) *Notifier {
	return &Notifier{
		client:     client,
		chatID:     chatID,
		logger:     logger.WithField("component", "notifier"),
		lastSendOK: true,
	}
}

// Send reports whether the message was delivered.
func (n *Notifier) Send(text string) bool {
	err := n.client.SendMessage(n.chatID, text, nil)
	if err != nil {
		n.logger.WithError(err).WithField("chat_id", n.chatID).Error("Failed to send Telegram message")
		n.lastSendOK = false
		return false
	}
	n.logger.WithField("chat_id", n.chatID).Debugf("Telegram message sent: %s", text)
	n.lastSendOK = true
	return true
}

// LastSendOK reports the outcome of the most recent Send.
func (n *Notifier) LastSendOK() bool {
	return n.lastSendOK
}
