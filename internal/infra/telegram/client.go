// internal/infra/telegram/client.go
package telegram

import (
	"gopkg.in/telebot.v3"
)

// chat is a telebot.Recipient for a configured chat identifier.
// Telegram accepts both numeric ids and @channel usernames here.
type chat string

func (c chat) Recipient() string { return string(c) }

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// NewBot creates an offline telebot instance: it only sends messages and never polls for updates.
// apiURL may be empty to use the public Bot API.
func NewBot(token, apiURL string) (*telebot.Bot, error) {
	return telebot.NewBot(telebot.Settings{
		Token:   token,
		URL:     apiURL,
		Offline: true,
	})
}

// SendMessage sends a plain text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(chatID string, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	_, err := tba.bot.Send(chat(chatID), text, options)
	return err
}
