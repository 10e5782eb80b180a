package app

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

type fakeTelegramClient struct {
	chatIDs []string
	texts   []string
	options []*telebot.SendOptions
	err     error
}

func (f *fakeTelegramClient) SendMessage(chatID string, text string, options *telebot.SendOptions) error {
	f.chatIDs = append(f.chatIDs, chatID)
	f.options = append(f.options, options)
	f.texts = append(f.texts, text)
	return f.err
}

func TestNotifier_Send(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	client := &fakeTelegramClient{}
	n := NewNotifier(client, "-100500", logrus.NewEntry(log))

	assert.True(t, n.Send("hello"))
	assert.True(t, n.LastSendOK())
	assert.Equal(t, []string{"-100500"}, client.chatIDs)
	assert.Equal(t, []string{"hello"}, client.texts)
	assert.Equal(t, []*telebot.SendOptions{nil}, client.options)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Contains(t, entry.Message, "hello")
}

func TestNotifier_SendFailureIsSwallowed(t *testing.T) {
	log, hook := test.NewNullLogger()
	client := &fakeTelegramClient{err: errors.New("telegram: Bad Request: chat not found (400)")}
	n := NewNotifier(client, "@nowhere", logrus.NewEntry(log))

	assert.False(t, n.Send("hello"))
	assert.False(t, n.LastSendOK())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "@nowhere", entry.Data["chat_id"])

	client.err = nil
	assert.True(t, n.Send("again"))
	assert.True(t, n.LastSendOK())
}
