package dashboard

import (
	"strings"
	"time"
)

// ChatMessage is one line of the operators' local chat.
type ChatMessage struct {
	Author    string
	Text      string
	Timestamp string
}

// Chat is the command center's operator chat. It never leaves the
// dashboard.
type Chat struct {
	messages []ChatMessage
	now      func() time.Time
}

func NewChat(now func() time.Time) *Chat {
	if now == nil {
		now = time.Now
	}
	return &Chat{now: now}
}

// Send appends a message; blank text is ignored.
func (c *Chat) Send(author, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	c.messages = append(c.messages, ChatMessage{
		Author:    author,
		Text:      text,
		Timestamp: c.now().Format("02/01 15:04"),
	})
	return true
}

func (c *Chat) Messages() []ChatMessage {
	return append([]ChatMessage(nil), c.messages...)
}
