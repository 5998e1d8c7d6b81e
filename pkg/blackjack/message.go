package blackjack

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message is a human-readable account of a round event, consumed by the
// presentation layer
type Message struct {
	UUID string    `json:"uuid"`
	Text string    `json:"text"`
	Time time.Time `json:"time"`
}

func newMessage(format string, a ...interface{}) *Message {
	return &Message{
		UUID: uuid.New().String(),
		Text: fmt.Sprintf(format, a...),
		Time: time.Now(),
	}
}
