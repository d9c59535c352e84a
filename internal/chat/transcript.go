package chat

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/atlas/internal/config"
)

// TranscriptKey is the storage key holding the last saved conversation.
const TranscriptKey = "atlas.chatTranscript"

type storedMessage struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Direction string    `json:"direction"`
	SentAt    time.Time `json:"sent_at"`
}

type storedTranscript struct {
	Next     int             `json:"next"`
	Messages []storedMessage `json:"messages"`
}

// EncodeTranscript serializes the conversation for storage. A pending reply
// is not kept.
func EncodeTranscript(c *Conversation) ([]byte, error) {
	st := storedTranscript{Next: c.next, Messages: make([]storedMessage, 0, len(c.messages))}
	for _, msg := range c.messages {
		st.Messages = append(st.Messages, storedMessage{
			ID:        msg.ID,
			Author:    msg.Author,
			Body:      msg.Body,
			Direction: msg.Direction.String(),
			SentAt:    msg.SentAt,
		})
	}
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode transcript: %w", err)
	}
	return data, nil
}

// RestoreTranscript rebuilds a conversation from EncodeTranscript output. The
// configured greeting is not replayed.
func RestoreTranscript(cfg config.ChatConfig, data []byte, opts ...Option) (*Conversation, error) {
	var st storedTranscript
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	if st.Next < 0 {
		return nil, fmt.Errorf("decode transcript: negative reply index %d", st.Next)
	}

	c := New(config.ChatConfig{
		Peer:        cfg.Peer,
		Self:        cfg.Self,
		TypingDelay: cfg.TypingDelay,
		Replies:     cfg.Replies,
	}, opts...)
	c.next = st.Next
	for _, m := range st.Messages {
		dir := Incoming
		if m.Direction == Outgoing.String() {
			dir = Outgoing
		}
		c.messages = append(c.messages, Message{
			ID:        m.ID,
			Author:    m.Author,
			Body:      m.Body,
			Direction: dir,
			SentAt:    m.SentAt,
		})
	}
	return c, nil
}
