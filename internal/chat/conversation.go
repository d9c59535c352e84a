// Package chat holds the simulated conversation shown on the chat tab.
package chat

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/atlas/internal/config"
)

// ErrEmptyMessage is returned when sending a blank message.
var ErrEmptyMessage = errors.New("message is empty")

// Direction tells which side of the conversation wrote a message.
type Direction int

const (
	Incoming Direction = iota
	Outgoing
)

func (d Direction) String() string {
	if d == Outgoing {
		return "outgoing"
	}
	return "incoming"
}

// Message is one chat bubble.
type Message struct {
	ID        uuid.UUID
	Author    string
	Body      string
	Direction Direction
	SentAt    time.Time
}

// Conversation is an in-memory exchange between the user and a scripted peer.
// It is not safe for concurrent use; the dashboard drives it from its update loop.
type Conversation struct {
	peer     string
	self     string
	delay    time.Duration
	replies  []string
	next     int
	pending  int
	messages []Message
	now      func() time.Time
}

// Option customizes a Conversation.
type Option func(*Conversation)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Conversation) {
		if now != nil {
			c.now = now
		}
	}
}

// New starts a conversation seeded with the configured greeting.
func New(cfg config.ChatConfig, opts ...Option) *Conversation {
	c := &Conversation{
		peer:    cfg.Peer,
		self:    cfg.Self,
		delay:   cfg.TypingDelay,
		replies: append([]string(nil), cfg.Replies...),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, line := range cfg.Greeting {
		c.append(Incoming, line)
	}
	return c
}

// Peer returns the scripted participant's name.
func (c *Conversation) Peer() string { return c.peer }

// Self returns the local participant's name.
func (c *Conversation) Self() string { return c.self }

// TypingDelay is how long the peer appears to type before replying.
func (c *Conversation) TypingDelay() time.Duration { return c.delay }

// Typing reports whether a reply is pending.
func (c *Conversation) Typing() bool { return c.pending > 0 }

// Pending returns the number of outgoing messages still waiting for a reply.
func (c *Conversation) Pending() int { return c.pending }

// Messages returns a copy of the transcript, oldest first.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages.
func (c *Conversation) Len() int { return len(c.messages) }

// Send records an outgoing message. When the peer has replies to give, each
// sent message owes exactly one reply.
func (c *Conversation) Send(body string) (Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return Message{}, ErrEmptyMessage
	}
	msg := c.append(Outgoing, body)
	if len(c.replies) > 0 {
		c.pending++
	}
	return msg, nil
}

// Reply settles the oldest pending message with the next canned reply,
// cycling through the configured list. It reports false when no reply was
// pending.
func (c *Conversation) Reply() (Message, bool) {
	if c.pending == 0 || len(c.replies) == 0 {
		return Message{}, false
	}
	body := c.replies[c.next%len(c.replies)]
	c.next++
	c.pending--
	return c.append(Incoming, body), true
}

func (c *Conversation) append(dir Direction, body string) Message {
	author := c.peer
	if dir == Outgoing {
		author = c.self
	}
	msg := Message{
		ID:        uuid.New(),
		Author:    author,
		Body:      body,
		Direction: dir,
		SentAt:    c.now(),
	}
	c.messages = append(c.messages, msg)
	return msg
}
