package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/atlas/internal/chat"
)

// ChatList renders chat bubbles, incoming on the left and outgoing on the
// right, showing the newest messages that fit.
type ChatList struct {
	messages []chat.Message
	width    int
	typing   string
}

// NewChatList builds a list of messages for a pane of the given width.
func NewChatList(messages []chat.Message, width int) ChatList {
	if width < 20 {
		width = 20
	}
	return ChatList{messages: messages, width: width}
}

// WithTyping shows a typing status line for name.
func (c ChatList) WithTyping(name string) ChatList {
	c.typing = name
	return c
}

// View renders at most limit messages; zero means all.
func (c ChatList) View(limit int) string {
	msgs := c.messages
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}

	bubbleWidth := c.width * 2 / 3
	rows := make([]string, 0, len(msgs)+1)
	for _, msg := range msgs {
		rows = append(rows, c.bubble(msg, bubbleWidth))
	}
	if c.typing != "" {
		rows = append(rows, authorStyle.Render(c.typing+" is typing…"))
	}
	return strings.Join(rows, "\n")
}

func (c ChatList) bubble(msg chat.Message, width int) string {
	style := incomingStyle
	align := lipgloss.Left
	if msg.Direction == chat.Outgoing {
		style = outgoingStyle
		align = lipgloss.Right
	}

	body := lipgloss.JoinVertical(align,
		authorStyle.Render(msg.Author+" · "+msg.SentAt.Format("15:04")),
		style.MaxWidth(width).Render(msg.Body),
	)
	return lipgloss.PlaceHorizontal(c.width, align, body)
}
