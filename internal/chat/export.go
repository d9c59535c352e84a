package chat

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const transcriptTimeLayout = "2006-01-02 15:04"

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	policy   = bluemonday.UGCPolicy()
)

// Markdown renders the transcript as a Markdown document.
func Markdown(c *Conversation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Conversation with %s\n\n", c.Peer())
	for _, msg := range c.Messages() {
		fmt.Fprintf(&b, "**%s** · %s\n\n%s\n\n", msg.Author, msg.SentAt.Format(transcriptTimeLayout), msg.Body)
	}
	return b.String()
}

// ExportHTML writes a standalone HTML page with the transcript. Message bodies
// are treated as Markdown and the rendered output is sanitized.
func ExportHTML(w io.Writer, c *Conversation) error {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(Markdown(c)), &body); err != nil {
		return fmt.Errorf("render transcript: %w", err)
	}
	safe := policy.SanitizeBytes(body.Bytes())

	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Conversation with %s</title>
</head>
<body>
%s</body>
</html>
`, html.EscapeString(c.Peer()), safe)
	if err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}
