package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atlas/internal/chat"
	"github.com/alexisbeaulieu97/atlas/internal/config"
	"github.com/alexisbeaulieu97/atlas/internal/logger"
)

type keyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type chatExportOptions struct {
	html   bool
	output string
}

func newChatCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Work with the saved chat transcript",
	}

	cmd.AddCommand(newChatExportCmd(app))
	cmd.AddCommand(newChatClearCmd(app))

	return cmd
}

func newChatExportCmd(app *AppContext) *cobra.Command {
	opts := &chatExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the chat transcript as Markdown or sanitized HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChatExport(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.html, "html", false, "Render HTML instead of Markdown")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func runChatExport(cmd *cobra.Command, app *AppContext, opts *chatExportOptions) error {
	cfg, err := app.Config()
	if err != nil {
		return err
	}
	log, err := app.CommandLogger(cmd, "chat.export")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := app.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	conv := loadConversation(ctx, store, cfg, log)

	var out io.Writer = cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return newCommandError("export chat", opts.output, err, "Check that the output directory exists and is writable.")
		}
		defer f.Close()
		out = f
	}

	if opts.html {
		return chat.ExportHTML(out, conv)
	}
	_, err = io.WriteString(out, chat.Markdown(conv))
	return err
}

func newChatClearCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the saved chat transcript",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := app.OpenStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(ctx, chat.TranscriptKey); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Chat transcript cleared.")
			return nil
		},
	}
}

// loadConversation restores the saved transcript, or starts a fresh one when
// nothing usable is stored.
func loadConversation(ctx context.Context, store keyValueStore, cfg *config.Config, log *logger.Logger) *chat.Conversation {
	raw, ok, err := store.Get(ctx, chat.TranscriptKey)
	if err != nil {
		log.Error(err, "failed to read chat transcript")
	}
	if !ok || err != nil {
		return chat.New(cfg.Chat)
	}

	conv, err := chat.RestoreTranscript(cfg.Chat, []byte(raw))
	if err != nil {
		log.Error(err, "discarding unreadable chat transcript")
		return chat.New(cfg.Chat)
	}
	return conv
}

func saveConversation(ctx context.Context, store keyValueStore, conv *chat.Conversation, log *logger.Logger) {
	data, err := chat.EncodeTranscript(conv)
	if err != nil {
		log.Error(err, "failed to encode chat transcript")
		return
	}
	if err := store.Set(ctx, chat.TranscriptKey, string(data)); err != nil {
		log.Error(err, "failed to save chat transcript")
	}
}
