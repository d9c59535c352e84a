package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atlas/internal/search"
)

type panelsOptions struct {
	jsonOutput bool
	limit      int
}

func newPanelsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "panels",
		Short: "List and search tabs, sections and apps",
	}

	cmd.AddCommand(newPanelsListCmd(app))
	cmd.AddCommand(newPanelsFindCmd(app))

	return cmd
}

func newPanelsListCmd(app *AppContext) *cobra.Command {
	opts := &panelsOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every navigable panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config()
			if err != nil {
				return err
			}
			entries := search.NewIndex(cfg).Entries()
			if opts.jsonOutput {
				return renderEntriesJSON(cmd, entries)
			}
			return renderEntriesTable(cmd, entries)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newPanelsFindCmd(app *AppContext) *cobra.Command {
	opts := &panelsOptions{}

	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Rank panels against a query the way the dashboard palette does",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config()
			if err != nil {
				return err
			}
			results := search.NewIndex(cfg).Find(args[0], opts.limit)
			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing matches %q.\n", args[0])
				return nil
			}
			entries := make([]search.Entry, len(results))
			for i, r := range results {
				entries[i] = r.Entry
			}
			if opts.jsonOutput {
				return renderEntriesJSON(cmd, entries)
			}
			return renderEntriesTable(cmd, entries)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 5, "Maximum number of results (0 for all)")

	return cmd
}

func renderEntriesTable(cmd *cobra.Command, entries []search.Entry) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "KIND\tID\tTITLE\tTARGET")
	for _, e := range entries {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", e.Kind, e.ID, e.Title, e.Target)
	}

	return writer.Flush()
}

type panelJSON struct {
	Kind     string   `json:"kind"`
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Target   string   `json:"target"`
	Keywords []string `json:"keywords,omitempty"`
}

type panelsJSONPayload struct {
	Count  int         `json:"count"`
	Panels []panelJSON `json:"panels"`
}

func renderEntriesJSON(cmd *cobra.Command, entries []search.Entry) error {
	payload := panelsJSONPayload{Count: len(entries), Panels: make([]panelJSON, len(entries))}
	for i, e := range entries {
		payload.Panels[i] = panelJSON{
			Kind:     string(e.Kind),
			ID:       e.ID,
			Title:    e.Title,
			Target:   e.Target,
			Keywords: e.Keywords,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
