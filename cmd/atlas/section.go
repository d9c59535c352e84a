package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atlas/internal/storage"
)

func newSectionCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Inspect the remembered vision section",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored section index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			store, err := app.OpenStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			idx, ok, err := store.LoadSectionIndex(ctx)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No section stored.")
				return nil
			}
			if idx >= len(cfg.Sections) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %d (out of range, the first section will be used)\n", storage.SectionKey, idx)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %d (%s)\n", storage.SectionKey, idx, cfg.Sections[idx].ID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the stored section index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := app.OpenStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(ctx, storage.SectionKey); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Section index cleared.")
			return nil
		},
	})

	return cmd
}
