package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tickermatch/internal/dataset"
	"tickermatch/internal/store"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import reference data into the local database",
	}

	importCmd.AddCommand(&cobra.Command{
		Use:   "sponsors <file.csv>",
		Short: "Replace the sponsor reference set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sponsors, err := dataset.ReadSponsors(args[0])
			if err != nil {
				return err
			}
			return ctx.withStore(func(s *store.Store) error {
				if err := s.ReplaceSponsors(cmd.Context(), sponsors); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sponsors\n", len(sponsors))
				return nil
			})
		},
	})

	importCmd.AddCommand(&cobra.Command{
		Use:   "tickers <file.csv>",
		Short: "Replace the ticker reference set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tickers, err := dataset.ReadTickers(args[0])
			if err != nil {
				return err
			}
			return ctx.withStore(func(s *store.Store) error {
				if err := s.ReplaceTickers(cmd.Context(), tickers); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tickers\n", len(tickers))
				return nil
			})
		},
	})

	importCmd.AddCommand(&cobra.Command{
		Use:   "labels <file.csv>",
		Short: "Replace the review labels used by evaluate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := dataset.ReadLabels(args[0])
			if err != nil {
				return err
			}
			return ctx.withStore(func(s *store.Store) error {
				if err := s.ReplaceLabels(cmd.Context(), labels); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d labels\n", len(labels))
				return nil
			})
		},
	})

	return importCmd
}
