package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newExportCmd(withApp runWithApp) *cobra.Command {
	export := &cobra.Command{
		Use:   "export",
		Short: "Print the same JSON text the site copies to the clipboard",
	}

	export.AddCommand(
		&cobra.Command{
			Use:   "listing <id>",
			Short: "Export one listing",
			Args:  cobra.ExactArgs(1),
			RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
				id, err := uuid.Parse(args[0])
				if err != nil {
					return fmt.Errorf("invalid listing id %q: %w", args[0], err)
				}
				b, err := a.listings.Export(cmd.Context(), id)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return err
			}),
		},
		&cobra.Command{
			Use:   "clients",
			Short: "Export the whole client list",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
				b, err := a.clients.Export(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return err
			}),
		},
	)
	return export
}
