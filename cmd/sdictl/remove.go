package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRemoveListingCmd(withApp runWithApp) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-listing <id>",
		Short: "Delete a listing; unknown ids are ignored",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid listing id %q: %w", args[0], err)
			}
			removed, err := a.listingUC.Remove(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !removed {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "no listing %s\n", id)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", id)
			return err
		}),
	}
}
