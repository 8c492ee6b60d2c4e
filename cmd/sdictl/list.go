package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(withApp runWithApp) *cobra.Command {
	return &cobra.Command{
		Use:       "list <listings|affiliates|clients>",
		Short:     "Print a stored collection as indented JSON, newest first",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"listings", "affiliates", "clients"},
		RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
			var v any
			switch args[0] {
			case "listings":
				v = a.session.Listings.Snapshot()
			case "affiliates":
				v = a.session.Affiliates.Snapshot()
			case "clients":
				v = a.session.Clients.Snapshot()
			default:
				return fmt.Errorf("unknown collection %q", args[0])
			}
			b, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		}),
	}
}
