package main

import (
	"fmt"

	"sdi-showcase/internal/pkg/videourl"

	"github.com/spf13/cobra"
)

func newVideoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "video <url>",
		Short: "Print the embeddable player URL for a YouTube or Vimeo link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), videourl.Normalize(args[0]))
			return err
		},
	}
}
