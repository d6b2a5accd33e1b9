package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/fitd/internal/checksum"
)

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <name>...",
		Short: "Print the animation checksum of each name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", checksum.Format(checksum.Name(name)), name)
			}
			return nil
		},
	}
}
