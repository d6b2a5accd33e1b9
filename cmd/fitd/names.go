package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/fitd/internal/checksum"
	"github.com/KirkDiggler/fitd/internal/names"
	"github.com/KirkDiggler/fitd/internal/variants"
)

func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names <motionDir>",
		Short: "Print the name index built from a motion folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := names.NewBuilder(&names.BuilderConfig{
				Generator: variants.NewGenerator(variants.Builtins()),
				Logger:    log,
			})
			if err != nil {
				return err
			}

			idx, err := builder.ParseAll(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, e := range idx.Entries() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", checksum.Format(e.Checksum), e.Name)
			}
			return nil
		},
	}
}
