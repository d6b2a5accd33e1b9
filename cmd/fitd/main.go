// Package main is the entry point for the fitd decompiler
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/fitd/internal/config"
	"github.com/KirkDiggler/fitd/internal/errors"
	"github.com/KirkDiggler/fitd/internal/logger"
)

// runtime state resolved in PersistentPreRunE
var (
	configFile string
	settings   *config.Config
	log        = zap.NewNop()
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fitd [fighter.mtable]",
		Short: "Fighter decompiler",
		Long: `fitd decompiles a fighter's animation command tables into one move
definition per move, naming moves from the animations found in the motion
folder.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              runDecompile,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (toml, yaml or json)")
	pf.CountP("verbose", "v", "increase log verbosity (-v info, -vv debug)")
	pf.Bool("json-logs", false, "write logs as JSON lines")

	f := cmd.Flags()
	f.StringP("output", "o", config.DefaultOutput, "output directory")
	f.StringP("motion", "m", "", "motion folder used to resolve animation names")
	f.StringP("events", "e", "", "event dictionary (ini) used to name script commands")
	f.String("redis", "", "redis address or URL for caching name indexes")
	f.Duration("cache-ttl", config.DefaultCacheTTL, "how long cached name indexes stay valid")

	cmd.AddCommand(newHashCmd())
	cmd.AddCommand(newNamesCmd())
	return cmd
}

func setup(cmd *cobra.Command, _ []string) error {
	v := config.NewViper()
	if err := config.BindFlags(v, cmd); err != nil {
		return err
	}

	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	settings = cfg
	log = logger.New(logger.Options{
		Verbosity: cfg.Verbose,
		JSON:      cfg.JSONLogs,
		Output:    cmd.ErrOrStderr(),
	})
	return nil
}

func main() {
	err := rootCmd.Execute()
	_ = log.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
