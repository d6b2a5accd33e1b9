package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/fitd/internal/config"
	"github.com/KirkDiggler/fitd/internal/names"
	"github.com/KirkDiggler/fitd/internal/orchestrators/moveset"
	"github.com/KirkDiggler/fitd/internal/pkg/idgen"
	"github.com/KirkDiggler/fitd/internal/redis"
	"github.com/KirkDiggler/fitd/internal/repositories/nameindex"
	"github.com/KirkDiggler/fitd/internal/scripts"
	"github.com/KirkDiggler/fitd/internal/variants"
)

func runDecompile(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline, cleanup, err := newPipeline(ctx, settings)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := pipeline.Run(ctx, &moveset.RunInput{
		Target:    args[0],
		MotionDir: settings.Motion,
		OutputDir: settings.Output,
	})
	if err != nil {
		return err
	}

	if !out.Skipped {
		fmt.Fprintf(cmd.OutOrStdout(), "> %d moves written (%d failed) to %s\n",
			out.Assemble.Written, out.Assemble.Failed, settings.Output)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "> All tasks finished")
	return nil
}

// newPipeline wires the decompile pipeline from the resolved settings. The
// returned cleanup closes the cache connection, if any.
func newPipeline(ctx context.Context, cfg *config.Config) (*moveset.Pipeline, func(), error) {
	cleanup := func() {}

	var decoder scripts.Decoder
	if cfg.Events != "" {
		events, err := scripts.LoadEvents(cfg.Events)
		if err != nil {
			return nil, cleanup, err
		}
		log.Info("event dictionary loaded", zap.String("path", cfg.Events), zap.Int("events", len(events)))
		decoder = &scripts.RawDecoder{Events: events}
	}

	builder, err := names.NewBuilder(&names.BuilderConfig{
		Generator: variants.NewGenerator(variants.Builtins()),
		Logger:    log,
	})
	if err != nil {
		return nil, cleanup, err
	}

	var cache nameindex.Repository
	if cfg.Redis != "" {
		client, err := redis.NewClient(cfg.Redis, nil)
		if err != nil {
			return nil, cleanup, err
		}
		if err := redis.Ping(ctx, client); err != nil {
			log.Warn("name index cache disabled", zap.String("redis", cfg.Redis), zap.Error(err))
			_ = client.Close()
		} else {
			cleanup = func() { _ = client.Close() }
			cache, err = nameindex.NewRedis(&nameindex.RedisConfig{Client: client})
			if err != nil {
				return nil, cleanup, err
			}
		}
	}

	p, err := moveset.NewPipeline(&moveset.PipelineConfig{
		Builder:     builder,
		Cache:       cache,
		CacheTTL:    cfg.CacheTTL,
		Decoder:     decoder,
		IDGenerator: idgen.NewUUID("run"),
		Logger:      log,
	})
	if err != nil {
		return nil, cleanup, err
	}
	return p, cleanup, nil
}
