// Package moveset merges the category script tables of a fighter into
// per-move definitions and writes them out with the fighter's move list.
package moveset

import (
	"context"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/fitd/internal/checksum"
	"github.com/KirkDiggler/fitd/internal/errors"
	"github.com/KirkDiggler/fitd/internal/scripts"
)

// Service defines the interface for move assembly
type Service interface {
	// Assemble writes one definition per move and the move list.
	// Per-move write failures are counted, not returned.
	Assemble(ctx context.Context, input *AssembleInput) (*AssembleOutput, error)
}

// Config holds the dependencies for the moveset orchestrator
type Config struct {
	Writer Writer
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Writer == nil {
		vb.RequiredField("Writer")
	}
	return vb.Build()
}

type orchestrator struct {
	writer Writer
	log    *zap.Logger
}

// NewOrchestrator creates a new moveset orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &orchestrator{
		writer: cfg.Writer,
		log:    log.Named("moveset"),
	}, nil
}

func (o *orchestrator) Assemble(ctx context.Context, input *AssembleInput) (*AssembleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &AssembleOutput{}

	out.MoveList = make([]string, 0, len(input.MoveTable))
	for _, sum := range input.MoveTable {
		out.MoveList = append(out.MoveList, input.Index.Resolve(sum))
	}
	if err := o.writer.WriteFile(MoveListFile, []byte(joinLines(out.MoveList))); err != nil {
		o.log.Error("failed to write move list", zap.String("file", MoveListFile), zap.Error(err))
		out.Failed++
	}

	listed := input.MoveTable.Set()
	for _, sum := range mergeOrder(input.MoveTable, input.Tables) {
		if err := ctx.Err(); err != nil {
			return out, errors.WrapWithCode(err, errors.CodeCanceled, "move assembly canceled")
		}

		_, isListed := listed[sum]
		def := &MoveDefinition{
			Name:     input.Index.Resolve(sum),
			Unlisted: !isListed,
		}
		for cat, table := range input.Tables {
			if table == nil {
				continue
			}
			if s, ok := table.Script(sum); ok {
				def.set(cat, s)
			}
		}

		move := Move{
			Checksum: sum,
			Name:     def.Name,
			Listed:   isListed,
			File:     path.Join(AnimcmdDir, def.Name+MoveDefExt),
		}
		if err := o.writer.WriteFile(move.File, []byte(def.Render())); err != nil {
			o.log.Warn("failed to write move definition",
				zap.String("move", def.Name),
				zap.String("checksum", checksum.Format(sum)),
				zap.Error(err),
			)
			move.Err = err
			out.Failed++
		} else {
			out.Written++
		}
		out.Moves = append(out.Moves, move)
	}

	o.log.Info("moves assembled",
		zap.Int("listed", len(input.MoveTable)),
		zap.Int("total", len(out.Moves)),
		zap.Int("written", out.Written),
		zap.Int("failed", out.Failed),
	)
	return out, nil
}

// mergeOrder returns the move table followed by every table key not seen
// yet. Tables are visited in category order, keys in table order.
func mergeOrder(table scripts.MoveTable, tables map[scripts.Category]scripts.Table) []uint32 {
	seen := make(map[uint32]struct{}, len(table))
	order := make([]uint32, 0, len(table))
	for _, sum := range table {
		// The move table itself may repeat a checksum; keep every entry.
		order = append(order, sum)
		seen[sum] = struct{}{}
	}

	for _, cat := range scripts.Categories() {
		t := tables[cat]
		if t == nil {
			continue
		}
		for _, sum := range t.Keys() {
			if _, ok := seen[sum]; ok {
				continue
			}
			seen[sum] = struct{}{}
			order = append(order, sum)
		}
	}
	return order
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
