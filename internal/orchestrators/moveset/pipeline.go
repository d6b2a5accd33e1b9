package moveset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/fitd/internal/errors"
	"github.com/KirkDiggler/fitd/internal/names"
	"github.com/KirkDiggler/fitd/internal/pkg/idgen"
	"github.com/KirkDiggler/fitd/internal/repositories/nameindex"
	"github.com/KirkDiggler/fitd/internal/scripts"
)

const moveTableExt = ".mtable"

// PipelineConfig holds the dependencies for a decompile Pipeline
type PipelineConfig struct {
	Builder *names.Builder
	// Cache is optional
	Cache    nameindex.Repository
	CacheTTL time.Duration
	// Decoder renders script bodies; nil selects a RawDecoder
	Decoder     scripts.Decoder
	IDGenerator idgen.Generator
	// NewWriter opens the writer for an output directory; defaults to a
	// DirWriter.
	NewWriter func(dir string) Writer
	Logger    *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *PipelineConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Builder == nil {
		vb.RequiredField("Builder")
	}
	if c.CacheTTL < 0 {
		vb.Field("CacheTTL", "must not be negative")
	}
	return vb.Build()
}

// Pipeline runs a full decompile: index the motion folder, load the script
// tables next to the move table, and assemble the moves.
type Pipeline struct {
	builder   *names.Builder
	cache     nameindex.Repository
	cacheTTL  time.Duration
	decoder   scripts.Decoder
	idGen     idgen.Generator
	newWriter func(dir string) Writer
	log       *zap.Logger
}

// NewPipeline creates a Pipeline
func NewPipeline(cfg *PipelineConfig) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	p := &Pipeline{
		builder:   cfg.Builder,
		cache:     cfg.Cache,
		cacheTTL:  cfg.CacheTTL,
		decoder:   cfg.Decoder,
		idGen:     cfg.IDGenerator,
		newWriter: cfg.NewWriter,
		log:       cfg.Logger,
	}
	if p.decoder == nil {
		p.decoder = &scripts.RawDecoder{}
	}
	if p.idGen == nil {
		p.idGen = idgen.NewUUID("run")
	}
	if p.newWriter == nil {
		p.newWriter = func(dir string) Writer { return NewDirWriter(dir) }
	}
	if p.log == nil {
		p.log = zap.NewNop()
	}
	return p, nil
}

// Run decompiles the move table named by input.Target. A target that is not
// a .mtable file is a no-op.
func (p *Pipeline) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Target == "" {
		vb.RequiredField("Target")
	}
	if input.OutputDir == "" {
		vb.RequiredField("OutputDir")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out := &RunOutput{RunID: p.idGen.Generate(), IndexSource: IndexSourceNone}
	log := p.log.With(zap.String("run_id", out.RunID))

	if !strings.EqualFold(filepath.Ext(input.Target), moveTableExt) {
		log.Info("target is not a move table, nothing to do", zap.String("target", input.Target))
		out.Skipped = true
		return out, nil
	}

	scriptDir := filepath.Join(input.OutputDir, AnimcmdDir)
	if err := os.MkdirAll(scriptDir, 0o755); err != nil { // #nosec G301
		return nil, errors.WrapWithCodef(err, errors.CodeFailedPrecondition,
			"failed to create output directory %s", scriptDir).WithPath(scriptDir)
	}
	log.Info("decompiling move table", zap.String("target", input.Target), zap.String("output", scriptDir))

	var (
		idx    *names.Index
		tables *scripts.CategoryTables
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		idx, out.IndexSource, err = p.loadIndex(gctx, input.MotionDir, log)
		return err
	})
	g.Go(func() error {
		tables = scripts.LoadCategoryTables(filepath.Dir(input.Target), p.decoder, log)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out.IndexSize = idx.Len()
	for _, cat := range scripts.Categories() {
		if tables.Table(cat) != nil {
			out.Categories = append(out.Categories, cat)
		}
	}

	moveTable, err := scripts.LoadMoveTable(input.Target, tables.Order)
	if err != nil {
		return nil, err
	}

	svc, err := NewOrchestrator(&Config{
		Writer: p.newWriter(input.OutputDir),
		Logger: log,
	})
	if err != nil {
		return nil, err
	}

	assembled, err := svc.Assemble(ctx, &AssembleInput{
		MoveTable: moveTable,
		Index:     idx,
		Tables:    tables.Tables,
	})
	if err != nil {
		return nil, err
	}
	out.Assemble = assembled

	log.Info("finished",
		zap.String("index_source", out.IndexSource),
		zap.Int("names", out.IndexSize),
		zap.Int("written", assembled.Written),
		zap.Int("failed", assembled.Failed),
	)
	return out, nil
}

// loadIndex serves the name index from the cache when the motion folder is
// unchanged since it was saved, otherwise scans the folder and refreshes the
// cache. A missing or unusable motion folder yields an empty index.
func (p *Pipeline) loadIndex(ctx context.Context, root string, log *zap.Logger) (*names.Index, string, error) {
	if root == "" {
		return names.NewIndex(), IndexSourceNone, nil
	}

	fingerprint, err := names.Fingerprint(ctx, root)
	if err != nil {
		if errors.IsNotFound(err) || errors.IsInvalidArgument(err) {
			log.Warn("motion folder unusable, continuing with an empty name index",
				zap.String("root", root), zap.Error(err))
			return names.NewIndex(), IndexSourceNone, nil
		}
		return nil, IndexSourceNone, err
	}

	if p.cache != nil {
		cached, err := p.cache.Get(ctx, nameindex.GetInput{Root: root})
		switch {
		case err == nil && cached.Fingerprint == fingerprint:
			log.Info("name index served from cache",
				zap.String("root", root),
				zap.Time("built_at", cached.BuiltAt),
				zap.Int("names", len(cached.Entries)),
			)
			return cached.Index(), IndexSourceCache, nil
		case err == nil:
			log.Info("cached name index is stale", zap.String("root", root), zap.Time("built_at", cached.BuiltAt))
		case errors.IsNotFound(err):
			log.Debug("name index not cached", zap.String("root", root))
		default:
			log.Warn("name index cache unavailable", zap.Error(err))
		}
	}

	idx, err := p.builder.ParseAll(ctx, root)
	if err != nil {
		return nil, IndexSourceNone, err
	}

	if p.cache != nil {
		if _, err := p.cache.Save(ctx, nameindex.SaveInput{
			Root:        root,
			Fingerprint: fingerprint,
			Entries:     idx.Entries(),
			TTL:         p.cacheTTL,
		}); err != nil {
			log.Warn("failed to cache name index", zap.Error(err))
		}
	}
	return idx, IndexSourceScan, nil
}
