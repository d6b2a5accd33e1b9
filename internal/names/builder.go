package names

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/KirkDiggler/fitd/internal/containers"
	"github.com/KirkDiggler/fitd/internal/errors"
	"github.com/KirkDiggler/fitd/internal/variants"
)

// BuilderConfig holds the dependencies for a Builder
type BuilderConfig struct {
	Generator *variants.Generator
	Logger    *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *BuilderConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	return vb.Build()
}

// Builder scans motion containers into an Index.
type Builder struct {
	gen *variants.Generator
	log *zap.Logger
}

// NewBuilder creates a Builder
func NewBuilder(cfg *BuilderConfig) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Builder{
		gen: cfg.Generator,
		log: log.Named("names"),
	}, nil
}

// ParseAll scans every recognised container below root into a new Index.
func (b *Builder) ParseAll(ctx context.Context, root string) (*Index, error) {
	idx := NewIndex()
	if err := b.ParseInto(ctx, idx, root); err != nil {
		return nil, err
	}
	return idx, nil
}

// ParseInto scans every recognised container below root into idx, in
// directory walk order. Damaged files are logged and skipped; only an
// unusable root or cancellation is returned.
func (b *Builder) ParseInto(ctx context.Context, idx *Index, root string) error {
	if err := checkRoot(root); err != nil {
		return err
	}

	var files, failed int
	before := idx.Len()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			b.log.Warn("skipping unreadable path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := containers.KindOf(path); !ok {
			return nil
		}

		files++
		if err := b.ParseFile(idx, path); err != nil {
			failed++
			b.log.Warn("skipping damaged container", zap.String("path", path), zap.Error(err))
		}
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return errors.WrapWithCode(err, errors.CodeCanceled, "motion folder scan canceled")
		}
		return errors.Wrapf(err, "failed to walk motion folder %s", root)
	}

	b.log.Info("motion folder scanned",
		zap.String("root", root),
		zap.Int("containers", files),
		zap.Int("damaged", failed),
		zap.Int("names_added", idx.Len()-before),
	)
	return nil
}

// ParseFile scans a single container into idx. Files with an unrecognised
// extension are ignored. Every base name is expanded and inserted before the
// next entry is read.
func (b *Builder) ParseFile(idx *Index, path string) error {
	kind, ok := containers.KindOf(path)
	if !ok {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read container %s", path).WithPath(path)
	}

	yield := func(base string) {
		b.log.Debug("animation found", zap.String("path", path), zap.String("base", base))
		for _, name := range b.gen.Generate(base) {
			idx.Insert(name)
		}
	}
	skip := func(err error) {
		b.log.Warn("skipping container entry", zap.String("path", path), zap.Error(err))
	}

	if err := containers.Extract(kind, data, yield, skip); err != nil {
		return errors.Wrapf(err, "failed to scan %s container", kind).WithPath(path)
	}
	return nil
}

// checkRoot reports NotFound for a missing motion folder and InvalidArgument
// for one that is not a directory.
func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFoundf("motion folder %s does not exist", root).WithPath(root)
		}
		return errors.Wrapf(err, "failed to stat motion folder %s", root)
	}
	if !info.IsDir() {
		return errors.InvalidArgumentf("motion folder %s is not a directory", root).WithPath(root)
	}
	return nil
}
