package moveset

//go:generate mockgen -destination=mock/mock_writer.go -package=movesetmock github.com/KirkDiggler/fitd/internal/orchestrators/moveset Writer

import (
	"os"
	"path/filepath"

	"github.com/KirkDiggler/fitd/internal/errors"
)

// Writer stores generated documents. Names are slash separated and
// relative to the writer's root.
type Writer interface {
	WriteFile(name string, data []byte) error
}

// DirWriter writes below a directory on disk
type DirWriter struct {
	root string
}

// NewDirWriter creates a writer rooted at dir. The directory is not created.
func NewDirWriter(dir string) *DirWriter {
	return &DirWriter{root: dir}
}

// WriteFile writes data to root/name, replacing any existing file
func (w *DirWriter) WriteFile(name string, data []byte) error {
	rel := filepath.FromSlash(name)
	if !filepath.IsLocal(rel) {
		return errors.InvalidArgumentf("output name %q escapes the output directory", name)
	}

	path := filepath.Join(w.root, rel)
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306
		return errors.Wrapf(err, "failed to write %s", path).WithPath(path)
	}
	return nil
}

var _ Writer = (*DirWriter)(nil)
