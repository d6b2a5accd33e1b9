package names

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/KirkDiggler/fitd/internal/containers"
	"github.com/KirkDiggler/fitd/internal/errors"
)

// Fingerprint summarises the containers below root: their slash-separated
// relative paths, sizes and modification times, sorted by path. Adding,
// removing or touching a container changes the result.
func Fingerprint(ctx context.Context, root string) (string, error) {
	if err := checkRoot(root); err != nil {
		return "", err
	}

	var lines []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
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

		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		lines = append(lines, fmt.Sprintf("%s\x00%d\x00%d\n",
			filepath.ToSlash(rel), info.Size(), info.ModTime().UnixNano()))
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", errors.WrapWithCode(err, errors.CodeCanceled, "motion folder fingerprint canceled")
		}
		return "", errors.Wrapf(err, "failed to walk motion folder %s", root)
	}

	sort.Strings(lines)
	h := sha256.New()
	for _, line := range lines {
		h.Write([]byte(line))
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
