package names_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/fitd/internal/errors"
	"github.com/KirkDiggler/fitd/internal/names"
	"github.com/KirkDiggler/fitd/internal/testutils"
	"github.com/KirkDiggler/fitd/internal/testutils/builders"
)

func TestFingerprint_TracksContainers(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	empty, err := names.Fingerprint(ctx, root)
	require.NoError(t, err)

	again, err := names.Fingerprint(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, empty, again)

	testutils.WriteFile(t, root, "notes.txt", []byte("ignored"))
	withNotes, err := names.Fingerprint(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, empty, withNotes)

	testutils.WriteFile(t, root, "c00.pac", builders.NewArchiveBuilder().WithEntry("A01Wait1.omo").Build())
	added, err := names.Fingerprint(ctx, root)
	require.NoError(t, err)
	assert.NotEqual(t, empty, added)

	path := filepath.Join(root, "c00.pac")
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))
	touched, err := names.Fingerprint(ctx, root)
	require.NoError(t, err)
	assert.NotEqual(t, added, touched)

	require.NoError(t, os.Remove(path))
	removed, err := names.Fingerprint(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, empty, removed)
}

func TestFingerprint_UnusableRoot(t *testing.T) {
	root := t.TempDir()

	_, err := names.Fingerprint(context.Background(), filepath.Join(root, "nope"))
	assert.True(t, errors.IsNotFound(err))

	testutils.WriteFile(t, root, "main.pac", nil)
	_, err = names.Fingerprint(context.Background(), filepath.Join(root, "main.pac"))
	assert.True(t, errors.IsInvalidArgument(err))
}
