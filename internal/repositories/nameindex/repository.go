// Package nameindex caches built name indexes so repeated runs over the same
// motion folder skip the container scan.
package nameindex

//go:generate mockgen -destination=mock/mock_repository.go -package=nameindexmock github.com/KirkDiggler/fitd/internal/repositories/nameindex Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/fitd/internal/names"
)

// DefaultTTL is how long a saved index stays valid when SaveInput.TTL is zero
const DefaultTTL = 24 * time.Hour

// Repository defines the interface for name index persistence
type Repository interface {
	// Get retrieves the index saved for a motion folder
	// Returns errors.InvalidArgument for an empty root
	// Returns errors.NotFound if nothing is saved or the record expired
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save stores the index for a motion folder, replacing any previous one
	// Returns errors.InvalidArgument for an empty root or negative TTL
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// GetInput defines the input for getting an index
type GetInput struct {
	Root string
}

// GetOutput defines the output for getting an index
type GetOutput struct {
	Root string
	// Fingerprint is the motion folder fingerprint the index was built from
	Fingerprint string
	Entries     []names.Entry
	BuiltAt     time.Time
}

// Index rebuilds the name index. Entries are replayed in their saved order.
func (o *GetOutput) Index() *names.Index {
	idx := names.NewIndex()
	for _, e := range o.Entries {
		idx.Insert(e.Name)
	}
	return idx
}

// SaveInput defines the input for saving an index
type SaveInput struct {
	Root        string
	Fingerprint string
	Entries     []names.Entry
	TTL         time.Duration
}

// SaveOutput defines the output for saving an index
type SaveOutput struct {
	Key       string
	BuiltAt   time.Time
	ExpiresAt time.Time
}
