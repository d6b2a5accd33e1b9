package nameindex

import (
	"context"
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/KirkDiggler/fitd/internal/errors"
	"github.com/KirkDiggler/fitd/internal/names"
	"github.com/KirkDiggler/fitd/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/fitd/internal/redis"
)

const (
	keyPrefix = "name_index:"

	errRootEmpty = "root cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis name index repository.
type RedisConfig struct {
	Client redisclient.Client
	// Clock defaults to the system clock
	Clock clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed name index repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// indexRecord is what gets serialized to Redis
type indexRecord struct {
	Root        string        `json:"root"`
	Fingerprint string        `json:"fingerprint"`
	BuiltAt     time.Time     `json:"built_at"`
	Entries     []entryRecord `json:"entries"`
}

type entryRecord struct {
	Checksum uint32 `json:"checksum"`
	Name     string `json:"name"`
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Root == "" {
		return nil, errors.InvalidArgument(errRootEmpty)
	}

	key := Key(input.Root)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("name index for %s not found", input.Root)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to get name index for %s", input.Root)
	}

	var rec indexRecord
	if err := json.Unmarshal([]byte(result), &rec); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to unmarshal name index")
	}

	out := &GetOutput{
		Root:        rec.Root,
		Fingerprint: rec.Fingerprint,
		BuiltAt:     rec.BuiltAt,
		Entries:     make([]names.Entry, 0, len(rec.Entries)),
	}
	for _, e := range rec.Entries {
		out.Entries = append(out.Entries, names.Entry{Checksum: e.Checksum, Name: e.Name})
	}
	return out, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Root == "" {
		return nil, errors.InvalidArgument(errRootEmpty)
	}
	if input.TTL < 0 {
		return nil, errors.InvalidArgument("ttl cannot be negative")
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	rec := indexRecord{
		Root:        input.Root,
		Fingerprint: input.Fingerprint,
		BuiltAt:     r.clock.Now().UTC(),
		Entries:     make([]entryRecord, 0, len(input.Entries)),
	}
	for _, e := range input.Entries {
		rec.Entries = append(rec.Entries, entryRecord{Checksum: e.Checksum, Name: e.Name})
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to marshal name index")
	}

	key := Key(input.Root)
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to save name index for %s", input.Root)
	}

	return &SaveOutput{
		Key:       key,
		BuiltAt:   rec.BuiltAt,
		ExpiresAt: rec.BuiltAt.Add(ttl),
	}, nil
}

// Key returns the Redis key for a motion folder. Relative roots are made
// absolute so the same folder maps to one key.
func Key(root string) string {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return keyPrefix + filepath.ToSlash(filepath.Clean(root))
}
