package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
)

const directoryKey = "lawyers:directory"
const directoryTTL = 5 * time.Minute

// DirectoryCache caches the full public lawyer directory in Redis.
// Failures are logged and swallowed: the cache must never take a read
// path down with it.
type DirectoryCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewDirectoryCache creates a DirectoryCache wrapping the given Redis client.
func NewDirectoryCache(client *redis.Client, log zerolog.Logger) *DirectoryCache {
	return &DirectoryCache{client: client, log: log}
}

// Get returns the cached directory, or ok=false on a miss or error.
func (d *DirectoryCache) Get(ctx context.Context) ([]*domain.LawyerProfile, bool) {
	raw, err := d.client.Get(ctx, directoryKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			d.log.Warn().Err(err).Msg("directory cache read failed")
		}
		return nil, false
	}

	var profiles []*domain.LawyerProfile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		d.log.Warn().Err(err).Msg("directory cache decode failed")
		return nil, false
	}
	return profiles, true
}

// Set stores the directory with a TTL.
func (d *DirectoryCache) Set(ctx context.Context, profiles []*domain.LawyerProfile) {
	raw, err := json.Marshal(profiles)
	if err != nil {
		d.log.Warn().Err(err).Msg("directory cache encode failed")
		return
	}
	if err := d.client.Set(ctx, directoryKey, raw, directoryTTL).Err(); err != nil {
		d.log.Warn().Err(err).Msg("directory cache write failed")
	}
}

// Invalidate drops the cached directory; called when a lawyer registers.
func (d *DirectoryCache) Invalidate(ctx context.Context) {
	if err := d.client.Del(ctx, directoryKey).Err(); err != nil {
		d.log.Warn().Err(err).Msg("directory cache invalidation failed")
	}
}
