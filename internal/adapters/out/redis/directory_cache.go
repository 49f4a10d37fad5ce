// Package redis provides the directory cache adapter. The global server
// listing is read-mostly and cheap to rebuild, so entries carry a short TTL
// instead of being invalidated on profile writes.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"procserve/internal/core/application/usecases/queries"

	goredis "github.com/redis/go-redis/v9"
)

// DirectoryCache implements queries.DirectoryCache on a redis client.
type DirectoryCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewDirectoryCache creates a directory cache with the given entry TTL.
func NewDirectoryCache(client *goredis.Client, ttl time.Duration) *DirectoryCache {
	return &DirectoryCache{
		client: client,
		ttl:    ttl,
	}
}

// GetListing returns the cached listing for the key. A missing key is not an
// error: it reports found=false.
func (c *DirectoryCache) GetListing(
	ctx context.Context,
	key string,
) ([]queries.GetGlobalProcessServersQueryResponse, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var listing []queries.GetGlobalProcessServersQueryResponse
	if err := json.Unmarshal(payload, &listing); err != nil {
		return nil, false, err
	}

	return listing, true, nil
}

// SetListing stores the listing under the key with the configured TTL.
func (c *DirectoryCache) SetListing(
	ctx context.Context,
	key string,
	listing []queries.GetGlobalProcessServersQueryResponse,
) error {
	payload, err := json.Marshal(listing)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, payload, c.ttl).Err()
}
