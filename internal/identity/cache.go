package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const profileKeyPrefix = "profile:v1:"

// ProfileCache keeps recently read profiles in Redis. A nil *ProfileCache is
// valid and behaves as an always-empty cache.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProfileCache returns a cache backed by client, or nil when client is nil.
func NewProfileCache(client *redis.Client, ttl time.Duration) *ProfileCache {
	if client == nil {
		return nil
	}
	return &ProfileCache{client: client, ttl: ttl}
}

func profileKey(id int64) string {
	return profileKeyPrefix + strconv.FormatInt(id, 10)
}

// Get returns the cached profile and whether it was found.
func (c *ProfileCache) Get(ctx context.Context, id int64) (Profile, bool, error) {
	if c == nil {
		return Profile{}, false, nil
	}
	data, err := c.client.Get(ctx, profileKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Profile{}, false, nil
		}
		return Profile{}, false, fmt.Errorf("profile cache get: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, false, fmt.Errorf("profile cache decode: %w", err)
	}
	return p, true, nil
}

// Set stores p under its id.
func (c *ProfileCache) Set(ctx context.Context, p Profile) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("profile cache encode: %w", err)
	}
	if err := c.client.Set(ctx, profileKey(p.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("profile cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached profile for id.
func (c *ProfileCache) Invalidate(ctx context.Context, id int64) error {
	if c == nil {
		return nil
	}
	if err := c.client.Del(ctx, profileKey(id)).Err(); err != nil {
		return fmt.Errorf("profile cache delete: %w", err)
	}
	return nil
}
