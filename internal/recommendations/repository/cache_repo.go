package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prajwalpc099d/ProjectVault/internal/recommendations/domain"
)

const (
	// Key per user: rec:user:{uid}
	recKeyPrefix = "rec:user:"

	defaultRetention = 24 * time.Hour
)

// CacheRepo stores each user's last good recommendation result in Redis.
// Entries carry their computation time; the service decides freshness.
type CacheRepo struct {
	client    *redis.Client
	retention time.Duration
}

func NewCacheRepo(client *redis.Client, retention time.Duration) *CacheRepo {
	if retention <= 0 {
		retention = defaultRetention
	}
	return &CacheRepo{client: client, retention: retention}
}

func (r *CacheRepo) key(uid string) string {
	return recKeyPrefix + uid
}

// Get returns the cached result for a user, or (nil, nil) when absent.
func (r *CacheRepo) Get(ctx context.Context, uid string) (*domain.CachedResult, error) {
	data, err := r.client.Get(ctx, r.key(uid)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached recommendations: %w", err)
	}

	var cached domain.CachedResult
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached recommendations: %w", err)
	}

	return &cached, nil
}

// Put stores a freshly computed result, restarting the retention TTL.
func (r *CacheRepo) Put(ctx context.Context, uid string, items []domain.Recommendation) error {
	payload, err := json.Marshal(domain.CachedResult{
		Items:      items,
		ComputedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := r.client.Set(ctx, r.key(uid), payload, r.retention).Err(); err != nil {
		return fmt.Errorf("failed to cache recommendations: %w", err)
	}
	return nil
}

// Users lists every user with a cached entry, for the warm refresher.
func (r *CacheRepo) Users(ctx context.Context) ([]string, error) {
	var (
		uids   []string
		cursor uint64
	)

	for {
		keys, next, err := r.client.Scan(ctx, cursor, recKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan recommendation keys: %w", err)
		}
		for _, key := range keys {
			uids = append(uids, strings.TrimPrefix(key, recKeyPrefix))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	return uids, nil
}
