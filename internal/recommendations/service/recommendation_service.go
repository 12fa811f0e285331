package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/prajwalpc099d/ProjectVault/internal/recommendations/domain"
	projdomain "github.com/prajwalpc099d/ProjectVault/internal/projects/domain"
)

// InteractionReader reads a user's positive interactions.
type InteractionReader interface {
	LikedProjectIDs(ctx context.Context, uid string) ([]string, error)
}

// ProjectCatalog reads project records for recommendation computation.
type ProjectCatalog interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]projdomain.Project, error)
	QueryByAnyTag(ctx context.Context, tags []string) ([]projdomain.Project, error)
}

// ResultCache stores the last good result per user. Get returns (nil, nil)
// when no entry exists.
type ResultCache interface {
	Get(ctx context.Context, uid string) (*domain.CachedResult, error)
	Put(ctx context.Context, uid string, items []domain.Recommendation) error
	Users(ctx context.Context) ([]string, error)
}

// Service computes tag-overlap recommendations.
//
// The pipeline is linear: liked ids → liked projects → tag union → candidate
// query → score. An empty liked set or empty tag union short-circuits to an
// empty result; that is a normal state, not a failure. Store failures fall
// back to the last good cached result when one exists, otherwise surface as
// domain.ErrUnavailable. The service itself never retries.
type Service struct {
	interactions InteractionReader
	catalog      ProjectCatalog
	cache        ResultCache
	limit        int
	freshFor     time.Duration
	log          *zap.Logger
}

func New(interactions InteractionReader, catalog ProjectCatalog, cache ResultCache, limit int, freshFor time.Duration, log *zap.Logger) *Service {
	if limit <= 0 {
		limit = domain.DefaultLimit
	}
	return &Service{
		interactions: interactions,
		catalog:      catalog,
		cache:        cache,
		limit:        limit,
		freshFor:     freshFor,
		log:          log,
	}
}

// GetRecommendations returns the ranked recommendations for a user. A cached
// result younger than the freshness window is served without recomputation
// unless forceRefresh is set.
func (s *Service) GetRecommendations(ctx context.Context, uid string, forceRefresh bool) ([]domain.Recommendation, error) {
	if !forceRefresh {
		if cached := s.cached(ctx, uid); cached != nil && time.Since(cached.ComputedAt) < s.freshFor {
			return cached.Items, nil
		}
	}

	items, err := s.compute(ctx, uid)
	if err != nil {
		// Keep-last-good: a stale result beats an error state.
		if cached := s.cached(ctx, uid); cached != nil {
			s.log.Warn("serving stale recommendations after compute failure",
				zap.String("user", uid),
				zap.Error(err),
			)
			return cached.Items, nil
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	if cerr := s.cache.Put(ctx, uid, items); cerr != nil {
		s.log.Warn("recommendation cache write failed", zap.String("user", uid), zap.Error(cerr))
	}

	return items, nil
}

// CachedUsers lists the users holding a cached result; the warm refresher
// iterates these.
func (s *Service) CachedUsers(ctx context.Context) ([]string, error) {
	return s.cache.Users(ctx)
}

func (s *Service) compute(ctx context.Context, uid string) ([]domain.Recommendation, error) {
	likedIDs, err := s.interactions.LikedProjectIDs(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("interaction store: %w", err)
	}
	if len(likedIDs) == 0 {
		// No liked projects yet; a common state, not an error.
		return []domain.Recommendation{}, nil
	}

	likedByID, err := s.catalog.GetByIDs(ctx, likedIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve liked projects: %w", err)
	}

	// Deleted projects are absent from the map; walk likedIDs so the tag
	// union is deterministic.
	liked := make([]projdomain.Project, 0, len(likedByID))
	for _, id := range likedIDs {
		if p, ok := likedByID[id]; ok {
			liked = append(liked, p)
		}
	}

	likedTags := domain.AggregateTags(liked)
	if len(likedTags) == 0 {
		return []domain.Recommendation{}, nil
	}

	candidates, err := s.catalog.QueryByAnyTag(ctx, likedTags)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}

	exclude := make(map[string]struct{}, len(likedIDs))
	for _, id := range likedIDs {
		exclude[id] = struct{}{}
	}

	return domain.ScoreCandidates(candidates, likedTags, exclude, s.limit), nil
}

// cached reads the cache, treating read errors as a miss.
func (s *Service) cached(ctx context.Context, uid string) *domain.CachedResult {
	cached, err := s.cache.Get(ctx, uid)
	if err != nil {
		s.log.Warn("recommendation cache read failed", zap.String("user", uid), zap.Error(err))
		return nil
	}
	return cached
}
