package domain

import (
	"errors"
	"time"
)

// Match scores are a coarse 1..5 bucketing of the raw shared-tag count.
const (
	MinMatchScore = 1
	MaxMatchScore = 5

	// DefaultLimit is how many items a recommendation request returns.
	DefaultLimit = 3
)

// ErrUnavailable is returned when recommendations cannot be computed and no
// previously good result exists to fall back to. The underlying store
// failure is attached as the wrapped cause.
var ErrUnavailable = errors.New("recommendations unavailable")

// Recommendation is a scored view of a catalog project.
type Recommendation struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	GithubLink  string   `json:"githubLink,omitempty"`
	MatchScore  int      `json:"matchScore"`
}

// CachedResult is a previously computed recommendation list with its
// computation time, used for the freshness window and the
// keep-last-good-on-error rule.
type CachedResult struct {
	Items      []Recommendation `json:"items"`
	ComputedAt time.Time        `json:"computed_at"`
}
