package domain

import (
	"sort"

	projdomain "github.com/prajwalpc099d/ProjectVault/internal/projects/domain"
)

// AggregateTags returns the unique tags across the given projects in
// first-seen order. Pure; an empty input yields an empty slice.
func AggregateTags(projects []projdomain.Project) []string {
	seen := make(map[string]struct{})
	tags := []string{}

	for _, p := range projects {
		for _, tag := range p.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}

	return tags
}

// ScoreCandidates filters, scores, ranks and truncates candidate projects.
//
// Candidates in excludeIDs are dropped, as is anything sharing no tag with
// likedTags (the catalog query should already guarantee overlap, but the
// upstream query is not trusted). The match score is the shared-tag count
// clamped to [MinMatchScore, MaxMatchScore]. Ordering is by score descending
// with ties keeping candidate input order; no secondary sort key is applied.
func ScoreCandidates(candidates []projdomain.Project, likedTags []string, excludeIDs map[string]struct{}, limit int) []Recommendation {
	items := []Recommendation{}

	for _, cand := range candidates {
		if _, liked := excludeIDs[cand.ID]; liked {
			continue
		}

		candTags := make(map[string]struct{}, len(cand.Tags))
		for _, tag := range cand.Tags {
			candTags[tag] = struct{}{}
		}

		// Count over the liked set so duplicate tags on a candidate
		// document cannot inflate the score.
		common := 0
		for _, tag := range likedTags {
			if _, ok := candTags[tag]; ok {
				common++
			}
		}
		if common == 0 {
			continue
		}

		items = append(items, Recommendation{
			ID:          cand.ID,
			Title:       cand.Title,
			Description: cand.Description,
			Tags:        cand.Tags,
			GithubLink:  cand.GithubLink,
			MatchScore:  clampScore(common),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].MatchScore > items[j].MatchScore
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items
}

func clampScore(common int) int {
	if common < MinMatchScore {
		return MinMatchScore
	}
	if common > MaxMatchScore {
		return MaxMatchScore
	}
	return common
}
