package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/prajwalpc099d/ProjectVault/internal/interactions/domain"
	notifdomain "github.com/prajwalpc099d/ProjectVault/internal/notifications/domain"
	projdomain "github.com/prajwalpc099d/ProjectVault/internal/projects/domain"
)

// InteractionStore persists per-user interaction records.
type InteractionStore interface {
	Get(ctx context.Context, uid, projectID string) (domain.Interaction, error)
	SetLiked(ctx context.Context, uid, projectID string, liked bool) error
	SetBookmarked(ctx context.Context, uid, projectID string, bookmarked bool) error
}

// Catalog is the slice of the project repository the toggles need.
type Catalog interface {
	GetByID(ctx context.Context, id string) (*projdomain.Project, error)
	SetLikeMembership(ctx context.Context, projectID, uid string, member bool) error
	SetBookmarkMembership(ctx context.Context, projectID, uid string, member bool) error
}

// EventStore appends and queries analytics events. Inserts are best-effort;
// failures are logged, never surfaced to the interacting user.
type EventStore interface {
	Insert(ctx context.Context, event *domain.Event) error
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Event, error)
	ProjectEngagement(ctx context.Context, limit int) (map[string]float64, error)
}

// Notifier is the slice of the notification service the toggles need.
type Notifier interface {
	NotifyOwner(ctx context.Context, ownerID, actorID, notificationType, title, message string, data map[string]any) error
}

// Service handles like/bookmark toggles and interaction analytics.
type Service struct {
	store    InteractionStore
	catalog  Catalog
	events   EventStore
	notifier Notifier
	log      *zap.Logger
}

func New(store InteractionStore, catalog Catalog, events EventStore, notifier Notifier, log *zap.Logger) *Service {
	return &Service{
		store:    store,
		catalog:  catalog,
		events:   events,
		notifier: notifier,
		log:      log,
	}
}

// Get returns the caller's interaction record for a project.
func (s *Service) Get(ctx context.Context, uid, projectID string) (domain.Interaction, error) {
	return s.store.Get(ctx, uid, projectID)
}

// ToggleLike flips the caller's like on a project. Returns the new state.
func (s *Service) ToggleLike(ctx context.Context, uid, userEmail, projectID string) (bool, error) {
	project, err := s.catalog.GetByID(ctx, projectID)
	if err != nil {
		return false, err
	}

	current, err := s.store.Get(ctx, uid, projectID)
	if err != nil {
		return false, err
	}
	liked := !current.Liked

	if err := s.store.SetLiked(ctx, uid, projectID, liked); err != nil {
		return false, err
	}

	// Keep the project's likes membership array in sync with the record.
	if err := s.catalog.SetLikeMembership(ctx, projectID, uid, liked); err != nil {
		s.log.Warn("like membership sync failed", zap.String("project", projectID), zap.Error(err))
	}

	action := domain.ActionLike
	if !liked {
		action = domain.ActionUnlike
	}
	s.record(ctx, uid, projectID, action)

	if liked {
		if err := s.notifier.NotifyOwner(ctx, project.OwnerID, uid,
			notifdomain.TypeProjectInteraction,
			"Someone liked your project",
			fmt.Sprintf("%s liked %q", userEmail, project.Title),
			map[string]any{"projectId": projectID, "interaction": "liked"},
		); err != nil {
			s.log.Warn("like notification failed", zap.String("project", projectID), zap.Error(err))
		}
	}

	return liked, nil
}

// ToggleBookmark flips the caller's bookmark on a project. Returns the new
// state. Bookmarks do not notify the owner.
func (s *Service) ToggleBookmark(ctx context.Context, uid, projectID string) (bool, error) {
	if _, err := s.catalog.GetByID(ctx, projectID); err != nil {
		return false, err
	}

	current, err := s.store.Get(ctx, uid, projectID)
	if err != nil {
		return false, err
	}
	bookmarked := !current.Bookmarked

	if err := s.store.SetBookmarked(ctx, uid, projectID, bookmarked); err != nil {
		return false, err
	}

	if err := s.catalog.SetBookmarkMembership(ctx, projectID, uid, bookmarked); err != nil {
		s.log.Warn("bookmark membership sync failed", zap.String("project", projectID), zap.Error(err))
	}

	s.record(ctx, uid, projectID, domain.ActionBookmark)

	return bookmarked, nil
}

// RecordView logs a view event for analytics. Views are fire-and-forget and
// never surface an error to the caller.
func (s *Service) RecordView(ctx context.Context, uid, projectID string) {
	s.record(ctx, uid, projectID, domain.ActionView)
}

// RecordStar logs a GitHub star event. Fire-and-forget, like views.
func (s *Service) RecordStar(ctx context.Context, uid, projectID string) {
	s.record(ctx, uid, projectID, domain.ActionStar)
}

// RecordFork logs a GitHub fork event. Fire-and-forget, like views.
func (s *Service) RecordFork(ctx context.Context, uid, projectID string) {
	s.record(ctx, uid, projectID, domain.ActionFork)
}

// ProjectEngagement sums event weights per project, highest first. Admin only.
func (s *Service) ProjectEngagement(ctx context.Context, limit int) (map[string]float64, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.events.ProjectEngagement(ctx, limit)
}

// UserActivity returns a user's most recent interaction events. Admin only.
func (s *Service) UserActivity(ctx context.Context, uid string, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.events.ListByUser(ctx, uid, limit)
}

func (s *Service) record(ctx context.Context, uid, projectID, action string) {
	event := &domain.Event{
		UserID:    uid,
		ProjectID: projectID,
		Action:    action,
		Weight:    domain.ActionWeight(action),
	}
	if err := s.events.Insert(ctx, event); err != nil {
		s.log.Warn("interaction event log failed",
			zap.String("user", uid),
			zap.String("project", projectID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
