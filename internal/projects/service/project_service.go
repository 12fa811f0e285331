package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	authdomain "github.com/prajwalpc099d/ProjectVault/internal/auth/domain"
	notifdomain "github.com/prajwalpc099d/ProjectVault/internal/notifications/domain"
	"github.com/prajwalpc099d/ProjectVault/internal/projects/domain"
	"github.com/prajwalpc099d/ProjectVault/internal/projects/repository"
)

// Notifier is the slice of the notification service the project workflows
// need. Sends are best-effort; a failed notification never fails the write
// that triggered it.
type Notifier interface {
	Send(ctx context.Context, recipientID, notificationType, title, message string, data map[string]any) error
	SendToRole(ctx context.Context, role, notificationType, title, message string, data map[string]any) error
	NotifyOwner(ctx context.Context, ownerID, actorID, notificationType, title, message string, data map[string]any) error
}

// ProjectService handles project catalog business logic.
type ProjectService struct {
	repo     *repository.Repo
	feedback *repository.FeedbackRepo
	notifier Notifier
	log      *zap.Logger
}

func NewProjectService(repo *repository.Repo, feedback *repository.FeedbackRepo, notifier Notifier, log *zap.Logger) *ProjectService {
	return &ProjectService{
		repo:     repo,
		feedback: feedback,
		notifier: notifier,
		log:      log,
	}
}

// SubmitInput carries the fields a student provides on submission.
type SubmitInput struct {
	Title       string
	Description string
	Tags        []string
	GithubLink  string
	Uploads     map[string]any
}

// Submit creates a pending project and notifies faculty reviewers.
func (s *ProjectService) Submit(ctx context.Context, ownerID, ownerEmail string, in SubmitInput) (*domain.Project, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("title required")
	}

	p := &domain.Project{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Tags:        in.Tags,
		GithubLink:  strings.TrimSpace(in.GithubLink),
		Status:      domain.StatusPending,
		OwnerID:     ownerID,
		OwnerEmail:  ownerEmail,
		Uploads:     in.Uploads,
	}

	p, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.SendToRole(ctx, authdomain.RoleFaculty,
		notifdomain.TypeProjectSubmitted,
		"New Project Submission",
		fmt.Sprintf("%s submitted a new project: %s", ownerEmail, p.Title),
		map[string]any{"projectId": p.ID},
	); err != nil {
		s.log.Warn("submission notification failed", zap.String("project", p.ID), zap.Error(err))
	}

	return p, nil
}

// Get returns a single project by id.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns projects filtered by status and/or owner.
func (s *ProjectService) List(ctx context.Context, statusFilter, ownerID string) ([]domain.Project, error) {
	if statusFilter != "" && !domain.ValidStatus(statusFilter) {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.List(ctx, statusFilter, ownerID)
}

// Update edits a project. Only the owner or an admin may edit.
func (s *ProjectService) Update(ctx context.Context, actorID, actorRole, id string, in SubmitInput) (*domain.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != actorID && actorRole != authdomain.RoleAdmin {
		return nil, domain.ErrNotOwner
	}

	p.Title = strings.TrimSpace(in.Title)
	p.Description = strings.TrimSpace(in.Description)
	p.Tags = in.Tags
	p.GithubLink = strings.TrimSpace(in.GithubLink)
	if p.Title == "" {
		return nil, fmt.Errorf("title required")
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyOwner(ctx, p.OwnerID, actorID,
		notifdomain.TypeProjectUpdated,
		"Project Updated",
		fmt.Sprintf("Your project %q was updated", p.Title),
		map[string]any{"projectId": p.ID},
	); err != nil {
		s.log.Warn("update notification failed", zap.String("project", p.ID), zap.Error(err))
	}

	return p, nil
}

// Delete removes a project. Only the owner or an admin may delete.
func (s *ProjectService) Delete(ctx context.Context, actorID, actorRole, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.OwnerID != actorID && actorRole != authdomain.RoleAdmin {
		return domain.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.notifier.NotifyOwner(ctx, p.OwnerID, actorID,
		notifdomain.TypeProjectDeleted,
		"Project Deleted",
		fmt.Sprintf("Your project %q was removed", p.Title),
		map[string]any{"projectId": p.ID},
	); err != nil {
		s.log.Warn("delete notification failed", zap.String("project", p.ID), zap.Error(err))
	}

	return nil
}

// ChangeStatus moves a project through the review workflow and notifies the
// owner. Optional feedback text is recorded alongside the decision.
func (s *ProjectService) ChangeStatus(ctx context.Context, actorID, actorEmail, id, newStatus, feedbackText string) error {
	if !domain.ValidStatus(newStatus) {
		return domain.ErrInvalidStatus
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return err
	}

	if feedbackText = strings.TrimSpace(feedbackText); feedbackText != "" {
		if _, err := s.feedback.Add(ctx, id, &domain.Feedback{
			Text:   feedbackText,
			Author: actorEmail,
			Role:   authdomain.RoleFaculty,
		}); err != nil {
			s.log.Warn("decision feedback write failed", zap.String("project", id), zap.Error(err))
		}
	}

	notificationType := notifdomain.TypeProjectApproved
	if newStatus == domain.StatusRejected {
		notificationType = notifdomain.TypeProjectRejected
	}
	if newStatus == domain.StatusPending {
		notificationType = notifdomain.TypeProjectUpdated
	}

	if err := s.notifier.NotifyOwner(ctx, p.OwnerID, actorID,
		notificationType,
		statusTitle(newStatus),
		fmt.Sprintf("Your project %q is now %s", p.Title, newStatus),
		map[string]any{"projectId": p.ID, "status": newStatus},
	); err != nil {
		s.log.Warn("status notification failed", zap.String("project", id), zap.Error(err))
	}

	return nil
}

// AddFeedback records a review comment and notifies the owner.
func (s *ProjectService) AddFeedback(ctx context.Context, actorID, actorEmail, actorRole, projectID, text string) (*domain.Feedback, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("feedback cannot be empty")
	}

	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	fb := &domain.Feedback{Text: text, Author: actorEmail, Role: actorRole}
	id, err := s.feedback.Add(ctx, projectID, fb)
	if err != nil {
		return nil, err
	}
	fb.ID = id

	if err := s.notifier.NotifyOwner(ctx, p.OwnerID, actorID,
		notifdomain.TypeFeedbackReceived,
		"New Feedback",
		fmt.Sprintf("%s left feedback on %q", actorEmail, p.Title),
		map[string]any{"projectId": projectID},
	); err != nil {
		s.log.Warn("feedback notification failed", zap.String("project", projectID), zap.Error(err))
	}

	return fb, nil
}

// ListFeedback returns all feedback on a project, newest first.
func (s *ProjectService) ListFeedback(ctx context.Context, projectID string) ([]domain.Feedback, error) {
	return s.feedback.List(ctx, projectID)
}

func statusTitle(newStatus string) string {
	switch newStatus {
	case domain.StatusApproved:
		return "Project Approved"
	case domain.StatusRejected:
		return "Project Rejected"
	default:
		return "Project Status Changed"
	}
}
