package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/prajwalpc099d/ProjectVault/internal/notifications/domain"
)

// Store persists notifications.
type Store interface {
	Add(ctx context.Context, n *domain.Notification) (string, error)
	ListForUser(ctx context.Context, uid string, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, uid, notificationID string) error
	Delete(ctx context.Context, uid, notificationID string) error
}

// RoleDirectory resolves the members of a role for fan-out sends.
type RoleDirectory interface {
	ListUIDsByRole(ctx context.Context, role string) ([]string, error)
}

// Service sends and manages notification feed entries.
type Service struct {
	store Store
	roles RoleDirectory
	log   *zap.Logger
}

func New(store Store, roles RoleDirectory, log *zap.Logger) *Service {
	return &Service{store: store, roles: roles, log: log}
}

// Send delivers a single notification to one user.
func (s *Service) Send(ctx context.Context, recipientID, notificationType, title, message string, data map[string]any) error {
	n := &domain.Notification{
		RecipientID: recipientID,
		Type:        notificationType,
		Title:       title,
		Message:     message,
		Data:        data,
		Read:        false,
		Icon:        domain.IconFor(notificationType),
		Color:       domain.ColorFor(notificationType),
	}

	id, err := s.store.Add(ctx, n)
	if err != nil {
		return fmt.Errorf("send notification to %s: %w", recipientID, err)
	}

	s.log.Info("notification sent",
		zap.String("recipient", recipientID),
		zap.String("type", notificationType),
		zap.String("id", id),
	)
	return nil
}

// SendBulk delivers the same notification to several users. Individual
// failures are logged and skipped; the feed is best-effort.
func (s *Service) SendBulk(ctx context.Context, recipientIDs []string, notificationType, title, message string, data map[string]any) {
	for _, uid := range recipientIDs {
		if err := s.Send(ctx, uid, notificationType, title, message, data); err != nil {
			s.log.Warn("bulk notification failed",
				zap.String("recipient", uid),
				zap.String("type", notificationType),
				zap.Error(err),
			)
		}
	}
}

// SendToRole fans a notification out to every user holding the given role.
func (s *Service) SendToRole(ctx context.Context, role, notificationType, title, message string, data map[string]any) error {
	uids, err := s.roles.ListUIDsByRole(ctx, role)
	if err != nil {
		return fmt.Errorf("resolve role %s: %w", role, err)
	}
	if len(uids) == 0 {
		s.log.Warn("no users found for role, notification not sent", zap.String("role", role))
		return nil
	}

	s.SendBulk(ctx, uids, notificationType, title, message, data)
	return nil
}

// NotifyOwner sends a notification to a project owner unless the actor is the
// owner themselves.
func (s *Service) NotifyOwner(ctx context.Context, ownerID, actorID, notificationType, title, message string, data map[string]any) error {
	if ownerID == "" || ownerID == actorID {
		return nil
	}
	return s.Send(ctx, ownerID, notificationType, title, message, data)
}

// ListForUser returns a user's notification feed, newest first.
func (s *Service) ListForUser(ctx context.Context, uid string, limit int) ([]domain.Notification, error) {
	return s.store.ListForUser(ctx, uid, limit)
}

// MarkRead flags one of the user's notifications as read.
func (s *Service) MarkRead(ctx context.Context, uid, notificationID string) error {
	return s.store.MarkRead(ctx, uid, notificationID)
}

// Delete removes one of the user's notifications.
func (s *Service) Delete(ctx context.Context, uid, notificationID string) error {
	return s.store.Delete(ctx, uid, notificationID)
}
