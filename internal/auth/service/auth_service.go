package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/prajwalpc099d/ProjectVault/internal/auth/domain"
	"github.com/prajwalpc099d/ProjectVault/internal/auth/repository"
	notifdomain "github.com/prajwalpc099d/ProjectVault/internal/notifications/domain"
)

// Notifier is the slice of the notification service the auth flows need.
type Notifier interface {
	Send(ctx context.Context, recipientID, notificationType, title, message string, data map[string]any) error
}

// AuthService handles user profile business logic.
type AuthService struct {
	userRepo *repository.UserRepository
	notifier Notifier
	log      *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, notifier Notifier, log *zap.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, notifier: notifier, log: log}
}

// Register creates the profile document for a freshly authenticated user and
// sends the welcome notification.
func (s *AuthService) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	if !domain.ValidRole(user.Role) {
		return nil, domain.ErrInvalidRole
	}

	if existing, err := s.userRepo.GetByUID(ctx, user.UID); err == nil {
		// Registration is idempotent for an already provisioned user.
		return existing, nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.notifier.Send(ctx, user.UID,
		notifdomain.TypeWelcome,
		"Welcome to ProjectVault",
		fmt.Sprintf("Your %s account is ready. Browse projects and like a few to get recommendations.", user.Role),
		map[string]any{"role": user.Role},
	); err != nil {
		s.log.Warn("welcome notification failed", zap.String("uid", user.UID), zap.Error(err))
	}

	return user, nil
}

// GetProfile returns a user's profile and stamps their last login.
func (s *AuthService) GetProfile(ctx context.Context, uid string) (*domain.User, error) {
	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, uid); err != nil {
		s.log.Warn("last login update failed", zap.String("uid", uid), zap.Error(err))
	}

	return user, nil
}

// UpdateProfile edits mutable profile fields.
func (s *AuthService) UpdateProfile(ctx context.Context, user *domain.User) error {
	return s.userRepo.Update(ctx, user)
}

// ListUsers returns all users, optionally filtered by role. Admin only.
func (s *AuthService) ListUsers(ctx context.Context, role string) ([]domain.User, error) {
	if role != "" && !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	return s.userRepo.List(ctx, role)
}

// ChangeRole updates a user's role and notifies them. Admin only.
func (s *AuthService) ChangeRole(ctx context.Context, uid, newRole string) error {
	if !domain.ValidRole(newRole) {
		return domain.ErrInvalidRole
	}

	if err := s.userRepo.UpdateRole(ctx, uid, newRole); err != nil {
		return err
	}

	if err := s.notifier.Send(ctx, uid,
		notifdomain.TypeRoleChanged,
		"Role Changed",
		fmt.Sprintf("An administrator changed your role to %s.", newRole),
		map[string]any{"role": newRole},
	); err != nil {
		s.log.Warn("role change notification failed", zap.String("uid", uid), zap.Error(err))
	}

	return nil
}
