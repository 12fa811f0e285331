package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/prajwalpc099d/ProjectVault/internal/auth/domain"
)

const usersCollection = "users"

// UserRepository handles Firestore operations for user profiles.
type UserRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) *UserRepository {
	return &UserRepository{client: client}
}

// GetByUID retrieves a user profile by Firebase UID.
func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", uid, err)
	}

	var user domain.User
	if err := snap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", uid, err)
	}
	user.UID = snap.Ref.ID

	return &user, nil
}

// Create writes a new user profile document keyed by UID.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.Status == "" {
		user.Status = "active"
	}

	_, err := r.client.Collection(usersCollection).Doc(user.UID).Create(ctx, user)
	if err != nil {
		return fmt.Errorf("create user %s: %w", user.UID, err)
	}
	return nil
}

// Update overwrites mutable profile fields, preserving role and createdAt.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	updates := []firestore.Update{
		{Path: "firstName", Value: user.FirstName},
		{Path: "lastName", Value: user.LastName},
		{Path: "department", Value: user.Department},
		{Path: "position", Value: user.Position},
		{Path: "enrollment", Value: user.Enrollment},
		{Path: "course", Value: user.Course},
		{Path: "year", Value: user.Year},
	}

	_, err := r.client.Collection(usersCollection).Doc(user.UID).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return domain.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("update user %s: %w", user.UID, err)
	}
	return nil
}

// UpdateRole changes a user's role.
func (r *UserRepository) UpdateRole(ctx context.Context, uid, role string) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "role", Value: role},
	})
	if status.Code(err) == codes.NotFound {
		return domain.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("update role for %s: %w", uid, err)
	}
	return nil
}

// UpdateLastLogin stamps the last login time.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, uid string) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "lastLogin", Value: time.Now().UTC()},
	})
	if status.Code(err) == codes.NotFound {
		return domain.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("update last login for %s: %w", uid, err)
	}
	return nil
}

// List returns all users, optionally filtered by role.
func (r *UserRepository) List(ctx context.Context, role string) ([]domain.User, error) {
	var q firestore.Query = r.client.Collection(usersCollection).Query
	if role != "" {
		q = q.Where("role", "==", role)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	out := make([]domain.User, 0, 16)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}

		var user domain.User
		if err := snap.DataTo(&user); err != nil {
			// Skip malformed documents rather than failing the whole listing.
			continue
		}
		user.UID = snap.Ref.ID
		out = append(out, user)
	}

	return out, nil
}

// ListUIDsByRole returns the UIDs of every user with the given role.
func (r *UserRepository) ListUIDsByRole(ctx context.Context, role string) ([]string, error) {
	iter := r.client.Collection(usersCollection).Where("role", "==", role).Documents(ctx)
	defer iter.Stop()

	var uids []string
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %s uids: %w", role, err)
		}
		uids = append(uids, snap.Ref.ID)
	}

	return uids, nil
}
