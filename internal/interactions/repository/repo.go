package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/prajwalpc099d/ProjectVault/internal/interactions/domain"
)

const (
	usersCollection        = "users"
	interactionsSubcollect = "interactions"
)

// Repo handles Firestore operations for per-user interaction records.
type Repo struct {
	client *firestore.Client
}

func NewRepo(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) doc(uid, projectID string) *firestore.DocumentRef {
	return r.client.Collection(usersCollection).Doc(uid).
		Collection(interactionsSubcollect).Doc(projectID)
}

// Get returns the user's interaction record for a project. A missing record
// is an all-false interaction, not an error.
func (r *Repo) Get(ctx context.Context, uid, projectID string) (domain.Interaction, error) {
	out := domain.Interaction{ProjectID: projectID}

	snap, err := r.doc(uid, projectID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return out, nil
	}
	if err != nil {
		return out, fmt.Errorf("get interaction %s/%s: %w", uid, projectID, err)
	}

	if err := snap.DataTo(&out); err != nil {
		return out, fmt.Errorf("decode interaction %s/%s: %w", uid, projectID, err)
	}
	out.ProjectID = projectID
	return out, nil
}

// SetLiked flips the liked flag, merging into any existing record.
func (r *Repo) SetLiked(ctx context.Context, uid, projectID string, liked bool) error {
	_, err := r.doc(uid, projectID).Set(ctx, map[string]any{"liked": liked}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("set liked %s/%s: %w", uid, projectID, err)
	}
	return nil
}

// SetBookmarked flips the bookmarked flag, merging into any existing record.
func (r *Repo) SetBookmarked(ctx context.Context, uid, projectID string, bookmarked bool) error {
	_, err := r.doc(uid, projectID).Set(ctx, map[string]any{"bookmarked": bookmarked}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("set bookmarked %s/%s: %w", uid, projectID, err)
	}
	return nil
}

// LikedProjectIDs returns the ids of every project the user currently likes.
// A user with no interactions yields an empty slice, not an error.
func (r *Repo) LikedProjectIDs(ctx context.Context, uid string) ([]string, error) {
	iter := r.client.Collection(usersCollection).Doc(uid).
		Collection(interactionsSubcollect).
		Where("liked", "==", true).
		Documents(ctx)
	defer iter.Stop()

	ids := []string{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query liked projects of %s: %w", uid, err)
		}
		ids = append(ids, snap.Ref.ID)
	}

	return ids, nil
}
