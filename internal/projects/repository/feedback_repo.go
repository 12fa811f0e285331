package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/prajwalpc099d/ProjectVault/internal/projects/domain"
)

const feedbackSubcollection = "feedback"

// FeedbackRepo handles the per-project feedback subcollection.
type FeedbackRepo struct {
	client *firestore.Client
}

func NewFeedbackRepo(client *firestore.Client) *FeedbackRepo {
	return &FeedbackRepo{client: client}
}

// Add appends a feedback entry to a project.
func (r *FeedbackRepo) Add(ctx context.Context, projectID string, fb *domain.Feedback) (string, error) {
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now().UTC()
	}

	ref, _, err := r.client.Collection(projectsCollection).
		Doc(projectID).
		Collection(feedbackSubcollection).
		Add(ctx, fb)
	if err != nil {
		return "", fmt.Errorf("add feedback to %s: %w", projectID, err)
	}
	return ref.ID, nil
}

// List returns all feedback for a project, newest first.
func (r *FeedbackRepo) List(ctx context.Context, projectID string) ([]domain.Feedback, error) {
	iter := r.client.Collection(projectsCollection).
		Doc(projectID).
		Collection(feedbackSubcollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Feedback, 0, 8)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list feedback of %s: %w", projectID, err)
		}

		var fb domain.Feedback
		if err := snap.DataTo(&fb); err != nil {
			continue
		}
		fb.ID = snap.Ref.ID
		out = append(out, fb)
	}

	return out, nil
}
