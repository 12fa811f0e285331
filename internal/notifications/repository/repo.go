package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/prajwalpc099d/ProjectVault/internal/notifications/domain"
)

const notificationsCollection = "notifications"

// Repo handles Firestore operations for the notification feed.
type Repo struct {
	client *firestore.Client
}

func NewRepo(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

// Add stores a notification and returns its generated id.
func (r *Repo) Add(ctx context.Context, n *domain.Notification) (string, error) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	ref, _, err := r.client.Collection(notificationsCollection).Add(ctx, n)
	if err != nil {
		return "", fmt.Errorf("add notification: %w", err)
	}
	return ref.ID, nil
}

// ListForUser returns a user's notifications, newest first.
func (r *Repo) ListForUser(ctx context.Context, uid string, limit int) ([]domain.Notification, error) {
	q := r.client.Collection(notificationsCollection).
		Where("recipientId", "==", uid).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Notification, 0, 16)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list notifications for %s: %w", uid, err)
		}

		var n domain.Notification
		if err := snap.DataTo(&n); err != nil {
			continue
		}
		n.ID = snap.Ref.ID
		out = append(out, n)
	}

	return out, nil
}

// MarkRead flags a notification as read. The recipient check prevents users
// from touching someone else's feed.
func (r *Repo) MarkRead(ctx context.Context, uid, notificationID string) error {
	ref := r.client.Collection(notificationsCollection).Doc(notificationID)

	snap, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return domain.ErrNotificationNotFound
	}
	if err != nil {
		return fmt.Errorf("get notification %s: %w", notificationID, err)
	}

	var n domain.Notification
	if err := snap.DataTo(&n); err != nil || n.RecipientID != uid {
		return domain.ErrNotificationNotFound
	}

	_, err = ref.Update(ctx, []firestore.Update{{Path: "read", Value: true}})
	if err != nil {
		return fmt.Errorf("mark notification %s read: %w", notificationID, err)
	}
	return nil
}

// Delete removes a notification from the recipient's feed.
func (r *Repo) Delete(ctx context.Context, uid, notificationID string) error {
	ref := r.client.Collection(notificationsCollection).Doc(notificationID)

	snap, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return domain.ErrNotificationNotFound
	}
	if err != nil {
		return fmt.Errorf("get notification %s: %w", notificationID, err)
	}

	var n domain.Notification
	if err := snap.DataTo(&n); err != nil || n.RecipientID != uid {
		return domain.ErrNotificationNotFound
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("delete notification %s: %w", notificationID, err)
	}
	return nil
}
