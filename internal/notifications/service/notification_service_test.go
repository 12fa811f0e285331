package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prajwalpc099d/ProjectVault/internal/notifications/domain"
)

type fakeStore struct {
	added  []domain.Notification
	addErr error
}

func (f *fakeStore) Add(_ context.Context, n *domain.Notification) (string, error) {
	if f.addErr != nil {
		return "", f.addErr
	}
	f.added = append(f.added, *n)
	return "notif-1", nil
}

func (f *fakeStore) ListForUser(_ context.Context, _ string, _ int) ([]domain.Notification, error) {
	return f.added, nil
}

func (f *fakeStore) MarkRead(_ context.Context, _, _ string) error { return nil }

func (f *fakeStore) Delete(_ context.Context, _, _ string) error { return nil }

type fakeRoles struct {
	uids map[string][]string
	err  error
}

func (f *fakeRoles) ListUIDsByRole(_ context.Context, role string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.uids[role], nil
}

func TestService_Send(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("stamps icon and color from the type", func(t *testing.T) {
		store := &fakeStore{}
		svc := New(store, &fakeRoles{}, log)

		err := svc.Send(ctx, "uid-1", domain.TypeProjectApproved, "Project Approved", "Your project was approved", nil)

		require.NoError(t, err)
		require.Len(t, store.added, 1)
		n := store.added[0]
		assert.Equal(t, "uid-1", n.RecipientID)
		assert.Equal(t, domain.IconFor(domain.TypeProjectApproved), n.Icon)
		assert.Equal(t, domain.ColorFor(domain.TypeProjectApproved), n.Color)
		assert.False(t, n.Read)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		store := &fakeStore{addErr: errors.New("firestore down")}
		svc := New(store, &fakeRoles{}, log)

		err := svc.Send(ctx, "uid-1", domain.TypeWelcome, "Welcome", "hi", nil)

		require.Error(t, err)
	})
}

func TestService_SendToRole(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("fans out to every member of the role", func(t *testing.T) {
		store := &fakeStore{}
		roles := &fakeRoles{uids: map[string][]string{"faculty": {"f1", "f2"}}}
		svc := New(store, roles, log)

		err := svc.SendToRole(ctx, "faculty", domain.TypeProjectSubmitted, "New Submission", "review please", nil)

		require.NoError(t, err)
		require.Len(t, store.added, 2)
		assert.Equal(t, "f1", store.added[0].RecipientID)
		assert.Equal(t, "f2", store.added[1].RecipientID)
	})

	t.Run("empty role is not an error", func(t *testing.T) {
		svc := New(&fakeStore{}, &fakeRoles{uids: map[string][]string{}}, log)

		err := svc.SendToRole(ctx, "faculty", domain.TypeProjectSubmitted, "New Submission", "msg", nil)

		require.NoError(t, err)
	})

	t.Run("directory failure surfaces", func(t *testing.T) {
		svc := New(&fakeStore{}, &fakeRoles{err: errors.New("firestore down")}, log)

		err := svc.SendToRole(ctx, "faculty", domain.TypeProjectSubmitted, "New Submission", "msg", nil)

		require.Error(t, err)
	})
}

func TestService_SendBulk(t *testing.T) {
	t.Run("individual failures do not stop the fan out", func(t *testing.T) {
		store := &fakeStore{}
		svc := New(store, &fakeRoles{}, zap.NewNop())

		// First send fails, the rest go through.
		store.addErr = errors.New("transient")
		svc.SendBulk(context.Background(), []string{"u1"}, domain.TypeSystemAnnouncement, "t", "m", nil)
		store.addErr = nil
		svc.SendBulk(context.Background(), []string{"u2", "u3"}, domain.TypeSystemAnnouncement, "t", "m", nil)

		require.Len(t, store.added, 2)
	})
}

func TestService_NotifyOwner(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("skips when the actor is the owner", func(t *testing.T) {
		store := &fakeStore{}
		svc := New(store, &fakeRoles{}, log)

		err := svc.NotifyOwner(ctx, "uid-1", "uid-1", domain.TypeProjectInteraction, "t", "m", nil)

		require.NoError(t, err)
		assert.Empty(t, store.added)
	})

	t.Run("skips when the owner is unknown", func(t *testing.T) {
		store := &fakeStore{}
		svc := New(store, &fakeRoles{}, log)

		err := svc.NotifyOwner(ctx, "", "uid-1", domain.TypeProjectInteraction, "t", "m", nil)

		require.NoError(t, err)
		assert.Empty(t, store.added)
	})

	t.Run("delivers to a distinct owner", func(t *testing.T) {
		store := &fakeStore{}
		svc := New(store, &fakeRoles{}, log)

		err := svc.NotifyOwner(ctx, "owner-1", "uid-1", domain.TypeProjectInteraction, "t", "m", nil)

		require.NoError(t, err)
		require.Len(t, store.added, 1)
		assert.Equal(t, "owner-1", store.added[0].RecipientID)
	})
}
