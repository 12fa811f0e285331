package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prajwalpc099d/ProjectVault/internal/interactions/domain"
	projdomain "github.com/prajwalpc099d/ProjectVault/internal/projects/domain"
)

type fakeStore struct {
	records map[string]domain.Interaction
	getErr  error
	setErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]domain.Interaction)}
}

func (f *fakeStore) Get(_ context.Context, uid, projectID string) (domain.Interaction, error) {
	if f.getErr != nil {
		return domain.Interaction{}, f.getErr
	}
	rec := f.records[uid+"/"+projectID]
	rec.ProjectID = projectID
	return rec, nil
}

func (f *fakeStore) SetLiked(_ context.Context, uid, projectID string, liked bool) error {
	if f.setErr != nil {
		return f.setErr
	}
	rec := f.records[uid+"/"+projectID]
	rec.Liked = liked
	f.records[uid+"/"+projectID] = rec
	return nil
}

func (f *fakeStore) SetBookmarked(_ context.Context, uid, projectID string, bookmarked bool) error {
	if f.setErr != nil {
		return f.setErr
	}
	rec := f.records[uid+"/"+projectID]
	rec.Bookmarked = bookmarked
	f.records[uid+"/"+projectID] = rec
	return nil
}

type fakeCatalog struct {
	project       *projdomain.Project
	getErr        error
	likeMembers   map[string]bool
	memberErr     error
	bookmarkCalls int
}

func (f *fakeCatalog) GetByID(_ context.Context, _ string) (*projdomain.Project, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.project, nil
}

func (f *fakeCatalog) SetLikeMembership(_ context.Context, _, uid string, member bool) error {
	if f.memberErr != nil {
		return f.memberErr
	}
	if f.likeMembers == nil {
		f.likeMembers = make(map[string]bool)
	}
	f.likeMembers[uid] = member
	return nil
}

func (f *fakeCatalog) SetBookmarkMembership(_ context.Context, _, _ string, _ bool) error {
	f.bookmarkCalls++
	return f.memberErr
}

type fakeEvents struct {
	events []domain.Event
	err    error
}

func (f *fakeEvents) Insert(_ context.Context, event *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeEvents) ListByUser(_ context.Context, userID string, limit int) ([]domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Event{}
	for _, e := range f.events {
		if e.UserID == userID && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEvents) ProjectEngagement(_ context.Context, _ int) (map[string]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	totals := map[string]float64{}
	for _, e := range f.events {
		totals[e.ProjectID] += e.Weight
	}
	return totals, nil
}

type fakeNotifier struct {
	calls []string
	err   error
}

func (f *fakeNotifier) NotifyOwner(_ context.Context, ownerID, _, notificationType, _, _ string, _ map[string]any) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, ownerID+":"+notificationType)
	return nil
}

func testProject() *projdomain.Project {
	return &projdomain.Project{
		ID:      "proj-1",
		Title:   "Campus Navigator",
		OwnerID: "owner-1",
		Status:  projdomain.StatusApproved,
	}
}

func TestService_ToggleLike(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("first toggle likes and notifies the owner", func(t *testing.T) {
		store := newFakeStore()
		catalog := &fakeCatalog{project: testProject()}
		events := &fakeEvents{}
		notifier := &fakeNotifier{}
		svc := New(store, catalog, events, notifier, log)

		liked, err := svc.ToggleLike(ctx, "uid-1", "student@example.edu", "proj-1")

		require.NoError(t, err)
		assert.True(t, liked)
		assert.True(t, store.records["uid-1/proj-1"].Liked)
		assert.True(t, catalog.likeMembers["uid-1"])

		require.Len(t, events.events, 1)
		assert.Equal(t, domain.ActionLike, events.events[0].Action)
		assert.Equal(t, 0.5, events.events[0].Weight)

		require.Len(t, notifier.calls, 1)
		assert.Equal(t, "owner-1:project_interaction", notifier.calls[0])
	})

	t.Run("second toggle unlikes without notifying", func(t *testing.T) {
		store := newFakeStore()
		store.records["uid-1/proj-1"] = domain.Interaction{Liked: true}
		catalog := &fakeCatalog{project: testProject()}
		events := &fakeEvents{}
		notifier := &fakeNotifier{}
		svc := New(store, catalog, events, notifier, log)

		liked, err := svc.ToggleLike(ctx, "uid-1", "student@example.edu", "proj-1")

		require.NoError(t, err)
		assert.False(t, liked)
		assert.False(t, store.records["uid-1/proj-1"].Liked)
		assert.False(t, catalog.likeMembers["uid-1"])

		require.Len(t, events.events, 1)
		assert.Equal(t, domain.ActionUnlike, events.events[0].Action)
		assert.Empty(t, notifier.calls)
	})

	t.Run("unknown project surfaces not found", func(t *testing.T) {
		catalog := &fakeCatalog{getErr: projdomain.ErrProjectNotFound}
		svc := New(newFakeStore(), catalog, &fakeEvents{}, &fakeNotifier{}, log)

		_, err := svc.ToggleLike(ctx, "uid-1", "student@example.edu", "missing")

		assert.ErrorIs(t, err, projdomain.ErrProjectNotFound)
	})

	t.Run("store write failure surfaces", func(t *testing.T) {
		store := newFakeStore()
		store.setErr = errors.New("firestore down")
		svc := New(store, &fakeCatalog{project: testProject()}, &fakeEvents{}, &fakeNotifier{}, log)

		_, err := svc.ToggleLike(ctx, "uid-1", "student@example.edu", "proj-1")

		require.Error(t, err)
	})

	t.Run("membership sync failure does not fail the toggle", func(t *testing.T) {
		store := newFakeStore()
		catalog := &fakeCatalog{project: testProject(), memberErr: errors.New("firestore down")}
		svc := New(store, catalog, &fakeEvents{}, &fakeNotifier{}, log)

		liked, err := svc.ToggleLike(ctx, "uid-1", "student@example.edu", "proj-1")

		require.NoError(t, err)
		assert.True(t, liked)
	})

	t.Run("event log failure does not fail the toggle", func(t *testing.T) {
		events := &fakeEvents{err: errors.New("postgres down")}
		svc := New(newFakeStore(), &fakeCatalog{project: testProject()}, events, &fakeNotifier{}, log)

		liked, err := svc.ToggleLike(ctx, "uid-1", "student@example.edu", "proj-1")

		require.NoError(t, err)
		assert.True(t, liked)
	})

	t.Run("notification failure does not fail the toggle", func(t *testing.T) {
		notifier := &fakeNotifier{err: errors.New("notification store down")}
		svc := New(newFakeStore(), &fakeCatalog{project: testProject()}, &fakeEvents{}, notifier, log)

		liked, err := svc.ToggleLike(ctx, "uid-1", "student@example.edu", "proj-1")

		require.NoError(t, err)
		assert.True(t, liked)
	})
}

func TestService_ToggleBookmark(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("toggles on and off without owner notifications", func(t *testing.T) {
		store := newFakeStore()
		catalog := &fakeCatalog{project: testProject()}
		events := &fakeEvents{}
		notifier := &fakeNotifier{}
		svc := New(store, catalog, events, notifier, log)

		bookmarked, err := svc.ToggleBookmark(ctx, "uid-1", "proj-1")
		require.NoError(t, err)
		assert.True(t, bookmarked)

		bookmarked, err = svc.ToggleBookmark(ctx, "uid-1", "proj-1")
		require.NoError(t, err)
		assert.False(t, bookmarked)

		assert.Equal(t, 2, catalog.bookmarkCalls)
		assert.Empty(t, notifier.calls)
		require.Len(t, events.events, 2)
		assert.Equal(t, domain.ActionBookmark, events.events[0].Action)
	})

	t.Run("bookmark does not touch like state", func(t *testing.T) {
		store := newFakeStore()
		store.records["uid-1/proj-1"] = domain.Interaction{Liked: true}
		svc := New(store, &fakeCatalog{project: testProject()}, &fakeEvents{}, &fakeNotifier{}, log)

		_, err := svc.ToggleBookmark(ctx, "uid-1", "proj-1")

		require.NoError(t, err)
		assert.True(t, store.records["uid-1/proj-1"].Liked)
		assert.True(t, store.records["uid-1/proj-1"].Bookmarked)
	})
}

func TestService_RecordView(t *testing.T) {
	events := &fakeEvents{}
	svc := New(newFakeStore(), &fakeCatalog{project: testProject()}, events, &fakeNotifier{}, zap.NewNop())

	svc.RecordView(context.Background(), "uid-1", "proj-1")

	require.Len(t, events.events, 1)
	assert.Equal(t, domain.ActionView, events.events[0].Action)
	assert.Equal(t, 0.3, events.events[0].Weight)
}

func TestService_RecordStarAndFork(t *testing.T) {
	events := &fakeEvents{}
	svc := New(newFakeStore(), &fakeCatalog{project: testProject()}, events, &fakeNotifier{}, zap.NewNop())

	svc.RecordStar(context.Background(), "uid-1", "proj-1")
	svc.RecordFork(context.Background(), "uid-1", "proj-1")

	require.Len(t, events.events, 2)
	assert.Equal(t, domain.ActionStar, events.events[0].Action)
	assert.Equal(t, 0.7, events.events[0].Weight)
	assert.Equal(t, domain.ActionFork, events.events[1].Action)
	assert.Equal(t, 1.0, events.events[1].Weight)
}

func TestService_ProjectEngagement(t *testing.T) {
	events := &fakeEvents{}
	svc := New(newFakeStore(), &fakeCatalog{project: testProject()}, events, &fakeNotifier{}, zap.NewNop())

	svc.RecordView(context.Background(), "uid-1", "proj-1")
	svc.RecordFork(context.Background(), "uid-2", "proj-1")
	svc.RecordStar(context.Background(), "uid-1", "proj-2")

	totals, err := svc.ProjectEngagement(context.Background(), 10)

	require.NoError(t, err)
	assert.InDelta(t, 1.3, totals["proj-1"], 1e-9)
	assert.InDelta(t, 0.7, totals["proj-2"], 1e-9)
}

func TestService_UserActivity(t *testing.T) {
	events := &fakeEvents{}
	svc := New(newFakeStore(), &fakeCatalog{project: testProject()}, events, &fakeNotifier{}, zap.NewNop())

	svc.RecordView(context.Background(), "uid-1", "proj-1")
	svc.RecordStar(context.Background(), "uid-2", "proj-1")
	svc.RecordFork(context.Background(), "uid-1", "proj-2")

	activity, err := svc.UserActivity(context.Background(), "uid-1", 10)

	require.NoError(t, err)
	require.Len(t, activity, 2)
	assert.Equal(t, domain.ActionView, activity[0].Action)
	assert.Equal(t, domain.ActionFork, activity[1].Action)
}

func TestService_Get(t *testing.T) {
	store := newFakeStore()
	store.records["uid-1/proj-1"] = domain.Interaction{Liked: true, Bookmarked: true}
	svc := New(store, &fakeCatalog{}, &fakeEvents{}, &fakeNotifier{}, zap.NewNop())

	rec, err := svc.Get(context.Background(), "uid-1", "proj-1")

	require.NoError(t, err)
	assert.True(t, rec.Liked)
	assert.True(t, rec.Bookmarked)
	assert.Equal(t, "proj-1", rec.ProjectID)
}
