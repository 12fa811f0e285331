package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prajwalpc099d/ProjectVault/internal/auth"
	"github.com/prajwalpc099d/ProjectVault/internal/interactions/domain"
	"github.com/prajwalpc099d/ProjectVault/internal/interactions/service"
	projdomain "github.com/prajwalpc099d/ProjectVault/internal/projects/domain"
)

type stubStore struct {
	records map[string]domain.Interaction
}

func (s *stubStore) Get(_ context.Context, uid, projectID string) (domain.Interaction, error) {
	rec := s.records[uid+"/"+projectID]
	rec.ProjectID = projectID
	return rec, nil
}

func (s *stubStore) SetLiked(_ context.Context, uid, projectID string, liked bool) error {
	rec := s.records[uid+"/"+projectID]
	rec.Liked = liked
	s.records[uid+"/"+projectID] = rec
	return nil
}

func (s *stubStore) SetBookmarked(_ context.Context, uid, projectID string, bookmarked bool) error {
	rec := s.records[uid+"/"+projectID]
	rec.Bookmarked = bookmarked
	s.records[uid+"/"+projectID] = rec
	return nil
}

type stubCatalog struct {
	project *projdomain.Project
}

func (s *stubCatalog) GetByID(_ context.Context, _ string) (*projdomain.Project, error) {
	if s.project == nil {
		return nil, projdomain.ErrProjectNotFound
	}
	return s.project, nil
}

func (s *stubCatalog) SetLikeMembership(_ context.Context, _, _ string, _ bool) error {
	return nil
}

func (s *stubCatalog) SetBookmarkMembership(_ context.Context, _, _ string, _ bool) error {
	return nil
}

type stubEvents struct {
	events []domain.Event
}

func (s *stubEvents) Insert(_ context.Context, event *domain.Event) error {
	s.events = append(s.events, *event)
	return nil
}

func (s *stubEvents) ListByUser(_ context.Context, userID string, limit int) ([]domain.Event, error) {
	out := []domain.Event{}
	for _, e := range s.events {
		if e.UserID == userID && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubEvents) ProjectEngagement(_ context.Context, _ int) (map[string]float64, error) {
	totals := map[string]float64{}
	for _, e := range s.events {
		totals[e.ProjectID] += e.Weight
	}
	return totals, nil
}

type stubNotifier struct{}

func (stubNotifier) NotifyOwner(_ context.Context, _, _, _, _, _ string, _ map[string]any) error {
	return nil
}

func newTestRouter(events *stubEvents, catalog *stubCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.New(&stubStore{records: make(map[string]domain.Interaction)}, catalog, events, stubNotifier{}, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(auth.CtxFirebaseUID, "uid-1")
		c.Set(auth.CtxUserEmail, "student@example.edu")
	})

	h := New(svc)
	h.Register(r.Group("/projects"))
	h.RegisterAdmin(r.Group("/admin"))
	return r
}

func postInteraction(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/projects/proj-1/interactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestInteract(t *testing.T) {
	approved := &projdomain.Project{ID: "proj-1", Title: "Campus Navigator", OwnerID: "owner-1"}

	t.Run("liked toggles and reports the new state", func(t *testing.T) {
		events := &stubEvents{}
		r := newTestRouter(events, &stubCatalog{project: approved})

		w := postInteraction(t, r, `{"type":"liked"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"liked":true`)
		require.Len(t, events.events, 1)
		assert.Equal(t, domain.ActionLike, events.events[0].Action)
	})

	t.Run("view records a 0.3 weight event", func(t *testing.T) {
		events := &stubEvents{}
		r := newTestRouter(events, &stubCatalog{project: approved})

		w := postInteraction(t, r, `{"type":"view"}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, events.events, 1)
		assert.Equal(t, domain.ActionView, events.events[0].Action)
		assert.Equal(t, 0.3, events.events[0].Weight)
	})

	t.Run("star records a 0.7 weight event", func(t *testing.T) {
		events := &stubEvents{}
		r := newTestRouter(events, &stubCatalog{project: approved})

		w := postInteraction(t, r, `{"type":"star"}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, events.events, 1)
		assert.Equal(t, domain.ActionStar, events.events[0].Action)
		assert.Equal(t, 0.7, events.events[0].Weight)
	})

	t.Run("fork records a 1.0 weight event", func(t *testing.T) {
		events := &stubEvents{}
		r := newTestRouter(events, &stubCatalog{project: approved})

		w := postInteraction(t, r, `{"type":"fork"}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, events.events, 1)
		assert.Equal(t, domain.ActionFork, events.events[0].Action)
		assert.Equal(t, 1.0, events.events[0].Weight)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		r := newTestRouter(&stubEvents{}, &stubCatalog{project: approved})

		w := postInteraction(t, r, `{"type":"clapped"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unknown interaction type")
	})

	t.Run("liking a missing project is a 404", func(t *testing.T) {
		r := newTestRouter(&stubEvents{}, &stubCatalog{})

		w := postInteraction(t, r, `{"type":"liked"}`)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEngagement(t *testing.T) {
	events := &stubEvents{events: []domain.Event{
		{UserID: "uid-1", ProjectID: "proj-1", Action: domain.ActionView, Weight: 0.3},
		{UserID: "uid-2", ProjectID: "proj-1", Action: domain.ActionFork, Weight: 1.0},
		{UserID: "uid-1", ProjectID: "proj-2", Action: domain.ActionStar, Weight: 0.7},
	}}
	r := newTestRouter(events, &stubCatalog{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/engagement", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK         bool               `json:"ok"`
		Engagement map[string]float64 `json:"engagement"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.InDelta(t, 1.3, body.Engagement["proj-1"], 1e-9)
	assert.InDelta(t, 0.7, body.Engagement["proj-2"], 1e-9)
}

func TestUserActivity(t *testing.T) {
	events := &stubEvents{events: []domain.Event{
		{UserID: "uid-1", ProjectID: "proj-1", Action: domain.ActionView, Weight: 0.3},
		{UserID: "uid-2", ProjectID: "proj-1", Action: domain.ActionLike, Weight: 0.5},
		{UserID: "uid-1", ProjectID: "proj-2", Action: domain.ActionFork, Weight: 1.0},
	}}
	r := newTestRouter(events, &stubCatalog{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users/uid-1/activity", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK     bool           `json:"ok"`
		Events []domain.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	require.Len(t, body.Events, 2)
	assert.Equal(t, domain.ActionView, body.Events[0].Action)
	assert.Equal(t, domain.ActionFork, body.Events[1].Action)
}
