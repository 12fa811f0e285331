package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/prajwalpc099d/ProjectVault/internal/projects/domain"
)

const projectsCollection = "projects"

// Repo handles Firestore operations for the project catalog.
type Repo struct {
	client *firestore.Client
}

func NewRepo(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

// Create stores a new project document and returns it with the generated id.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.StatusPending
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	ref, _, err := r.client.Collection(projectsCollection).Add(ctx, r.toDoc(p))
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	p.ID = ref.ID
	return p, nil
}

// GetByID fetches a single project.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	snap, err := r.client.Collection(projectsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}

	p := domain.FromDocument(snap.Ref.ID, snap.Data())
	return &p, nil
}

// GetByIDs resolves a batch of project ids. Ids that no longer exist are
// simply absent from the result; a deleted project is not an error.
func (r *Repo) GetByIDs(ctx context.Context, ids []string) (map[string]domain.Project, error) {
	out := make(map[string]domain.Project, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, r.client.Collection(projectsCollection).Doc(id))
	}

	snaps, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("get projects by ids: %w", err)
	}

	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		out[snap.Ref.ID] = domain.FromDocument(snap.Ref.ID, snap.Data())
	}

	return out, nil
}

// QueryByAnyTag returns every project whose tags intersect the given set.
// An empty tag set short-circuits to an empty result instead of issuing an
// unfiltered scan. Ordering is whatever Firestore returns; callers re-sort.
func (r *Repo) QueryByAnyTag(ctx context.Context, tags []string) ([]domain.Project, error) {
	if len(tags) == 0 {
		return []domain.Project{}, nil
	}

	iter := r.client.Collection(projectsCollection).
		Where("tags", "array-contains-any", tags).
		Documents(ctx)
	defer iter.Stop()

	return collect(iter, "query projects by tags")
}

// List returns projects, optionally filtered by status and/or owner, newest
// first.
func (r *Repo) List(ctx context.Context, statusFilter, ownerID string) ([]domain.Project, error) {
	var q firestore.Query = r.client.Collection(projectsCollection).Query
	if statusFilter != "" {
		q = q.Where("status", "==", statusFilter)
	}
	if ownerID != "" {
		q = q.Where("ownerId", "==", ownerID)
	}
	q = q.OrderBy("createdAt", firestore.Desc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	return collect(iter, "list projects")
}

// Update overwrites the mutable fields of a project.
func (r *Repo) Update(ctx context.Context, p *domain.Project) error {
	updates := []firestore.Update{
		{Path: "title", Value: p.Title},
		{Path: "description", Value: p.Description},
		{Path: "tags", Value: p.Tags},
		{Path: "githubLink", Value: p.GithubLink},
		{Path: "updatedAt", Value: time.Now().UTC()},
	}

	_, err := r.client.Collection(projectsCollection).Doc(p.ID).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return domain.ErrProjectNotFound
	}
	if err != nil {
		return fmt.Errorf("update project %s: %w", p.ID, err)
	}
	return nil
}

// UpdateStatus moves a project through the review workflow.
func (r *Repo) UpdateStatus(ctx context.Context, id, newStatus string) error {
	_, err := r.client.Collection(projectsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: newStatus},
		{Path: "updatedAt", Value: time.Now().UTC()},
	})
	if status.Code(err) == codes.NotFound {
		return domain.ErrProjectNotFound
	}
	if err != nil {
		return fmt.Errorf("update status of %s: %w", id, err)
	}
	return nil
}

// SetLikeMembership adds or removes a user from the project's likes array.
func (r *Repo) SetLikeMembership(ctx context.Context, projectID, uid string, member bool) error {
	return r.setMembership(ctx, projectID, "likes", uid, member)
}

// SetBookmarkMembership adds or removes a user from the project's bookmarks
// array.
func (r *Repo) SetBookmarkMembership(ctx context.Context, projectID, uid string, member bool) error {
	return r.setMembership(ctx, projectID, "bookmarks", uid, member)
}

func (r *Repo) setMembership(ctx context.Context, projectID, field, uid string, member bool) error {
	var value any = firestore.ArrayRemove(uid)
	if member {
		value = firestore.ArrayUnion(uid)
	}

	_, err := r.client.Collection(projectsCollection).Doc(projectID).Update(ctx, []firestore.Update{
		{Path: field, Value: value},
	})
	if status.Code(err) == codes.NotFound {
		return domain.ErrProjectNotFound
	}
	if err != nil {
		return fmt.Errorf("update %s of %s: %w", field, projectID, err)
	}
	return nil
}

// Delete removes a project document.
func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(projectsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	return nil
}

func (r *Repo) toDoc(p *domain.Project) map[string]any {
	doc := map[string]any{
		"title":       p.Title,
		"description": p.Description,
		"tags":        p.Tags,
		"status":      p.Status,
		"ownerId":     p.OwnerID,
		"ownerEmail":  p.OwnerEmail,
		"likes":       p.Likes,
		"bookmarks":   p.Bookmarks,
		"createdAt":   p.CreatedAt,
		"updatedAt":   p.UpdatedAt,
	}
	if p.GithubLink != "" {
		doc["githubLink"] = p.GithubLink
	}
	if p.Uploads != nil {
		doc["uploads"] = p.Uploads
	}
	return doc
}

func collect(iter *firestore.DocumentIterator, op string) ([]domain.Project, error) {
	out := make([]domain.Project, 0, 16)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, domain.FromDocument(snap.Ref.ID, snap.Data()))
	}
	return out, nil
}
