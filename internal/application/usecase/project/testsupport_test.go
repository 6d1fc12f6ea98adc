package project

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
)

// fakeProjectRepo is an in-memory ProjectRepository.
type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[uuid.UUID]*entity.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		projects: make(map[uuid.UUID]*entity.Project),
	}
}

func (f *fakeProjectRepo) Create(ctx context.Context, project *entity.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects[project.ID] = project
	return nil
}

func (f *fakeProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	project, ok := f.projects[id]
	if !ok {
		return nil, domainerror.ErrProjectNotFound
	}
	return project, nil
}

func (f *fakeProjectRepo) FindAll(ctx context.Context) ([]*entity.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, project *entity.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.projects[project.ID]; !ok {
		return domainerror.ErrProjectNotFound
	}
	f.projects[project.ID] = project
	return nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.projects[id]; !ok {
		return domainerror.ErrProjectNotFound
	}
	delete(f.projects, id)
	return nil
}

// fakeAuditRepo records appended audit entries in order.
type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []*entity.AuditLogEntry
}

func (f *fakeAuditRepo) Append(ctx context.Context, entry *entity.AuditLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditRepo) List(ctx context.Context, limit int) ([]*entity.AuditLogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	out := make([]*entity.AuditLogEntry, 0, limit)
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.entries[i])
	}
	return out, nil
}
