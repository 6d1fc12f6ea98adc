package progress

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
)

type fakeProgressRepo struct {
	mu    sync.Mutex
	notes map[uuid.UUID]*entity.ProgressNote
	order []uuid.UUID
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{notes: make(map[uuid.UUID]*entity.ProgressNote)}
}

func (r *fakeProgressRepo) Create(_ context.Context, note *entity.ProgressNote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *note
	r.notes[note.ID] = &copied
	r.order = append(r.order, note.ID)
	return nil
}

func (r *fakeProgressRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ProgressNote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	note, ok := r.notes[id]
	if !ok {
		return nil, domainerror.ErrProgressNotFound
	}
	copied := *note
	return &copied, nil
}

func (r *fakeProgressRepo) FindAll(_ context.Context, projectID uuid.UUID) ([]*entity.ProgressNote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.ProgressNote, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		note, ok := r.notes[r.order[i]]
		if !ok {
			continue
		}
		if projectID != uuid.Nil && note.ProjectID != projectID {
			continue
		}
		copied := *note
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeProgressRepo) Update(_ context.Context, note *entity.ProgressNote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[note.ID]; !ok {
		return domainerror.ErrProgressNotFound
	}
	copied := *note
	r.notes[note.ID] = &copied
	return nil
}

func (r *fakeProgressRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[id]; !ok {
		return domainerror.ErrProgressNotFound
	}
	delete(r.notes, id)
	return nil
}

type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[uuid.UUID]*entity.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[uuid.UUID]*entity.Project)}
}

func (r *fakeProjectRepo) Create(_ context.Context, project *entity.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *project
	r.projects[project.ID] = &copied
	return nil
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	project, ok := r.projects[id]
	if !ok {
		return nil, domainerror.ErrProjectNotFound
	}
	copied := *project
	return &copied, nil
}

func (r *fakeProjectRepo) FindAll(_ context.Context) ([]*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Project, 0, len(r.projects))
	for _, p := range r.projects {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, project *entity.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[project.ID]; !ok {
		return domainerror.ErrProjectNotFound
	}
	copied := *project
	r.projects[project.ID] = &copied
	return nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[id]; !ok {
		return domainerror.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []*entity.AuditLogEntry
}

func (r *fakeAuditRepo) Append(_ context.Context, entry *entity.AuditLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeAuditRepo) List(_ context.Context, limit int) ([]*entity.AuditLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.AuditLogEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

// fakeFileStorage records saved files and serves deterministic URLs.
type fakeFileStorage struct {
	mu      sync.Mutex
	saved   map[string][]byte
	saveErr error
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{saved: make(map[string][]byte)}
}

func (s *fakeFileStorage) Save(_ context.Context, name string, content io.Reader, _ int64) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved[name] = data
	return fmt.Sprintf("/uploads/%s", name), nil
}
