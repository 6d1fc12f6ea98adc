package project

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
)

func TestCreateProject(t *testing.T) {
	t.Run("creates project with defaults and audits it", func(t *testing.T) {
		projectRepo := newFakeProjectRepo()
		auditRepo := &fakeAuditRepo{}
		uc := NewCreateProjectUseCase(projectRepo, auditRepo)

		output, err := uc.Execute(context.Background(), CreateProjectInput{
			Name: "  Landing page revamp  ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		p := output.Project
		if p.Name != "Landing page revamp" {
			t.Errorf("expected trimmed name, got %q", p.Name)
		}
		if p.Status != entity.ProjectStatusNotStarted {
			t.Errorf("expected default status not-started, got %q", p.Status)
		}
		if p.Priority != entity.ProjectPriorityMedium {
			t.Errorf("expected default priority medium, got %q", p.Priority)
		}

		if len(auditRepo.entries) != 1 {
			t.Fatalf("expected 1 audit entry, got %d", len(auditRepo.entries))
		}
		if !strings.Contains(auditRepo.entries[0].Summary, "Landing page revamp") {
			t.Errorf("audit summary should name the project, got %q", auditRepo.entries[0].Summary)
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		uc := NewCreateProjectUseCase(newFakeProjectRepo(), &fakeAuditRepo{})

		_, err := uc.Execute(context.Background(), CreateProjectInput{Name: "   "})
		if !errors.Is(err, domainerror.ErrEmptyProjectName) {
			t.Fatalf("expected ErrEmptyProjectName, got %v", err)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		uc := NewCreateProjectUseCase(newFakeProjectRepo(), &fakeAuditRepo{})

		_, err := uc.Execute(context.Background(), CreateProjectInput{
			Name:   "Bad status",
			Status: "someday",
		})
		if !errors.Is(err, domainerror.ErrInvalidProjectStatus) {
			t.Fatalf("expected ErrInvalidProjectStatus, got %v", err)
		}
	})

	t.Run("normalizes owner slugs", func(t *testing.T) {
		projectRepo := newFakeProjectRepo()
		uc := NewCreateProjectUseCase(projectRepo, &fakeAuditRepo{})

		output, err := uc.Execute(context.Background(), CreateProjectInput{
			Name:   "Owned",
			Owners: []string{" Firdaus ", "FAZA", ""},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		owners := output.Project.Owners
		if len(owners) != 2 || owners[0] != "firdaus" || owners[1] != "faza" {
			t.Errorf("expected lowercase owner slugs without blanks, got %v", owners)
		}
	})
}

func TestUpdateProject(t *testing.T) {
	seed := func(t *testing.T) (*fakeProjectRepo, *fakeAuditRepo, uuid.UUID) {
		t.Helper()
		projectRepo := newFakeProjectRepo()
		auditRepo := &fakeAuditRepo{}
		create := NewCreateProjectUseCase(projectRepo, auditRepo)
		output, err := create.Execute(context.Background(), CreateProjectInput{
			Name:     "Mobile app",
			Status:   "in-progress",
			Priority: "high",
		})
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		return projectRepo, auditRepo, output.Project.ID
	}

	t.Run("only set fields change", func(t *testing.T) {
		projectRepo, _, id := seed(t)
		uc := NewUpdateProjectUseCase(projectRepo, &fakeAuditRepo{})

		done := "done"
		output, err := uc.Execute(context.Background(), UpdateProjectInput{
			ID:     id,
			Status: &done,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Project.Status != entity.ProjectStatusDone {
			t.Errorf("expected status done, got %q", output.Project.Status)
		}
		if output.Project.Name != "Mobile app" {
			t.Errorf("name should be unchanged, got %q", output.Project.Name)
		}
		if output.Project.Priority != entity.ProjectPriorityHigh {
			t.Errorf("priority should be unchanged, got %q", output.Project.Priority)
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		uc := NewUpdateProjectUseCase(newFakeProjectRepo(), &fakeAuditRepo{})

		name := "Ghost"
		_, err := uc.Execute(context.Background(), UpdateProjectInput{ID: uuid.New(), Name: &name})
		if !errors.Is(err, domainerror.ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("rejects blank name on update", func(t *testing.T) {
		projectRepo, _, id := seed(t)
		uc := NewUpdateProjectUseCase(projectRepo, &fakeAuditRepo{})

		blank := "  "
		_, err := uc.Execute(context.Background(), UpdateProjectInput{ID: id, Name: &blank})
		if !errors.Is(err, domainerror.ErrEmptyProjectName) {
			t.Fatalf("expected ErrEmptyProjectName, got %v", err)
		}
	})
}

func TestDeleteProject(t *testing.T) {
	t.Run("deletes and audits with the project name", func(t *testing.T) {
		projectRepo := newFakeProjectRepo()
		auditRepo := &fakeAuditRepo{}
		create := NewCreateProjectUseCase(projectRepo, &fakeAuditRepo{})
		output, err := create.Execute(context.Background(), CreateProjectInput{Name: "Old prototype"})
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		uc := NewDeleteProjectUseCase(projectRepo, auditRepo)
		if err := uc.Execute(context.Background(), output.Project.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := projectRepo.FindByID(context.Background(), output.Project.ID); !errors.Is(err, domainerror.ErrProjectNotFound) {
			t.Errorf("project should be gone, got %v", err)
		}
		if len(auditRepo.entries) != 1 || !strings.Contains(auditRepo.entries[0].Summary, "Old prototype") {
			t.Errorf("expected delete audit naming the project, got %+v", auditRepo.entries)
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		uc := NewDeleteProjectUseCase(newFakeProjectRepo(), &fakeAuditRepo{})

		err := uc.Execute(context.Background(), uuid.New())
		if !errors.Is(err, domainerror.ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}
