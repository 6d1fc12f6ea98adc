package progress

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
)

func seedProject(t *testing.T, repo *fakeProjectRepo, name string) *entity.Project {
	t.Helper()
	project := entity.NewProject(name, "", entity.ProjectStatusInProgress, nil, entity.ProjectPriorityMedium, "", nil, "", "")
	if err := repo.Create(context.Background(), project); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return project
}

func TestCreateProgress(t *testing.T) {
	t.Run("denormalizes the project name onto the note", func(t *testing.T) {
		projectRepo := newFakeProjectRepo()
		progressRepo := newFakeProgressRepo()
		auditRepo := &fakeAuditRepo{}
		project := seedProject(t, projectRepo, "Website relaunch")

		uc := NewCreateProgressUseCase(progressRepo, projectRepo, auditRepo)
		output, err := uc.Execute(context.Background(), CreateProgressInput{
			ProjectID: project.ID,
			Title:     "  Shipped the hero section  ",
			Body:      "Desktop and mobile both reviewed.",
			Category:  "Milestone",
			CreatedBy: "Faza",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		note := output.Note
		if note.Title != "Shipped the hero section" {
			t.Errorf("expected trimmed title, got %q", note.Title)
		}
		if note.ProjectName != "Website relaunch" {
			t.Errorf("expected denormalized project name, got %q", note.ProjectName)
		}
		if note.Category != "milestone" || note.CreatedBy != "faza" {
			t.Errorf("category and author should be lowercased, got %q / %q", note.Category, note.CreatedBy)
		}

		if len(auditRepo.entries) != 1 {
			t.Fatalf("expected 1 audit entry, got %d", len(auditRepo.entries))
		}
		if !strings.Contains(auditRepo.entries[0].Summary, "Website relaunch") {
			t.Errorf("audit summary should name the project, got %q", auditRepo.entries[0].Summary)
		}
	})

	t.Run("rejects blank title", func(t *testing.T) {
		projectRepo := newFakeProjectRepo()
		project := seedProject(t, projectRepo, "Website relaunch")
		uc := NewCreateProgressUseCase(newFakeProgressRepo(), projectRepo, &fakeAuditRepo{})

		_, err := uc.Execute(context.Background(), CreateProgressInput{ProjectID: project.ID, Title: "   "})
		if !errors.Is(err, domainerror.ErrEmptyProgressTitle) {
			t.Fatalf("expected ErrEmptyProgressTitle, got %v", err)
		}
	})

	t.Run("missing project", func(t *testing.T) {
		uc := NewCreateProgressUseCase(newFakeProgressRepo(), newFakeProjectRepo(), &fakeAuditRepo{})

		_, err := uc.Execute(context.Background(), CreateProgressInput{ProjectID: uuid.New(), Title: "Orphan"})
		if !errors.Is(err, domainerror.ErrProjectNotFoundForProgress) {
			t.Fatalf("expected ErrProjectNotFoundForProgress, got %v", err)
		}
	})
}

func TestUpdateProgress(t *testing.T) {
	seedNote := func(t *testing.T) (*fakeProgressRepo, uuid.UUID) {
		t.Helper()
		projectRepo := newFakeProjectRepo()
		progressRepo := newFakeProgressRepo()
		project := seedProject(t, projectRepo, "Website relaunch")
		create := NewCreateProgressUseCase(progressRepo, projectRepo, &fakeAuditRepo{})
		output, err := create.Execute(context.Background(), CreateProgressInput{
			ProjectID: project.ID,
			Title:     "First draft",
			Body:      "Initial body",
			Category:  "update",
		})
		if err != nil {
			t.Fatalf("seed note: %v", err)
		}
		return progressRepo, output.Note.ID
	}

	t.Run("only set fields change", func(t *testing.T) {
		progressRepo, id := seedNote(t)
		uc := NewUpdateProgressUseCase(progressRepo, &fakeAuditRepo{})

		title := "Second draft"
		output, err := uc.Execute(context.Background(), UpdateProgressInput{ID: id, Title: &title})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Note.Title != "Second draft" {
			t.Errorf("expected updated title, got %q", output.Note.Title)
		}
		if output.Note.Body != "Initial body" {
			t.Errorf("body should be unchanged, got %q", output.Note.Body)
		}
	})

	t.Run("unknown note", func(t *testing.T) {
		uc := NewUpdateProgressUseCase(newFakeProgressRepo(), &fakeAuditRepo{})

		title := "Ghost"
		_, err := uc.Execute(context.Background(), UpdateProgressInput{ID: uuid.New(), Title: &title})
		if !errors.Is(err, domainerror.ErrProgressNotFound) {
			t.Fatalf("expected ErrProgressNotFound, got %v", err)
		}
	})
}

func TestDeleteProgress(t *testing.T) {
	projectRepo := newFakeProjectRepo()
	progressRepo := newFakeProgressRepo()
	auditRepo := &fakeAuditRepo{}
	project := seedProject(t, projectRepo, "Website relaunch")
	create := NewCreateProgressUseCase(progressRepo, projectRepo, &fakeAuditRepo{})
	output, err := create.Execute(context.Background(), CreateProgressInput{ProjectID: project.ID, Title: "Short-lived"})
	if err != nil {
		t.Fatalf("seed note: %v", err)
	}

	uc := NewDeleteProgressUseCase(progressRepo, auditRepo)
	if err := uc.Execute(context.Background(), output.Note.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := progressRepo.FindByID(context.Background(), output.Note.ID); !errors.Is(err, domainerror.ErrProgressNotFound) {
		t.Errorf("note should be gone, got %v", err)
	}
	if len(auditRepo.entries) != 1 || !strings.Contains(auditRepo.entries[0].Summary, "Short-lived") {
		t.Errorf("expected delete audit naming the note, got %+v", auditRepo.entries)
	}
}

func TestListProgressFiltersByProject(t *testing.T) {
	projectRepo := newFakeProjectRepo()
	progressRepo := newFakeProgressRepo()
	first := seedProject(t, projectRepo, "Website relaunch")
	second := seedProject(t, projectRepo, "Mobile app")

	create := NewCreateProgressUseCase(progressRepo, projectRepo, &fakeAuditRepo{})
	for _, in := range []CreateProgressInput{
		{ProjectID: first.ID, Title: "Website note"},
		{ProjectID: second.ID, Title: "Mobile note one"},
		{ProjectID: second.ID, Title: "Mobile note two"},
	} {
		if _, err := create.Execute(context.Background(), in); err != nil {
			t.Fatalf("seed note: %v", err)
		}
	}

	uc := NewListProgressUseCase(progressRepo)

	all, err := uc.Execute(context.Background(), uuid.Nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 notes without a filter, got %d", len(all))
	}
	if all[0].Title != "Mobile note two" {
		t.Errorf("expected newest first, got %q", all[0].Title)
	}

	filtered, err := uc.Execute(context.Background(), second.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("expected 2 notes for the project filter, got %d", len(filtered))
	}
}

func TestAttachImage(t *testing.T) {
	const maxSize = 1 << 20

	seedNote := func(t *testing.T) (*fakeProgressRepo, uuid.UUID) {
		t.Helper()
		projectRepo := newFakeProjectRepo()
		progressRepo := newFakeProgressRepo()
		project := seedProject(t, projectRepo, "Website relaunch")
		create := NewCreateProgressUseCase(progressRepo, projectRepo, &fakeAuditRepo{})
		output, err := create.Execute(context.Background(), CreateProgressInput{ProjectID: project.ID, Title: "With image"})
		if err != nil {
			t.Fatalf("seed note: %v", err)
		}
		return progressRepo, output.Note.ID
	}

	t.Run("stores the image and links the note", func(t *testing.T) {
		progressRepo, id := seedNote(t)
		storage := newFakeFileStorage()
		uc := NewAttachImageUseCase(progressRepo, storage, maxSize)

		content := strings.NewReader("fake-png-bytes")
		output, err := uc.Execute(context.Background(), AttachImageInput{
			NoteID:   id,
			Filename: "Screenshot.PNG",
			Content:  content,
			Size:     int64(content.Len()),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantName := "progress-" + id.String() + ".png"
		if _, ok := storage.saved[wantName]; !ok {
			t.Errorf("expected stored file %q, saved: %v", wantName, storage.saved)
		}
		if output.ImageURL != "/uploads/"+wantName {
			t.Errorf("unexpected image URL %q", output.ImageURL)
		}

		note, err := progressRepo.FindByID(context.Background(), id)
		if err != nil {
			t.Fatalf("reload note: %v", err)
		}
		if note.ImageURL != output.ImageURL {
			t.Errorf("note should carry the image URL, got %q", note.ImageURL)
		}
	})

	t.Run("rejects oversized upload", func(t *testing.T) {
		progressRepo, id := seedNote(t)
		uc := NewAttachImageUseCase(progressRepo, newFakeFileStorage(), maxSize)

		_, err := uc.Execute(context.Background(), AttachImageInput{
			NoteID:   id,
			Filename: "big.png",
			Content:  strings.NewReader("x"),
			Size:     maxSize + 1,
		})
		if !errors.Is(err, domainerror.ErrImageTooLarge) {
			t.Fatalf("expected ErrImageTooLarge, got %v", err)
		}
	})

	t.Run("rejects empty upload", func(t *testing.T) {
		progressRepo, id := seedNote(t)
		uc := NewAttachImageUseCase(progressRepo, newFakeFileStorage(), maxSize)

		_, err := uc.Execute(context.Background(), AttachImageInput{
			NoteID:   id,
			Filename: "empty.png",
			Content:  strings.NewReader(""),
			Size:     0,
		})
		if !errors.Is(err, domainerror.ErrImageTooLarge) {
			t.Fatalf("expected ErrImageTooLarge, got %v", err)
		}
	})

	t.Run("rejects non-image file types", func(t *testing.T) {
		progressRepo, id := seedNote(t)
		storage := newFakeFileStorage()
		uc := NewAttachImageUseCase(progressRepo, storage, maxSize)

		for _, filename := range []string{"payload.html", "shell.php", "script.svg", "noextension"} {
			_, err := uc.Execute(context.Background(), AttachImageInput{
				NoteID:   id,
				Filename: filename,
				Content:  strings.NewReader("x"),
				Size:     1,
			})
			if !errors.Is(err, domainerror.ErrUnsupportedImageType) {
				t.Errorf("expected ErrUnsupportedImageType for %q, got %v", filename, err)
			}
		}
		if len(storage.saved) != 0 {
			t.Errorf("nothing should be stored, saved: %v", storage.saved)
		}
	})

	t.Run("unknown note", func(t *testing.T) {
		uc := NewAttachImageUseCase(newFakeProgressRepo(), newFakeFileStorage(), maxSize)

		_, err := uc.Execute(context.Background(), AttachImageInput{
			NoteID:   uuid.New(),
			Filename: "img.png",
			Content:  strings.NewReader("x"),
			Size:     1,
		})
		if !errors.Is(err, domainerror.ErrProgressNotFound) {
			t.Fatalf("expected ErrProgressNotFound, got %v", err)
		}
	})
}
