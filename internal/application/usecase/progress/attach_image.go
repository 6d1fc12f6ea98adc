package progress

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/application/adapter"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
)

// AttachImageInput represents the input for attaching an image to a note.
type AttachImageInput struct {
	NoteID   uuid.UUID
	Filename string
	Content  io.Reader
	Size     int64
}

// AttachImageOutput represents the output of attaching an image.
type AttachImageOutput struct {
	ImageURL string
}

// imageExtensions lists the file extensions accepted for progress
// images. The uploads dir is publicly served, so nothing else lands
// there.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// AttachImageUseCase stores an uploaded image and links it to a progress
// note.
type AttachImageUseCase struct {
	progressRepo adapter.ProgressRepository
	fileStorage  adapter.FileStorage
	maxSizeBytes int64
}

// NewAttachImageUseCase creates a new AttachImageUseCase instance.
func NewAttachImageUseCase(progressRepo adapter.ProgressRepository, fileStorage adapter.FileStorage, maxSizeBytes int64) *AttachImageUseCase {
	return &AttachImageUseCase{
		progressRepo: progressRepo,
		fileStorage:  fileStorage,
		maxSizeBytes: maxSizeBytes,
	}
}

// Execute stores the image and updates the note's image URL. The stored
// name is derived from the note ID so re-uploads replace the old file.
func (uc *AttachImageUseCase) Execute(ctx context.Context, input AttachImageInput) (*AttachImageOutput, error) {
	if input.Size <= 0 || input.Size > uc.maxSizeBytes {
		return nil, domainerror.ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(input.Filename))
	if !imageExtensions[ext] {
		return nil, domainerror.ErrUnsupportedImageType
	}

	note, err := uc.progressRepo.FindByID(ctx, input.NoteID)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("progress-%s%s", note.ID, ext)

	url, err := uc.fileStorage.Save(ctx, name, input.Content, input.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	note.ImageURL = url
	note.UpdatedAt = time.Now().UTC()
	if err := uc.progressRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update progress note: %w", err)
	}

	return &AttachImageOutput{ImageURL: url}, nil
}
