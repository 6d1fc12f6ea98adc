package error

import "errors"

// Progress note domain errors.
var (
	// ErrProgressNotFound is returned when a progress note is not found.
	ErrProgressNotFound = errors.New("progress note not found")

	// ErrEmptyProgressTitle is returned when the progress title is empty.
	ErrEmptyProgressTitle = errors.New("progress title must not be empty")

	// ErrProjectNotFoundForProgress is returned when the referenced project does not exist.
	ErrProjectNotFoundForProgress = errors.New("project not found for progress note")

	// ErrImageTooLarge is returned when an uploaded image exceeds the size limit.
	ErrImageTooLarge = errors.New("image exceeds maximum allowed size")

	// ErrUnsupportedImageType is returned when an uploaded file is not a supported image format.
	ErrUnsupportedImageType = errors.New("unsupported image type")
)

// ProgressErrorCode defines error codes for progress note errors.
type ProgressErrorCode string

const (
	ErrCodeProgressNotFound           ProgressErrorCode = "PRG-010001"
	ErrCodeEmptyProgressTitle         ProgressErrorCode = "PRG-010002"
	ErrCodeProjectNotFoundForProgress ProgressErrorCode = "PRG-010003"
	ErrCodeImageTooLarge              ProgressErrorCode = "PRG-010004"
	ErrCodeUnsupportedImageType       ProgressErrorCode = "PRG-010005"
)
