package error

import "errors"

// Project domain errors.
var (
	// ErrProjectNotFound is returned when a project is not found in the system.
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidProjectStatus is returned when the project status is invalid.
	ErrInvalidProjectStatus = errors.New("invalid project status")

	// ErrInvalidProjectPriority is returned when the project priority is invalid.
	ErrInvalidProjectPriority = errors.New("invalid project priority")

	// ErrEmptyProjectName is returned when the project name is empty.
	ErrEmptyProjectName = errors.New("project name must not be empty")
)

// ProjectErrorCode defines error codes for project errors.
type ProjectErrorCode string

const (
	ErrCodeProjectNotFound        ProjectErrorCode = "PRJ-010001"
	ErrCodeInvalidProjectStatus   ProjectErrorCode = "PRJ-010002"
	ErrCodeInvalidProjectPriority ProjectErrorCode = "PRJ-010003"
	ErrCodeEmptyProjectName       ProjectErrorCode = "PRJ-010004"
)
