package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/application/usecase/progress"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
	"github.com/team-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/team-dashboard/backend/internal/integration/entrypoint/middleware"
)

// ProgressController handles progress note endpoints.
type ProgressController struct {
	createUseCase      *progress.CreateProgressUseCase
	updateUseCase      *progress.UpdateProgressUseCase
	deleteUseCase      *progress.DeleteProgressUseCase
	listUseCase        *progress.ListProgressUseCase
	getUseCase         *progress.GetProgressUseCase
	attachImageUseCase *progress.AttachImageUseCase
}

// NewProgressController creates a new progress controller instance.
func NewProgressController(
	createUseCase *progress.CreateProgressUseCase,
	updateUseCase *progress.UpdateProgressUseCase,
	deleteUseCase *progress.DeleteProgressUseCase,
	listUseCase *progress.ListProgressUseCase,
	getUseCase *progress.GetProgressUseCase,
	attachImageUseCase *progress.AttachImageUseCase,
) *ProgressController {
	return &ProgressController{
		createUseCase:      createUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		listUseCase:        listUseCase,
		getUseCase:         getUseCase,
		attachImageUseCase: attachImageUseCase,
	}
}

// List handles GET /progress requests. An optional project_id query
// parameter filters to one project.
func (c *ProgressController) List(ctx *gin.Context) {
	projectID := uuid.Nil
	if projectIDStr := ctx.Query("project_id"); projectIDStr != "" {
		id, err := uuid.Parse(projectIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid project ID"})
			return
		}
		projectID = id
	}

	notes, err := c.listUseCase.Execute(ctx.Request.Context(), projectID)
	if err != nil {
		respondProgressError(ctx, err)
		return
	}

	responses := make([]dto.ProgressResponse, len(notes))
	for i, note := range notes {
		responses[i] = dto.ToProgressResponse(note)
	}

	ctx.JSON(http.StatusOK, dto.ProgressListResponse{Progress: responses})
}

// Create handles POST /progress requests.
func (c *ProgressController) Create(ctx *gin.Context) {
	var req dto.CreateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid project ID"})
		return
	}

	createdBy, _ := middleware.GetUsernameFromContext(ctx)

	output, err := c.createUseCase.Execute(ctx.Request.Context(), progress.CreateProgressInput{
		ProjectID: projectID,
		Title:     req.Title,
		Body:      req.Body,
		Category:  req.Category,
		CreatedBy: createdBy,
	})
	if err != nil {
		respondProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProgressResponse(output.Note))
}

// Get handles GET /progress/:id requests.
func (c *ProgressController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid progress note ID"})
		return
	}

	note, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		respondProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProgressResponse(note))
}

// Update handles PATCH /progress/:id requests.
func (c *ProgressController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid progress note ID"})
		return
	}

	var req dto.UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), progress.UpdateProgressInput{
		ID:       id,
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		respondProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProgressResponse(output.Note))
}

// Delete handles DELETE /progress/:id requests.
func (c *ProgressController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid progress note ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		respondProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Progress note deleted"})
}

// AttachImage handles POST /progress/:id/image multipart requests.
func (c *ProgressController) AttachImage(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid progress note ID"})
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to read image file"})
		return
	}
	defer file.Close()

	output, err := c.attachImageUseCase.Execute(ctx.Request.Context(), progress.AttachImageInput{
		NoteID:   id,
		Filename: fileHeader.Filename,
		Content:  file,
		Size:     fileHeader.Size,
	})
	if err != nil {
		respondProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AttachImageResponse{ImageURL: output.ImageURL})
}

// respondProgressError maps progress domain errors to HTTP responses.
func respondProgressError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrProgressNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeProgressNotFound),
		})
	case errors.Is(err, domainerror.ErrProjectNotFoundForProgress):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeProjectNotFoundForProgress),
		})
	case errors.Is(err, domainerror.ErrEmptyProgressTitle):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeEmptyProgressTitle),
		})
	case errors.Is(err, domainerror.ErrImageTooLarge):
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeImageTooLarge),
		})
	case errors.Is(err, domainerror.ErrUnsupportedImageType):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeUnsupportedImageType),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}
