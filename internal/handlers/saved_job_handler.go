package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jobscout/backend/internal/models"
	"github.com/jobscout/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// SavedJobHandler handles saved job HTTP requests
type SavedJobHandler struct {
	jobSaveRepository repositories.JobSaveRepository
	jobRepository     repositories.JobRepository
}

// NewSavedJobHandler creates a new SavedJobHandler
func NewSavedJobHandler(jobSaveRepo repositories.JobSaveRepository, jobRepo repositories.JobRepository) *SavedJobHandler {
	return &SavedJobHandler{
		jobSaveRepository: jobSaveRepo,
		jobRepository:     jobRepo,
	}
}

// RegisterSavedJobRoutes registers saved job routes
func (h *SavedJobHandler) RegisterSavedJobRoutes(g *echo.Group) {
	g.GET("/saved", h.ListSavedJobs)
	g.POST("/:id/save", h.SaveJob)
	g.DELETE("/:id/unsave", h.UnsaveJob)
}

// SaveJob bookmarks a job for the current user. Saving a job twice is a
// success, not a conflict: the second call acknowledges the existing row.
func (h *SavedJobHandler) SaveJob(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	jobID, err := parseJobID(c)
	if err != nil {
		return err
	}

	// Verify job exists
	if _, err := h.jobRepository.GetJobByID(jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Job not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Check if already saved
	isSaved, err := h.jobSaveRepository.IsJobSaved(currentUserID, jobID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if isSaved {
		return c.JSON(http.StatusOK, echo.Map{"message": "Already saved"})
	}

	save := &models.JobSave{
		UserID: currentUserID,
		JobID:  jobID,
	}

	if err := h.jobSaveRepository.SaveJob(save); err != nil {
		// A concurrent save of the same pair loses the insert race; the
		// unique index resolves it and the loser gets the same outcome as
		// an ordinary duplicate save.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusOK, echo.Map{"message": "Already saved"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Job saved"})
}

// ListSavedJobs returns the current user's saved jobs, most recently saved
// first.
func (h *SavedJobHandler) ListSavedJobs(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	jobs, err := h.jobRepository.GetSavedJobsByUser(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, jobs)
}

// UnsaveJob removes a job from the current user's saved list. Unsaving a job
// that was never saved is a no-op, not an error.
func (h *SavedJobHandler) UnsaveJob(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	jobID, err := parseJobID(c)
	if err != nil {
		return err
	}

	if _, err := h.jobSaveRepository.UnsaveJob(currentUserID, jobID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// parseJobID parses the :id path parameter
func parseJobID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid job ID")
	}
	return uint(id), nil
}
