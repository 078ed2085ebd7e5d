package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jobscout/backend/internal/models"
	"github.com/jobscout/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// deadlineLayout is the calendar-date format accepted by the deadline_before
// filter.
const deadlineLayout = "2006-01-02"

// JobHandler handles job listing and ingestion HTTP requests
type JobHandler struct {
	jobRepository repositories.JobRepository
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(jobRepo repositories.JobRepository) *JobHandler {
	return &JobHandler{jobRepository: jobRepo}
}

// RegisterJobRoutes registers the public job routes
func (h *JobHandler) RegisterJobRoutes(g *echo.Group) {
	g.GET("", h.ListJobs)
	g.POST("/ingest", h.IngestJobs)
	g.POST("/seed", h.SeedJobs)
}

// ListJobs returns a filtered, sorted page of jobs
func (h *JobHandler) ListJobs(c echo.Context) error {
	filter, err := parseJobFilter(c)
	if err != nil {
		return err
	}

	jobs, err := h.jobRepository.ListJobs(filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, jobs)
}

// parseJobFilter builds the filter specification from the query string.
// Pagination values below 1 are clamped rather than rejected; malformed dates
// and unknown sort keys are client errors.
func parseJobFilter(c echo.Context) (models.JobFilter, error) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	sort, err := models.ParseJobSort(c.QueryParam("sort"))
	if err != nil {
		return models.JobFilter{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	filter := models.JobFilter{
		JobType:  strings.TrimSpace(c.QueryParam("job_type")),
		Location: strings.TrimSpace(c.QueryParam("location")),
		Sort:     sort,
		Page:     page,
		Limit:    limit,
	}

	if raw := c.QueryParam("deadline_before"); raw != "" {
		deadline, err := time.Parse(deadlineLayout, raw)
		if err != nil {
			return models.JobFilter{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid deadline_before, expected YYYY-MM-DD")
		}
		filter.DeadlineBefore = &deadline
	}

	return filter, nil
}

// IngestJobs upserts a batch of scraped jobs keyed on url. The scraper may
// resubmit a listing it has already seen; the url unique index guarantees a
// single row per posting.
func (h *JobHandler) IngestJobs(c echo.Context) error {
	var reqs []models.IngestJobRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Empty job batch")
	}

	validate := validator.New()
	for _, req := range reqs {
		if err := validate.Struct(req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	for _, req := range reqs {
		job := &models.Job{
			Title:       req.Title,
			Company:     req.Company,
			Location:    req.Location,
			Description: req.Description,
			URL:         req.URL,
			Source:      req.Source,
			JobType:     normalizeJobType(req.JobType),
			Deadline:    req.Deadline,
			PostedDate:  req.PostedDate,
		}
		if err := h.jobRepository.UpsertJob(job); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Jobs ingested", "count": len(reqs)})
}

// normalizeJobType lowercases the stored category so the listing filter can
// match it exactly.
func normalizeJobType(jobType *string) *string {
	if jobType == nil {
		return nil
	}
	lowered := strings.ToLower(strings.TrimSpace(*jobType))
	if lowered == "" {
		return nil
	}
	return &lowered
}

// SeedJobs inserts a couple of sample postings for development
func (h *JobHandler) SeedJobs(c echo.Context) error {
	remote := "Remote"
	india := "India"
	manual := "manual"
	internship := "internship"
	backendDesc := "Backend intern role"
	mlDesc := "ML internship"

	jobs := []models.Job{
		{
			Title:       "Software Intern",
			Company:     "Google",
			Location:    &remote,
			Description: &backendDesc,
			URL:         "https://example.com/google-intern",
			Source:      &manual,
			JobType:     &internship,
		},
		{
			Title:       "ML Intern",
			Company:     "Microsoft",
			Location:    &india,
			Description: &mlDesc,
			URL:         "https://example.com/ms-intern",
			Source:      &manual,
			JobType:     &internship,
		},
	}

	for i := range jobs {
		if err := h.jobRepository.UpsertJob(&jobs[i]); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Seeded jobs"})
}
