package repositories

import (
	"strings"

	"github.com/jobscout/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JobRepository defines the interface for job data operations
type JobRepository interface {
	ListJobs(filter models.JobFilter) ([]models.Job, error)
	GetJobByID(id uint) (*models.Job, error)
	UpsertJob(job *models.Job) error
	GetSavedJobsByUser(userID uint) ([]models.Job, error)
}

// PostgresJobRepository implements JobRepository
type PostgresJobRepository struct {
	db *gorm.DB
}

func NewPostgresJobRepository(db *gorm.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

// listQuery composes a listing filter into a query: conjunctive predicates
// first, then the order clause, then the page window. Split out of ListJobs
// so the generated plan can be inspected in tests without a live database.
func listQuery(db *gorm.DB, filter models.JobFilter) *gorm.DB {
	q := db.Model(&models.Job{})

	if filter.JobType != "" {
		// Categories are stored lowercase, so fold the input once here.
		q = q.Where("job_type = ?", strings.ToLower(filter.JobType))
	}
	if filter.Location != "" {
		q = q.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.DeadlineBefore != nil {
		// "On or before this date" is a calendar comparison: a same-day
		// deadline with a time-of-day component still matches. Jobs without
		// a deadline never match this predicate.
		q = q.Where("deadline IS NOT NULL AND deadline::date <= ?", *filter.DeadlineBefore)
	}

	switch filter.Sort {
	case models.JobSortOldest:
		q = q.Order("scraped_at ASC")
	case models.JobSortDeadline:
		// Postgres orders NULLs last on ASC, so jobs without a deadline
		// trail the sorted ones.
		q = q.Order("deadline ASC")
	default:
		q = q.Order("scraped_at DESC")
	}

	return q.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
}

// savedJobsQuery joins a user's saves to the jobs they point at, most
// recently saved first.
func savedJobsQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&models.Job{}).
		Joins("JOIN job_saves ON job_saves.job_id = jobs.id").
		Where("job_saves.user_id = ?", userID).
		Order("job_saves.saved_at DESC")
}

// ListJobs returns one page of jobs matching the filter. No total count is
// computed.
func (r *PostgresJobRepository) ListJobs(filter models.JobFilter) ([]models.Job, error) {
	jobs := []models.Job{} // serialize as [] rather than null when nothing matches
	if err := listQuery(r.db, filter).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJobByID retrieves a job by ID
func (r *PostgresJobRepository) GetJobByID(id uint) (*models.Job, error) {
	var job models.Job
	if err := r.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// UpsertJob inserts a scraped job, keyed on its unique url. Re-scraping the
// same listing refreshes the mutable fields instead of creating a duplicate.
func (r *PostgresJobRepository) UpsertJob(job *models.Job) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "url"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "company", "location", "description", "source",
			"job_type", "deadline", "posted_date",
		}),
	}).Create(job).Error
}

// GetSavedJobsByUser returns the jobs a user has saved, most recently saved
// first.
func (r *PostgresJobRepository) GetSavedJobsByUser(userID uint) ([]models.Job, error) {
	jobs := []models.Job{}
	if err := savedJobsQuery(r.db, userID).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}
