package repositories

import (
	"github.com/jobscout/backend/internal/models"
	"gorm.io/gorm"
)

// JobSaveRepository defines the interface for saved job operations
type JobSaveRepository interface {
	SaveJob(save *models.JobSave) error
	UnsaveJob(userID, jobID uint) (bool, error)
	IsJobSaved(userID, jobID uint) (bool, error)
}

// PostgresJobSaveRepository implements JobSaveRepository
type PostgresJobSaveRepository struct {
	db *gorm.DB
}

func NewPostgresJobSaveRepository(db *gorm.DB) *PostgresJobSaveRepository {
	return &PostgresJobSaveRepository{db: db}
}

// SaveJob inserts the (user, job) row. With TranslateError enabled a
// concurrent duplicate insert returns gorm.ErrDuplicatedKey, which callers
// treat as the already-saved outcome.
func (r *PostgresJobSaveRepository) SaveJob(save *models.JobSave) error {
	return r.db.Create(save).Error
}

// UnsaveJob deletes the (user, job) row if present and reports whether a row
// was removed. A missing row is not an error.
func (r *PostgresJobSaveRepository) UnsaveJob(userID, jobID uint) (bool, error) {
	res := r.db.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&models.JobSave{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsJobSaved reports whether the user already saved the job
func (r *PostgresJobSaveRepository) IsJobSaved(userID, jobID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.JobSave{}).Where("user_id = ? AND job_id = ?", userID, jobID).Count(&count).Error
	return count > 0, err
}
