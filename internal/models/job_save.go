package models

import "time"

// JobSave records that a user bookmarked a job. The composite unique index is
// the arbiter for concurrent saves of the same pair: at most one row survives.
type JobSave struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	UserID  uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_job_save;not null"`
	JobID   uint      `json:"job_id" gorm:"index;uniqueIndex:idx_user_job_save;not null"`
	SavedAt time.Time `json:"saved_at" gorm:"autoCreateTime"`
}
