package models

import "time"

// EmailNotification is reserved for the job-alert email feature. The table is
// migrated but no exposed operation writes to it yet.
type EmailNotification struct {
	ID     uint      `json:"id" gorm:"primaryKey"`
	UserID uint      `json:"user_id" gorm:"index;not null"`
	JobID  uint      `json:"job_id" gorm:"index;not null"`
	SentAt time.Time `json:"sent_at" gorm:"autoCreateTime"`
}
