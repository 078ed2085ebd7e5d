package models

import (
	"fmt"
	"time"
)

// Job represents a scraped job posting. Rows are written by the ingestion
// endpoints and are immutable afterwards; url uniquely identifies a posting
// so re-scraping the same listing never creates a duplicate.
type Job struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Company     string     `json:"company" gorm:"not null"`
	Location    *string    `json:"location"`
	Description *string    `json:"description"`
	URL         string     `json:"url" gorm:"uniqueIndex;not null"`
	Source      *string    `json:"source"`
	JobType     *string    `json:"job_type"` // stored lowercase (e.g. "it", "internship")
	Deadline    *time.Time `json:"deadline"`
	PostedDate  *time.Time `json:"posted_date"`
	ScrapedAt   time.Time  `json:"scraped_at" gorm:"autoCreateTime"`
}

// JobSort enumerates the supported listing orders.
type JobSort string

const (
	JobSortRecent   JobSort = "recent"   // scraped_at DESC (default)
	JobSortOldest   JobSort = "oldest"   // scraped_at ASC
	JobSortDeadline JobSort = "deadline" // deadline ASC, NULL deadlines last
)

// ParseJobSort validates a sort query parameter. The empty string maps to the
// default order.
func ParseJobSort(s string) (JobSort, error) {
	switch s {
	case "", string(JobSortRecent):
		return JobSortRecent, nil
	case string(JobSortOldest):
		return JobSortOldest, nil
	case string(JobSortDeadline):
		return JobSortDeadline, nil
	default:
		return "", fmt.Errorf("unknown sort %q", s)
	}
}

// JobFilter is the explicit filter specification for a listing query. All
// predicates are optional and conjunctive; zero values mean "no filter".
type JobFilter struct {
	JobType        string
	Location       string
	DeadlineBefore *time.Time
	Sort           JobSort
	Page           int
	Limit          int
}

// IngestJobRequest is a scraped posting submitted by the ingestion pipeline.
type IngestJobRequest struct {
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    *string    `json:"location"`
	Description *string    `json:"description"`
	URL         string     `json:"url" validate:"required,url"`
	Source      *string    `json:"source"`
	JobType     *string    `json:"job_type"`
	Deadline    *time.Time `json:"deadline"`
	PostedDate  *time.Time `json:"posted_date"`
}
