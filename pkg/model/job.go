package model

import "time"

type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusArchived JobStatus = "archived"
)

// Job is a posting in the hiring pipeline. Order is a dense integer rank
// used by the board for drag-and-drop sorting; slug is unique across jobs.
type Job struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Slug        string    `json:"slug" db:"slug"`
	Status      JobStatus `json:"status" db:"status"`
	Tags        []string  `json:"tags" db:"tags"`
	Description *string   `json:"description,omitempty" db:"description"`
	Order       int       `json:"order" db:"sort_order"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateJobReq struct {
	Title       string   `json:"title" binding:"required"`
	Slug        string   `json:"slug"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
	Description *string  `json:"description"`
}

type UpdateJobReq struct {
	Title       *string  `json:"title,omitempty"`
	Slug        *string  `json:"slug,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Description *string  `json:"description,omitempty"`
}

type ReorderJobsReq struct {
	JobIDs []string `json:"jobIds" binding:"required,min=1"`
}
