package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/cache"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/livequery"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/repository"
	"github.com/Ajay2840/talentflow-hiring-platform/pkg/model"
	"github.com/Ajay2840/talentflow-hiring-platform/pkg/response"
	"github.com/Ajay2840/talentflow-hiring-platform/pkg/slug"
)

// ListJobs handles GET /api/jobs?status=
func (h *Handler) ListJobs(c *gin.Context) {
	status := c.Query("status")
	key := cache.Key(livequery.CollectionJobs, "list:"+status)

	var cached []model.Job
	if h.Cache.GetJSON(c.Request.Context(), key, &cached) {
		response.OK(c, cached)
		return
	}

	jobs, err := h.Repo.ListJobs(c.Request.Context(), status)
	if err != nil {
		h.Logger.Error("list jobs", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	h.Cache.SetJSON(c.Request.Context(), key, jobs)
	response.OK(c, jobs)
}

// GetJob handles GET /api/jobs/:id
func (h *Handler) GetJob(c *gin.Context) {
	job, err := h.Repo.GetJob(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Job not found")
		return
	}
	if err != nil {
		h.Logger.Error("get job", zap.Error(err))
		response.InternalError(c, "")
		return
	}
	response.OK(c, job)
}

// CreateJob handles POST /api/jobs. A missing slug is derived from the
// title; an explicit slug must already be in canonical form.
func (h *Handler) CreateJob(c *gin.Context) {
	var req model.CreateJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Title is required")
		return
	}

	s := req.Slug
	if s == "" {
		s = slug.Derive(req.Title)
	}
	if !slug.Valid(s) {
		response.BadRequest(c, "Invalid slug")
		return
	}

	status := model.JobStatus(req.Status)
	if req.Status == "" {
		status = model.JobStatusActive
	}
	if status != model.JobStatusActive && status != model.JobStatusArchived {
		response.BadRequest(c, "Invalid status")
		return
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	job := &model.Job{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Slug:        s,
		Status:      status,
		Tags:        tags,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := h.Repo.CreateJob(c.Request.Context(), job)
	if errors.Is(err, repository.ErrSlugTaken) {
		response.BadRequest(c, "Slug already exists")
		return
	}
	if err != nil {
		h.Logger.Error("create job", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	h.Cache.InvalidateCollection(c.Request.Context(), livequery.CollectionJobs)
	response.Created(c, job)
}

// UpdateJob handles PUT /api/jobs/:id with partial field updates.
func (h *Handler) UpdateJob(c *gin.Context) {
	var req model.UpdateJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.Slug != nil && !slug.Valid(*req.Slug) {
		response.BadRequest(c, "Invalid slug")
		return
	}
	if req.Status != nil &&
		*req.Status != string(model.JobStatusActive) &&
		*req.Status != string(model.JobStatusArchived) {
		response.BadRequest(c, "Invalid status")
		return
	}

	job, err := h.Repo.UpdateJob(c.Request.Context(), c.Param("id"), req)
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Job not found")
		return
	}
	if errors.Is(err, repository.ErrSlugTaken) {
		response.BadRequest(c, "Slug already exists")
		return
	}
	if err != nil {
		h.Logger.Error("update job", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	h.Cache.InvalidateCollection(c.Request.Context(), livequery.CollectionJobs)
	response.OK(c, job)
}

// ToggleArchive handles POST /api/jobs/:id/archive.
func (h *Handler) ToggleArchive(c *gin.Context) {
	job, err := h.Repo.ToggleArchive(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Job not found")
		return
	}
	if err != nil {
		h.Logger.Error("toggle archive", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	h.Cache.InvalidateCollection(c.Request.Context(), livequery.CollectionJobs)
	response.OK(c, job)
}

// DeleteJob handles DELETE /api/jobs/:id.
func (h *Handler) DeleteJob(c *gin.Context) {
	err := h.Repo.DeleteJob(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Job not found")
		return
	}
	if err != nil {
		h.Logger.Error("delete job", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	h.Cache.InvalidateCollection(c.Request.Context(), livequery.CollectionJobs)
	response.Success(c)
}

// ReorderJobs handles POST /api/jobs/reorder. The route also carries the
// extra chaos failure rate, injected before any write happens.
func (h *Handler) ReorderJobs(c *gin.Context) {
	var req model.ReorderJobsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "jobIds is required")
		return
	}

	err := h.Repo.ReorderJobs(c.Request.Context(), req.JobIDs)
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Job not found")
		return
	}
	if err != nil {
		h.Logger.Error("reorder jobs", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	h.Cache.InvalidateCollection(c.Request.Context(), livequery.CollectionJobs)
	response.Success(c)
}
