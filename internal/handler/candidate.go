package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/cache"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/livequery"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/pipeline"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/repository"
	"github.com/Ajay2840/talentflow-hiring-platform/pkg/model"
	"github.com/Ajay2840/talentflow-hiring-platform/pkg/response"
)

// ListCandidates handles GET /api/candidates?stage=&search=
func (h *Handler) ListCandidates(c *gin.Context) {
	var q model.ListCandidatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if q.Stage != "" && q.Stage != "all" {
		if _, err := pipeline.ParseStage(q.Stage); err != nil {
			response.BadRequest(c, "Invalid stage")
			return
		}
	}

	// only the unfiltered list is hot enough to cache
	key := cache.Key(livequery.CollectionCandidates, "list:all")
	cacheable := q.Stage == "" && q.Search == ""
	if cacheable {
		var cached []model.Candidate
		if h.Cache.GetJSON(c.Request.Context(), key, &cached) {
			response.OK(c, cached)
			return
		}
	}

	candidates, err := h.Repo.ListCandidates(c.Request.Context(), q.Stage, q.Search)
	if err != nil {
		h.Logger.Error("list candidates", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	if cacheable {
		h.Cache.SetJSON(c.Request.Context(), key, candidates)
	}
	response.OK(c, candidates)
}

// GetCandidate handles GET /api/candidates/:id
func (h *Handler) GetCandidate(c *gin.Context) {
	cand, err := h.Repo.GetCandidate(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Candidate not found")
		return
	}
	if err != nil {
		h.Logger.Error("get candidate", zap.Error(err))
		response.InternalError(c, "")
		return
	}
	response.OK(c, cand)
}

// CreateCandidate handles POST /api/candidates. New candidates always enter
// at Applied; the first timeline entry is written in the same transaction.
func (h *Handler) CreateCandidate(c *gin.Context) {
	var req model.CreateCandidateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name, email and jobId are required")
		return
	}

	cand := &model.Candidate{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		JobID:     req.JobID,
		Stage:     pipeline.StageApplied,
		AppliedAt: time.Now().UTC(),
		Resume:    req.Resume,
	}

	if err := h.Repo.CreateCandidate(c.Request.Context(), cand, currentUserID(c)); err != nil {
		h.Logger.Error("create candidate", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	h.Cache.InvalidateCollection(c.Request.Context(), livequery.CollectionCandidates)
	response.Created(c, cand)
}

// UpdateCandidate handles PUT /api/candidates/:id. A stage in the body is a
// pipeline transition and lands together with its timeline entry.
func (h *Handler) UpdateCandidate(c *gin.Context) {
	var req model.UpdateCandidateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.Stage != nil {
		if _, err := pipeline.ParseStage(*req.Stage); err != nil {
			response.BadRequest(c, "Invalid stage")
			return
		}
	}

	cand, err := h.Repo.UpdateCandidate(c.Request.Context(), c.Param("id"), req, currentUserID(c))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Candidate not found")
		return
	}
	if err != nil {
		h.Logger.Error("update candidate", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	h.Cache.InvalidateCollection(c.Request.Context(), livequery.CollectionCandidates)
	response.OK(c, cand)
}

// AddNote handles POST /api/candidates/:id/notes. The note lands on the
// candidate and on the timeline at the current, unchanged stage.
func (h *Handler) AddNote(c *gin.Context) {
	var req model.AddNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Notes are required")
		return
	}

	cand, err := h.Repo.AddNote(c.Request.Context(), c.Param("id"), req.Notes, currentUserID(c))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Candidate not found")
		return
	}
	if err != nil {
		h.Logger.Error("add note", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	h.Cache.InvalidateCollection(c.Request.Context(), livequery.CollectionCandidates)
	response.OK(c, cand)
}

// GetTimeline handles GET /api/candidates/:id/timeline, most recent first.
func (h *Handler) GetTimeline(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.Repo.GetCandidate(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Candidate not found")
			return
		}
		h.Logger.Error("get candidate", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	entries, err := h.Repo.ListTimeline(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("list timeline", zap.Error(err))
		response.InternalError(c, "")
		return
	}
	response.OK(c, entries)
}
