package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/assessment"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/repository"
	"github.com/Ajay2840/talentflow-hiring-platform/pkg/model"
	"github.com/Ajay2840/talentflow-hiring-platform/pkg/response"
)

// ListAssessments handles GET /api/assessments?jobId=
func (h *Handler) ListAssessments(c *gin.Context) {
	out, err := h.Repo.ListAssessments(c.Request.Context(), c.Query("jobId"))
	if err != nil {
		h.Logger.Error("list assessments", zap.Error(err))
		response.InternalError(c, "")
		return
	}
	response.OK(c, out)
}

// GetAssessment handles GET /api/assessments/:id
func (h *Handler) GetAssessment(c *gin.Context) {
	a, err := h.Repo.GetAssessment(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Assessment not found")
		return
	}
	if err != nil {
		h.Logger.Error("get assessment", zap.Error(err))
		response.InternalError(c, "")
		return
	}
	response.OK(c, a)
}

// CreateAssessment handles POST /api/assessments. The submitted tree is
// structurally validated before it is stored.
func (h *Handler) CreateAssessment(c *gin.Context) {
	var req model.CreateAssessmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "jobId and title are required")
		return
	}

	sections := req.Sections
	if sections == nil {
		sections = []model.AssessmentSection{}
	}
	fillIDs(sections)

	now := time.Now().UTC()
	a := &model.Assessment{
		ID:          uuid.NewString(),
		JobID:       req.JobID,
		Title:       req.Title,
		Description: req.Description,
		Sections:    sections,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := assessment.ValidateStructure(a); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := h.Repo.CreateAssessment(c.Request.Context(), a); err != nil {
		h.Logger.Error("create assessment", zap.Error(err))
		response.InternalError(c, "")
		return
	}
	response.Created(c, a)
}

// UpdateAssessment handles PUT /api/assessments/:id. Sections, when present,
// replace the whole tree (the builder always sends the full document).
func (h *Handler) UpdateAssessment(c *gin.Context) {
	var req model.UpdateAssessmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	a, err := h.Repo.GetAssessment(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Assessment not found")
		return
	}
	if err != nil {
		h.Logger.Error("get assessment", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = req.Description
	}
	if req.Sections != nil {
		fillIDs(req.Sections)
		a.Sections = req.Sections
	}
	if err := assessment.ValidateStructure(a); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := h.saveAssessment(c, a); err != nil {
		return
	}
	response.OK(c, a)
}

// DeleteAssessment handles DELETE /api/assessments/:id, removing its
// responses with it.
func (h *Handler) DeleteAssessment(c *gin.Context) {
	err := h.Repo.DeleteAssessment(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Assessment not found")
		return
	}
	if err != nil {
		h.Logger.Error("delete assessment", zap.Error(err))
		response.InternalError(c, "")
		return
	}
	response.Success(c)
}

// AddSection handles POST /api/assessments/:id/sections. The new section is
// appended at the end of the order.
func (h *Handler) AddSection(c *gin.Context) {
	var req model.AddSectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Title is required")
		return
	}

	a, err := h.Repo.GetAssessment(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Assessment not found")
		return
	}
	if err != nil {
		h.Logger.Error("get assessment", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	sec := model.AssessmentSection{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Order:       len(a.Sections),
		Questions:   []model.AssessmentQuestion{},
	}
	a.Sections = append(a.Sections, sec)

	if err := h.saveAssessment(c, a); err != nil {
		return
	}
	response.Created(c, sec)
}

// AddQuestion handles POST /api/assessments/:id/sections/:sectionId/questions.
func (h *Handler) AddQuestion(c *gin.Context) {
	var req model.AddQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Type and question are required")
		return
	}

	a, err := h.Repo.GetAssessment(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Assessment not found")
		return
	}
	if err != nil {
		h.Logger.Error("get assessment", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	si := -1
	for i, sec := range a.Sections {
		if sec.ID == c.Param("sectionId") {
			si = i
			break
		}
	}
	if si < 0 {
		response.NotFound(c, "Section not found")
		return
	}

	q := model.AssessmentQuestion{
		ID:               uuid.NewString(),
		Type:             req.Type,
		Question:         req.Question,
		Required:         req.Required,
		Options:          req.Options,
		Validation:       req.Validation,
		ConditionalLogic: req.Conditional,
		Order:            len(a.Sections[si].Questions),
		CorrectAnswer:    req.CorrectAnswer,
	}
	a.Sections[si].Questions = append(a.Sections[si].Questions, q)

	// validates the question itself and that dependsOn resolves in the tree
	if err := assessment.ValidateStructure(a); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := h.saveAssessment(c, a); err != nil {
		return
	}
	response.Created(c, q)
}

// DeleteQuestion handles DELETE /api/assessments/:id/questions/:questionId.
func (h *Handler) DeleteQuestion(c *gin.Context) {
	a, err := h.Repo.GetAssessment(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Assessment not found")
		return
	}
	if err != nil {
		h.Logger.Error("get assessment", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	if !assessment.RemoveQuestion(a, c.Param("questionId")) {
		response.NotFound(c, "Question not found")
		return
	}

	if err := h.saveAssessment(c, a); err != nil {
		return
	}
	response.Success(c)
}

// PracticeQuestion handles GET /api/assessments/:id/practice?sectionId=,
// returning a uniformly random question from the section (or the whole
// assessment when no section is given).
func (h *Handler) PracticeQuestion(c *gin.Context) {
	a, err := h.Repo.GetAssessment(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Assessment not found")
		return
	}
	if err != nil {
		h.Logger.Error("get assessment", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	sectionID := c.Query("sectionId")
	pool := []model.AssessmentQuestion{}
	for _, sec := range a.Sections {
		if sectionID != "" && sec.ID != sectionID {
			continue
		}
		pool = append(pool, sec.Questions...)
	}

	q, ok := assessment.PickRandom(pool)
	if !ok {
		response.NotFound(c, "No questions available")
		return
	}
	response.OK(c, q)
}

// GradePractice handles POST /api/assessments/:id/practice, grading a
// selected option against the question's correct answer.
func (h *Handler) GradePractice(c *gin.Context) {
	var req model.PracticeGradeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "questionId and selected are required")
		return
	}

	a, err := h.Repo.GetAssessment(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Assessment not found")
		return
	}
	if err != nil {
		h.Logger.Error("get assessment", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	q, ok := assessment.FindQuestion(a, req.QuestionID)
	if !ok {
		response.NotFound(c, "Question not found")
		return
	}
	response.OK(c, assessment.Grade(q, req.Selected))
}

// SaveResponse handles POST /api/assessments/:id/responses. The answer is
// validated against the question's rules and conditional visibility before
// it is stored; each save produces its own response row.
func (h *Handler) SaveResponse(c *gin.Context) {
	var req model.SaveResponseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "candidateId and questionId are required")
		return
	}

	a, err := h.Repo.GetAssessment(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Assessment not found")
		return
	}
	if err != nil {
		h.Logger.Error("get assessment", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	q, ok := assessment.FindQuestion(a, req.QuestionID)
	if !ok {
		response.BadRequest(c, "Question not found")
		return
	}

	// merge the candidate's earlier rows so conditional visibility sees the
	// full submission so far, not just this answer
	prior, err := h.Repo.ListResponses(c.Request.Context(), a.ID, req.CandidateID)
	if err != nil {
		h.Logger.Error("list responses", zap.Error(err))
		response.InternalError(c, "")
		return
	}
	answers := map[string]any{}
	for _, row := range prior {
		for k, v := range row.Answers {
			answers[k] = v
		}
	}
	answers[req.QuestionID] = req.Answer

	if err := assessment.ValidateAnswer(q, req.Answer, answers); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	resp := &model.AssessmentResponse{
		ID:           uuid.NewString(),
		AssessmentID: a.ID,
		CandidateID:  req.CandidateID,
		Answers:      map[string]any{req.QuestionID: req.Answer},
		SubmittedAt:  time.Now().UTC(),
	}
	if err := h.Repo.SaveResponse(c.Request.Context(), resp); err != nil {
		h.Logger.Error("save response", zap.Error(err))
		response.InternalError(c, "")
		return
	}
	response.Created(c, resp)
}

// ListResponses handles GET /api/assessments/:id/responses?candidateId=
func (h *Handler) ListResponses(c *gin.Context) {
	out, err := h.Repo.ListResponses(c.Request.Context(), c.Param("id"), c.Query("candidateId"))
	if err != nil {
		h.Logger.Error("list responses", zap.Error(err))
		response.InternalError(c, "")
		return
	}
	response.OK(c, out)
}

// saveAssessment persists the tree and translates errors onto the response;
// a non-nil return means the response is already written.
func (h *Handler) saveAssessment(c *gin.Context, a *model.Assessment) error {
	err := h.Repo.SaveAssessment(c.Request.Context(), a)
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Assessment not found")
		return err
	}
	if err != nil {
		h.Logger.Error("save assessment", zap.Error(err))
		response.InternalError(c, "")
		return err
	}
	return nil
}

// fillIDs assigns fresh ids to sections and questions submitted without one,
// so client-built trees and server-built trees look the same downstream.
func fillIDs(sections []model.AssessmentSection) {
	for si := range sections {
		if sections[si].ID == "" {
			sections[si].ID = uuid.NewString()
		}
		for qi := range sections[si].Questions {
			if sections[si].Questions[qi].ID == "" {
				sections[si].Questions[qi].ID = uuid.NewString()
			}
		}
	}
}
