package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/livequery"
	"github.com/Ajay2840/talentflow-hiring-platform/pkg/response"
)

// ResetSeed handles POST /api/seed/reset. It wipes every collection and
// regenerates the sample dataset; refused outright in production.
func (h *Handler) ResetSeed(c *gin.Context) {
	if h.Config.IsProduction() {
		response.Forbidden(c, "Seed reset is disabled in production")
		return
	}

	stats, err := h.Repo.Reseed(c.Request.Context())
	if err != nil {
		h.Logger.Error("seed reset", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	for _, col := range []string{
		livequery.CollectionJobs,
		livequery.CollectionCandidates,
		livequery.CollectionTimeline,
		livequery.CollectionAssessments,
		livequery.CollectionResponses,
	} {
		h.Cache.InvalidateCollection(c.Request.Context(), col)
		h.Notify.Publish(c.Request.Context(), livequery.Change{Collection: col, Op: "reset"})
	}

	h.Logger.Info("seed reset complete",
		zap.Int("jobs", stats.Jobs),
		zap.Int("candidates", stats.Candidates),
		zap.Int("assessments", stats.Assessments),
	)
	response.OK(c, stats)
}
