package handler

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Ajay2840/talentflow-hiring-platform/pkg/model"
	"github.com/Ajay2840/talentflow-hiring-platform/pkg/response"
)

func profileKey(userID string) string {
	return "talentflow:profile:" + userID
}

// GetProfile handles GET /api/me. A user who never saved a profile gets the
// default one.
func (h *Handler) GetProfile(c *gin.Context) {
	id := currentUserID(c)
	if id == nil {
		response.OK(c, model.DefaultProfile())
		return
	}

	raw, err := h.Rdb.Get(c.Request.Context(), profileKey(*id)).Bytes()
	if errors.Is(err, redis.Nil) {
		response.OK(c, model.DefaultProfile())
		return
	}
	if err != nil {
		h.Logger.Error("load profile", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	var p model.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		response.OK(c, model.DefaultProfile())
		return
	}
	response.OK(c, p)
}

// UpdateProfile handles PUT /api/me.
func (h *Handler) UpdateProfile(c *gin.Context) {
	id := currentUserID(c)
	if id == nil {
		response.BadRequest(c, "X-User-Id header is required")
		return
	}

	var p model.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	raw, err := json.Marshal(p)
	if err != nil {
		h.Logger.Error("encode profile", zap.Error(err))
		response.InternalError(c, "")
		return
	}
	if err := h.Rdb.Set(c.Request.Context(), profileKey(*id), raw, 0).Err(); err != nil {
		h.Logger.Error("save profile", zap.Error(err))
		response.InternalError(c, "")
		return
	}
	response.OK(c, p)
}
