package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/cache"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/config"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/livequery"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/repository"
)

type Handler struct {
	Logger *zap.Logger
	Repo   *repository.Repository
	Cache  *cache.Cache
	Rdb    *redis.Client
	Notify *livequery.Notifier
	Config *config.Config
}

// userIDKey is set by the profile middleware in cmd/api.
const userIDKey = "userID"

// currentUserID returns the requesting user's id, or nil when the request
// carried none (seed data, unauthenticated tools).
func currentUserID(c *gin.Context) *string {
	v, ok := c.Get(userIDKey)
	if !ok {
		return nil
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return nil
	}
	return &id
}

// SetUserID stores the resolved user id on the request context.
func SetUserID(c *gin.Context, id string) {
	c.Set(userIDKey, id)
}
