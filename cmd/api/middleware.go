package main

import (
	"github.com/gin-gonic/gin"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/handler"
)

// CORSMiddleware reflects the request origin when it is trusted.
func (app *application) CORSMiddleware() gin.HandlerFunc {
	trusted := map[string]bool{}
	for _, o := range app.Config.GetCORSOrigins() {
		trusted[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if trusted[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With, X-User-Id")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// UserIDMiddleware resolves the acting user from the X-User-Id header and
// stores it on the request context. Timeline entries and profile reads use
// it; requests without the header act as the shared "local" user.
func (app *application) UserIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-User-Id")
		if id == "" {
			id = "local"
		}
		handler.SetUserID(c, id)
		c.Next()
	}
}
