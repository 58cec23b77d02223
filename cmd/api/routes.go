package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if !app.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	})

	r.Use(app.CORSMiddleware())

	r.GET("/healthz", app.healthz)

	api := r.Group("/api")
	api.Use(app.UserIDMiddleware())
	if app.Config.Chaos.Enabled {
		// artificial latency + synthetic 500s on every API route
		api.Use(app.Chaos.Middleware())
	}
	{
		// job routes
		api.GET("/jobs", app.Handler.ListJobs)
		api.POST("/jobs", app.Handler.CreateJob)
		if app.Config.Chaos.Enabled {
			api.POST("/jobs/reorder",
				app.Chaos.FailureRate(app.Config.Chaos.ReorderFailRate),
				app.Handler.ReorderJobs)
		} else {
			api.POST("/jobs/reorder", app.Handler.ReorderJobs)
		}
		api.GET("/jobs/:id", app.Handler.GetJob)
		api.PUT("/jobs/:id", app.Handler.UpdateJob)
		api.DELETE("/jobs/:id", app.Handler.DeleteJob)
		api.POST("/jobs/:id/archive", app.Handler.ToggleArchive)

		// candidate routes
		api.GET("/candidates", app.Handler.ListCandidates)
		api.POST("/candidates", app.Handler.CreateCandidate)
		api.GET("/candidates/:id", app.Handler.GetCandidate)
		api.PUT("/candidates/:id", app.Handler.UpdateCandidate)
		api.GET("/candidates/:id/timeline", app.Handler.GetTimeline)
		api.POST("/candidates/:id/notes", app.Handler.AddNote)

		// assessment routes
		api.GET("/assessments", app.Handler.ListAssessments)
		api.POST("/assessments", app.Handler.CreateAssessment)
		api.GET("/assessments/:id", app.Handler.GetAssessment)
		api.PUT("/assessments/:id", app.Handler.UpdateAssessment)
		api.DELETE("/assessments/:id", app.Handler.DeleteAssessment)
		api.POST("/assessments/:id/sections", app.Handler.AddSection)
		api.POST("/assessments/:id/sections/:sectionId/questions", app.Handler.AddQuestion)
		api.DELETE("/assessments/:id/questions/:questionId", app.Handler.DeleteQuestion)
		api.GET("/assessments/:id/practice", app.Handler.PracticeQuestion)
		api.POST("/assessments/:id/practice", app.Handler.GradePractice)
		api.GET("/assessments/:id/responses", app.Handler.ListResponses)
		api.POST("/assessments/:id/responses", app.Handler.SaveResponse)

		// profile routes
		api.GET("/me", app.Handler.GetProfile)
		api.PUT("/me", app.Handler.UpdateProfile)

		// live change feed
		api.GET("/events", app.Handler.StreamEvents)

		// dev tooling
		api.POST("/seed/reset", app.Handler.ResetSeed)
	}

	return r
}

func (app *application) healthz(c *gin.Context) {
	if err := app.DB.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "postgres": err.Error()})
		return
	}
	if err := app.Redis.Ping(c.Request.Context()).Err(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "redis": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
