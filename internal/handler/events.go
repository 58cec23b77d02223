package handler

import (
	"io"

	"github.com/gin-gonic/gin"
)

// StreamEvents handles GET /api/events, a server-sent-events stream of the
// live change feed. Each committed mutation arrives as one "change" event;
// clients re-run the queries of the named collection.
func (h *Handler) StreamEvents(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ctx := c.Request.Context()
	changes, cancel := h.Notify.Subscribe(ctx)
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case ch, ok := <-changes:
			if !ok {
				return false
			}
			c.SSEvent("change", ch)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
