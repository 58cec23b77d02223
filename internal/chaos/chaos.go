// Package chaos injects artificial latency and synthetic failures into the
// API, reproducing the simulated network layer the UI is written against:
// every request sleeps 200-1200ms and has an independent 8% chance of a
// synthetic 500, regardless of business outcome. Reorder carries an extra
// 10% failure applied before any write happens.
package chaos

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ajay2840/talentflow-hiring-platform/pkg/response"
)

// Injector holds the failure rates and latency window. The rnd field is
// swappable for deterministic tests.
type Injector struct {
	MinDelay  time.Duration
	MaxDelay  time.Duration
	ErrorRate float64

	rnd   func() float64
	sleep func(time.Duration)
}

// New returns an Injector with the given latency window and error rate.
func New(minDelay, maxDelay time.Duration, errorRate float64) *Injector {
	return &Injector{
		MinDelay:  minDelay,
		MaxDelay:  maxDelay,
		ErrorRate: errorRate,
		rnd:       rand.Float64,
		sleep:     time.Sleep,
	}
}

// Middleware delays the request and may abort it with a synthetic 500.
func (i *Injector) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		i.sleep(i.delay())
		if i.rnd() < i.ErrorRate {
			response.InternalError(c, "simulated API error")
			c.Abort()
			return
		}
		c.Next()
	}
}

// FailureRate returns a middleware that fails with the given independent
// probability. Used on the reorder route so a synthetic failure can never
// leave a half-applied order behind.
func (i *Injector) FailureRate(rate float64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if i.rnd() < rate {
			response.InternalError(c, "failed to reorder")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (i *Injector) delay() time.Duration {
	if i.MaxDelay <= i.MinDelay {
		return i.MinDelay
	}
	return i.MinDelay + time.Duration(i.rnd()*float64(i.MaxDelay-i.MinDelay))
}
