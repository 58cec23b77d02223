package chaos

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func testRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func perform(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestMiddleware_PassThroughAtZeroRate(t *testing.T) {
	i := New(0, 0, 0)
	i.sleep = func(time.Duration) {}
	for n := 0; n < 50; n++ {
		if w := perform(testRouter(i.Middleware())); w.Code != http.StatusOK {
			t.Fatalf("request %d: status %d, want 200", n, w.Code)
		}
	}
}

func TestMiddleware_AlwaysFailsAtFullRate(t *testing.T) {
	i := New(0, 0, 1)
	i.sleep = func(time.Duration) {}
	i.rnd = func() float64 { return 0.5 } // any value < 1 trips the failure
	w := perform(testRouter(i.Middleware()))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", w.Code)
	}
	if body := w.Body.String(); body != `{"error":"simulated API error"}` {
		t.Errorf("body = %s", body)
	}
}

func TestMiddleware_DelayWithinWindow(t *testing.T) {
	i := New(200*time.Millisecond, 1200*time.Millisecond, 0)
	var slept time.Duration
	i.sleep = func(d time.Duration) { slept = d }

	for _, r := range []float64{0, 0.25, 0.5, 0.999} {
		v := r
		i.rnd = func() float64 { return v }
		perform(testRouter(i.Middleware()))
		if slept < 200*time.Millisecond || slept >= 1200*time.Millisecond {
			t.Errorf("rnd=%v slept %v, want within [200ms, 1200ms)", v, slept)
		}
	}
}

func TestMiddleware_DegenerateWindow(t *testing.T) {
	i := New(50*time.Millisecond, 50*time.Millisecond, 0)
	var slept time.Duration
	i.sleep = func(d time.Duration) { slept = d }
	perform(testRouter(i.Middleware()))
	if slept != 50*time.Millisecond {
		t.Errorf("slept %v, want exactly 50ms when min == max", slept)
	}
}

func TestFailureRate_Independent(t *testing.T) {
	i := New(0, 0, 0)
	i.sleep = func(time.Duration) {}

	i.rnd = func() float64 { return 0.05 }
	if w := perform(testRouter(i.FailureRate(0.1))); w.Code != http.StatusInternalServerError {
		t.Errorf("rnd below rate: status %d, want 500", w.Code)
	}

	i.rnd = func() float64 { return 0.5 }
	if w := perform(testRouter(i.FailureRate(0.1))); w.Code != http.StatusOK {
		t.Errorf("rnd above rate: status %d, want 200", w.Code)
	}
}
