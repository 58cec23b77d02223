package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Ajay2840/talentflow-hiring-platform/pkg/response"
)

func record(write func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)
	return w
}

func TestSuccessFlag(t *testing.T) {
	w := record(func(c *gin.Context) { response.Success(c) })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestOKCarriesRawPayload(t *testing.T) {
	w := record(func(c *gin.Context) { response.OK(c, []string{"a", "b"}) })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["a","b"]`, w.Body.String())
}

func TestErrorEnvelope(t *testing.T) {
	cases := []struct {
		name  string
		write func(c *gin.Context)
		code  int
		body  string
	}{
		{"bad request", func(c *gin.Context) { response.BadRequest(c, "Slug already exists") },
			http.StatusBadRequest, `{"error":"Slug already exists"}`},
		{"not found default", func(c *gin.Context) { response.NotFound(c, "") },
			http.StatusNotFound, `{"error":"resource not found"}`},
		{"validation", func(c *gin.Context) { response.ValidationError(c, "question q1 requires an answer") },
			http.StatusUnprocessableEntity, `{"error":"question q1 requires an answer"}`},
		{"internal default", func(c *gin.Context) { response.InternalError(c, "") },
			http.StatusInternalServerError, `{"error":"internal server error"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := record(tc.write)
			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}
