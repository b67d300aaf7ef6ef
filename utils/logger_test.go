package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"surveyapi/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, handler gin.HandlerFunc, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.Use(LoggerMiddleware())
	r.GET("/x", handler)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// TestErrorResponse_StatusAndBody tests status mapping and the error body shape.
func TestErrorResponse_StatusAndBody(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
	}{
		{apperror.NotFound("question with id %d", 7), http.StatusNotFound},
		{apperror.Conflict("category %d has %d related questions", 1, 2), http.StatusConflict},
		{apperror.Invalid("invalid id %q", "x"), http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := serve(t, func(c *gin.Context) { ErrorResponse(c, tc.err) }, nil)

		assert.Equal(t, tc.wantStatus, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tc.err.Error(), body["error"])
		assert.NotContains(t, body, "details")
	}
}

// TestErrorResponse_ValidationDetails tests that field errors are listed.
func TestErrorResponse_ValidationDetails(t *testing.T) {
	verr := apperror.NewValidationError(http.StatusUnprocessableEntity, "name", "max", "name must be at most 100 characters long")
	rec := serve(t, func(c *gin.Context) { ErrorResponse(c, verr) }, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body struct {
		Error   string                `json:"error"`
		Details []apperror.FieldError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Details, 1)
	assert.Equal(t, "name", body.Details[0].Field)
	assert.Equal(t, "max", body.Details[0].Rule)
}

// TestLoggerMiddleware_RequestID tests that a request id is generated or echoed.
func TestLoggerMiddleware_RequestID(t *testing.T) {
	ok := func(c *gin.Context) { JSONResponse(c, http.StatusOK, gin.H{"id": c.GetString("requestId")}) }

	rec := serve(t, ok, nil)
	generated := rec.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Contains(t, rec.Body.String(), generated)

	rec = serve(t, ok, http.Header{RequestIDHeader: []string{"abc-123"}})
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}
