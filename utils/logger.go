package utils

import (
	"errors"
	"time"

	"surveyapi/pkg/apperror"
	"surveyapi/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// LoggerMiddleware logs every request with its status, latency and request id.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestId", requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()

		// Log based on status code level
		if status >= 500 {
			logger.Errorf("HTTP %s %s - Status: %d, Duration: %v, IP: %s, RequestID: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP(), requestID)
		} else if status >= 400 {
			logger.Warnf("HTTP %s %s - Status: %d, Duration: %v, IP: %s, RequestID: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP(), requestID)
		} else {
			logger.Infof("HTTP %s %s - Status: %d, Duration: %v, IP: %s, RequestID: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP(), requestID)
		}
	}
}

// JSONResponse sends a JSON response with the specified HTTP status code.
func JSONResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// ErrorResponse logs err and answers with the status matching its kind.
// Field-level validation failures are listed under "details".
func ErrorResponse(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	body := gin.H{"error": err.Error()}

	var verr *apperror.ValidationError
	if errors.As(err, &verr) {
		body["details"] = verr.Fields
	}

	if status >= 500 {
		logger.Errorf("API Error: %v", err)
	} else {
		logger.Debugf("API Error (%d): %v", status, err)
	}
	c.AbortWithStatusJSON(status, body)
}
