package controllers

import (
	"net/http"

	"surveyapi/pkg/logger"
	"surveyapi/repository"
	"surveyapi/utils"

	"github.com/gin-gonic/gin"
)

// RegisterHealthRoutes registers the liveness endpoint, which pings the database.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func RegisterHealthRoutes(r gin.IRoutes, baseRepo repository.BaseRepository) {
	r.GET("/health", func(c *gin.Context) {
		if err := baseRepo.Ping(c.Request.Context()); err != nil {
			logger.Errorf("Health check failed: %v", err)
			utils.JSONResponse(c, http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		utils.JSONResponse(c, http.StatusOK, gin.H{"status": "ok"})
	})
}
