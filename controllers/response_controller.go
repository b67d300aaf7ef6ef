package controllers

import (
	"net/http"

	"surveyapi/services"
	"surveyapi/services/dto"
	"surveyapi/utils"

	"github.com/gin-gonic/gin"
)

type responseController struct {
	srv services.ResponseService
}

// SubmitResponse records an agree/disagree vote
// @Summary Submit response
// @Description Stores one vote and returns the updated counters of the question
// @Tags Responses
// @Accept json
// @Produce json
// @Param response body ResponseCreateRequest true "Vote"
// @Success 201 {object} StatisticBody
// @Failure 400 {object} ValidationErrorResponse "Invalid vote"
// @Failure 404 {object} StandardErrorResponse "Question not found"
// @Router /responses/ [post]
func (ctl *responseController) submitResponse(c *gin.Context) {
	var in dto.ResponseCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorResponse(c, utils.BindError(err, http.StatusBadRequest))
		return
	}

	stat, err := ctl.srv.Submit(c.Request.Context(), in)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, stat)
}

// ListStatistics returns the counters of every question
// @Summary List statistics
// @Tags Responses
// @Produce json
// @Success 200 {object} StatisticListBody
// @Router /responses/ [get]
func (ctl *responseController) listStatistics(c *gin.Context) {
	stats, err := ctl.srv.ListStatistics(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, dto.StatisticListResponse{Statistics: stats})
}

// GetStatistic returns the counters of one question
// @Summary Get statistic
// @Tags Responses
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} StatisticBody
// @Failure 404 {object} StandardErrorResponse "Question not found"
// @Router /responses/{question_id} [get]
func (ctl *responseController) getStatistic(c *gin.Context) {
	id, err := utils.ParseID(c.Param("question_id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	stat, err := ctl.srv.Statistic(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, stat)
}

// RegisterResponseRoutes registers HTTP endpoints for votes and statistics.
func RegisterResponseRoutes(rg *gin.RouterGroup, srv services.ResponseService) {
	ctl := &responseController{srv: srv}
	responses := rg.Group("/responses")
	{
		responses.POST("/", ctl.submitResponse)
		responses.GET("/", ctl.listStatistics)
		responses.GET("/:question_id", ctl.getStatistic)
	}
}
