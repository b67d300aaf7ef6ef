package controllers

import (
	"fmt"
	"net/http"

	"surveyapi/pkg/apperror"
	"surveyapi/pkg/logger"
	"surveyapi/services"
	"surveyapi/services/dto"
	"surveyapi/utils"

	"github.com/gin-gonic/gin"
)

type questionController struct {
	srv       services.QuestionService
	getStatus int
}

// QuestionRouteOptions tunes the question endpoints.
type QuestionRouteOptions struct {
	// LegacyGetStatusCreated answers GET /questions/{id} with 201 instead of 200.
	LegacyGetStatusCreated bool
}

// CreateQuestion creates a new question
// @Summary Create question
// @Description Creates a question (at least 10 characters after trimming). The category is taken
// @Description from category_id when present, otherwise looked up by category.name and created if absent.
// @Tags Questions
// @Accept json
// @Produce json
// @Param question body QuestionCreateRequest true "Question"
// @Success 201 {object} QuestionBody "Question created"
// @Failure 400 {object} ValidationErrorResponse "Invalid question"
// @Failure 404 {object} StandardErrorResponse "Category not found"
// @Router /questions/ [post]
func (ctl *questionController) createQuestion(c *gin.Context) {
	var in dto.QuestionCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		// No category can have a negative or oversized id.
		if raw, ok := utils.OutOfRangeNumber(err, "category_id"); ok {
			utils.ErrorResponse(c, apperror.NotFound("category %s", raw))
			return
		}
		utils.ErrorResponse(c, utils.BindError(err, http.StatusBadRequest))
		return
	}

	question, err := ctl.srv.Create(c.Request.Context(), in)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, question)
}

// ListQuestions returns all questions
// @Summary List questions
// @Tags Questions
// @Produce json
// @Success 200 {object} QuestionListBody
// @Failure 500 {object} StandardErrorResponse "Storage failure"
// @Router /questions/ [get]
func (ctl *questionController) listQuestions(c *gin.Context) {
	questions, err := ctl.srv.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, dto.QuestionListResponse{Questions: questions})
}

// GetQuestion returns one question with its category
// @Summary Get question
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} QuestionBody
// @Failure 404 {object} StandardErrorResponse "Question not found"
// @Router /questions/{id} [get]
func (ctl *questionController) getQuestion(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	question, err := ctl.srv.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, ctl.getStatus, question)
}

// UpdateQuestion replaces a question's text
// @Summary Update question
// @Tags Questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body QuestionUpdateRequest true "New text"
// @Success 200 {object} MessageBody
// @Failure 400 {object} StandardErrorResponse "Missing or empty text"
// @Failure 404 {object} StandardErrorResponse "Question not found"
// @Router /questions/{id} [put]
func (ctl *questionController) updateQuestion(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	// An unreadable body carries no text, so a missing question still answers 404.
	var in dto.QuestionUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Debugf("Ignoring unreadable body for question %d: %v", id, err)
		in = dto.QuestionUpdate{}
	}

	question, err := ctl.srv.UpdateText(c.Request.Context(), id, in)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Question updated: %s", question.Question),
	})
}

// DeleteQuestion deletes a question with its responses and statistic
// @Summary Delete question
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} MessageBody
// @Failure 404 {object} StandardErrorResponse "Question not found"
// @Router /questions/{id} [delete]
func (ctl *questionController) deleteQuestion(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := ctl.srv.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Question with ID %d deleted", id),
	})
}

// RegisterQuestionRoutes registers HTTP endpoints for question management.
func RegisterQuestionRoutes(rg *gin.RouterGroup, srv services.QuestionService, opts QuestionRouteOptions) {
	ctl := &questionController{srv: srv, getStatus: http.StatusOK}
	if opts.LegacyGetStatusCreated {
		ctl.getStatus = http.StatusCreated
	}

	questions := rg.Group("/questions")
	{
		questions.POST("/", ctl.createQuestion)
		questions.GET("/", ctl.listQuestions)
		questions.GET("/:id", ctl.getQuestion)
		questions.PUT("/:id", ctl.updateQuestion)
		questions.DELETE("/:id", ctl.deleteQuestion)
	}
}
