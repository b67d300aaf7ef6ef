package controllers

import (
	"fmt"
	"net/http"

	"surveyapi/pkg/logger"
	"surveyapi/services"
	"surveyapi/services/dto"
	"surveyapi/utils"

	"github.com/gin-gonic/gin"
)

type categoryController struct {
	srv services.CategoryService
}

// CreateCategory creates a new category
// @Summary Create category
// @Description Creates a category with a unique name (trimmed, 1-100 characters)
// @Tags Categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category"
// @Success 201 {object} CategoryBody "Category created"
// @Failure 409 {object} StandardErrorResponse "Category name already exists"
// @Failure 422 {object} ValidationErrorResponse "Invalid category"
// @Router /categories/ [post]
func (ctl *categoryController) createCategory(c *gin.Context) {
	var in dto.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorResponse(c, utils.BindError(err, http.StatusUnprocessableEntity))
		return
	}

	category, err := ctl.srv.Create(c.Request.Context(), in)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, category)
}

// ListCategories returns all categories
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} CategoryListBody
// @Failure 500 {object} StandardErrorResponse "Storage failure"
// @Router /categories/ [get]
func (ctl *categoryController) listCategories(c *gin.Context) {
	categories, err := ctl.srv.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, dto.CategoryListResponse{Categories: categories})
}

// GetCategory returns one category
// @Summary Get category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} CategoryBody
// @Failure 404 {object} StandardErrorResponse "Category not found"
// @Router /categories/{id} [get]
func (ctl *categoryController) getCategory(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	category, err := ctl.srv.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, category)
}

// UpdateCategory renames a category
// @Summary Update category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body CategoryRequest true "New name"
// @Success 200 {object} MessageBody
// @Failure 400 {object} StandardErrorResponse "Missing or empty name"
// @Failure 404 {object} StandardErrorResponse "Category not found"
// @Failure 409 {object} StandardErrorResponse "Category name already exists"
// @Router /categories/{id} [put]
func (ctl *categoryController) updateCategory(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	// An unreadable body renames to nothing, so a missing category still answers 404.
	var in dto.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Debugf("Ignoring unreadable body for category %d: %v", id, err)
		in = dto.CategoryInput{}
	}

	category, err := ctl.srv.Rename(c.Request.Context(), id, in)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Category %d (%s) updated", category.ID, category.Name),
	})
}

// DeleteCategory deletes a category without questions
// @Summary Delete category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} MessageBody
// @Failure 404 {object} StandardErrorResponse "Category not found"
// @Failure 409 {object} StandardErrorResponse "Category has related questions"
// @Router /categories/{id} [delete]
func (ctl *categoryController) deleteCategory(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := ctl.srv.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	logger.Debugf("Category %d removed by %s", id, c.ClientIP())
	utils.JSONResponse(c, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Category with ID %d deleted", id),
	})
}

// RegisterCategoryRoutes registers HTTP endpoints for category management.
func RegisterCategoryRoutes(rg *gin.RouterGroup, srv services.CategoryService) {
	ctl := &categoryController{srv: srv}
	categories := rg.Group("/categories")
	{
		categories.POST("/", ctl.createCategory)
		categories.GET("/", ctl.listCategories)
		categories.GET("/:id", ctl.getCategory)
		categories.PUT("/:id", ctl.updateCategory)
		categories.DELETE("/:id", ctl.deleteCategory)
	}
}
