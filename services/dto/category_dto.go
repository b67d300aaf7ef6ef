package dto

import (
	"net/http"
	"strings"

	"surveyapi/models"
	"surveyapi/pkg/apperror"
	"surveyapi/utils"
)

// CategoryInput is the request body for creating or renaming a category.
// Also used for the nested {"category": {"name": ...}} of question creation.
type CategoryInput struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// Normalize trims the category name and validates it, reporting failures with status.
func (in *CategoryInput) Normalize(status int) error {
	in.Name = strings.TrimSpace(in.Name)
	return utils.ValidateStruct(in, status)
}

// CategoryResponse is the public shape of a category.
type CategoryResponse struct {
	ID   uint   `json:"id" validate:"required"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// NewCategoryResponse converts a model, rejecting rows that do not fit the public shape.
func NewCategoryResponse(c models.Category) (CategoryResponse, error) {
	res := CategoryResponse{ID: c.ID, Name: c.Name}
	if err := utils.ValidateStruct(&res, http.StatusInternalServerError); err != nil {
		return CategoryResponse{}, err
	}
	return res, nil
}

// CategoryListResponse wraps the category list endpoint payload.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// MessageResponse is returned by update and delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// NameRequiredError is the failure for a rename whose trimmed name is empty.
func NameRequiredError() error {
	return apperror.NewValidationError(http.StatusBadRequest, "name", "required", "No name category provided")
}
