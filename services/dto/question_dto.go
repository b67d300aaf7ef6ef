package dto

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"surveyapi/models"
	"surveyapi/pkg/apperror"
	"surveyapi/utils"
)

// MinQuestionLength is the minimum trimmed length of a new question's text.
const MinQuestionLength = 10

// QuestionCreate is the request body for creating a question.
// CategoryID wins over Category when both are present.
type QuestionCreate struct {
	Question   *string        `json:"question"`
	CategoryID *uint          `json:"category_id"`
	Category   *CategoryInput `json:"category"`
}

// Normalize trims the text and nested category name and checks their bounds.
func (in *QuestionCreate) Normalize() error {
	text, err := trimmedText(in.Question, "No text provided")
	if err != nil {
		return err
	}
	if utf8.RuneCountInString(text) < MinQuestionLength {
		return apperror.NewValidationError(http.StatusBadRequest, "question", "min",
			"Text must be at least 10 characters long")
	}
	in.Question = &text

	if in.CategoryID == nil && in.Category != nil {
		if err := in.Category.Normalize(http.StatusBadRequest); err != nil {
			return err
		}
	}
	return nil
}

// Text returns the normalized question text.
func (in *QuestionCreate) Text() string {
	if in.Question == nil {
		return ""
	}
	return *in.Question
}

// QuestionUpdate is the request body for replacing a question's text.
type QuestionUpdate struct {
	Question *string `json:"question"`
}

// Normalize trims the text and rejects blank values.
func (in *QuestionUpdate) Normalize() error {
	text, err := trimmedText(in.Question, "No question provided")
	if err != nil {
		return err
	}
	in.Question = &text
	return nil
}

// Text returns the normalized question text.
func (in *QuestionUpdate) Text() string {
	if in.Question == nil {
		return ""
	}
	return *in.Question
}

// QuestionResponse is the public shape of a question and its category.
type QuestionResponse struct {
	ID       uint              `json:"id" validate:"required"`
	Question string            `json:"question" validate:"min=10,max=100"`
	Category *CategoryResponse `json:"category" validate:"-"`
}

// QuestionView converts a model without enforcing the list bounds.
func QuestionView(q models.Question) QuestionResponse {
	res := QuestionResponse{ID: q.ID, Question: q.Question}
	if q.Category != nil {
		res.Category = &CategoryResponse{ID: q.Category.ID, Name: q.Category.Name}
	}
	return res
}

// NewQuestionResponse converts a model, rejecting rows that do not fit the public shape.
func NewQuestionResponse(q models.Question) (QuestionResponse, error) {
	res := QuestionView(q)
	if err := utils.ValidateStruct(&res, http.StatusInternalServerError); err != nil {
		return QuestionResponse{}, err
	}
	if q.Category != nil {
		cat, err := NewCategoryResponse(*q.Category)
		if err != nil {
			return QuestionResponse{}, err
		}
		res.Category = &cat
	}
	return res, nil
}

// QuestionListResponse wraps the question list endpoint payload.
type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
}

func trimmedText(raw *string, missing string) (string, error) {
	if raw == nil {
		return "", apperror.NewValidationError(http.StatusBadRequest, "question", "required", missing)
	}
	text := strings.TrimSpace(*raw)
	if text == "" {
		return "", apperror.NewValidationError(http.StatusBadRequest, "question", "required", missing)
	}
	return text, nil
}
