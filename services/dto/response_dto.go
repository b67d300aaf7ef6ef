package dto

import (
	"net/http"

	"surveyapi/models"
	"surveyapi/utils"
)

// ResponseCreate is the request body for submitting an agree/disagree vote.
type ResponseCreate struct {
	QuestionID *uint `json:"question_id" validate:"required"`
	IsAgree    *bool `json:"is_agree" validate:"required"`
}

// Normalize checks that both fields are present.
func (in *ResponseCreate) Normalize() error {
	return utils.ValidateStruct(in, http.StatusBadRequest)
}

// StatisticResponse is the public shape of a question's vote counters.
type StatisticResponse struct {
	QuestionID    uint `json:"question_id" validate:"required"`
	AgreeCount    int  `json:"agree_count" validate:"gte=0"`
	DisagreeCount int  `json:"disagree_count" validate:"gte=0"`
}

// NewStatisticResponse converts a model, rejecting rows with negative counters.
func NewStatisticResponse(s models.Statistic) (StatisticResponse, error) {
	res := StatisticResponse{
		QuestionID:    s.QuestionID,
		AgreeCount:    s.AgreeCount,
		DisagreeCount: s.DisagreeCount,
	}
	if err := utils.ValidateStruct(&res, http.StatusInternalServerError); err != nil {
		return StatisticResponse{}, err
	}
	return res, nil
}

// StatisticListResponse wraps the statistics list endpoint payload.
type StatisticListResponse struct {
	Statistics []StatisticResponse `json:"statistics"`
}
