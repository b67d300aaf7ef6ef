package controllers

// Example request/response models for Swagger documentation

// CategoryRequest represents the request body for creating or renaming a category
type CategoryRequest struct {
	Name string `json:"name" example:"Drinks"`
}

// CategoryBody represents a category in responses
type CategoryBody struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Drinks"`
}

// CategoryListBody represents the response of the category list endpoint
type CategoryListBody struct {
	Categories []CategoryBody `json:"categories"`
}

// QuestionCreateRequest represents the request body for creating a question.
// Send either category_id or category, not both.
type QuestionCreateRequest struct {
	Question   string           `json:"question" example:"Do you like tea?"`
	CategoryID *uint            `json:"category_id,omitempty" example:"1"`
	Category   *CategoryRequest `json:"category,omitempty"`
}

// QuestionUpdateRequest represents the request body for replacing question text
type QuestionUpdateRequest struct {
	Question string `json:"question" example:"Do you like green tea?"`
}

// QuestionBody represents a question in responses
type QuestionBody struct {
	ID       uint          `json:"id" example:"1"`
	Question string        `json:"question" example:"Do you like tea?"`
	Category *CategoryBody `json:"category"`
}

// QuestionListBody represents the response of the question list endpoint
type QuestionListBody struct {
	Questions []QuestionBody `json:"questions"`
}

// ResponseCreateRequest represents the request body for submitting a vote
type ResponseCreateRequest struct {
	QuestionID uint `json:"question_id" example:"1"`
	IsAgree    bool `json:"is_agree" example:"true"`
}

// StatisticBody represents the vote counters of a question
type StatisticBody struct {
	QuestionID    uint `json:"question_id" example:"1"`
	AgreeCount    int  `json:"agree_count" example:"12"`
	DisagreeCount int  `json:"disagree_count" example:"3"`
}

// StatisticListBody represents the response of the statistics list endpoint
type StatisticListBody struct {
	Statistics []StatisticBody `json:"statistics"`
}

// MessageBody represents the response of update and delete endpoints
type MessageBody struct {
	Message string `json:"message" example:"Category 1 (Drinks) updated"`
}

// StandardErrorResponse represents an error response
type StandardErrorResponse struct {
	Error string `json:"error" example:"category with id 7: not found"`
}

// ValidationErrorResponse represents a field validation failure
type ValidationErrorResponse struct {
	Error   string              `json:"error" example:"validation failed: name is required"`
	Details []FieldErrorExample `json:"details"`
}

// FieldErrorExample represents one failed field constraint
type FieldErrorExample struct {
	Field   string `json:"field" example:"name"`
	Rule    string `json:"rule" example:"required"`
	Message string `json:"message" example:"name is required"`
}
