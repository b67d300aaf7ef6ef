package models

import "time"

// Response is a single agree/disagree vote on a question.
type Response struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	QuestionID uint      `gorm:"column:question_id;not null;index" json:"question_id"`
	IsAgree    bool      `gorm:"column:is_agree;not null" json:"is_agree"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	Question   *Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the static table name for GORM.
func (Response) TableName() string {
	return "responses"
}

// All returns every model managed by the schema migration, parents first.
func All() []interface{} {
	return []interface{}{&Category{}, &Question{}, &Statistic{}, &Response{}}
}
