package models

// Statistic holds the aggregate agree/disagree counters of one question.
// Counters only grow through response submission and are never negative.
type Statistic struct {
	QuestionID    uint      `gorm:"primaryKey;autoIncrement:false;column:question_id" json:"question_id"`
	AgreeCount    int       `gorm:"column:agree_count;not null;default:0" json:"agree_count"`
	DisagreeCount int       `gorm:"column:disagree_count;not null;default:0" json:"disagree_count"`
	Question      *Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the static table name for GORM.
func (Statistic) TableName() string {
	return "statistics"
}
