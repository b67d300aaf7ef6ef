package models

// Question is a piece of survey text optionally grouped under a Category.
// Its responses and statistic row are removed together with it.
type Question struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	Question   string    `gorm:"column:question;type:text;not null" json:"question"`
	CategoryID *uint     `gorm:"column:category_id;index" json:"category_id"` // Nullable FK to categories
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
}

// TableName specifies the static table name for GORM.
func (Question) TableName() string {
	return "questions"
}
