package models

// Category groups survey questions under a unique name.
// Questions reference it through a nullable foreign key, so a category
// can only be removed once no question points at it.
type Category struct {
	ID   uint   `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"column:name;size:100;not null;uniqueIndex:idx_categories_name" json:"name"`
}

// TableName specifies the static table name for GORM.
func (Category) TableName() string {
	return "categories"
}
