package db_models

// Category groups reviewed beverages, e.g. "Beer" or "Mineral Water".
type Category struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null"`
}

func (Category) TableName() string {
	return "categories"
}
