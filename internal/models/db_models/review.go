package db_models

import "time"

// Review records how a beverage was rated and how often it was tasted.
type Review struct {
	BaseModel
	Name       string    `gorm:"not null"`
	Score      int       `gorm:"not null;check:score >= 1 AND score <= 5"`
	Count      int       `gorm:"not null;check:count >= 0"`
	Date       time.Time `gorm:"type:date;not null"`
	CategoryID *uint     `gorm:"index"`
	Category   *Category `gorm:"constraint:OnDelete:SET NULL"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewWithCategory is the read-only join of a review with the name of its
// category. It is only used for listing.
type ReviewWithCategory struct {
	ID           uint
	Name         string
	Score        int
	Count        int
	Date         time.Time
	CategoryID   *uint
	CategoryName *string
}
