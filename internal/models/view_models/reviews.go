package view_models

import "beveragebuddy/internal/models/request_models"

// ReviewItem is one rendered review stripe.
type ReviewItem struct {
	ID           uint
	Name         string
	Score        int
	Count        int
	LastTasted   string
	HasCategory  bool
	CategoryKey  string
	CategoryName string
}

type CategoryOption struct {
	Value string
	Label string
}

type ReviewDialog struct {
	Dialog[request_models.ReviewForm]
	Categories []CategoryOption
	MaxDate    string
}

type ReviewPage struct {
	Page
	Summary string
	Items   []ReviewItem
	Dialog  *ReviewDialog
}
