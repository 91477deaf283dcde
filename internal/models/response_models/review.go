package response_models

type ReviewResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Score        int     `json:"score"`
	Count        int     `json:"count"`
	Date         string  `json:"date"`
	CategoryID   *uint   `json:"category_id"`
	CategoryName *string `json:"category_name,omitempty"`
}
