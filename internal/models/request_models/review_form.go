package request_models

import (
	"strconv"
	"strings"

	"beveragebuddy/internal/models/db_models"
	"beveragebuddy/pkg/utils"
)

// ReviewForm is the payload of the review edit dialog. Category is the
// selected category id, empty for none.
type ReviewForm struct {
	ID       uint   `form:"id"`
	Name     string `form:"name" validate:"notblank,min=3,max=255"`
	Score    int    `form:"score" validate:"min=1,max=5"`
	Count    int    `form:"count" validate:"min=1,max=99"`
	Date     string `form:"date" validate:"required,datetime=2006-01-02"`
	Category string `form:"category"`
	Search   string `form:"q"`
}

var reviewMessages = map[string]string{
	"name.notblank": "Name is required",
	"name.min":      "Name must be at least 3 characters",
	"score.min":     "Score must be between 1 and 5",
	"score.max":     "Score must be between 1 and 5",
	"count.min":     "Times tasted must be between 1 and 99",
	"count.max":     "Times tasted must be between 1 and 99",
	"date.required": "Date is required",
}

func ReviewFormFrom(r db_models.Review) ReviewForm {
	form := ReviewForm{
		ID:    r.ID,
		Name:  r.Name,
		Score: r.Score,
		Count: r.Count,
		Date:  utils.FormatDate(r.Date),
	}
	if r.CategoryID != nil {
		form.Category = strconv.FormatUint(uint64(*r.CategoryID), 10)
	}
	return form
}

// NewReviewForm is the blank dialog state: one tasting, today.
func NewReviewForm() ReviewForm {
	return ReviewForm{Count: 1, Date: utils.FormatDate(utils.Today())}
}

// Event turns a submitted dialog into a save or delete event. Saving
// validates the fields first; the tasting date may not lie in the future.
func (f *ReviewForm) Event(action string) (DialogEvent[db_models.Review], error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Date = strings.TrimSpace(f.Date)

	switch action {
	case ActionDelete:
		if f.ID == 0 {
			return DialogEvent[db_models.Review]{}, utils.ErrNotPersisted
		}
		review := db_models.Review{BaseModel: db_models.BaseModel{ID: f.ID}, Name: f.Name}
		return DialogEvent[db_models.Review]{Kind: EventDeleted, Entity: review}, nil
	case ActionSave, "":
	default:
		return DialogEvent[db_models.Review]{}, FieldErrors{"action": "Unknown action"}
	}

	errs := validateForm(f, reviewMessages)
	if errs == nil {
		errs = FieldErrors{}
	}

	review := db_models.Review{
		BaseModel: db_models.BaseModel{ID: f.ID},
		Name:      f.Name,
		Score:     f.Score,
		Count:     f.Count,
	}

	if _, failed := errs["date"]; !failed {
		d, err := utils.ParseDate(f.Date)
		switch {
		case err != nil:
			errs["date"] = "Use the format YYYY-MM-DD"
		case d.After(utils.Today()):
			errs["date"] = "The date cannot be in the future"
		default:
			review.Date = d
		}
	}

	if c := strings.TrimSpace(f.Category); c != "" {
		id, err := strconv.ParseUint(c, 10, 64)
		if err != nil || id == 0 {
			errs["category"] = "Unknown category"
		} else {
			categoryID := uint(id)
			review.CategoryID = &categoryID
		}
	}

	if len(errs) > 0 {
		return DialogEvent[db_models.Review]{}, errs
	}
	return DialogEvent[db_models.Review]{Kind: EventSaved, Entity: review}, nil
}
