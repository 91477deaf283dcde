package request_models

import (
	"strings"

	"beveragebuddy/internal/models/db_models"
	"beveragebuddy/pkg/utils"
)

// CategoryForm is the payload of the category edit dialog.
type CategoryForm struct {
	ID     uint   `form:"id"`
	Name   string `form:"name" validate:"notblank,max=255"`
	Search string `form:"q"`
}

func CategoryFormFrom(c db_models.Category) CategoryForm {
	return CategoryForm{ID: c.ID, Name: c.Name}
}

// Event turns a submitted dialog into a save or delete event. Saving
// validates the fields first.
func (f *CategoryForm) Event(action string) (DialogEvent[db_models.Category], error) {
	f.Name = strings.TrimSpace(f.Name)
	category := db_models.Category{BaseModel: db_models.BaseModel{ID: f.ID}, Name: f.Name}

	switch action {
	case ActionDelete:
		if f.ID == 0 {
			return DialogEvent[db_models.Category]{}, utils.ErrNotPersisted
		}
		return DialogEvent[db_models.Category]{Kind: EventDeleted, Entity: category}, nil
	case ActionSave, "":
		if errs := validateForm(f, map[string]string{"name.notblank": "Name is required"}); errs != nil {
			return DialogEvent[db_models.Category]{}, errs
		}
		return DialogEvent[db_models.Category]{Kind: EventSaved, Entity: category}, nil
	default:
		return DialogEvent[db_models.Category]{}, FieldErrors{"action": "Unknown action"}
	}
}
