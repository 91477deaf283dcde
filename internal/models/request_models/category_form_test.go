package request_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beveragebuddy/pkg/utils"
)

func TestCategoryForm_Event(t *testing.T) {
	testCases := []struct {
		name      string
		form      CategoryForm
		action    string
		wantKind  EventKind
		wantName  string
		wantField string
		wantErr   error
	}{
		{name: "Save new", form: CategoryForm{Name: "  Stout "}, action: ActionSave, wantKind: EventSaved, wantName: "Stout"},
		{name: "Save existing", form: CategoryForm{ID: 4, Name: "Cider"}, action: ActionSave, wantKind: EventSaved, wantName: "Cider"},
		{name: "Empty action saves", form: CategoryForm{Name: "Tea"}, action: "", wantKind: EventSaved, wantName: "Tea"},
		{name: "Blank name", form: CategoryForm{Name: "   "}, action: ActionSave, wantField: "name", wantErr: utils.ErrValidation},
		{name: "Delete existing", form: CategoryForm{ID: 4}, action: ActionDelete, wantKind: EventDeleted},
		{name: "Delete unsaved", form: CategoryForm{Name: "Tea"}, action: ActionDelete, wantErr: utils.ErrNotPersisted},
		{name: "Unknown action", form: CategoryForm{ID: 1, Name: "Tea"}, action: "archive", wantField: "action", wantErr: utils.ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event, err := tc.form.Event(tc.action)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				if tc.wantField != "" {
					fe, ok := AsFieldErrors(err)
					require.True(t, ok)
					assert.Contains(t, fe, tc.wantField)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, event.Kind)
			assert.Equal(t, tc.form.ID, event.Entity.ID)
			if tc.wantName != "" {
				assert.Equal(t, tc.wantName, event.Entity.Name)
			}
		})
	}
}

func TestFieldErrors_Error(t *testing.T) {
	err := FieldErrors{"score": "too high", "name": "missing"}
	assert.Equal(t, "name: missing; score: too high", err.Error())
	assert.ErrorIs(t, err, utils.ErrValidation)
}
