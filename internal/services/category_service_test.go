package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beveragebuddy/internal/models/db_models"
	"beveragebuddy/internal/models/request_models"
	"beveragebuddy/pkg/utils"
)

func TestBuildCategoryPage(t *testing.T) {
	categoryRepo := &MockCategoryRepo{Categories: []db_models.Category{category(1, "Beer"), category(2, "Tea"), category(3, "Stout")}}
	reviewRepo := &MockReviewRepo{Counts: map[uint]int64{1: 3, 2: 1}}
	svc := NewCategoryService(categoryRepo, reviewRepo)

	testCases := []struct {
		name       string
		search     string
		wantHeader string
		wantNames  []string
		wantCounts []string
	}{
		{"No search", "", "Categories", []string{"Beer", "Tea", "Stout"}, []string{"3", "1", "0"}},
		{"Search", "st", "Search for “st”", []string{"Stout"}, []string{"0"}},
		{"Search without match", "cider", "Search for “cider”", []string{}, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := svc.BuildCategoryPage(context.Background(), tc.search, nil)
			require.NoError(t, err)

			assert.Equal(t, tc.wantHeader, page.Header)
			assert.Equal(t, "New category", page.NewLabel)
			assert.Equal(t, tc.search, categoryRepo.LastFilter)
			assert.Nil(t, page.Dialog)

			names := []string{}
			counts := []string{}
			for _, row := range page.Rows {
				names = append(names, page.Columns[0].Value(row))
				counts = append(counts, page.Columns[1].Value(row))
			}
			assert.Equal(t, tc.wantNames, names)
			assert.Equal(t, tc.wantCounts, counts)
		})
	}
}

func TestBuildCategoryPage_DatabaseError(t *testing.T) {
	svc := NewCategoryService(&MockCategoryRepo{Err: errors.New("connection refused")}, &MockReviewRepo{})

	_, err := svc.BuildCategoryPage(context.Background(), "", nil)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestCategoryDialogs(t *testing.T) {
	svc := NewCategoryService(&MockCategoryRepo{Categories: []db_models.Category{category(5, "Cider")}}, &MockReviewRepo{})
	ctx := context.Background()

	blank := svc.NewCategoryDialog()
	assert.Equal(t, "New category", blank.Title)
	assert.False(t, blank.CanDelete)
	assert.Empty(t, blank.Form.Name)

	edit, err := svc.EditCategoryDialog(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Edit category", edit.Title)
	assert.True(t, edit.CanDelete)
	assert.Equal(t, request_models.CategoryForm{ID: 5, Name: "Cider"}, edit.Form)

	_, err = svc.EditCategoryDialog(ctx, 6)
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)

	invalid := svc.InvalidCategoryDialog(request_models.CategoryForm{ID: 5}, request_models.FieldErrors{"name": "Name is required"})
	assert.Equal(t, "Edit category", invalid.Title)
	assert.Equal(t, "Name is required", invalid.Errors["name"])
}

func TestApplyCategoryEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Save new category", func(t *testing.T) {
		repo := &MockCategoryRepo{}
		svc := NewCategoryService(repo, &MockReviewRepo{})

		msg, err := svc.ApplyCategoryEvent(ctx, request_models.DialogEvent[db_models.Category]{
			Kind: request_models.EventSaved, Entity: db_models.Category{Name: "Stout"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Category successfully added.", msg)
		require.NotNil(t, repo.LastSaved)
		assert.Equal(t, uint(1), repo.LastSaved.ID)
	})

	t.Run("Save existing category", func(t *testing.T) {
		repo := &MockCategoryRepo{Categories: []db_models.Category{category(2, "Stout")}}
		svc := NewCategoryService(repo, &MockReviewRepo{})

		msg, err := svc.ApplyCategoryEvent(ctx, request_models.DialogEvent[db_models.Category]{
			Kind: request_models.EventSaved, Entity: category(2, "Imperial Stout"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Category successfully saved.", msg)
	})

	t.Run("Duplicate name", func(t *testing.T) {
		repo := &MockCategoryRepo{Categories: []db_models.Category{category(2, "Stout")}}
		svc := NewCategoryService(repo, &MockReviewRepo{})

		_, err := svc.ApplyCategoryEvent(ctx, request_models.DialogEvent[db_models.Category]{
			Kind: request_models.EventSaved, Entity: db_models.Category{Name: "stout"},
		})
		fe, ok := request_models.AsFieldErrors(err)
		require.True(t, ok)
		assert.Contains(t, fe["name"], "already exists")
		assert.Nil(t, repo.LastSaved)
	})

	t.Run("Delete", func(t *testing.T) {
		repo := &MockCategoryRepo{}
		svc := NewCategoryService(repo, &MockReviewRepo{})

		msg, err := svc.ApplyCategoryEvent(ctx, request_models.DialogEvent[db_models.Category]{
			Kind: request_models.EventDeleted, Entity: category(3, ""),
		})
		require.NoError(t, err)
		assert.Equal(t, "Category successfully deleted.", msg)
		assert.Equal(t, uint(3), repo.LastDeleted.ID)
	})

	t.Run("Delete missing", func(t *testing.T) {
		repo := &MockCategoryRepo{Err: utils.ErrCategoryNotFound}
		svc := NewCategoryService(repo, &MockReviewRepo{})

		_, err := svc.ApplyCategoryEvent(ctx, request_models.DialogEvent[db_models.Category]{
			Kind: request_models.EventDeleted, Entity: category(3, ""),
		})
		assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
		assert.NotErrorIs(t, err, utils.ErrDatabaseError)
	})
}

func TestCategoryAPIViews(t *testing.T) {
	svc := NewCategoryService(
		&MockCategoryRepo{Categories: []db_models.Category{category(1, "Beer"), category(2, "Tea")}},
		&MockReviewRepo{Counts: map[uint]int64{1: 4}},
	)
	ctx := context.Background()

	list, err := svc.ListCategories(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(4), list[0].ReviewCount)
	assert.Equal(t, int64(0), list[1].ReviewCount)

	one, err := svc.GetCategory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Beer", one.Name)
	assert.Equal(t, int64(4), one.ReviewCount)

	_, err = svc.GetCategory(ctx, 9)
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}
