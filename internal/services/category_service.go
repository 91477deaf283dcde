package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"beveragebuddy/internal/models/db_models"
	"beveragebuddy/internal/models/request_models"
	"beveragebuddy/internal/models/response_models"
	"beveragebuddy/internal/models/view_models"
	"beveragebuddy/internal/repositories"
)

type CategoryServiceInterface interface {
	BuildCategoryPage(ctx context.Context, search string, dialog *view_models.CategoryDialog) (*view_models.CategoryPage, error)
	NewCategoryDialog() *view_models.CategoryDialog
	EditCategoryDialog(ctx context.Context, id uint) (*view_models.CategoryDialog, error)
	InvalidCategoryDialog(form request_models.CategoryForm, errs request_models.FieldErrors) *view_models.CategoryDialog
	ApplyCategoryEvent(ctx context.Context, event request_models.DialogEvent[db_models.Category]) (string, error)

	ListCategories(ctx context.Context, search string) ([]response_models.CategoryResponse, error)
	GetCategory(ctx context.Context, id uint) (*response_models.CategoryResponse, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	reviewRepo   repositories.ReviewRepository
	logger       zerolog.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, reviewRepo repositories.ReviewRepository) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
		logger:       log.With().Str("component", "categories").Logger(),
	}
}

// BuildCategoryPage queries the categories matching search and describes the
// page showing them, with dialog open on top when it is non-nil.
func (s *CategoryService) BuildCategoryPage(ctx context.Context, search string, dialog *view_models.CategoryDialog) (*view_models.CategoryPage, error) {
	rows, err := s.categoryRows(ctx, search)
	if err != nil {
		return nil, err
	}

	return &view_models.CategoryPage{
		Page: view_models.Page{
			Title:    "Categories List",
			Path:     "/categories",
			Search:   search,
			Header:   searchHeader(search, "Categories"),
			NewLabel: "New category",
		},
		Columns: view_models.CategoryColumns,
		Rows:    rows,
		Dialog:  dialog,
	}, nil
}

func (s *CategoryService) categoryRows(ctx context.Context, search string) ([]view_models.CategoryRow, error) {
	categories, err := s.categoryRepo.List(ctx, search)
	if err != nil {
		return nil, wrapRepoError("list categories", err)
	}

	counts, err := s.reviewRepo.CountByCategory(ctx)
	if err != nil {
		return nil, wrapRepoError("count reviews", err)
	}

	rows := make([]view_models.CategoryRow, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, view_models.CategoryRow{
			ID:          c.ID,
			Name:        c.Name,
			ReviewCount: counts[c.ID],
		})
	}
	return rows, nil
}

func (s *CategoryService) NewCategoryDialog() *view_models.CategoryDialog {
	return &view_models.CategoryDialog{Title: "New category"}
}

func (s *CategoryService) EditCategoryDialog(ctx context.Context, id uint) (*view_models.CategoryDialog, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("get category", err)
	}

	return &view_models.CategoryDialog{
		Title:     "Edit category",
		Form:      request_models.CategoryFormFrom(*category),
		CanDelete: true,
	}, nil
}

// InvalidCategoryDialog reopens a rejected dialog with its field errors.
func (s *CategoryService) InvalidCategoryDialog(form request_models.CategoryForm, errs request_models.FieldErrors) *view_models.CategoryDialog {
	dialog := s.NewCategoryDialog()
	if form.ID != 0 {
		dialog.Title = "Edit category"
		dialog.CanDelete = true
	}
	dialog.Form = form
	dialog.Errors = errs
	return dialog
}

// ApplyCategoryEvent persists what the dialog asked for and returns the
// notification text to show.
func (s *CategoryService) ApplyCategoryEvent(ctx context.Context, event request_models.DialogEvent[db_models.Category]) (string, error) {
	category := event.Entity

	switch event.Kind {
	case request_models.EventSaved:
		taken, err := s.categoryRepo.ExistsByName(ctx, category.Name, category.ID)
		if err != nil {
			return "", wrapRepoError("check category name", err)
		}
		if taken {
			return "", request_models.FieldErrors{"name": "A category with this name already exists"}
		}

		creating := !category.IsPersisted()
		if err := s.categoryRepo.Save(ctx, &category); err != nil {
			return "", wrapRepoError("save category", err)
		}

		op := "saved"
		if creating {
			op = "added"
		}
		s.logger.Info().Uint("category_id", category.ID).Str("op", op).Msg("category stored")
		return "Category successfully " + op + ".", nil

	case request_models.EventDeleted:
		if err := s.categoryRepo.Delete(ctx, &category); err != nil {
			return "", wrapRepoError("delete category", err)
		}
		s.logger.Info().Uint("category_id", category.ID).Msg("category deleted")
		return "Category successfully deleted.", nil

	default:
		return "", request_models.FieldErrors{"action": "Unknown action"}
	}
}

func (s *CategoryService) ListCategories(ctx context.Context, search string) ([]response_models.CategoryResponse, error) {
	rows, err := s.categoryRows(ctx, search)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.CategoryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, response_models.CategoryResponse{ID: r.ID, Name: r.Name, ReviewCount: r.ReviewCount})
	}
	return out, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*response_models.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("get category", err)
	}

	count, err := s.reviewRepo.CountForCategory(ctx, id)
	if err != nil {
		return nil, wrapRepoError("count reviews", err)
	}

	return &response_models.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		ReviewCount: count,
	}, nil
}
