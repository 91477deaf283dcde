package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"beveragebuddy/internal/models/db_models"
	"beveragebuddy/pkg/utils"
)

type CategoryRepository interface {
	List(ctx context.Context, filter string) ([]db_models.Category, error)
	GetByID(ctx context.Context, id uint) (*db_models.Category, error)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
	Save(ctx context.Context, category *db_models.Category) error
	Delete(ctx context.Context, category *db_models.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns categories ordered by name. A non-blank filter keeps only
// names containing it, ignoring case.
func (r *categoryRepository) List(ctx context.Context, filter string) ([]db_models.Category, error) {
	var categories []db_models.Category
	query := r.db.WithContext(ctx).Order("name ASC")
	if !isBlank(filter) {
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, containsPattern(filter))
	}
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Category{}).
		Where("LOWER(name) = LOWER(?) AND id <> ?", name, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save inserts a category without an id and updates it otherwise.
func (r *categoryRepository) Save(ctx context.Context, category *db_models.Category) error {
	if !category.IsPersisted() {
		return r.db.WithContext(ctx).Create(category).Error
	}

	result := r.db.WithContext(ctx).
		Model(&db_models.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{"name": category.Name})
	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrCategoryNotFound
	}
	return nil
}

// Delete removes the category and detaches the reviews that referenced it.
func (r *categoryRepository) Delete(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.Review{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach reviews: %w", err)
		}

		result := tx.Delete(&db_models.Category{}, "id = ?", category.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return utils.ErrCategoryNotFound
		}
		return nil
	})
}
