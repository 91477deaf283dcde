package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"beveragebuddy/internal/models/db_models"
	"beveragebuddy/pkg/utils"
)

type ReviewRepository interface {
	List(ctx context.Context, filter string) ([]db_models.ReviewWithCategory, error)
	GetByID(ctx context.Context, id uint) (*db_models.Review, error)
	Save(ctx context.Context, review *db_models.Review) error
	Delete(ctx context.Context, review *db_models.Review) error

	CountForCategory(ctx context.Context, categoryID uint) (int64, error)
	CountByCategory(ctx context.Context) (map[uint]int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// List returns reviews joined with their category name, most recently
// tasted first. A non-blank filter matches the review or the category name.
func (r *reviewRepository) List(ctx context.Context, filter string) ([]db_models.ReviewWithCategory, error) {
	var rows []db_models.ReviewWithCategory
	query := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Select("reviews.id, reviews.name, reviews.score, reviews.count, reviews.date, reviews.category_id, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = reviews.category_id")

	if !isBlank(filter) {
		pattern := containsPattern(filter)
		query = query.Where(`LOWER(reviews.name) LIKE ? ESCAPE '\' OR LOWER(categories.name) LIKE ? ESCAPE '\'`, pattern, pattern)
	}

	if err := query.Order("reviews.date DESC").Order("reviews.id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

// Save inserts or updates the review. A referenced category must exist.
func (r *reviewRepository) Save(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if review.CategoryID != nil {
			var count int64
			if err := tx.Model(&db_models.Category{}).Where("id = ?", *review.CategoryID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return utils.ErrCategoryNotFound
			}
		}

		if !review.IsPersisted() {
			return tx.Omit("Category").Create(review).Error
		}

		result := tx.Model(&db_models.Review{}).
			Where("id = ?", review.ID).
			Updates(map[string]interface{}{
				"name":        review.Name,
				"score":       review.Score,
				"count":       review.Count,
				"date":        review.Date,
				"category_id": review.CategoryID,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update review: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return utils.ErrReviewNotFound
		}
		return nil
	})
}

func (r *reviewRepository) Delete(ctx context.Context, review *db_models.Review) error {
	result := r.db.WithContext(ctx).Delete(&db_models.Review{}, "id = ?", review.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrReviewNotFound
	}
	return nil
}

func (r *reviewRepository) CountForCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

// CountByCategory returns the number of reviews per category id in one
// query. Categories without reviews are absent from the map.
func (r *reviewRepository) CountByCategory(ctx context.Context) (map[uint]int64, error) {
	var rows []struct {
		CategoryID uint
		Total      int64
	}
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Select("category_id, COUNT(*) AS total").
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Total
	}
	return counts, nil
}
