package services

import (
	"context"
	"strings"

	"beveragebuddy/internal/models/db_models"
	"beveragebuddy/pkg/utils"
)

// --- Mock Repositories ---

type MockCategoryRepo struct {
	Categories []db_models.Category
	Err        error
	NextID     uint

	LastFilter  string
	LastSaved   *db_models.Category
	LastDeleted *db_models.Category
}

func (m *MockCategoryRepo) List(ctx context.Context, filter string) ([]db_models.Category, error) {
	m.LastFilter = filter
	if m.Err != nil {
		return nil, m.Err
	}
	var out []db_models.Category
	for _, c := range m.Categories {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id uint) (*db_models.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, c := range m.Categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, utils.ErrCategoryNotFound
}

func (m *MockCategoryRepo) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	for _, c := range m.Categories {
		if strings.EqualFold(c.Name, name) && c.ID != excludeID {
			return true, nil
		}
	}
	return false, m.Err
}

func (m *MockCategoryRepo) Save(ctx context.Context, category *db_models.Category) error {
	if m.Err != nil {
		return m.Err
	}
	if category.ID == 0 {
		m.NextID++
		category.ID = m.NextID
	}
	m.LastSaved = category
	return nil
}

func (m *MockCategoryRepo) Delete(ctx context.Context, category *db_models.Category) error {
	m.LastDeleted = category
	return m.Err
}

type MockReviewRepo struct {
	Rows    []db_models.ReviewWithCategory
	Review  *db_models.Review
	Counts  map[uint]int64
	Err     error
	SaveErr error

	LastFilter  string
	LastSaved   *db_models.Review
	LastDeleted *db_models.Review
}

func (m *MockReviewRepo) List(ctx context.Context, filter string) ([]db_models.ReviewWithCategory, error) {
	m.LastFilter = filter
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Rows, nil
}

func (m *MockReviewRepo) GetByID(ctx context.Context, id uint) (*db_models.Review, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Review == nil || m.Review.ID != id {
		return nil, utils.ErrReviewNotFound
	}
	return m.Review, nil
}

func (m *MockReviewRepo) Save(ctx context.Context, review *db_models.Review) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if review.ID == 0 {
		review.ID = 100
	}
	m.LastSaved = review
	return nil
}

func (m *MockReviewRepo) Delete(ctx context.Context, review *db_models.Review) error {
	m.LastDeleted = review
	return m.Err
}

func (m *MockReviewRepo) CountForCategory(ctx context.Context, categoryID uint) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Counts[categoryID], nil
}

func (m *MockReviewRepo) CountByCategory(ctx context.Context) (map[uint]int64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Counts, nil
}

func category(id uint, name string) db_models.Category {
	return db_models.Category{BaseModel: db_models.BaseModel{ID: id}, Name: name}
}

func strPtr(s string) *string { return &s }
func uintPtr(v uint) *uint { return &v }
