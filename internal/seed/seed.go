package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"beveragebuddy/internal/infra"
	"beveragebuddy/internal/models/db_models"
	"beveragebuddy/internal/repositories"
	"beveragebuddy/pkg/utils"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type Fixtures struct {
	Categories []string        `yaml:"categories"`
	Reviews    []ReviewFixture `yaml:"reviews"`
}

type ReviewFixture struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Score    int    `yaml:"score"`
	Count    int    `yaml:"count"`
	DaysAgo  int    `yaml:"days_ago"`
}

// LoadFixtures reads fixtures from path, or the built-in set when path is
// empty.
func LoadFixtures(path string) (*Fixtures, error) {
	data := defaultFixtures
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixtures: %w", err)
		}
	}

	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &f, nil
}

// Result reports what Apply inserted.
type Result struct {
	Categories int
	Reviews    int
	Skipped    bool
}

// Apply inserts fixtures in a single transaction. A database that already
// holds categories or reviews is left untouched.
func Apply(ctx context.Context, db *gorm.DB, f *Fixtures, today time.Time) (Result, error) {
	var existing int64
	if err := db.WithContext(ctx).Model(&db_models.Category{}).Count(&existing).Error; err != nil {
		return Result{}, err
	}
	if existing == 0 {
		if err := db.WithContext(ctx).Model(&db_models.Review{}).Count(&existing).Error; err != nil {
			return Result{}, err
		}
	}
	if existing > 0 {
		log.Info().Str("component", "seed").Msg("database not empty, skipping seed")
		return Result{Skipped: true}, nil
	}

	tx := infra.StartTransaction(db.WithContext(ctx))
	if tx.Error != nil {
		return Result{}, tx.Error
	}
	res, err := apply(ctx, tx, f, utils.TruncateDate(today))
	if err := infra.ReleaseTransaction(tx, err); err != nil {
		return Result{}, err
	}
	return res, nil
}

func apply(ctx context.Context, tx *gorm.DB, f *Fixtures, today time.Time) (Result, error) {
	categoryRepo := repositories.NewCategoryRepository(tx)
	reviewRepo := repositories.NewReviewRepository(tx)

	var res Result
	ids := make(map[string]uint, len(f.Categories))
	for _, name := range f.Categories {
		category := &db_models.Category{Name: name}
		if err := categoryRepo.Save(ctx, category); err != nil {
			return res, fmt.Errorf("seed category %q: %w", name, err)
		}
		ids[name] = category.ID
		res.Categories++
	}

	for _, r := range f.Reviews {
		review := &db_models.Review{
			Name:  r.Name,
			Score: r.Score,
			Count: r.Count,
			Date:  today.AddDate(0, 0, -r.DaysAgo),
		}
		if r.Category != "" {
			id, ok := ids[r.Category]
			if !ok {
				return res, fmt.Errorf("seed review %q: unknown category %q", r.Name, r.Category)
			}
			review.CategoryID = &id
		}
		if err := reviewRepo.Save(ctx, review); err != nil {
			return res, fmt.Errorf("seed review %q: %w", r.Name, err)
		}
		res.Reviews++
	}

	log.Info().Str("component", "seed").Int("categories", res.Categories).Int("reviews", res.Reviews).Msg("seeded database")
	return res, nil
}
