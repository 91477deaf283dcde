package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"beveragebuddy/internal/models/db_models"
	"beveragebuddy/internal/models/request_models"
	"beveragebuddy/internal/models/response_models"
	"beveragebuddy/internal/models/view_models"
	"beveragebuddy/internal/repositories"
	"beveragebuddy/pkg/utils"
)

const undefinedCategory = "Undefined"

type ReviewServiceInterface interface {
	BuildReviewPage(ctx context.Context, search string, dialog *view_models.ReviewDialog) (*view_models.ReviewPage, error)
	NewReviewDialog(ctx context.Context) (*view_models.ReviewDialog, error)
	EditReviewDialog(ctx context.Context, id uint) (*view_models.ReviewDialog, error)
	InvalidReviewDialog(ctx context.Context, form request_models.ReviewForm, errs request_models.FieldErrors) (*view_models.ReviewDialog, error)
	ApplyReviewEvent(ctx context.Context, event request_models.DialogEvent[db_models.Review]) (string, error)

	ListReviews(ctx context.Context, search string) ([]response_models.ReviewResponse, error)
	GetReview(ctx context.Context, id uint) (*response_models.ReviewResponse, error)
}

type ReviewService struct {
	reviewRepo   repositories.ReviewRepository
	categoryRepo repositories.CategoryRepository
	logger       zerolog.Logger
}

func NewReviewService(reviewRepo repositories.ReviewRepository, categoryRepo repositories.CategoryRepository) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		categoryRepo: categoryRepo,
		logger:       log.With().Str("component", "reviews").Logger(),
	}
}

// BuildReviewPage queries the reviews matching search and describes the page
// showing them, with dialog open on top when it is non-nil.
func (s *ReviewService) BuildReviewPage(ctx context.Context, search string, dialog *view_models.ReviewDialog) (*view_models.ReviewPage, error) {
	rows, err := s.reviewRepo.List(ctx, search)
	if err != nil {
		return nil, wrapRepoError("list reviews", err)
	}

	items := make([]view_models.ReviewItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, reviewItem(r))
	}

	summary := fmt.Sprintf("%d in total", len(items))
	if search != "" {
		summary = fmt.Sprintf("%d results", len(items))
	}

	return &view_models.ReviewPage{
		Page: view_models.Page{
			Title:    "Review List",
			Path:     "/",
			Search:   search,
			Header:   searchHeader(search, "Reviews"),
			NewLabel: "New review",
		},
		Summary: summary,
		Items:   items,
		Dialog:  dialog,
	}, nil
}

func reviewItem(r db_models.ReviewWithCategory) view_models.ReviewItem {
	item := view_models.ReviewItem{
		ID:           r.ID,
		Name:         r.Name,
		Score:        r.Score,
		Count:        r.Count,
		LastTasted:   utils.FormatDate(r.Date),
		CategoryKey:  "-1",
		CategoryName: undefinedCategory,
	}
	if r.CategoryID != nil && r.CategoryName != nil {
		item.HasCategory = true
		item.CategoryKey = strconv.FormatUint(uint64(*r.CategoryID), 10)
		item.CategoryName = *r.CategoryName
	}
	return item
}

func (s *ReviewService) categoryOptions(ctx context.Context) ([]view_models.CategoryOption, error) {
	categories, err := s.categoryRepo.List(ctx, "")
	if err != nil {
		return nil, wrapRepoError("list categories", err)
	}

	options := make([]view_models.CategoryOption, 0, len(categories))
	for _, c := range categories {
		options = append(options, view_models.CategoryOption{
			Value: strconv.FormatUint(uint64(c.ID), 10),
			Label: c.Name,
		})
	}
	return options, nil
}

func (s *ReviewService) dialog(ctx context.Context, form request_models.ReviewForm) (*view_models.ReviewDialog, error) {
	options, err := s.categoryOptions(ctx)
	if err != nil {
		return nil, err
	}

	dialog := &view_models.ReviewDialog{
		Categories: options,
		MaxDate:    utils.FormatDate(utils.Today()),
	}
	dialog.Form = form
	dialog.Title = "New review"
	if form.ID != 0 {
		dialog.Title = "Edit review"
		dialog.CanDelete = true
	}
	return dialog, nil
}

func (s *ReviewService) NewReviewDialog(ctx context.Context) (*view_models.ReviewDialog, error) {
	return s.dialog(ctx, request_models.NewReviewForm())
}

// EditReviewDialog opens the dialog on the stored review, not on the joined
// listing row.
func (s *ReviewService) EditReviewDialog(ctx context.Context, id uint) (*view_models.ReviewDialog, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("get review", err)
	}
	return s.dialog(ctx, request_models.ReviewFormFrom(*review))
}

func (s *ReviewService) InvalidReviewDialog(ctx context.Context, form request_models.ReviewForm, errs request_models.FieldErrors) (*view_models.ReviewDialog, error) {
	dialog, err := s.dialog(ctx, form)
	if err != nil {
		return nil, err
	}
	dialog.Errors = errs
	return dialog, nil
}

// ApplyReviewEvent persists what the dialog asked for and returns the
// notification text to show.
func (s *ReviewService) ApplyReviewEvent(ctx context.Context, event request_models.DialogEvent[db_models.Review]) (string, error) {
	review := event.Entity

	switch event.Kind {
	case request_models.EventSaved:
		creating := !review.IsPersisted()
		if err := s.reviewRepo.Save(ctx, &review); err != nil {
			if errors.Is(err, utils.ErrCategoryNotFound) {
				return "", request_models.FieldErrors{"category": "Unknown category"}
			}
			return "", wrapRepoError("save review", err)
		}

		op := "saved"
		if creating {
			op = "added"
		}
		s.logger.Info().Uint("review_id", review.ID).Str("op", op).Msg("review stored")
		return "Beverage successfully " + op + ".", nil

	case request_models.EventDeleted:
		if err := s.reviewRepo.Delete(ctx, &review); err != nil {
			return "", wrapRepoError("delete review", err)
		}
		s.logger.Info().Uint("review_id", review.ID).Msg("review deleted")
		return "Beverage successfully deleted.", nil

	default:
		return "", request_models.FieldErrors{"action": "Unknown action"}
	}
}

func (s *ReviewService) ListReviews(ctx context.Context, search string) ([]response_models.ReviewResponse, error) {
	rows, err := s.reviewRepo.List(ctx, search)
	if err != nil {
		return nil, wrapRepoError("list reviews", err)
	}

	out := make([]response_models.ReviewResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, response_models.ReviewResponse{
			ID:           r.ID,
			Name:         r.Name,
			Score:        r.Score,
			Count:        r.Count,
			Date:         utils.FormatDate(r.Date),
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
		})
	}
	return out, nil
}

func (s *ReviewService) GetReview(ctx context.Context, id uint) (*response_models.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("get review", err)
	}

	resp := &response_models.ReviewResponse{
		ID:         review.ID,
		Name:       review.Name,
		Score:      review.Score,
		Count:      review.Count,
		Date:       utils.FormatDate(review.Date),
		CategoryID: review.CategoryID,
	}
	if review.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *review.CategoryID)
		if err != nil && !errors.Is(err, utils.ErrCategoryNotFound) {
			return nil, wrapRepoError("get category", err)
		}
		if category != nil {
			resp.CategoryName = &category.Name
		}
	}
	return resp, nil
}
