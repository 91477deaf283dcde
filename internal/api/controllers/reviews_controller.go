package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"beveragebuddy/internal/models/request_models"
	"beveragebuddy/internal/models/view_models"
	"beveragebuddy/internal/services"
	"beveragebuddy/pkg/toast"
	"beveragebuddy/pkg/utils"
)

type ReviewsController struct {
	reviewService services.ReviewServiceInterface
	toasts        *toast.Notifier
}

func NewReviewsController(reviewService services.ReviewServiceInterface, toasts *toast.Notifier) *ReviewsController {
	return &ReviewsController{
		reviewService: reviewService,
		toasts:        toasts,
	}
}

// ShowReviews renders the reviews page; query parameters work as on the
// categories page.
func (rc *ReviewsController) ShowReviews(c *gin.Context) {
	ctx := c.Request.Context()
	search := searchParam(c)

	var (
		dialog *view_models.ReviewDialog
		err    error
	)
	if raw := c.Query("edit"); raw != "" {
		id, perr := parseID(raw)
		if perr != nil {
			utils.HandlePageError(c, perr)
			return
		}
		dialog, err = rc.reviewService.EditReviewDialog(ctx, id)
	} else if c.Query("new") != "" {
		dialog, err = rc.reviewService.NewReviewDialog(ctx)
	}
	if err != nil {
		utils.HandlePageError(c, err)
		return
	}

	page, err := rc.reviewService.BuildReviewPage(ctx, search, dialog)
	if err != nil {
		utils.HandlePageError(c, err)
		return
	}
	page.Toast = rc.toasts.Take(c)

	c.HTML(http.StatusOK, "reviews.tmpl", page)
}

func (rc *ReviewsController) SaveReview(c *gin.Context) {
	rc.submit(c, request_models.ActionSave)
}

func (rc *ReviewsController) DeleteReview(c *gin.Context) {
	rc.submit(c, request_models.ActionDelete)
}

func (rc *ReviewsController) submit(c *gin.Context, action string) {
	var form request_models.ReviewForm
	if err := c.ShouldBind(&form); err != nil {
		rc.renderInvalid(c, form, request_models.FieldErrors{"form": "Invalid input"})
		return
	}
	form.Search = strings.TrimSpace(form.Search)

	event, err := form.Event(action)
	var message string
	if err == nil {
		message, err = rc.reviewService.ApplyReviewEvent(c.Request.Context(), event)
	}
	if errs, ok := request_models.AsFieldErrors(err); ok {
		rc.renderInvalid(c, form, errs)
		return
	}
	if err != nil {
		utils.HandlePageError(c, err)
		return
	}

	if err := rc.toasts.Show(c, message); err != nil {
		log.Warn().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("failed to queue toast")
	}
	c.Redirect(http.StatusSeeOther, listURL("/", form.Search))
}

func (rc *ReviewsController) renderInvalid(c *gin.Context, form request_models.ReviewForm, errs request_models.FieldErrors) {
	ctx := c.Request.Context()
	dialog, err := rc.reviewService.InvalidReviewDialog(ctx, form, errs)
	if err != nil {
		utils.HandlePageError(c, err)
		return
	}
	page, err := rc.reviewService.BuildReviewPage(ctx, strings.TrimSpace(form.Search), dialog)
	if err != nil {
		utils.HandlePageError(c, err)
		return
	}
	c.HTML(http.StatusUnprocessableEntity, "reviews.tmpl", page)
}

// ListReviewsHandler godoc
// @Summary List reviews
// @Description Reviews joined with their category name, newest first
// @Tags Reviews
// @Produce json
// @Param q query string false "Case-insensitive filter on review or category name"
// @Success 200 {object} utils.APIResponse
// @Router /api/reviews [get]
func (rc *ReviewsController) ListReviewsHandler(c *gin.Context) {
	reviews, err := rc.reviewService.ListReviews(c.Request.Context(), searchParam(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Fetched reviews successfully")
}

// GetReviewHandler godoc
// @Summary Get a review
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/reviews/{id} [get]
func (rc *ReviewsController) GetReviewHandler(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	review, err := rc.reviewService.GetReview(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Fetched review successfully")
}
