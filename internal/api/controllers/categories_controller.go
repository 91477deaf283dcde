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

type CategoriesController struct {
	categoryService services.CategoryServiceInterface
	toasts          *toast.Notifier
}

func NewCategoriesController(categoryService services.CategoryServiceInterface, toasts *toast.Notifier) *CategoriesController {
	return &CategoriesController{
		categoryService: categoryService,
		toasts:          toasts,
	}
}

// ShowCategories renders the categories page. `q` filters the grid, `new`
// opens a blank dialog and `edit=<id>` opens the dialog on that category.
func (cc *CategoriesController) ShowCategories(c *gin.Context) {
	search := searchParam(c)

	var dialog *view_models.CategoryDialog
	if raw := c.Query("edit"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			utils.HandlePageError(c, err)
			return
		}
		dialog, err = cc.categoryService.EditCategoryDialog(c.Request.Context(), id)
		if err != nil {
			utils.HandlePageError(c, err)
			return
		}
	} else if c.Query("new") != "" {
		dialog = cc.categoryService.NewCategoryDialog()
	}

	page, err := cc.categoryService.BuildCategoryPage(c.Request.Context(), search, dialog)
	if err != nil {
		utils.HandlePageError(c, err)
		return
	}
	page.Toast = cc.toasts.Take(c)

	c.HTML(http.StatusOK, "categories.tmpl", page)
}

func (cc *CategoriesController) SaveCategory(c *gin.Context) {
	cc.submit(c, request_models.ActionSave)
}

func (cc *CategoriesController) DeleteCategory(c *gin.Context) {
	cc.submit(c, request_models.ActionDelete)
}

func (cc *CategoriesController) submit(c *gin.Context, action string) {
	var form request_models.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		cc.renderInvalid(c, form, request_models.FieldErrors{"form": "Invalid input"})
		return
	}
	form.Search = strings.TrimSpace(form.Search)

	event, err := form.Event(action)
	var message string
	if err == nil {
		message, err = cc.categoryService.ApplyCategoryEvent(c.Request.Context(), event)
	}
	if errs, ok := request_models.AsFieldErrors(err); ok {
		cc.renderInvalid(c, form, errs)
		return
	}
	if err != nil {
		utils.HandlePageError(c, err)
		return
	}

	if err := cc.toasts.Show(c, message); err != nil {
		log.Warn().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("failed to queue toast")
	}
	c.Redirect(http.StatusSeeOther, listURL("/categories", form.Search))
}

// renderInvalid shows the page again with the dialog still open.
func (cc *CategoriesController) renderInvalid(c *gin.Context, form request_models.CategoryForm, errs request_models.FieldErrors) {
	dialog := cc.categoryService.InvalidCategoryDialog(form, errs)
	page, err := cc.categoryService.BuildCategoryPage(c.Request.Context(), strings.TrimSpace(form.Search), dialog)
	if err != nil {
		utils.HandlePageError(c, err)
		return
	}
	c.HTML(http.StatusUnprocessableEntity, "categories.tmpl", page)
}

// ListCategoriesHandler godoc
// @Summary List categories
// @Description Categories with their review counts, optionally filtered by name
// @Tags Categories
// @Produce json
// @Param q query string false "Case-insensitive name filter"
// @Success 200 {object} utils.APIResponse
// @Router /api/categories [get]
func (cc *CategoriesController) ListCategoriesHandler(c *gin.Context) {
	categories, err := cc.categoryService.ListCategories(c.Request.Context(), searchParam(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Fetched categories successfully")
}

// GetCategoryHandler godoc
// @Summary Get a category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/categories/{id} [get]
func (cc *CategoriesController) GetCategoryHandler(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	category, err := cc.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Fetched category successfully")
}
