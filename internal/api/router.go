package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"beveragebuddy/internal/api/controllers"
	"beveragebuddy/internal/web"
	"beveragebuddy/pkg/middleware"
)

// NewRouter builds the gin engine serving the pages and the JSON API.
func NewRouter(
	categoriesController *controllers.CategoriesController,
	reviewsController *controllers.ReviewsController) (*gin.Engine, error) {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log.With().Str("component", "http").Logger()))

	if err := web.Mount(r); err != nil {
		return nil, err
	}

	RegisterRoutes(r, categoriesController, reviewsController)
	return r, nil
}

func RegisterRoutes(r *gin.Engine,
	categoriesController *controllers.CategoriesController,
	reviewsController *controllers.ReviewsController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", reviewsController.ShowReviews)
	reviewsGroup := r.Group("/reviews")
	reviewsGroup.POST("/save", reviewsController.SaveReview)
	reviewsGroup.POST("/delete", reviewsController.DeleteReview)

	categoriesGroup := r.Group("/categories")
	categoriesGroup.GET("", categoriesController.ShowCategories)
	categoriesGroup.POST("/save", categoriesController.SaveCategory)
	categoriesGroup.POST("/delete", categoriesController.DeleteCategory)

	apiGroup := r.Group("/api")
	apiGroup.GET("/categories", categoriesController.ListCategoriesHandler)
	apiGroup.GET("/categories/:id", categoriesController.GetCategoryHandler)
	apiGroup.GET("/reviews", reviewsController.ListReviewsHandler)
	apiGroup.GET("/reviews/:id", reviewsController.GetReviewHandler)
}
