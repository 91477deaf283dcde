package controllers_fx

import (
	"go.uber.org/fx"

	"beveragebuddy/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCategoriesController),
	fx.Provide(controllers.NewReviewsController))
