package tags_fx

import (
	"go.uber.org/fx"

	"plingplan/internal/api/controllers"
)

var Module = fx.Provide(controllers.NewTagsController)
