package places_fx

import (
	"net/http"

	"go.uber.org/fx"

	"plingplan/internal/api/controllers"
	"plingplan/internal/infra"
	"plingplan/internal/services"
)

var Module = fx.Provide(
	providePlaceService, provideController)

func providePlaceService(cfg *infra.Config, httpClient *http.Client) services.PlaceServiceInterface {
	return services.NewPlaceService(cfg.PlacesAPIKey, httpClient)
}

func provideController(placeService services.PlaceServiceInterface) *controllers.PlacesController {
	return controllers.NewPlacesController(placeService)
}
