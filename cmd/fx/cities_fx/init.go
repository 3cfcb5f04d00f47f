package cities_fx

import (
	"net/http"

	"go.uber.org/fx"

	"plingplan/internal/api/controllers"
	"plingplan/internal/infra"
	"plingplan/internal/services"
)

var Module = fx.Provide(
	provideCityService, provideImageService, provideController)

func provideCityService(cfg *infra.Config, httpClient *http.Client) services.CityServiceInterface {
	return services.NewCityService(cfg.PlacesAPIKey, httpClient)
}

func provideImageService(cfg *infra.Config, httpClient *http.Client) services.ImageServiceInterface {
	return services.NewImageService(cfg.UnsplashAccessKey, httpClient)
}

func provideController(cityService services.CityServiceInterface, imageService services.ImageServiceInterface) *controllers.CitiesController {
	return controllers.NewCitiesController(cityService, imageService)
}
