package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plingplan/internal/services"
	"plingplan/pkg/utils"
)

type CitiesController struct {
	cityService  services.CityServiceInterface
	imageService services.ImageServiceInterface
}

func NewCitiesController(cityService services.CityServiceInterface, imageService services.ImageServiceInterface) *CitiesController {
	return &CitiesController{
		cityService:  cityService,
		imageService: imageService,
	}
}

// SearchHandler responds {cities: [{id, name, country?, state?, type}]}.
func (cc *CitiesController) SearchHandler(c *gin.Context) {
	cities, err := cc.cityService.SearchCities(c.Query("q"), c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

// ImageHandler responds {image: {...}} or, with multiple=true,
// {images: [...]}.
func (cc *CitiesController) ImageHandler(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City parameter is required")
		return
	}

	country := c.Query("country")
	sortBy := c.DefaultQuery("sort", "popular")
	multiple := c.Query("multiple") == "true"

	count := 1
	if multiple {
		count = 3
	}

	images, err := cc.imageService.SearchCityImages(city, country, sortBy, count, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if multiple {
		c.JSON(http.StatusOK, gin.H{"images": images})
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": images[0]})
}
