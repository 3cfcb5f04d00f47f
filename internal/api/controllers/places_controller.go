package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"plingplan/internal/services"
	"plingplan/pkg/utils"
)

type PlacesController struct {
	placeService services.PlaceServiceInterface
}

func NewPlacesController(placeService services.PlaceServiceInterface) *PlacesController {
	return &PlacesController{placeService: placeService}
}

// AutocompleteHandler proxies place autocomplete; responds
// {suggestions: [{id, mainText, secondaryText}]}.
func (p *PlacesController) AutocompleteHandler(c *gin.Context) {
	input := c.Query("input")

	var lat, lng *float64
	if latStr, lngStr := c.Query("lat"), c.Query("lng"); latStr != "" && lngStr != "" {
		latVal, latErr := strconv.ParseFloat(latStr, 64)
		lngVal, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr == nil && lngErr == nil {
			lat, lng = &latVal, &lngVal
		}
	}

	suggestions, err := p.placeService.SearchPlaces(input, lat, lng, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// DetailsHandler proxies place details; responds
// {result: {id, name, address, lat, lng}}.
func (p *PlacesController) DetailsHandler(c *gin.Context) {
	placeID := c.Query("placeId")
	if placeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing placeId")
		return
	}

	result, err := p.placeService.GetPlaceDetails(placeID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
