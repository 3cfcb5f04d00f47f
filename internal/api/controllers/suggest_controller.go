package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plingplan/internal/models/domain_models"
	"plingplan/internal/models/request_models"
	"plingplan/internal/services"
	"plingplan/pkg/utils"
)

type SuggestController struct {
	suggestService services.SuggestServiceInterface
}

func NewSuggestController(suggestService services.SuggestServiceInterface) *SuggestController {
	return &SuggestController{suggestService: suggestService}
}

// SuggestActivitiesHandler returns {activities: [...]}, the structured
// counterpart to the chat endpoint. An empty list means no suggestions.
func (sc *SuggestController) SuggestActivitiesHandler(c *gin.Context) {
	var req request_models.SuggestActivitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activities, err := sc.suggestService.SuggestActivities(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activitiesOrEmpty(activities)})
}

func activitiesOrEmpty(activities []domain_models.SuggestedActivity) []domain_models.SuggestedActivity {
	if activities == nil {
		return []domain_models.SuggestedActivity{}
	}
	return activities
}
