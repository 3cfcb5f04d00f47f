package controllers

import (
	"github.com/gin-gonic/gin"

	"plingplan/internal/models/domain_models"
	"plingplan/internal/models/response_models"
	"plingplan/pkg/utils"
)

// TagsController exposes the fixed activity tag vocabulary.
type TagsController struct{}

func NewTagsController() *TagsController {
	return &TagsController{}
}

func (tc *TagsController) ListTagsHandler(c *gin.Context) {
	tags := make([]response_models.TagResponse, 0, len(domain_models.AllTags))
	for _, t := range domain_models.AllTags {
		tags = append(tags, response_models.TagResponse{
			Key:   string(t),
			Label: domain_models.TagLabels[t],
		})
	}

	utils.RespondSuccess(c, tags, "Fetched tags successfully")
}
