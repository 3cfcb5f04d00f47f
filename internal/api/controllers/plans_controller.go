package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plingplan/internal/models/request_models"
	"plingplan/internal/services"
	"plingplan/pkg/utils"
)

type PlansController struct {
	planService services.PlanServiceInterface
	chatService services.ChatServiceInterface
}

func NewPlansController(planService services.PlanServiceInterface, chatService services.ChatServiceInterface) *PlansController {
	return &PlansController{
		planService: planService,
		chatService: chatService,
	}
}

func (p *PlansController) CreatePlanHandler(c *gin.Context) {
	var req request_models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.planService.CreatePlan(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan created successfully")
}

func (p *PlansController) GetPlanHandler(c *gin.Context) {
	planID := c.Param("id")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	plan, err := p.planService.GetPlan(planID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}

func (p *PlansController) ListPlansHandler(c *gin.Context) {
	plans, err := p.planService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

func (p *PlansController) UpdatePlanHandler(c *gin.Context) {
	planID := c.Param("id")
	var req request_models.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.planService.UpdatePlan(planID, req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan updated successfully")
}

func (p *PlansController) DeletePlanHandler(c *gin.Context) {
	if err := p.planService.DeletePlan(c.Param("id"), c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan deleted successfully")
}

// SelectDateHandler sets the plan's current day; new activities land there.
// An empty date clears the selection.
func (p *PlansController) SelectDateHandler(c *gin.Context) {
	planID := c.Param("id")
	var req request_models.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.planService.SelectDate(planID, req.Date, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Selected date updated")
}

func (p *PlansController) AddActivityHandler(c *gin.Context) {
	planID := c.Param("id")
	var req request_models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := p.planService.AddActivity(planID, req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity added successfully")
}

// AcceptSuggestionHandler inserts one of a chat session's current
// suggestions into the plan. Two rapid accepts of the same suggestion each
// create a distinct activity.
func (p *PlansController) AcceptSuggestionHandler(c *gin.Context) {
	planID := c.Param("id")
	var req request_models.AcceptSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Index == nil {
		utils.RespondError(c, http.StatusBadRequest, "sessionId and index are required")
		return
	}

	suggestion, err := p.chatService.Suggestion(req.SessionID, *req.Index, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	activity, err := p.planService.AcceptSuggestion(planID, suggestion, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Suggestion added to plan")
}

func (p *PlansController) DayBucketHandler(c *gin.Context) {
	planID := c.Param("id")
	dateKey := c.Query("date")
	if dateKey == "" {
		utils.RespondError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}

	activities, err := p.planService.DayBucket(planID, dateKey, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}

func (p *PlansController) RemoveActivityHandler(c *gin.Context) {
	planID := c.Param("id")
	activityID := c.Param("activityId")

	if err := p.planService.RemoveActivity(planID, activityID, c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity removed successfully")
}
