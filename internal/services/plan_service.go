package services

import (
	"context"

	"github.com/google/uuid"

	"plingplan/internal/models/domain_models"
	"plingplan/internal/models/request_models"
	"plingplan/internal/repositories"
	"plingplan/pkg/utils"
)

type PlanServiceInterface interface {
	CreatePlan(req request_models.CreatePlanRequest, ctx context.Context) (*domain_models.Plan, error)
	GetPlan(planID string, ctx context.Context) (*domain_models.Plan, error)
	ListPlans(ctx context.Context) ([]*domain_models.Plan, error)
	UpdatePlan(planID string, req request_models.UpdatePlanRequest, ctx context.Context) (*domain_models.Plan, error)
	DeletePlan(planID string, ctx context.Context) error
	SelectDate(planID string, dateKey string, ctx context.Context) (*domain_models.Plan, error)
	AddActivity(planID string, req request_models.CreateActivityRequest, ctx context.Context) (*domain_models.Activity, error)
	AcceptSuggestion(planID string, s domain_models.SuggestedActivity, ctx context.Context) (*domain_models.Activity, error)
	DayBucket(planID string, dateKey string, ctx context.Context) ([]domain_models.Activity, error)
	RemoveActivity(planID string, activityID string, ctx context.Context) error
}

type PlanService struct {
	planRepo repositories.PlanRepositoryInterface
}

func NewPlanService(planRepo repositories.PlanRepositoryInterface) PlanServiceInterface {
	return &PlanService{planRepo: planRepo}
}

func (s *PlanService) CreatePlan(req request_models.CreatePlanRequest, ctx context.Context) (*domain_models.Plan, error) {
	if !utils.ValidDateKey(req.StartDate) {
		return nil, utils.ErrInvalidDateKey
	}
	endDate := req.EndDate
	if endDate == "" {
		endDate = req.StartDate
	}
	if !utils.ValidDateKey(endDate) {
		return nil, utils.ErrInvalidDateKey
	}
	if endDate < req.StartDate {
		return nil, utils.ErrInvalidDateRange
	}

	theme := req.Theme
	if !domain_models.IsValidTheme(theme) {
		theme = domain_models.DefaultPlanTheme
	}

	now := utils.NowUnixSeconds()
	plan := &domain_models.Plan{
		ID:         uuid.New().String(),
		Name:       req.Name,
		StartDate:  req.StartDate,
		EndDate:    endDate,
		City:       cityFromInput(req.City),
		Image:      req.Image,
		Theme:      theme,
		Activities: []domain_models.Activity{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.planRepo.Create(plan, ctx); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) GetPlan(planID string, ctx context.Context) (*domain_models.Plan, error) {
	return s.planRepo.GetByID(planID, ctx)
}

func (s *PlanService) ListPlans(ctx context.Context) ([]*domain_models.Plan, error) {
	return s.planRepo.List(ctx)
}

func (s *PlanService) UpdatePlan(planID string, req request_models.UpdatePlanRequest, ctx context.Context) (*domain_models.Plan, error) {
	plan, err := s.planRepo.GetByID(planID, ctx)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.StartDate != nil {
		if !utils.ValidDateKey(*req.StartDate) {
			return nil, utils.ErrInvalidDateKey
		}
		plan.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		if !utils.ValidDateKey(*req.EndDate) {
			return nil, utils.ErrInvalidDateKey
		}
		plan.EndDate = *req.EndDate
	}
	if plan.EndDate < plan.StartDate {
		return nil, utils.ErrInvalidDateRange
	}
	if req.City != nil {
		plan.City = cityFromInput(req.City)
	}
	if req.Image != nil {
		plan.Image = *req.Image
	}
	if req.Theme != nil && domain_models.IsValidTheme(*req.Theme) {
		plan.Theme = *req.Theme
	}
	if plan.SelectedDate != "" && !plan.ContainsDate(plan.SelectedDate) {
		plan.SelectedDate = ""
	}

	plan.UpdatedAt = utils.NowUnixSeconds()
	if err := s.planRepo.Update(plan, ctx); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) DeletePlan(planID string, ctx context.Context) error {
	return s.planRepo.Delete(planID, ctx)
}

func (s *PlanService) SelectDate(planID string, dateKey string, ctx context.Context) (*domain_models.Plan, error) {
	plan, err := s.planRepo.GetByID(planID, ctx)
	if err != nil {
		return nil, err
	}

	if dateKey != "" {
		if !utils.ValidDateKey(dateKey) {
			return nil, utils.ErrInvalidDateKey
		}
		if !plan.ContainsDate(dateKey) {
			return nil, utils.ErrDateOutsideRange
		}
	}

	plan.SelectedDate = dateKey
	plan.UpdatedAt = utils.NowUnixSeconds()
	if err := s.planRepo.Update(plan, ctx); err != nil {
		return nil, err
	}
	return plan, nil
}

// AddActivity places a manually created activity into the current day bucket:
// the selected day, or the start date when none is selected. Every call mints
// a new identity; nothing is merged or deduplicated.
func (s *PlanService) AddActivity(planID string, req request_models.CreateActivityRequest, ctx context.Context) (*domain_models.Activity, error) {
	activity := domain_models.Activity{
		Name:     req.Name,
		Address:  req.Address,
		Lat:      req.Lat,
		Lng:      req.Lng,
		Time:     req.Time,
		Notes:    req.Notes,
		Tags:     domain_models.NormalizeTags(req.Tags),
		Types:    req.Types,
		Category: domain_models.CategoryFromTypes(req.Types),
	}
	return s.insertActivity(planID, activity, ctx)
}

// AcceptSuggestion inserts an AI suggestion under the same bucket rule.
// Unresolved coordinates stay at the 0,0 sentinel the suggestion carried.
func (s *PlanService) AcceptSuggestion(planID string, sug domain_models.SuggestedActivity, ctx context.Context) (*domain_models.Activity, error) {
	activity := domain_models.Activity{
		Name:    sug.Name,
		Address: sug.Address,
		Lat:     sug.Lat,
		Lng:     sug.Lng,
		Time:    sug.Time,
		Notes:   sug.Notes,
		Tags:    domain_models.NormalizeTags(sug.Tags),
	}
	return s.insertActivity(planID, activity, ctx)
}

func (s *PlanService) insertActivity(planID string, activity domain_models.Activity, ctx context.Context) (*domain_models.Activity, error) {
	if activity.Name == "" {
		return nil, utils.ErrEmptyActivityName
	}

	plan, err := s.planRepo.GetByID(planID, ctx)
	if err != nil {
		return nil, err
	}

	activity.ID = uuid.New().String()
	activity.DateKey = plan.InsertDateKey()
	activity.CreatedAt = utils.NowUnixSeconds()
	if activity.Tags == nil {
		activity.Tags = []domain_models.Tag{}
	}

	// Prepend: buckets render most recently added first.
	plan.Activities = append([]domain_models.Activity{activity}, plan.Activities...)
	plan.UpdatedAt = activity.CreatedAt

	if err := s.planRepo.Update(plan, ctx); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *PlanService) DayBucket(planID string, dateKey string, ctx context.Context) ([]domain_models.Activity, error) {
	if !utils.ValidDateKey(dateKey) {
		return nil, utils.ErrInvalidDateKey
	}
	plan, err := s.planRepo.GetByID(planID, ctx)
	if err != nil {
		return nil, err
	}
	return plan.DayBucket(dateKey), nil
}

func (s *PlanService) RemoveActivity(planID string, activityID string, ctx context.Context) error {
	plan, err := s.planRepo.GetByID(planID, ctx)
	if err != nil {
		return err
	}

	for i, a := range plan.Activities {
		if a.ID == activityID {
			plan.Activities = append(plan.Activities[:i], plan.Activities[i+1:]...)
			plan.UpdatedAt = utils.NowUnixSeconds()
			return s.planRepo.Update(plan, ctx)
		}
	}
	return utils.ErrActivityNotFound
}

func cityFromInput(in *request_models.CityInput) *domain_models.City {
	if in == nil {
		return nil
	}
	return &domain_models.City{
		Name:    in.Name,
		State:   in.State,
		Country: in.Country,
		Lat:     in.Lat,
		Lng:     in.Lng,
	}
}
