package repositories

import (
	"context"
	"sync"

	"plingplan/internal/models/domain_models"
	"plingplan/pkg/utils"
)

type PlanRepositoryInterface interface {
	Create(plan *domain_models.Plan, ctx context.Context) error
	GetByID(planID string, ctx context.Context) (*domain_models.Plan, error)
	List(ctx context.Context) ([]*domain_models.Plan, error)
	Update(plan *domain_models.Plan, ctx context.Context) error
	Delete(planID string, ctx context.Context) error
}

// InMemoryPlanRepository is the reference store: plans live only for the
// lifetime of the process. Stored plans are cloned on the way in and out so
// callers never alias repository state.
type InMemoryPlanRepository struct {
	mu    sync.RWMutex
	plans map[string]*domain_models.Plan
	order []string
}

func NewInMemoryPlanRepository() PlanRepositoryInterface {
	return &InMemoryPlanRepository{
		plans: make(map[string]*domain_models.Plan),
	}
}

func (r *InMemoryPlanRepository) Create(plan *domain_models.Plan, ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.plans[plan.ID] = plan.Clone()
	r.order = append(r.order, plan.ID)
	return nil
}

func (r *InMemoryPlanRepository) GetByID(planID string, ctx context.Context) (*domain_models.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, ok := r.plans[planID]
	if !ok {
		return nil, utils.ErrPlanNotFound
	}
	return plan.Clone(), nil
}

func (r *InMemoryPlanRepository) List(ctx context.Context) ([]*domain_models.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain_models.Plan, 0, len(r.order))
	for _, id := range r.order {
		if plan, ok := r.plans[id]; ok {
			out = append(out, plan.Clone())
		}
	}
	return out, nil
}

func (r *InMemoryPlanRepository) Update(plan *domain_models.Plan, ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plans[plan.ID]; !ok {
		return utils.ErrPlanNotFound
	}
	r.plans[plan.ID] = plan.Clone()
	return nil
}

func (r *InMemoryPlanRepository) Delete(planID string, ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plans[planID]; !ok {
		return utils.ErrPlanNotFound
	}
	delete(r.plans, planID)
	for i, id := range r.order {
		if id == planID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
