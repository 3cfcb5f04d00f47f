package plans_fx

import (
	"go.uber.org/fx"

	"plingplan/internal/api/controllers"
	"plingplan/internal/repositories"
	"plingplan/internal/services"
)

var Module = fx.Provide(
	providePlanRepo, providePlanService, provideController)

func providePlanRepo() repositories.PlanRepositoryInterface {
	return repositories.NewInMemoryPlanRepository()
}

func providePlanService(planRepo repositories.PlanRepositoryInterface) services.PlanServiceInterface {
	return services.NewPlanService(planRepo)
}

func provideController(planService services.PlanServiceInterface, chatService services.ChatServiceInterface) *controllers.PlansController {
	return controllers.NewPlansController(planService, chatService)
}
