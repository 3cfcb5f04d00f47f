package suggest_fx

import (
	"go.uber.org/fx"

	"plingplan/internal/api/controllers"
	"plingplan/internal/services"
	"plingplan/pkg/utils"
)

var Module = fx.Provide(
	provideSuggestService, provideController)

func provideSuggestService(aiClient utils.AIClientInterface, chatService services.ChatServiceInterface) services.SuggestServiceInterface {
	return services.NewSuggestService(aiClient, chatService)
}

func provideController(suggestService services.SuggestServiceInterface) *controllers.SuggestController {
	return controllers.NewSuggestController(suggestService)
}
