package chat_fx

import (
	"go.uber.org/fx"

	"plingplan/internal/api/controllers"
	"plingplan/internal/infra"
	"plingplan/internal/services"
	"plingplan/pkg/utils"
)

var Module = fx.Provide(
	provideChatService, provideController)

func provideChatService(aiClient utils.AIClientInterface, planService services.PlanServiceInterface, cfg *infra.Config) services.ChatServiceInterface {
	return services.NewChatService(aiClient, planService, cfg.SessionTTL)
}

func provideController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}
