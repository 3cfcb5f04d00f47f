package ai_fx

import (
	"log"
	"strings"

	"go.uber.org/fx"

	"plingplan/internal/infra"
	"plingplan/pkg/utils"
)

var Module = fx.Provide(ProvideAIClient)

// ProvideAIClient builds the chat model client from config. A missing key is
// not fatal: the app serves plans and proxies without AI, and the chat
// endpoints report the missing variable per request.
func ProvideAIClient(cfg *infra.Config) utils.AIClientInterface {
	switch strings.ToLower(cfg.AIProvider) {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Printf("OPENAI_API_KEY not set, chat endpoints disabled")
			return utils.UnconfiguredClient{EnvVar: "OPENAI_API_KEY"}
		}
		log.Printf("Using OpenAI chat client")
		return utils.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Printf("GOOGLE_GENERATIVE_AI_API_KEY not set, chat endpoints disabled")
			return utils.UnconfiguredClient{EnvVar: "GOOGLE_GENERATIVE_AI_API_KEY"}
		}
		client, err := utils.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("Failed to create Gemini client: %v, chat endpoints disabled", err)
			return utils.UnconfiguredClient{EnvVar: "GOOGLE_GENERATIVE_AI_API_KEY"}
		}
		log.Printf("Using Gemini chat client with model %s", cfg.GeminiModel)
		return client
	default:
		log.Printf("Unsupported AI_PROVIDER %q, chat endpoints disabled. Use 'gemini' or 'openai'", cfg.AIProvider)
		return utils.UnconfiguredClient{EnvVar: "AI_PROVIDER"}
	}
}
