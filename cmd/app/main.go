package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"plingplan/cmd/fx/ai_fx"
	"plingplan/cmd/fx/chat_fx"
	"plingplan/cmd/fx/cities_fx"
	"plingplan/cmd/fx/http_fx"
	"plingplan/cmd/fx/places_fx"
	"plingplan/cmd/fx/plans_fx"
	"plingplan/cmd/fx/suggest_fx"
	"plingplan/cmd/fx/tags_fx"
	"plingplan/internal/api/controllers"
	"plingplan/internal/infra"
	"plingplan/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(infra.LoadConfig),
		http_fx.Module,
		ai_fx.Module,
		plans_fx.Module,
		chat_fx.Module,
		suggest_fx.Module,
		places_fx.Module,
		cities_fx.Module,
		tags_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plansController *controllers.PlansController,
	chatController *controllers.ChatController,
	suggestController *controllers.SuggestController,
	placesController *controllers.PlacesController,
	citiesController *controllers.CitiesController,
	tagsController *controllers.TagsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plansController, chatController, suggestController, placesController, citiesController, tagsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plansController *controllers.PlansController,
	chatController *controllers.ChatController,
	suggestController *controllers.SuggestController,
	placesController *controllers.PlacesController,
	citiesController *controllers.CitiesController,
	tagsController *controllers.TagsController) {

	plansGroup := r.Group("/plans")
	plansGroup.POST("", plansController.CreatePlanHandler)
	plansGroup.GET("", plansController.ListPlansHandler)
	plansGroup.GET("/:id", plansController.GetPlanHandler)
	plansGroup.PATCH("/:id", plansController.UpdatePlanHandler)
	plansGroup.DELETE("/:id", plansController.DeletePlanHandler)
	plansGroup.PUT("/:id/selected-date", plansController.SelectDateHandler)
	plansGroup.GET("/:id/activities", plansController.DayBucketHandler)
	plansGroup.POST("/:id/activities", plansController.AddActivityHandler)
	plansGroup.POST("/:id/activities/accept", plansController.AcceptSuggestionHandler)
	plansGroup.DELETE("/:id/activities/:activityId", plansController.RemoveActivityHandler)

	chatGroup := r.Group("/chat")
	chatGroup.POST("", chatController.ChatHandler)
	chatGroup.POST("/sessions", chatController.StartSessionHandler)
	chatGroup.GET("/sessions/:id", chatController.GetSessionHandler)
	chatGroup.POST("/sessions/:id/messages", chatController.SendMessageHandler)

	activitiesGroup := r.Group("/activities")
	activitiesGroup.POST("/suggest", suggestController.SuggestActivitiesHandler)

	placesGroup := r.Group("/places")
	placesGroup.GET("/autocomplete", placesController.AutocompleteHandler)
	placesGroup.GET("/details", placesController.DetailsHandler)

	citiesGroup := r.Group("/cities")
	citiesGroup.GET("/search", citiesController.SearchHandler)
	citiesGroup.GET("/image", citiesController.ImageHandler)

	tagsGroup := r.Group("/tags")
	tagsGroup.GET("", tagsController.ListTagsHandler)
}
