package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripweaver/cmd/fx/account_fx"
	"tripweaver/cmd/fx/db_fx"
	"tripweaver/cmd/fx/destination_fx"
	"tripweaver/cmd/fx/itinerary_fx"
	"tripweaver/cmd/fx/memcache_fx"
	"tripweaver/cmd/fx/saved_itinerary_fx"
	"tripweaver/internal/api/controllers"
	"tripweaver/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		itinerary_fx.Module,
		account_fx.Module,
		saved_itinerary_fx.Module,
		destination_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
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
	itineraryController *controllers.ItineraryController,
	accountController *controllers.AccountController,
	savedItineraryController *controllers.SavedItineraryController,
	destinationController *controllers.DestinationController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, accountController, savedItineraryController, destinationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	accountController *controllers.AccountController,
	savedItineraryController *controllers.SavedItineraryController,
	destinationController *controllers.DestinationController) {

	v1 := r.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", accountController.SignUp)
	authGroup.POST("/login", accountController.Login)

	itineraries := v1.Group("/itineraries")
	itineraries.POST("/generate", itineraryController.GenerateItinerary)
	itineraries.GET("/generate/stream", itineraryController.StreamItinerary)
	itineraries.GET("/cached-activities", itineraryController.GetCachedActivities)

	saved := v1.Group("/itineraries")
	saved.Use(middleware.JWTAuthMiddleware())
	saved.POST("", savedItineraryController.SaveItinerary)
	saved.GET("", savedItineraryController.ListMyItineraries)
	saved.GET("/:id", savedItineraryController.GetItinerary)
	saved.DELETE("/:id", savedItineraryController.DeleteItinerary)
	saved.POST("/:id/publish", savedItineraryController.SetPublished)

	published := v1.Group("/published-itineraries")
	published.GET("", savedItineraryController.ListPublished)
	published.POST("/:id/upvote", savedItineraryController.Upvote)

	destinations := v1.Group("/destinations")
	destinations.GET("", destinationController.ListDestinations)
	destinations.GET("/search", destinationController.SearchDestinations)
}
