package saved_itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripweaver/internal/api/controllers"
	"tripweaver/internal/repositories"
	"tripweaver/internal/services"
)

var Module = fx.Provide(
	provideSavedItineraryRepo, provideSavedItineraryService, provideSavedItineraryController)

func provideSavedItineraryRepo(db *gorm.DB) repositories.SavedItineraryRepository {
	return repositories.NewSavedItineraryRepository(db)
}

func provideSavedItineraryService(itineraryRepo repositories.SavedItineraryRepository) services.SavedItineraryServiceInterface {
	return services.NewSavedItineraryService(itineraryRepo)
}

func provideSavedItineraryController(savedItineraryService services.SavedItineraryServiceInterface) *controllers.SavedItineraryController {
	return controllers.NewSavedItineraryController(savedItineraryService)
}
