package destination_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripweaver/internal/api/controllers"
	"tripweaver/internal/repositories"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

var Module = fx.Provide(
	provideDestinationRepo, provideDestinationService, provideDestinationController)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDestinationService(destinationRepo repositories.DestinationRepository, client utils.GenerationClientInterface) services.DestinationServiceInterface {
	return services.NewDestinationService(destinationRepo, client)
}

func provideDestinationController(destinationService services.DestinationServiceInterface) *controllers.DestinationController {
	return controllers.NewDestinationController(destinationService)
}
