package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

func (d *DestinationController) ListDestinations(c *gin.Context) {
	destinations, err := d.destinationService.ListDestinations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

func (d *DestinationController) SearchDestinations(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter is required")
		return
	}

	destinations, err := d.destinationService.SearchDestinations(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}
