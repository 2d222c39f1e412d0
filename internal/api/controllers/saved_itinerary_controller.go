package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type SavedItineraryController struct {
	savedItineraryService services.SavedItineraryServiceInterface
}

func NewSavedItineraryController(savedItineraryService services.SavedItineraryServiceInterface) *SavedItineraryController {
	return &SavedItineraryController{
		savedItineraryService: savedItineraryService,
	}
}

// accountID reads the authenticated account from the JWT middleware. Public
// handlers that tolerate anonymous access get uuid.Nil.
func accountID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (s *SavedItineraryController) SaveItinerary(c *gin.Context) {
	account, ok := accountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := s.savedItineraryService.SaveItinerary(c.Request.Context(), account, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary saved successfully")
}

func (s *SavedItineraryController) ListMyItineraries(c *gin.Context) {
	account, ok := accountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	itineraries, err := s.savedItineraryService.ListMyItineraries(c.Request.Context(), account)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

func (s *SavedItineraryController) GetItinerary(c *gin.Context) {
	itineraryID := c.Param("id")
	if itineraryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	account, _ := accountID(c)

	itinerary, err := s.savedItineraryService.GetItinerary(c.Request.Context(), account, itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

func (s *SavedItineraryController) DeleteItinerary(c *gin.Context) {
	account, ok := accountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	itineraryID := c.Param("id")
	if itineraryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	if err := s.savedItineraryService.DeleteItinerary(c.Request.Context(), account, itineraryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}

func (s *SavedItineraryController) SetPublished(c *gin.Context) {
	account, ok := accountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	itineraryID := c.Param("id")
	if itineraryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	var req struct {
		Published bool `json:"published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.savedItineraryService.SetPublished(c.Request.Context(), account, itineraryID, req.Published); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary updated successfully")
}

func (s *SavedItineraryController) ListPublished(c *gin.Context) {
	itineraries, err := s.savedItineraryService.ListPublished(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Published itineraries fetched successfully")
}

func (s *SavedItineraryController) Upvote(c *gin.Context) {
	itineraryID := c.Param("id")
	if itineraryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	if err := s.savedItineraryService.Upvote(c.Request.Context(), itineraryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Upvote recorded")
}
