package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	streamService    services.StreamItineraryServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	streamService services.StreamItineraryServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		streamService:    streamService,
	}
}

func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

// StreamItinerary emits one SSE event per generated day. Errors after the
// stream has started are delivered as an "error" event since the status
// line has already been written.
func (i *ItineraryController) StreamItinerary(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City parameter is required")
		return
	}

	numDays, err := strconv.Atoi(c.DefaultQuery("days", "1"))
	if err != nil || numDays < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid number of days")
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	events := make(chan response_models.StreamedDay)
	errCh := make(chan error, 1)

	go func() {
		defer close(events)
		errCh <- i.streamService.StreamItinerary(c.Request.Context(), city, numDays, func(day response_models.StreamedDay) error {
			select {
			case events <- day:
				return nil
			case <-c.Request.Context().Done():
				return c.Request.Context().Err()
			}
		})
	}()

	c.Stream(func(w io.Writer) bool {
		day, ok := <-events
		if !ok {
			if err := <-errCh; err != nil {
				c.SSEvent("error", err.Error())
			} else {
				c.SSEvent("done", "")
			}
			return false
		}
		c.SSEvent("day", day)
		return true
	})
}

func (i *ItineraryController) GetCachedActivities(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City parameter is required")
		return
	}

	names, err := i.streamService.GetCachedActivityNames(c.Request.Context(), city)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"city": city, "activities": names}, "Cached activities fetched successfully")
}
