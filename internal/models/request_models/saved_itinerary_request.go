package request_models

import "encoding/json"

// SaveItineraryRequest accepts content either as raw generated text or as an
// already structured day list; the service normalizes both through the
// itinerary grammar.
type SaveItineraryRequest struct {
	Title   string          `json:"title" binding:"required"`
	City    string          `json:"city"`
	Days    int             `json:"days"`
	Content json.RawMessage `json:"content" binding:"required"`
}
