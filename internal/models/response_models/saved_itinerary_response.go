package response_models

type SavedItineraryResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	City      string         `json:"city"`
	Days      []ItineraryDay `json:"days"`
	Published bool           `json:"published"`
	Upvotes   int            `json:"upvotes"`
}

type SavedItinerarySummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	City      string `json:"city"`
	Days      int    `json:"days"`
	Published bool   `json:"published"`
	Upvotes   int    `json:"upvotes"`
	CreatedAt int64  `json:"created_at"`
}

type DestinationResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url,omitempty"`
	Similarity  float64 `json:"similarity,omitempty"`
}
