package response_models

// Canonical section titles, in rendering order. Lunch and Dinner are not
// sections of their own: their activities are appended to Morning and
// Evening respectively so clients can render three columns per day.
const (
	SectionMorning   = "Morning"
	SectionAfternoon = "Afternoon"
	SectionEvening   = "Evening"
)

type ItineraryActivity struct {
	Name            string `json:"name"`
	StartTime       string `json:"start_time,omitempty"`
	EndTime         string `json:"end_time,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Description     string `json:"description,omitempty"`
	Address         string `json:"address,omitempty"`
	Transportation  string `json:"transportation,omitempty"`
}

type ItinerarySection struct {
	Title      string              `json:"title"`
	Activities []ItineraryActivity `json:"activities"`
}

type ItineraryDay struct {
	DayNumber int                `json:"day_number"`
	Sections  []ItinerarySection `json:"sections"`
}

type GenerateItineraryResponse struct {
	Result string         `json:"result"`
	Days   []ItineraryDay `json:"days"`
	Cached bool           `json:"cached"`
}

// StreamedDay is one event of the day-at-a-time generation mode.
type StreamedDay struct {
	Day  int    `json:"day"`
	Text string `json:"text"`
}
