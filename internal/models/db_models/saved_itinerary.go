package db_models

import "github.com/google/uuid"

// SavedItinerary is a user-owned itinerary. Content holds the day/section/
// activity structure as JSON; older rows may carry other shapes, which the
// parser normalization handles on read.
type SavedItinerary struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index;not null"`
	Title     string    `gorm:"not null"`
	City      string
	Days      int
	Content   string `gorm:"type:jsonb"`
	Published bool   `gorm:"index"`
	Upvotes   int
}
