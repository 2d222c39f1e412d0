package db_models

import "github.com/lib/pq"

// CachedItinerary stores one accepted itinerary per (city, days) pair.
// Concurrent generations for the same key race on the upsert and the last
// writer wins.
type CachedItinerary struct {
	BaseModel
	City      string         `gorm:"index:idx_cached_itinerary_city_days,unique;not null"`
	Days      int            `gorm:"index:idx_cached_itinerary_city_days,unique;not null"`
	Itinerary string         `gorm:"type:text;not null"`
	MustSees  pq.StringArray `gorm:"type:text[]"`
}

// CachedActivityNames accumulates the activity names streamed itineraries
// already used for a city, independent of day count.
type CachedActivityNames struct {
	BaseModel
	City       string         `gorm:"uniqueIndex;not null"`
	Activities pq.StringArray `gorm:"type:text[]"`
}
