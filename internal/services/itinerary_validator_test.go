package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver/internal/models/request_models"
)

func TestValidateItineraryAccepts(t *testing.T) {
	result := ValidateItinerary(sampleItinerary(2), 2, nil)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Reason)
}

func TestValidateItineraryDayCountMismatch(t *testing.T) {
	result := ValidateItinerary(sampleItinerary(2), 3, nil)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Expected 3 days, but got 2", result.Reason)
}

func TestValidateItineraryMissingSection(t *testing.T) {
	text := strings.Replace(sampleItinerary(1), "Afternoon:", "Later:", 1)
	result := ValidateItinerary(text, 1, nil)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Day 1 is missing Afternoon: section", result.Reason)
}

func TestValidateItineraryTooFewActivities(t *testing.T) {
	// Strip activity 4's marker; four numbered activities remain.
	text := strings.Replace(sampleItinerary(1), "4. Seine River Cruise 1", "Seine River Cruise 1", 1)
	result := ValidateItinerary(text, 1, nil)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Day 1 has fewer than 5 activities", result.Reason)
}

func TestValidateItineraryMissingAddress(t *testing.T) {
	text := strings.Replace(sampleItinerary(1), "Address: Champ de Mars, 75007 Paris\n", "", 1)
	text = strings.Replace(text, "Address: Avenue Gustave Eiffel, 75007 Paris", "", 1)
	text = strings.Replace(text, "Address: 93 Rue de Rivoli, 75001 Paris", "", 1)
	result := ValidateItinerary(text, 1, nil)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Day 1 has activities missing addresses", result.Reason)
}

func TestValidateItineraryMustSeesCaseInsensitive(t *testing.T) {
	result := ValidateItinerary(sampleItinerary(1), 1, []request_models.MustSee{
		{Name: "LOUVRE MUSEUM"},
		{Name: "eiffel tower"},
	})
	assert.True(t, result.IsValid)
}

func TestValidateItineraryCollectsAllMissingMustSees(t *testing.T) {
	result := ValidateItinerary(sampleItinerary(1), 1, []request_models.MustSee{
		{Name: "Louvre Museum"},
		{Name: "Sacre-Coeur"},
		{Name: "Catacombs"},
	})
	require.False(t, result.IsValid)
	assert.Equal(t, []string{"Sacre-Coeur", "Catacombs"}, result.MissingMustSees)
	assert.Equal(t, "Itinerary is missing must-see locations: Sacre-Coeur, Catacombs", result.Reason)
}

func TestValidateItineraryIgnoresBlankMustSeeNames(t *testing.T) {
	result := ValidateItinerary(sampleItinerary(1), 1, []request_models.MustSee{{Name: "  "}})
	assert.True(t, result.IsValid)
}
