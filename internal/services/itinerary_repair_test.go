package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver/internal/models/request_models"
)

func TestInsertMustSeesResolvesAllWhenEnoughDays(t *testing.T) {
	text := sampleItinerary(3)
	missing := []string{"Sacre-Coeur", "Catacombs"}

	repaired := InsertMustSees(text, missing)

	result := ValidateItinerary(repaired, 3, []request_models.MustSee{
		{Name: "Sacre-Coeur"},
		{Name: "Catacombs"},
	})
	assert.True(t, result.IsValid, result.Reason)

	// One insertion per day, starting at Day 1.
	days := splitDays(repaired)
	require.Len(t, days, 3)
	assert.Contains(t, days[0], "Sacre-Coeur")
	assert.NotContains(t, days[0], "Catacombs")
	assert.Contains(t, days[1], "Catacombs")
	assert.NotContains(t, days[2], "Sacre-Coeur")
	assert.NotContains(t, days[2], "Catacombs")
}

func TestInsertMustSeesPlacesActivityAfterMorning(t *testing.T) {
	repaired := InsertMustSees(sampleItinerary(1), []string{"Sacre-Coeur"})

	days := splitDays(repaired)
	require.Len(t, days, 1)
	morningIdx := strings.Index(days[0], "Morning:")
	insertIdx := strings.Index(days[0], "Sacre-Coeur")
	louvreIdx := strings.Index(days[0], "Louvre Museum 1")
	require.True(t, morningIdx >= 0 && insertIdx >= 0 && louvreIdx >= 0)
	assert.Less(t, morningIdx, insertIdx)
	assert.Less(t, insertIdx, louvreIdx)

	// The injected block carries its own address line so the address rule
	// still holds afterwards.
	assert.Contains(t, days[0], "Address: [Insert specific address for Sacre-Coeur]")
}

func TestInsertMustSeesLeavesSurplusUnresolved(t *testing.T) {
	text := sampleItinerary(1)
	missing := []string{"Sacre-Coeur", "Catacombs"}

	repaired := InsertMustSees(text, missing)

	result := ValidateItinerary(repaired, 1, []request_models.MustSee{
		{Name: "Sacre-Coeur"},
		{Name: "Catacombs"},
	})
	require.False(t, result.IsValid)
	assert.Equal(t, []string{"Catacombs"}, result.MissingMustSees)
}

func TestInsertMustSeesWithNothingMissingIsStructurallyNeutral(t *testing.T) {
	text := sampleItinerary(2)
	repaired := InsertMustSees(text, nil)
	assert.Equal(t, ParseItinerary(text, 2), ParseItinerary(repaired, 2))
}
