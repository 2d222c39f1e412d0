package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver/internal/models/response_models"
	"tripweaver/pkg/utils"
)

// sampleDay renders one structurally complete day block. Activity names are
// suffixed with the day number so names stay unique across days.
func sampleDay(day int) string {
	return fmt.Sprintf(`Day %[1]d:

Morning:
1. Louvre Museum %[1]d (09:00 – 11:30)

The world's largest art museum.
Address: Rue de Rivoli, 75001 Paris
Transportation: Metro line 1 to Palais Royal

2. Tuileries Garden %[1]d (11:30 – 12:30)

Historic public garden between the Louvre and Place de la Concorde.
Address: Place de la Concorde, 75001 Paris
Transportation: Short walk

Lunch (12:30 – 13:30):
Cafe Marly %[1]d

French classics under the arcades.
Address: 93 Rue de Rivoli, 75001 Paris

Afternoon:
3. Musee d'Orsay %[1]d (2:00 PM – 4:00 PM)

Impressionist masterpieces in a former railway station.
Address: 1 Rue de la Legion d'Honneur, 75007 Paris
Transportation: RER C one stop

4. Seine River Cruise %[1]d (16:30 – 17:30)

One hour sightseeing cruise.
Address: Port de la Bourdonnais, 75007 Paris
Transportation: Bus 69

Evening:
5. Eiffel Tower %[1]d (19:00 – 21:00)

Summit visit at sunset.
Address: Champ de Mars, 75007 Paris
Transportation: Walk from the cruise dock

Dinner (21:15 – 22:30):
Le Jules Verne %[1]d

Fine dining on the tower's second floor.
Address: Avenue Gustave Eiffel, 75007 Paris`, day)
}

func sampleItinerary(numDays int) string {
	parts := make([]string, numDays)
	for i := range parts {
		parts[i] = sampleDay(i + 1)
	}
	return strings.Join(parts, "\n\n")
}

func TestFormatItineraryTruncatesAndRenumbers(t *testing.T) {
	text := sampleItinerary(3)
	formatted := FormatItinerary(text, 2)

	assert.Contains(t, formatted, "Day 1:")
	assert.Contains(t, formatted, "Day 2:")
	assert.NotContains(t, formatted, "Day 3:")
	// Renumbering is positional: a text starting at Day 4 becomes Day 1.
	shifted := strings.ReplaceAll(sampleDay(1), "Day 1:", "Day 4:")
	assert.True(t, strings.HasPrefix(FormatItinerary(shifted, 2), "Day 1:"))
}

func TestFormatItineraryRoundTrips(t *testing.T) {
	text := sampleItinerary(2)
	formatted := FormatItinerary(text, 2)
	// Reassembly may shift blank lines between days; the parsed document
	// must come out identical.
	assert.Equal(t, ParseItinerary(text, 2), ParseItinerary(formatted, 2))
}

func TestFormatItineraryIgnoresPreamble(t *testing.T) {
	text := "Here is your itinerary!\n\n" + sampleDay(1)
	formatted := FormatItinerary(text, 1)
	assert.True(t, strings.HasPrefix(formatted, "Day 1:"))
	assert.NotContains(t, formatted, "Here is your itinerary")
}

func TestParseItineraryStructure(t *testing.T) {
	days := ParseItinerary(sampleItinerary(2), 2)
	require.Len(t, days, 2)

	for i, day := range days {
		assert.Equal(t, i+1, day.DayNumber)
		require.Len(t, day.Sections, 3)
		assert.Equal(t, response_models.SectionMorning, day.Sections[0].Title)
		assert.Equal(t, response_models.SectionAfternoon, day.Sections[1].Title)
		assert.Equal(t, response_models.SectionEvening, day.Sections[2].Title)

		// Lunch joins Morning, Dinner joins Evening.
		assert.Len(t, day.Sections[0].Activities, 3)
		assert.Len(t, day.Sections[1].Activities, 2)
		assert.Len(t, day.Sections[2].Activities, 2)
	}

	first := days[0].Sections[0].Activities[0]
	assert.Equal(t, "Louvre Museum 1", first.Name)
	assert.Equal(t, "09:00", first.StartTime)
	assert.Equal(t, "11:30", first.EndTime)
	assert.Equal(t, 150, first.DurationMinutes)
	assert.Equal(t, "Rue de Rivoli, 75001 Paris", first.Address)
	assert.Equal(t, "Metro line 1 to Palais Royal", first.Transportation)
	assert.Equal(t, "The world's largest art museum.", first.Description)
}

func TestParseItineraryNormalizes12HourTimes(t *testing.T) {
	days := ParseItinerary(sampleItinerary(1), 1)
	require.Len(t, days, 1)

	orsay := days[0].Sections[1].Activities[0]
	assert.Equal(t, "Musee d'Orsay 1", orsay.Name)
	assert.Equal(t, "14:00", orsay.StartTime)
	assert.Equal(t, "16:00", orsay.EndTime)
	assert.Equal(t, 120, orsay.DurationMinutes)
}

func TestParseItineraryMealHeaderTime(t *testing.T) {
	days := ParseItinerary(sampleItinerary(1), 1)
	require.Len(t, days, 1)

	morning := days[0].Sections[0].Activities
	lunch := morning[len(morning)-1]
	assert.Equal(t, "Cafe Marly 1", lunch.Name)
	assert.Equal(t, "12:30", lunch.StartTime)
	assert.Equal(t, "13:30", lunch.EndTime)
	assert.Equal(t, "93 Rue de Rivoli, 75001 Paris", lunch.Address)
}

func TestParseItineraryEmptySectionGetsPlaceholder(t *testing.T) {
	text := `Day 1:

Morning:
1. Solo Stop (09:00 – 10:00)

Address: Somewhere 1

Afternoon:

Evening:`
	days := ParseItinerary(text, 1)
	require.Len(t, days, 1)

	afternoon := days[0].Sections[1].Activities
	require.Len(t, afternoon, 1)
	assert.Equal(t, placeholderActivityName, afternoon[0].Name)
	assert.NotEmpty(t, afternoon[0].Description)
}

func TestParseItineraryBareDinnerBoundsEvening(t *testing.T) {
	text := `Day 1:

Evening:
5. Night Market (19:00 – 20:30)

Street food stalls.
Address: Old Town Square

Dinner
Riverside Tavern

Grilled fish by the water.
Address: Quay 4`
	days := ParseItinerary(text, 1)
	require.Len(t, days, 1)

	evening := days[0].Sections[2].Activities
	require.Len(t, evening, 2)
	assert.Equal(t, "Night Market", evening[0].Name)
	assert.NotContains(t, evening[0].Description, "Riverside Tavern")
	assert.Equal(t, "Riverside Tavern", evening[1].Name)
	assert.Equal(t, "Quay 4", evening[1].Address)
}

func TestParseActivityMarkerIgnoresDecimals(t *testing.T) {
	_, ok := parseActivityMarker("2.5 km along the promenade")
	assert.False(t, ok)

	name, ok := parseActivityMarker("12. Grand Bazaar")
	require.True(t, ok)
	assert.Equal(t, "Grand Bazaar", name)
}

func TestStripTimeExpressionKeepsNonClockParens(t *testing.T) {
	name, _, _, _, ok := stripTimeExpression("City Hall (guided tour)")
	assert.False(t, ok)
	assert.Equal(t, "City Hall (guided tour)", name)

	name, start, end, duration, ok := stripTimeExpression("City Hall (guided tour) (10:00 AM – 12:00 PM)")
	require.True(t, ok)
	assert.Equal(t, "City Hall (guided tour)", name)
	assert.Equal(t, "10:00", start)
	assert.Equal(t, "12:00", end)
	assert.Equal(t, 120, duration)
}

func TestExtractActivityNames(t *testing.T) {
	names := ExtractActivityNames(sampleItinerary(1))
	assert.Equal(t, []string{
		"Louvre Museum 1",
		"Tuileries Garden 1",
		"Musee d'Orsay 1",
		"Seine River Cruise 1",
		"Eiffel Tower 1",
	}, names)
}

func TestNormalizeItineraryFromText(t *testing.T) {
	days, err := NormalizeItinerary(sampleItinerary(2), 2)
	require.NoError(t, err)
	assert.Len(t, days, 2)
}

func TestNormalizeItineraryFromLooseDays(t *testing.T) {
	content := []interface{}{
		map[string]interface{}{
			"day_number": 7,
			"sections": []interface{}{
				map[string]interface{}{
					"title": "Morning",
					"activities": []interface{}{
						map[string]interface{}{"name": "Castle"},
					},
				},
			},
		},
	}
	days, err := NormalizeItinerary(content, 1)
	require.NoError(t, err)
	require.Len(t, days, 1)
	// Day numbers are positional, whatever the stored value said.
	assert.Equal(t, 1, days[0].DayNumber)
	require.Len(t, days[0].Sections, 1)
	assert.Equal(t, "Castle", days[0].Sections[0].Activities[0].Name)
}

func TestNormalizeItineraryUnknownShape(t *testing.T) {
	_, err := NormalizeItinerary(42, 1)
	assert.ErrorIs(t, err, utils.ErrUnrecognizedItineraryShape)
}
