package services

import (
	"fmt"
	"strings"

	"tripweaver/internal/models/request_models"
)

// minActivitiesPerDay enforces one filled slot for each of Morning,
// Afternoon, Evening, Lunch and Dinner.
const minActivitiesPerDay = 5

type ValidationResult struct {
	IsValid         bool
	Reason          string
	MissingMustSees []string
}

var requiredSectionLabels = []string{"Morning:", "Afternoon:", "Evening:", "Lunch", "Dinner"}

// ValidateItinerary decides whether a formatted candidate is acceptable to
// show a user. Structural checks (day count, section labels, activity and
// address counts) short-circuit on the first failure; must-see coverage is
// only evaluated once the structure passes, and collects every missing name
// so a single repair pass can address them all.
func ValidateItinerary(text string, numDays int, mustSees []request_models.MustSee) ValidationResult {
	days := splitDays(text)
	if len(days) != numDays {
		return ValidationResult{Reason: fmt.Sprintf("Expected %d days, but got %d", numDays, len(days))}
	}

	for i, day := range days {
		for _, label := range requiredSectionLabels {
			if !strings.Contains(day, label) {
				return ValidationResult{Reason: fmt.Sprintf("Day %d is missing %s section", i+1, label)}
			}
		}

		activities := countActivityMarkers(day)
		if activities < minActivitiesPerDay {
			return ValidationResult{Reason: fmt.Sprintf("Day %d has fewer than %d activities", i+1, minActivitiesPerDay)}
		}

		// Every numbered activity must carry an address line.
		if strings.Count(day, "Address:") < activities {
			return ValidationResult{Reason: fmt.Sprintf("Day %d has activities missing addresses", i+1)}
		}
	}

	lowerText := strings.ToLower(text)
	var missing []string
	for _, mustSee := range mustSees {
		name := strings.TrimSpace(mustSee.Name)
		if name == "" {
			continue
		}
		if !strings.Contains(lowerText, strings.ToLower(name)) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return ValidationResult{
			Reason:          fmt.Sprintf("Itinerary is missing must-see locations: %s", strings.Join(missing, ", ")),
			MissingMustSees: missing,
		}
	}

	return ValidationResult{IsValid: true}
}
