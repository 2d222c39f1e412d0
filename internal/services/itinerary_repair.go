package services

import (
	"fmt"
	"strings"
)

// InsertMustSees deterministically patches a structurally valid itinerary
// that failed must-see coverage, without calling the generation service
// again. At most one missing must-see is injected per day, immediately after
// that day's "Morning:" label, with a placeholder time window, address and
// transportation line. The pass never fails; whether it was enough is
// decided by re-validation.
func InsertMustSees(text string, missingMustSees []string) string {
	queue := make([]string, len(missingMustSees))
	copy(queue, missingMustSees)

	days := splitDays(text)
	parts := make([]string, len(days))
	for i, day := range days {
		if len(queue) > 0 {
			mustSee := queue[0]
			queue = queue[1:]
			block := fmt.Sprintf(`
%d. %s (10:00 – 12:00)

[A must-see location in the city]
Address: [Insert specific address for %s]
Transportation: [Insert transportation information]
`, i+1, mustSee, mustSee)
			day = strings.Replace(day, "Morning:", "Morning:"+block, 1)
		}
		parts[i] = fmt.Sprintf("Day %d:%s", i+1, day)
	}

	return strings.Join(parts, "\n\n")
}
