package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"tripweaver/internal/models/response_models"
	"tripweaver/pkg/utils"
)

// The itinerary grammar. Generated text is segmented into days on
// "Day <n>:" header lines, days into Morning/Afternoon/Evening sections plus
// Lunch/Dinner meal blocks, and sections into numbered activity blocks.
// The same line classifiers are used by the parser, the validator and the
// repair pass so the three can never disagree about where a boundary is.

const (
	placeholderActivityName = "Activity not specified"
	placeholderActivityDesc = "The generated plan did not include a specific activity for this part of the day."
)

// parseDayHeader reports whether a line opens a new day segment
// ("Day <integer>:") and returns the remainder of the line after the colon.
func parseDayHeader(line string) (string, bool) {
	t := strings.TrimSpace(line)
	if !strings.HasPrefix(t, "Day ") {
		return "", false
	}
	rest := t[len("Day "):]
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(rest) || rest[i] != ':' {
		return "", false
	}
	return rest[i+1:], true
}

// parseActivityMarker reports whether a line opens a numbered activity block
// ("<integer>." followed by whitespace) and returns the name line after the
// marker. The whitespace requirement keeps decimals like "2.5 km" in
// descriptions from counting as activities.
func parseActivityMarker(line string) (string, bool) {
	t := strings.TrimSpace(line)
	i := 0
	for i < len(t) && t[i] >= '0' && t[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(t) || t[i] != '.' {
		return "", false
	}
	rest := t[i+1:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// splitDays segments raw text into day bodies. Text before the first day
// header is discarded. Each segment starts with whatever followed the
// header's colon, so "Day %d:%s" reassembly round-trips.
func splitDays(text string) []string {
	var segments []string
	var current []string
	seen := false

	for _, line := range strings.Split(text, "\n") {
		if rest, ok := parseDayHeader(line); ok {
			if seen {
				segments = append(segments, strings.Join(current, "\n"))
			}
			seen = true
			current = []string{rest}
			continue
		}
		if seen {
			current = append(current, line)
		}
	}
	if seen {
		segments = append(segments, strings.Join(current, "\n"))
	}
	return segments
}

// FormatItinerary truncates raw generated text to at most numDays day
// segments and relabels them Day 1..N in order.
func FormatItinerary(text string, numDays int) string {
	segments := splitDays(text)
	if len(segments) > numDays {
		segments = segments[:numDays]
	}
	parts := make([]string, len(segments))
	for i, segment := range segments {
		parts[i] = fmt.Sprintf("Day %d:%s", i+1, segment)
	}
	return strings.Join(parts, "\n\n")
}

func countActivityMarkers(segment string) int {
	count := 0
	for _, line := range strings.Split(segment, "\n") {
		if _, ok := parseActivityMarker(line); ok {
			count++
		}
	}
	return count
}

// ExtractActivityNames returns the display names of every numbered activity
// in the text, time expressions stripped. The streaming generator feeds
// these back to the model to avoid repeats.
func ExtractActivityNames(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		rest, ok := parseActivityMarker(line)
		if !ok {
			continue
		}
		name, _, _, _, _ := stripTimeExpression(rest)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// stripTimeExpression removes a parenthesized clock range from a name line.
// Both "(09:00 – 11:00)" and "(9:00 AM – 11:00 AM)" occur depending on the
// prompt locale; both must parse. Parentheses that do not contain a clock
// range stay part of the name.
func stripTimeExpression(nameLine string) (name, start, end string, duration int, ok bool) {
	for open := strings.LastIndexByte(nameLine, '('); open >= 0; open = strings.LastIndexByte(nameLine[:open], '(') {
		closing := strings.IndexByte(nameLine[open:], ')')
		if closing < 0 {
			continue
		}
		closing += open
		if s, e, d, valid := parseClockRange(nameLine[open+1 : closing]); valid {
			name = strings.TrimSpace(strings.TrimSpace(nameLine[:open]) + " " + strings.TrimSpace(nameLine[closing+1:]))
			return name, s, e, d, true
		}
	}
	return strings.TrimSpace(nameLine), "", "", 0, false
}

// parseClockRange parses "start – end" with an en dash, em dash or hyphen
// separator. Times are normalized to 24-hour "HH:MM".
func parseClockRange(inner string) (start, end string, duration int, ok bool) {
	var left, right string
	for _, sep := range []string{"–", "—", "-"} {
		if i := strings.Index(inner, sep); i >= 0 {
			left, right = inner[:i], inner[i+len(sep):]
			break
		}
	}
	if left == "" && right == "" {
		return "", "", 0, false
	}
	startMin, okStart := utils.ParseClock(left)
	endMin, okEnd := utils.ParseClock(right)
	if !okStart || !okEnd {
		return "", "", 0, false
	}
	return utils.FormatClock(startMin), utils.FormatClock(endMin), utils.ClockRangeDuration(startMin, endMin), true
}

// line classification inside a day segment

type spanKey string

const (
	spanMorning   spanKey = response_models.SectionMorning
	spanAfternoon spanKey = response_models.SectionAfternoon
	spanEvening   spanKey = response_models.SectionEvening
	spanLunch     spanKey = "Lunch"
	spanDinner    spanKey = "Dinner"
)

// parseSectionHeader matches "Morning:", "Afternoon:" or "Evening:"
// (case-insensitive) at the start of a line.
func parseSectionHeader(line string) (spanKey, string, bool) {
	t := strings.TrimSpace(line)
	lower := strings.ToLower(t)
	for _, key := range []spanKey{spanMorning, spanAfternoon, spanEvening} {
		prefix := strings.ToLower(string(key)) + ":"
		if strings.HasPrefix(lower, prefix) {
			return key, strings.TrimSpace(t[len(prefix):]), true
		}
	}
	return "", "", false
}

// parseMealHeader matches "Lunch:" / "Dinner:" with an optional
// parenthesized time expression before the colon, e.g.
// "Lunch (12:00 – 13:30):". A bare label with nothing after it also counts:
// an unmatched "Dinner" line must still bound the Evening span so dinner
// text is not swallowed into Evening's activity list.
func parseMealHeader(line string) (key spanKey, timeExpr, rest string, ok bool) {
	t := strings.TrimSpace(line)
	lower := strings.ToLower(t)
	for _, candidate := range []spanKey{spanLunch, spanDinner} {
		name := strings.ToLower(string(candidate))
		if !strings.HasPrefix(lower, name) {
			continue
		}
		remainder := strings.TrimSpace(t[len(name):])
		if strings.HasPrefix(remainder, "(") {
			closing := strings.IndexByte(remainder, ')')
			if closing < 0 {
				continue
			}
			timeExpr = remainder[1:closing]
			remainder = strings.TrimSpace(remainder[closing+1:])
		}
		if remainder == "" {
			return candidate, timeExpr, "", true
		}
		if !strings.HasPrefix(remainder, ":") {
			timeExpr = ""
			continue
		}
		return candidate, timeExpr, strings.TrimSpace(remainder[1:]), true
	}
	return "", "", "", false
}

// daySpans slices a day segment into labelled spans. Every recognized header
// (section or meal) closes the previous span, so a trailing "Dinner" label
// bounds the Evening span instead of being swallowed by it.
type daySpans struct {
	lines    map[spanKey][]string
	mealTime map[spanKey]string
}

func splitDaySpans(segment string) daySpans {
	spans := daySpans{
		lines:    make(map[spanKey][]string),
		mealTime: make(map[spanKey]string),
	}
	var current spanKey

	for _, line := range strings.Split(segment, "\n") {
		if key, rest, ok := parseSectionHeader(line); ok {
			current = key
			if rest != "" {
				spans.lines[current] = append(spans.lines[current], rest)
			}
			continue
		}
		if key, timeExpr, rest, ok := parseMealHeader(line); ok {
			current = key
			spans.mealTime[key] = timeExpr
			if rest != "" {
				spans.lines[current] = append(spans.lines[current], rest)
			}
			continue
		}
		if current != "" {
			spans.lines[current] = append(spans.lines[current], line)
		}
	}
	return spans
}

// ParseItinerary converts one raw multi-day text block into the structured
// document model. At most numDays segments are consumed; a shortfall is
// visible to the caller through the returned length and is never padded
// here.
func ParseItinerary(raw string, numDays int) []response_models.ItineraryDay {
	segments := splitDays(raw)
	if len(segments) > numDays {
		segments = segments[:numDays]
	}
	days := make([]response_models.ItineraryDay, len(segments))
	for i, segment := range segments {
		days[i] = parseDay(i+1, segment)
	}
	return days
}

func parseDay(dayNumber int, segment string) response_models.ItineraryDay {
	spans := splitDaySpans(segment)

	morning := parseNumberedActivities(spans.lines[spanMorning])
	afternoon := parseNumberedActivities(spans.lines[spanAfternoon])
	evening := parseNumberedActivities(spans.lines[spanEvening])

	if lunch := parseMealBlock(spans.lines[spanLunch], spans.mealTime[spanLunch]); lunch != nil {
		morning = append(morning, *lunch)
	}
	if dinner := parseMealBlock(spans.lines[spanDinner], spans.mealTime[spanDinner]); dinner != nil {
		evening = append(evening, *dinner)
	}

	return response_models.ItineraryDay{
		DayNumber: dayNumber,
		Sections: []response_models.ItinerarySection{
			{Title: response_models.SectionMorning, Activities: ensureActivities(morning)},
			{Title: response_models.SectionAfternoon, Activities: ensureActivities(afternoon)},
			{Title: response_models.SectionEvening, Activities: ensureActivities(evening)},
		},
	}
}

func ensureActivities(activities []response_models.ItineraryActivity) []response_models.ItineraryActivity {
	if len(activities) > 0 {
		return activities
	}
	return []response_models.ItineraryActivity{{
		Name:        placeholderActivityName,
		Description: placeholderActivityDesc,
	}}
}

// parseNumberedActivities splits a section span on activity markers. Text
// before the first marker belongs to no activity and is dropped.
func parseNumberedActivities(lines []string) []response_models.ItineraryActivity {
	var activities []response_models.ItineraryActivity
	var current *response_models.ItineraryActivity

	for _, line := range lines {
		if nameLine, ok := parseActivityMarker(line); ok {
			if current != nil {
				activities = append(activities, *current)
			}
			name, start, end, duration, hasTime := stripTimeExpression(nameLine)
			current = &response_models.ItineraryActivity{Name: name}
			if hasTime {
				current.StartTime = start
				current.EndTime = end
				current.DurationMinutes = duration
			}
			continue
		}
		if current == nil {
			continue
		}
		applyDetailLine(current, line)
	}
	if current != nil {
		activities = append(activities, *current)
	}
	return activities
}

// applyDetailLine routes a non-marker line into the activity's address,
// transportation or description. The first address/transportation line wins;
// repeats fall through to the description.
func applyDetailLine(activity *response_models.ItineraryActivity, line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}
	lower := strings.ToLower(trimmed)

	if idx := strings.Index(lower, "address:"); idx >= 0 && activity.Address == "" {
		activity.Address = strings.TrimSpace(trimmed[idx+len("address:"):])
		return
	}
	if idx := strings.Index(lower, "transportation:"); idx >= 0 && activity.Transportation == "" {
		activity.Transportation = strings.TrimSpace(trimmed[idx+len("transportation:"):])
		return
	}
	if activity.Description == "" {
		activity.Description = trimmed
	} else {
		activity.Description += "\n" + trimmed
	}
}

// parseMealBlock turns a Lunch/Dinner span into a single activity. The first
// non-empty line is the venue name; the rest is scanned like any activity
// block. Returns nil when the span is empty.
func parseMealBlock(lines []string, timeExpr string) *response_models.ItineraryActivity {
	var activity *response_models.ItineraryActivity
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if activity == nil {
			name, start, end, duration, hasTime := stripTimeExpression(trimmed)
			activity = &response_models.ItineraryActivity{Name: name}
			if hasTime {
				activity.StartTime = start
				activity.EndTime = end
				activity.DurationMinutes = duration
			}
			continue
		}
		applyDetailLine(activity, line)
	}
	if activity == nil {
		return nil
	}
	if activity.StartTime == "" && timeExpr != "" {
		if start, end, duration, ok := parseClockRange(timeExpr); ok {
			activity.StartTime = start
			activity.EndTime = end
			activity.DurationMinutes = duration
		}
	}
	return activity
}

// NormalizeItinerary accepts the three content shapes that reach the
// presentation layer: raw generated text, an already structured day list
// (saved itineraries), or a keyed map of day-like entries. Anything else is
// an explicit error rather than a silent empty result, so callers decide
// whether to degrade.
func NormalizeItinerary(content interface{}, numDays int) ([]response_models.ItineraryDay, error) {
	switch v := content.(type) {
	case string:
		return ParseItinerary(v, numDays), nil
	case []response_models.ItineraryDay:
		return normalizeDays(v, numDays), nil
	case []interface{}:
		days, err := coerceDays(v)
		if err != nil {
			return nil, err
		}
		return normalizeDays(days, numDays), nil
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		entries := make([]interface{}, 0, len(keys))
		for _, key := range keys {
			entries = append(entries, v[key])
		}
		days, err := coerceDays(entries)
		if err != nil {
			return nil, err
		}
		return normalizeDays(days, numDays), nil
	default:
		return nil, utils.ErrUnrecognizedItineraryShape
	}
}

// coerceDays round-trips loosely typed day entries through JSON into the
// document model.
func coerceDays(entries []interface{}) ([]response_models.ItineraryDay, error) {
	encoded, err := json.Marshal(entries)
	if err != nil {
		return nil, utils.ErrUnrecognizedItineraryShape
	}
	var days []response_models.ItineraryDay
	if err := json.Unmarshal(encoded, &days); err != nil {
		return nil, utils.ErrUnrecognizedItineraryShape
	}
	return days, nil
}

// normalizeDays renumbers days positionally and restores the structural
// invariants: three canonical sections per day, at least one activity per
// section.
func normalizeDays(days []response_models.ItineraryDay, numDays int) []response_models.ItineraryDay {
	if numDays > 0 && len(days) > numDays {
		days = days[:numDays]
	}
	out := make([]response_models.ItineraryDay, len(days))
	for i, day := range days {
		normalized := response_models.ItineraryDay{DayNumber: i + 1}
		if len(day.Sections) == 0 {
			normalized.Sections = []response_models.ItinerarySection{
				{Title: response_models.SectionMorning, Activities: ensureActivities(nil)},
				{Title: response_models.SectionAfternoon, Activities: ensureActivities(nil)},
				{Title: response_models.SectionEvening, Activities: ensureActivities(nil)},
			}
		} else {
			normalized.Sections = make([]response_models.ItinerarySection, len(day.Sections))
			for j, section := range day.Sections {
				normalized.Sections[j] = response_models.ItinerarySection{
					Title:      section.Title,
					Activities: ensureActivities(section.Activities),
				}
			}
		}
		out[i] = normalized
	}
	return out
}
