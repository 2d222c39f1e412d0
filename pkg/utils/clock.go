package utils

import (
	"fmt"
	"strings"
)

// Clock helpers for the itinerary grammar. Times inside generated text show
// up in two shapes depending on the prompt locale: 24-hour "14:30" and
// 12-hour "2:30 PM". Both are normalized to minutes since midnight.

const minutesPerDay = 24 * 60

// ParseClock parses "HH:MM", "H:MM", "H:MM AM" or "H:MM PM" into minutes
// since midnight. Returns false for anything else.
func ParseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	meridiem := ""
	upper := strings.ToUpper(s)
	for _, suffix := range []string{"AM", "PM", "A.M.", "P.M."} {
		if strings.HasSuffix(upper, suffix) {
			meridiem = suffix[:1]
			s = strings.TrimSpace(s[:len(s)-len(suffix)])
			break
		}
	}

	colon := strings.IndexByte(s, ':')
	if colon <= 0 || colon == len(s)-1 {
		return 0, false
	}
	hour, ok := parseDigits(s[:colon])
	if !ok {
		return 0, false
	}
	minutePart := s[colon+1:]
	if len(minutePart) != 2 {
		return 0, false
	}
	minute, ok := parseDigits(minutePart)
	if !ok || minute > 59 {
		return 0, false
	}

	switch meridiem {
	case "A":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "P":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return 0, false
		}
	}

	return hour*60 + minute, true
}

// FormatClock renders minutes since midnight as canonical 24-hour "HH:MM".
func FormatClock(minutes int) string {
	minutes %= minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ClockRangeDuration returns the span between two clock readings in minutes,
// wrapping past midnight when the end reads earlier than the start.
func ClockRangeDuration(start, end int) int {
	if end < start {
		end += minutesPerDay
	}
	return end - start
}

func parseDigits(s string) (int, bool) {
	if s == "" || len(s) > 2 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}
