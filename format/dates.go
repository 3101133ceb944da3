package format

import "time"

const rangePart = "Jan 2, 3:04 PM"

// StartOfToday returns local midnight of the current day.
func StartOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// DaysFrom shifts t by the given number of calendar days.
func DaysFrom(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// Range renders a slot window, e.g. "Oct 12, 6:00 AM — Oct 12, 9:00 AM".
// The inputs are the backend's wire timestamps; anything unparsable is
// printed as-is rather than dropped.
func Range(start, end string) string {
	return wireTime(start, rangePart) + " — " + wireTime(end, rangePart)
}

// TimeOnly renders just the clock part of a wire timestamp.
func TimeOnly(value string) string {
	return wireTime(value, "3:04 PM")
}

// DayBadge renders the short weekday tag shown next to a slot.
func DayBadge(value string) string {
	return wireTime(value, "Mon, Jan 2")
}

func wireTime(value, layout string) string {
	t, err := ParseWire(value)
	if err != nil {
		return value
	}
	return t.Local().Format(layout)
}

// ParseWire parses the timestamp formats the backend emits.
func ParseWire(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
