// Package timeparse normalizes natural-language date and time references into
// canonical YYYY-MM-DD and 24h HH:MM strings. Both functions are pure in
// (reference, now) and always return a concrete value, never an error: an
// unparseable reference degrades to a sensible default rather than failing
// the request.
package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODate is the canonical date layout.
const ISODate = "2006-01-02"

// DefaultClock is returned when no time can be recovered from a reference.
const DefaultClock = "09:00"

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var (
	isoDateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dayMonthRe = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?\s*(?:of\s+)?([a-z]+)$`)
	monthDayRe = regexp.MustCompile(`^([a-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?$`)
	clockRe    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	ampmRe     = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)
	militaryRe = regexp.MustCompile(`^\d{4}$`)
)

// Date resolves ref against now and returns a YYYY-MM-DD string.
//
// Handled forms: literal ISO dates, "today"/"now", "yesterday", "tomorrow",
// bare weekday names (resolved to the next occurrence, where today's weekday
// means today, not a week out), and "<day> <month>" / "<month> <day>" with
// ordinal suffixes, rolled into next year once the date has passed. Anything
// else is handed to a generic parse and defaults to today.
func Date(ref string, now time.Time) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return now.Format(ISODate)
	}
	if isoDateRe.MatchString(ref) {
		return ref
	}

	lower := strings.ToLower(ref)
	switch lower {
	case "today", "now":
		return now.Format(ISODate)
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(ISODate)
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format(ISODate)
	}

	explicitNext := strings.HasPrefix(lower, "next ")
	if wd, ok := weekdays[strings.TrimPrefix(lower, "next ")]; ok {
		ahead := (int(wd) - int(now.Weekday()) + 7) % 7
		if explicitNext && ahead == 0 {
			ahead = 7
		}
		return now.AddDate(0, 0, ahead).Format(ISODate)
	}

	if m := dayMonthRe.FindStringSubmatch(lower); m != nil {
		if d, err := resolveDayMonth(m[1], m[2], now); err == nil {
			return d
		}
	}
	if m := monthDayRe.FindStringSubmatch(lower); m != nil {
		if d, err := resolveDayMonth(m[2], m[1], now); err == nil {
			return d
		}
	}

	for _, layout := range []string{"2006-01-02 15:04", "2006/01/02", "02-01-2006", "January 2, 2006", "2 January 2006"} {
		if t, err := time.Parse(layout, ref); err == nil {
			return t.Format(ISODate)
		}
	}
	return now.Format(ISODate)
}

// resolveDayMonth builds a date for the given day-of-month and month name in
// the current year, rolling to next year if the date is already behind now.
func resolveDayMonth(dayStr, monthStr string, now time.Time) (string, error) {
	month, ok := months[monthStr]
	if !ok {
		return "", fmt.Errorf("unknown month: %s", monthStr)
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return "", fmt.Errorf("invalid day: %s", dayStr)
	}
	target := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if target.Before(today) {
		target = target.AddDate(1, 0, 0)
	}
	return target.Format(ISODate), nil
}

// Clock normalizes a time reference to 24h "HH:MM".
//
// Handled forms: "HH:MM" pass-through, "H[:MM] am/pm" (12am is 00:00 and
// 12pm is 12:00), and bare four-digit "HHMM". Everything else falls back to
// DefaultClock.
func Clock(ref string) string {
	s := strings.ToLower(strings.TrimSpace(ref))
	if s == "" {
		return DefaultClock
	}

	if m := clockRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mi, _ := strconv.Atoi(m[2])
		if h < 24 && mi < 60 {
			return fmt.Sprintf("%02d:%s", h, m[2])
		}
		return DefaultClock
	}

	if m := ampmRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		minutes := m[2]
		if minutes == "" {
			minutes = "00"
		}
		mi, _ := strconv.Atoi(minutes)
		switch {
		case m[3] == "pm" && h != 12:
			h += 12
		case m[3] == "am" && h == 12:
			h = 0
		}
		if h < 24 && mi < 60 {
			return fmt.Sprintf("%02d:%s", h, minutes)
		}
		return DefaultClock
	}

	if militaryRe.MatchString(s) {
		h, _ := strconv.Atoi(s[:2])
		mi, _ := strconv.Atoi(s[2:])
		if h < 24 && mi < 60 {
			return s[:2] + ":" + s[2:]
		}
	}
	return DefaultClock
}

// DayName returns the weekday name for an ISO date string. Malformed input
// resolves against now.
func DayName(isoDate string, now time.Time) string {
	t, err := time.Parse(ISODate, isoDate)
	if err != nil {
		t = now
	}
	return t.Weekday().String()
}

// PlanWeek maps a calendar day to its week slot in the rotating meal plan:
// week = ceil(dayOfMonth / 7).
func PlanWeek(now time.Time) int {
	return (now.Day() + 6) / 7
}

// PlanDay maps a calendar day to its "Day N" slot within the plan week.
func PlanDay(now time.Time) string {
	return fmt.Sprintf("Day %d", (now.Day()-1)%7+1)
}
