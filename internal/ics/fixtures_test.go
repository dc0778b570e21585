package ics

import (
	"strings"
)

const longDescription = "Introduction to algorithms and data structures. Bring a laptop and the printed lecture notes from the course website."

func crlf(lines ...string) string {
	return strings.Join(lines, "\r\n") + "\r\n"
}

func event(uid, summary string, extra ...string) []string {
	lines := []string{
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:20250101T000000Z",
		"DTSTART;TZID=Europe/Berlin:20250106T100000",
		"DTEND;TZID=Europe/Berlin:20250106T110000",
	}
	if summary != "" {
		lines = append(lines, "SUMMARY:"+summary)
	}
	lines = append(lines, extra...)
	return append(lines, "END:VEVENT")
}

func calendar(events ...[]string) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//University//Course Calendar//EN",
		"CALSCALE:GREGORIAN",
		"X-WR-CALNAME:CS101",
		"X-WR-TIMEZONE:Europe/Berlin",
		"X-PUBLISHED-TTL:PT1H",
		"BEGIN:VTIMEZONE",
		"TZID:Europe/Berlin",
		"BEGIN:STANDARD",
		"DTSTART:19701025T030000",
		"TZOFFSETFROM:+0200",
		"TZOFFSETTO:+0100",
		"END:STANDARD",
		"END:VTIMEZONE",
	}
	for _, ev := range events {
		lines = append(lines, ev...)
	}
	lines = append(lines, "END:VCALENDAR")
	return crlf(lines...)
}

// courseFeed has three events, two of which mention office hours.
func courseFeed() string {
	return calendar(
		event("oh-mon@example.com", "Office Hours - Monday", "RRULE:FREQ=WEEKLY;BYDAY=MO"),
		event("lecture-1@example.com", "Lecture 1",
			"DESCRIPTION:"+longDescription,
			"BEGIN:VALARM",
			"ACTION:DISPLAY",
			"DESCRIPTION:Reminder",
			"TRIGGER:-PT15M",
			"END:VALARM",
		),
		event("oh-extra@example.com", "office hours (extra)"),
	)
}
