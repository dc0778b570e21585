package ics

import (
	"bytes"
	"errors"
	"strings"

	ical "github.com/arran4/golang-ical"

	appLog "calfilter/internal/log"
)

// Metadata is a typed view of a calendar's top-level properties.
// Well-known properties get a field; everything else lands in Extra,
// keyed by the uppercased property name.
type Metadata struct {
	ProductID   string
	Version     string
	CalScale    string
	Method      string
	Name        string // X-WR-CALNAME
	Description string // X-WR-CALDESC
	Timezone    string // X-WR-TIMEZONE

	Extra map[string]string
}

// Parse parses a single ICS payload. Either the whole document parses or
// a *ParseError is returned.
func Parse(body []byte) (*ical.Calendar, error) {
	body = bytes.TrimPrefix(body, utf8BOM)
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &ParseError{Err: errors.New("empty ICS body")}
	}
	if !startsWithVCalendar(body) {
		return nil, &ParseError{Err: errors.New("payload does not start with BEGIN:VCALENDAR")}
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	appLog.Info("ics parse completed",
		"properties", len(cal.CalendarProperties),
		"components", len(cal.Components),
		"event_count", len(cal.Events()),
	)
	return cal, nil
}

var utf8BOM = []byte("\xef\xbb\xbf")

const beginVCalendar = "BEGIN:VCALENDAR"

// startsWithVCalendar checks the first non-blank line. An HTML error page
// served with a 200 status must not be accepted as a calendar. Only the
// leading bytes are inspected, so the first line may be arbitrarily long.
func startsWithVCalendar(body []byte) bool {
	body = bytes.TrimLeft(body, " \t\r\n")
	if len(body) < len(beginVCalendar) || !strings.EqualFold(string(body[:len(beginVCalendar)]), beginVCalendar) {
		return false
	}
	rest := bytes.TrimLeft(body[len(beginVCalendar):], " \t")
	return len(rest) == 0 || rest[0] == '\r' || rest[0] == '\n'
}

// MetadataOf extracts the top-level properties of cal.
func MetadataOf(cal *ical.Calendar) Metadata {
	md := Metadata{Extra: map[string]string{}}
	if cal == nil {
		return md
	}

	for _, p := range cal.CalendarProperties {
		key := strings.ToUpper(p.IANAToken)
		switch key {
		case string(ical.PropertyProductId):
			md.ProductID = p.Value
		case string(ical.PropertyVersion):
			md.Version = p.Value
		case string(ical.PropertyCalscale):
			md.CalScale = p.Value
		case string(ical.PropertyMethod):
			md.Method = p.Value
		case string(ical.PropertyXWRCalName):
			md.Name = p.Value
		case string(ical.PropertyXWRCalDesc):
			md.Description = p.Value
		case string(ical.PropertyXWRTimezone):
			md.Timezone = p.Value
		default:
			md.Extra[key] = p.Value
		}
	}

	return md
}

// summaryOf returns the SUMMARY of ev, or "" when absent.
func summaryOf(ev *ical.VEvent) string {
	if p := ev.GetProperty(ical.ComponentPropertySummary); p != nil {
		return p.Value
	}
	return ""
}

func uidOf(ev *ical.VEvent) string {
	if p := ev.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		return p.Value
	}
	return ""
}
