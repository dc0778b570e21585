package ics

import (
	"strings"

	ical "github.com/arran4/golang-ical"

	appLog "calfilter/internal/log"
	"calfilter/internal/model"
)

const eventTag = "VEVENT"

// Result is the outcome of Filter.
type Result struct {
	Calendar *ical.Calendar

	Total    int
	Filtered []model.Event
}

// Kept is the number of events in Result.Calendar.
func (r Result) Kept() int {
	return r.Total - len(r.Filtered)
}

// Filter builds a new calendar from src without the events whose SUMMARY
// contains keyword (case-insensitive substring match).
//
//   - Top-level properties are copied unchanged, in order. Nothing is added.
//   - Kept VEVENTs are the source components themselves, so every property
//     and nested VALARM survives.
//   - VTIMEZONE components are carried over so kept events can still
//     resolve their TZIDs. Other component types are dropped.
//   - An empty keyword filters nothing.
//
// src is not modified.
func Filter(src *ical.Calendar, keyword string) Result {
	out := &ical.Calendar{
		Components:         []ical.Component{},
		CalendarProperties: []ical.CalendarProperty{},
	}
	res := Result{Calendar: out}

	for _, p := range src.CalendarProperties {
		if strings.ToUpper(p.IANAToken) == eventTag {
			continue
		}
		out.CalendarProperties = append(out.CalendarProperties, p)
	}

	needle := strings.ToUpper(keyword)

	for _, comp := range src.Components {
		switch c := comp.(type) {
		case *ical.VEvent:
			res.Total++
			summary := summaryOf(c)
			if needle != "" && strings.Contains(strings.ToUpper(summary), needle) {
				res.Filtered = append(res.Filtered, model.Event{UID: uidOf(c), Summary: summary})
				appLog.Info("event filtered", "summary", summary)
				continue
			}
			out.Components = append(out.Components, c)
		case *ical.VTimezone:
			out.Components = append(out.Components, c)
		default:
			appLog.Debug("dropping non-event component", "type", componentName(comp))
		}
	}

	appLog.Info("filter completed",
		"keyword", keyword,
		"total", res.Total,
		"filtered", len(res.Filtered),
		"kept", res.Kept(),
	)

	return res
}

func componentName(c ical.Component) string {
	switch c.(type) {
	case *ical.VTodo:
		return "VTODO"
	case *ical.VJournal:
		return "VJOURNAL"
	case *ical.VBusy:
		return "VFREEBUSY"
	default:
		return "unknown"
	}
}
