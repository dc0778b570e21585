package model

// Event is the minimal identity of a calendar event used for reporting.
type Event struct {
	UID     string
	Summary string
}

// Report summarizes one fetch → filter → write run.
type Report struct {
	// CalendarName is X-WR-CALNAME of the source feed, if any.
	CalendarName string

	TotalEvents    int
	FilteredEvents int

	// Filtered lists the events that were dropped, in source order.
	Filtered []Event

	// InvalidRecurrences lists UIDs of kept events whose RRULE did not parse.
	InvalidRecurrences []string

	OutputPath string
	BytesOut   int
}

// KeptEvents is the number of events written to the output calendar.
func (r Report) KeptEvents() int {
	return r.TotalEvents - r.FilteredEvents
}
