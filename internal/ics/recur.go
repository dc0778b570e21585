package ics

import (
	"fmt"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	appLog "calfilter/internal/log"
)

// CheckRecurrence validates every RRULE on ev. Recurrences are passed
// through untouched; this only surfaces rules that calendar clients are
// likely to reject.
func CheckRecurrence(ev *ical.VEvent) error {
	for _, p := range ev.GetProperties(ical.ComponentPropertyRrule) {
		if _, err := rrule.StrToROption(p.Value); err != nil {
			return fmt.Errorf("RRULE %q: %w", p.Value, err)
		}
	}
	return nil
}

// InvalidRecurrences returns the UIDs of events in cal whose RRULE does not
// parse, logging each one as a warning.
func InvalidRecurrences(cal *ical.Calendar) []string {
	var uids []string
	for _, ev := range cal.Events() {
		if err := CheckRecurrence(ev); err != nil {
			uid := uidOf(ev)
			appLog.Warn("event has an unparseable recurrence rule", "uid", uid, "err", err)
			uids = append(uids, uid)
		}
	}
	return uids
}
