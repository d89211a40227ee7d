package designer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"Backend-Booking-Designer/src/models"

	"github.com/emersion/go-ical"
)

const calendarProductID = "-//Booking Designer//Availability//PT"

var ErrNoAvailability = errors.New("nenhum dia selecionado")

// rruleDays maps weekday keys onto RFC 5545 BYDAY codes.
var rruleDays = map[string]struct {
	code    string
	weekday time.Weekday
}{
	"seg": {"MO", time.Monday},
	"ter": {"TU", time.Tuesday},
	"qua": {"WE", time.Wednesday},
	"qui": {"TH", time.Thursday},
	"sex": {"FR", time.Friday},
	"sab": {"SA", time.Saturday},
	"dom": {"SU", time.Sunday},
}

// AvailabilityCalendar builds one weekly all-day event per enabled weekday.
func AvailabilityCalendar(sessionID string, b models.Blueprint, now time.Time) (*ical.Calendar, error) {
	days := weekdayKeysInOrder(b.Weekdays)
	if len(days) == 0 {
		return nil, ErrNoAvailability
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, calendarProductID)

	title := orDefault(b.Title, titleFallback)
	for _, key := range days {
		day := rruleDays[key]
		start := nextWeekday(now, day.weekday)

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%s@booking-designer", sessionID, key))
		event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
		event.Props.SetDate(ical.PropDateTimeStart, start)
		event.Props.SetDate(ical.PropDateTimeEnd, start.AddDate(0, 0, 1))
		event.Props.SetText(ical.PropSummary, title)
		if b.Description != "" {
			event.Props.SetText(ical.PropDescription, b.Description)
		}

		rule := ical.NewProp(ical.PropRecurrenceRule)
		rule.Value = "FREQ=WEEKLY;BYDAY=" + day.code
		event.Props.Set(rule)

		cal.Children = append(cal.Children, event.Component)
	}
	return cal, nil
}

// ExportAvailability writes the session's availability as an .ics document.
func (s *Service) ExportAvailability(ctx context.Context, sessionID string, w io.Writer) error {
	st := s.State(ctx, sessionID)
	cal, err := AvailabilityCalendar(sessionID, st.Blueprint, s.now())
	if err != nil {
		return err
	}
	return ical.NewEncoder(w).Encode(cal)
}

func weekdayKeysInOrder(keys []string) []string {
	selected := weekdaySet(keys)
	out := make([]string, 0, len(selected))
	for _, key := range models.WeekdayKeys() {
		if selected[key] {
			out = append(out, key)
		}
	}
	return out
}

// nextWeekday returns the date of the first wd on or after now, at midnight.
func nextWeekday(now time.Time, wd time.Weekday) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	offset := (int(wd) - int(day.Weekday()) + 7) % 7
	return day.AddDate(0, 0, offset)
}
