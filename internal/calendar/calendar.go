package calendar

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// SummaryFormatter produces the event title for a contact turning age.
// Injecting it keeps localized strings out of the generation logic.
type SummaryFormatter func(name string, age int) string

// Generator converts a book's birthdays into an iCalendar object.
type Generator struct {
	Clock           addressbook.Clock
	FormatSummary   SummaryFormatter
	ReminderTrigger string // ISO8601 duration (e.g. "-P1D"); empty disables alarms
}

// Generate builds the full iCalendar document for the book. Each birthday
// yields one all-day event per year in a three-year window around today, so
// calendar apps show entries when scrolled either way.
func (g *Generator) Generate(ctx context.Context, book *addressbook.Book) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := g.Clock.Now()

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Stamp in UTC; event dates themselves stay in local calendar terms,
	// since a birthday is the person's local date, not a UTC instant.
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	stats := struct{ total, withBday, events int }{0, 0, 0}

	for _, rec := range book.Records() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stats.total++

		birthday, ok := rec.Birthday()
		if !ok {
			continue
		}
		stats.withBday++

		events := g.createEvents(rec.Name(), birthday.Time(), now)
		stats.events += len(events)

		for _, e := range events {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	// An empty book still yields a valid calendar object.
	if len(cal.Children) == 0 {
		g.logSuccess(stats)
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	g.logSuccess(stats)
	return buf.Bytes(), nil
}

// logSuccess logs the final statistics of the generation run.
func (g *Generator) logSuccess(stats struct{ total, withBday, events int }) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompCalendar,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.total),
			slog.Int(config.LogKeyFound, stats.withBday),
			slog.Int(config.LogKeyEvents, stats.events),
		),
	)
}

// createEvents generates events for the previous, current, and next year,
// skipping years before the person was born.
func (g *Generator) createEvents(name string, birthDate time.Time, now time.Time) []*ical.Event {
	currentYear := now.Year()
	targetYears := []int{currentYear - 1, currentYear, currentYear + 1}
	loc := now.Location()

	uidBase := eventUID(name, birthDate)

	var events []*ical.Event
	for _, y := range targetYears {
		if y < birthDate.Year() {
			continue
		}

		age := y - birthDate.Year()

		summary := fmt.Sprintf(config.FallbackSummaryAge, name, age)
		if age == 0 {
			summary = fmt.Sprintf(config.FallbackSummaryBirth, name)
		}
		if g.FormatSummary != nil {
			summary = g.FormatSummary(name, age)
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))
		event.Props.SetText(config.PropSummary, summary)

		// time.Date normalization applies here too: a Feb 29 birthday lands
		// on Mar 1 in non-leap years.
		eventDate := time.Date(y, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		if g.ReminderTrigger != "" {
			addAlarm(event, g.ReminderTrigger, summary)
		}

		events = append(events, event)
	}
	return events
}

// eventUID derives a stable identifier from the contact's name and birth
// date, so repeated exports keep the same event identities.
func eventUID(name string, birthDate time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput, name, birthDate.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid a VALUE=TEXT param.
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
