package addressbook

import (
	"strings"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Book is the owning, ordered collection of contact records.
// Insertion order is preserved; duplicate names are permitted and lookups
// return the first match.
type Book struct {
	records []*Record
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{}
}

// Add appends a record to the book. No uniqueness check is performed.
func (b *Book) Add(record *Record) {
	b.records = append(b.records, record)
}

// Records returns the records in insertion order.
func (b *Book) Records() []*Record {
	return b.records
}

// Len returns the number of records.
func (b *Book) Len() int {
	return len(b.records)
}

// Find returns the first record whose name matches case-insensitively,
// or nil when no record matches. Absence is not an error.
func (b *Book) Find(name string) *Record {
	for _, r := range b.records {
		if strings.EqualFold(r.Name(), name) {
			return r
		}
	}
	return nil
}

// Greeting pairs a contact name with the formatted occurrence date of its
// next birthday.
type Greeting struct {
	Name string
	Date string
}

// UpcomingBirthdays returns, in book order, every contact whose next birthday
// occurrence falls within [today, today+horizonDays] inclusive. The time
// component of today is ignored. A February 29 birthday projected onto a
// non-leap year normalizes to March 1.
func (b *Book) UpcomingBirthdays(today time.Time, horizonDays int) []Greeting {
	loc := today.Location()
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	horizon := todayStart.AddDate(0, 0, horizonDays)

	var upcoming []Greeting
	for _, r := range b.records {
		birthday, ok := r.Birthday()
		if !ok {
			continue
		}

		occurrence := nextOccurrence(todayStart, birthday.Time())
		if occurrence.After(horizon) {
			continue
		}

		upcoming = append(upcoming, Greeting{
			Name: r.Name(),
			Date: occurrence.Format(config.DateFormatUpcoming),
		})
	}
	return upcoming
}

// nextOccurrence projects the birthday's month/day onto the current year,
// rolling to the next year when the projection lies strictly before
// todayStart. time.Date normalizes out-of-range days, which maps Feb 29 to
// Mar 1 in non-leap years.
func nextOccurrence(todayStart, birthDate time.Time) time.Time {
	loc := todayStart.Location()
	candidate := time.Date(todayStart.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)
	if candidate.Before(todayStart) {
		candidate = time.Date(todayStart.Year()+1, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)
	}
	return candidate
}
