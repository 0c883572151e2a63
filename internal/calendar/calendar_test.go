package calendar_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/calendar"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func bookWith(t *testing.T, name, phone, bday string) *addressbook.Book {
	t.Helper()
	book := addressbook.NewBook()
	rec := addressbook.NewRecord(name)
	require.NoError(t, rec.AddPhone(phone))
	if bday != "" {
		require.NoError(t, rec.AddBirthday(bday))
	}
	book.Add(rec)
	return book
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestGenerate_YearRange(t *testing.T) {
	// Scenario: Verify that we generate events for Prev Year, Current Year,
	// Next Year (Total 3). Current Date: 2025-01-01. Birth: 1990-12-31.
	book := bookWith(t, "Range Test", "1234567890", "31.12.1990")

	gen := &calendar.Generator{
		Clock: MockClock{CurrentTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	icsData, err := gen.Generate(context.Background(), book)
	assert.NoError(t, err)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "BEGIN:VCALENDAR", "Should start with VCALENDAR")

	// Verify events for 2024, 2025, 2026
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20241231", "Should include previous year")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20251231", "Should include current year")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20261231", "Should include next year")

	// Should generate exactly 3 events
	assert.Equal(t, 3, strings.Count(icsStr, "BEGIN:VEVENT"), "Should generate exactly 3 events (Prev, Curr, Next)")
}

func TestGenerate_BabyBornThisYear(t *testing.T) {
	// Scenario: Baby born on 2025-05-01. Current date is 2025-01-01.
	// Expected: 2024 (skipped), 2025 (birth), 2026 (1 year).
	book := bookWith(t, "Baby", "1234567890", "01.05.2025")

	gen := &calendar.Generator{
		Clock: MockClock{CurrentTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	icsData, err := gen.Generate(context.Background(), book)
	assert.NoError(t, err)

	icsStr := string(icsData)

	// Check 2024 (should NOT exist)
	assert.NotContains(t, icsStr, "DTSTART;VALUE=DATE:20240501", "Should NOT generate event before birth")

	// Check 2025 (birth) and 2026 (1 year old) with the fallback summaries
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20250501")
	assert.Contains(t, icsStr, "SUMMARY:Birthday: Baby (birth)", "Should indicate birth event")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20260501")
	assert.Contains(t, icsStr, "SUMMARY:Birthday: Baby (1)", "Should indicate 1 year old")

	// Should generate exactly 2 events (2025, 2026), skipping 2024
	assert.Equal(t, 2, strings.Count(icsStr, "BEGIN:VEVENT"))
}

func TestGenerate_FutureBirth(t *testing.T) {
	// Scenario: Due date is in 2027. Current date is 2025.
	// Should not generate any events for 2024, 2025, 2026.
	book := bookWith(t, "Future Baby", "1234567890", "01.01.2027")

	gen := &calendar.Generator{
		Clock: MockClock{CurrentTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	icsData, err := gen.Generate(context.Background(), book)
	assert.NoError(t, err)

	icsStr := string(icsData)
	assert.NotContains(t, icsStr, "BEGIN:VEVENT", "Should generate no events for unborn person in future years")
	assert.Contains(t, icsStr, "BEGIN:VCALENDAR", "Empty calendar should still be valid")
}

func TestGenerate_LeapDayNormalization(t *testing.T) {
	// Scenario: A contact born on Feb 29th (Leapling). In a non-leap year the
	// event lands on March 1st via time.Date normalization; in a leap year it
	// stays on Feb 29th.
	book := bookWith(t, "Leap Baby", "1234567890", "29.02.2000")

	// Current year 2025 -> window is 2024 (leap), 2025, 2026 (non-leap).
	gen := &calendar.Generator{
		Clock: MockClock{CurrentTime: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	icsData, err := gen.Generate(context.Background(), book)
	assert.NoError(t, err)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20240229", "Leap year keeps Feb 29")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20250301", "Non-leap year normalizes to Mar 1")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20260301", "Non-leap year normalizes to Mar 1")
}

func TestGenerate_EmptyBook_ReturnsStub(t *testing.T) {
	// Scenario: Nothing to export. A valid VCALENDAR stub is still returned so
	// clients never see an empty or invalid file.
	gen := &calendar.Generator{
		Clock: MockClock{CurrentTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	icsData, err := gen.Generate(context.Background(), addressbook.NewBook())
	assert.NoError(t, err)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "BEGIN:VCALENDAR")
	assert.Contains(t, icsStr, "END:VCALENDAR")
	assert.NotContains(t, icsStr, "BEGIN:VEVENT")
}

func TestGenerate_RecordsWithoutBirthday_ReturnStub(t *testing.T) {
	// Scenario: Contacts exist but none has a birthday set.
	book := bookWith(t, "No Birthday", "1234567890", "")

	gen := &calendar.Generator{
		Clock: MockClock{CurrentTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	icsData, err := gen.Generate(context.Background(), book)
	assert.NoError(t, err)
	assert.NotContains(t, string(icsData), "BEGIN:VEVENT")
}

func TestGenerate_WithReminders(t *testing.T) {
	// Scenario: A 1-day reminder is requested for every event.
	book := bookWith(t, "Alarm Test", "1234567890", "01.01.1990")

	gen := &calendar.Generator{
		Clock:           MockClock{CurrentTime: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		ReminderTrigger: "-P1D",
	}

	icsData, err := gen.Generate(context.Background(), book)
	assert.NoError(t, err)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "BEGIN:VALARM", "ICS should contain an alarm component")
	assert.Contains(t, icsStr, "TRIGGER:-P1D", "Alarm trigger should match configuration")
	assert.Contains(t, icsStr, "ACTION:DISPLAY", "Alarm action should be DISPLAY")

	// One alarm per event
	assert.Equal(t, strings.Count(icsStr, "BEGIN:VEVENT"), strings.Count(icsStr, "BEGIN:VALARM"))
}

func TestGenerate_NoReminderTrigger_NoAlarm(t *testing.T) {
	// Scenario: Empty trigger disables alarm components entirely.
	book := bookWith(t, "Quiet", "1234567890", "01.01.1990")

	gen := &calendar.Generator{
		Clock: MockClock{CurrentTime: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	icsData, err := gen.Generate(context.Background(), book)
	assert.NoError(t, err)
	assert.NotContains(t, string(icsData), "BEGIN:VALARM")
}

func TestGenerate_InjectedSummaryFormatter(t *testing.T) {
	// Scenario: The caller supplies localized summaries; fallbacks must not
	// appear in the output.
	book := bookWith(t, "Olena", "1234567890", "01.06.1990")

	gen := &calendar.Generator{
		Clock: MockClock{CurrentTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		FormatSummary: func(name string, age int) string {
			return fmt.Sprintf("День народження: %s (%d)", name, age)
		},
	}

	icsData, err := gen.Generate(context.Background(), book)
	assert.NoError(t, err)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "День народження: Olena (35)")
	assert.NotContains(t, icsStr, "SUMMARY:Birthday:")
}

func TestGenerate_StableUIDs(t *testing.T) {
	// Scenario: Re-exporting the same book must keep event identities, so
	// calendar clients update events in place instead of duplicating them.
	book := bookWith(t, "Stable", "1234567890", "15.03.1992")

	gen := &calendar.Generator{
		Clock: MockClock{CurrentTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	first, err := gen.Generate(context.Background(), book)
	require.NoError(t, err)
	second, err := gen.Generate(context.Background(), book)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "Identical input and clock should produce identical output")

	// Different contacts must not collide.
	other := bookWith(t, "Other", "1234567890", "15.03.1992")
	otherData, err := gen.Generate(context.Background(), other)
	require.NoError(t, err)

	for _, line := range strings.Split(string(first), "\r\n") {
		if strings.HasPrefix(line, "UID:") {
			assert.NotContains(t, string(otherData), line, "UID must depend on the contact name")
		}
	}
}

func TestGenerate_ContextCancellation(t *testing.T) {
	// Scenario: User quits the app while an export is running.
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately before processing starts

	gen := &calendar.Generator{
		Clock: MockClock{CurrentTime: time.Now()},
	}

	icsData, err := gen.Generate(ctx, addressbook.NewBook())
	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err, "Should return context canceled error")
	assert.Nil(t, icsData)
}
