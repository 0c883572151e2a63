package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/calendar"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// dispatch routes one parsed command to its handler and prints the reply.
func (app *App) dispatch(ctx context.Context, command string, args []string) {
	start := time.Now()

	var reply string
	switch command {
	case config.CmdHello:
		reply = app.GetMsg(config.TKeyHowHelp)
	case config.CmdAdd:
		reply = app.handleAdd(args)
	case config.CmdChange:
		reply = app.handleChange(args)
	case config.CmdPhone:
		reply = app.handlePhone(args)
	case config.CmdAll:
		reply = app.handleAll()
	case config.CmdAddBirthday:
		reply = app.handleAddBirthday(args)
	case config.CmdShowBirthday:
		reply = app.handleShowBirthday(args)
	case config.CmdBirthdays:
		reply = app.handleBirthdays()
	case config.CmdCalendar:
		reply = app.handleCalendar(ctx, args)
	default:
		reply = app.GetMsg(config.TKeyInvalidCmd)
	}

	slog.Debug(config.MsgCmdDispatch,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyCommand, command,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)

	app.println(reply)
}

// handleAdd creates a contact or appends a phone to an existing one.
// The phone is validated before a new record is inserted, so a rejected
// number never leaves an empty contact behind.
func (app *App) handleAdd(args []string) string {
	if len(args) < 2 {
		return app.errorMessage(addressbook.ErrMissingArgument)
	}
	name, phone := args[0], args[1]

	if rec := app.Book.Find(name); rec != nil {
		if err := rec.AddPhone(phone); err != nil {
			return app.errorMessage(err)
		}
		return app.GetMsg(config.TKeyContactUpdated)
	}

	rec := addressbook.NewRecord(name)
	if err := rec.AddPhone(phone); err != nil {
		return app.errorMessage(err)
	}
	app.Book.Add(rec)
	return app.GetMsg(config.TKeyContactAdded)
}

// handleChange replaces an existing phone number on a contact.
func (app *App) handleChange(args []string) string {
	if len(args) != 3 {
		return app.errorMessage(addressbook.ErrMissingArgument)
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec := app.Book.Find(name)
	if rec == nil {
		return app.errorMessage(addressbook.ErrContactNotFound)
	}
	if err := rec.ChangePhone(oldPhone, newPhone); err != nil {
		return app.errorMessage(err)
	}
	return app.GetMsg(config.TKeyPhoneUpdated)
}

// handlePhone lists the phone numbers stored for a contact.
func (app *App) handlePhone(args []string) string {
	if len(args) < 1 {
		return app.errorMessage(addressbook.ErrMissingArgument)
	}

	rec := app.Book.Find(args[0])
	if rec == nil {
		return app.errorMessage(addressbook.ErrContactNotFound)
	}
	return app.GetMsgData(config.TKeyPhoneList, map[string]any{
		"Name":   rec.Name(),
		"Phones": strings.Join(rec.Phones(), config.PhonesSeparator),
	})
}

// handleAll renders every record, one per line, in insertion order.
func (app *App) handleAll() string {
	records := app.Book.Records()
	if len(records) == 0 {
		return app.GetMsg(config.TKeyNoContacts)
	}

	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, rec.String())
	}
	return strings.Join(lines, "\n")
}

// handleAddBirthday sets (or replaces) the birthday on an existing contact.
func (app *App) handleAddBirthday(args []string) string {
	if len(args) < 2 {
		return app.errorMessage(addressbook.ErrMissingArgument)
	}
	name, date := args[0], args[1]

	rec := app.Book.Find(name)
	if rec == nil {
		return app.errorMessage(addressbook.ErrContactNotFound)
	}
	if err := rec.AddBirthday(date); err != nil {
		return app.errorMessage(err)
	}
	return app.GetMsgData(config.TKeyBirthdayAdded, map[string]any{"Name": rec.Name()})
}

// handleShowBirthday prints a contact's stored birthday.
func (app *App) handleShowBirthday(args []string) string {
	if len(args) < 1 {
		return app.errorMessage(addressbook.ErrMissingArgument)
	}

	rec := app.Book.Find(args[0])
	if rec == nil {
		return app.errorMessage(addressbook.ErrContactNotFound)
	}

	birthday, ok := rec.Birthday()
	if !ok {
		return app.GetMsgData(config.TKeyNoBirthday, map[string]any{"Name": rec.Name()})
	}
	return app.GetMsgData(config.TKeyBirthdayShow, map[string]any{
		"Name": rec.Name(),
		"Date": birthday.String(),
	})
}

// handleBirthdays lists birthdays occurring within the next week.
func (app *App) handleBirthdays() string {
	greetings := app.Book.UpcomingBirthdays(app.Clock.Now(), config.DefaultHorizonDays)
	if len(greetings) == 0 {
		return app.GetMsg(config.TKeyNoUpcoming)
	}

	lines := make([]string, 0, len(greetings))
	for _, g := range greetings {
		lines = append(lines, fmt.Sprintf(config.UpcomingLineFormat, g.Name, g.Date))
	}
	return strings.Join(lines, "\n")
}

// handleCalendar exports the book's birthdays as an iCalendar file. An
// optional argument overrides the configured output path.
func (app *App) handleCalendar(ctx context.Context, args []string) string {
	path := app.Settings.CalendarPath
	if len(args) > 0 {
		path = args[0]
	}

	gen := &calendar.Generator{
		Clock:           app.Clock,
		FormatSummary:   app.summaryFormatter(),
		ReminderTrigger: app.Settings.ReminderTrigger,
	}

	data, err := gen.Generate(ctx, app.Book)
	if err != nil {
		return app.errorMessage(err)
	}

	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		return app.errorMessage(fmt.Errorf("%s: %w", config.ErrCalendarWrite, err))
	}

	slog.Info(config.MsgCalendarSaved,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyFile, path,
		config.LogKeySizeBytes, len(data),
	)
	return app.GetMsgData(config.TKeyCalendarSaved, map[string]any{"Path": path})
}

// summaryFormatter adapts the localized event summaries for the calendar
// generator.
func (app *App) summaryFormatter() calendar.SummaryFormatter {
	return func(name string, age int) string {
		if age == 0 {
			return app.GetMsgData(config.TKeyEvtSummaryBirth, map[string]any{"Name": name})
		}
		return app.GetMsgData(config.TKeyEvtSummaryAge, map[string]any{
			"Name": name,
			"Age":  age,
		})
	}
}

// errorMessage maps a domain error to its localized reply. Unknown errors
// are logged and reported generically so internals never reach the user.
func (app *App) errorMessage(err error) string {
	switch {
	case errors.Is(err, addressbook.ErrInvalidPhone):
		return app.GetMsg(config.TKeyErrPhoneFormat)
	case errors.Is(err, addressbook.ErrInvalidDate):
		return app.GetMsg(config.TKeyErrDateFormat)
	case errors.Is(err, addressbook.ErrPhoneNotFound):
		return app.GetMsg(config.TKeyErrPhoneNotFound)
	case errors.Is(err, addressbook.ErrContactNotFound):
		return app.GetMsg(config.TKeyErrContactNotFound)
	case errors.Is(err, addressbook.ErrMissingArgument):
		return app.GetMsg(config.TKeyErrMissingArgs)
	default:
		slog.Error(config.ErrCmdFailed,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyError, err,
		)
		return app.GetMsg(config.TKeyErrInternal)
	}
}
