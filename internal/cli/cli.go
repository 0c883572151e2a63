package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/storage"
)

// App holds the state and wiring for one interactive assistant session.
type App struct {
	Settings   config.Settings
	Store      storage.Store
	Book       *addressbook.Book
	Clock      addressbook.Clock // Injected clock for testability (e.g. mocking time travel)
	I18nBundle *i18n.Bundle
	Localizer  *i18n.Localizer

	in  io.Reader
	out io.Writer
}

// NewApp constructs the application and wires dependencies.
func NewApp(settings config.Settings, store storage.Store, in io.Reader, out io.Writer) *App {
	return &App{
		Settings: settings,
		Store:    store,
		Clock:    addressbook.RealClock{}, // Default to real clock in production
		in:       in,
		out:      out,
	}
}

// Run drives the interactive command loop until exit, end of input, or
// context cancellation. The book is loaded up front and persisted once on
// the way out; commands mutate it in memory only.
func (app *App) Run(ctx context.Context) error {
	app.SetupI18n()

	book, err := app.Store.Load(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrBookLoad, err)
	}
	app.Book = book

	app.println(app.GetMsg(config.TKeyGreeting))

	slog.Info(config.MsgReplStart, config.LogKeyComponent, config.CompCLI)

	// The reader goroutine may stay blocked in Scan after cancellation;
	// the process is about to exit at that point anyway.
	lines := make(chan string, config.ChannelBufferSize)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(app.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			slog.Error(config.ErrReadInput,
				config.LogKeyComponent, config.CompCLI,
				config.LogKeyError, err,
			)
		}
	}()

	for {
		app.print(app.GetMsg(config.TKeyPrompt))

		select {
		case <-ctx.Done():
			slog.Info(config.MsgReplStop, config.LogKeyComponent, config.CompCLI)
			return app.shutdown()

		case line, ok := <-lines:
			if !ok {
				// End of input behaves like an explicit exit.
				return app.shutdown()
			}

			command, args := parseInput(line)
			if command == "" {
				continue
			}
			if command == config.CmdExit || command == config.CmdClose {
				return app.shutdown()
			}
			app.dispatch(ctx, command, args)
		}
	}
}

// shutdown says goodbye and persists the book. A fresh timeout context is
// used so a cancelled run context cannot block the final save.
func (app *App) shutdown() error {
	app.println(app.GetMsg(config.TKeyGoodbye))

	saveCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := app.Store.Save(saveCtx, app.Book); err != nil {
		return fmt.Errorf("%s: %w", config.ErrBookSave, err)
	}
	return nil
}

// parseInput splits a raw line into a lowercase command and its arguments.
// Arguments keep their original casing. A blank line yields an empty command.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

func (app *App) print(text string) {
	fmt.Fprint(app.out, text)
}

func (app *App) println(text string) {
	fmt.Fprintln(app.out, text)
}
