package config

import (
	"log/slog"
	"os"
	"slices"

	"github.com/joho/godotenv"
)

// Settings holds the runtime configuration resolved from the environment.
// Flag values override these after Load returns.
type Settings struct {
	BookPath        string // Path of the vCard snapshot file
	CalendarPath    string // Default destination for calendar exports
	Locale          string // Interface language (ISO 639-1)
	ReminderTrigger string // ISO8601 duration for event alarms; empty disables them
}

// Load reads a .env file (when present) into the process environment,
// then resolves each setting with its default as fallback.
func Load() Settings {
	if err := godotenv.Load(); err != nil {
		slog.Debug(MsgEnvMissing, LogKeyComponent, CompMain)
	}

	s := Settings{
		BookPath:        getEnv(EnvBookFile, DefaultBookFile),
		CalendarPath:    getEnv(EnvCalendarFile, DefaultCalendarFile),
		Locale:          getEnv(EnvLocale, DefaultLocale),
		ReminderTrigger: getEnv(EnvReminder, DefaultReminderTrigger),
	}

	if !slices.Contains(SupportedLocales, s.Locale) {
		slog.Warn(MsgLocaleUnsupported,
			LogKeyComponent, CompMain,
			LogKeyLang, s.Locale,
		)
		s.Locale = DefaultLocale
	}

	return s
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
