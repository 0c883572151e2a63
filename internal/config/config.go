package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go AddressBook"
	AppID       = "com.github.tartampluch.go-addressbook"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the address book snapshot, calendar exports, and logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagFile         = "file"
	FlagCalendar     = "calendar"
	FlagLocale       = "locale"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	FlagDescFile     = "Path of the address book file"
	FlagDescCalendar = "Default path for calendar exports"
	FlagDescLocale   = "Interface language code (en, uk)"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Environment Variables
// -----------------------------------------------------------------------------

// Flags take precedence over these; a .env file in the working directory is
// read into the environment before lookup.
const (
	EnvBookFile     = "ADDRESSBOOK_FILE"
	EnvCalendarFile = "ADDRESSBOOK_CALENDAR"
	EnvLocale       = "ADDRESSBOOK_LOCALE"
	EnvReminder     = "ADDRESSBOOK_REMINDER"
)

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdCalendar     = "calendar"
	CmdExit         = "exit"
	CmdClose        = "close"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyGreeting       = "greeting"
	TKeyPrompt         = "prompt"
	TKeyHowHelp        = "how_help"
	TKeyGoodbye        = "goodbye"
	TKeyInvalidCmd     = "invalid_command"
	TKeyContactAdded   = "contact_added"
	TKeyContactUpdated = "contact_updated"
	TKeyPhoneUpdated   = "phone_updated"
	TKeyPhoneList      = "phone_list" // Requires Name, Phones
	TKeyNoContacts     = "no_contacts"
	TKeyBirthdayAdded  = "birthday_added" // Requires Name
	TKeyBirthdayShow   = "birthday_show"  // Requires Name, Date
	TKeyNoBirthday     = "no_birthday"    // Requires Name
	TKeyNoUpcoming     = "no_upcoming"
	TKeyCalendarSaved  = "calendar_saved" // Requires Path

	// User-Facing Error Messages
	TKeyErrPhoneFormat     = "err_phone_format"
	TKeyErrDateFormat      = "err_date_format"
	TKeyErrPhoneNotFound   = "err_phone_not_found"
	TKeyErrContactNotFound = "err_contact_not_found"
	TKeyErrMissingArgs     = "err_missing_args"
	TKeyErrInternal        = "err_internal"

	// Calendar Event Summaries
	TKeyEvtSummaryAge   = "event_summary_age"   // Requires Name, Age
	TKeyEvtSummaryBirth = "event_summary_birth" // Requires Name (For age 0)
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLocale       = "en"
	DefaultBookFile     = "addressbook.vcf"
	DefaultCalendarFile = "birthdays.ics"

	// DefaultHorizonDays is the inclusive upcoming-birthday window size.
	DefaultHorizonDays = 7

	// DefaultReminderTrigger is an ISO8601 duration: notify one day before.
	DefaultReminderTrigger = "-P1D"

	UIDSalt = "go-addressbook-v1-" // Salt for deterministic UID generation
)

// SupportedLocales defines the list of available interface languages (ISO 639-1).
var SupportedLocales = []string{"en", "uk"}

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go AddressBook//Calendar//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "goaddressbook"

	// iCal Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	// vCard Fields
	VCardVersion = "VERSION"
	VCardV4      = "4.0"
	VCardFN      = "FN"
	VCardTEL     = "TEL"
	VCardBDAY    = "BDAY"
)

// -----------------------------------------------------------------------------
// Data Formats & Limits
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the user-facing birthday form (DD.MM.YYYY).
	DateFormatBirthday = "02.01.2006"

	// DateFormatUpcoming is the congratulation-date form (YYYY.MM.DD).
	DateFormatUpcoming = "2006.01.02"

	// Date layouts used for parsing vCard BDAY fields.
	// Snapshots are always written in the basic form.
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	// Limits
	PhoneLength = 10

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
)

// -----------------------------------------------------------------------------
// Timeouts
// -----------------------------------------------------------------------------

const (
	// ShutdownTimeout bounds the final snapshot save once the context is cancelled.
	ShutdownTimeout = 5 * time.Second
)

// -----------------------------------------------------------------------------
// Output Formats
// -----------------------------------------------------------------------------

const (
	// RecordFormat expects name, joined phones, and birthday (or placeholder).
	RecordFormat        = "Record(name=%s, phones=%s, birthday=%s)"
	PhonesSeparator     = ", "
	BirthdayPlaceholder = "N/A"

	// UpcomingLineFormat expects a contact name and a congratulation date.
	UpcomingLineFormat = "%s: %s"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrPhoneFormat     = "invalid phone number: must be exactly 10 digits"
	ErrDateFormat      = "invalid birthday: must be a real date in DD.MM.YYYY form"
	ErrPhoneNotFound   = "old phone number not found on record"
	ErrContactNotFound = "contact not found"
	ErrMissingArgument = "missing argument for command"
	ErrBookLoad        = "failed to load address book"
	ErrBookSave        = "failed to save address book"
	ErrVCardEncode     = "failed to encode vCard data"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrCalendarWrite   = "failed to write calendar file"
	ErrDateParse       = "unable to parse date"
	ErrCmdFailed       = "command failed"
	ErrReadInput       = "failed to read command input"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Fallbacks
// -----------------------------------------------------------------------------

const (
	FallbackSummaryAge   = "Birthday: %s (%d)"
	FallbackSummaryBirth = "Birthday: %s (birth)"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	// Using a constant avoids hardcoded magic strings in the generation logic.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Log & Console Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting       = "Starting application"
	MsgAppStop           = "Application stopped gracefully"
	MsgBookLoaded        = "Address book loaded"
	MsgBookSaved         = "Address book saved"
	MsgBookMissing       = "Address book file not found, starting empty"
	MsgSkippedCard       = "Skipping malformed vCard"
	MsgSkippedNoName     = "Skipping card without formatted name"
	MsgSkippedDate       = "Skipping invalid date format"
	MsgSkippedPhone      = "Skipping invalid phone number"
	MsgGenSuccess        = "Calendar generation successful"
	MsgCalendarSaved     = "Calendar file written"
	MsgCmdDispatch       = "Dispatching command"
	MsgReplStart         = "Command loop started"
	MsgReplStop          = "Command loop stopping due to context cancellation"
	MsgLocaleSkip        = "Skipping non-locale file"
	MsgLocaleBadName     = "Skipping malformed locale filename"
	MsgLocaleLoaded      = "Locale loaded successfully"
	MsgLocaleUnsupported = "Unsupported locale, falling back to default"
	MsgTransMissing      = "Missing translation key"
	MsgEnvMissing        = "No .env file found, using process environment"
	MsgLogWarning        = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyCount     = "count"
	LogKeyCommand   = "command"
	LogKeyDuration  = "duration_ms"
	LogKeySizeBytes = "size_bytes"
	LogKeyStats     = "stats"
	LogKeyTotal     = "total_records"
	LogKeyFound     = "birthdays_found"
	LogKeyEvents    = "events_created"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain     = "main"
	CompCLI      = "cli"
	CompStorage  = "storage"
	CompCalendar = "calendar"
	CompI18n     = "i18n"
)
