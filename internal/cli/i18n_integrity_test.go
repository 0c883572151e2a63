package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/cli"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in every locale JSON file.
func TestI18nIntegrity(t *testing.T) {
	definedKeys := make(map[string]bool)

	keysToCheck := []string{
		config.TKeyGreeting,
		config.TKeyPrompt,
		config.TKeyHowHelp,
		config.TKeyGoodbye,
		config.TKeyInvalidCmd,
		config.TKeyContactAdded,
		config.TKeyContactUpdated,
		config.TKeyPhoneUpdated,
		config.TKeyPhoneList,
		config.TKeyNoContacts,
		config.TKeyBirthdayAdded,
		config.TKeyBirthdayShow,
		config.TKeyNoBirthday,
		config.TKeyNoUpcoming,
		config.TKeyCalendarSaved,
		config.TKeyErrPhoneFormat,
		config.TKeyErrDateFormat,
		config.TKeyErrPhoneNotFound,
		config.TKeyErrContactNotFound,
		config.TKeyErrMissingArgs,
		config.TKeyErrInternal,
		config.TKeyEvtSummaryAge,
		config.TKeyEvtSummaryBirth,
	}

	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	locales := []string{"active.en.json", "active.uk.json"}

	for _, locale := range locales {
		t.Run(locale, func(t *testing.T) {
			// Adjust path if running test from internal/cli or root
			path := filepath.Join("locales", locale)
			content, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				// Fallback for running tests from different CWD
				path = filepath.Join("..", "..", "internal", "cli", "locales", locale)
				content, err = os.ReadFile(path)
			}
			require.NoErrorf(t, err, "Must load %s", locale)

			var jsonMap map[string]interface{}
			err = json.Unmarshal(content, &jsonMap)
			require.NoError(t, err, "JSON must be valid")

			// Verify consistency
			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, locale)
			}

			// Check for orphan keys in JSON (keys that exist in JSON but not in Go)
			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				_, exists := definedKeys[jsonKey]
				if !exists {
					t.Logf("Warning: Key '%s' exists in JSON but is not checked in the test suite (might be unused)", jsonKey)
				}
			}
		})
	}
}

// TestGetMsg_FallbackToKey verifies that a missing translation never blanks
// the output.
func TestGetMsg_FallbackToKey(t *testing.T) {
	app := cli.NewApp(config.Settings{Locale: config.DefaultLocale}, nil, strings.NewReader(""), &strings.Builder{})
	app.SetupI18n()

	assert.Equal(t, "definitely_not_a_key", app.GetMsg("definitely_not_a_key"))
	assert.NotEmpty(t, app.GetMsg(config.TKeyGreeting))
	assert.NotEqual(t, config.TKeyGreeting, app.GetMsg(config.TKeyGreeting), "A defined key must translate")
}
