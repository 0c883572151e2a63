package addressbook

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// Name wraps a contact's display text. No normalization is applied.
type Name struct {
	value string
}

// NewName wraps raw display text unchanged. It never fails.
func NewName(text string) Name {
	return Name{value: text}
}

func (n Name) String() string {
	return n.value
}

// Phone is a validated phone number of exactly ten decimal digits.
// Immutable once constructed; replacing a number means building a new one.
type Phone struct {
	value string
}

// NewPhone validates text and returns the wrapped number.
// The returned error matches ErrInvalidPhone.
func NewPhone(text string) (Phone, error) {
	err := validation.Validate(text,
		validation.Required,
		validation.Length(config.PhoneLength, config.PhoneLength),
		is.Digit,
	)
	if err != nil {
		return Phone{}, fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	return Phone{value: text}, nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a calendar date parsed from the DD.MM.YYYY form.
// The parsed date is stored, not the original text.
type Birthday struct {
	date time.Time
}

// NewBirthday validates text as a real calendar date in DD.MM.YYYY form.
// The returned error matches ErrInvalidDate.
func NewBirthday(text string) (Birthday, error) {
	err := validation.Validate(text,
		validation.Required,
		validation.Date(config.DateFormatBirthday),
	)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	date, err := time.Parse(config.DateFormatBirthday, text)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return Birthday{date: date}, nil
}

// BirthdayFromTime wraps an already-parsed calendar date.
// Used when restoring records from a snapshot.
func BirthdayFromTime(date time.Time) Birthday {
	return Birthday{date: date}
}

// Time returns the underlying calendar date.
func (b Birthday) Time() time.Time {
	return b.date
}

// String renders the date back to its DD.MM.YYYY form.
func (b Birthday) String() string {
	return b.date.Format(config.DateFormatBirthday)
}
