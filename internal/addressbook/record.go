package addressbook

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Record aggregates one contact: a name, its phone numbers in insertion
// order, and an optional birthday. The record exclusively owns its fields.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record holding only a name.
func NewRecord(name string) *Record {
	return &Record{name: NewName(name)}
}

// Name returns the display name.
func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns the phone values in insertion order.
func (r *Record) Phones() []string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.String()
	}
	return values
}

// AddPhone validates text and appends it to the phone list.
// The list is unchanged when validation fails.
func (r *Record) AddPhone(text string) error {
	phone, err := NewPhone(text)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// ChangePhone replaces the first phone whose value equals oldText with a
// freshly validated phone built from newText. The list is unchanged on any
// failure: ErrPhoneNotFound when nothing matches oldText (newText is not
// validated in that case), ErrInvalidPhone when newText fails validation.
func (r *Record) ChangePhone(oldText, newText string) error {
	idx := -1
	for i, p := range r.phones {
		if p.String() == oldText {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrPhoneNotFound
	}

	phone, err := NewPhone(newText)
	if err != nil {
		return err
	}
	r.phones[idx] = phone
	return nil
}

// AddBirthday validates text and sets (or overwrites) the birthday.
// A previously set birthday is untouched when validation fails.
func (r *Record) AddBirthday(text string) error {
	birthday, err := NewBirthday(text)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// SetBirthday attaches an already-validated birthday.
// Used when restoring records from a snapshot.
func (r *Record) SetBirthday(b Birthday) {
	r.birthday = &b
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// String renders the record deterministically: name, comma-joined phones,
// and the birthday in DD.MM.YYYY form or a placeholder when absent.
func (r *Record) String() string {
	birthday := config.BirthdayPlaceholder
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf(config.RecordFormat,
		r.name.String(),
		strings.Join(r.Phones(), config.PhonesSeparator),
		birthday,
	)
}
