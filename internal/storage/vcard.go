package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// Store abstracts snapshot persistence of a Book.
type Store interface {
	Load(ctx context.Context) (*addressbook.Book, error)
	Save(ctx context.Context, book *addressbook.Book) error
}

// FileStore persists the book as a vCard 4.0 stream on disk.
// One card per record: FN carries the name, TEL each phone, BDAY the birthday.
type FileStore struct {
	Path string
}

// NewFileStore creates a store bound to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the snapshot from disk. A missing file is not an error:
// it yields a fresh empty book.
func (s *FileStore) Load(ctx context.Context) (*addressbook.Book, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info(config.MsgBookMissing,
			config.LogKeyComponent, config.CompStorage,
			config.LogKeyFile, s.Path,
		)
		return addressbook.NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrBookLoad, err)
	}
	defer func() { _ = f.Close() }()

	book, err := DecodeBook(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrBookLoad, err)
	}

	slog.Info(config.MsgBookLoaded,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.Path,
		config.LogKeyCount, book.Len(),
	)
	return book, nil
}

// Save writes the snapshot atomically: encode to a temp file in the target
// directory, then rename over the destination.
func (s *FileStore) Save(ctx context.Context, book *addressbook.Book) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.Path), filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrBookSave, err)
	}
	// No-op after a successful rename.
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := EncodeBook(ctx, tmp, book); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrBookSave, err)
	}

	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("%s: %w", config.ErrBookSave, err)
	}

	slog.Info(config.MsgBookSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.Path,
		config.LogKeyCount, book.Len(),
	)
	return nil
}

// DecodeBook reads a vCard stream into a Book, skipping whatever cannot be
// recovered: malformed cards, cards without a formatted name, phones failing
// validation, and unparsable birthdays. Only the broken piece is dropped,
// never the whole stream.
func DecodeBook(ctx context.Context, r io.Reader) (*addressbook.Book, error) {
	book := addressbook.NewBook()
	decoder := vcard.NewDecoder(r)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Continue to the next card to maximize data recovery.
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompStorage,
				config.LogKeyError, err,
			)
			continue
		}

		name := card.Value(config.VCardFN)
		if name == "" {
			slog.Warn(config.MsgSkippedNoName, config.LogKeyComponent, config.CompStorage)
			continue
		}

		rec := addressbook.NewRecord(name)

		for _, tel := range card.Values(config.VCardTEL) {
			if err := rec.AddPhone(tel); err != nil {
				slog.Debug(config.MsgSkippedPhone,
					config.LogKeyComponent, config.CompStorage,
					config.LogKeyName, name,
					config.LogKeyValue, tel,
				)
			}
		}

		if bday := card.Value(config.VCardBDAY); bday != "" {
			if date, err := parseVCardDate(bday); err == nil {
				rec.SetBirthday(addressbook.BirthdayFromTime(date))
			} else {
				slog.Debug(config.MsgSkippedDate,
					config.LogKeyComponent, config.CompStorage,
					config.LogKeyName, name,
					config.LogKeyValue, bday,
				)
			}
		}

		book.Add(rec)
	}

	return book, nil
}

// EncodeBook writes the book as a vCard 4.0 stream, one card per record.
// Snapshots always carry the basic BDAY form.
func EncodeBook(ctx context.Context, w io.Writer, book *addressbook.Book) error {
	encoder := vcard.NewEncoder(w)

	for _, rec := range book.Records() {
		if err := ctx.Err(); err != nil {
			return err
		}

		card := make(vcard.Card)
		card.SetValue(config.VCardVersion, config.VCardV4)
		card.SetValue(config.VCardFN, rec.Name())

		for _, phone := range rec.Phones() {
			card.AddValue(config.VCardTEL, phone)
		}

		if birthday, ok := rec.Birthday(); ok {
			card.SetValue(config.VCardBDAY, birthday.Time().Format(config.DateFormatFullBasic))
		}

		if err := encoder.Encode(card); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}

	return nil
}

// parseVCardDate accepts the full-date layouts found in vCard BDAY fields.
// Truncated no-year forms are rejected: a record birthday needs its year.
func parseVCardDate(value string) (time.Time, error) {
	layouts := []string{
		config.DateFormatFullBasic,
		config.DateFormatFullDash,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(config.ErrDateParse)
}
