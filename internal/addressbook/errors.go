package addressbook

import (
	"errors"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Sentinel errors returned by field constructors and record mutators.
// All are recoverable; callers match them with errors.Is and translate
// them into user-facing messages at the command boundary.
var (
	ErrInvalidPhone    = errors.New(config.ErrPhoneFormat)
	ErrInvalidDate     = errors.New(config.ErrDateFormat)
	ErrPhoneNotFound   = errors.New(config.ErrPhoneNotFound)
	ErrContactNotFound = errors.New(config.ErrContactNotFound)
	ErrMissingArgument = errors.New(config.ErrMissingArgument)
)
