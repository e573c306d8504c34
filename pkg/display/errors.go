package display

import "errors"

var (
	ErrEmptyValue      = errors.New("empty value")
	ErrUnsupportedType = errors.New("unsupported value type")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrInvalidBool     = errors.New("invalid boolean")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidEmail    = errors.New("invalid e-mail address")
	ErrInvalidTimeZone = errors.New("unknown time zone")
	ErrLoadingCatalog  = errors.New("failed to load translations")
)
