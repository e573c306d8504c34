package locale

import "errors"

var (
	ErrEmptyDate   = errors.New("empty date value")
	ErrInvalidDate = errors.New("unrecognised date value")
)
