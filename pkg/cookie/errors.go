package cookie

import "errors"

var (
	ErrNotFound  = errors.New("cookie.not_found")
	ErrBlankName = errors.New("cookie.blank_name")
	ErrTooLarge  = errors.New("cookie.too_large")
)
