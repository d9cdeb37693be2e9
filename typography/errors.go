package typography

import "errors"

var (
	ErrInvalidFontSize     = errors.New("invalid font size")
	ErrInvalidConfig       = errors.New("invalid typography configuration")
	ErrUnknownPreset       = errors.New("unknown typography preset")
	ErrUnknownElement      = errors.New("unknown element kind")
	ErrHeadingOutOfRange   = errors.New("heading level must be between 1 and 6")
	ErrInvalidPropertyName = errors.New("invalid CSS property name")
)
