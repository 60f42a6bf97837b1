package serde

import (
	"errors"
	"fmt"
)

// ErrUnexpectedToken reports wire data that does not match the expected type.
var ErrUnexpectedToken = errors.New("serde: unexpected token")

// UnknownVariantError is returned when serializing a union value whose
// variant is not known to the serializer.
type UnknownVariantError struct {
	Union string
	Tag   string
}

func (e *UnknownVariantError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("serde: cannot serialize unknown variant of union %s", e.Union)
	}
	return fmt.Sprintf("serde: cannot serialize unknown variant %q of union %s", e.Tag, e.Union)
}

// UnexpectedTokenf returns an error wrapping ErrUnexpectedToken.
func UnexpectedTokenf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnexpectedToken, fmt.Sprintf(format, args...))
}
