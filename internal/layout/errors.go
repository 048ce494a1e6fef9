package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec is matched by every InvalidSpecError via errors.Is.
var ErrInvalidSpec = errors.New("invalid dimension spec")

// InvalidSpecError reports a DimensionSpec that violates its constraints.
// It is returned before any region is built.
type InvalidSpecError struct {
	Variant string
	Field   string
	Reason  string
}

func (e *InvalidSpecError) Error() string {
	if e.Variant == "" {
		return fmt.Sprintf("layout: invalid spec: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("layout: invalid spec %q: %s: %s", e.Variant, e.Field, e.Reason)
}

func (e *InvalidSpecError) Unwrap() error {
	return ErrInvalidSpec
}

func invalid(variant, field, format string, args ...any) *InvalidSpecError {
	return &InvalidSpecError{
		Variant: variant,
		Field:   field,
		Reason:  fmt.Sprintf(format, args...),
	}
}
