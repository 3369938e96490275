package duet

import "errors"

// Variant names a container variant that holds no value.
type Variant string

const (
	VariantNothing Variant = "Nothing"
	VariantErr     Variant = "Err"
)

// EmptyValueError reports an attempt to read the contained value of a
// variant that does not hold one.
type EmptyValueError struct {
	Variant Variant
}

func (e *EmptyValueError) Error() string {
	if e.Variant == VariantErr {
		return "value missing in an Err variant"
	}
	return "value missing in a " + string(e.Variant) + " variant"
}

// IsEmptyValue reports whether err is an empty-value access error.
func IsEmptyValue(err error) bool {
	var e *EmptyValueError
	return errors.As(err, &e)
}
