package duet

// Getter defines checked access to a contained value.
type Getter[A any] interface {
	// Get returns the contained value, or an *EmptyValueError when the
	// variant holds none
	Get() (A, error)
	// MustGet returns the contained value, panicking with an
	// *EmptyValueError when the variant holds none
	MustGet() A
}

// Value extends Getter with fallback and comma-ok access.
type Value[A any] interface {
	Getter[A]
	// GetOrElse returns the contained value, or fallback when the variant
	// holds none
	GetOrElse(fallback A) A
	// Unpack returns the contained value and whether it is present
	Unpack() (A, bool)
}
