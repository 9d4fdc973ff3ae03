package keys

import "fmt"

// UnknownVersionError reports a version tag outside the known enumeration.
// Decoders fail closed on it rather than guessing at the field layout.
type UnknownVersionError struct {
	Value uint16
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("keys: unknown version %d", e.Value)
}

// ArrayLenError reports a composite whose declared element count does not
// match the count its (valid) version defines.
type ArrayLenError struct {
	Len int
}

func (e *ArrayLenError) Error() string {
	return fmt.Sprintf("keys: invalid array length %d", e.Len)
}

// ByteLenError reports key bytes of the wrong width.
type ByteLenError struct {
	Want, Got int
}

func (e *ByteLenError) Error() string {
	return fmt.Sprintf("keys: invalid key length: want %d bytes, got %d", e.Want, e.Got)
}
