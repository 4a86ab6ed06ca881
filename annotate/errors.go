package annotate

import (
	"errors"
	"fmt"
)

var (
	ErrArgumentType    = errors.New("argument is not a mapping")
	ErrMetadataType    = errors.New("metadata must be a string")
	ErrUnsupportedKind = errors.New("unsupported value kind")
	ErrUnknownField    = errors.New("unknown field")
)

// ArgumentTypeError is returned by New when the data or metadata argument is
// not mapping-typed.
type ArgumentTypeError struct {
	// Arg is the argument name, "data" or "metadata".
	Arg string
	// Path locates the nested tree being built; empty at the root.
	Path  string
	Value any
}

func (e *ArgumentTypeError) Error() string {
	return fmt.Sprintf("%s%s: `%s` must be a mapping (got %T)", ErrArgumentType, atPath(e.Path), e.Arg, e.Value)
}

func (e *ArgumentTypeError) Is(target error) bool { return target == ErrArgumentType }

// MetadataTypeError reports an annotation that is neither absent nor a string.
// Data is the value the annotation was meant to describe.
type MetadataTypeError struct {
	Path     string
	Metadata any
	Data     any
}

func (e *MetadataTypeError) Error() string {
	return fmt.Sprintf("%s%s: got %v (type=%T) with data=%v", ErrMetadataType, atPath(e.Path), e.Metadata, e.Metadata, e.Data)
}

func (e *MetadataTypeError) Is(target error) bool { return target == ErrMetadataType }

// UnsupportedKindError is only returned in strict mode. Otherwise such
// fields are skipped.
type UnsupportedKindError struct {
	Path  string
	Value any
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("%s%s: %v (type=%T)", ErrUnsupportedKind, atPath(e.Path), e.Value, e.Value)
}

func (e *UnsupportedKindError) Is(target error) bool { return target == ErrUnsupportedKind }

func atPath(path string) string {
	if path == "" {
		return ""
	}

	return " at " + path
}
