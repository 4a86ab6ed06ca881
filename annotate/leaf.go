package annotate

import "fmt"

// Leaf pairs a payload with an optional string annotation. The payload is a
// scalar, a list, or a *Tree when the field held a nested mapping.
type Leaf struct {
	value      any
	annotation *string
}

// NewLeaf wraps value with annotation. The annotation must be nil, a string,
// or a *string; anything else yields a *MetadataTypeError.
func NewLeaf(value, annotation any) (*Leaf, error) {
	note, err := checkAnnotation("", value, annotation)
	if err != nil {
		return nil, err
	}

	return &Leaf{value: value, annotation: note}, nil
}

// checkAnnotation is the single validation point for annotations, shared by
// the leaf constructor, SetAnnotation, and the tree walk.
func checkAnnotation(path string, value, annotation any) (*string, error) {
	switch a := annotation.(type) {
	case nil:
		return nil, nil
	case string:
		return &a, nil
	case *string:
		if a == nil {
			return nil, nil
		}
		s := *a
		return &s, nil
	default:
		return nil, &MetadataTypeError{Path: path, Metadata: annotation, Data: value}
	}
}

func (l *Leaf) Value() any { return l.value }

// Tree returns the nested tree when the leaf wraps a mapping.
func (l *Leaf) Tree() (*Tree, bool) {
	t, ok := l.value.(*Tree)
	return t, ok
}

// Annotation returns the annotation and whether one is set.
func (l *Leaf) Annotation() (string, bool) {
	if l.annotation == nil {
		return "", false
	}

	return *l.annotation, true
}

func (l *Leaf) HasAnnotation() bool { return l.annotation != nil }

// SetAnnotation replaces the annotation in place, applying the same rules as
// NewLeaf. On error the previous annotation is kept.
func (l *Leaf) SetAnnotation(annotation any) error {
	note, err := checkAnnotation("", l.value, annotation)
	if err != nil {
		return err
	}

	l.annotation = note

	return nil
}

func (l *Leaf) ClearAnnotation() { l.annotation = nil }

// String is a debug rendering, not a serialization format.
func (l *Leaf) String() string {
	note := "<nil>"
	if l.annotation != nil {
		note = *l.annotation
	}

	return fmt.Sprintf("<Leaf: value=%v; annotation=%s>", l.value, note)
}
