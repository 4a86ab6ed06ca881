package annotate

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"jsonplus/internal/common"
	"jsonplus/diagnostic"
)

// Tree binds the fields of a data mapping to leaves carrying their
// annotations. Nested mappings become nested trees.
//
// A Tree is not safe for concurrent mutation.
type Tree struct {
	keys   []string
	leaves map[string][]*Leaf
}

// New walks data and metadata in parallel and builds the annotated tree.
// Both must be mapping-typed (*Map, Map or map[string]any); a nil metadata
// means no annotations.
//
// For each field of data, in order, the metadata entry with the same key is
// either distributed into the children (when both are mappings) or attached
// to the field's leaf (when it is a string or absent).
//
// On error the returned tree is not nil when the arguments were valid: it
// holds the fields processed before the failing one.
func New(data, metadata any, opts ...Option) (*Tree, error) {
	return newConfig(opts).build("", data, metadata)
}

func (c *config) build(path string, data, metadata any) (*Tree, error) {
	d, ok := asMap(data)
	if !ok {
		return nil, &ArgumentTypeError{Arg: "data", Path: path, Value: data}
	}

	var meta *Map
	if metadata != nil {
		meta, ok = asMap(metadata)
		if !ok {
			return nil, &ArgumentTypeError{Arg: "metadata", Path: path, Value: metadata}
		}
	}

	t := &Tree{leaves: make(map[string][]*Leaf, d.Len())}
	for k, v := range d.All() {
		m, _ := meta.Get(k)
		if err := c.field(t, joinPath(path, k), k, v, m); err != nil {
			return t, err
		}
	}

	return t, nil
}

func (c *config) field(t *Tree, path, k string, v, m any) error {
	switch kind := Classify(v); kind {
	case KindScalar:
		return c.leaf(path, k, v, m, t.put)
	case KindMapping:
		return c.mapping(path, k, v, m, t.put)
	case KindList:
		return c.list(t, path, k, v, m)
	case KindOther:
		if c.strict {
			return &UnsupportedKindError{Path: path, Value: v}
		}

		c.logger.Debug("skipping field of unsupported kind",
			zap.String("path", path), zap.String("type", fmt.Sprintf("%T", v)))
		if c.diags != nil {
			c.diags.Warnf(diagnostic.CodeUnsupportedKind, path, "value %v (type=%T) skipped", v, v)
		}

		return nil
	default:
		panic("unexpected value kind: " + kind.String())
	}
}

func (c *config) leaf(path, k string, v, m any, store func(string, *Leaf)) error {
	note, err := checkAnnotation(path, v, m)
	if err != nil {
		return err
	}

	store(k, &Leaf{value: v, annotation: note})

	return nil
}

func (c *config) mapping(path, k string, v, m any, store func(string, *Leaf)) error {
	if meta, ok := asMap(m); ok {
		sub, err := c.build(path, v, meta)
		if err != nil {
			return err
		}

		store(k, &Leaf{value: sub})

		return nil
	}

	note, err := checkAnnotation(path, v, m)
	if err != nil {
		return err
	}

	sub, err := c.build(path, v, nil)
	if err != nil {
		return err
	}

	store(k, &Leaf{value: sub, annotation: note})

	return nil
}

func (c *config) list(t *Tree, path, k string, v, m any) error {
	elems := listElems(v)
	if common.IsEmpty(elems) {
		return c.leaf(path, k, v, m, t.put)
	}

	store := t.put
	if c.expandLists {
		store = t.add
	} else if common.IsMultiple(elems) {
		c.logger.Debug("list elements collapse into last element",
			zap.String("path", path), zap.Int("len", len(elems)))
		if c.diags != nil {
			c.diags.Warnf(diagnostic.CodeListCollapsed, path, "%d elements collapsed, only the last is kept", len(elems))
		}
	}

	for i, e := range elems {
		ep := path + "[" + strconv.Itoa(i) + "]"

		var err error
		if Classify(e) == KindMapping {
			err = c.mapping(ep, k, e, m, store)
		} else {
			err = c.leaf(ep, k, e, m, store)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}

	return parent + "." + key
}

// put stores leaf as the only leaf of key.
func (t *Tree) put(key string, leaf *Leaf) {
	if _, ok := t.leaves[key]; !ok {
		t.keys = append(t.keys, key)
	}

	t.leaves[key] = []*Leaf{leaf}
}

// add appends leaf to the leaves of key.
func (t *Tree) add(key string, leaf *Leaf) {
	if _, ok := t.leaves[key]; !ok {
		t.keys = append(t.keys, key)
	}

	t.leaves[key] = append(t.leaves[key], leaf)
}

// Get returns the leaf of key. For an expanded list it is the last element.
func (t *Tree) Get(key string) (*Leaf, bool) {
	return common.Last(t.leaves[key])
}

// All returns every leaf stored under key. Only trees built with
// WithListExpansion hold more than one.
func (t *Tree) All(key string) []*Leaf {
	return t.leaves[key]
}

func (t *Tree) Has(key string) bool {
	_, ok := t.leaves[key]
	return ok
}

// Keys returns the field names in the order they were first set.
func (t *Tree) Keys() []string {
	return append([]string(nil), t.keys...)
}

func (t *Tree) Len() int { return len(t.keys) }

// Fields iterates over the fields in order, yielding the leaf Get returns.
func (t *Tree) Fields() iter.Seq2[string, *Leaf] {
	return func(yield func(string, *Leaf) bool) {
		for _, k := range t.keys {
			leaf, _ := t.Get(k)
			if !yield(k, leaf) {
				return
			}
		}
	}
}

// Lookup descends through nested trees following path.
func (t *Tree) Lookup(path ...string) (*Leaf, bool) {
	if len(path) == 0 {
		return nil, false
	}

	leaf, ok := t.Get(path[0])
	if !ok || len(path) == 1 {
		return leaf, ok
	}

	sub, ok := leaf.Tree()
	if !ok {
		return nil, false
	}

	return sub.Lookup(path[1:]...)
}

// Set replaces the leaves of an existing key with leaf. New keys cannot be
// added after construction.
func (t *Tree) Set(key string, leaf *Leaf) error {
	if leaf == nil {
		return fmt.Errorf("nil leaf for field %q", key)
	}

	if !t.Has(key) {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}

	t.leaves[key] = []*Leaf{leaf}

	return nil
}

// Replace builds a validated leaf from value and annotation and sets it
// under an existing key.
func (t *Tree) Replace(key string, value, annotation any) error {
	leaf, err := NewLeaf(value, annotation)
	if err != nil {
		return err
	}

	return t.Set(key, leaf)
}

// String is a debug rendering listing the field names.
func (t *Tree) String() string {
	return fmt.Sprintf("<Tree: fields=[%s]>", strings.Join(t.keys, " "))
}
