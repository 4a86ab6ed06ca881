// Package annotate attaches free-text annotations to the fields of a nested
// key-value document without touching the original values.
//
// # Overview
//
// Two trees of the same shape are walked together: a data tree and a
// metadata tree. Every field of the data tree becomes a Leaf holding the
// original value and, when the metadata tree provides one, a string
// annotation:
//
//	data := annotate.FromGoMap(map[string]any{
//	    "name":  "Ada",
//	    "owner": map[string]any{"id": 7},
//	})
//	meta := map[string]any{
//	    "name":  "from the HR export",
//	    "owner": map[string]any{"id": "primary key"},
//	}
//	tree, err := annotate.New(data, meta)
//
// # Distribution and attachment
//
// When a field holds a nested mapping and its metadata entry is a mapping
// too, the metadata is distributed: the nested tree is built with it and the
// field's own leaf carries no annotation. When the metadata entry is a string
// or absent, it is attached to the leaf wrapping the nested tree and the
// nested fields carry no annotation.
//
// # Lists
//
// An empty list is a leaf like any scalar. The elements of a non-empty list
// are stored under the list's own key, each with the list's metadata entry.
// By default they overwrite each other so the last element wins; use
// WithListExpansion to keep all of them.
//
// # Unsupported kinds
//
// Values that are neither scalars, lists nor mappings (null included) are
// skipped by default. WithStrict turns them into errors, WithDiagnostics and
// WithLogger make the skipping visible.
package annotate
