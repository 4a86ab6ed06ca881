// Package load reads a data document and its sibling metadata document and
// pairs them into records ready for annotation.
//
// Documents are parsed with gopkg.in/yaml.v3, which accepts both YAML and
// JSON input. Mapping key order is preserved: mappings are returned as
// *annotate.Map.
//
// The metadata document of "data.json" is "data.meta.json". A document may
// hold a single mapping or a list of mappings; in the latter case the
// metadata document must be a list of the same length and records are
// paired by position.
package load
