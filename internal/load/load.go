package load

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"jsonplus/annotate"
)

var (
	ErrShapeMismatch = errors.New("data and metadata documents do not have the same shape")
	ErrMergeKey      = errors.New("merge keys are not supported")
)

// Record is one data/metadata pair. Metadata is nil when no annotation
// document exists for it.
type Record struct {
	Index    int
	Data     any
	Metadata any
}

// MetaPath returns the conventional metadata path for a data document:
// "dir/data.json" becomes "dir/data.meta.json".
func MetaPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".meta" + ext
}

// LoadFile reads and parses a YAML or JSON document.
func LoadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// LoadPair loads the data document at dataPath and the metadata document at
// metaPath, or at MetaPath(dataPath) when metaPath is empty. A missing
// conventional metadata document yields records without metadata; a missing
// explicit one is an error.
func LoadPair(dataPath, metaPath string) ([]Record, error) {
	data, err := LoadFile(dataPath)
	if err != nil {
		return nil, err
	}

	explicit := metaPath != ""
	if !explicit {
		metaPath = MetaPath(dataPath)
	}

	meta, err := LoadFile(metaPath)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}

		meta = nil
	}

	return Pair(data, meta)
}

// Pair zips a parsed data document with its parsed metadata document.
func Pair(data, meta any) ([]Record, error) {
	list, isList := data.([]any)
	if !isList {
		if _, ok := meta.([]any); ok {
			return nil, fmt.Errorf("%w: data is a single document, metadata is a list", ErrShapeMismatch)
		}

		return []Record{{Data: data, Metadata: meta}}, nil
	}

	records := make([]Record, len(list))
	for i, d := range list {
		records[i] = Record{Index: i, Data: d}
	}

	if meta == nil {
		return records, nil
	}

	metaList, ok := meta.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: data is a list, metadata is %T", ErrShapeMismatch, meta)
	}

	if len(metaList) != len(list) {
		return nil, fmt.Errorf("%w: %d data records, %d metadata records", ErrShapeMismatch, len(list), len(metaList))
	}

	for i, m := range metaList {
		records[i].Metadata = m
	}

	return records, nil
}

// ParseDocument parses YAML or JSON text. Mappings become *annotate.Map,
// sequences []any, and scalars string, int, float64, bool or nil.
func ParseDocument(data []byte) (any, error) {
	var root yaml.Node

	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return fromNode(&root)
}

func fromNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return fromNode(node.Content[0])
	case yaml.AliasNode:
		return fromNode(node.Alias)
	case yaml.MappingNode:
		m := annotate.NewMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.ShortTag() == "!!merge" {
				return nil, fmt.Errorf("line %d: %w", key.Line, ErrMergeKey)
			}

			v, err := fromNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}

			m.Set(key.Value, v)
		}
		return m, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := fromNode(item)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!bool", "!!int", "!!float":
			var v any

			err := node.Decode(&v)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", node.Line, err)
			}

			return v, nil
		default:
			return node.Value, nil
		}
	default:
		return nil, fmt.Errorf("line %d: unexpected node kind %v", node.Line, node.Kind)
	}
}
