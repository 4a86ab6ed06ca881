package diagnostic

import "fmt"

// Codes emitted by the annotate package.
const (
	CodeUnsupportedKind = "unsupported_kind"
	CodeListCollapsed   = "list_collapsed"
)

// Severity of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic is a single finding attached to a field path.
type Diagnostic struct {
	Severity Severity
	// Code is a stable identifier, one of the Code* constants.
	Code string
	// FieldPath locates the field, e.g. "owner.tags[2]".
	FieldPath string
	Message   string
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.FieldPath != "" {
		return d.FieldPath + ": " + msg
	}

	return msg
}

// Diagnostics accumulates findings in the order they were reported. The zero
// value is ready to use.
type Diagnostics struct {
	items []Diagnostic
}

// Warnf records a warning diagnostic.
func (d *Diagnostics) Warnf(code, path, format string, args ...any) {
	d.items = append(d.items, Diagnostic{
		Severity:  SeverityWarning,
		Code:      code,
		FieldPath: path,
		Message:   fmt.Sprintf(format, args...),
	})
}

// All returns every diagnostic in report order.
func (d *Diagnostics) All() []Diagnostic {
	return d.items
}

// ByCode returns the diagnostics carrying code.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic
	for _, item := range d.items {
		if item.Code == code {
			out = append(out, item)
		}
	}

	return out
}

func (d *Diagnostics) Len() int { return len(d.items) }

// Merge appends the findings of other.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.items = append(d.items, other.items...)
}
