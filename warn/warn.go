// Package warn carries the two disjoint reporting channels every codec
// and converter uses: a hard ConversionError return and a soft,
// ordered Warning channel appended to a single top-level call.
// Constructors take a category plus detail fields; message joining
// goes through github.com/tinywasm/fmt so the package stays portable
// to TinyGo/WASM builds.
package warn

import tfmt "github.com/tinywasm/fmt"

// ErrorCategory enumerates ConversionError kinds.
type ErrorCategory uint8

const (
	CategoryMalformedInput ErrorCategory = iota
	CategoryUnresolvedReference
	CategoryUnsupported
	CategoryInvariantViolation
)

func (c ErrorCategory) String() string {
	switch c {
	case CategoryMalformedInput:
		return "MalformedInput"
	case CategoryUnresolvedReference:
		return "UnresolvedReference"
	case CategoryUnsupported:
		return "Unsupported"
	case CategoryInvariantViolation:
		return "InvariantViolation"
	default:
		return "Unknown"
	}
}

// Position is an optional human-readable location hint: a byte offset
// for the binary format, an element path for XML.
type Position struct {
	ByteOffset  *int64
	ElementPath string
}

// ConversionError is the hard-failure channel. It always satisfies the
// standard error interface.
type ConversionError struct {
	Category ErrorCategory
	Name     string
	Detail   string
	Pos      Position
}

func (e *ConversionError) Error() string {
	msg := tfmt.Sprintf("%s: %s", e.Category.String(), e.Name)
	if e.Detail != "" {
		msg = tfmt.Sprintf("%s (%s)", msg, e.Detail)
	}
	if e.Pos.ByteOffset != nil {
		msg = tfmt.Sprintf("%s [offset %d]", msg, *e.Pos.ByteOffset)
	}
	if e.Pos.ElementPath != "" {
		msg = tfmt.Sprintf("%s [at %s]", msg, e.Pos.ElementPath)
	}
	return msg
}

// MalformedInput builds a CategoryMalformedInput error.
func MalformedInput(cause string) *ConversionError {
	return &ConversionError{Category: CategoryMalformedInput, Name: "malformed input", Detail: cause}
}

// MalformedInputAt builds a CategoryMalformedInput error with a byte-offset hint.
func MalformedInputAt(cause string, offset int64) *ConversionError {
	return &ConversionError{Category: CategoryMalformedInput, Name: "malformed input", Detail: cause, Pos: Position{ByteOffset: &offset}}
}

// UnresolvedReference builds a CategoryUnresolvedReference error for a
// dangling id of the given kind.
func UnresolvedReference(kind string, id int) *ConversionError {
	return &ConversionError{
		Category: CategoryUnresolvedReference,
		Name:     "unresolved reference",
		Detail:   tfmt.Sprintf("%s id %d", kind, id),
	}
}

// Unsupported builds a CategoryUnsupported error for a feature the
// target format/operation cannot perform at all (distinct from a
// narrowable Warning).
func Unsupported(feature string) *ConversionError {
	return &ConversionError{Category: CategoryUnsupported, Name: "unsupported", Detail: feature}
}

// InvariantViolation builds a CategoryInvariantViolation error.
func InvariantViolation(name string) *ConversionError {
	return &ConversionError{Category: CategoryInvariantViolation, Name: "invariant violation", Detail: name}
}

// InvariantViolationAt builds a CategoryInvariantViolation error with an element path hint.
func InvariantViolationAt(name, elementPath string) *ConversionError {
	return &ConversionError{Category: CategoryInvariantViolation, Name: "invariant violation", Detail: name, Pos: Position{ElementPath: elementPath}}
}

// WarningCategory enumerates soft-failure kinds.
type WarningCategory uint8

const (
	CategoryDataLoss WarningCategory = iota
	CategoryEnumNarrowed
	CategoryUnknownTag
	CategoryUnknownElement
	CategoryFallbackApplied
)

// Warning is one soft-failure record.
type Warning struct {
	Category WarningCategory
	Feature  string
	Source   string
	Target   string
	Chosen   string
	TagID    uint32
	QName    string
	Detail   string
	seq      int
}

func (w Warning) String() string {
	switch w.Category {
	case CategoryDataLoss:
		return tfmt.Sprintf("data loss: %s", w.Feature)
	case CategoryEnumNarrowed:
		return tfmt.Sprintf("enum narrowed: %s -> %s chose %s", w.Source, w.Target, w.Chosen)
	case CategoryUnknownTag:
		return tfmt.Sprintf("unknown tag: %d", w.TagID)
	case CategoryUnknownElement:
		return tfmt.Sprintf("unknown element: %s", w.QName)
	case CategoryFallbackApplied:
		return tfmt.Sprintf("fallback applied: %s", w.Detail)
	default:
		return "warning"
	}
}

// Channel is the ordered list of soft-failure records returned
// alongside every conversion result, ordered by first occurrence.
type Channel struct {
	warnings []Warning
}

// DataLoss appends a CategoryDataLoss warning.
func (c *Channel) DataLoss(feature string) {
	c.append(Warning{Category: CategoryDataLoss, Feature: feature})
}

// EnumNarrowed appends a CategoryEnumNarrowed warning.
func (c *Channel) EnumNarrowed(source, target, chosen string) {
	c.append(Warning{Category: CategoryEnumNarrowed, Source: source, Target: target, Chosen: chosen})
}

// UnknownTag appends a CategoryUnknownTag warning.
func (c *Channel) UnknownTag(tagID uint32) {
	c.append(Warning{Category: CategoryUnknownTag, TagID: tagID})
}

// UnknownElement appends a CategoryUnknownElement warning.
func (c *Channel) UnknownElement(qname string) {
	c.append(Warning{Category: CategoryUnknownElement, QName: qname})
}

// FallbackApplied appends a CategoryFallbackApplied warning.
func (c *Channel) FallbackApplied(detail string) {
	c.append(Warning{Category: CategoryFallbackApplied, Detail: detail})
}

func (c *Channel) append(w Warning) {
	w.seq = len(c.warnings)
	c.warnings = append(c.warnings, w)
}

// Warnings returns the accumulated warnings in first-occurrence order.
func (c *Channel) Warnings() []Warning {
	return c.warnings
}

// Len reports how many warnings have been recorded.
func (c *Channel) Len() int { return len(c.warnings) }

// Merge appends another channel's warnings, preserving relative order.
func (c *Channel) Merge(other *Channel) {
	if other == nil {
		return
	}
	c.warnings = append(c.warnings, other.warnings...)
}
