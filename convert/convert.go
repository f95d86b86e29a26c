// Package convert defines the result envelope the binary and XML
// converters (binconv, xmlconv) and the root entry points share: a
// converted value paired with the soft-failure warnings collected
// along the way. A hard failure is the returned error, never a member
// of this type.
package convert

import "github.com/tinywasm/hwpconv/warn"

// Result carries a successfully converted value plus every warning its
// conversion accumulated, in first-occurrence order.
type Result[T any] struct {
	Value    T
	Warnings []warn.Warning
}

// NewResult packages a value with the contents of a warning channel.
func NewResult[T any](value T, warnings *warn.Channel) Result[T] {
	var ws []warn.Warning
	if warnings != nil {
		ws = warnings.Warnings()
	}
	return Result[T]{Value: value, Warnings: ws}
}
