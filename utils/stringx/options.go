// File: options.go
// Title: Per-Call Options
// Description: Functional options for case sensitivity and search bounds.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-11
// Modified: 2025-08-11
//
// Change History:
// - 2025-08-11 v0.1.0: Initial implementation

package stringx

import "strings"

// Option configures a single call
type Option func(*options)

type options struct {
	caseSensitive bool
	offset        int
	hasOffset     bool
	position      int
	hasPosition   bool
}

func newOptions(opts []Option) options {
	o := options{caseSensitive: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// IgnoreCase compares lower-cased operands
func IgnoreCase() Option {
	return CaseSensitive(false)
}

// CaseSensitive selects unit-for-unit comparison (true, the default) or
// lower-cased comparison (false)
func CaseSensitive(enabled bool) Option {
	return func(o *options) {
		o.caseSensitive = enabled
	}
}

// WithOffset sets where IndexOf and LastIndexOf start searching
func WithOffset(offset int) Option {
	return func(o *options) {
		o.offset = offset
		o.hasOffset = true
	}
}

// WithPosition sets the end bound EndsWith tests against
func WithPosition(position int) Option {
	return func(o *options) {
		o.position = position
		o.hasPosition = true
	}
}

// fold lower-cases s unless the comparison is case-sensitive. Simple
// per-rune lower-casing keeps the rune count, so rune offsets found in the
// folded text are valid in the original.
func (o options) fold(s string) string {
	if o.caseSensitive {
		return s
	}
	return strings.ToLower(s)
}
