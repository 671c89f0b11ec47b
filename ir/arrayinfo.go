package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// ArrayInfo is the parsed form of a repeat-count expression ("min..max").
type ArrayInfo struct {
	Min int
	Max int
}

// IsArray reports whether the expression declares a repeating element.
func (a *ArrayInfo) IsArray() bool {
	return a.Max > 1
}

// IsOptional reports whether the element may be absent entirely.
func (a *ArrayInfo) IsOptional() bool {
	return a.Min == 0
}

// ParseArrayInfo parses a textual repeat-count expression of the form
// "min..max", e.g. "0..9" or "1..1".
func ParseArrayInfo(expr string) (*ArrayInfo, error) {
	parts := strings.SplitN(strings.TrimSpace(expr), "..", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("repeat count %q: expected min..max", expr)
	}
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("repeat count %q: bad minimum: %w", expr, err)
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("repeat count %q: bad maximum: %w", expr, err)
	}
	if min < 0 || max < min {
		return nil, fmt.Errorf("repeat count %q: invalid range", expr)
	}
	return &ArrayInfo{Min: min, Max: max}, nil
}
