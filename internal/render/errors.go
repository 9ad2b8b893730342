package render

import (
	"fmt"

	"github.com/zoobzio/pushql/internal/types"
)

// UnsupportedPushdownError indicates a well-formed tree the dialect cannot express.
type UnsupportedPushdownError struct {
	Kind    types.Kind
	Feature string
	Dialect string
	Hint    string
}

func (e *UnsupportedPushdownError) Error() string {
	msg := fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
	if e.Kind != "" {
		msg += fmt.Sprintf(" (%s node)", e.Kind)
	}
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// NewUnsupportedPushdownError creates a new unsupported pushdown error.
func NewUnsupportedPushdownError(dialect string, kind types.Kind, feature string, hint ...string) error {
	err := &UnsupportedPushdownError{Kind: kind, Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}
