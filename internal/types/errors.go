package types

import "fmt"

// ConstructionError reports a node whose local invariant does not hold.
type ConstructionError struct {
	Kind   Kind
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("invalid %s node: %s", e.Kind, e.Reason)
}

func constructionErrorf(kind Kind, format string, args ...any) error {
	return &ConstructionError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
