package wire

import "fmt"

// MalformedRequestError indicates a request that does not have the expected
// shape: a missing or mistyped field, an unknown node tag or a reference that
// does not resolve.
type MalformedRequestError struct {
	Path   string
	Reason string
}

func (e *MalformedRequestError) Error() string {
	if e.Path == "" {
		return "malformed request: " + e.Reason
	}
	return fmt.Sprintf("malformed request at %s: %s", e.Path, e.Reason)
}

func malformed(path, format string, args ...any) error {
	return &MalformedRequestError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
