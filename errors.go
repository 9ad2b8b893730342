package pushql

import (
	"context"

	"github.com/pkg/errors"
)

// ErrorClass is the category of a pushdown failure.
type ErrorClass string

const (
	ClassNone        ErrorClass = ""
	ClassMalformed   ErrorClass = "malformed_request"
	ClassConstruct   ErrorClass = "ast_construction"
	ClassUnsupported ErrorClass = "unsupported_pushdown"
	ClassDialect     ErrorClass = "unknown_dialect"
	ClassCanceled    ErrorClass = "canceled"
	ClassInternal    ErrorClass = "internal"
)

// ErrUnhandledRequest is returned for adapter requests outside the pushdown path.
var ErrUnhandledRequest = errors.New("request type is not handled by pushql")

// Classify maps err to its category. Wrapped errors are unwrapped.
func Classify(err error) ErrorClass {
	if err == nil {
		return ClassNone
	}
	var (
		malformed   *MalformedRequestError
		construct   *ConstructionError
		unsupported *UnsupportedPushdownError
		unknown     *UnknownDialectError
	)
	switch {
	case errors.As(err, &malformed):
		return ClassMalformed
	case errors.As(err, &construct):
		return ClassConstruct
	case errors.As(err, &unsupported):
		return ClassUnsupported
	case errors.As(err, &unknown):
		return ClassDialect
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ClassCanceled
	}
	return ClassInternal
}

// Fallback reports whether the caller should run the query without this
// pushdown instead of failing it.
func Fallback(err error) bool {
	return Classify(err) == ClassUnsupported
}
