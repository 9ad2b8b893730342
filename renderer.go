package pushql

import "github.com/zoobzio/pushql/internal/types"

// Renderer turns a syntax tree into SQL text for one dialect.
// *Dialect implements it.
type Renderer interface {
	// ID returns the dialect identifier.
	ID() string

	// Generate renders n for ctx.
	Generate(n types.Node, ctx Context) (string, error)
}

var _ Renderer = (*Dialect)(nil)
