package render

import (
	"strings"

	"github.com/zoobzio/pushql/internal/types"
)

// Dialect is a named capability model together with its merged rule table.
// A Dialect never changes after NewDialect returns and may be shared between
// goroutines.
type Dialect struct {
	id    string
	caps  Capabilities
	rules Rules
	notes Notes
}

// NewDialect builds a dialect. caps is copied; overrides may be partial.
func NewDialect(id string, caps Capabilities, overrides Rules, notes Notes) *Dialect {
	return &Dialect{
		id:    strings.ToUpper(id),
		caps:  caps.Clone(),
		rules: DefaultRules().Merge(overrides),
		notes: notes.clone(),
	}
}

// ID returns the upper case dialect identifier.
func (d *Dialect) ID() string { return d.id }

// Capabilities returns a copy of the capability model.
func (d *Dialect) Capabilities() Capabilities { return d.caps.Clone() }

// Supports reports whether the dialect has capability c.
func (d *Dialect) Supports(c Capability) bool { return d.caps.Has(c) }

// CapabilityNames returns the sorted capability report of the dialect.
func (d *Dialect) CapabilityNames() []string { return d.caps.Names() }

// Notes returns a copy of the adapter notes the dialect was built from.
func (d *Dialect) Notes() Notes { return d.notes.clone() }

// Generator returns a generator for ctx.
func (d *Dialect) Generator(ctx Context) *Generator {
	return &Generator{dialect: d, ctx: ctx, defaults: DefaultRules()}
}

// Generate renders n for ctx.
func (d *Dialect) Generate(n types.Node, ctx Context) (string, error) {
	return d.Generator(ctx).Generate(n)
}
