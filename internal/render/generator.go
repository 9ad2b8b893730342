package render

import (
	"strings"

	"github.com/zoobzio/pushql/internal/types"
)

// Generator walks a syntax tree and emits SQL for one dialect and context.
// A Generator is cheap and holds no state between calls; it is safe to share
// as long as the rules it runs do not keep state either.
type Generator struct {
	dialect  *Dialect
	ctx      Context
	defaults Rules
}

var _ types.Visitor = (*Generator)(nil)

// Generate returns the SQL text for n.
func (g *Generator) Generate(n types.Node) (string, error) {
	if n == nil {
		return "", NewUnsupportedPushdownError(g.dialect.id, "", "empty statement")
	}
	return n.Accept(g)
}

// Dialect returns the dialect being generated.
func (g *Generator) Dialect() *Dialect { return g.dialect }

// Context returns the generation context.
func (g *Generator) Context() Context { return g.ctx }

// Caps returns the capabilities of the dialect. The returned value shares its
// maps with the dialect and must not be modified.
func (g *Generator) Caps() *Capabilities { return &g.dialect.caps }

// Defaults returns the default rule table so overrides can delegate to it.
func (g *Generator) Defaults() *Rules { return &g.defaults }

// Unsupported builds an UnsupportedPushdownError for the current dialect.
func (g *Generator) Unsupported(kind types.Kind, feature string, hint ...string) error {
	return NewUnsupportedPushdownError(g.dialect.id, kind, feature, hint...)
}

// Require fails unless the dialect supports c.
func (g *Generator) Require(c Capability, kind types.Kind, feature string) error {
	if g.dialect.caps.Has(c) {
		return nil
	}
	return g.Unsupported(kind, feature)
}

// Quote applies identifier quoting to id according to dialect and context.
func (g *Generator) Quote(id string) string {
	return g.dialect.caps.quote(id, g.ctx.QuoteIdentifiers())
}

// String renders s as a string literal.
func (g *Generator) String(s string) string {
	return g.dialect.caps.stringLiteral(s)
}

// Predicate renders n where a boolean condition is expected. Dialects without
// boolean literals cannot use a literal or a boolean column as a condition, so
// those are turned into comparisons.
func (g *Generator) Predicate(n types.Node) (string, error) {
	if g.dialect.caps.Has(BooleanLiterals) {
		return n.Accept(g)
	}
	switch x := n.(type) {
	case *types.Literal:
		if x.Type == types.LiteralBool {
			if x.Value == "true" {
				return "1 = 1", nil
			}
			return "1 = 0", nil
		}
	case *types.Column:
		if x.Type.Kind == types.TypeBoolean {
			col, err := x.Accept(g)
			if err != nil {
				return "", err
			}
			return col + " = 1", nil
		}
	}
	return n.Accept(g)
}

// Operand renders n where a value is expected, wrapping it in parentheses
// when it is itself a predicate. Dialects without boolean literals have no
// boolean values either, so a predicate there becomes a CASE yielding 1, 0 or
// NULL when the predicate is unknown.
func (g *Generator) Operand(n types.Node) (string, error) {
	if isPredicate(n) && !g.dialect.caps.Has(BooleanLiterals) {
		s, err := g.Predicate(n)
		if err != nil {
			return "", err
		}
		return "CASE WHEN " + s + " THEN 1 WHEN NOT (" + s + ") THEN 0 END", nil
	}
	s, err := n.Accept(g)
	if err != nil {
		return "", err
	}
	if isPredicate(n) {
		return "(" + s + ")", nil
	}
	if _, ok := n.(*types.Select); ok {
		return "(" + s + ")", nil
	}
	return s, nil
}

// List renders nodes with Operand and joins them with ", ".
func (g *Generator) List(nodes []types.Node) (string, error) {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		s, err := g.Operand(n)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

// TableName renders a table name qualified by catalog and schema as far as
// the dialect and context allow.
func (g *Generator) TableName(name string) string {
	var parts []string
	caps := &g.dialect.caps
	if caps.QualifyCatalog && g.ctx.Catalog() != "" {
		parts = append(parts, g.Quote(g.ctx.Catalog()))
	}
	if caps.QualifySchema && g.ctx.Schema() != "" {
		parts = append(parts, g.Quote(g.ctx.Schema()))
	}
	parts = append(parts, g.Quote(name))
	return strings.Join(parts, ".")
}

func isPredicate(n types.Node) bool {
	switch n.(type) {
	case *types.And, *types.Or, *types.Not, *types.Comparison, *types.Like,
		*types.RegexpLike, *types.Between, *types.InList, *types.InSubquery,
		*types.IsNull, *types.IsNotNull:
		return true
	}
	return false
}

func (g *Generator) VisitSelect(n *types.Select) (string, error) {
	return g.dialect.rules.Select(g, n)
}

func (g *Generator) VisitSelectList(n *types.SelectList) (string, error) {
	return g.dialect.rules.SelectList(g, n)
}

func (g *Generator) VisitTable(n *types.Table) (string, error) {
	return g.dialect.rules.Table(g, n)
}

func (g *Generator) VisitJoin(n *types.Join) (string, error) {
	return g.dialect.rules.Join(g, n)
}

func (g *Generator) VisitSubSelect(n *types.SubSelect) (string, error) {
	return g.dialect.rules.SubSelect(g, n)
}

func (g *Generator) VisitColumn(n *types.Column) (string, error) {
	return g.dialect.rules.Column(g, n)
}

func (g *Generator) VisitLiteral(n *types.Literal) (string, error) {
	return g.dialect.rules.Literal(g, n)
}

func (g *Generator) VisitAnd(n *types.And) (string, error) {
	return g.dialect.rules.And(g, n)
}

func (g *Generator) VisitOr(n *types.Or) (string, error) {
	return g.dialect.rules.Or(g, n)
}

func (g *Generator) VisitNot(n *types.Not) (string, error) {
	return g.dialect.rules.Not(g, n)
}

func (g *Generator) VisitComparison(n *types.Comparison) (string, error) {
	return g.dialect.rules.Comparison(g, n)
}

func (g *Generator) VisitLike(n *types.Like) (string, error) {
	return g.dialect.rules.Like(g, n)
}

func (g *Generator) VisitRegexpLike(n *types.RegexpLike) (string, error) {
	return g.dialect.rules.RegexpLike(g, n)
}

func (g *Generator) VisitBetween(n *types.Between) (string, error) {
	return g.dialect.rules.Between(g, n)
}

func (g *Generator) VisitInList(n *types.InList) (string, error) {
	return g.dialect.rules.InList(g, n)
}

func (g *Generator) VisitInSubquery(n *types.InSubquery) (string, error) {
	return g.dialect.rules.InSubquery(g, n)
}

func (g *Generator) VisitIsNull(n *types.IsNull) (string, error) {
	return g.dialect.rules.IsNull(g, n)
}

func (g *Generator) VisitIsNotNull(n *types.IsNotNull) (string, error) {
	return g.dialect.rules.IsNotNull(g, n)
}

func (g *Generator) VisitFunction(n *types.Function) (string, error) {
	return g.dialect.rules.Function(g, n)
}

func (g *Generator) VisitExtract(n *types.Extract) (string, error) {
	return g.dialect.rules.Extract(g, n)
}

func (g *Generator) VisitCast(n *types.Cast) (string, error) {
	return g.dialect.rules.Cast(g, n)
}

func (g *Generator) VisitCase(n *types.Case) (string, error) {
	return g.dialect.rules.Case(g, n)
}

func (g *Generator) VisitAggregate(n *types.Aggregate) (string, error) {
	return g.dialect.rules.Aggregate(g, n)
}

func (g *Generator) VisitGroupConcat(n *types.GroupConcat) (string, error) {
	return g.dialect.rules.GroupConcat(g, n)
}

func (g *Generator) VisitWindow(n *types.Window) (string, error) {
	return g.dialect.rules.Window(g, n)
}

func (g *Generator) VisitGroupBy(n *types.GroupBy) (string, error) {
	return g.dialect.rules.GroupBy(g, n)
}

func (g *Generator) VisitOrderBy(n *types.OrderBy) (string, error) {
	return g.dialect.rules.OrderBy(g, n)
}

func (g *Generator) VisitLimit(n *types.Limit) (string, error) {
	return g.dialect.rules.Limit(g, n)
}
