// Package postgres provides the PostgreSQL dialect for pushql.
package postgres

import (
	"strings"

	"github.com/zoobzio/pushql/internal/render"
	"github.com/zoobzio/pushql/internal/types"
)

// ID is the dialect identifier.
const ID = "POSTGRESQL"

// defaultSeparator is used when a GROUP_CONCAT carries none; STRING_AGG
// has no implicit delimiter.
const defaultSeparator = ","

// New creates the PostgreSQL dialect.
func New(notes render.Notes) *render.Dialect {
	return render.NewDialect(ID, Capabilities(), rules, notes)
}

var rules = render.Rules{
	GroupConcat: renderStringAgg,
}

// Capabilities returns the SQL features supported by PostgreSQL.
func Capabilities() render.Capabilities {
	caps := render.DefaultCapabilities()
	caps.IdentifierCase = render.LowerCase
	caps.CastStyle = render.CastDoubleColon
	caps.NullSorting = render.NullsSortedHigh
	caps.Reserved = render.ReservedWords(
		"ANALYSE", "ANALYZE", "ARRAY", "ASYMMETRIC", "CONCURRENTLY", "FREEZE",
		"ILIKE", "ISNULL", "LATERAL", "NOTNULL", "OFFSET", "OVERLAPS", "PLACING",
		"RETURNING", "SIMILAR", "VARIADIC", "VERBOSE", "WINDOW",
	)
	caps.Regexp = render.FunctionSpec{Name: "~", Style: render.InfixStyle, Arity: 2}

	caps.Types[types.TypeTimestamp] = render.TypeSpec{Name: "TIMESTAMP", LocalTimeZone: "TIMESTAMPTZ"}
	caps.Types[types.TypeGeometry] = render.TypeSpec{Name: "GEOMETRY", NoParams: true}

	caps.Functions["CONCAT"] = render.FunctionSpec{Name: "||", Style: render.InfixStyle, Arity: -1}
	caps.Functions["MOD"] = render.FunctionSpec{Name: "%", Style: render.InfixStyle, Arity: 2}
	return caps
}

// renderStringAgg spells GROUP_CONCAT as STRING_AGG([DISTINCT] x, sep ORDER BY ...).
func renderStringAgg(g *render.Generator, n *types.GroupConcat) (string, error) {
	p, err := g.GroupConcatParts(n)
	if err != nil {
		return "", err
	}
	sep := p.Separator
	if sep == "" {
		sep = g.String(defaultSeparator)
	}

	var sql strings.Builder
	sql.WriteString("STRING_AGG(")
	if p.Distinct {
		sql.WriteString("DISTINCT ")
	}
	sql.WriteString(p.Arg)
	sql.WriteString(", ")
	sql.WriteString(sep)
	if p.OrderBy != "" {
		sql.WriteString(" " + p.OrderBy)
	}
	sql.WriteString(")")
	return sql.String(), nil
}
