// Package bigquery provides the Google BigQuery dialect for pushql.
package bigquery

import (
	"strings"

	"github.com/zoobzio/pushql/internal/render"
	"github.com/zoobzio/pushql/internal/types"
)

// ID is the dialect identifier.
const ID = "BIGQUERY"

// New creates the BigQuery dialect.
func New(notes render.Notes) *render.Dialect {
	return render.NewDialect(ID, Capabilities(), rules, notes)
}

var rules = render.Rules{
	GroupConcat: renderStringAgg,
}

// Capabilities returns the SQL features supported by BigQuery.
func Capabilities() render.Capabilities {
	caps := render.DefaultCapabilities()
	caps.Supported = caps.Supported.Without(
		render.NullsOrdering,
		render.AggregateFilter,
		render.IntervalLiterals,
	)
	caps.QuoteOpen, caps.QuoteClose = "`", "`"
	caps.IdentifierCase = render.CaseSensitive
	caps.StringEscape = render.EscapeBackslash
	caps.NullSorting = render.NullsSortedLow
	caps.OmitAscending = true
	caps.TimestampLiteral = "DATETIME %s"
	caps.Regexp = render.FunctionSpec{Name: "REGEXP_CONTAINS", Style: render.CallStyle, Arity: 2}

	caps.Types = map[types.TypeKind]render.TypeSpec{
		types.TypeDecimal:   {Name: "NUMERIC"},
		types.TypeDouble:    {Name: "FLOAT64"},
		types.TypeVarchar:   {Name: "STRING", NoParams: true},
		types.TypeChar:      {Name: "STRING", NoParams: true},
		types.TypeDate:      {Name: "DATE"},
		types.TypeTimestamp: {Name: "DATETIME", LocalTimeZone: "TIMESTAMP"},
		types.TypeBoolean:   {Name: "BOOL"},
		types.TypeGeometry:  {Name: "GEOGRAPHY", NoParams: true},
	}
	caps.Functions["POWER"] = render.FunctionSpec{Name: "POW", Arity: 2}
	caps.Functions["FLOAT_DIV"] = render.FunctionSpec{Name: "IEEE_DIVIDE", Arity: 2}
	caps.Functions["TRUNC"] = render.FunctionSpec{Name: "TRUNC", Arity: 1}
	return caps
}

// renderStringAgg spells GROUP_CONCAT as STRING_AGG([DISTINCT] x, sep ORDER BY ...).
func renderStringAgg(g *render.Generator, n *types.GroupConcat) (string, error) {
	p, err := g.GroupConcatParts(n)
	if err != nil {
		return "", err
	}
	var sql strings.Builder
	sql.WriteString("STRING_AGG(")
	if p.Distinct {
		sql.WriteString("DISTINCT ")
	}
	sql.WriteString(p.Arg)
	if p.Separator != "" {
		sql.WriteString(", " + p.Separator)
	}
	if p.OrderBy != "" {
		sql.WriteString(" " + p.OrderBy)
	}
	sql.WriteString(")")
	return sql.String(), nil
}
