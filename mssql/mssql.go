// Package mssql provides the Microsoft SQL Server dialect for pushql.
package mssql

import (
	"strings"

	"github.com/zoobzio/pushql/internal/render"
	"github.com/zoobzio/pushql/internal/types"
)

// ID is the dialect identifier.
const ID = "SQLSERVER"

// New creates the SQL Server dialect.
func New(notes render.Notes) *render.Dialect {
	return render.NewDialect(ID, Capabilities(), rules, notes)
}

var rules = render.Rules{
	Extract:     renderDatePart,
	GroupConcat: renderStringAgg,
}

// Capabilities returns the SQL features supported by SQL Server.
func Capabilities() render.Capabilities {
	caps := render.DefaultCapabilities()
	caps.Supported = caps.Supported.Without(
		render.LimitWithOffset,
		render.BooleanLiterals,
		render.NullsOrdering,
		render.AggregateFilter,
		render.IntervalLiterals,
		render.RegexpLike,
	)
	caps.QuoteOpen, caps.QuoteClose = "[", "]"
	caps.IdentifierCase = render.CaseInsensitive
	caps.LimitStyle = render.TopStyle
	caps.NullSorting = render.NullsSortedLow
	caps.Reserved = render.ReservedWords(
		"BACKUP", "BROWSE", "BULK", "CLUSTERED", "DATABASE", "DBCC", "DENY",
		"DUMP", "FILE", "IDENTITY", "KEY", "NOCHECK", "NONCLUSTERED", "OPENQUERY",
		"PERCENT", "PIVOT", "PLAN", "PROC", "PROCEDURE", "TOP", "TRAN", "UNPIVOT",
	)
	caps.DateLiteral = "CAST(%s AS DATE)"
	caps.TimestampLiteral = "CAST(%s AS DATETIME2)"

	caps.Types[types.TypeDouble] = render.TypeSpec{Name: "FLOAT"}
	caps.Types[types.TypeTimestamp] = render.TypeSpec{Name: "DATETIME2", LocalTimeZone: "DATETIMEOFFSET"}
	caps.Types[types.TypeBoolean] = render.TypeSpec{Name: "BIT"}
	delete(caps.Types, types.TypeInterval)

	caps.Functions["LENGTH"] = render.FunctionSpec{Name: "LEN", Arity: 1}
	caps.Functions["SUBSTR"] = render.FunctionSpec{Name: "SUBSTRING", Arity: 3}
	caps.Functions["CEIL"] = render.FunctionSpec{Name: "CEILING", Arity: 1}
	caps.Functions["LN"] = render.FunctionSpec{Name: "LOG", Arity: 1}
	caps.Functions["MOD"] = render.FunctionSpec{Name: "%", Style: render.InfixStyle, Arity: 2}
	caps.Functions["CONCAT"] = render.FunctionSpec{Name: "CONCAT", Arity: -1}
	for _, name := range []string{"TRUNC", "GREATEST", "LEAST", "CURRENT_DATE", "LPAD", "RPAD"} {
		delete(caps.Functions, name)
	}

	caps.Aggregates["STDDEV"] = "STDEV"
	caps.Aggregates["STDDEV_SAMP"] = "STDEV"
	caps.Aggregates["STDDEV_POP"] = "STDEVP"
	caps.Aggregates["VARIANCE"] = "VAR"
	caps.Aggregates["VAR_SAMP"] = "VAR"
	caps.Aggregates["VAR_POP"] = "VARP"
	return caps
}

// renderDatePart spells EXTRACT(part FROM x) as DATEPART(part, x).
func renderDatePart(g *render.Generator, n *types.Extract) (string, error) {
	arg, err := g.Operand(n.Arg)
	if err != nil {
		return "", err
	}
	return "DATEPART(" + string(n.Part) + ", " + arg + ")", nil
}

// renderStringAgg spells GROUP_CONCAT as
// STRING_AGG(x, sep) WITHIN GROUP (ORDER BY ...).
func renderStringAgg(g *render.Generator, n *types.GroupConcat) (string, error) {
	if n.Distinct {
		return "", g.Unsupported(types.KindGroupConcat, "DISTINCT in GROUP_CONCAT")
	}
	p, err := g.GroupConcatParts(n)
	if err != nil {
		return "", err
	}
	sep := p.Separator
	if sep == "" {
		sep = g.String(",")
	}

	var sql strings.Builder
	sql.WriteString("STRING_AGG(")
	sql.WriteString(p.Arg)
	sql.WriteString(", ")
	sql.WriteString(sep)
	sql.WriteString(")")
	if p.OrderBy != "" {
		sql.WriteString(" WITHIN GROUP (" + p.OrderBy + ")")
	}
	return sql.String(), nil
}
