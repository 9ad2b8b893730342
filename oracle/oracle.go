// Package oracle provides the Oracle Database dialect for pushql.
package oracle

import (
	"strings"

	"github.com/zoobzio/pushql/internal/render"
	"github.com/zoobzio/pushql/internal/types"
)

// ID is the dialect identifier.
const ID = "ORACLE"

const (
	// fetchFirstVersion introduced OFFSET/FETCH FIRST.
	fetchFirstVersion = "v12.0.0"
	// listaggDistinctVersion accepts DISTINCT inside LISTAGG.
	listaggDistinctVersion = "v19.0.0"
)

// New creates the Oracle dialect for the server described by notes.
func New(notes render.Notes) *render.Dialect {
	return render.NewDialect(ID, Capabilities(notes), rules, notes)
}

var rules = render.Rules{
	GroupConcat: renderListagg,
}

// Capabilities returns the SQL features supported by the Oracle server
// described by notes.
func Capabilities(notes render.Notes) render.Capabilities {
	caps := render.DefaultCapabilities()
	caps.Supported = caps.Supported.Without(
		render.BooleanLiterals,
		render.AggregateFilter,
	)
	if !notes.AtLeast(fetchFirstVersion) {
		caps.Supported = caps.Supported.Without(render.Limit, render.LimitWithOffset)
	}
	caps.LimitStyle = render.FetchFirstStyle
	caps.DummyTable = "DUAL"
	caps.TableAliasKeyword = false
	caps.QualifyCatalog = false
	caps.Reserved = render.ReservedWords(
		"ACCESS", "AUDIT", "CLUSTER", "COMMENT", "COMPRESS", "CONNECT", "EXCLUSIVE",
		"IDENTIFIED", "LEVEL", "LOCK", "MINUS", "MODE", "NOWAIT", "NUMBER", "PRIOR",
		"RAW", "RESOURCE", "ROWID", "ROWNUM", "SHARE", "SIZE", "START", "SYNONYM",
		"SYSDATE", "UID", "VARCHAR2",
	)

	caps.Types = map[types.TypeKind]render.TypeSpec{
		types.TypeDecimal:   {Name: "NUMBER"},
		types.TypeDouble:    {Name: "BINARY_DOUBLE"},
		types.TypeVarchar:   {Name: "VARCHAR2"},
		types.TypeChar:      {Name: "CHAR"},
		types.TypeDate:      {Name: "DATE"},
		types.TypeTimestamp: {Name: "TIMESTAMP", LocalTimeZone: "TIMESTAMP WITH LOCAL TIME ZONE"},
		types.TypeInterval:  {Name: "INTERVAL"},
	}

	caps.Functions["CONCAT"] = render.FunctionSpec{Name: "||", Style: render.InfixStyle, Arity: -1}
	caps.Aggregates["MEDIAN"] = "MEDIAN"
	caps.WindowFunctions["MEDIAN"] = "MEDIAN"
	caps.WindowFunctions["RATIO_TO_REPORT"] = "RATIO_TO_REPORT"
	return caps
}

// renderListagg spells GROUP_CONCAT as
// LISTAGG([DISTINCT] x, sep) WITHIN GROUP (ORDER BY ...).
func renderListagg(g *render.Generator, n *types.GroupConcat) (string, error) {
	if n.Distinct && !g.Dialect().Notes().AtLeast(listaggDistinctVersion) {
		return "", g.Unsupported(types.KindGroupConcat, "DISTINCT in LISTAGG", "requires Oracle 19c")
	}
	p, err := g.GroupConcatParts(n)
	if err != nil {
		return "", err
	}
	sep := p.Separator
	if sep == "" {
		sep = g.String(",")
	}
	orderBy := p.OrderBy
	if orderBy == "" {
		orderBy = "ORDER BY NULL"
	}

	var sql strings.Builder
	sql.WriteString("LISTAGG(")
	if p.Distinct {
		sql.WriteString("DISTINCT ")
	}
	sql.WriteString(p.Arg + ", " + sep + ") WITHIN GROUP (" + orderBy + ")")
	return sql.String(), nil
}
