// Package sqlite provides the SQLite dialect for pushql.
package sqlite

import (
	"github.com/zoobzio/pushql/internal/render"
	"github.com/zoobzio/pushql/internal/types"
)

// ID is the dialect identifier.
const ID = "SQLITE"

// First releases carrying each feature.
const (
	windowVersion        = "v3.25.0"
	nullsOrderingVersion = "v3.30.0"
	filterVersion        = "v3.30.0"
	outerJoinVersion     = "v3.39.0"
	concatOrderVersion   = "v3.44.0"
)

// strftime formats per date part. SECOND keeps the fraction.
var strftimeFormats = map[types.DatePart]string{
	types.PartYear:   "%Y",
	types.PartMonth:  "%m",
	types.PartDay:    "%d",
	types.PartHour:   "%H",
	types.PartMinute: "%M",
	types.PartSecond: "%f",
}

// New creates the SQLite dialect for the library version described by notes.
func New(notes render.Notes) *render.Dialect {
	return render.NewDialect(ID, Capabilities(notes), rules, notes)
}

var rules = render.Rules{
	Extract:     renderStrftime,
	GroupConcat: renderGroupConcat,
}

// Capabilities returns the SQL features supported by the SQLite library
// described by notes.
func Capabilities(notes render.Notes) render.Capabilities {
	caps := render.DefaultCapabilities()
	caps.Supported = caps.Supported.Without(
		render.IntervalLiterals,
		render.RegexpLike,
	)
	gates := []struct {
		version string
		caps    []render.Capability
	}{
		{windowVersion, []render.Capability{render.WindowFunctions}},
		{nullsOrderingVersion, []render.Capability{render.NullsOrdering}},
		{filterVersion, []render.Capability{render.AggregateFilter}},
		{outerJoinVersion, []render.Capability{render.RightOuterJoin, render.FullOuterJoin}},
		{concatOrderVersion, []render.Capability{render.GroupConcatOrderBy}},
	}
	for _, gate := range gates {
		if !notes.AtLeast(gate.version) {
			caps.Supported = caps.Supported.Without(gate.caps...)
		}
	}

	caps.IdentifierCase = render.CaseInsensitive
	caps.NullSorting = render.NullsSortedLow
	caps.QualifyCatalog = false
	caps.DateLiteral = "DATE(%s)"
	caps.TimestampLiteral = "%s"
	caps.Reserved = render.ReservedWords(
		"ABORT", "ATTACH", "AUTOINCREMENT", "DETACH", "GLOB", "INDEXED", "ISNULL",
		"NOTNULL", "PRAGMA", "RAISE", "REGEXP", "REINDEX", "VACUUM",
	)

	caps.Types = map[types.TypeKind]render.TypeSpec{
		types.TypeDecimal: {Name: "NUMERIC", NoParams: true},
		types.TypeDouble:  {Name: "REAL"},
		types.TypeVarchar: {Name: "TEXT", NoParams: true},
		types.TypeChar:    {Name: "TEXT", NoParams: true},
		types.TypeBoolean: {Name: "INTEGER"},
	}

	keep := map[string]bool{
		"ADD": true, "SUB": true, "MULT": true, "FLOAT_DIV": true, "NEG": true,
		"ABS": true, "ROUND": true, "SIGN": true, "SUBSTR": true, "UPPER": true,
		"LOWER": true, "LENGTH": true, "TRIM": true, "LTRIM": true, "RTRIM": true,
		"REPLACE": true, "COALESCE": true, "NULLIF": true,
		"CURRENT_DATE": true, "CURRENT_TIMESTAMP": true,
	}
	for name := range caps.Functions {
		if !keep[name] {
			delete(caps.Functions, name)
		}
	}
	caps.Functions["CONCAT"] = render.FunctionSpec{Name: "||", Style: render.InfixStyle, Arity: -1}
	caps.Functions["MOD"] = render.FunctionSpec{Name: "%", Style: render.InfixStyle, Arity: 2}
	caps.Functions["GREATEST"] = render.FunctionSpec{Name: "MAX", Arity: -1}
	caps.Functions["LEAST"] = render.FunctionSpec{Name: "MIN", Arity: -1}

	caps.Aggregates = map[string]string{
		"COUNT": "COUNT",
		"SUM":   "SUM",
		"MIN":   "MIN",
		"MAX":   "MAX",
		"AVG":   "AVG",
	}
	return caps
}

// renderStrftime spells EXTRACT through STRFTIME, cast back to a number.
func renderStrftime(g *render.Generator, n *types.Extract) (string, error) {
	format, ok := strftimeFormats[n.Part]
	if !ok {
		return "", g.Unsupported(types.KindExtract, "EXTRACT "+string(n.Part))
	}
	arg, err := g.Operand(n.Arg)
	if err != nil {
		return "", err
	}
	target := "INTEGER"
	if n.Part == types.PartSecond {
		target = "REAL"
	}
	return "CAST(STRFTIME(" + g.String(format) + ", " + arg + ") AS " + target + ")", nil
}

// renderGroupConcat spells GROUP_CONCAT(x[, sep][ ORDER BY ...]). SQLite
// only accepts DISTINCT with the default separator.
func renderGroupConcat(g *render.Generator, n *types.GroupConcat) (string, error) {
	p, err := g.GroupConcatParts(n)
	if err != nil {
		return "", err
	}
	sep := p.Separator
	if p.Distinct && n.Separator != nil {
		if *n.Separator != "," {
			return "", g.Unsupported(types.KindGroupConcat, "DISTINCT with a separator")
		}
		sep = ""
	}

	sql := "GROUP_CONCAT("
	if p.Distinct {
		sql += "DISTINCT "
	}
	sql += p.Arg
	if sep != "" {
		sql += ", " + sep
	}
	if p.OrderBy != "" {
		sql += " " + p.OrderBy
	}
	return sql + ")", nil
}
