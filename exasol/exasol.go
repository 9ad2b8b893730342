// Package exasol provides the Exasol dialect for pushql.
//
// Exasol is the reference dialect: it supports every node kind the request
// parser can produce, so a pushdown routed back into Exasol never fails.
package exasol

import (
	"github.com/zoobzio/pushql/internal/render"
	"github.com/zoobzio/pushql/internal/types"
)

// ID is the dialect identifier.
const ID = "EXASOL"

// New creates the Exasol dialect. Exasol behaves the same for every version,
// so notes are only recorded.
func New(notes render.Notes) *render.Dialect {
	return render.NewDialect(ID, Capabilities(), render.Rules{}, notes)
}

// Capabilities returns the SQL features supported by Exasol.
func Capabilities() render.Capabilities {
	caps := render.DefaultCapabilities()
	// virtual schema names are always emitted quoted
	caps.IdentifierCase = render.CaseSensitive
	caps.QualifyCatalog = false
	caps.Regexp = render.FunctionSpec{Name: "REGEXP_LIKE", Style: render.InfixStyle, Arity: 2}

	caps.Types[types.TypeDouble] = render.TypeSpec{Name: "DOUBLE"}
	caps.Types[types.TypeTimestamp] = render.TypeSpec{Name: "TIMESTAMP", LocalTimeZone: "TIMESTAMP WITH LOCAL TIME ZONE"}
	caps.Types[types.TypeGeometry] = render.TypeSpec{Name: "GEOMETRY", NoParams: true}
	caps.Types[types.TypeHashtype] = render.TypeSpec{Name: "HASHTYPE", NoParams: true}

	for _, name := range []string{"MEDIAN", "FIRST_VALUE", "LAST_VALUE"} {
		caps.Aggregates[name] = name
	}
	caps.WindowFunctions["MEDIAN"] = "MEDIAN"
	caps.WindowFunctions["RATIO_TO_REPORT"] = "RATIO_TO_REPORT"

	for _, name := range []string{"ADD_DAYS", "ADD_MONTHS", "ADD_YEARS", "DAYS_BETWEEN", "MONTHS_BETWEEN", "TO_CHAR", "TO_DATE", "TO_NUMBER"} {
		caps.Functions[name] = render.FunctionSpec{Name: name, Style: render.CallStyle, Arity: -1}
	}
	caps.Functions["DIV"] = render.FunctionSpec{Name: "DIV", Style: render.CallStyle, Arity: 2}
	return caps
}
