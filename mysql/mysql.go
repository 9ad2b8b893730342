// Package mysql provides the MySQL dialect for pushql. MariaDB speaks the
// same SQL for everything pushql generates and uses this dialect too.
package mysql

import (
	"github.com/zoobzio/pushql/internal/render"
	"github.com/zoobzio/pushql/internal/types"
)

// ID is the dialect identifier.
const ID = "MYSQL"

// windowVersion is the first release with window functions.
const windowVersion = "v8.0.0"

// New creates the MySQL dialect for the server described by notes.
func New(notes render.Notes) *render.Dialect {
	return render.NewDialect(ID, Capabilities(notes), render.Rules{}, notes)
}

// Capabilities returns the SQL features supported by the MySQL server
// described by notes.
func Capabilities(notes render.Notes) render.Capabilities {
	caps := render.DefaultCapabilities()
	caps.Supported = caps.Supported.Without(
		render.NullsOrdering,
		render.FullOuterJoin,
		render.AggregateFilter,
		render.IntervalLiterals,
	)
	if !notes.AtLeast(windowVersion) {
		caps.Supported = caps.Supported.Without(render.WindowFunctions)
	}

	caps.QuoteOpen, caps.QuoteClose = "`", "`"
	caps.IdentifierCase = render.CaseInsensitive
	caps.StringEscape = render.EscapeDoubleAndBackslash
	caps.NullSorting = render.NullsSortedLow
	caps.QualifyCatalog = false
	caps.Reserved = render.ReservedWords(
		"ACCESSIBLE", "DATABASE", "DATABASES", "DIV", "DUAL", "KEY", "KEYS",
		"KILL", "LOCK", "MATCH", "RANK", "READ", "REGEXP", "RLIKE", "SCHEMA",
		"SHOW", "TRIGGER", "USAGE", "WRITE", "XOR",
	)
	caps.Regexp = render.FunctionSpec{Name: "REGEXP", Style: render.InfixStyle, Arity: 2}

	caps.Types[types.TypeVarchar] = render.TypeSpec{Name: "CHAR"}
	caps.Types[types.TypeDouble] = render.TypeSpec{Name: "DOUBLE"}
	caps.Types[types.TypeTimestamp] = render.TypeSpec{Name: "DATETIME"}
	delete(caps.Types, types.TypeBoolean)
	delete(caps.Types, types.TypeInterval)

	caps.Functions["TRUNC"] = render.FunctionSpec{Name: "TRUNCATE", Arity: 2}
	caps.Functions["DIV"] = render.FunctionSpec{Name: "DIV", Style: render.InfixStyle, Arity: 2}
	return caps
}
