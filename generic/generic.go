// Package generic provides a dialect for any JDBC reachable database.
//
// Nothing is known about the target up front. Quoting, identifier case and
// null ordering come from the JDBC database metadata recorded in the adapter
// notes, and the feature set is limited to what ANSI SQL engines share.
package generic

import (
	"strings"

	"github.com/zoobzio/pushql/internal/render"
)

// ID is the dialect identifier.
const ID = "GENERIC"

// New creates the generic dialect for the database described by notes.
func New(notes render.Notes) *render.Dialect {
	return render.NewDialect(ID, Capabilities(notes), render.Rules{}, notes)
}

// Capabilities returns the SQL features assumed for an unknown database.
func Capabilities(notes render.Notes) render.Capabilities {
	caps := render.DefaultCapabilities()
	caps.Supported = caps.Supported.Without(
		render.AggregateFilter,
		render.GroupConcat,
		render.GroupConcatOrderBy,
		render.RegexpLike,
		render.IntervalLiterals,
		render.NullsOrdering,
	)

	// JDBC reports a single space when the driver cannot quote identifiers.
	if q := notes.String(render.NoteIdentifierQuoteString); strings.TrimSpace(q) != "" {
		caps.QuoteOpen, caps.QuoteClose = q, q
	}
	if sep := notes.String(render.NoteCatalogSeparator); sep != "" && sep != "." {
		caps.QualifyCatalog = false
	}

	switch {
	case notes.Bool(render.NoteStoresUpperCaseIdentifiers):
		caps.IdentifierCase = render.UpperCase
	case notes.Bool(render.NoteStoresLowerCaseIdentifiers):
		caps.IdentifierCase = render.LowerCase
	case notes.Bool(render.NoteSupportsMixedCaseIdentifier), notes.Bool(render.NoteStoresMixedCaseIdentifiers):
		caps.IdentifierCase = render.CaseInsensitive
	}

	switch {
	case notes.Bool(render.NoteNullsAreSortedAtEnd):
		caps.NullSorting = render.NullsSortedAtEnd
	case notes.Bool(render.NoteNullsAreSortedAtStart):
		caps.NullSorting = render.NullsSortedAtStart
	case notes.Bool(render.NoteNullsAreSortedLow):
		caps.NullSorting = render.NullsSortedLow
	case notes.Bool(render.NoteNullsAreSortedHigh):
		caps.NullSorting = render.NullsSortedHigh
	}
	return caps
}
