package render

import (
	"maps"
	"regexp"

	"github.com/spf13/cast"
	"golang.org/x/mod/semver"
)

// Well known adapter note keys. They mirror the JDBC database metadata the
// adapter records when the virtual schema is created.
const (
	NoteProductName                 = "databaseProductName"
	NoteProductVersion              = "databaseProductVersion"
	NoteCatalogSeparator            = "catalogSeparator"
	NoteIdentifierQuoteString       = "identifierQuoteString"
	NoteStoresLowerCaseIdentifiers  = "storesLowerCaseIdentifiers"
	NoteStoresUpperCaseIdentifiers  = "storesUpperCaseIdentifiers"
	NoteStoresMixedCaseIdentifiers  = "storesMixedCaseIdentifiers"
	NoteSupportsMixedCaseIdentifier = "supportsMixedCaseIdentifiers"
	NoteNullsAreSortedAtEnd         = "nullsAreSortedAtEnd"
	NoteNullsAreSortedAtStart       = "nullsAreSortedAtStart"
	NoteNullsAreSortedHigh          = "nullsAreSortedHigh"
	NoteNullsAreSortedLow           = "nullsAreSortedLow"
)

var versionPrefix = regexp.MustCompile(`[0-9]+(\.[0-9]+){0,2}`)

// Notes is the adapter metadata describing the observed target database.
type Notes map[string]string

func (n Notes) clone() Notes {
	if n == nil {
		return Notes{}
	}
	return maps.Clone(n)
}

// String returns the note for key, or "".
func (n Notes) String(key string) string { return n[key] }

// Bool returns the note for key coerced to a boolean. Absent or unparsable
// notes are false.
func (n Notes) Bool(key string) bool {
	v, ok := n[key]
	if !ok {
		return false
	}
	return cast.ToBool(v)
}

// Version returns the product version as a semantic version ("v8.0.33"), or
// "" when the notes carry no recognizable version.
func (n Notes) Version() string {
	m := versionPrefix.FindString(n[NoteProductVersion])
	if m == "" {
		return ""
	}
	v := "v" + m
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}

// AtLeast reports whether the product version is at least min ("v8",
// "v3.25"). An unknown version counts as recent enough.
func (n Notes) AtLeast(min string) bool {
	v := n.Version()
	if v == "" {
		return true
	}
	return semver.Compare(v, min) >= 0
}
