package render

import (
	"maps"
	"sort"

	"github.com/zoobzio/pushql/internal/types"
)

// Capability is a SQL feature a dialect may or may not support.
type Capability uint8

const (
	WindowFunctions    Capability = iota // aggregate and ranking functions with OVER
	FullOuterJoin                        // FULL OUTER JOIN
	RightOuterJoin                       // RIGHT OUTER JOIN
	Limit                                // any row limit
	LimitWithOffset                      // row limit with an offset
	BooleanLiterals                      // TRUE/FALSE instead of 1/0
	NullsOrdering                        // NULLS FIRST / NULLS LAST
	AggregateFilter                      // FILTER (WHERE ...) on aggregates
	SimpleCase                           // CASE x WHEN v THEN ...
	InSubquery                           // x IN (SELECT ...)
	DerivedTables                        // sub-selects in FROM
	IntervalLiterals                     // INTERVAL '...' YEAR TO MONTH
	Extract                              // EXTRACT(part FROM x)
	GroupConcat                          // string aggregation
	GroupConcatOrderBy                   // ORDER BY inside string aggregation
	RegexpLike                           // regular expression predicate

	numCapabilities
)

var capabilityNames = [numCapabilities]string{
	WindowFunctions:    "WINDOW_FUNCTIONS",
	FullOuterJoin:      "FULL_OUTER_JOIN",
	RightOuterJoin:     "RIGHT_OUTER_JOIN",
	Limit:              "LIMIT",
	LimitWithOffset:    "LIMIT_WITH_OFFSET",
	BooleanLiterals:    "BOOLEAN_LITERALS",
	NullsOrdering:      "NULLS_ORDERING",
	AggregateFilter:    "AGGREGATE_FILTER",
	SimpleCase:         "SIMPLE_CASE",
	InSubquery:         "IN_SUBQUERY",
	DerivedTables:      "DERIVED_TABLES",
	IntervalLiterals:   "INTERVAL_LITERALS",
	Extract:            "EXTRACT",
	GroupConcat:        "GROUP_CONCAT",
	GroupConcatOrderBy: "GROUP_CONCAT_ORDER_BY",
	RegexpLike:         "REGEXP_LIKE",
}

func (c Capability) String() string {
	if c < numCapabilities {
		return capabilityNames[c]
	}
	return "UNKNOWN"
}

// CapabilitySet is an immutable set of capabilities.
type CapabilitySet uint64

// NewCapabilitySet returns a set holding caps.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	return CapabilitySet(0).With(caps...)
}

// AllCapabilities returns the set of every known capability.
func AllCapabilities() CapabilitySet {
	return CapabilitySet(1)<<numCapabilities - 1
}

// With returns a copy of s with caps added.
func (s CapabilitySet) With(caps ...Capability) CapabilitySet {
	for _, c := range caps {
		s |= 1 << c
	}
	return s
}

// Without returns a copy of s with caps removed.
func (s CapabilitySet) Without(caps ...Capability) CapabilitySet {
	for _, c := range caps {
		s &^= 1 << c
	}
	return s
}

// Has reports whether c is in s.
func (s CapabilitySet) Has(c Capability) bool {
	return c < numCapabilities && s&(1<<c) != 0
}

// List returns the members of s in declaration order.
func (s CapabilitySet) List() []Capability {
	var out []Capability
	for c := Capability(0); c < numCapabilities; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// IdentifierCase describes how a dialect folds unquoted identifiers.
type IdentifierCase int

const (
	UpperCase       IdentifierCase = iota // unquoted identifiers fold to upper case
	LowerCase                             // unquoted identifiers fold to lower case
	CaseInsensitive                       // identifiers compare without regard to case
	CaseSensitive                         // every identifier must be quoted
)

// LimitStyle selects the row limiting syntax.
type LimitStyle int

const (
	LimitOffsetStyle LimitStyle = iota // LIMIT n [OFFSET m]
	TopStyle                           // SELECT TOP n
	FetchFirstStyle                    // [OFFSET m ROWS] FETCH FIRST n ROWS ONLY
)

// NullSorting is where a dialect places NULLs when no nulls clause is given.
type NullSorting int

const (
	NullsSortedHigh    NullSorting = iota // NULL is larger than every value
	NullsSortedLow                        // NULL is smaller than every value
	NullsSortedAtStart                    // NULLs first regardless of direction
	NullsSortedAtEnd                      // NULLs last regardless of direction
)

// defaultNullsLast reports whether NULLs sort last for the given direction.
func (s NullSorting) defaultNullsLast(ascending bool) bool {
	switch s {
	case NullsSortedLow:
		return !ascending
	case NullsSortedAtStart:
		return false
	case NullsSortedAtEnd:
		return true
	default:
		return ascending
	}
}

// CastStyle selects the type conversion syntax.
type CastStyle int

const (
	CastFunction    CastStyle = iota // CAST(x AS T)
	CastDoubleColon                  // x::T
)

// StringEscape selects how quotes and backslashes in string literals are escaped.
type StringEscape int

const (
	EscapeDoubleQuote        StringEscape = iota // ' becomes ''
	EscapeBackslash                              // ' becomes \' and \ becomes \\
	EscapeDoubleAndBackslash                     // ' becomes '' and \ becomes \\
)

// FunctionStyle selects how a function spelling is applied to its arguments.
type FunctionStyle int

const (
	CallStyle    FunctionStyle = iota // NAME(a, b)
	InfixStyle                        // (a NAME b)
	PrefixStyle                       // (NAME a)
	KeywordStyle                      // NAME
)

// FunctionSpec is the spelling of a logical function in a dialect. Arity is
// the required argument count, or -1 when any count is accepted.
type FunctionSpec struct {
	Name  string
	Style FunctionStyle
	Arity int
}

// TypeSpec is the spelling of a logical data type. NoParams drops size,
// precision and interval range. LocalTimeZone spells TIMESTAMP WITH LOCAL
// TIME ZONE; an empty value means the dialect has no such type.
type TypeSpec struct {
	Name          string
	LocalTimeZone string
	NoParams      bool
}

// Capabilities describes the SQL features supported by a dialect and how it
// spells them.
type Capabilities struct {
	Supported CapabilitySet

	QuoteOpen      string
	QuoteClose     string
	IdentifierCase IdentifierCase
	Reserved       map[string]struct{} // upper case

	LimitStyle    LimitStyle
	NullSorting   NullSorting
	OmitAscending bool

	CastStyle    CastStyle
	StringEscape StringEscape

	// DateLiteral and TimestampLiteral are format strings applied to the
	// quoted literal text, e.g. "DATE %s" or "CAST(%s AS DATE)".
	DateLiteral      string
	TimestampLiteral string

	TableAliasKeyword bool
	DummyTable        string
	QualifyCatalog    bool
	QualifySchema     bool

	Regexp FunctionSpec

	Functions       map[string]FunctionSpec
	Aggregates      map[string]string
	WindowFunctions map[string]string
	Types           map[types.TypeKind]TypeSpec
}

// Clone returns a deep copy of c.
func (c Capabilities) Clone() Capabilities {
	c.Reserved = maps.Clone(c.Reserved)
	c.Functions = maps.Clone(c.Functions)
	c.Aggregates = maps.Clone(c.Aggregates)
	c.WindowFunctions = maps.Clone(c.WindowFunctions)
	c.Types = maps.Clone(c.Types)
	return c
}

// Has reports whether the capability is supported.
func (c Capabilities) Has(capability Capability) bool {
	return c.Supported.Has(capability)
}

// Names returns the sorted names of all supported capabilities, spelling
// tables included. Functions are reported as FN_<NAME>, aggregates as
// AGG_<NAME> and window functions as WIN_<NAME>.
func (c Capabilities) Names() []string {
	var out []string
	for _, capability := range c.Supported.List() {
		out = append(out, capability.String())
	}
	for name := range c.Functions {
		out = append(out, "FN_"+name)
	}
	for name := range c.Aggregates {
		out = append(out, "AGG_"+name)
	}
	if c.Has(WindowFunctions) {
		for name := range c.WindowFunctions {
			out = append(out, "WIN_"+name)
		}
	}
	sort.Strings(out)
	return out
}
