package render

import (
	"fmt"

	"github.com/zoobzio/pushql/internal/types"
)

// DefaultFunctions returns the ANSI spelling of every logical scalar function.
// Dialects copy and adjust it; a name missing from the table is unsupported.
func DefaultFunctions() map[string]FunctionSpec {
	return map[string]FunctionSpec{
		// arithmetic
		"ADD":       {Name: "+", Style: InfixStyle, Arity: 2},
		"SUB":       {Name: "-", Style: InfixStyle, Arity: 2},
		"MULT":      {Name: "*", Style: InfixStyle, Arity: 2},
		"FLOAT_DIV": {Name: "/", Style: InfixStyle, Arity: 2},
		"NEG":       {Name: "-", Style: PrefixStyle, Arity: 1},

		// numeric
		"ABS":   {Name: "ABS", Arity: 1},
		"CEIL":  {Name: "CEIL", Arity: 1},
		"FLOOR": {Name: "FLOOR", Arity: 1},
		"ROUND": {Name: "ROUND", Arity: -1},
		"TRUNC": {Name: "TRUNC", Arity: -1},
		"MOD":   {Name: "MOD", Arity: 2},
		"POWER": {Name: "POWER", Arity: 2},
		"SQRT":  {Name: "SQRT", Arity: 1},
		"SIGN":  {Name: "SIGN", Arity: 1},
		"EXP":   {Name: "EXP", Arity: 1},
		"LN":    {Name: "LN", Arity: 1},

		// string
		"CONCAT":  {Name: "CONCAT", Arity: -1},
		"UPPER":   {Name: "UPPER", Arity: 1},
		"LOWER":   {Name: "LOWER", Arity: 1},
		"LENGTH":  {Name: "LENGTH", Arity: 1},
		"SUBSTR":  {Name: "SUBSTR", Arity: -1},
		"TRIM":    {Name: "TRIM", Arity: 1},
		"LTRIM":   {Name: "LTRIM", Arity: 1},
		"RTRIM":   {Name: "RTRIM", Arity: 1},
		"REPLACE": {Name: "REPLACE", Arity: 3},
		"LPAD":    {Name: "LPAD", Arity: -1},
		"RPAD":    {Name: "RPAD", Arity: -1},

		// null handling
		"COALESCE": {Name: "COALESCE", Arity: -1},
		"NULLIF":   {Name: "NULLIF", Arity: 2},
		"GREATEST": {Name: "GREATEST", Arity: -1},
		"LEAST":    {Name: "LEAST", Arity: -1},

		// date and time
		"CURRENT_DATE":      {Name: "CURRENT_DATE", Style: KeywordStyle, Arity: 0},
		"CURRENT_TIMESTAMP": {Name: "CURRENT_TIMESTAMP", Style: KeywordStyle, Arity: 0},
	}
}

// DefaultAggregates returns the ANSI aggregate spellings.
func DefaultAggregates() map[string]string {
	return map[string]string{
		"COUNT":       "COUNT",
		"SUM":         "SUM",
		"MIN":         "MIN",
		"MAX":         "MAX",
		"AVG":         "AVG",
		"STDDEV":      "STDDEV",
		"STDDEV_POP":  "STDDEV_POP",
		"STDDEV_SAMP": "STDDEV_SAMP",
		"VARIANCE":    "VARIANCE",
		"VAR_POP":     "VAR_POP",
		"VAR_SAMP":    "VAR_SAMP",
	}
}

// DefaultWindowFunctions returns the ANSI window function spellings.
func DefaultWindowFunctions() map[string]string {
	return map[string]string{
		"ROW_NUMBER":   "ROW_NUMBER",
		"RANK":         "RANK",
		"DENSE_RANK":   "DENSE_RANK",
		"PERCENT_RANK": "PERCENT_RANK",
		"CUME_DIST":    "CUME_DIST",
		"NTILE":        "NTILE",
		"LAG":          "LAG",
		"LEAD":         "LEAD",
		"FIRST_VALUE":  "FIRST_VALUE",
		"LAST_VALUE":   "LAST_VALUE",
		"COUNT":        "COUNT",
		"SUM":          "SUM",
		"MIN":          "MIN",
		"MAX":          "MAX",
		"AVG":          "AVG",
	}
}

// DefaultTypes returns the ANSI type spellings.
func DefaultTypes() map[types.TypeKind]TypeSpec {
	return map[types.TypeKind]TypeSpec{
		types.TypeDecimal:   {Name: "DECIMAL"},
		types.TypeDouble:    {Name: "DOUBLE PRECISION"},
		types.TypeVarchar:   {Name: "VARCHAR"},
		types.TypeChar:      {Name: "CHAR"},
		types.TypeDate:      {Name: "DATE"},
		types.TypeTimestamp: {Name: "TIMESTAMP"},
		types.TypeBoolean:   {Name: "BOOLEAN"},
		types.TypeInterval:  {Name: "INTERVAL"},
	}
}

// DefaultCapabilities returns an ANSI dialect that supports every capability.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		Supported:         AllCapabilities(),
		QuoteOpen:         `"`,
		QuoteClose:        `"`,
		IdentifierCase:    UpperCase,
		Reserved:          ReservedWords(),
		LimitStyle:        LimitOffsetStyle,
		NullSorting:       NullsSortedHigh,
		CastStyle:         CastFunction,
		StringEscape:      EscapeDoubleQuote,
		DateLiteral:       "DATE %s",
		TimestampLiteral:  "TIMESTAMP %s",
		TableAliasKeyword: true,
		QualifyCatalog:    true,
		QualifySchema:     true,
		Regexp:            FunctionSpec{Name: "REGEXP_LIKE", Style: CallStyle, Arity: 2},
		Functions:         DefaultFunctions(),
		Aggregates:        DefaultAggregates(),
		WindowFunctions:   DefaultWindowFunctions(),
		Types:             DefaultTypes(),
	}
}

// TypeName spells dt in this dialect.
func (c *Capabilities) TypeName(dt types.DataType) (string, bool) {
	spec, ok := c.Types[dt.Kind]
	if !ok {
		return "", false
	}
	if dt.Kind == types.TypeTimestamp && dt.WithLocalTimeZone {
		return spec.LocalTimeZone, spec.LocalTimeZone != ""
	}
	if spec.NoParams {
		return spec.Name, true
	}
	switch dt.Kind {
	case types.TypeDecimal:
		return fmt.Sprintf("%s(%d, %d)", spec.Name, dt.Precision, dt.Scale), true
	case types.TypeVarchar, types.TypeChar:
		return fmt.Sprintf("%s(%d)", spec.Name, dt.Size), true
	case types.TypeInterval:
		return spec.Name + " " + intervalQualifier(dt.IntervalRange), true
	}
	return spec.Name, true
}

func intervalQualifier(r types.IntervalRange) string {
	if r == types.DayToSeconds {
		return "DAY TO SECOND"
	}
	return "YEAR TO MONTH"
}
