package render

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var regularIdentifier = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Casers keep state and cannot be shared between goroutines.
func foldUpper(s string) string { return cases.Upper(language.Und).String(s) }
func foldLower(s string) string { return cases.Lower(language.Und).String(s) }

// needsQuote reports whether id cannot be written bare in this dialect.
func (c *Capabilities) needsQuote(id string) bool {
	if c.IdentifierCase == CaseSensitive || !regularIdentifier.MatchString(id) {
		return true
	}
	folded := foldUpper(id)
	if _, reserved := c.Reserved[folded]; reserved {
		return true
	}
	switch c.IdentifierCase {
	case UpperCase:
		return folded != id
	case LowerCase:
		return foldLower(id) != id
	}
	return false
}

// quote quotes id when forced or required. Embedded closing quote characters
// are doubled.
func (c *Capabilities) quote(id string, force bool) string {
	if !force && !c.needsQuote(id) {
		return id
	}
	return c.QuoteOpen + strings.ReplaceAll(id, c.QuoteClose, c.QuoteClose+c.QuoteClose) + c.QuoteClose
}

// QuoteIdentifier quotes id unconditionally.
func (c *Capabilities) QuoteIdentifier(id string) string {
	return c.quote(id, true)
}

func (c *Capabilities) stringLiteral(s string) string {
	switch c.StringEscape {
	case EscapeBackslash:
		s = strings.ReplaceAll(s, `\`, `\\`)
		s = strings.ReplaceAll(s, `'`, `\'`)
	case EscapeDoubleAndBackslash:
		s = strings.ReplaceAll(s, `\`, `\\`)
		s = strings.ReplaceAll(s, `'`, `''`)
	default:
		s = strings.ReplaceAll(s, `'`, `''`)
	}
	return "'" + s + "'"
}
