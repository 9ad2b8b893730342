package render

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/pushql/internal/types"
)

// unquote reads one quoted identifier from the start of s and returns it with
// the rest of s.
func unquote(s, open, closing string) (string, string, bool) {
	if !strings.HasPrefix(s, open) {
		return "", s, false
	}
	s = s[len(open):]
	var id strings.Builder
	for {
		i := strings.Index(s, closing)
		if i < 0 {
			return "", s, false
		}
		id.WriteString(s[:i])
		s = s[i+len(closing):]
		if !strings.HasPrefix(s, closing) {
			return id.String(), s, true
		}
		id.WriteString(closing)
		s = s[len(closing):]
	}
}

func TestQuotingRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []rune("abcXYZ_ 1\"`[].'é")
	quotes := [][2]string{{`"`, `"`}, {"`", "`"}, {"[", "]"}}

	for _, q := range quotes {
		caps := DefaultCapabilities()
		caps.QuoteOpen, caps.QuoteClose = q[0], q[1]
		for i := 0; i < 200; i++ {
			runes := make([]rune, 1+rng.Intn(12))
			for j := range runes {
				runes[j] = alphabet[rng.Intn(len(alphabet))]
			}
			id := string(runes)

			quoted := caps.QuoteIdentifier(id)
			got, rest, ok := unquote(quoted, q[0], q[1])
			require.True(t, ok, "cannot scan %q", quoted)
			assert.Equal(t, id, got)
			assert.Empty(t, rest)
		}
	}
}

// boolTree evaluates the generated predicate trees.
type boolTree interface {
	eval(row map[string]bool) bool
}

type atomExpr string
type andExpr []boolTree
type orExpr []boolTree
type notExpr struct{ x boolTree }

func (a atomExpr) eval(row map[string]bool) bool { return row[string(a)] }
func (n notExpr) eval(row map[string]bool) bool  { return !n.x.eval(row) }
func (a andExpr) eval(row map[string]bool) bool {
	for _, x := range a {
		if !x.eval(row) {
			return false
		}
	}
	return true
}
func (o orExpr) eval(row map[string]bool) bool {
	for _, x := range o {
		if x.eval(row) {
			return true
		}
	}
	return false
}

var atoms = []string{"A", "B", "C", "D"}

func randomPredicate(rng *rand.Rand, depth int) (types.Node, boolTree) {
	if depth == 0 || rng.Intn(4) == 0 {
		name := atoms[rng.Intn(len(atoms))]
		return eq(col("T", name), num("1")), atomExpr(name)
	}
	switch rng.Intn(3) {
	case 0:
		n, ref := randomPredicate(rng, depth-1)
		return not(n), notExpr{ref}
	default:
		count := 1 + rng.Intn(3)
		nodes := make([]types.Node, count)
		refs := make([]boolTree, count)
		for i := range nodes {
			nodes[i], refs[i] = randomPredicate(rng, depth-1)
		}
		if rng.Intn(2) == 0 {
			return and(nodes...), andExpr(refs)
		}
		return or(nodes...), orExpr(refs)
	}
}

// sqlParser parses the emitted predicate text with standard SQL precedence:
// NOT binds tighter than AND, which binds tighter than OR.
type sqlParser struct {
	tokens []string
	pos    int
}

func newSQLParser(s string) *sqlParser {
	s = strings.ReplaceAll(s, "(", " ( ")
	s = strings.ReplaceAll(s, ")", " ) ")
	return &sqlParser{tokens: strings.Fields(s)}
}

func (p *sqlParser) next() string {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func (p *sqlParser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *sqlParser) or() boolTree {
	terms := orExpr{p.and()}
	for p.peek() == "OR" {
		p.next()
		terms = append(terms, p.and())
	}
	return terms
}

func (p *sqlParser) and() boolTree {
	factors := andExpr{p.unary()}
	for p.peek() == "AND" {
		p.next()
		factors = append(factors, p.unary())
	}
	return factors
}

func (p *sqlParser) unary() boolTree {
	switch tok := p.next(); tok {
	case "NOT":
		return notExpr{p.unary()}
	case "(":
		x := p.or()
		p.next()
		return x
	default:
		p.next() // =
		p.next() // 1
		return atomExpr(tok)
	}
}

func TestParenthesizationPreservesLogic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	d := testDialect(nil, Rules{})
	ctx := NewContext("", "", false, false)

	for i := 0; i < 300; i++ {
		node, ref := randomPredicate(rng, 4)
		sql, err := d.Generate(node, ctx)
		require.NoError(t, err)

		p := newSQLParser(sql)
		parsed := p.or()
		require.Equal(t, len(p.tokens), p.pos, "trailing tokens in %q", sql)

		for mask := 0; mask < 1<<len(atoms); mask++ {
			row := make(map[string]bool, len(atoms))
			for j, a := range atoms {
				row[a] = mask&(1<<j) != 0
			}
			require.Equal(t, ref.eval(row), parsed.eval(row), "%q with %v", sql, row)
		}
	}
}
