package render

import (
	"strings"

	"github.com/zoobzio/pushql/internal/types"
)

// connective joins operands with op. Nested AND and OR operands are always
// parenthesized so the text groups exactly like the tree.
func connective(g *Generator, operands []types.Node, op string) (string, error) {
	parts := make([]string, len(operands))
	for i, o := range operands {
		s, err := g.Predicate(o)
		if err != nil {
			return "", err
		}
		switch o.(type) {
		case *types.And, *types.Or:
			if len(operands) > 1 {
				s = "(" + s + ")"
			}
		}
		parts[i] = s
	}
	return strings.Join(parts, " "+op+" "), nil
}

func defaultAnd(g *Generator, n *types.And) (string, error) {
	return connective(g, n.Operands, "AND")
}

func defaultOr(g *Generator, n *types.Or) (string, error) {
	return connective(g, n.Operands, "OR")
}

func defaultNot(g *Generator, n *types.Not) (string, error) {
	s, err := g.Predicate(n.Operand)
	if err != nil {
		return "", err
	}
	return "NOT (" + s + ")", nil
}

func defaultComparison(g *Generator, n *types.Comparison) (string, error) {
	left, err := g.Operand(n.Left)
	if err != nil {
		return "", err
	}
	right, err := g.Operand(n.Right)
	if err != nil {
		return "", err
	}
	return left + " " + string(n.Op) + " " + right, nil
}

func defaultLike(g *Generator, n *types.Like) (string, error) {
	expr, err := g.Operand(n.Expr)
	if err != nil {
		return "", err
	}
	pattern, err := g.Operand(n.Pattern)
	if err != nil {
		return "", err
	}
	s := expr + " LIKE " + pattern
	if n.Escape != nil {
		escape, err := g.Operand(n.Escape)
		if err != nil {
			return "", err
		}
		s += " ESCAPE " + escape
	}
	return s, nil
}

func defaultRegexpLike(g *Generator, n *types.RegexpLike) (string, error) {
	if err := g.Require(RegexpLike, types.KindRegexpLike, "regular expression matching"); err != nil {
		return "", err
	}
	return applyFunction(g, types.KindRegexpLike, g.Caps().Regexp, []types.Node{n.Expr, n.Pattern})
}

func defaultBetween(g *Generator, n *types.Between) (string, error) {
	expr, err := g.Operand(n.Expr)
	if err != nil {
		return "", err
	}
	low, err := g.Operand(n.Low)
	if err != nil {
		return "", err
	}
	high, err := g.Operand(n.High)
	if err != nil {
		return "", err
	}
	return expr + " BETWEEN " + low + " AND " + high, nil
}

func defaultInList(g *Generator, n *types.InList) (string, error) {
	expr, err := g.Operand(n.Expr)
	if err != nil {
		return "", err
	}
	values, err := g.List(n.Values)
	if err != nil {
		return "", err
	}
	return expr + " IN (" + values + ")", nil
}

func defaultInSubquery(g *Generator, n *types.InSubquery) (string, error) {
	if err := g.Require(InSubquery, types.KindInSubquery, "IN with a sub-select"); err != nil {
		return "", err
	}
	expr, err := g.Operand(n.Expr)
	if err != nil {
		return "", err
	}
	sel, err := n.Select.Accept(g)
	if err != nil {
		return "", err
	}
	return expr + " IN (" + sel + ")", nil
}

func defaultIsNull(g *Generator, n *types.IsNull) (string, error) {
	expr, err := g.Operand(n.Expr)
	if err != nil {
		return "", err
	}
	return expr + " IS NULL", nil
}

func defaultIsNotNull(g *Generator, n *types.IsNotNull) (string, error) {
	expr, err := g.Operand(n.Expr)
	if err != nil {
		return "", err
	}
	return expr + " IS NOT NULL", nil
}
