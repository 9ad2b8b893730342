package render

import (
	"strconv"
	"strings"

	"github.com/zoobzio/pushql/internal/types"
)

func defaultSelect(g *Generator, n *types.Select) (string, error) {
	var sql strings.Builder
	sql.WriteString("SELECT ")

	var limit string
	if n.Limit != nil {
		var err error
		if limit, err = n.Limit.Accept(g); err != nil {
			return "", err
		}
	}
	top := limit != "" && g.Caps().LimitStyle == TopStyle
	if top {
		sql.WriteString(limit)
		sql.WriteString(" ")
	}

	list, err := n.List.Accept(g)
	if err != nil {
		return "", err
	}
	sql.WriteString(list)

	if n.From != nil {
		from, err := n.From.Accept(g)
		if err != nil {
			return "", err
		}
		sql.WriteString(" FROM ")
		sql.WriteString(from)
	} else if dummy := g.Caps().DummyTable; dummy != "" {
		sql.WriteString(" FROM ")
		sql.WriteString(dummy)
	}

	if n.Where != nil {
		where, err := g.Predicate(n.Where)
		if err != nil {
			return "", err
		}
		sql.WriteString(" WHERE ")
		sql.WriteString(where)
	}

	if n.GroupBy != nil {
		groupBy, err := n.GroupBy.Accept(g)
		if err != nil {
			return "", err
		}
		sql.WriteString(" ")
		sql.WriteString(groupBy)
	}

	if n.Having != nil {
		having, err := g.Predicate(n.Having)
		if err != nil {
			return "", err
		}
		sql.WriteString(" HAVING ")
		sql.WriteString(having)
	}

	if n.OrderBy != nil {
		orderBy, err := n.OrderBy.Accept(g)
		if err != nil {
			return "", err
		}
		sql.WriteString(" ")
		sql.WriteString(orderBy)
	}

	if limit != "" && !top {
		sql.WriteString(" ")
		sql.WriteString(limit)
	}

	return sql.String(), nil
}

func defaultSelectList(g *Generator, n *types.SelectList) (string, error) {
	if n.Star {
		return "*", nil
	}
	if n.AnyColumn() {
		if g.Caps().Has(BooleanLiterals) {
			return "TRUE", nil
		}
		return "1", nil
	}
	parts := make([]string, len(n.Items))
	for i, item := range n.Items {
		expr, err := g.Operand(item.Expr)
		if err != nil {
			return "", err
		}
		if item.Alias != "" {
			expr += " AS " + g.Quote(item.Alias)
		}
		parts[i] = expr
	}
	return strings.Join(parts, ", "), nil
}

func defaultTable(g *Generator, n *types.Table) (string, error) {
	name := g.TableName(n.Name)
	if n.Alias == "" {
		return name, nil
	}
	if g.Caps().TableAliasKeyword {
		return name + " AS " + g.Quote(n.Alias), nil
	}
	return name + " " + g.Quote(n.Alias), nil
}

var joinKeywords = map[types.JoinType]string{
	types.InnerJoin: "INNER JOIN",
	types.LeftJoin:  "LEFT OUTER JOIN",
	types.RightJoin: "RIGHT OUTER JOIN",
	types.FullJoin:  "FULL OUTER JOIN",
}

func defaultJoin(g *Generator, n *types.Join) (string, error) {
	switch n.Type {
	case types.FullJoin:
		if err := g.Require(FullOuterJoin, types.KindJoin, "FULL OUTER JOIN"); err != nil {
			return "", err
		}
	case types.RightJoin:
		if err := g.Require(RightOuterJoin, types.KindJoin, "RIGHT OUTER JOIN"); err != nil {
			return "", err
		}
	}
	keyword, ok := joinKeywords[n.Type]
	if !ok {
		return "", g.Unsupported(types.KindJoin, string(n.Type)+" JOIN")
	}

	left, err := n.Left.Accept(g)
	if err != nil {
		return "", err
	}
	right, err := n.Right.Accept(g)
	if err != nil {
		return "", err
	}
	if _, nested := n.Right.(*types.Join); nested {
		right = "(" + right + ")"
	}
	cond, err := g.Predicate(n.Condition)
	if err != nil {
		return "", err
	}
	return left + " " + keyword + " " + right + " ON " + cond, nil
}

func defaultSubSelect(g *Generator, n *types.SubSelect) (string, error) {
	if err := g.Require(DerivedTables, types.KindSubSelect, "derived tables"); err != nil {
		return "", err
	}
	sel, err := n.Select.Accept(g)
	if err != nil {
		return "", err
	}
	alias := g.Quote(n.Alias)
	if g.Caps().TableAliasKeyword {
		return "(" + sel + ") AS " + alias, nil
	}
	return "(" + sel + ") " + alias, nil
}

func defaultColumn(g *Generator, n *types.Column) (string, error) {
	name := g.Quote(n.Name)
	switch {
	case n.TableAlias != "":
		return g.Quote(n.TableAlias) + "." + name, nil
	case g.Context().MultipleTables() && n.Table != "":
		return g.TableName(n.Table) + "." + name, nil
	}
	return name, nil
}

func defaultGroupBy(g *Generator, n *types.GroupBy) (string, error) {
	list, err := g.List(n.Exprs)
	if err != nil {
		return "", err
	}
	return "GROUP BY " + list, nil
}

func defaultOrderBy(g *Generator, n *types.OrderBy) (string, error) {
	caps := g.Caps()
	parts := make([]string, len(n.Elements))
	for i, el := range n.Elements {
		expr, err := g.Operand(el.Expr)
		if err != nil {
			return "", err
		}
		switch {
		case !el.Ascending:
			expr += " DESC"
		case !caps.OmitAscending:
			expr += " ASC"
		}
		// A nulls position the dialect cannot spell keeps the dialect default.
		if el.NullsLast != caps.NullSorting.defaultNullsLast(el.Ascending) && caps.Has(NullsOrdering) {
			if el.NullsLast {
				expr += " NULLS LAST"
			} else {
				expr += " NULLS FIRST"
			}
		}
		parts[i] = expr
	}
	return "ORDER BY " + strings.Join(parts, ", "), nil
}

func defaultLimit(g *Generator, n *types.Limit) (string, error) {
	if err := g.Require(Limit, types.KindLimit, "LIMIT"); err != nil {
		return "", err
	}
	if n.Offset > 0 {
		if err := g.Require(LimitWithOffset, types.KindLimit, "OFFSET"); err != nil {
			return "", err
		}
	}
	count := strconv.FormatInt(n.Count, 10)
	offset := strconv.FormatInt(n.Offset, 10)
	switch g.Caps().LimitStyle {
	case TopStyle:
		if n.Offset > 0 {
			return "", g.Unsupported(types.KindLimit, "OFFSET", "TOP cannot skip rows")
		}
		return "TOP " + count, nil
	case FetchFirstStyle:
		if n.Offset > 0 {
			return "OFFSET " + offset + " ROWS FETCH FIRST " + count + " ROWS ONLY", nil
		}
		return "FETCH FIRST " + count + " ROWS ONLY", nil
	}
	if n.Offset > 0 {
		return "LIMIT " + count + " OFFSET " + offset, nil
	}
	return "LIMIT " + count, nil
}
