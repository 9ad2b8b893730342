package render

import (
	"github.com/zoobzio/pushql/internal/types"
)

var decimalType = types.DataType{Kind: types.TypeDecimal, Precision: 18}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func testDialect(mod func(*Capabilities), overrides Rules) *Dialect {
	caps := DefaultCapabilities()
	if mod != nil {
		mod(&caps)
	}
	return NewDialect("test", caps, overrides, nil)
}

func col(table, name string) *types.Column {
	return must(types.NewColumn(table, name, decimalType))
}

func boolCol(table, name string) *types.Column {
	return must(types.NewColumn(table, name, types.DataType{Kind: types.TypeBoolean}))
}

func num(v string) *types.Literal {
	return types.MustLiteral(types.LiteralExactNumeric, v)
}

func str(v string) *types.Literal {
	return types.MustLiteral(types.LiteralString, v)
}

func eq(l, r types.Node) *types.Comparison {
	return must(types.NewComparison(types.Equal, l, r))
}

func and(ops ...types.Node) *types.And { return must(types.NewAnd(ops...)) }

func or(ops ...types.Node) *types.Or { return must(types.NewOr(ops...)) }

func not(op types.Node) *types.Not { return must(types.NewNot(op)) }

func table(name string) *types.Table { return must(types.NewTable(name, "")) }

func items(exprs ...types.Node) *types.SelectList {
	list := make([]types.SelectItem, len(exprs))
	for i, e := range exprs {
		list[i] = types.SelectItem{Expr: e}
	}
	return must(types.NewSelectList(list...))
}

func orderBy(asc, nullsLast bool, exprs ...types.Node) *types.OrderBy {
	a := make([]bool, len(exprs))
	nl := make([]bool, len(exprs))
	for i := range exprs {
		a[i], nl[i] = asc, nullsLast
	}
	return must(types.NewOrderBy(exprs, a, nl))
}
