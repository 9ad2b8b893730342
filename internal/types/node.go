// Package types defines the dialect-neutral SQL syntax tree produced from a
// pushdown request. It is exported from the internal package so the dialects
// and the request parser can share it, but external users go through the root
// package re-exports.
package types

// Kind identifies the variant of a node.
type Kind string

const (
	KindSelect      Kind = "select"
	KindSelectList  Kind = "select_list"
	KindTable       Kind = "table"
	KindJoin        Kind = "join"
	KindSubSelect   Kind = "sub_select"
	KindColumn      Kind = "column"
	KindLiteral     Kind = "literal"
	KindAnd         Kind = "and"
	KindOr          Kind = "or"
	KindNot         Kind = "not"
	KindComparison  Kind = "comparison"
	KindLike        Kind = "like"
	KindRegexpLike  Kind = "regexp_like"
	KindBetween     Kind = "between"
	KindInList      Kind = "in_list"
	KindInSubquery  Kind = "in_subquery"
	KindIsNull      Kind = "is_null"
	KindIsNotNull   Kind = "is_not_null"
	KindFunction    Kind = "function"
	KindExtract     Kind = "extract"
	KindCast        Kind = "cast"
	KindCase        Kind = "case"
	KindAggregate   Kind = "aggregate"
	KindGroupConcat Kind = "group_concat"
	KindWindow      Kind = "window"
	KindGroupBy     Kind = "group_by"
	KindOrderBy     Kind = "order_by"
	KindLimit       Kind = "limit"
)

// Node is implemented by every syntax tree variant.
//
// Nodes are built once per request and must not be modified afterwards. A
// parent exclusively owns its children; the tree never contains cycles.
type Node interface {
	Kind() Kind
	Accept(v Visitor) (string, error)
}

// Visitor has one method per node kind. A new node kind adds a method here,
// so every generator stops compiling until it handles the new kind.
type Visitor interface {
	VisitSelect(n *Select) (string, error)
	VisitSelectList(n *SelectList) (string, error)
	VisitTable(n *Table) (string, error)
	VisitJoin(n *Join) (string, error)
	VisitSubSelect(n *SubSelect) (string, error)
	VisitColumn(n *Column) (string, error)
	VisitLiteral(n *Literal) (string, error)
	VisitAnd(n *And) (string, error)
	VisitOr(n *Or) (string, error)
	VisitNot(n *Not) (string, error)
	VisitComparison(n *Comparison) (string, error)
	VisitLike(n *Like) (string, error)
	VisitRegexpLike(n *RegexpLike) (string, error)
	VisitBetween(n *Between) (string, error)
	VisitInList(n *InList) (string, error)
	VisitInSubquery(n *InSubquery) (string, error)
	VisitIsNull(n *IsNull) (string, error)
	VisitIsNotNull(n *IsNotNull) (string, error)
	VisitFunction(n *Function) (string, error)
	VisitExtract(n *Extract) (string, error)
	VisitCast(n *Cast) (string, error)
	VisitCase(n *Case) (string, error)
	VisitAggregate(n *Aggregate) (string, error)
	VisitGroupConcat(n *GroupConcat) (string, error)
	VisitWindow(n *Window) (string, error)
	VisitGroupBy(n *GroupBy) (string, error)
	VisitOrderBy(n *OrderBy) (string, error)
	VisitLimit(n *Limit) (string, error)
}

// isFromItem reports whether n may appear in a FROM clause.
func isFromItem(n Node) bool {
	switch n.(type) {
	case *Table, *Join, *SubSelect:
		return true
	}
	return false
}
