package types

// SelectItem is one entry of a select list with an optional alias.
type SelectItem struct {
	Expr  Node
	Alias string
}

// SelectList is the projection of a statement.
//
// Star is set when the request did not send a select list at all. An empty
// list that is not Star asks for any single value, which is how existence
// checks are pushed down.
type SelectList struct {
	Items []SelectItem
	Star  bool
}

// NewSelectList creates a projection from the given items, in order.
func NewSelectList(items ...SelectItem) (*SelectList, error) {
	for i, it := range items {
		if it.Expr == nil {
			return nil, constructionErrorf(KindSelectList, "select item %d has no expression", i)
		}
	}
	return &SelectList{Items: items}, nil
}

// StarList returns the projection of all columns.
func StarList() *SelectList {
	return &SelectList{Star: true}
}

// AnyColumn reports whether the list requests an arbitrary constant.
func (n *SelectList) AnyColumn() bool {
	return !n.Star && len(n.Items) == 0
}

func (n *SelectList) Kind() Kind                       { return KindSelectList }
func (n *SelectList) Accept(v Visitor) (string, error) { return v.VisitSelectList(n) }

// GroupBy lists the grouping expressions.
type GroupBy struct {
	Exprs []Node
}

// NewGroupBy creates a GROUP BY clause.
func NewGroupBy(exprs ...Node) (*GroupBy, error) {
	if err := checkOperands(KindGroupBy, exprs); err != nil {
		return nil, err
	}
	return &GroupBy{Exprs: exprs}, nil
}

func (n *GroupBy) Kind() Kind                       { return KindGroupBy }
func (n *GroupBy) Accept(v Visitor) (string, error) { return v.VisitGroupBy(n) }

// OrderByElement is a single sort key.
type OrderByElement struct {
	Expr      Node
	Ascending bool
	NullsLast bool
}

// OrderBy lists sort keys in priority order.
type OrderBy struct {
	Elements []OrderByElement
}

// NewOrderBy creates an ORDER BY clause from parallel lists of expressions,
// direction flags and nulls-position flags. All lists must have equal length.
func NewOrderBy(exprs []Node, ascending, nullsLast []bool) (*OrderBy, error) {
	if len(exprs) == 0 {
		return nil, constructionErrorf(KindOrderBy, "at least one sort key is required")
	}
	if len(exprs) != len(ascending) || len(exprs) != len(nullsLast) {
		return nil, constructionErrorf(KindOrderBy, "got %d expressions, %d directions and %d nulls flags",
			len(exprs), len(ascending), len(nullsLast))
	}
	elems := make([]OrderByElement, len(exprs))
	for i, e := range exprs {
		if e == nil {
			return nil, constructionErrorf(KindOrderBy, "sort key %d is nil", i)
		}
		elems[i] = OrderByElement{Expr: e, Ascending: ascending[i], NullsLast: nullsLast[i]}
	}
	return &OrderBy{Elements: elems}, nil
}

func (n *OrderBy) Kind() Kind                       { return KindOrderBy }
func (n *OrderBy) Accept(v Visitor) (string, error) { return v.VisitOrderBy(n) }

// Limit restricts the number of rows. An Offset of zero means no offset.
type Limit struct {
	Count  int64
	Offset int64
}

// NewLimit creates a LIMIT clause.
func NewLimit(count, offset int64) (*Limit, error) {
	if count < 0 {
		return nil, constructionErrorf(KindLimit, "negative limit %d", count)
	}
	if offset < 0 {
		return nil, constructionErrorf(KindLimit, "negative offset %d", offset)
	}
	return &Limit{Count: count, Offset: offset}, nil
}

func (n *Limit) Kind() Kind                       { return KindLimit }
func (n *Limit) Accept(v Visitor) (string, error) { return v.VisitLimit(n) }

// Aggregation describes how a statement aggregates.
type Aggregation string

const (
	NoAggregation    Aggregation = ""
	SingleGroup      Aggregation = "single_group"
	GroupAggregation Aggregation = "group_by"
)

// Select is the root of a pushed down query.
type Select struct {
	List        *SelectList
	From        Node
	Where       Node
	GroupBy     *GroupBy
	Having      Node
	OrderBy     *OrderBy
	Limit       *Limit
	Aggregation Aggregation
}

// SelectOption configures optional clauses of a Select.
type SelectOption func(*Select)

// WithFrom sets the FROM item.
func WithFrom(from Node) SelectOption { return func(s *Select) { s.From = from } }

// WithWhere sets the filter predicate.
func WithWhere(pred Node) SelectOption { return func(s *Select) { s.Where = pred } }

// WithGroupBy sets the grouping and marks the statement as grouped.
func WithGroupBy(g *GroupBy) SelectOption {
	return func(s *Select) {
		s.GroupBy = g
		if g != nil {
			s.Aggregation = GroupAggregation
		}
	}
}

// WithAggregation marks the aggregation type explicitly.
func WithAggregation(a Aggregation) SelectOption {
	return func(s *Select) {
		if s.Aggregation != GroupAggregation {
			s.Aggregation = a
		}
	}
}

// WithHaving sets the HAVING predicate.
func WithHaving(pred Node) SelectOption { return func(s *Select) { s.Having = pred } }

// WithOrderBy sets the ORDER BY clause.
func WithOrderBy(o *OrderBy) SelectOption { return func(s *Select) { s.OrderBy = o } }

// WithLimit sets the LIMIT clause.
func WithLimit(l *Limit) SelectOption { return func(s *Select) { s.Limit = l } }

// NewSelect creates a statement and checks its local invariants.
func NewSelect(list *SelectList, opts ...SelectOption) (*Select, error) {
	if list == nil {
		return nil, constructionErrorf(KindSelect, "select list is required")
	}
	s := &Select{List: list}
	for _, opt := range opts {
		opt(s)
	}
	if s.From != nil && !isFromItem(s.From) {
		return nil, constructionErrorf(KindSelect, "FROM must be a table, join or sub-select, got %s", s.From.Kind())
	}
	switch s.Aggregation {
	case NoAggregation, SingleGroup, GroupAggregation:
	default:
		return nil, constructionErrorf(KindSelect, "unknown aggregation type %q", s.Aggregation)
	}
	if s.Aggregation == GroupAggregation && s.GroupBy == nil {
		return nil, constructionErrorf(KindSelect, "group_by aggregation requires a GROUP BY clause")
	}
	if s.Having != nil && s.Aggregation == NoAggregation {
		return nil, constructionErrorf(KindSelect, "HAVING requires an aggregating statement")
	}
	if s.From == nil && (s.Where != nil || s.GroupBy != nil) {
		return nil, constructionErrorf(KindSelect, "WHERE and GROUP BY require a FROM clause")
	}
	return s, nil
}

func (n *Select) Kind() Kind                       { return KindSelect }
func (n *Select) Accept(v Visitor) (string, error) { return v.VisitSelect(n) }
