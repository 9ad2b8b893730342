package types

// And is a conjunction of one or more predicates.
type And struct {
	Operands []Node
}

// NewAnd creates a conjunction.
func NewAnd(operands ...Node) (*And, error) {
	if err := checkOperands(KindAnd, operands); err != nil {
		return nil, err
	}
	return &And{Operands: operands}, nil
}

func (n *And) Kind() Kind                       { return KindAnd }
func (n *And) Accept(v Visitor) (string, error) { return v.VisitAnd(n) }

// Or is a disjunction of one or more predicates.
type Or struct {
	Operands []Node
}

// NewOr creates a disjunction.
func NewOr(operands ...Node) (*Or, error) {
	if err := checkOperands(KindOr, operands); err != nil {
		return nil, err
	}
	return &Or{Operands: operands}, nil
}

func (n *Or) Kind() Kind                       { return KindOr }
func (n *Or) Accept(v Visitor) (string, error) { return v.VisitOr(n) }

func checkOperands(kind Kind, operands []Node) error {
	if len(operands) == 0 {
		return constructionErrorf(kind, "at least one operand is required")
	}
	for i, o := range operands {
		if o == nil {
			return constructionErrorf(kind, "operand %d is nil", i)
		}
	}
	return nil
}

// Not negates a predicate.
type Not struct {
	Operand Node
}

// NewNot creates a negation.
func NewNot(operand Node) (*Not, error) {
	if operand == nil {
		return nil, constructionErrorf(KindNot, "operand is required")
	}
	return &Not{Operand: operand}, nil
}

func (n *Not) Kind() Kind                       { return KindNot }
func (n *Not) Accept(v Visitor) (string, error) { return v.VisitNot(n) }

// ComparisonOp is a binary comparison operator.
type ComparisonOp string

const (
	Equal        ComparisonOp = "="
	NotEqual     ComparisonOp = "<>"
	Less         ComparisonOp = "<"
	LessEqual    ComparisonOp = "<="
	Greater      ComparisonOp = ">"
	GreaterEqual ComparisonOp = ">="
)

// Comparison compares two expressions.
type Comparison struct {
	Left  Node
	Right Node
	Op    ComparisonOp
}

// NewComparison creates a comparison.
func NewComparison(op ComparisonOp, left, right Node) (*Comparison, error) {
	switch op {
	case Equal, NotEqual, Less, LessEqual, Greater, GreaterEqual:
	default:
		return nil, constructionErrorf(KindComparison, "unknown operator %q", op)
	}
	if left == nil || right == nil {
		return nil, constructionErrorf(KindComparison, "comparison requires two operands")
	}
	return &Comparison{Op: op, Left: left, Right: right}, nil
}

func (n *Comparison) Kind() Kind                       { return KindComparison }
func (n *Comparison) Accept(v Visitor) (string, error) { return v.VisitComparison(n) }

// Like is expr LIKE pattern [ESCAPE escape].
type Like struct {
	Expr    Node
	Pattern Node
	Escape  Node
}

// NewLike creates a LIKE predicate. Escape is optional.
func NewLike(expr, pattern, escape Node) (*Like, error) {
	if expr == nil || pattern == nil {
		return nil, constructionErrorf(KindLike, "LIKE requires an expression and a pattern")
	}
	return &Like{Expr: expr, Pattern: pattern, Escape: escape}, nil
}

func (n *Like) Kind() Kind                       { return KindLike }
func (n *Like) Accept(v Visitor) (string, error) { return v.VisitLike(n) }

// RegexpLike matches expr against a regular expression pattern.
type RegexpLike struct {
	Expr    Node
	Pattern Node
}

// NewRegexpLike creates a regular expression predicate.
func NewRegexpLike(expr, pattern Node) (*RegexpLike, error) {
	if expr == nil || pattern == nil {
		return nil, constructionErrorf(KindRegexpLike, "REGEXP_LIKE requires an expression and a pattern")
	}
	return &RegexpLike{Expr: expr, Pattern: pattern}, nil
}

func (n *RegexpLike) Kind() Kind                       { return KindRegexpLike }
func (n *RegexpLike) Accept(v Visitor) (string, error) { return v.VisitRegexpLike(n) }

// Between is expr BETWEEN low AND high.
type Between struct {
	Expr Node
	Low  Node
	High Node
}

// NewBetween creates a BETWEEN predicate.
func NewBetween(expr, low, high Node) (*Between, error) {
	if expr == nil || low == nil || high == nil {
		return nil, constructionErrorf(KindBetween, "BETWEEN requires an expression and two bounds")
	}
	return &Between{Expr: expr, Low: low, High: high}, nil
}

func (n *Between) Kind() Kind                       { return KindBetween }
func (n *Between) Accept(v Visitor) (string, error) { return v.VisitBetween(n) }

// InList is expr IN (v1, v2, ...).
type InList struct {
	Expr   Node
	Values []Node
}

// NewInList creates an IN predicate over a constant list.
func NewInList(expr Node, values ...Node) (*InList, error) {
	if expr == nil {
		return nil, constructionErrorf(KindInList, "IN requires an expression")
	}
	if err := checkOperands(KindInList, values); err != nil {
		return nil, err
	}
	return &InList{Expr: expr, Values: values}, nil
}

func (n *InList) Kind() Kind                       { return KindInList }
func (n *InList) Accept(v Visitor) (string, error) { return v.VisitInList(n) }

// InSubquery is expr IN (SELECT ...).
type InSubquery struct {
	Expr   Node
	Select *Select
}

// NewInSubquery creates an IN predicate over a sub-select.
func NewInSubquery(expr Node, sel *Select) (*InSubquery, error) {
	if expr == nil || sel == nil {
		return nil, constructionErrorf(KindInSubquery, "IN requires an expression and a sub-select")
	}
	if sel.List == nil || sel.List.Star || len(sel.List.Items) != 1 {
		return nil, constructionErrorf(KindInSubquery, "sub-select must project exactly one column")
	}
	return &InSubquery{Expr: expr, Select: sel}, nil
}

func (n *InSubquery) Kind() Kind                       { return KindInSubquery }
func (n *InSubquery) Accept(v Visitor) (string, error) { return v.VisitInSubquery(n) }

// IsNull is expr IS NULL.
type IsNull struct {
	Expr Node
}

// NewIsNull creates an IS NULL predicate.
func NewIsNull(expr Node) (*IsNull, error) {
	if expr == nil {
		return nil, constructionErrorf(KindIsNull, "IS NULL requires an expression")
	}
	return &IsNull{Expr: expr}, nil
}

func (n *IsNull) Kind() Kind                       { return KindIsNull }
func (n *IsNull) Accept(v Visitor) (string, error) { return v.VisitIsNull(n) }

// IsNotNull is expr IS NOT NULL.
type IsNotNull struct {
	Expr Node
}

// NewIsNotNull creates an IS NOT NULL predicate.
func NewIsNotNull(expr Node) (*IsNotNull, error) {
	if expr == nil {
		return nil, constructionErrorf(KindIsNotNull, "IS NOT NULL requires an expression")
	}
	return &IsNotNull{Expr: expr}, nil
}

func (n *IsNotNull) Kind() Kind                       { return KindIsNotNull }
func (n *IsNotNull) Accept(v Visitor) (string, error) { return v.VisitIsNotNull(n) }
