package types

// Table is a physical table reference in a FROM clause.
type Table struct {
	Name  string
	Alias string
}

// NewTable creates a table reference. Alias is optional.
func NewTable(name, alias string) (*Table, error) {
	if name == "" {
		return nil, constructionErrorf(KindTable, "table name is required")
	}
	return &Table{Name: name, Alias: alias}, nil
}

func (n *Table) Kind() Kind                       { return KindTable }
func (n *Table) Accept(v Visitor) (string, error) { return v.VisitTable(n) }

// Reference returns the name columns use to refer to this table.
func (n *Table) Reference() string {
	if n.Alias != "" {
		return n.Alias
	}
	return n.Name
}

// JoinType represents the type of SQL join.
type JoinType string

const (
	InnerJoin JoinType = "INNER"
	LeftJoin  JoinType = "LEFT"
	RightJoin JoinType = "RIGHT"
	FullJoin  JoinType = "FULL"
)

// Join combines two FROM items with a join condition.
type Join struct {
	Left      Node
	Right     Node
	Condition Node
	Type      JoinType
}

// NewJoin creates a join. The condition is mandatory and may only reference
// tables introduced by the left or right subtree.
func NewJoin(typ JoinType, left, right, condition Node) (*Join, error) {
	switch typ {
	case InnerJoin, LeftJoin, RightJoin, FullJoin:
	default:
		return nil, constructionErrorf(KindJoin, "unknown join type %q", typ)
	}
	if left == nil || right == nil {
		return nil, constructionErrorf(KindJoin, "join requires both sides")
	}
	if !isFromItem(left) || !isFromItem(right) {
		return nil, constructionErrorf(KindJoin, "join sides must be tables, joins or sub-selects")
	}
	if condition == nil {
		return nil, constructionErrorf(KindJoin, "join requires a condition")
	}

	visible := make(map[string]bool)
	for _, ref := range append(Sources(left), Sources(right)...) {
		visible[ref] = true
	}
	var dangling string
	Walk(condition, func(n Node) bool {
		switch c := n.(type) {
		case *Select:
			// sub-selects introduce their own scope
			return false
		case *Column:
			if ref := c.Qualifier(); ref != "" && !visible[ref] && dangling == "" {
				dangling = ref
			}
		}
		return true
	})
	if dangling != "" {
		return nil, constructionErrorf(KindJoin, "join condition references table %q outside of the join", dangling)
	}

	return &Join{Type: typ, Left: left, Right: right, Condition: condition}, nil
}

func (n *Join) Kind() Kind                       { return KindJoin }
func (n *Join) Accept(v Visitor) (string, error) { return v.VisitJoin(n) }

// SubSelect is a derived table.
type SubSelect struct {
	Select *Select
	Alias  string
}

// NewSubSelect creates a derived table. Derived tables must be aliased.
func NewSubSelect(sel *Select, alias string) (*SubSelect, error) {
	if sel == nil {
		return nil, constructionErrorf(KindSubSelect, "sub-select requires a statement")
	}
	if alias == "" {
		return nil, constructionErrorf(KindSubSelect, "sub-select requires an alias")
	}
	return &SubSelect{Select: sel, Alias: alias}, nil
}

func (n *SubSelect) Kind() Kind                       { return KindSubSelect }
func (n *SubSelect) Accept(v Visitor) (string, error) { return v.VisitSubSelect(n) }

// Sources returns the names by which columns may refer to the tables a FROM
// item introduces: the alias if present, otherwise the table name.
func Sources(from Node) []string {
	switch f := from.(type) {
	case *Table:
		return []string{f.Reference()}
	case *SubSelect:
		return []string{f.Alias}
	case *Join:
		return append(Sources(f.Left), Sources(f.Right)...)
	}
	return nil
}
