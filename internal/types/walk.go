package types

// Children returns the direct children of n in evaluation order.
func Children(n Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, c := range nodes {
			if c != nil {
				out = append(out, c)
			}
		}
	}

	switch x := n.(type) {
	case *Select:
		add(x.List, x.From, x.Where)
		if x.GroupBy != nil {
			add(x.GroupBy)
		}
		add(x.Having)
		if x.OrderBy != nil {
			add(x.OrderBy)
		}
		if x.Limit != nil {
			add(x.Limit)
		}
	case *SelectList:
		for _, it := range x.Items {
			add(it.Expr)
		}
	case *Join:
		add(x.Left, x.Right, x.Condition)
	case *SubSelect:
		add(x.Select)
	case *And:
		add(x.Operands...)
	case *Or:
		add(x.Operands...)
	case *Not:
		add(x.Operand)
	case *Comparison:
		add(x.Left, x.Right)
	case *Like:
		add(x.Expr, x.Pattern, x.Escape)
	case *RegexpLike:
		add(x.Expr, x.Pattern)
	case *Between:
		add(x.Expr, x.Low, x.High)
	case *InList:
		add(x.Expr)
		add(x.Values...)
	case *InSubquery:
		add(x.Expr, x.Select)
	case *IsNull:
		add(x.Expr)
	case *IsNotNull:
		add(x.Expr)
	case *Function:
		add(x.Args...)
	case *Extract:
		add(x.Arg)
	case *Cast:
		add(x.Arg)
	case *Case:
		add(x.Basis)
		for _, w := range x.Whens {
			add(w.When, w.Then)
		}
		add(x.Else)
	case *Aggregate:
		add(x.Args...)
		add(x.Filter)
	case *GroupConcat:
		add(x.Arg)
		if x.OrderBy != nil {
			add(x.OrderBy)
		}
	case *Window:
		add(x.Args...)
		add(x.PartitionBy...)
		if x.OrderBy != nil {
			add(x.OrderBy)
		}
	case *GroupBy:
		add(x.Exprs...)
	case *OrderBy:
		for _, e := range x.Elements {
			add(e.Expr)
		}
	}
	return out
}

// Walk visits n and its descendants in pre-order. Children of a node are
// skipped when fn returns false for it.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}
