package wire

import (
	"github.com/zoobzio/pushql/internal/types"
)

// parser turns wire objects into syntax tree nodes.
// MaxNestingDepth bounds how deeply expressions, joins and sub-selects may
// nest within a request.
const MaxNestingDepth = 128

type parser struct {
	catalog *Catalog
	depth   int
}

// enter descends into o. Every successful enter is paired with a leave.
func (p *parser) enter(o object) error {
	if p.depth >= MaxNestingDepth {
		return malformed(o.path, "nested deeper than %d levels", MaxNestingDepth)
	}
	p.depth++
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) parseSelect(o object, outer *scope) (*types.Select, error) {
	if err := p.enter(o); err != nil {
		return nil, err
	}
	defer p.leave()

	tag, err := o.tag()
	if err != nil {
		return nil, err
	}
	if tag != "select" {
		return nil, malformed(o.at("type"), "expected select, got %q", tag)
	}

	// FROM first: every other clause refers to the tables it introduces.
	sc := newScope(outer)
	var opts []types.SelectOption
	if o.has("from") {
		fromObj, err := o.child("from")
		if err != nil {
			return nil, err
		}
		from, err := p.parseFrom(fromObj, sc)
		if err != nil {
			return nil, err
		}
		opts = append(opts, types.WithFrom(from))
	}

	list, err := p.parseSelectList(o, sc)
	if err != nil {
		return nil, err
	}

	if o.has("filter") {
		where, err := p.parseChild(o, "filter", sc)
		if err != nil {
			return nil, err
		}
		opts = append(opts, types.WithWhere(where))
	}

	aggregation, err := o.optStr("aggregationType")
	if err != nil {
		return nil, err
	}
	switch types.Aggregation(aggregation) {
	case types.NoAggregation, types.SingleGroup, types.GroupAggregation:
		opts = append(opts, types.WithAggregation(types.Aggregation(aggregation)))
	default:
		return nil, malformed(o.at("aggregationType"), "unknown aggregation type %q", aggregation)
	}

	if o.has("groupBy") {
		exprs, err := p.parseList(o, "groupBy", sc)
		if err != nil {
			return nil, err
		}
		groupBy, err := types.NewGroupBy(exprs...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, types.WithGroupBy(groupBy))
	}

	if o.has("having") {
		having, err := p.parseChild(o, "having", sc)
		if err != nil {
			return nil, err
		}
		opts = append(opts, types.WithHaving(having))
	}

	if o.has("orderBy") {
		orderBy, err := p.parseOrderBy(o, "orderBy", sc)
		if err != nil {
			return nil, err
		}
		opts = append(opts, types.WithOrderBy(orderBy))
	}

	if o.has("limit") {
		limitObj, err := o.child("limit")
		if err != nil {
			return nil, err
		}
		if !limitObj.has("numElements") {
			return nil, malformed(limitObj.at("numElements"), "required field is missing")
		}
		count, err := limitObj.integer("numElements", 0)
		if err != nil {
			return nil, err
		}
		offset, err := limitObj.integer("offset", 0)
		if err != nil {
			return nil, err
		}
		limit, err := types.NewLimit(count, offset)
		if err != nil {
			return nil, err
		}
		opts = append(opts, types.WithLimit(limit))
	}

	return types.NewSelect(list, opts...)
}

// parseSelectList distinguishes an absent list (all columns) from an empty
// one (any column will do).
func (p *parser) parseSelectList(o object, sc *scope) (*types.SelectList, error) {
	if !o.has("selectList") {
		return types.StarList(), nil
	}
	elems, err := o.list("selectList")
	if err != nil {
		return nil, err
	}
	items := make([]types.SelectItem, len(elems))
	for i, el := range elems {
		expr, err := p.parseExpr(el, sc)
		if err != nil {
			return nil, err
		}
		alias, err := el.optStr("alias")
		if err != nil {
			return nil, err
		}
		items[i] = types.SelectItem{Expr: expr, Alias: alias}
	}
	return types.NewSelectList(items...)
}

func (p *parser) parseFrom(o object, sc *scope) (types.Node, error) {
	if err := p.enter(o); err != nil {
		return nil, err
	}
	defer p.leave()

	tag, err := o.tag()
	if err != nil {
		return nil, err
	}
	switch tag {
	case "table":
		name, err := o.str("name")
		if err != nil {
			return nil, err
		}
		alias, err := o.optStr("alias")
		if err != nil {
			return nil, err
		}
		table, err := types.NewTable(name, alias)
		if err != nil {
			return nil, err
		}
		if !sc.add(&source{table: name, alias: alias}) {
			return nil, malformed(o.path, "table %q is introduced twice", table.Reference())
		}
		return table, nil

	case "join":
		joinType, err := o.str("join_type")
		if err != nil {
			return nil, err
		}
		typ, ok := joinTypes[joinType]
		if !ok {
			return nil, malformed(o.at("join_type"), "unknown join type %q", joinType)
		}
		leftObj, err := o.child("left")
		if err != nil {
			return nil, err
		}
		left, err := p.parseFrom(leftObj, sc)
		if err != nil {
			return nil, err
		}
		rightObj, err := o.child("right")
		if err != nil {
			return nil, err
		}
		right, err := p.parseFrom(rightObj, sc)
		if err != nil {
			return nil, err
		}
		condition, err := p.parseChild(o, "condition", sc)
		if err != nil {
			return nil, err
		}
		return types.NewJoin(typ, left, right, condition)

	case "sub_select":
		alias, err := o.str("alias")
		if err != nil {
			return nil, err
		}
		selObj, err := o.child("select")
		if err != nil {
			return nil, err
		}
		// derived tables do not see their siblings in the same FROM
		sel, err := p.parseSelect(selObj, sc.parent)
		if err != nil {
			return nil, err
		}
		sub, err := types.NewSubSelect(sel, alias)
		if err != nil {
			return nil, err
		}
		if !sc.add(&source{table: alias, alias: alias, derived: true}) {
			return nil, malformed(o.at("alias"), "table %q is introduced twice", alias)
		}
		return sub, nil
	}
	return nil, malformed(o.at("type"), "unknown FROM item %q", tag)
}

var joinTypes = map[string]types.JoinType{
	"inner":       types.InnerJoin,
	"left_outer":  types.LeftJoin,
	"right_outer": types.RightJoin,
	"full_outer":  types.FullJoin,
}

func (p *parser) parseOrderBy(o object, key string, sc *scope) (*types.OrderBy, error) {
	elems, err := o.list(key)
	if err != nil {
		return nil, err
	}
	exprs := make([]types.Node, len(elems))
	ascending := make([]bool, len(elems))
	nullsLast := make([]bool, len(elems))
	for i, el := range elems {
		tag, err := el.tag()
		if err != nil {
			return nil, err
		}
		if tag != "order_by_element" {
			return nil, malformed(el.at("type"), "expected order_by_element, got %q", tag)
		}
		if exprs[i], err = p.parseChild(el, "expression", sc); err != nil {
			return nil, err
		}
		if ascending[i], err = el.boolean("isAscending", true); err != nil {
			return nil, err
		}
		// absent means the ANSI default: NULLs sort as the largest value
		if nullsLast[i], err = el.boolean("nullsLast", ascending[i]); err != nil {
			return nil, err
		}
	}
	return types.NewOrderBy(exprs, ascending, nullsLast)
}
