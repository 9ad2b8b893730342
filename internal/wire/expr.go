package wire

import (
	"strings"

	"github.com/zoobzio/pushql/internal/types"
)

var comparisons = map[string]types.ComparisonOp{
	"predicate_equal":        types.Equal,
	"predicate_notequal":     types.NotEqual,
	"predicate_less":         types.Less,
	"predicate_lessequal":    types.LessEqual,
	"predicate_greater":      types.Greater,
	"predicate_greaterequal": types.GreaterEqual,
}

var literals = map[string]types.LiteralType{
	"literal_null":         types.LiteralNull,
	"literal_bool":         types.LiteralBool,
	"literal_exactnumeric": types.LiteralExactNumeric,
	"literal_double":       types.LiteralDouble,
	"literal_string":       types.LiteralString,
	"literal_date":         types.LiteralDate,
	"literal_timestamp":    types.LiteralTimestamp,
	"literal_timestamputc": types.LiteralTimestampUTC,
	"literal_interval":     types.LiteralInterval,
}

var frameBounds = map[string]types.BoundType{
	"unbounded_preceding": types.UnboundedPreceding,
	"preceding":           types.Preceding,
	"current_row":         types.CurrentRow,
	"following":           types.Following,
	"unbounded_following": types.UnboundedFollowing,
}

func (p *parser) parseChild(o object, key string, sc *scope) (types.Node, error) {
	child, err := o.child(key)
	if err != nil {
		return nil, err
	}
	return p.parseExpr(child, sc)
}

func (p *parser) parseList(o object, key string, sc *scope) ([]types.Node, error) {
	elems, err := o.list(key)
	if err != nil {
		return nil, err
	}
	nodes := make([]types.Node, len(elems))
	for i, el := range elems {
		if nodes[i], err = p.parseExpr(el, sc); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// parseArgs reads the arguments array and checks its length when want >= 0.
func (p *parser) parseArgs(o object, sc *scope, want int) ([]types.Node, error) {
	args, err := p.parseList(o, "arguments", sc)
	if err != nil {
		return nil, err
	}
	if want >= 0 && len(args) != want {
		return nil, malformed(o.at("arguments"), "expected %d arguments, got %d", want, len(args))
	}
	return args, nil
}

func (p *parser) parseExpr(o object, sc *scope) (types.Node, error) {
	if err := p.enter(o); err != nil {
		return nil, err
	}
	defer p.leave()

	tag, err := o.tag()
	if err != nil {
		return nil, err
	}
	if op, ok := comparisons[tag]; ok {
		left, err := p.parseChild(o, "left", sc)
		if err != nil {
			return nil, err
		}
		right, err := p.parseChild(o, "right", sc)
		if err != nil {
			return nil, err
		}
		return types.NewComparison(op, left, right)
	}
	if typ, ok := literals[tag]; ok {
		return p.parseLiteral(o, typ)
	}

	switch tag {
	case "column":
		return p.parseColumn(o, sc)

	case "predicate_and", "predicate_or":
		operands, err := p.parseList(o, "expressions", sc)
		if err != nil {
			return nil, err
		}
		if tag == "predicate_and" {
			return types.NewAnd(operands...)
		}
		return types.NewOr(operands...)

	case "predicate_not":
		operand, err := p.parseChild(o, "expression", sc)
		if err != nil {
			return nil, err
		}
		return types.NewNot(operand)

	case "predicate_like":
		expr, pattern, err := p.parsePair(o, "expression", "pattern", sc)
		if err != nil {
			return nil, err
		}
		var escape types.Node
		if o.has("escapeChar") {
			if escape, err = p.parseChild(o, "escapeChar", sc); err != nil {
				return nil, err
			}
		}
		return types.NewLike(expr, pattern, escape)

	case "predicate_like_regexp":
		expr, pattern, err := p.parsePair(o, "expression", "pattern", sc)
		if err != nil {
			return nil, err
		}
		return types.NewRegexpLike(expr, pattern)

	case "predicate_between":
		expr, err := p.parseChild(o, "expression", sc)
		if err != nil {
			return nil, err
		}
		low, high, err := p.parsePair(o, "left", "right", sc)
		if err != nil {
			return nil, err
		}
		return types.NewBetween(expr, low, high)

	case "predicate_in_constlist":
		expr, err := p.parseChild(o, "expression", sc)
		if err != nil {
			return nil, err
		}
		values, err := p.parseArgs(o, sc, -1)
		if err != nil {
			return nil, err
		}
		return types.NewInList(expr, values...)

	case "predicate_in_subselect":
		expr, err := p.parseChild(o, "expression", sc)
		if err != nil {
			return nil, err
		}
		selObj, err := o.child("select")
		if err != nil {
			return nil, err
		}
		sel, err := p.parseSelect(selObj, sc)
		if err != nil {
			return nil, err
		}
		return types.NewInSubquery(expr, sel)

	case "predicate_is_null", "predicate_is_not_null":
		expr, err := p.parseChild(o, "expression", sc)
		if err != nil {
			return nil, err
		}
		if tag == "predicate_is_null" {
			return types.NewIsNull(expr)
		}
		return types.NewIsNotNull(expr)

	case "function_scalar":
		name, err := o.str("name")
		if err != nil {
			return nil, err
		}
		args, err := p.parseArgs(o, sc, -1)
		if err != nil {
			return nil, err
		}
		return types.NewFunction(name, args...)

	case "function_scalar_extract":
		part, err := o.str("toExtract")
		if err != nil {
			return nil, err
		}
		args, err := p.parseArgs(o, sc, 1)
		if err != nil {
			return nil, err
		}
		return types.NewExtract(types.DatePart(strings.ToUpper(part)), args[0])

	case "function_scalar_cast":
		dtObj, err := o.child("dataType")
		if err != nil {
			return nil, err
		}
		dt, err := parseDataType(dtObj)
		if err != nil {
			return nil, err
		}
		args, err := p.parseArgs(o, sc, 1)
		if err != nil {
			return nil, err
		}
		return types.NewCast(args[0], dt)

	case "function_scalar_case":
		return p.parseCase(o, sc)

	case "function_aggregate":
		name, err := o.str("name")
		if err != nil {
			return nil, err
		}
		distinct, err := o.boolean("distinct", false)
		if err != nil {
			return nil, err
		}
		args, err := p.parseArgs(o, sc, -1)
		if err != nil {
			return nil, err
		}
		var filter types.Node
		if o.has("filter") {
			if filter, err = p.parseChild(o, "filter", sc); err != nil {
				return nil, err
			}
		}
		return types.NewAggregate(name, distinct, filter, args...)

	case "function_aggregate_group_concat":
		return p.parseGroupConcat(o, sc)

	case "function_window":
		return p.parseWindow(o, sc)
	}
	return nil, malformed(o.at("type"), "unknown node type %q", tag)
}

func (p *parser) parsePair(o object, first, second string, sc *scope) (types.Node, types.Node, error) {
	a, err := p.parseChild(o, first, sc)
	if err != nil {
		return nil, nil, err
	}
	b, err := p.parseChild(o, second, sc)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func (p *parser) parseColumn(o object, sc *scope) (types.Node, error) {
	name, err := o.str("name")
	if err != nil {
		return nil, err
	}
	tableName, err := o.optStr("tableName")
	if err != nil {
		return nil, err
	}
	tableAlias, err := o.optStr("tableAlias")
	if err != nil {
		return nil, err
	}
	if tableName == "" && tableAlias == "" {
		return nil, malformed(o.at("tableName"), "column %q names no table", name)
	}
	src, ok := sc.resolve(tableName, tableAlias)
	if !ok {
		ref := tableAlias
		if ref == "" {
			ref = tableName
		}
		return nil, malformed(o.path, "column %q references table %q which is not in scope", name, ref)
	}

	var dt types.DataType
	if !src.derived && p.catalog.Has(src.table) {
		if dt, ok = p.catalog.Lookup(src.table, name); !ok {
			return nil, malformed(o.at("name"), "table %q has no column %q", src.table, name)
		}
	}
	col, err := types.NewColumn(src.table, name, dt)
	if err != nil {
		return nil, err
	}
	col.TableAlias = src.alias
	index, err := o.integer("columnNr", 0)
	if err != nil {
		return nil, err
	}
	col.Index = int(index)
	return col, nil
}

func (p *parser) parseLiteral(o object, typ types.LiteralType) (types.Node, error) {
	switch typ {
	case types.LiteralNull:
		return types.NewLiteral(typ, "")
	case types.LiteralInterval:
		value, err := o.scalar("value")
		if err != nil {
			return nil, err
		}
		dtObj, err := o.child("dataType")
		if err != nil {
			return nil, err
		}
		dt, err := parseDataType(dtObj)
		if err != nil {
			return nil, err
		}
		return types.NewIntervalLiteral(value, dt)
	}
	value, err := o.scalar("value")
	if err != nil {
		return nil, err
	}
	return types.NewLiteral(typ, value)
}

// parseCase reads a CASE whose results carry one extra entry for ELSE.
func (p *parser) parseCase(o object, sc *scope) (types.Node, error) {
	var basis types.Node
	var err error
	if o.has("basis") {
		if basis, err = p.parseChild(o, "basis", sc); err != nil {
			return nil, err
		}
	}
	whens, err := p.parseArgs(o, sc, -1)
	if err != nil {
		return nil, err
	}
	results, err := p.parseList(o, "results", sc)
	if err != nil {
		return nil, err
	}
	if len(results) != len(whens) && len(results) != len(whens)+1 {
		return nil, malformed(o.at("results"), "expected %d or %d results, got %d", len(whens), len(whens)+1, len(results))
	}
	clauses := make([]types.WhenClause, len(whens))
	for i, w := range whens {
		clauses[i] = types.WhenClause{When: w, Then: results[i]}
	}
	var elseResult types.Node
	if len(results) > len(whens) {
		elseResult = results[len(whens)]
	}
	return types.NewCase(basis, clauses, elseResult)
}

func (p *parser) parseGroupConcat(o object, sc *scope) (types.Node, error) {
	distinct, err := o.boolean("distinct", false)
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgs(o, sc, 1)
	if err != nil {
		return nil, err
	}
	var orderBy *types.OrderBy
	if o.has("orderBy") {
		if orderBy, err = p.parseOrderBy(o, "orderBy", sc); err != nil {
			return nil, err
		}
	}
	var separator *string
	if o.has("separator") {
		sep, err := o.str("separator")
		if err != nil {
			return nil, err
		}
		separator = &sep
	}
	return types.NewGroupConcat(args[0], distinct, orderBy, separator)
}

func (p *parser) parseWindow(o object, sc *scope) (types.Node, error) {
	name, err := o.str("name")
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgs(o, sc, -1)
	if err != nil {
		return nil, err
	}
	partitionBy, err := p.parseList(o, "partitionBy", sc)
	if err != nil {
		return nil, err
	}
	var orderBy *types.OrderBy
	if o.has("orderBy") {
		if orderBy, err = p.parseOrderBy(o, "orderBy", sc); err != nil {
			return nil, err
		}
	}
	var frame *types.Frame
	if o.has("frame") {
		frameObj, err := o.child("frame")
		if err != nil {
			return nil, err
		}
		if frame, err = parseFrame(frameObj); err != nil {
			return nil, err
		}
	}
	return types.NewWindow(name, args, partitionBy, orderBy, frame)
}

func parseFrame(o object) (*types.Frame, error) {
	units, err := o.str("units")
	if err != nil {
		return nil, err
	}
	frame := &types.Frame{Units: types.FrameUnits(strings.ToUpper(units))}
	startObj, err := o.child("start")
	if err != nil {
		return nil, err
	}
	if frame.Start, err = parseFrameBound(startObj); err != nil {
		return nil, err
	}
	if o.has("end") {
		endObj, err := o.child("end")
		if err != nil {
			return nil, err
		}
		end, err := parseFrameBound(endObj)
		if err != nil {
			return nil, err
		}
		frame.End = &end
	}
	return frame, nil
}

func parseFrameBound(o object) (types.FrameBound, error) {
	var b types.FrameBound
	tag, err := o.tag()
	if err != nil {
		return b, err
	}
	typ, ok := frameBounds[tag]
	if !ok {
		return b, malformed(o.at("type"), "unknown frame bound %q", tag)
	}
	b.Type = typ
	if typ == types.Preceding || typ == types.Following {
		if b.Offset, err = o.integer("offset", 0); err != nil {
			return b, err
		}
	}
	return b, nil
}
