package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/pushql/internal/types"
)

func defaultLiteral(g *Generator, n *types.Literal) (string, error) {
	caps := g.Caps()
	switch n.Type {
	case types.LiteralNull:
		return "NULL", nil
	case types.LiteralBool:
		if caps.Has(BooleanLiterals) {
			return strings.ToUpper(n.Value), nil
		}
		if n.Value == "true" {
			return "1", nil
		}
		return "0", nil
	case types.LiteralExactNumeric, types.LiteralDouble:
		return n.Value, nil
	case types.LiteralString:
		return g.String(n.Value), nil
	case types.LiteralDate:
		return fmt.Sprintf(caps.DateLiteral, g.String(n.Value)), nil
	case types.LiteralTimestamp, types.LiteralTimestampUTC:
		return fmt.Sprintf(caps.TimestampLiteral, g.String(n.Value)), nil
	case types.LiteralInterval:
		if err := g.Require(IntervalLiterals, types.KindLiteral, "interval literals"); err != nil {
			return "", err
		}
		return "INTERVAL " + g.String(n.Value) + " " + intervalQualifier(n.Interval.IntervalRange), nil
	}
	return "", g.Unsupported(types.KindLiteral, string(n.Type)+" literals")
}

// applyFunction renders args with spec.
func applyFunction(g *Generator, kind types.Kind, spec FunctionSpec, args []types.Node) (string, error) {
	if spec.Arity >= 0 && len(args) != spec.Arity {
		return "", g.Unsupported(kind, spec.Name, fmt.Sprintf("expects %d arguments, got %d", spec.Arity, len(args)))
	}
	switch spec.Style {
	case KeywordStyle:
		return spec.Name, nil
	case PrefixStyle:
		arg, err := g.Operand(args[0])
		if err != nil {
			return "", err
		}
		return "(" + spec.Name + " " + arg + ")", nil
	case InfixStyle:
		parts := make([]string, len(args))
		for i, a := range args {
			s, err := g.Operand(a)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "(" + strings.Join(parts, " "+spec.Name+" ") + ")", nil
	}
	list, err := g.List(args)
	if err != nil {
		return "", err
	}
	return spec.Name + "(" + list + ")", nil
}

func defaultFunction(g *Generator, n *types.Function) (string, error) {
	spec, ok := g.Caps().Functions[n.Name]
	if !ok {
		return "", g.Unsupported(types.KindFunction, "function "+n.Name)
	}
	return applyFunction(g, types.KindFunction, spec, n.Args)
}

func defaultExtract(g *Generator, n *types.Extract) (string, error) {
	if err := g.Require(Extract, types.KindExtract, "EXTRACT"); err != nil {
		return "", err
	}
	arg, err := g.Operand(n.Arg)
	if err != nil {
		return "", err
	}
	return "EXTRACT(" + string(n.Part) + " FROM " + arg + ")", nil
}

func defaultCast(g *Generator, n *types.Cast) (string, error) {
	name, ok := g.Caps().TypeName(n.Type)
	if !ok {
		return "", g.Unsupported(types.KindCast, "cast to "+n.Type.String())
	}
	arg, err := g.Operand(n.Arg)
	if err != nil {
		return "", err
	}
	if g.Caps().CastStyle == CastDoubleColon {
		return "(" + arg + ")::" + name, nil
	}
	return "CAST(" + arg + " AS " + name + ")", nil
}

func defaultCase(g *Generator, n *types.Case) (string, error) {
	var sql strings.Builder
	sql.WriteString("CASE")

	// Without simple CASE, each branch compares the basis explicitly.
	var basis string
	simple := n.Basis != nil && g.Caps().Has(SimpleCase)
	if n.Basis != nil {
		var err error
		if basis, err = g.Operand(n.Basis); err != nil {
			return "", err
		}
		if simple {
			sql.WriteString(" " + basis)
		}
	}

	for _, w := range n.Whens {
		var when string
		var err error
		switch {
		case simple:
			when, err = g.Operand(w.When)
		case n.Basis != nil:
			when, err = g.Operand(w.When)
			when = basis + " = " + when
		default:
			when, err = g.Predicate(w.When)
		}
		if err != nil {
			return "", err
		}
		then, err := g.Operand(w.Then)
		if err != nil {
			return "", err
		}
		sql.WriteString(" WHEN " + when + " THEN " + then)
	}

	if n.Else != nil {
		els, err := g.Operand(n.Else)
		if err != nil {
			return "", err
		}
		sql.WriteString(" ELSE " + els)
	}
	sql.WriteString(" END")
	return sql.String(), nil
}

func defaultAggregate(g *Generator, n *types.Aggregate) (string, error) {
	name, ok := g.Caps().Aggregates[n.Name]
	if !ok {
		return "", g.Unsupported(types.KindAggregate, "aggregate "+n.Name)
	}

	args := "*"
	if len(n.Args) > 0 {
		var err error
		if args, err = g.List(n.Args); err != nil {
			return "", err
		}
		if n.Distinct {
			args = "DISTINCT " + args
		}
	}
	s := name + "(" + args + ")"

	if n.Filter != nil {
		if err := g.Require(AggregateFilter, types.KindAggregate, "FILTER"); err != nil {
			return "", err
		}
		filter, err := g.Predicate(n.Filter)
		if err != nil {
			return "", err
		}
		s += " FILTER (WHERE " + filter + ")"
	}
	return s, nil
}

// ConcatParts holds the rendered pieces of a string aggregation so dialect
// overrides only need to arrange them.
type ConcatParts struct {
	Arg       string
	OrderBy   string // "ORDER BY ..." or ""
	Separator string // quoted literal or ""
	Distinct  bool
}

// GroupConcatParts checks the capabilities for n and renders its pieces.
func (g *Generator) GroupConcatParts(n *types.GroupConcat) (ConcatParts, error) {
	var p ConcatParts
	if err := g.Require(GroupConcat, types.KindGroupConcat, "GROUP_CONCAT"); err != nil {
		return p, err
	}
	arg, err := g.Operand(n.Arg)
	if err != nil {
		return p, err
	}
	p.Arg = arg
	p.Distinct = n.Distinct
	if n.OrderBy != nil {
		if err := g.Require(GroupConcatOrderBy, types.KindGroupConcat, "ORDER BY in GROUP_CONCAT"); err != nil {
			return p, err
		}
		if p.OrderBy, err = n.OrderBy.Accept(g); err != nil {
			return p, err
		}
	}
	if n.Separator != nil {
		p.Separator = g.String(*n.Separator)
	}
	return p, nil
}

func defaultGroupConcat(g *Generator, n *types.GroupConcat) (string, error) {
	p, err := g.GroupConcatParts(n)
	if err != nil {
		return "", err
	}
	var sql strings.Builder
	sql.WriteString("GROUP_CONCAT(")
	if p.Distinct {
		sql.WriteString("DISTINCT ")
	}
	sql.WriteString(p.Arg)
	if p.OrderBy != "" {
		sql.WriteString(" " + p.OrderBy)
	}
	if p.Separator != "" {
		sql.WriteString(" SEPARATOR " + p.Separator)
	}
	sql.WriteString(")")
	return sql.String(), nil
}

func frameBound(b types.FrameBound) string {
	switch b.Type {
	case types.UnboundedPreceding:
		return "UNBOUNDED PRECEDING"
	case types.Preceding:
		return strconv.FormatInt(b.Offset, 10) + " PRECEDING"
	case types.CurrentRow:
		return "CURRENT ROW"
	case types.Following:
		return strconv.FormatInt(b.Offset, 10) + " FOLLOWING"
	default:
		return "UNBOUNDED FOLLOWING"
	}
}

func defaultWindow(g *Generator, n *types.Window) (string, error) {
	if err := g.Require(WindowFunctions, types.KindWindow, "window functions"); err != nil {
		return "", err
	}
	name, ok := g.Caps().WindowFunctions[n.Name]
	if !ok {
		return "", g.Unsupported(types.KindWindow, "window function "+n.Name)
	}
	args, err := g.List(n.Args)
	if err != nil {
		return "", err
	}
	if len(n.Args) == 0 && n.Name == "COUNT" {
		args = "*"
	}

	var over []string
	if len(n.PartitionBy) > 0 {
		partition, err := g.List(n.PartitionBy)
		if err != nil {
			return "", err
		}
		over = append(over, "PARTITION BY "+partition)
	}
	if n.OrderBy != nil {
		orderBy, err := n.OrderBy.Accept(g)
		if err != nil {
			return "", err
		}
		over = append(over, orderBy)
	}
	if f := n.Frame; f != nil {
		frame := string(f.Units) + " "
		if f.End == nil {
			frame += frameBound(f.Start)
		} else {
			frame += "BETWEEN " + frameBound(f.Start) + " AND " + frameBound(*f.End)
		}
		over = append(over, frame)
	}
	return name + "(" + args + ") OVER (" + strings.Join(over, " ") + ")", nil
}
