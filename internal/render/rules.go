package render

import "github.com/zoobzio/pushql/internal/types"

// Rule generates the SQL fragment for one node kind.
type Rule[N types.Node] func(g *Generator, n N) (string, error)

// Rules holds one generation rule per node kind. A dialect supplies a partial
// table; nil fields inherit the default rule.
type Rules struct {
	Select      Rule[*types.Select]
	SelectList  Rule[*types.SelectList]
	Table       Rule[*types.Table]
	Join        Rule[*types.Join]
	SubSelect   Rule[*types.SubSelect]
	Column      Rule[*types.Column]
	Literal     Rule[*types.Literal]
	And         Rule[*types.And]
	Or          Rule[*types.Or]
	Not         Rule[*types.Not]
	Comparison  Rule[*types.Comparison]
	Like        Rule[*types.Like]
	RegexpLike  Rule[*types.RegexpLike]
	Between     Rule[*types.Between]
	InList      Rule[*types.InList]
	InSubquery  Rule[*types.InSubquery]
	IsNull      Rule[*types.IsNull]
	IsNotNull   Rule[*types.IsNotNull]
	Function    Rule[*types.Function]
	Extract     Rule[*types.Extract]
	Cast        Rule[*types.Cast]
	Case        Rule[*types.Case]
	Aggregate   Rule[*types.Aggregate]
	GroupConcat Rule[*types.GroupConcat]
	Window      Rule[*types.Window]
	GroupBy     Rule[*types.GroupBy]
	OrderBy     Rule[*types.OrderBy]
	Limit       Rule[*types.Limit]
}

func pick[N types.Node](base, override Rule[N]) Rule[N] {
	if override != nil {
		return override
	}
	return base
}

// Merge returns r with every non-nil rule of override applied on top.
func (r Rules) Merge(override Rules) Rules {
	return Rules{
		Select:      pick(r.Select, override.Select),
		SelectList:  pick(r.SelectList, override.SelectList),
		Table:       pick(r.Table, override.Table),
		Join:        pick(r.Join, override.Join),
		SubSelect:   pick(r.SubSelect, override.SubSelect),
		Column:      pick(r.Column, override.Column),
		Literal:     pick(r.Literal, override.Literal),
		And:         pick(r.And, override.And),
		Or:          pick(r.Or, override.Or),
		Not:         pick(r.Not, override.Not),
		Comparison:  pick(r.Comparison, override.Comparison),
		Like:        pick(r.Like, override.Like),
		RegexpLike:  pick(r.RegexpLike, override.RegexpLike),
		Between:     pick(r.Between, override.Between),
		InList:      pick(r.InList, override.InList),
		InSubquery:  pick(r.InSubquery, override.InSubquery),
		IsNull:      pick(r.IsNull, override.IsNull),
		IsNotNull:   pick(r.IsNotNull, override.IsNotNull),
		Function:    pick(r.Function, override.Function),
		Extract:     pick(r.Extract, override.Extract),
		Cast:        pick(r.Cast, override.Cast),
		Case:        pick(r.Case, override.Case),
		Aggregate:   pick(r.Aggregate, override.Aggregate),
		GroupConcat: pick(r.GroupConcat, override.GroupConcat),
		Window:      pick(r.Window, override.Window),
		GroupBy:     pick(r.GroupBy, override.GroupBy),
		OrderBy:     pick(r.OrderBy, override.OrderBy),
		Limit:       pick(r.Limit, override.Limit),
	}
}

// DefaultRules returns the rule table every dialect starts from.
func DefaultRules() Rules {
	return Rules{
		Select:      defaultSelect,
		SelectList:  defaultSelectList,
		Table:       defaultTable,
		Join:        defaultJoin,
		SubSelect:   defaultSubSelect,
		Column:      defaultColumn,
		Literal:     defaultLiteral,
		And:         defaultAnd,
		Or:          defaultOr,
		Not:         defaultNot,
		Comparison:  defaultComparison,
		Like:        defaultLike,
		RegexpLike:  defaultRegexpLike,
		Between:     defaultBetween,
		InList:      defaultInList,
		InSubquery:  defaultInSubquery,
		IsNull:      defaultIsNull,
		IsNotNull:   defaultIsNotNull,
		Function:    defaultFunction,
		Extract:     defaultExtract,
		Cast:        defaultCast,
		Case:        defaultCase,
		Aggregate:   defaultAggregate,
		GroupConcat: defaultGroupConcat,
		Window:      defaultWindow,
		GroupBy:     defaultGroupBy,
		OrderBy:     defaultOrderBy,
		Limit:       defaultLimit,
	}
}
