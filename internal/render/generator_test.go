package render

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/pushql/internal/types"
)

func TestRulesCoverEveryNodeKind(t *testing.T) {
	visitor := reflect.TypeOf((*types.Visitor)(nil)).Elem()
	rules := reflect.TypeOf(Rules{})
	require.Equal(t, visitor.NumMethod(), rules.NumField())

	for i := 0; i < visitor.NumMethod(); i++ {
		name := visitor.Method(i).Name[len("Visit"):]
		_, ok := rules.FieldByName(name)
		assert.True(t, ok, "no rule field for %s", name)
	}

	defaults := reflect.ValueOf(DefaultRules())
	for i := 0; i < defaults.NumField(); i++ {
		assert.False(t, defaults.Field(i).IsNil(), "default rule %s is nil", rules.Field(i).Name)
	}
}

func TestGenerate_Select(t *testing.T) {
	d := testDialect(nil, Rules{})
	single := NewContext("", "LS", false, false)

	tests := []struct {
		name string
		sel  *types.Select
		ctx  Context
		want string
	}{
		{
			name: "star",
			sel:  must(types.NewSelect(types.StarList(), types.WithFrom(table("CLICKS")))),
			ctx:  single,
			want: "SELECT * FROM LS.CLICKS",
		},
		{
			name: "any column",
			sel:  must(types.NewSelect(items(), types.WithFrom(table("CLICKS")))),
			ctx:  single,
			want: "SELECT TRUE FROM LS.CLICKS",
		},
		{
			name: "forced quoting",
			sel:  must(types.NewSelect(items(col("CLICKS", "USER_ID")), types.WithFrom(table("CLICKS")))),
			ctx:  NewContext("", "LS", true, false),
			want: `SELECT "USER_ID" FROM "LS"."CLICKS"`,
		},
		{
			name: "catalog and schema",
			sel:  must(types.NewSelect(items(col("CLICKS", "USER_ID")), types.WithFrom(table("CLICKS")))),
			ctx:  NewContext("CAT", "LS", false, false),
			want: "SELECT USER_ID FROM CAT.LS.CLICKS",
		},
		{
			name: "no schema",
			sel:  must(types.NewSelect(items(col("CLICKS", "USER_ID")), types.WithFrom(table("CLICKS")))),
			ctx:  NewContext("", "", false, false),
			want: "SELECT USER_ID FROM CLICKS",
		},
		{
			name: "alias",
			sel: must(types.NewSelect(
				must(types.NewSelectList(types.SelectItem{Expr: col("CLICKS", "USER_ID"), Alias: "uid"})),
				types.WithFrom(must(types.NewTable("CLICKS", "C"))),
			)),
			ctx:  single,
			want: `SELECT USER_ID AS "uid" FROM LS.CLICKS AS C`,
		},
		{
			name: "all clauses",
			sel: must(types.NewSelect(
				items(col("CLICKS", "USER_ID"), must(types.NewAggregate("count", false, nil))),
				types.WithFrom(table("CLICKS")),
				types.WithWhere(eq(col("CLICKS", "PAGE"), str("home"))),
				types.WithGroupBy(must(types.NewGroupBy(col("CLICKS", "USER_ID")))),
				types.WithHaving(eq(must(types.NewAggregate("COUNT", false, nil)), num("1"))),
				types.WithOrderBy(orderBy(false, false, col("CLICKS", "USER_ID"))),
				types.WithLimit(must(types.NewLimit(10, 5))),
			)),
			ctx: single,
			want: "SELECT USER_ID, COUNT(*) FROM LS.CLICKS WHERE PAGE = 'home' GROUP BY USER_ID " +
				"HAVING COUNT(*) = 1 ORDER BY USER_ID DESC LIMIT 10 OFFSET 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Generate(tt.sel, tt.ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_Quoting(t *testing.T) {
	d := testDialect(nil, Rules{})
	ctx := NewContext("", "", false, false)

	tests := []struct {
		id   string
		want string
	}{
		{"USER_ID", "USER_ID"},
		{"user_id", `"user_id"`},
		{"SELECT", `"SELECT"`},
		{"order", `"order"`},
		{"MY COL", `"MY COL"`},
		{"1ST", `"1ST"`},
		{`A"B`, `"A""B"`},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := d.Generate(col("T", tt.id), ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("lower case dialect", func(t *testing.T) {
		lower := testDialect(func(c *Capabilities) { c.IdentifierCase = LowerCase }, Rules{})
		got, err := lower.Generate(col("T", "USER_ID"), ctx)
		require.NoError(t, err)
		assert.Equal(t, `"USER_ID"`, got)

		got, err = lower.Generate(col("T", "user_id"), ctx)
		require.NoError(t, err)
		assert.Equal(t, "user_id", got)
	})

	t.Run("case sensitive dialect", func(t *testing.T) {
		bq := testDialect(func(c *Capabilities) {
			c.IdentifierCase = CaseSensitive
			c.QuoteOpen, c.QuoteClose = "`", "`"
		}, Rules{})
		got, err := bq.Generate(col("T", "a`b"), ctx)
		require.NoError(t, err)
		assert.Equal(t, "`a``b`", got)
	})

	t.Run("brackets", func(t *testing.T) {
		ms := testDialect(func(c *Capabilities) { c.QuoteOpen, c.QuoteClose = "[", "]" }, Rules{})
		got, err := ms.Generate(col("T", "a]b"), ctx)
		require.NoError(t, err)
		assert.Equal(t, "[a]]b]", got)
	})
}

func TestGenerate_Qualification(t *testing.T) {
	d := testDialect(nil, Rules{})
	join := must(types.NewJoin(types.InnerJoin, table("CLICKS"), table("USERS"),
		eq(col("CLICKS", "USER_ID"), col("USERS", "ID"))))
	sel := must(types.NewSelect(items(col("CLICKS", "USER_ID"), col("USERS", "NAME")), types.WithFrom(join)))

	multi, err := d.Generate(sel, NewContext("", "LS", true, true))
	require.NoError(t, err)
	assert.Equal(t, `SELECT "LS"."CLICKS"."USER_ID", "LS"."USERS"."NAME" FROM "LS"."CLICKS" INNER JOIN "LS"."USERS" ON "LS"."CLICKS"."USER_ID" = "LS"."USERS"."ID"`, multi)

	c := col("CLICKS", "USER_ID")
	single, err := d.Generate(c, NewContext("", "LS", true, false))
	require.NoError(t, err)
	assert.Equal(t, `"USER_ID"`, single)

	aliased := col("CLICKS", "USER_ID")
	aliased.TableAlias = "c"
	got, err := d.Generate(aliased, NewContext("", "LS", false, false))
	require.NoError(t, err)
	assert.Equal(t, `"c".USER_ID`, got)
}

func TestGenerate_Joins(t *testing.T) {
	ctx := NewContext("", "", false, true)
	ab := eq(col("A", "X"), col("B", "X"))
	bc := eq(col("B", "X"), col("C", "X"))

	t.Run("right nested join is parenthesized", func(t *testing.T) {
		inner := must(types.NewJoin(types.LeftJoin, table("B"), table("C"), bc))
		outer := must(types.NewJoin(types.InnerJoin, table("A"), inner, ab))
		got, err := testDialect(nil, Rules{}).Generate(outer, ctx)
		require.NoError(t, err)
		assert.Equal(t, "A INNER JOIN (B LEFT OUTER JOIN C ON B.X = C.X) ON A.X = B.X", got)
	})

	t.Run("left nested join is not", func(t *testing.T) {
		inner := must(types.NewJoin(types.InnerJoin, table("A"), table("B"), ab))
		outer := must(types.NewJoin(types.RightJoin, inner, table("C"), bc))
		got, err := testDialect(nil, Rules{}).Generate(outer, ctx)
		require.NoError(t, err)
		assert.Equal(t, "A INNER JOIN B ON A.X = B.X RIGHT OUTER JOIN C ON B.X = C.X", got)
	})

	t.Run("full join without support fails", func(t *testing.T) {
		d := testDialect(func(c *Capabilities) { c.Supported = c.Supported.Without(FullOuterJoin) }, Rules{})
		full := must(types.NewJoin(types.FullJoin, table("A"), table("B"), ab))
		got, err := d.Generate(full, ctx)
		var upErr *UnsupportedPushdownError
		require.ErrorAs(t, err, &upErr)
		assert.Empty(t, got)
		assert.Equal(t, types.KindJoin, upErr.Kind)
		assert.Equal(t, "TEST", upErr.Dialect)
	})
}

func TestGenerate_Connectives(t *testing.T) {
	d := testDialect(nil, Rules{})
	ctx := NewContext("", "", false, false)
	a, b, c := eq(col("T", "A"), num("1")), eq(col("T", "B"), num("2")), eq(col("T", "C"), num("3"))

	tests := []struct {
		name string
		node types.Node
		want string
	}{
		{"or under and", and(or(a, b), c), "(A = 1 OR B = 2) AND C = 3"},
		{"and under or", or(and(a, b), c), "(A = 1 AND B = 2) OR C = 3"},
		{"not over and", not(and(a, b)), "NOT (A = 1 AND B = 2)"},
		{"not over comparison", not(a), "NOT (A = 1)"},
		{"single operand", and(or(a, b)), "A = 1 OR B = 2"},
		{"single operand nested", and(and(or(a, b)), c), "(A = 1 OR B = 2) AND C = 3"},
		{"flat", and(a, b, c), "A = 1 AND B = 2 AND C = 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Generate(tt.node, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_BooleanLiterals(t *testing.T) {
	d := testDialect(func(c *Capabilities) { c.Supported = c.Supported.Without(BooleanLiterals) }, Rules{})
	ctx := NewContext("", "", false, false)
	truth := types.MustLiteral(types.LiteralBool, "TRUE")

	sel := must(types.NewSelect(items(truth), types.WithFrom(table("T")),
		types.WithWhere(and(truth, boolCol("T", "FLAG")))))
	got, err := d.Generate(sel, ctx)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 FROM T WHERE 1 = 1 AND FLAG = 1", got)

	got, err = d.Generate(must(types.NewSelect(items(), types.WithFrom(table("T")))), ctx)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 FROM T", got)

	got, err = d.Generate(must(types.NewSelect(items(eq(col("T", "A"), num("1"))), types.WithFrom(table("T")))), ctx)
	require.NoError(t, err)
	assert.Equal(t, "SELECT CASE WHEN A = 1 THEN 1 WHEN NOT (A = 1) THEN 0 END FROM T", got)

	got, err = d.Generate(eq(must(types.NewIsNull(col("T", "A"))), truth), ctx)
	require.NoError(t, err)
	assert.Equal(t, "CASE WHEN A IS NULL THEN 1 WHEN NOT (A IS NULL) THEN 0 END = 1", got)
}

func TestGenerate_OrderBy(t *testing.T) {
	ctx := NewContext("", "", false, false)
	x := col("T", "X")

	tests := []struct {
		name      string
		mod       func(*Capabilities)
		asc       bool
		nullsLast bool
		want      string
	}{
		{"default nulls asc", nil, true, true, "ORDER BY X ASC"},
		{"default nulls desc", nil, false, false, "ORDER BY X DESC"},
		{"nulls first asc", nil, true, false, "ORDER BY X ASC NULLS FIRST"},
		{"nulls last desc", nil, false, true, "ORDER BY X DESC NULLS LAST"},
		{
			"nulls low default", func(c *Capabilities) { c.NullSorting = NullsSortedLow },
			true, false, "ORDER BY X ASC",
		},
		{
			"nulls at end", func(c *Capabilities) { c.NullSorting = NullsSortedAtEnd },
			false, true, "ORDER BY X DESC",
		},
		{
			"no nulls syntax keeps dialect default",
			func(c *Capabilities) { c.Supported = c.Supported.Without(NullsOrdering) },
			true, false, "ORDER BY X ASC",
		},
		{
			"omit ascending", func(c *Capabilities) { c.OmitAscending = true },
			true, true, "ORDER BY X",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := testDialect(tt.mod, Rules{}).Generate(orderBy(tt.asc, tt.nullsLast, x), ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_Limit(t *testing.T) {
	ctx := NewContext("", "", false, false)
	sel := func(count, offset int64) *types.Select {
		return must(types.NewSelect(types.StarList(), types.WithFrom(table("T")),
			types.WithLimit(must(types.NewLimit(count, offset)))))
	}

	tests := []struct {
		name  string
		style LimitStyle
		sel   *types.Select
		want  string
	}{
		{"limit", LimitOffsetStyle, sel(10, 0), "SELECT * FROM T LIMIT 10"},
		{"limit offset", LimitOffsetStyle, sel(10, 20), "SELECT * FROM T LIMIT 10 OFFSET 20"},
		{"top", TopStyle, sel(10, 0), "SELECT TOP 10 * FROM T"},
		{"fetch first", FetchFirstStyle, sel(10, 0), "SELECT * FROM T FETCH FIRST 10 ROWS ONLY"},
		{"fetch first offset", FetchFirstStyle, sel(10, 20), "SELECT * FROM T OFFSET 20 ROWS FETCH FIRST 10 ROWS ONLY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDialect(func(c *Capabilities) { c.LimitStyle = tt.style }, Rules{})
			got, err := d.Generate(tt.sel, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("offset without support", func(t *testing.T) {
		d := testDialect(func(c *Capabilities) { c.Supported = c.Supported.Without(LimitWithOffset) }, Rules{})
		_, err := d.Generate(sel(10, 20), ctx)
		var upErr *UnsupportedPushdownError
		require.ErrorAs(t, err, &upErr)
		assert.Equal(t, "OFFSET", upErr.Feature)

		got, err := d.Generate(sel(10, 0), ctx)
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM T LIMIT 10", got)
	})

	t.Run("top with offset", func(t *testing.T) {
		d := testDialect(func(c *Capabilities) { c.LimitStyle = TopStyle }, Rules{})
		_, err := d.Generate(sel(10, 20), ctx)
		var upErr *UnsupportedPushdownError
		require.ErrorAs(t, err, &upErr)
	})
}

func TestGenerate_Expressions(t *testing.T) {
	d := testDialect(nil, Rules{})
	ctx := NewContext("", "", false, false)
	x := col("T", "X")

	tests := []struct {
		name string
		node types.Node
		want string
	}{
		{"infix", must(types.NewFunction("add", x, num("1"))), "(X + 1)"},
		{"nested infix", must(types.NewFunction("MULT", must(types.NewFunction("ADD", x, num("1"))), num("2"))), "((X + 1) * 2)"},
		{"prefix", must(types.NewFunction("NEG", x)), "(- X)"},
		{"prefix negative literal", must(types.NewFunction("NEG", num("-5"))), "(- -5)"},
		{"nested prefix", must(types.NewFunction("NEG", must(types.NewFunction("NEG", x)))), "(- (- X))"},
		{"call", must(types.NewFunction("UPPER", str("a"))), "UPPER('a')"},
		{"variadic", must(types.NewFunction("COALESCE", x, num("0"), num("1"))), "COALESCE(X, 0, 1)"},
		{"keyword", must(types.NewFunction("CURRENT_DATE")), "CURRENT_DATE"},
		{"extract", must(types.NewExtract(types.PartYear, x)), "EXTRACT(YEAR FROM X)"},
		{"cast", must(types.NewCast(x, types.DataType{Kind: types.TypeVarchar, Size: 20})), "CAST(X AS VARCHAR(20))"},
		{"cast decimal", must(types.NewCast(x, types.DataType{Kind: types.TypeDecimal, Precision: 10, Scale: 2})), "CAST(X AS DECIMAL(10, 2))"},
		{
			"searched case",
			must(types.NewCase(nil, []types.WhenClause{{When: eq(x, num("1")), Then: str("one")}}, str("other"))),
			"CASE WHEN X = 1 THEN 'one' ELSE 'other' END",
		},
		{
			"simple case",
			must(types.NewCase(x, []types.WhenClause{{When: num("1"), Then: str("one")}, {When: num("2"), Then: str("two")}}, nil)),
			"CASE X WHEN 1 THEN 'one' WHEN 2 THEN 'two' END",
		},
		{"like", must(types.NewLike(x, str("a%"), str("!"))), "X LIKE 'a%' ESCAPE '!'"},
		{"regexp", must(types.NewRegexpLike(x, str("^a"))), "REGEXP_LIKE(X, '^a')"},
		{"between", must(types.NewBetween(x, num("1"), num("5"))), "X BETWEEN 1 AND 5"},
		{"in list", must(types.NewInList(x, num("1"), num("2"))), "X IN (1, 2)"},
		{"is null", must(types.NewIsNull(x)), "X IS NULL"},
		{"is not null", must(types.NewIsNotNull(x)), "X IS NOT NULL"},
		{"predicate operand", eq(must(types.NewIsNull(x)), types.MustLiteral(types.LiteralBool, "false")), "(X IS NULL) = FALSE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Generate(tt.node, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("negated negative literal", func(t *testing.T) {
		sel := must(types.NewSelect(items(must(types.NewFunction("NEG", num("-5")))),
			types.WithFrom(table("T")), types.WithWhere(eq(col("T", "A"), num("1")))))
		got, err := d.Generate(sel, ctx)
		require.NoError(t, err)
		assert.Equal(t, "SELECT (- -5) FROM T WHERE A = 1", got)
		assert.NotContains(t, got, "--")
	})

	t.Run("unknown function", func(t *testing.T) {
		_, err := d.Generate(must(types.NewFunction("FROBNICATE", x)), ctx)
		var upErr *UnsupportedPushdownError
		require.ErrorAs(t, err, &upErr)
		assert.Equal(t, types.KindFunction, upErr.Kind)
	})

	t.Run("wrong arity", func(t *testing.T) {
		_, err := d.Generate(must(types.NewFunction("ADD", x)), ctx)
		var upErr *UnsupportedPushdownError
		require.ErrorAs(t, err, &upErr)
	})

	t.Run("simple case rewritten", func(t *testing.T) {
		nd := testDialect(func(c *Capabilities) { c.Supported = c.Supported.Without(SimpleCase) }, Rules{})
		cs := must(types.NewCase(x, []types.WhenClause{{When: num("1"), Then: str("one")}}, nil))
		got, err := nd.Generate(cs, ctx)
		require.NoError(t, err)
		assert.Equal(t, "CASE WHEN X = 1 THEN 'one' END", got)
	})

	t.Run("double colon cast", func(t *testing.T) {
		pg := testDialect(func(c *Capabilities) { c.CastStyle = CastDoubleColon }, Rules{})
		got, err := pg.Generate(must(types.NewCast(x, types.DataType{Kind: types.TypeDate})), ctx)
		require.NoError(t, err)
		assert.Equal(t, "(X)::DATE", got)
	})

	t.Run("unsupported cast target", func(t *testing.T) {
		_, err := d.Generate(must(types.NewCast(x, types.DataType{Kind: types.TypeGeometry})), ctx)
		var upErr *UnsupportedPushdownError
		require.ErrorAs(t, err, &upErr)
		assert.Equal(t, types.KindCast, upErr.Kind)
	})
}

func TestGenerate_Literals(t *testing.T) {
	ctx := NewContext("", "", false, false)
	interval := must(types.NewIntervalLiteral("+2-01", types.DataType{Kind: types.TypeInterval, IntervalRange: types.YearToMonth}))

	tests := []struct {
		name string
		mod  func(*Capabilities)
		node types.Node
		want string
	}{
		{"null", nil, types.MustLiteral(types.LiteralNull, ""), "NULL"},
		{"bool", nil, types.MustLiteral(types.LiteralBool, "True"), "TRUE"},
		{"double", nil, types.MustLiteral(types.LiteralDouble, "1.5E10"), "1.5E10"},
		{"string", nil, str("it's"), "'it''s'"},
		{"backslash", func(c *Capabilities) { c.StringEscape = EscapeBackslash }, str(`it's \o/`), `'it\'s \\o/'`},
		{"mysql escape", func(c *Capabilities) { c.StringEscape = EscapeDoubleAndBackslash }, str(`it's \o/`), `'it''s \\o/'`},
		{"date", nil, types.MustLiteral(types.LiteralDate, "2024-01-31"), "DATE '2024-01-31'"},
		{
			"date cast", func(c *Capabilities) { c.DateLiteral = "CAST(%s AS DATE)" },
			types.MustLiteral(types.LiteralDate, "2024-01-31"), "CAST('2024-01-31' AS DATE)",
		},
		{"timestamp", nil, types.MustLiteral(types.LiteralTimestamp, "2024-01-31 10:00:00.123"), "TIMESTAMP '2024-01-31 10:00:00.123'"},
		{"interval", nil, interval, "INTERVAL '+2-01' YEAR TO MONTH"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := testDialect(tt.mod, Rules{}).Generate(tt.node, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_Aggregates(t *testing.T) {
	d := testDialect(nil, Rules{})
	ctx := NewContext("", "", false, false)
	x := col("T", "X")
	sep := ";"

	tests := []struct {
		name string
		node types.Node
		want string
	}{
		{"count star", must(types.NewAggregate("COUNT", false, nil)), "COUNT(*)"},
		{"distinct", must(types.NewAggregate("SUM", true, nil, x)), "SUM(DISTINCT X)"},
		{"filter", must(types.NewAggregate("SUM", false, eq(x, num("1")), x)), "SUM(X) FILTER (WHERE X = 1)"},
		{
			"group concat",
			must(types.NewGroupConcat(x, true, orderBy(true, true, x), &sep)),
			"GROUP_CONCAT(DISTINCT X ORDER BY X ASC SEPARATOR ';')",
		},
		{
			"window",
			must(types.NewWindow("SUM", []types.Node{x}, []types.Node{col("T", "Y")}, orderBy(true, true, x),
				&types.Frame{Units: types.FrameRows, Start: types.FrameBound{Type: types.Preceding, Offset: 2},
					End: &types.FrameBound{Type: types.CurrentRow}})),
			"SUM(X) OVER (PARTITION BY Y ORDER BY X ASC ROWS BETWEEN 2 PRECEDING AND CURRENT ROW)",
		},
		{"empty window", must(types.NewWindow("ROW_NUMBER", nil, nil, nil, nil)), "ROW_NUMBER() OVER ()"},
		{"count star window", must(types.NewWindow("COUNT", nil, []types.Node{col("T", "Y")}, nil, nil)), "COUNT(*) OVER (PARTITION BY Y)"},
		{"count window", must(types.NewWindow("COUNT", []types.Node{x}, nil, nil, nil)), "COUNT(X) OVER ()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Generate(tt.node, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	unsupported := []struct {
		name string
		cap  Capability
		node types.Node
	}{
		{"window", WindowFunctions, must(types.NewWindow("RANK", nil, nil, orderBy(true, true, x), nil))},
		{"filter", AggregateFilter, must(types.NewAggregate("SUM", false, eq(x, num("1")), x))},
		{"group concat", GroupConcat, must(types.NewGroupConcat(x, false, nil, nil))},
		{"group concat order", GroupConcatOrderBy, must(types.NewGroupConcat(x, false, orderBy(true, true, x), nil))},
	}
	for _, tt := range unsupported {
		t.Run("without "+tt.name, func(t *testing.T) {
			nd := testDialect(func(c *Capabilities) { c.Supported = c.Supported.Without(tt.cap) }, Rules{})
			got, err := nd.Generate(tt.node, ctx)
			var upErr *UnsupportedPushdownError
			require.ErrorAs(t, err, &upErr)
			assert.Empty(t, got)
		})
	}
}

func TestGenerate_SubSelects(t *testing.T) {
	d := testDialect(nil, Rules{})
	ctx := NewContext("", "", false, false)
	inner := must(types.NewSelect(items(col("U", "ID")), types.WithFrom(table("U"))))

	in := must(types.NewInSubquery(col("T", "X"), inner))
	got, err := d.Generate(in, ctx)
	require.NoError(t, err)
	assert.Equal(t, "X IN (SELECT ID FROM U)", got)

	derived := must(types.NewSubSelect(inner, "S"))
	got, err = d.Generate(must(types.NewSelect(types.StarList(), types.WithFrom(derived))), ctx)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM (SELECT ID FROM U) AS S", got)

	noAlias := testDialect(func(c *Capabilities) { c.TableAliasKeyword = false }, Rules{})
	got, err = noAlias.Generate(derived, ctx)
	require.NoError(t, err)
	assert.Equal(t, "(SELECT ID FROM U) S", got)
}

func TestGenerate_DummyTable(t *testing.T) {
	d := testDialect(func(c *Capabilities) { c.DummyTable = "DUAL" }, Rules{})
	got, err := d.Generate(must(types.NewSelect(items(num("1")))), NewContext("", "", false, false))
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 FROM DUAL", got)
}

func TestGenerate_Overrides(t *testing.T) {
	d := testDialect(nil, Rules{
		Limit: func(g *Generator, n *types.Limit) (string, error) {
			s, err := g.Defaults().Limit(g, n)
			if err != nil {
				return "", err
			}
			return s + " /* capped */", nil
		},
		Column: func(g *Generator, n *types.Column) (string, error) {
			return "c_" + n.Name, nil
		},
	})
	sel := must(types.NewSelect(items(col("T", "X")), types.WithFrom(table("T")),
		types.WithLimit(must(types.NewLimit(3, 0)))))
	got, err := d.Generate(sel, NewContext("", "", false, false))
	require.NoError(t, err)
	assert.Equal(t, "SELECT c_X FROM T LIMIT 3 /* capped */", got)
}

func TestGenerate_Idempotent(t *testing.T) {
	d := testDialect(nil, Rules{})
	ctx := NewContext("", "LS", false, true)
	sel := must(types.NewSelect(items(col("T", "X"), col("T", "Y")), types.WithFrom(table("T")),
		types.WithWhere(and(or(eq(col("T", "X"), num("1")), eq(col("T", "Y"), num("2"))), not(eq(col("T", "X"), num("3")))))))

	first, err := d.Generate(sel, ctx)
	require.NoError(t, err)
	second, err := d.Generate(sel, ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
