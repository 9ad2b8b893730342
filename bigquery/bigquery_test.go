package bigquery

import (
	"testing"

	"github.com/zoobzio/pushql/internal/render"
	"github.com/zoobzio/pushql/internal/types"
	pqtest "github.com/zoobzio/pushql/testing"
)

func TestOrderByKeepsDialectDefaults(t *testing.T) {
	d := New(nil)
	ctx := render.NewContext("catalog", "schema", false, false)

	sql := pqtest.Generate(t, d, pqtest.OrderBy(true, true, pqtest.Col("CLICKS", "USER_ID")), ctx)
	pqtest.AssertSQL(t, "ORDER BY `USER_ID`", sql)
}

func TestSelectWithOrderBy(t *testing.T) {
	d := New(nil)
	ctx := render.NewContext("", "", false, false)
	userID := pqtest.Col("CLICKS", "USER_ID")

	sel := pqtest.Select(pqtest.Items(userID),
		types.WithFrom(pqtest.Table("CLICKS")),
		types.WithOrderBy(pqtest.OrderBy(true, true, userID)),
	)
	pqtest.AssertSQL(t, "SELECT `USER_ID` FROM `CLICKS` ORDER BY `USER_ID`", pqtest.Generate(t, d, sel, ctx))
}

func TestQualifiedTable(t *testing.T) {
	d := New(nil)
	ctx := render.NewContext("project", "dataset", false, false)

	sel := pqtest.Select(types.StarList(), types.WithFrom(pqtest.Table("CLICKS")))
	pqtest.AssertSQL(t, "SELECT * FROM `project`.`dataset`.`CLICKS`", pqtest.Generate(t, d, sel, ctx))
}

func TestDescendingOrder(t *testing.T) {
	d := New(nil)
	ctx := render.NewContext("", "", false, false)

	sql := pqtest.Generate(t, d, pqtest.OrderBy(false, true, pqtest.Col("CLICKS", "USER_ID")), ctx)
	pqtest.AssertSQL(t, "ORDER BY `USER_ID` DESC", sql)
}

func TestStringAgg(t *testing.T) {
	d := New(nil)
	ctx := render.NewContext("", "", false, false)
	url := pqtest.CatalogCol(t, "CLICKS", "URL")
	sep := "; "

	tests := []struct {
		name string
		n    *types.GroupConcat
		want string
	}{
		{
			name: "plain",
			n:    pqtest.Must(types.NewGroupConcat(url, false, nil, nil)),
			want: "STRING_AGG(`URL`)",
		},
		{
			name: "distinct with separator and order",
			n:    pqtest.Must(types.NewGroupConcat(url, true, pqtest.OrderBy(true, false, url), &sep)),
			want: "STRING_AGG(DISTINCT `URL`, '; ' ORDER BY `URL`)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pqtest.AssertSQL(t, tt.want, pqtest.Generate(t, d, tt.n, ctx))
		})
	}
}

func TestStringLiteralEscaping(t *testing.T) {
	d := New(nil)
	ctx := render.NewContext("", "", false, false)

	sql := pqtest.Generate(t, d, pqtest.Str(`it's a \ test`), ctx)
	pqtest.AssertSQL(t, `'it\'s a \\ test'`, sql)
}

func TestRegexpContains(t *testing.T) {
	d := New(nil)
	ctx := render.NewContext("", "", false, false)
	n := pqtest.Must(types.NewRegexpLike(pqtest.CatalogCol(t, "CLICKS", "URL"), pqtest.Str("^https")))

	pqtest.AssertSQL(t, "REGEXP_CONTAINS(`URL`, '^https')", pqtest.Generate(t, d, n, ctx))
}

func TestUnsupportedFilter(t *testing.T) {
	d := New(nil)
	ctx := render.NewContext("", "", false, false)
	userID := pqtest.Col("CLICKS", "USER_ID")
	agg := pqtest.Must(types.NewAggregate("COUNT", false, pqtest.Eq(userID, pqtest.Num("1")), userID))

	_, err := d.Generate(agg, ctx)
	e := pqtest.AssertUnsupported(t, err, ID)
	if e.Kind != types.KindAggregate {
		t.Errorf("Kind = %q, want %q", e.Kind, types.KindAggregate)
	}
}

func TestCastToString(t *testing.T) {
	d := New(nil)
	ctx := render.NewContext("", "", false, false)
	n := pqtest.Must(types.NewCast(pqtest.Col("CLICKS", "USER_ID"), types.DataType{Kind: types.TypeVarchar, Size: 10}))

	pqtest.AssertSQL(t, "CAST(`USER_ID` AS STRING)", pqtest.Generate(t, d, n, ctx))
}
