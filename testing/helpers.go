// Package testing provides test utilities for pushql dialects and requests.
package testing

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/pushql/internal/render"
	"github.com/zoobzio/pushql/internal/types"
	"github.com/zoobzio/pushql/internal/wire"
)

// Decimal is the type given to columns built by Col.
var Decimal = types.DataType{Kind: types.TypeDecimal, Precision: 18}

// TestCatalog describes the tables used across the pushdown tests.
// Includes CLICKS, USERS and ORDERS in the LS schema.
func TestCatalog(t testing.TB) *wire.Catalog {
	t.Helper()

	varchar := func(size int) types.DataType { return types.DataType{Kind: types.TypeVarchar, Size: size} }
	return wire.NewCatalog("LS", []wire.TableMetadata{
		{Name: "CLICKS", Columns: []wire.ColumnMetadata{
			{Name: "USER_ID", Type: Decimal},
			{Name: "URL", Type: varchar(2000)},
			{Name: "CLICKED_AT", Type: types.DataType{Kind: types.TypeTimestamp}},
		}},
		{Name: "USERS", Columns: []wire.ColumnMetadata{
			{Name: "ID", Type: Decimal},
			{Name: "NAME", Type: varchar(100)},
			{Name: "ACTIVE", Type: types.DataType{Kind: types.TypeBoolean}},
			{Name: "CREATED", Type: types.DataType{Kind: types.TypeDate}},
		}},
		{Name: "ORDERS", Columns: []wire.ColumnMetadata{
			{Name: "ID", Type: Decimal},
			{Name: "USER_ID", Type: Decimal},
			{Name: "TOTAL", Type: types.DataType{Kind: types.TypeDouble}},
			{Name: "STATUS", Type: varchar(20)},
		}},
	})
}

// CatalogCol returns table.name typed as TestCatalog describes it.
func CatalogCol(t testing.TB, table, name string) *types.Column {
	t.Helper()
	dt, ok := TestCatalog(t).Lookup(table, name)
	if !ok {
		t.Fatalf("%s.%s is not in the test catalog", table, name)
	}
	return Must(types.NewColumn(table, name, dt))
}

// Must panics on err. Only for building fixtures.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Col returns a DECIMAL column of table.
func Col(table, name string) *types.Column {
	return Must(types.NewColumn(table, name, Decimal))
}

// TypedCol returns a column of table with the given type.
func TypedCol(table, name string, kind types.TypeKind) *types.Column {
	return Must(types.NewColumn(table, name, types.DataType{Kind: kind, Size: 100}))
}

// Num returns an exact numeric literal.
func Num(v string) *types.Literal { return types.MustLiteral(types.LiteralExactNumeric, v) }

// Str returns a string literal.
func Str(v string) *types.Literal { return types.MustLiteral(types.LiteralString, v) }

// Eq returns l = r.
func Eq(l, r types.Node) *types.Comparison {
	return Must(types.NewComparison(types.Equal, l, r))
}

// Table returns an unaliased table.
func Table(name string) *types.Table { return Must(types.NewTable(name, "")) }

// Items returns a select list of unaliased expressions.
func Items(exprs ...types.Node) *types.SelectList {
	list := make([]types.SelectItem, len(exprs))
	for i, e := range exprs {
		list[i] = types.SelectItem{Expr: e}
	}
	return Must(types.NewSelectList(list...))
}

// OrderBy orders by exprs, all in the same direction and nulls position.
func OrderBy(asc, nullsLast bool, exprs ...types.Node) *types.OrderBy {
	a := make([]bool, len(exprs))
	nl := make([]bool, len(exprs))
	for i := range exprs {
		a[i], nl[i] = asc, nullsLast
	}
	return Must(types.NewOrderBy(exprs, a, nl))
}

// Select builds a statement over list with opts.
func Select(list *types.SelectList, opts ...types.SelectOption) *types.Select {
	return Must(types.NewSelect(list, opts...))
}

// Generate renders n with d and fails the test on error.
func Generate(t testing.TB, d *render.Dialect, n types.Node, ctx render.Context) string {
	t.Helper()
	sql, err := d.Generate(n, ctx)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return sql
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t testing.TB, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertErrorContains checks that error message contains substr.
func AssertErrorContains(t testing.TB, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertUnsupported checks that err reports an unsupported feature for
// dialect and returns it.
func AssertUnsupported(t testing.TB, err error, dialect string) *render.UnsupportedPushdownError {
	t.Helper()
	var unsupported *render.UnsupportedPushdownError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Expected UnsupportedPushdownError, got: %v", err)
	}
	if unsupported.Dialect != dialect {
		t.Errorf("Dialect = %q, want %q", unsupported.Dialect, dialect)
	}
	return unsupported
}
