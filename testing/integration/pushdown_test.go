package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"

	"github.com/zoobzio/pushql"
)

// pushdownCase is one recorded request with the number of rows the generated
// statement returns against the seeded tables.
type pushdownCase struct {
	query string
	req   *pushql.PushdownRequest
	rows  int
	// fullJoin marks statements that need FULL OUTER JOIN.
	fullJoin bool
}

// expectedRows follows the order of the cases in clicks.json.
var expectedRows = []int{5, 5, 1, 5, 6}

func loadCases(t *testing.T) []pushdownCase {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "pushdown", "clicks.json"))
	if err != nil {
		t.Fatalf("Failed to read fixtures: %v", err)
	}
	var file struct {
		TestCases []struct {
			TestQuery               string            `json:"testQuery"`
			ExpectedPushdownRequest []json.RawMessage `json:"expectedPushdownRequest"`
			ExpectedUnsupported     []string          `json:"expectedUnsupported"`
		} `json:"testCases"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		t.Fatalf("Failed to decode fixtures: %v", err)
	}
	if len(file.TestCases) != len(expectedRows) {
		t.Fatalf("Expected %d fixture cases, got %d", len(expectedRows), len(file.TestCases))
	}

	cases := make([]pushdownCase, len(file.TestCases))
	for i, tc := range file.TestCases {
		req, err := pushql.ParsePushdown(tc.ExpectedPushdownRequest[0])
		if err != nil {
			t.Fatalf("Failed to parse %q: %v", tc.TestQuery, err)
		}
		cases[i] = pushdownCase{
			query:    tc.TestQuery,
			req:      req,
			rows:     expectedRows[i],
			fullJoin: len(tc.ExpectedUnsupported) > 0,
		}
	}
	return cases
}

// generate renders req for the server described by version.
func generate(t *testing.T, dialect, version, schema string, req *pushql.PushdownRequest) (string, error) {
	t.Helper()

	d, err := pushql.DefaultRegistry().Resolve(dialect, pushql.Notes{"databaseProductVersion": version})
	if err != nil {
		t.Fatalf("Failed to resolve %s: %v", dialect, err)
	}
	ctx := pushql.NewContext("", schema, false, req.HasMultipleTables())
	return pushql.Generate(req.Select, d, ctx)
}

// rowCounter is satisfied by *sql.Rows and pgx.Rows.
type rowCounter interface {
	Next() bool
	Err() error
}

func countRows(t *testing.T, rows rowCounter) int {
	t.Helper()
	n := 0
	for rows.Next() {
		n++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}
	return n
}

// seedRows is the content of CLICKS and USERS shared by every database.
var (
	seedClicks = []struct {
		userID int
		url    string
	}{
		{1, "http://a"},
		{11, "http://b"},
		{12, "ftp://c"},
		{20, "http://d"},
		{11, "http://e"},
		{11, "http://f"},
	}
	seedUsers = []struct {
		id   int
		name string
	}{
		{11, "ann"},
		{12, "bob"},
		{20, "cy"},
	}
)
