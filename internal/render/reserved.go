package render

// sqlReserved are words reserved by SQL:2016 that most engines refuse as bare
// identifiers.
var sqlReserved = []string{
	"ALL", "ALTER", "AND", "ANY", "ARRAY", "AS", "ASC", "BETWEEN", "BOTH", "BY",
	"CASE", "CAST", "CHECK", "COLLATE", "COLUMN", "CONSTRAINT", "CREATE", "CROSS",
	"CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER", "DATE",
	"DEFAULT", "DELETE", "DESC", "DISTINCT", "DROP", "ELSE", "END", "EXCEPT",
	"EXISTS", "EXTRACT", "FALSE", "FETCH", "FILTER", "FOR", "FOREIGN", "FROM",
	"FULL", "GRANT", "GROUP", "HAVING", "IN", "INNER", "INSERT", "INTERSECT",
	"INTERVAL", "INTO", "IS", "JOIN", "LEADING", "LEFT", "LIKE", "LIMIT",
	"LOCALTIME", "LOCALTIMESTAMP", "NATURAL", "NOT", "NULL", "OF", "OFFSET", "ON",
	"ONLY", "OR", "ORDER", "OUTER", "OVER", "PARTITION", "PRIMARY", "RANGE",
	"REFERENCES", "RIGHT", "ROW", "ROWS", "SELECT", "SESSION_USER", "SET", "SOME",
	"TABLE", "THEN", "TIME", "TIMESTAMP", "TO", "TRAILING", "TRUE", "UNION",
	"UNIQUE", "UNKNOWN", "UPDATE", "USER", "USING", "VALUES", "WHEN", "WHERE",
	"WINDOW", "WITH",
}

// ReservedWords returns the common reserved words plus extra, upper case.
func ReservedWords(extra ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(sqlReserved)+len(extra))
	for _, w := range sqlReserved {
		m[w] = struct{}{}
	}
	for _, w := range extra {
		m[foldUpper(w)] = struct{}{}
	}
	return m
}
