package render

// Context is the per-request input to generation. It is a value; copies are
// independent and nothing mutates it after NewContext.
type Context struct {
	catalog          string
	schema           string
	quoteIdentifiers bool
	multipleTables   bool
}

// NewContext creates a generation context.
func NewContext(catalog, schema string, quoteIdentifiers, multipleTables bool) Context {
	return Context{
		catalog:          catalog,
		schema:           schema,
		quoteIdentifiers: quoteIdentifiers,
		multipleTables:   multipleTables,
	}
}

func (c Context) Catalog() string { return c.catalog }

func (c Context) Schema() string { return c.schema }

// QuoteIdentifiers reports whether every identifier must be quoted.
func (c Context) QuoteIdentifiers() bool { return c.quoteIdentifiers }

// MultipleTables reports whether the query spans more than one physical
// table, in which case column references are qualified.
func (c Context) MultipleTables() bool { return c.multipleTables }
