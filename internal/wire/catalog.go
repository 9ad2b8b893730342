package wire

import (
	"sort"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/pushql/internal/types"
)

// TableMetadata describes a table taking part in a pushdown.
type TableMetadata struct {
	Name         string
	AdapterNotes string
	Columns      []ColumnMetadata
}

// ColumnMetadata describes a column of an involved table.
type ColumnMetadata struct {
	Name string
	Type types.DataType
}

// Catalog is the symbol table of the involved tables, held as a DBML project.
// Column types resolve through it while the select statement is parsed.
type Catalog struct {
	project *dbml.Project
	tables  map[string]*dbml.Table
	fields  map[string]map[string]*dbml.Column
	types   map[*dbml.Column]types.DataType
}

// NewCatalog builds a catalog named after the virtual schema. A table listed
// twice keeps its first description.
func NewCatalog(schema string, tables []TableMetadata) *Catalog {
	project := dbml.NewProject(schema)
	dataTypes := make(map[*dbml.Column]types.DataType)

	seen := make(map[string]bool, len(tables))
	for _, t := range tables {
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true

		table := dbml.NewTable(t.Name)
		for _, col := range t.Columns {
			column := dbml.NewColumn(col.Name, col.Type.String())
			table.AddColumn(column)
			dataTypes[column] = col.Type
		}
		project.AddTable(table)
	}
	return index(project, dataTypes)
}

// index builds the lookup tables from the project's own tables and columns.
func index(project *dbml.Project, dataTypes map[*dbml.Column]types.DataType) *Catalog {
	c := &Catalog{
		project: project,
		tables:  make(map[string]*dbml.Table),
		fields:  make(map[string]map[string]*dbml.Column),
		types:   dataTypes,
	}
	for _, table := range project.Tables {
		c.tables[table.Name] = table
		c.fields[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			c.fields[table.Name][col.Name] = col
		}
	}
	return c
}

// Project returns the catalog as a DBML project.
func (c *Catalog) Project() *dbml.Project { return c.project }

// Has reports whether table is involved in the pushdown.
func (c *Catalog) Has(table string) bool {
	_, ok := c.tables[table]
	return ok
}

// Column returns the DBML column table.column.
func (c *Catalog) Column(table, column string) (*dbml.Column, bool) {
	col, ok := c.fields[table][column]
	return col, ok
}

// Lookup returns the type of table.column.
func (c *Catalog) Lookup(table, column string) (types.DataType, bool) {
	col, ok := c.Column(table, column)
	if !ok {
		return types.DataType{}, false
	}
	return c.types[col], true
}

// Tables returns the sorted names of the involved tables.
func (c *Catalog) Tables() []string {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
