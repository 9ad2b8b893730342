// Package wire decodes virtual schema adapter requests into syntax trees.
package wire

import (
	"github.com/zoobzio/pushql/internal/types"
)

// RequestType is the discriminator of an adapter request.
type RequestType string

const (
	RequestPushdown            RequestType = "pushdown"
	RequestCreateVirtualSchema RequestType = "createVirtualSchema"
	RequestDropVirtualSchema   RequestType = "dropVirtualSchema"
	RequestRefresh             RequestType = "refresh"
	RequestSetProperties       RequestType = "setProperties"
	RequestGetCapabilities     RequestType = "getCapabilities"
)

var requestTypes = map[RequestType]bool{
	RequestPushdown:            true,
	RequestCreateVirtualSchema: true,
	RequestDropVirtualSchema:   true,
	RequestRefresh:             true,
	RequestSetProperties:       true,
	RequestGetCapabilities:     true,
}

// SchemaMetadata is the virtual schema a request is made for.
type SchemaMetadata struct {
	Name         string
	AdapterNotes map[string]string
	Properties   map[string]string
}

// Request is a decoded adapter request. Pushdown is set only for pushdown
// requests; the other kinds are handled by the caller.
type Request struct {
	Type     RequestType
	Schema   SchemaMetadata
	Pushdown *PushdownRequest
}

// PushdownRequest is a select statement to translate together with the
// tables it touches.
type PushdownRequest struct {
	Select         *types.Select
	InvolvedTables []TableMetadata
	Catalog        *Catalog
	Schema         SchemaMetadata
}

// HasMultipleTables reports whether more than one table is involved, in which
// case column references are qualified.
func (r *PushdownRequest) HasMultipleTables() bool {
	return len(r.InvolvedTables) > 1
}

// Parse decodes an adapter request.
func Parse(data []byte) (*Request, error) {
	root, err := decodeObject("", data)
	if err != nil {
		return nil, err
	}
	typ, err := root.tag()
	if err != nil {
		return nil, err
	}
	req := &Request{Type: RequestType(typ)}
	if !requestTypes[req.Type] {
		return nil, malformed("type", "unknown request type %q", typ)
	}

	if root.has("schemaMetadataInfo") {
		info, err := root.child("schemaMetadataInfo")
		if err != nil {
			return nil, err
		}
		if req.Schema, err = parseSchemaMetadata(info); err != nil {
			return nil, err
		}
	} else {
		req.Schema = SchemaMetadata{AdapterNotes: map[string]string{}, Properties: map[string]string{}}
	}

	if req.Type != RequestPushdown {
		return req, nil
	}

	tables, err := parseInvolvedTables(root)
	if err != nil {
		return nil, err
	}
	catalog := NewCatalog(req.Schema.Name, tables)
	selObj, err := root.child("pushdownRequest")
	if err != nil {
		return nil, err
	}
	p := &parser{catalog: catalog}
	sel, err := p.parseSelect(selObj, nil)
	if err != nil {
		return nil, err
	}
	req.Pushdown = &PushdownRequest{
		Select:         sel,
		InvolvedTables: tables,
		Catalog:        catalog,
		Schema:         req.Schema,
	}
	return req, nil
}

// ParsePushdown decodes a request that must be a pushdown.
func ParsePushdown(data []byte) (*PushdownRequest, error) {
	req, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if req.Pushdown == nil {
		return nil, malformed("type", "expected a pushdown request, got %q", req.Type)
	}
	return req.Pushdown, nil
}

func parseSchemaMetadata(o object) (SchemaMetadata, error) {
	var md SchemaMetadata
	var err error
	if md.Name, err = o.optStr("name"); err != nil {
		return md, err
	}
	if md.AdapterNotes, err = o.stringMap("adapterNotes"); err != nil {
		return md, err
	}
	if md.Properties, err = o.stringMap("properties"); err != nil {
		return md, err
	}
	return md, nil
}

func parseInvolvedTables(root object) ([]TableMetadata, error) {
	elems, err := root.list("involvedTables")
	if err != nil {
		return nil, err
	}
	tables := make([]TableMetadata, len(elems))
	for i, el := range elems {
		t := &tables[i]
		if t.Name, err = el.str("name"); err != nil {
			return nil, err
		}
		if t.AdapterNotes, err = el.optStr("adapterNotes"); err != nil {
			return nil, err
		}
		cols, err := el.list("columns")
		if err != nil {
			return nil, err
		}
		t.Columns = make([]ColumnMetadata, len(cols))
		for j, c := range cols {
			if t.Columns[j].Name, err = c.str("name"); err != nil {
				return nil, err
			}
			dtObj, err := c.child("dataType")
			if err != nil {
				return nil, err
			}
			if t.Columns[j].Type, err = parseDataType(dtObj); err != nil {
				return nil, err
			}
		}
	}
	return tables, nil
}
