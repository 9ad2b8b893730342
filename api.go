// Package pushql translates pushdown requests into SQL for a target dialect.
//
// A pushdown request is the JSON document a virtual schema adapter receives
// from the calling database: a SELECT statement as a tree of tagged nodes
// plus the tables it touches. pushql parses it into a closed syntax tree,
// then renders the tree with the rule table of the target dialect.
//
// # Basic Usage
//
//	req, err := pushql.ParsePushdown(data)
//	if err != nil {
//		return err
//	}
//	dialect, err := pushql.DefaultRegistry().Lookup("POSTGRESQL")
//	if err != nil {
//		return err
//	}
//	ctx := pushql.NewContext("", "public", false, req.HasMultipleTables())
//	sql, err := pushql.Generate(req.Select, dialect, ctx)
//
// # Service
//
// Service wires the same steps together, choosing the dialect, catalog and
// schema from the SQL_DIALECT, CATALOG_NAME and SCHEMA_NAME properties of the
// virtual schema, and falls back to its configuration:
//
//	svc := pushql.NewService(pushql.WithConfig(cfg), pushql.WithLogger(log))
//	sqls, err := svc.Handle(ctx, data)
//
// # Errors
//
// Every failure is one of three kinds: MalformedRequestError when the request
// does not have the expected shape, ConstructionError when a node violates a
// structural invariant, and UnsupportedPushdownError when the dialect cannot
// express a construct. Nothing is ever degraded into approximate SQL; Classify
// tells the categories apart.
package pushql

import (
	"github.com/zoobzio/pushql/internal/render"
	"github.com/zoobzio/pushql/internal/types"
	"github.com/zoobzio/pushql/internal/wire"
)

// Node is any syntax tree node.
type Node = types.Node

// Select is the root of a pushed down statement.
type Select = types.Select

// DataType describes a column, cast or interval type.
type DataType = types.DataType

// Kind identifies a node variant.
type Kind = types.Kind

// Dialect is a target database profile. Dialects are immutable.
type Dialect = render.Dialect

// Context carries the per-request generation settings.
type Context = render.Context

// Notes is adapter metadata describing the observed target database.
type Notes = render.Notes

// Capability is a feature a dialect may support.
type Capability = render.Capability

// Capabilities a dialect may support.
const (
	WindowFunctions    = render.WindowFunctions
	FullOuterJoin      = render.FullOuterJoin
	RightOuterJoin     = render.RightOuterJoin
	Limit              = render.Limit
	LimitWithOffset    = render.LimitWithOffset
	BooleanLiterals    = render.BooleanLiterals
	NullsOrdering      = render.NullsOrdering
	AggregateFilter    = render.AggregateFilter
	SimpleCase         = render.SimpleCase
	InSubquery         = render.InSubquery
	DerivedTables      = render.DerivedTables
	IntervalLiterals   = render.IntervalLiterals
	Extract            = render.Extract
	GroupConcat        = render.GroupConcat
	GroupConcatOrderBy = render.GroupConcatOrderBy
	RegexpLike         = render.RegexpLike
)

// Request is a decoded adapter request of any kind.
type Request = wire.Request

// RequestType discriminates adapter requests.
type RequestType = wire.RequestType

// Re-export request kinds for public API.
const (
	RequestPushdown            = wire.RequestPushdown
	RequestCreateVirtualSchema = wire.RequestCreateVirtualSchema
	RequestDropVirtualSchema   = wire.RequestDropVirtualSchema
	RequestRefresh             = wire.RequestRefresh
	RequestSetProperties       = wire.RequestSetProperties
	RequestGetCapabilities     = wire.RequestGetCapabilities
)

// PushdownRequest is a parsed pushdown with its involved tables.
type PushdownRequest = wire.PushdownRequest

// SchemaMetadata is the virtual schema a request belongs to.
type SchemaMetadata = wire.SchemaMetadata

// TableMetadata describes an involved table.
type TableMetadata = wire.TableMetadata

// MalformedRequestError reports a request that does not have the expected shape.
type MalformedRequestError = wire.MalformedRequestError

// ConstructionError reports a node whose structural invariant does not hold.
type ConstructionError = types.ConstructionError

// UnsupportedPushdownError reports a construct the dialect cannot express.
type UnsupportedPushdownError = render.UnsupportedPushdownError

// Virtual schema properties read by Service.
const (
	PropertyDialect          = "SQL_DIALECT"
	PropertyCatalog          = "CATALOG_NAME"
	PropertySchema           = "SCHEMA_NAME"
	PropertyQuoteIdentifiers = "QUOTE_IDENTIFIERS"
)

// NewContext creates a generation context.
func NewContext(catalog, schema string, quoteIdentifiers, multipleTables bool) Context {
	return render.NewContext(catalog, schema, quoteIdentifiers, multipleTables)
}

// Parse decodes an adapter request.
func Parse(data []byte) (*Request, error) {
	return wire.Parse(data)
}

// ParsePushdown decodes a request that must be a pushdown.
func ParsePushdown(data []byte) (*PushdownRequest, error) {
	return wire.ParsePushdown(data)
}

// Generate renders sel with the given renderer.
func Generate(sel *Select, r Renderer, ctx Context) (string, error) {
	if sel == nil {
		return "", &ConstructionError{Kind: types.KindSelect, Reason: "no statement to generate"}
	}
	return r.Generate(sel, ctx)
}
