package pushql

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"golang.org/x/sync/errgroup"

	"github.com/zoobzio/pushql/internal/config"
	"github.com/zoobzio/pushql/internal/logger"
)

// Service generates SQL for pushdown requests. It holds no per-request state
// and may be shared between goroutines.
type Service struct {
	registry *Registry
	log      logger.LoggerI
	cfg      config.Config
}

// Option configures a Service.
type Option func(*Service)

// WithRegistry replaces the default dialect registry.
func WithRegistry(r *Registry) Option {
	return func(s *Service) { s.registry = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logger.LoggerI) Option {
	return func(s *Service) { s.log = l }
}

// WithConfig sets the defaults applied when request properties are absent.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.cfg = *cfg
		s.cfg.AdapterNotes = make(map[string]string, len(cfg.AdapterNotes))
		for k, v := range cfg.AdapterNotes {
			s.cfg.AdapterNotes[k] = v
		}
	}
}

// NewService creates a service.
func NewService(opts ...Option) *Service {
	s := &Service{
		registry: DefaultRegistry(),
		log:      logger.NewNop(),
		cfg:      *config.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Target is the dialect and context a pushdown is generated with.
type Target struct {
	Dialect *Dialect
	Context Context
}

// Target resolves the dialect and generation context for req.
func (s *Service) Target(req *PushdownRequest) (Target, error) {
	props := req.Schema.Properties

	dialect, err := s.dialect(req.Schema)
	if err != nil {
		return Target{}, err
	}

	quote := s.cfg.QuoteIdentifiers
	if v, ok := props[PropertyQuoteIdentifiers]; ok {
		if quote, err = cast.ToBoolE(v); err != nil {
			return Target{}, &MalformedRequestError{
				Path:   "schemaMetadataInfo.properties." + PropertyQuoteIdentifiers,
				Reason: "expected a boolean, got " + v,
			}
		}
	}

	ctx := NewContext(
		property(props, PropertyCatalog, s.cfg.Catalog),
		property(props, PropertySchema, s.cfg.Schema),
		quote,
		req.HasMultipleTables(),
	)
	return Target{Dialect: dialect, Context: ctx}, nil
}

// dialect resolves the dialect named by the schema properties, built from the
// configured notes overlaid with the request's adapter notes.
func (s *Service) dialect(schema SchemaMetadata) (*Dialect, error) {
	id := property(schema.Properties, PropertyDialect, s.cfg.Dialect)
	notes := make(Notes, len(s.cfg.AdapterNotes)+len(schema.AdapterNotes))
	for k, v := range s.cfg.AdapterNotes {
		notes[k] = v
	}
	for k, v := range schema.AdapterNotes {
		notes[k] = v
	}
	return s.registry.Resolve(id, notes)
}

func property(props map[string]string, key, def string) string {
	if v, ok := props[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

// Pushdown generates the SQL for one request.
func (s *Service) Pushdown(ctx context.Context, req *PushdownRequest) (string, error) {
	res, err := s.pushdown(ctx, req)
	if err != nil {
		return "", err
	}
	return res.SQL, nil
}

func (s *Service) pushdown(ctx context.Context, req *PushdownRequest) (*Result, error) {
	requestID := uuid.NewString()
	log := s.log.With(logger.String("request_id", requestID))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, &MalformedRequestError{Reason: "no pushdown request"}
	}

	target, err := s.Target(req)
	if err != nil {
		s.reject(log, err)
		return nil, err
	}
	sql, err := Generate(req.Select, target.Dialect, target.Context)
	if err != nil {
		s.reject(log, err, logger.String("dialect", target.Dialect.ID()))
		return nil, err
	}

	var tables []string
	if req.Catalog != nil {
		tables = req.Catalog.Tables()
	}
	log.Debug("pushdown generated",
		logger.String("dialect", target.Dialect.ID()),
		logger.Strings("tables", tables),
		logger.String("sql", sql),
	)
	return &Result{RequestID: requestID, Dialect: target.Dialect.ID(), SQL: sql}, nil
}

func (s *Service) reject(log logger.LoggerI, err error, fields ...logger.Field) {
	fields = append(fields, logger.Error(err), logger.String("class", string(Classify(err))))
	log.Warn("pushdown rejected", fields...)
}

// PushdownAll generates the SQL for every request concurrently. Results are
// in input order; the first failure cancels the remaining work.
func (s *Service) PushdownAll(ctx context.Context, reqs []*PushdownRequest) ([]string, error) {
	out := make([]string, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	if s.cfg.Concurrency > 0 {
		g.SetLimit(s.cfg.Concurrency)
	}
	for i, req := range reqs {
		g.Go(func() error {
			sql, err := s.Pushdown(gctx, req)
			if err != nil {
				return errors.Wrapf(err, "pushdown %d", i)
			}
			out[i] = sql
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Handle parses data and generates its SQL. data is either one pushdown
// request or a JSON array of them.
func (s *Service) Handle(ctx context.Context, data []byte) ([]string, error) {
	docs, err := splitBatch(data)
	if err != nil {
		return nil, err
	}
	reqs := make([]*PushdownRequest, len(docs))
	for i, doc := range docs {
		if reqs[i], err = ParsePushdown(doc); err != nil {
			s.reject(s.log, err)
			if len(docs) > 1 {
				return nil, errors.Wrapf(err, "pushdown %d", i)
			}
			return nil, err
		}
	}
	if len(reqs) == 1 {
		sql, err := s.Pushdown(ctx, reqs[0])
		if err != nil {
			return nil, err
		}
		return []string{sql}, nil
	}
	return s.PushdownAll(ctx, reqs)
}

// Capabilities returns the capability report of the dialect a request of
// schema would be generated with.
func (s *Service) Capabilities(schema SchemaMetadata) ([]string, error) {
	d, err := s.dialect(schema)
	if err != nil {
		return nil, err
	}
	return d.CapabilityNames(), nil
}
