package pushql

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/zoobzio/pushql/bigquery"
	"github.com/zoobzio/pushql/exasol"
	"github.com/zoobzio/pushql/generic"
	"github.com/zoobzio/pushql/mssql"
	"github.com/zoobzio/pushql/mysql"
	"github.com/zoobzio/pushql/oracle"
	"github.com/zoobzio/pushql/postgres"
	"github.com/zoobzio/pushql/sqlite"
)

// Constructor builds a dialect from adapter notes.
type Constructor func(notes Notes) *Dialect

// UnknownDialectError is returned for an identifier no dialect is registered under.
type UnknownDialectError struct {
	ID    string
	Known []string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown SQL dialect %q (known: %s)", e.ID, strings.Join(e.Known, ", "))
}

// Registry maps dialect identifiers to dialects. It is read-only once built
// and safe for concurrent use.
type Registry struct {
	ctors   map[string]Constructor
	aliases map[string]string
	shared  map[string]*Dialect
	ids     []string
}

// NewRegistry builds a registry from canonical identifiers and their
// constructors. Each dialect is constructed once from empty notes.
func NewRegistry(ctors map[string]Constructor, aliases map[string]string) *Registry {
	r := &Registry{
		ctors:   make(map[string]Constructor, len(ctors)),
		aliases: make(map[string]string, len(aliases)),
		shared:  make(map[string]*Dialect, len(ctors)),
	}
	for id, ctor := range ctors {
		id = strings.ToUpper(id)
		r.ctors[id] = ctor
		r.shared[id] = ctor(Notes{})
		r.ids = append(r.ids, id)
	}
	for alias, id := range aliases {
		r.aliases[strings.ToUpper(alias)] = strings.ToUpper(id)
	}
	sort.Strings(r.ids)
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the process-wide registry of built-in dialects.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(map[string]Constructor{
			exasol.ID:   exasol.New,
			generic.ID:  generic.New,
			bigquery.ID: bigquery.New,
			postgres.ID: postgres.New,
			mysql.ID:    mysql.New,
			mssql.ID:    mssql.New,
			oracle.ID:   oracle.New,
			sqlite.ID:   sqlite.New,
		}, map[string]string{
			"POSTGRES": postgres.ID,
			"MARIADB":  mysql.ID,
			"MSSQL":    mssql.ID,
		})
	})
	return defaultRegistry
}

func (r *Registry) canonical(id string) (string, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if target, ok := r.aliases[id]; ok {
		id = target
	}
	if _, ok := r.ctors[id]; !ok {
		return "", &UnknownDialectError{ID: id, Known: r.IDs()}
	}
	return id, nil
}

// Lookup returns the shared dialect built from empty notes.
func (r *Registry) Lookup(id string) (*Dialect, error) {
	id, err := r.canonical(id)
	if err != nil {
		return nil, err
	}
	return r.shared[id], nil
}

// Resolve returns a dialect built for notes. Without notes it is the shared one.
func (r *Registry) Resolve(id string, notes Notes) (*Dialect, error) {
	id, err := r.canonical(id)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return r.shared[id], nil
	}
	return r.ctors[id](notes), nil
}

// IDs returns the sorted canonical identifiers.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}
