package wire

// source is a FROM item visible to column references.
type source struct {
	table   string // physical table name, or the alias of a derived table
	alias   string
	derived bool
}

// scope holds the FROM items of one select statement. Sub-selects see the
// scopes of their enclosing statements.
type scope struct {
	parent *scope
	refs   map[string]*source   // by alias, or by name when unaliased
	names  map[string][]*source // by physical table name
}

func newScope(parent *scope) *scope {
	return &scope{
		parent: parent,
		refs:   make(map[string]*source),
		names:  make(map[string][]*source),
	}
}

// add registers src, failing when its reference name is already taken.
func (s *scope) add(src *source) bool {
	ref := src.alias
	if ref == "" {
		ref = src.table
	}
	if _, dup := s.refs[ref]; dup {
		return false
	}
	s.refs[ref] = src
	if !src.derived {
		s.names[src.table] = append(s.names[src.table], src)
	}
	return true
}

// resolve finds the source a column refers to. An alias must match exactly;
// a table name also matches an aliased table when it is unambiguous.
func (s *scope) resolve(table, alias string) (*source, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if alias != "" {
			if src, ok := cur.refs[alias]; ok {
				return src, true
			}
			continue
		}
		if src, ok := cur.refs[table]; ok {
			return src, true
		}
		if candidates := cur.names[table]; len(candidates) == 1 {
			return candidates[0], true
		}
	}
	return nil, false
}
