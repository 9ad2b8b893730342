package types

import (
	"regexp"
	"strconv"
	"strings"
)

// Column references a physical column of a table introduced by the FROM
// clause of the enclosing statement.
type Column struct {
	Table      string
	TableAlias string
	Name       string
	Type       DataType
	Index      int
}

// NewColumn creates a column reference.
func NewColumn(table, name string, typ DataType) (*Column, error) {
	if name == "" {
		return nil, constructionErrorf(KindColumn, "column name is required")
	}
	if table == "" {
		return nil, constructionErrorf(KindColumn, "column %q has no owning table", name)
	}
	return &Column{Table: table, Name: name, Type: typ}, nil
}

func (n *Column) Kind() Kind                       { return KindColumn }
func (n *Column) Accept(v Visitor) (string, error) { return v.VisitColumn(n) }

// Qualifier returns the alias when set, otherwise the table name.
func (n *Column) Qualifier() string {
	if n.TableAlias != "" {
		return n.TableAlias
	}
	return n.Table
}

// LiteralType distinguishes literal values.
type LiteralType string

const (
	LiteralNull         LiteralType = "null"
	LiteralBool         LiteralType = "bool"
	LiteralExactNumeric LiteralType = "exactnumeric"
	LiteralDouble       LiteralType = "double"
	LiteralString       LiteralType = "string"
	LiteralDate         LiteralType = "date"
	LiteralTimestamp    LiteralType = "timestamp"
	LiteralTimestampUTC LiteralType = "timestamputc"
	LiteralInterval     LiteralType = "interval"
)

var (
	exactNumericRe = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)
	dateRe         = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	timestampRe    = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2} [0-9]{2}:[0-9]{2}:[0-9]{2}(\.[0-9]{1,9})?$`)
	intervalRe     = regexp.MustCompile(`^[+-]?[0-9][0-9 :.\-]*$`)
)

// Literal is a typed constant. Value holds the textual form as received;
// numeric, date and timestamp values are checked so they can be emitted
// verbatim.
type Literal struct {
	Type     LiteralType
	Value    string
	Interval DataType
}

// NewLiteral creates and validates a literal.
func NewLiteral(typ LiteralType, value string) (*Literal, error) {
	switch typ {
	case LiteralNull:
		return &Literal{Type: typ}, nil
	case LiteralBool:
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return nil, constructionErrorf(KindLiteral, "invalid boolean %q", value)
		}
		value = v
	case LiteralExactNumeric:
		if !exactNumericRe.MatchString(value) {
			return nil, constructionErrorf(KindLiteral, "invalid exact numeric %q", value)
		}
	case LiteralDouble:
		if _, err := strconv.ParseFloat(value, 64); err != nil || strings.ContainsAny(value, "xXpP_") {
			return nil, constructionErrorf(KindLiteral, "invalid double %q", value)
		}
		if strings.EqualFold(value, "nan") || strings.Contains(strings.ToLower(value), "inf") {
			return nil, constructionErrorf(KindLiteral, "non-finite double %q", value)
		}
	case LiteralString:
	case LiteralDate:
		if !dateRe.MatchString(value) {
			return nil, constructionErrorf(KindLiteral, "invalid date %q", value)
		}
	case LiteralTimestamp, LiteralTimestampUTC:
		if !timestampRe.MatchString(value) {
			return nil, constructionErrorf(KindLiteral, "invalid timestamp %q", value)
		}
	case LiteralInterval:
		return nil, constructionErrorf(KindLiteral, "interval literals require NewIntervalLiteral")
	default:
		return nil, constructionErrorf(KindLiteral, "unknown literal type %q", typ)
	}
	return &Literal{Type: typ, Value: value}, nil
}

// NewIntervalLiteral creates an interval literal such as '+2-01' YEAR TO MONTH.
func NewIntervalLiteral(value string, typ DataType) (*Literal, error) {
	if typ.Kind != TypeInterval {
		return nil, constructionErrorf(KindLiteral, "interval literal requires an INTERVAL type, got %s", typ)
	}
	if err := typ.validate(KindLiteral); err != nil {
		return nil, err
	}
	if !intervalRe.MatchString(value) {
		return nil, constructionErrorf(KindLiteral, "invalid interval %q", value)
	}
	return &Literal{Type: LiteralInterval, Value: value, Interval: typ}, nil
}

// MustLiteral is like NewLiteral but panics on invalid input.
// It is intended for statically known values.
func MustLiteral(typ LiteralType, value string) *Literal {
	l, err := NewLiteral(typ, value)
	if err != nil {
		panic(err)
	}
	return l
}

func (n *Literal) Kind() Kind                       { return KindLiteral }
func (n *Literal) Accept(v Visitor) (string, error) { return v.VisitLiteral(n) }

// Function is a scalar function call identified by its logical name, for
// example ADD, UPPER or SUBSTR. Dialects decide the spelling.
type Function struct {
	Name string
	Args []Node
}

// NewFunction creates a scalar function call.
func NewFunction(name string, args ...Node) (*Function, error) {
	if name == "" {
		return nil, constructionErrorf(KindFunction, "function name is required")
	}
	for i, a := range args {
		if a == nil {
			return nil, constructionErrorf(KindFunction, "argument %d of %s is nil", i, name)
		}
	}
	return &Function{Name: strings.ToUpper(name), Args: args}, nil
}

func (n *Function) Kind() Kind                       { return KindFunction }
func (n *Function) Accept(v Visitor) (string, error) { return v.VisitFunction(n) }

// DatePart is the field extracted by EXTRACT.
type DatePart string

const (
	PartYear   DatePart = "YEAR"
	PartMonth  DatePart = "MONTH"
	PartDay    DatePart = "DAY"
	PartHour   DatePart = "HOUR"
	PartMinute DatePart = "MINUTE"
	PartSecond DatePart = "SECOND"
)

// Extract is EXTRACT(part FROM arg).
type Extract struct {
	Arg  Node
	Part DatePart
}

// NewExtract creates an EXTRACT expression.
func NewExtract(part DatePart, arg Node) (*Extract, error) {
	switch part {
	case PartYear, PartMonth, PartDay, PartHour, PartMinute, PartSecond:
	default:
		return nil, constructionErrorf(KindExtract, "unknown date part %q", part)
	}
	if arg == nil {
		return nil, constructionErrorf(KindExtract, "extract requires an argument")
	}
	return &Extract{Part: part, Arg: arg}, nil
}

func (n *Extract) Kind() Kind                       { return KindExtract }
func (n *Extract) Accept(v Visitor) (string, error) { return v.VisitExtract(n) }

// Cast converts Arg to Type.
type Cast struct {
	Arg  Node
	Type DataType
}

// NewCast creates a cast expression.
func NewCast(arg Node, typ DataType) (*Cast, error) {
	if arg == nil {
		return nil, constructionErrorf(KindCast, "cast requires an argument")
	}
	if err := typ.validate(KindCast); err != nil {
		return nil, err
	}
	return &Cast{Arg: arg, Type: typ}, nil
}

func (n *Cast) Kind() Kind                       { return KindCast }
func (n *Cast) Accept(v Visitor) (string, error) { return v.VisitCast(n) }

// WhenClause is a single WHEN ... THEN ... branch.
type WhenClause struct {
	When Node
	Then Node
}

// Case is either a searched CASE (Basis nil, When holds predicates) or a
// simple CASE (When holds values compared with Basis).
type Case struct {
	Basis Node
	Else  Node
	Whens []WhenClause
}

// NewCase creates a CASE expression. Basis and elseResult are optional.
func NewCase(basis Node, whens []WhenClause, elseResult Node) (*Case, error) {
	if len(whens) == 0 {
		return nil, constructionErrorf(KindCase, "CASE requires at least one WHEN")
	}
	for i, w := range whens {
		if w.When == nil || w.Then == nil {
			return nil, constructionErrorf(KindCase, "WHEN clause %d is incomplete", i)
		}
	}
	return &Case{Basis: basis, Whens: whens, Else: elseResult}, nil
}

func (n *Case) Kind() Kind                       { return KindCase }
func (n *Case) Accept(v Visitor) (string, error) { return v.VisitCase(n) }
