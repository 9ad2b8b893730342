package types

import "strings"

// Aggregate is an aggregate function call such as SUM(DISTINCT x).
// An aggregate without arguments is COUNT(*).
type Aggregate struct {
	Filter   Node
	Name     string
	Args     []Node
	Distinct bool
}

// NewAggregate creates an aggregate call. Filter is optional.
func NewAggregate(name string, distinct bool, filter Node, args ...Node) (*Aggregate, error) {
	name = strings.ToUpper(name)
	if name == "" {
		return nil, constructionErrorf(KindAggregate, "aggregate name is required")
	}
	if len(args) == 0 && name != "COUNT" {
		return nil, constructionErrorf(KindAggregate, "%s requires an argument", name)
	}
	if len(args) == 0 && distinct {
		return nil, constructionErrorf(KindAggregate, "COUNT(DISTINCT *) is not valid")
	}
	for i, a := range args {
		if a == nil {
			return nil, constructionErrorf(KindAggregate, "argument %d of %s is nil", i, name)
		}
	}
	return &Aggregate{Name: name, Distinct: distinct, Filter: filter, Args: args}, nil
}

func (n *Aggregate) Kind() Kind                       { return KindAggregate }
func (n *Aggregate) Accept(v Visitor) (string, error) { return v.VisitAggregate(n) }

// GroupConcat concatenates the values of a group into one string.
type GroupConcat struct {
	Arg       Node
	OrderBy   *OrderBy
	Separator *string
	Distinct  bool
}

// NewGroupConcat creates a string aggregation. OrderBy and separator are optional.
func NewGroupConcat(arg Node, distinct bool, orderBy *OrderBy, separator *string) (*GroupConcat, error) {
	if arg == nil {
		return nil, constructionErrorf(KindGroupConcat, "GROUP_CONCAT requires an argument")
	}
	return &GroupConcat{Arg: arg, Distinct: distinct, OrderBy: orderBy, Separator: separator}, nil
}

func (n *GroupConcat) Kind() Kind                       { return KindGroupConcat }
func (n *GroupConcat) Accept(v Visitor) (string, error) { return v.VisitGroupConcat(n) }

// FrameUnits selects ROWS or RANGE framing.
type FrameUnits string

const (
	FrameRows  FrameUnits = "ROWS"
	FrameRange FrameUnits = "RANGE"
)

// BoundType is one end of a window frame.
type BoundType int

const (
	UnboundedPreceding BoundType = iota
	Preceding
	CurrentRow
	Following
	UnboundedFollowing
)

// FrameBound is a frame boundary. Offset applies to Preceding and Following.
type FrameBound struct {
	Type   BoundType
	Offset int64
}

// Frame is a window frame clause. A nil End means the single-bound form.
type Frame struct {
	End   *FrameBound
	Units FrameUnits
	Start FrameBound
}

func (f *Frame) validate() error {
	if f.Units != FrameRows && f.Units != FrameRange {
		return constructionErrorf(KindWindow, "unknown frame units %q", f.Units)
	}
	check := func(b FrameBound) error {
		if b.Type < UnboundedPreceding || b.Type > UnboundedFollowing {
			return constructionErrorf(KindWindow, "unknown frame bound %d", b.Type)
		}
		if (b.Type == Preceding || b.Type == Following) && b.Offset < 0 {
			return constructionErrorf(KindWindow, "frame offset must not be negative")
		}
		return nil
	}
	if err := check(f.Start); err != nil {
		return err
	}
	if f.Start.Type == UnboundedFollowing {
		return constructionErrorf(KindWindow, "frame cannot start at UNBOUNDED FOLLOWING")
	}
	if f.End == nil {
		if f.Start.Type == Following {
			return constructionErrorf(KindWindow, "single-bound frame cannot start after the current row")
		}
		return nil
	}
	if err := check(*f.End); err != nil {
		return err
	}
	if f.End.Type == UnboundedPreceding {
		return constructionErrorf(KindWindow, "frame cannot end at UNBOUNDED PRECEDING")
	}
	if f.End.Type < f.Start.Type {
		return constructionErrorf(KindWindow, "frame end precedes frame start")
	}
	return nil
}

// Window is an aggregate or ranking function evaluated over a window.
type Window struct {
	OrderBy     *OrderBy
	Frame       *Frame
	Name        string
	Args        []Node
	PartitionBy []Node
}

// nullaryWindows may be called without arguments. A COUNT without arguments
// counts rows.
var nullaryWindows = map[string]bool{
	"COUNT":        true,
	"ROW_NUMBER":   true,
	"RANK":         true,
	"DENSE_RANK":   true,
	"PERCENT_RANK": true,
	"CUME_DIST":    true,
}

// NewWindow creates a window function call.
func NewWindow(name string, args, partitionBy []Node, orderBy *OrderBy, frame *Frame) (*Window, error) {
	name = strings.ToUpper(name)
	if name == "" {
		return nil, constructionErrorf(KindWindow, "window function name is required")
	}
	if len(args) == 0 && !nullaryWindows[name] {
		return nil, constructionErrorf(KindWindow, "%s requires an argument", name)
	}
	for i, a := range args {
		if a == nil {
			return nil, constructionErrorf(KindWindow, "argument %d of %s is nil", i, name)
		}
	}
	for i, p := range partitionBy {
		if p == nil {
			return nil, constructionErrorf(KindWindow, "partition expression %d is nil", i)
		}
	}
	if frame != nil {
		if orderBy == nil {
			return nil, constructionErrorf(KindWindow, "a window frame requires ORDER BY")
		}
		if err := frame.validate(); err != nil {
			return nil, err
		}
	}
	return &Window{Name: name, Args: args, PartitionBy: partitionBy, OrderBy: orderBy, Frame: frame}, nil
}

func (n *Window) Kind() Kind                       { return KindWindow }
func (n *Window) Accept(v Visitor) (string, error) { return v.VisitWindow(n) }
