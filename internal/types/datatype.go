package types

import (
	"fmt"
	"strings"
)

// TypeKind is the logical data type of a column, cast target or interval.
type TypeKind string

const (
	TypeUnsupported TypeKind = "UNSUPPORTED"
	TypeDecimal     TypeKind = "DECIMAL"
	TypeDouble      TypeKind = "DOUBLE"
	TypeVarchar     TypeKind = "VARCHAR"
	TypeChar        TypeKind = "CHAR"
	TypeDate        TypeKind = "DATE"
	TypeTimestamp   TypeKind = "TIMESTAMP"
	TypeBoolean     TypeKind = "BOOLEAN"
	TypeInterval    TypeKind = "INTERVAL"
	TypeGeometry    TypeKind = "GEOMETRY"
	TypeHashtype    TypeKind = "HASHTYPE"
)

// IntervalRange is the field range of an interval type.
type IntervalRange string

const (
	YearToMonth  IntervalRange = "YEAR TO MONTH"
	DayToSeconds IntervalRange = "DAY TO SECONDS"
)

// DataType describes a logical type together with its parameters.
// Only the parameters relevant to Kind are meaningful.
type DataType struct {
	Kind              TypeKind
	CharacterSet      string
	IntervalRange     IntervalRange
	Precision         int
	Scale             int
	Size              int
	Fraction          int
	SRID              int
	ByteSize          int
	WithLocalTimeZone bool
}

// ParseTypeKind maps a wire type name to a TypeKind.
func ParseTypeKind(name string) (TypeKind, bool) {
	switch k := TypeKind(strings.ToUpper(name)); k {
	case TypeDecimal, TypeDouble, TypeVarchar, TypeChar, TypeDate, TypeTimestamp,
		TypeBoolean, TypeInterval, TypeGeometry, TypeHashtype:
		return k, true
	}
	return TypeUnsupported, false
}

// String renders the type in ANSI-like notation for diagnostics.
func (t DataType) String() string {
	switch t.Kind {
	case TypeDecimal:
		return fmt.Sprintf("DECIMAL(%d, %d)", t.Precision, t.Scale)
	case TypeVarchar, TypeChar:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Size)
	case TypeTimestamp:
		if t.WithLocalTimeZone {
			return "TIMESTAMP WITH LOCAL TIME ZONE"
		}
		return "TIMESTAMP"
	case TypeInterval:
		return "INTERVAL " + string(t.IntervalRange)
	case "":
		return string(TypeUnsupported)
	default:
		return string(t.Kind)
	}
}

func (t DataType) validate(kind Kind) error {
	switch t.Kind {
	case TypeDecimal:
		if t.Precision < 1 || t.Scale < 0 || t.Scale > t.Precision {
			return constructionErrorf(kind, "invalid DECIMAL precision %d and scale %d", t.Precision, t.Scale)
		}
	case TypeVarchar, TypeChar:
		if t.Size < 1 {
			return constructionErrorf(kind, "%s requires a positive size", t.Kind)
		}
	case TypeInterval:
		if t.IntervalRange != YearToMonth && t.IntervalRange != DayToSeconds {
			return constructionErrorf(kind, "unknown interval range %q", t.IntervalRange)
		}
	case TypeDouble, TypeDate, TypeTimestamp, TypeBoolean, TypeGeometry, TypeHashtype:
	default:
		return constructionErrorf(kind, "unsupported data type %q", t.Kind)
	}
	return nil
}
