package wire

import (
	"strings"

	"github.com/zoobzio/pushql/internal/types"
)

func parseDataType(o object) (types.DataType, error) {
	var dt types.DataType
	name, err := o.tag()
	if err != nil {
		return dt, err
	}
	kind, ok := types.ParseTypeKind(name)
	if !ok {
		return dt, malformed(o.at("type"), "unknown data type %q", name)
	}
	dt.Kind = kind

	ints := []struct {
		key string
		dst *int
	}{
		{"precision", &dt.Precision},
		{"scale", &dt.Scale},
		{"size", &dt.Size},
		{"fraction", &dt.Fraction},
		{"srid", &dt.SRID},
		{"bytesize", &dt.ByteSize},
	}
	for _, f := range ints {
		n, err := o.integer(f.key, 0)
		if err != nil {
			return dt, err
		}
		*f.dst = int(n)
	}
	if dt.CharacterSet, err = o.optStr("characterSet"); err != nil {
		return dt, err
	}
	if dt.WithLocalTimeZone, err = o.boolean("withLocalTimeZone", false); err != nil {
		return dt, err
	}
	if kind == types.TypeInterval {
		fromTo, err := o.str("fromTo")
		if err != nil {
			return dt, err
		}
		switch r := types.IntervalRange(strings.ToUpper(fromTo)); r {
		case types.YearToMonth, types.DayToSeconds:
			dt.IntervalRange = r
		default:
			return dt, malformed(o.at("fromTo"), "unknown interval range %q", fromTo)
		}
	}
	return dt, nil
}
