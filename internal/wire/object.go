package wire

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// object is a decoded JSON object that remembers where it came from, so
// every field error can name its location.
type object struct {
	path   string
	fields map[string]json.RawMessage
}

func decodeObject(path string, raw json.RawMessage) (object, error) {
	o := object{path: path}
	if isNull(raw) {
		return o, malformed(path, "expected an object, got null")
	}
	if err := json.Unmarshal(raw, &o.fields); err != nil {
		return o, malformed(path, "expected an object")
	}
	return o, nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func (o object) at(key string) string {
	if o.path == "" {
		return key
	}
	return o.path + "." + key
}

func (o object) has(key string) bool {
	raw, ok := o.fields[key]
	return ok && !isNull(raw)
}

// tag returns the node discriminator.
func (o object) tag() (string, error) {
	return o.str("type")
}

func (o object) str(key string) (string, error) {
	if !o.has(key) {
		return "", malformed(o.at(key), "required field is missing")
	}
	var s string
	if err := json.Unmarshal(o.fields[key], &s); err != nil {
		return "", malformed(o.at(key), "expected a string")
	}
	return s, nil
}

func (o object) optStr(key string) (string, error) {
	if !o.has(key) {
		return "", nil
	}
	return o.str(key)
}

// scalar returns a string, number or boolean field in its textual form.
func (o object) scalar(key string) (string, error) {
	if !o.has(key) {
		return "", malformed(o.at(key), "required field is missing")
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(o.fields[key]))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return "", malformed(o.at(key), "invalid value")
	}
	switch v.(type) {
	case map[string]any, []any:
		return "", malformed(o.at(key), "expected a scalar value")
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", malformed(o.at(key), "expected a scalar value")
	}
	return s, nil
}

func (o object) boolean(key string, def bool) (bool, error) {
	if !o.has(key) {
		return def, nil
	}
	s, err := o.scalar(key)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, malformed(o.at(key), "expected a boolean, got %q", s)
	}
	return b, nil
}

func (o object) integer(key string, def int64) (int64, error) {
	if !o.has(key) {
		return def, nil
	}
	s, err := o.scalar(key)
	if err != nil {
		return 0, err
	}
	n, err := cast.ToInt64E(s)
	if err != nil {
		return 0, malformed(o.at(key), "expected an integer, got %q", s)
	}
	return n, nil
}

func (o object) child(key string) (object, error) {
	if !o.has(key) {
		return object{}, malformed(o.at(key), "required field is missing")
	}
	return decodeObject(o.at(key), o.fields[key])
}

// list returns the elements of an array field, each with its own path.
func (o object) list(key string) ([]object, error) {
	if !o.has(key) {
		return nil, nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(o.fields[key], &raws); err != nil {
		return nil, malformed(o.at(key), "expected an array")
	}
	out := make([]object, len(raws))
	for i, raw := range raws {
		el, err := decodeObject(o.at(key)+"["+strconv.Itoa(i)+"]", raw)
		if err != nil {
			return nil, err
		}
		out[i] = el
	}
	return out, nil
}

// stringMap decodes an object of scalar values. A JSON string holding an
// encoded object is accepted as well; adapter notes arrive that way.
func (o object) stringMap(key string) (map[string]string, error) {
	if !o.has(key) {
		return map[string]string{}, nil
	}
	raw := bytes.TrimSpace(o.fields[key])
	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, malformed(o.at(key), "invalid string")
		}
		if encoded == "" {
			return map[string]string{}, nil
		}
		raw = []byte(encoded)
	}
	var values map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&values); err != nil {
		return nil, malformed(o.at(key), "expected an object of values")
	}
	out := make(map[string]string, len(values))
	for k, v := range values {
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, malformed(o.at(key)+"."+k, "expected a scalar value")
		}
		out[k] = s
	}
	return out, nil
}
