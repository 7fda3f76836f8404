package entities

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// The data files are shared with other tools, so keys this service does not
// model are carried through load/save untouched.

func jsonFieldNames(t reflect.Type, extra ...string) map[string]struct{} {
	names := make(map[string]struct{}, t.NumField()+len(extra))
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		names[name] = struct{}{}
	}
	for _, n := range extra {
		names[n] = struct{}{}
	}
	return names
}

func unknownFields(data []byte, known map[string]struct{}) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for k := range raw {
		if _, ok := known[k]; ok {
			delete(raw, k)
		}
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

func mergeFields(data []byte, extra map[string]json.RawMessage) ([]byte, error) {
	if len(extra) == 0 {
		return data, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := fields[k]; !ok {
			fields[k] = v
		}
	}
	return json.Marshal(fields)
}

// decodeLenient fills the tagged fields of dst, a pointer to a struct, one
// key at a time. Numbers and booleans are accepted for plain string fields.
// Values that still do not fit are returned keyed by name so they can be
// written back untouched, and the field keeps its zero value.
func decodeLenient(data []byte, dst any) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()
	rejected := make(map[string]json.RawMessage)
	for i := 0; i < rt.NumField(); i++ {
		name, _, _ := strings.Cut(rt.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		val, ok := raw[name]
		if !ok {
			continue
		}
		field := rv.Field(i)
		if err := json.Unmarshal(val, field.Addr().Interface()); err == nil {
			continue
		}
		field.Set(reflect.Zero(field.Type()))
		if field.Type() == stringType && isJSONScalar(val) {
			field.SetString(strings.TrimSpace(string(val)))
			continue
		}
		rejected[name] = val
	}
	return rejected, nil
}

var stringType = reflect.TypeOf("")

func isJSONScalar(val json.RawMessage) bool {
	s := strings.TrimSpace(string(val))
	if s == "true" || s == "false" {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func jsonKind(val json.RawMessage) string {
	s := strings.TrimSpace(string(val))
	switch {
	case strings.HasPrefix(s, "{"):
		return "object"
	case strings.HasPrefix(s, "["):
		return "array"
	default:
		return "scalar"
	}
}

func withFields(extra, more map[string]json.RawMessage) map[string]json.RawMessage {
	if len(more) == 0 {
		return extra
	}
	if extra == nil {
		extra = make(map[string]json.RawMessage, len(more))
	}
	for k, v := range more {
		extra[k] = v
	}
	return extra
}

// Amount is a monetary or numeric value decoded leniently: JSON numbers,
// numeric strings and null are accepted; anything else decodes to zero.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

func (a Amount) Float64() float64 { return float64(a) }
