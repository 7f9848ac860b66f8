package statsig

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// Kind tags the shape of an upstream JSON value.
type Kind int

const (
	KindNull Kind = iota
	KindObject
	KindArray
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindScalar:
		return "scalar"
	default:
		return "null"
	}
}

var errInvalidJSON = errors.New("response body is not valid JSON")

// Value is an upstream JSON payload without a fixed schema.
type Value struct {
	res gjson.Result
}

// Parse validates body and wraps it. An empty or blank body is the null value.
func Parse(body []byte) (Value, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Value{}, nil
	}
	if !gjson.ValidBytes(body) {
		return Value{}, errInvalidJSON
	}
	return Value{res: gjson.ParseBytes(body)}, nil
}

func (v Value) Kind() Kind {
	switch {
	case v.res.IsObject():
		return KindObject
	case v.res.IsArray():
		return KindArray
	case v.res.Type == gjson.Null:
		return KindNull
	default:
		return KindScalar
	}
}

// Raw returns the payload as received.
func (v Value) Raw() json.RawMessage {
	if v.res.Raw == "" {
		return json.RawMessage("null")
	}
	return json.RawMessage(v.res.Raw)
}

// Elements returns the items of an array value, or nil for any other kind.
func (v Value) Elements() []Value {
	if v.Kind() != KindArray {
		return nil
	}
	items := v.res.Array()
	out := make([]Value, 0, len(items))
	for _, item := range items {
		out = append(out, Value{res: item})
	}
	return out
}

// Field looks up a top-level key of an object value.
func (v Value) Field(key string) (Value, bool) {
	if v.Kind() != KindObject {
		return Value{}, false
	}
	var found gjson.Result
	ok := false
	v.res.ForEach(func(k, val gjson.Result) bool {
		if k.String() == key {
			found, ok = val, true
			return false
		}
		return true
	})
	return Value{res: found}, ok
}

// String renders scalars as text. Null is the empty string.
func (v Value) String() string {
	if v.Kind() == KindNull {
		return ""
	}
	return v.res.String()
}

// MarshalJSON passes the raw payload through.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.Raw(), nil
}

// GateNames extracts the "name" of every object in an array value. Objects
// without the field contribute "" while non-object elements are skipped.
// Anything other than an array yields an empty list.
func GateNames(v Value) []string {
	names := []string{}
	for _, el := range v.Elements() {
		switch el.Kind() {
		case KindObject:
			name, _ := el.Field("name")
			names = append(names, name.String())
		default:
			// dropped, not defaulted
		}
	}
	return names
}
