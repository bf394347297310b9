// Package resume turns an LLM's JSON answer into a pruned, ordered resume record.
//
// Parsed JSON is held as a tagged value tree (Object, List, String, Number,
// Bool, Null) so pruning can switch on the concrete kind and object keys keep
// the order the model produced them in.
package resume

import (
	"bytes"
	"encoding/json"
)

// Value is one node of a parsed JSON document.
type Value interface {
	json.Marshaler

	// Interface converts the value to plain Go values: map[string]any,
	// []any, string, json.Number, bool or nil.
	Interface() any

	isValue()
}

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object with its keys in document order.
type Object []Member

// List is a JSON array.
type List []Value

// String is a JSON string.
type String string

// Number is a JSON number kept as its raw literal so no precision is lost.
type Number string

// Bool is a JSON boolean.
type Bool bool

// Null is the JSON null.
type Null struct{}

func (Object) isValue() {}
func (List) isValue()   {}
func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}

// Get returns the value stored under key.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Keys returns the object's keys in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// Set stores v under key. An existing key keeps its position and takes the
// new value, matching how JSON decoders treat duplicate keys.
func (o Object) Set(key string, v Value) Object {
	for i, m := range o {
		if m.Key == key {
			o[i].Value = v
			return o
		}
	}
	return append(o, Member{Key: key, Value: v})
}

func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalValue(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o Object) Interface() any {
	out := make(map[string]any, len(o))
	for _, m := range o {
		out[m.Key] = interfaceOf(m.Value)
	}
	return out
}

func (l List) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		val, err := marshalValue(v)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (l List) Interface() any {
	out := make([]any, len(l))
	for i, v := range l {
		out[i] = interfaceOf(v)
	}
	return out
}

func (s String) MarshalJSON() ([]byte, error) { return json.Marshal(string(s)) }
func (s String) Interface() any               { return string(s) }

func (n Number) MarshalJSON() ([]byte, error) { return []byte(n), nil }
func (n Number) Interface() any               { return json.Number(n) }

func (b Bool) MarshalJSON() ([]byte, error) { return json.Marshal(bool(b)) }
func (b Bool) Interface() any               { return bool(b) }

func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }
func (Null) Interface() any               { return nil }

func marshalValue(v Value) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return v.MarshalJSON()
}

func interfaceOf(v Value) any {
	if v == nil {
		return nil
	}
	return v.Interface()
}

// Record is a normalized resume: a pruned JSON object whose keys are the
// fields the model extracted. The zero Record is the empty object.
type Record struct {
	Object
}

// IsEmpty reports whether the record has no fields.
func (r Record) IsEmpty() bool {
	return len(r.Object) == 0
}

// Map returns the record as plain Go values for templates.
func (r Record) Map() map[string]any {
	return r.Object.Interface().(map[string]any)
}
