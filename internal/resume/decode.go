package resume

import (
	"errors"

	"github.com/tidwall/gjson"
)

// MaxDepth bounds how deeply objects and arrays may nest in a decoded
// document.
const MaxDepth = 64

// ErrInvalidJSON is returned by Decode for text that is not a JSON document,
// or one nested deeper than MaxDepth.
var ErrInvalidJSON = errors.New("invalid JSON")

// Decode parses text into a Value tree, keeping object keys in document order.
func Decode(text string) (Value, error) {
	if nestingDepth(text) > MaxDepth || !gjson.Valid(text) {
		return nil, ErrInvalidJSON
	}
	return fromResult(gjson.Parse(text)), nil
}

// nestingDepth reports the deepest bracket nesting in text, ignoring
// brackets inside string literals. Validation and decoding both recurse per
// level, so this runs first.
func nestingDepth(text string) int {
	depth, deepest := 0, 0
	inString, escaped := false, false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
			if depth > deepest {
				deepest = depth
			}
		case '}', ']':
			depth--
		}
	}
	return deepest
}

func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.True:
		return Bool(true)
	case gjson.False:
		return Bool(false)
	case gjson.Number:
		return Number(r.Raw)
	case gjson.String:
		return String(r.Str)
	case gjson.JSON:
		if r.IsObject() {
			obj := Object{}
			r.ForEach(func(key, value gjson.Result) bool {
				obj = obj.Set(key.Str, fromResult(value))
				return true
			})
			return obj
		}
		if r.IsArray() {
			list := List{}
			r.ForEach(func(_, value gjson.Result) bool {
				list = append(list, fromResult(value))
				return true
			})
			return list
		}
	}
	return Null{}
}
