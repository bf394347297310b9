package resume

import "strings"

// Prune removes empty values from v, depth first. Strings are trimmed; empty
// strings, nulls, and lists or objects left with no elements are dropped by
// their parent. Prune returns nil when v itself is empty.
//
// Pruning is a fixed point: Prune(Prune(v)) equals Prune(v).
func Prune(v Value) Value {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case String:
		s := strings.TrimSpace(string(t))
		if s == "" {
			return nil
		}
		return String(s)
	case Object:
		out := make(Object, 0, len(t))
		for _, m := range t {
			if pruned := Prune(m.Value); pruned != nil {
				out = append(out, Member{Key: m.Key, Value: pruned})
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case List:
		out := make(List, 0, len(t))
		for _, item := range t {
			if pruned := Prune(item); pruned != nil {
				out = append(out, pruned)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case Record:
		return Prune(t.Object)
	default:
		return v
	}
}
