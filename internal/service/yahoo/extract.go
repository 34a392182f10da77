package yahoo

import (
	"github.com/PaesslerAG/jsonpath"
)

// lookup evaluates a JSONPath expression and returns nil when it does not resolve.
func lookup(doc any, path string) any {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil
	}
	return v
}

// scalar unwraps Yahoo's {"raw": .., "fmt": ..} value objects. Empty objects
// mean "no value".
func scalar(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if raw, ok := t["raw"]; ok {
			return raw
		}
		return nil
	case string:
		if t == "" {
			return nil
		}
		return t
	case float64, bool:
		return t
	default:
		return nil
	}
}

func asList(v any) []any {
	list, _ := v.([]any)
	return list
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
