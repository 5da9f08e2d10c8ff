package domain

import (
	"strconv"
	"strings"
)

// Float converts a widget or setting value to float32.
// Numeric strings are accepted since hosts frequently serialize numbers as text.
func Float(v any) (float32, bool) {
	switch x := v.(type) {
	case float64:
		return float32(x), true
	case float32:
		return x, true
	case int:
		return float32(x), true
	case int64:
		return float32(x), true
	case int32:
		return float32(x), true
	case uint64:
		return float32(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 32)
		if err != nil {
			return 0, false
		}
		return float32(f), true
	default:
		return 0, false
	}
}

// Bool converts a widget or setting value to bool.
func Bool(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return false, false
		}
		return b, true
	default:
		return false, false
	}
}

// String converts a widget or setting value to string.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// FloatWidget reads a numeric widget, falling back to def when it is absent or not numeric.
func (n *Node) FloatWidget(name string, fold bool, def float32) float32 {
	w, ok := n.Widget(name, fold)
	if !ok {
		return def
	}
	if f, ok := Float(w.Value); ok {
		return f
	}
	return def
}
