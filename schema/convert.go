package schema

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

func convertTypeMap(maybeType any) (map[string]any, bool) {
	typeMap, ok := maybeType.(map[string]any)
	return typeMap, ok
}

func attrPaths(paths []string, attrName string) []string {
	return append(copyPaths(paths), "."+attrName)
}

// util functions, each returns the value, whether the attribute is
// present and an error when it is present with a wrong JSON type.

func convertAttrString(node map[string]any, attrName string, paths []string) (string, bool, error) {
	v, ok := node[attrName]
	if !ok {
		return "", false, nil
	}
	if s, ok := v.(string); ok {
		return s, true, nil
	}
	return "", true, NewFieldError(attrName, "a string", attrPaths(paths, attrName))
}

func convertAttrBool(node map[string]any, attrName string, paths []string) (bool, bool, error) {
	v, ok := node[attrName]
	if !ok {
		return false, false, nil
	}
	if bf, ok := v.(bool); ok {
		return bf, true, nil
	}
	return false, true, NewFieldError(attrName, "a boolean", attrPaths(paths, attrName))
}

func convertAttrInt64(node map[string]any, attrName string, paths []string) (int64, bool, error) {
	v, ok := node[attrName]
	if !ok {
		return 0, false, nil
	}
	if n, ok := toInt64(v); ok {
		return n, true, nil
	}
	return 0, true, NewFieldError(attrName, "an integer", attrPaths(paths, attrName))
}

// convertAttrCount reads a non negative integer such as minLength
func convertAttrCount(node map[string]any, attrName string, paths []string) (int, bool, error) {
	n, ok, err := convertAttrInt64(node, attrName, paths)
	if err != nil || !ok {
		return 0, ok, err
	}
	if n < 0 || n > math.MaxInt32 {
		return 0, true, NewFieldError(attrName, "a non-negative integer", attrPaths(paths, attrName))
	}
	return int(n), true, nil
}

func convertAttrFloat(node map[string]any, attrName string, paths []string) (float64, bool, error) {
	v, ok := node[attrName]
	if !ok {
		return 0, false, nil
	}
	if f, ok := toFloat64(v); ok {
		return f, true, nil
	}
	return 0, true, NewFieldError(attrName, "a number", attrPaths(paths, attrName))
}

func convertAttrList(node map[string]any, attrName string, paths []string) ([]any, bool, error) {
	v, ok := node[attrName]
	if !ok {
		return nil, false, nil
	}
	if aList, ok := v.([]any); ok {
		return aList, true, nil
	}
	return nil, true, NewFieldError(attrName, "an array", attrPaths(paths, attrName))
}

func convertAttrMap(node map[string]any, attrName string, paths []string) (map[string]any, bool, error) {
	v, ok := node[attrName]
	if !ok {
		return nil, false, nil
	}
	if m, ok := v.(map[string]any); ok {
		return m, true, nil
	}
	return nil, true, NewFieldError(attrName, "an object", attrPaths(paths, attrName))
}

func convertAttrListOfString(node map[string]any, attrName string, paths []string) ([]string, bool, error) {
	// as emitted by Map()
	if strList, ok := node[attrName].([]string); ok {
		return strList, true, nil
	}
	aList, ok, err := convertAttrList(node, attrName, paths)
	if err != nil || !ok {
		return nil, ok, err
	}
	arr := make([]string, 0, len(aList))
	for _, item := range aList {
		strItem, ok := item.(string)
		if !ok {
			return nil, true, NewFieldError(attrName, "an array of strings", attrPaths(paths, attrName))
		}
		arr = append(arr, strItem)
	}
	return arr, true, nil
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		fv, err := n.Float64()
		return fv, err == nil
	}
	return 0, false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		// float64(math.MaxInt64) rounds up to 2^63, which is out of range
		if n != math.Trunc(n) || math.IsInf(n, 0) || n >= math.MaxInt64 || n < math.MinInt64 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		iv, err := n.Int64()
		if err == nil {
			return iv, true
		}
		if errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		// 1e3 and 10.0 are integral
		if fv, err := n.Float64(); err == nil {
			return toInt64(fv)
		}
	}
	return 0, false
}
