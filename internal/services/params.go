package services

import (
	"fmt"
	"strings"
)

// Parameter accessors for the untyped params map carried by an action.
// Everything here is validation-at-dispatch: the extractor keeps params
// opaque and malformed values become failed outcomes, not panics.

func stringParam(params map[string]any, key string) (string, error) {
	value, ok := params[key]
	if !ok {
		return "", fmt.Errorf("missing required parameter %q", key)
	}
	s, ok := value.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func optionalStringParam(params map[string]any, key string) (string, error) {
	value, ok := params[key]
	if !ok || value == nil {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q must be a string", key)
	}
	return s, nil
}

// optionalIntParam reads a numeric parameter. JSON numbers decode as float64.
func optionalIntParam(params map[string]any, key string) (*int, error) {
	value, ok := params[key]
	if !ok || value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case float64:
		n := int(v)
		return &n, nil
	case int:
		n := v
		return &n, nil
	default:
		return nil, fmt.Errorf("parameter %q must be numeric", key)
	}
}

// boolParam reads a boolean-ish parameter. The assistant emits literal
// booleans, string tokens, or nothing at all; an absent key defaults to true
// (suggestions to turn a feature on usually omit "enable").
func boolParam(params map[string]any, key string) (bool, error) {
	value, ok := params[key]
	if !ok || value == nil {
		return true, nil
	}
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "yes", "1":
			return true, nil
		case "false", "off", "no", "0":
			return false, nil
		default:
			return false, fmt.Errorf("cannot interpret %q value %q as boolean", key, v)
		}
	default:
		return false, fmt.Errorf("parameter %q must be a boolean", key)
	}
}

func stringListParam(params map[string]any, key string) ([]string, error) {
	value, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("missing required parameter %q", key)
	}
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("parameter %q must be a list of strings", key)
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("parameter %q must contain at least one string", key)
	}
	return out, nil
}
