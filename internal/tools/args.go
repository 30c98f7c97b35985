package tools

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// requireString returns a required string argument. Empty strings are accepted.
func requireString(req mcp.CallToolRequest, key string) (string, error) {
	v, ok := req.GetArguments()[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingArgument, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidArgument, key)
	}
	return s, nil
}

// optionalString returns an optional string argument, or "" when it is absent.
func optionalString(req mcp.CallToolRequest, key string) (string, error) {
	v, ok := req.GetArguments()[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidArgument, key)
	}
	return s, nil
}

// requireObject returns a required JSON object argument.
func requireObject(req mcp.CallToolRequest, key string) (map[string]any, error) {
	v, ok := req.GetArguments()[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingArgument, key)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an object", ErrInvalidArgument, key)
	}
	return m, nil
}

// requireValue returns a required argument of any JSON type.
func requireValue(req mcp.CallToolRequest, key string) (any, error) {
	v, ok := req.GetArguments()[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingArgument, key)
	}
	return v, nil
}

// stringList returns an array-of-strings argument. A missing argument yields
// nil unless required is set.
func stringList(req mcp.CallToolRequest, key string, required bool) ([]string, error) {
	v, ok := req.GetArguments()[key]
	if !ok || v == nil {
		if required {
			return nil, fmt.Errorf("%w: %s", ErrMissingArgument, key)
		}
		return nil, nil
	}
	switch items := v.(type) {
	case []string:
		return items, nil
	case []any:
		out := make([]string, 0, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] must be a string", ErrInvalidArgument, key, i)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s must be an array of strings", ErrInvalidArgument, key)
}

// queryParams converts an optional object argument to query parameters.
// Scalars are formatted as text and arrays are joined with commas, the form
// Jira expects for fields and expand.
func queryParams(req mcp.CallToolRequest, key string) (map[string]string, error) {
	v, ok := req.GetArguments()[key]
	if !ok || v == nil {
		return nil, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an object", ErrInvalidArgument, key)
	}
	params := make(map[string]string, len(obj))
	for name, raw := range obj {
		s, err := paramString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %w", ErrInvalidArgument, key, name, err)
		}
		params[name] = s
	}
	return params, nil
}

func paramString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			s, err := paramString(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	}
	return "", fmt.Errorf("unsupported value of type %T", v)
}
