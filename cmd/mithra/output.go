package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hokaccha/go-prettyjson"
)

// formatValue renders one evaluation result for display. The json format
// exists so list and string results can be piped into other tools.
func formatValue(value any, format string, useColor bool) (string, error) {
	switch strings.ToLower(format) {
	case "", "text":
		if s, ok := value.(string); ok {
			return s, nil
		}
		return fmt.Sprintf("%v", value), nil
	case "json":
		if !useColor {
			data, err := json.MarshalIndent(value, "", "  ")
			if err != nil {
				return "", err
			}
			return string(data), nil
		}
		data, err := prettyjson.Marshal(value)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}
