package helpers

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// SplitCSV splits a comma-separated query parameter, dropping empty parts.
func SplitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
