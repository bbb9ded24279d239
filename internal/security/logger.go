package security

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sgaunet/bullets"
)

// DebugAuth logs which authentication method is in use, with every detail sanitized.
//
//	DebugAuth(logger, "GitHub", map[string]string{
//	    "method": "token",
//	    "token":  tok.Value(), // logged as [redacted]
//	})
func DebugAuth(logger *bullets.Logger, authType string, details map[string]string) {
	if logger == nil {
		return
	}

	detailsAny := make(map[string]any, len(details))
	for k, v := range details {
		detailsAny[k] = v
	}
	sanitized := SanitizeMap(detailsAny)

	keys := make([]string, 0, len(sanitized))
	for k := range sanitized {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, sanitized[k]))
	}
	logger.Debug(fmt.Sprintf("Using %s authentication: %s", authType, strings.Join(pairs, " ")))
}
