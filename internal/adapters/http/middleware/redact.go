package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/kanban-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders returns h as a "headers" group attribute with lowercase keys
// in sorted order. Values of logging.SensitiveHeaders are replaced and
// repeated values are joined with a comma.
func RedactHeaders(h http.Header) slog.Attr {
	attrs := make([]slog.Attr, 0, len(h))
	for _, key := range slices.Sorted(maps.Keys(h)) {
		name := strings.ToLower(key)
		value := strings.Join(h[key], ",")
		if logging.SensitiveHeaders[name] {
			value = redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.Attr{Key: "headers", Value: slog.GroupValue(attrs...)}
}
