// Package middleware holds the inbound HTTP pipeline of the kanban service.
//
// The server installs it in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → AppContext → Timeout → Handler
//
// Every middleware has the shape func(http.Handler) http.Handler and is
// passed to chi via router.Use.
package middleware

import "net/http"

// responseWriter records the status and body size that a handler produced so
// recovery, otel and logging can report them after the fact.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader keeps the first status and forwards it.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
