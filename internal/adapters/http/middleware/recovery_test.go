package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-service/internal/adapters/http/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantLog    []string
	}{
		{
			name: "no panic passes through",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"id":4}`))
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":4}`,
		},
		{
			name:       "string panic becomes 500",
			handler:    func(http.ResponseWriter, *http.Request) { panic("board store exploded") },
			wantStatus: http.StatusInternalServerError,
			wantLog:    []string{"panic recovered", "board store exploded", "goroutine", "route=/board/{id}"},
		},
		{
			name:       "non string panic becomes 500",
			handler:    func(http.ResponseWriter, *http.Request) { panic(42) },
			wantStatus: http.StatusInternalServerError,
			wantLog:    []string{"panic=42"},
		},
		{
			name: "headers already written keep their status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte("partial"))
				panic("late panic")
			},
			wantStatus: http.StatusAccepted,
			wantBody:   "partial",
			wantLog:    []string{"late panic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			r := chi.NewRouter()
			r.Use(middleware.Recovery(testLogger(&buf)))
			r.Get("/board/{id}", tt.handler)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/board/4", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			for _, want := range tt.wantLog {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("log output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestRecovery_ProblemBodyHidesPanicValue(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("dsn=file:/var/lib/kanban.db")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/task", http.NoBody))

	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	var body struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Title != "Internal Server Error" || body.Detail != "internal server error" {
		t.Errorf("body = %+v, want generic 500 problem", body)
	}
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Recovery(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", v)
		}
		if strings.Contains(buf.String(), "panic recovered") {
			t.Error("abort should not be logged as a recovered panic")
		}
	}()

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/task/last-task", http.NoBody))
}
