package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/kanban-service/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/kanban-service/internal/platform/config"
	"github.com/jsamuelsen11/kanban-service/internal/platform/telemetry"
)

func writeConfig(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestMigrateCommand_CreatesSchema(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "kanban.db")
	writeConfig(t, dir, "base.yaml", "log:\n  level: error\n")
	writeConfig(t, dir, "ci.yaml", "database:\n  path: "+dbPath+"\n")

	for range 2 {
		cmd := newRootCmd()
		cmd.SetArgs([]string{"migrate", "--profile", "ci", "--config-dir", dir})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("migrate error = %v", err)
		}
	}

	db, err := sqlite.Open(sqlite.Options{Path: dbPath})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	var n int
	err = db.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('boards', 'tasks', 'users')`).Scan(&n)
	if err != nil {
		t.Fatalf("query error = %v", err)
	}
	if n != 3 {
		t.Errorf("found %d tables, want 3", n)
	}
}

func TestRootCommand_RejectsBadProfile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate", "--profile", "../etc"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() = nil, want error for path traversal profile")
	}
}

func TestBuildSinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		sinks     []string
		queue     config.QueueConfig
		wantNames []string
		wantErr   bool
	}{
		{name: "none", sinks: nil, wantNames: nil},
		{name: "log only", sinks: []string{config.SinkLog}, wantNames: []string{"log"}},
		{name: "log and webhook", sinks: []string{config.SinkWebhook, config.SinkLog}, wantNames: []string{"log", "webhook"}},
		{
			name:  "queue",
			sinks: []string{config.SinkQueue},
			queue: config.QueueConfig{
				ConnectionString: "DefaultEndpointsProtocol=http;AccountName=devstoreaccount1;" +
					"AccountKey=Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw==;" +
					"QueueEndpoint=http://127.0.0.1:10001/devstoreaccount1;",
				Name: "task-assignments",
			},
			wantNames: []string{"queue"},
		},
		{name: "queue without connection string", sinks: []string{config.SinkQueue}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{Notify: config.NotifyConfig{
				Sinks: tt.sinks,
				Queue: tt.queue,
				Webhook: config.WebhookConfig{
					Path:   "/notifications",
					Client: config.ClientConfig{BaseURL: "http://localhost:8081"},
				},
			}}

			injector := do.New()
			do.ProvideValue[*telemetry.Metrics](injector, nil)

			sinks, err := buildSinks(injector, cfg, slog.New(slog.DiscardHandler))
			if tt.wantErr {
				if err == nil {
					t.Fatal("buildSinks() = nil error, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("buildSinks() error = %v", err)
			}

			if len(sinks) != len(tt.wantNames) {
				t.Fatalf("got %d sinks, want %d", len(sinks), len(tt.wantNames))
			}
			for i, s := range sinks {
				if s.Name() != tt.wantNames[i] {
					t.Errorf("sinks[%d].Name() = %q, want %q", i, s.Name(), tt.wantNames[i])
				}
			}
		})
	}
}

func TestOtelProviders_ShutdownReverseOrder(t *testing.T) {
	t.Parallel()

	var order []string
	errFlush := errors.New("export failed")

	o := &otelProviders{}
	o.onShutdown("tracer", func(context.Context) error {
		order = append(order, "tracer")
		return nil
	})
	o.onShutdown("meter", func(context.Context) error {
		order = append(order, "meter")
		return errFlush
	})

	err := o.Shutdown(context.Background())
	if !errors.Is(err, errFlush) {
		t.Fatalf("Shutdown() error = %v, want %v", err, errFlush)
	}
	if !slices.Equal(order, []string{"meter", "tracer"}) {
		t.Errorf("shutdown order = %v, want [meter tracer]", order)
	}

	// A second Shutdown has nothing left to flush.
	if err := o.Shutdown(context.Background()); err != nil {
		t.Errorf("second Shutdown() error = %v, want nil", err)
	}
}

func TestInitTelemetry_Disabled(t *testing.T) {
	t.Parallel()

	o, err := initTelemetry(context.Background(), &config.Config{})
	if err != nil {
		t.Fatalf("initTelemetry() error = %v", err)
	}
	if o.metrics != nil {
		t.Error("metrics should be nil when telemetry is disabled")
	}
	if err := o.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
