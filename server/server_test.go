package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestServe_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- Serve(ctx, "127.0.0.1:0", http.NotFoundHandler(), zap.NewNop(), cancel)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServe_PortInUseSkipsReady(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer taken.Close()

	called := false
	err = Serve(context.Background(), taken.Addr().String(), http.NotFoundHandler(), zap.NewNop(), func() { called = true })
	if err == nil {
		t.Fatal("expected an error for a port in use")
	}
	if called {
		t.Error("ready was called although the port is taken")
	}
}

func TestRoutes_ServesStatic(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{}"), 0644); err != nil {
		t.Fatal(err)
	}
	c, _ := newTestClient(t, "2024-01-15")
	c.handler = Routes(NewHandler(testConfig(), zap.NewNop()), dir)

	rec := c.do(http.MethodGet, "/static/app.css", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "body{}" {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestSetupLogging(t *testing.T) {
	t.Setenv("AIR_RESTART_COUNT", "1")
	dir := filepath.Join(t.TempDir(), "logs")

	logger, f, err := SetupLogging(dir)
	if err != nil {
		t.Fatalf("SetupLogging: %v", err)
	}
	defer f.Close()

	logger.Info("hello", zap.String("k", "v"))
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

func TestServeHealth_ContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	ServeHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Header().Get("Content-Type") != "text/plain; charset=utf-8" {
		t.Errorf("Content-Type: %q", rec.Header().Get("Content-Type"))
	}
}
