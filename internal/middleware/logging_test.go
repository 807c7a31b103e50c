package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pep299/text-summarizer/internal/stats"
)

// okHandler is a simple handler for testing
func okHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Custom", "value")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("success"))
}

// failingHandler always responds with a server error
func failingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte("failure"))
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestLoggingPassesResponseThrough(t *testing.T) {
	captureLog(t)

	handler := Logging(nil)(http.HandlerFunc(okHandler))

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}

	if w.Header().Get("X-Custom") != "value" {
		t.Errorf("Expected header X-Custom to pass through, got '%s'", w.Header().Get("X-Custom"))
	}
}

func TestLoggingEmitsOneRecordPerRequest(t *testing.T) {
	buf := captureLog(t)

	handler := Logging(nil)(http.HandlerFunc(okHandler))

	req := httptest.NewRequest("POST", "/summaries", strings.NewReader("{}"))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	if !strings.Contains(lines[0], "POST /summaries 200") {
		t.Errorf("Expected log line with method, path and status, got '%s'", lines[0])
	}

	if !strings.Contains(lines[0], "ms") {
		t.Errorf("Expected elapsed milliseconds in log line, got '%s'", lines[0])
	}
}

func TestLoggingCapturesErrorStatus(t *testing.T) {
	buf := captureLog(t)

	handler := Logging(nil)(http.HandlerFunc(failingHandler))

	req := httptest.NewRequest("GET", "/boom", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}

	if !strings.Contains(buf.String(), "GET /boom 500") {
		t.Errorf("Expected log line with status 500, got '%s'", buf.String())
	}
}

func TestLoggingDefaultsToStatus200(t *testing.T) {
	buf := captureLog(t)

	// Handler that writes without calling WriteHeader
	handler := Logging(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("implicit"))
	}))

	req := httptest.NewRequest("GET", "/implicit", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if !strings.Contains(buf.String(), "GET /implicit 200") {
		t.Errorf("Expected implicit status 200 in log line, got '%s'", buf.String())
	}
}

func TestLoggingRecordsStats(t *testing.T) {
	captureLog(t)

	collector := stats.NewCollector()
	handler := Logging(collector)(http.HandlerFunc(failingHandler))

	req := httptest.NewRequest("GET", "/boom", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	snap := collector.Snapshot()
	if snap.Total != 1 {
		t.Errorf("Expected 1 recorded request, got %d", snap.Total)
	}

	if snap.ServerErrors != 1 {
		t.Errorf("Expected 1 server error recorded, got %d", snap.ServerErrors)
	}
}

func TestCORSHeaders(t *testing.T) {
	handler := CORS()(http.HandlerFunc(okHandler))

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("Expected permissive CORS origin, got '%s'", w.Header().Get("Access-Control-Allow-Origin"))
	}

	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestCORSPreflightShortCircuit(t *testing.T) {
	handler := CORS()(http.HandlerFunc(failingHandler))

	req := httptest.NewRequest("OPTIONS", "/summaries", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for preflight, got %d", w.Code)
	}

	if w.Body.String() == "failure" {
		t.Error("Expected preflight to short-circuit before the handler")
	}
}
