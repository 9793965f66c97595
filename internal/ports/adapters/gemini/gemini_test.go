package gemini

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"segcut/internal/ports"
)

func writeTestVideo(t *testing.T, size int) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "in.mp4")
	if err := os.WriteFile(p, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

func newTestAdapter(serverURL string) *Adapter {
	a := New("test-key", "test-model", serverURL)
	return a
}

func TestFindTimestamps_ReturnsAnswerText(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"The goal is from 00:01:10 to 00:01:25."}]}}]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	text, err := a.FindTimestamps(context.Background(), writeTestVideo(t, 16), "when is the goal")
	if err != nil {
		t.Fatalf("FindTimestamps: %v", err)
	}
	if !strings.Contains(text, "00:01:10") {
		t.Fatalf("unexpected text: %q", text)
	}
	if !strings.Contains(gotPath, "test-model") {
		t.Fatalf("unexpected request path: %q", gotPath)
	}
}

func TestFindTimestamps_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"bad request for test-key"}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	_, err := a.FindTimestamps(context.Background(), writeTestVideo(t, 16), "x")
	if !errors.Is(err, ports.ErrCollaboratorRejected) {
		t.Fatalf("want ErrCollaboratorRejected, got %v", err)
	}
	if strings.Contains(err.Error(), "test-key") {
		t.Fatalf("api key leaked into error: %v", err)
	}
}

func TestFindTimestamps_PayloadTooLarge(t *testing.T) {
	// Preflight check: no request should be made at all.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not reach the server")
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	_, err := a.FindTimestamps(context.Background(), writeTestVideo(t, maxInlinePayload+1), "x")
	if !errors.Is(err, ports.ErrPayloadTooLarge) {
		t.Fatalf("want ErrPayloadTooLarge, got %v", err)
	}
}

func TestFindTimestamps_PayloadTooLargeStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	_, err := a.FindTimestamps(context.Background(), writeTestVideo(t, 16), "x")
	if !errors.Is(err, ports.ErrPayloadTooLarge) {
		t.Fatalf("want ErrPayloadTooLarge, got %v", err)
	}
}

func TestFindTimestamps_Timeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	a := newTestAdapter(srv.URL)
	a.timeout = 50 * time.Millisecond
	_, err := a.FindTimestamps(context.Background(), writeTestVideo(t, 16), "x")
	if !errors.Is(err, ports.ErrCollaboratorTimeout) {
		t.Fatalf("want ErrCollaboratorTimeout, got %v", err)
	}
}

func TestFindTimestamps_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	_, err := a.FindTimestamps(context.Background(), writeTestVideo(t, 16), "x")
	if !errors.Is(err, ports.ErrCollaboratorRejected) {
		t.Fatalf("want ErrCollaboratorRejected, got %v", err)
	}
}

func TestMimeFromExt(t *testing.T) {
	cases := map[string]string{
		"a.mp4":  "video/mp4",
		"a.MOV":  "video/quicktime",
		"a.webm": "video/webm",
		"a.bin":  "video/mp4",
	}
	for in, want := range cases {
		if got := mimeFromExt(in); got != want {
			t.Fatalf("mimeFromExt(%q) = %q, want %q", in, got, want)
		}
	}
}
