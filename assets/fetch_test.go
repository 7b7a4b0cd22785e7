package assets

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/petal-labs/easel/internal/log"
)

func TestFetch(t *testing.T) {
	payload := []byte("\x89PNG\r\n\x1a\nfake")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/img.png" {
			t.Errorf("path = %s, want /img.png", r.URL.Path)
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer server.Close()

	got, err := NewHTTPFetcher().Fetch(context.Background(), server.URL+"/img.png")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Fetch() = %q, want %q", got, payload)
	}
}

func TestFetchStatusError(t *testing.T) {
	tests := []int{http.StatusNotFound, http.StatusForbidden, http.StatusInternalServerError}

	for _, status := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte("<Error>expired</Error>"))
		}))

		_, err := (&HTTPFetcher{}).Fetch(context.Background(), server.URL)
		server.Close()

		var fe *FetchError
		if !errors.As(err, &fe) {
			t.Fatalf("status %d: error type = %T, want *FetchError", status, err)
		}
		if fe.Status != status {
			t.Errorf("Status = %d, want %d", fe.Status, status)
		}
		if !strings.Contains(fe.Error(), http.StatusText(status)) {
			t.Errorf("Error() = %q, want status text", fe.Error())
		}
	}
}

func TestFetchTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewHTTPFetcher().Fetch(context.Background(), url)

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error type = %T, want *FetchError", err)
	}
	if fe.Status != 0 {
		t.Errorf("Status = %d, want 0", fe.Status)
	}
	if fe.Err == nil {
		t.Error("Err = nil, want transport cause")
	}
}

func TestFetchRejectsScheme(t *testing.T) {
	for _, uri := range []string{"file:///etc/passwd", "gs://bucket/img.png", "not a url\x7f"} {
		_, err := NewHTTPFetcher().Fetch(context.Background(), uri)
		var fe *FetchError
		if !errors.As(err, &fe) {
			t.Errorf("Fetch(%q) error = %v, want *FetchError", uri, err)
		}
	}
}

func TestFetchMaxBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(bytes.Repeat([]byte("x"), 100))
	}))
	defer server.Close()

	_, err := (&HTTPFetcher{MaxBytes: 10}).Fetch(context.Background(), server.URL)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("Fetch() error = %v, want ErrTooLarge", err)
	}

	got, err := (&HTTPFetcher{MaxBytes: 100}).Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() at limit error = %v", err)
	}
	if len(got) != 100 {
		t.Errorf("len = %d, want 100", len(got))
	}
}

func TestFetchHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPFetcher().Fetch(ctx, server.URL)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() error = %v, want context.Canceled", err)
	}
}

func TestFetchLogsFromContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("img"))
	}))
	defer server.Close()

	var buf bytes.Buffer
	ctx := log.NewContext(context.Background(), log.New(&buf, true))

	if _, err := NewHTTPFetcher().Fetch(ctx, server.URL+"/img.png?sig=secret-token"); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"msg":"image response"`) || !strings.Contains(out, `"status":200`) {
		t.Errorf("log output = %s, want image response with status", out)
	}
	if !strings.Contains(out, `"path":"/img.png"`) {
		t.Errorf("log output = %s, want path attribute", out)
	}
	if strings.Contains(out, "secret-token") {
		t.Errorf("log output leaked query string: %s", out)
	}
}
