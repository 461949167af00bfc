package wikipedia

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-api/internal/platform/httpclient"
)

func TestFetch_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != userAgent {
			http.Error(w, "blocked", http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<div class="NavFrame"></div>`))
	}))
	defer ts.Close()

	rc, err := NewFetcher(time.Second).Fetch(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	defer rc.Close()

	b, _ := io.ReadAll(rc)
	if string(b) != `<div class="NavFrame"></div>` {
		t.Fatalf("unexpected body %q", string(b))
	}
}

func TestFetch_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	_, err := NewFetcher(time.Second).Fetch(context.Background(), ts.URL)
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}
