package scrape

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_FetchPlainHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, "<html><body><p>hello</p></body></html>")
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{})
	body, contentType, err := c.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("body = %q, want to contain %q", data, "hello")
	}
	if !strings.Contains(contentType, "text/html") {
		t.Errorf("content type = %q", contentType)
	}
}

func TestClient_FetchGzip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			t.Errorf("missing gzip accept-encoding header")
		}
		w.Header().Set("Content-Type", "text/html")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		io.WriteString(gz, "<html><body><p>compressed page</p></body></html>")
		gz.Close()
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{})
	body, _, err := c.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(data), "compressed page") {
		t.Errorf("body = %q, want decompressed html", data)
	}
}

func TestClient_FetchRejectsNonHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"not":"html"}`)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{})
	if _, _, err := c.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for non-html content type")
	}
}

func TestClient_FetchRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{})
	if _, _, err := c.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 404 status")
	}
}

func TestClient_FetchCapsBodySize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, strings.Repeat("x", 1024))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{MaxBodyBytes: 64})
	body, _, err := c.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if len(data) != 64 {
		t.Errorf("body length = %d, want cap of 64", len(data))
	}
}

func TestClient_FetchRejectsInvalidURL(t *testing.T) {
	c := NewClient(ClientConfig{})
	if _, _, err := c.Fetch(context.Background(), "not-a-url"); err == nil {
		t.Fatal("expected error for url without scheme")
	}
}
