package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "paletto/") {
			t.Errorf("User-Agent = %q", ua)
		}
		if r.Header.Get("X-Test") != "1" {
			t.Errorf("missing custom header")
		}
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte("hello"))
		case "/big":
			w.Write([]byte(strings.Repeat("x", 64)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	opts := FetchOptions{Headers: map[string]string{"X-Test": "1"}}

	data, err := Fetch(context.Background(), srv.URL+"/ok", opts)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("Fetch() = %q, want hello", data)
	}

	if _, err := Fetch(context.Background(), srv.URL+"/missing", opts); err == nil {
		t.Error("expected error for 404")
	}

	opts.MaxBytes = 10
	if _, err := Fetch(context.Background(), srv.URL+"/big", opts); err == nil {
		t.Error("expected error for oversized body")
	}
}
