package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestProbePoster_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Fatalf("expected HEAD, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "image/jpeg")
	}))
	defer server.Close()

	client := NewClient(server.Client())
	if err := client.ProbePoster(context.Background(), server.URL+"/poster.jpg"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestProbePoster_FallsBackToGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer server.Close()

	client := NewClient(server.Client())
	if err := client.ProbePoster(context.Background(), server.URL); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestProbePoster_Broken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing.jpg":
			w.WriteHeader(http.StatusNotFound)
		case "/page.html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
		}
	}))
	defer server.Close()

	client := NewClient(server.Client())
	if err := client.ProbePoster(context.Background(), server.URL+"/missing.jpg"); err == nil {
		t.Fatal("expected error for 404 poster")
	}
	if err := client.ProbePoster(context.Background(), server.URL+"/page.html"); err == nil {
		t.Fatal("expected error for non-image poster")
	}
	if err := client.ProbePoster(context.Background(), " "); err == nil {
		t.Fatal("expected error for empty url")
	}
}

func TestProbePosters_DedupsAndKeepsOrder(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path == "/bad.jpg" {
			w.WriteHeader(http.StatusGone)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
	}))
	defer server.Close()

	client := NewClient(server.Client())
	results := client.ProbePosters(context.Background(), []string{
		server.URL + "/a.jpg",
		server.URL + "/bad.jpg",
		"",
		server.URL + "/a.jpg",
	})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if hits != 2 {
		t.Fatalf("expected 2 requests, got %d", hits)
	}
	if !results[0].OK() || results[0].URL != server.URL+"/a.jpg" {
		t.Fatalf("unexpected first result: %+v", results[0])
	}
	if results[1].OK() {
		t.Fatalf("expected second poster to be broken: %+v", results[1])
	}
}
