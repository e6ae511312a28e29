package hub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

func TestEnsureDownloadsAndCaches(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path != "/org/model/resolve/main/vocab.txt" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte("[PAD]\n[UNK]\n"))
	}))
	defer srv.Close()

	cache, err := NewCache(t.TempDir(), NewClient(srv.URL))
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	paths, err := cache.Ensure(context.Background(), "org/model", "vocab.txt")
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	b, err := os.ReadFile(paths["vocab.txt"])
	if err != nil || string(b) != "[PAD]\n[UNK]\n" {
		t.Fatalf("unexpected artifact content %q err=%v", b, err)
	}

	// Second Ensure must be served from disk.
	if _, err := cache.Ensure(context.Background(), "org/model", "vocab.txt"); err != nil {
		t.Fatalf("ensure cached: %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("expected 1 download, got %d", n)
	}
}

func TestEnsureNotFoundFailsWithoutPartial(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	cache, err := NewCache(dir, NewClient(srv.URL))
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	if _, err := cache.Ensure(context.Background(), "org/model", "model.onnx"); err == nil {
		t.Fatalf("expected error for missing artifact")
	}
	// No partial file may be left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		sub, _ := os.ReadDir(dir + "/" + e.Name())
		for _, f := range sub {
			t.Fatalf("unexpected leftover file %q", f.Name())
		}
	}
}

func TestDownloadRetriesOn5xx(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithTimeout(10*time.Second))
	dest := t.TempDir() + "/config.json"
	if err := client.Download(context.Background(), "org/model", "config.json", dest); err != nil {
		t.Fatalf("download: %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Fatalf("expected 2 attempts, got %d", n)
	}
}

func TestDownloadTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("authorization header = %q", got)
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithToken("tok"))
	dest := t.TempDir() + "/f"
	if err := client.Download(context.Background(), "org/model", "f", dest); err != nil {
		t.Fatalf("download: %v", err)
	}
}
