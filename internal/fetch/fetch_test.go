package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Get(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte("<html>ok</html>"))
		case "/missing":
			http.NotFound(w, r)
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	client := New("test-agent/1.0", 5*time.Second, 0)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		body, err := client.Get(ctx, srv.URL+"/ok")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(body) != "<html>ok</html>" {
			t.Errorf("body = %q", body)
		}
		if gotUA != "test-agent/1.0" {
			t.Errorf("User-Agent = %q", gotUA)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := client.Get(ctx, srv.URL+"/missing"); err == nil {
			t.Error("expected error for 404")
		}
	})

	t.Run("server error", func(t *testing.T) {
		if _, err := client.Get(ctx, srv.URL+"/broken"); err == nil {
			t.Error("expected error for 500")
		}
	})

	t.Run("unreachable host", func(t *testing.T) {
		if _, err := client.Get(ctx, "http://127.0.0.1:1/nope"); err == nil {
			t.Error("expected transport error")
		}
	})
}

func TestClient_PolitenessDelay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := New("test", 5*time.Second, 50*time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := client.Get(ctx, srv.URL); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
	}
	// First request is immediate, the following two wait out the delay.
	if elapsed := time.Since(start); elapsed < 100*time.Millisecond {
		t.Errorf("three fetches took %v, want >= 100ms of politeness delay", elapsed)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	client := New("test", 5*time.Second, time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// Burn the initial token so the next call must wait.
	if _, err := client.Get(ctx, "http://127.0.0.1:1/first"); err == nil {
		t.Fatal("expected transport error")
	}
	if _, err := client.Get(ctx, "http://127.0.0.1:1/second"); err == nil {
		t.Error("expected context error while waiting for delay")
	}
}
