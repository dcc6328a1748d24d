package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ziadkadry99/catalogview/internal/catalog"
)

func newResourceServer(t *testing.T, movies, series string, moviesStatus, seriesStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/movies.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(moviesStatus)
		w.Write([]byte(movies))
	})
	mux.HandleFunc("/series.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(seriesStatus)
		w.Write([]byte(series))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadCatalogHTTP(t *testing.T) {
	srv := newResourceServer(t,
		`{"Title":["Gamma","Alpha"]}`,
		`{"Series":["Beta | S1"]}`,
		http.StatusOK, http.StatusOK)

	l := New(srv.URL+"/movies.json", srv.URL+"/series.json", WithHTTPClient(srv.Client()))
	items, err := l.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	want := []string{"Alpha", "Beta", "Gamma"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, w := range want {
		if items[i].DisplayTitle != w {
			t.Errorf("item %d: got %q, want %q", i, items[i].DisplayTitle, w)
		}
	}
}

func TestLoadFailsOnStatus(t *testing.T) {
	tests := []struct {
		name         string
		moviesStatus int
		seriesStatus int
		resource     string
	}{
		{"movies 404", http.StatusNotFound, http.StatusOK, "movies"},
		{"series 404", http.StatusOK, http.StatusNotFound, "series"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newResourceServer(t, `{"Title":[]}`, `{"Series":[]}`, tt.moviesStatus, tt.seriesStatus)
			l := New(srv.URL+"/movies.json", srv.URL+"/series.json")

			items, err := l.LoadCatalog(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if items != nil {
				t.Errorf("expected no catalog on failure, got %d items", len(items))
			}
			var se *StatusError
			if !errors.As(err, &se) {
				t.Fatalf("expected *StatusError, got %T: %v", err, err)
			}
			if se.StatusCode != http.StatusNotFound || se.Resource != tt.resource {
				t.Errorf("unexpected status error: %+v", se)
			}
			if se.Error() != "HTTP error! Status: 404" {
				t.Errorf("unexpected message %q", se.Error())
			}
		})
	}
}

func TestLoadMalformedPayload(t *testing.T) {
	srv := newResourceServer(t, `{"Movies":["x"]}`, `{"Series":[]}`, http.StatusOK, http.StatusOK)
	_, _, err := New(srv.URL+"/movies.json", srv.URL+"/series.json").Load(context.Background())
	if !errors.Is(err, catalog.ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}

	srv = newResourceServer(t, `{"Title":[]}`, `not json`, http.StatusOK, http.StatusOK)
	if _, _, err := New(srv.URL+"/movies.json", srv.URL+"/series.json").Load(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoadLocalFiles(t *testing.T) {
	dir := t.TempDir()
	moviesPath := filepath.Join(dir, "movies.json")
	seriesPath := filepath.Join(dir, "series.json")
	if err := os.WriteFile(moviesPath, []byte(`{"Title":["Solo"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(seriesPath, []byte(`{"Series":["Duo | Season 1"]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	items, err := New(moviesPath, "file://"+seriesPath).LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(items) != 2 || items[0].DisplayTitle != "Duo" || items[1].Title != "Solo" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestLoadMissingSource(t *testing.T) {
	if _, _, err := New("", "series.json").Load(context.Background()); err == nil {
		t.Fatal("expected error for empty source")
	}
}

func TestLoadReportsProgress(t *testing.T) {
	srv := newResourceServer(t, `{"Title":["A"]}`, `{"Series":["B"]}`, http.StatusOK, http.StatusOK)

	var mu sync.Mutex
	seen := map[string]bool{}
	l := New(srv.URL+"/movies.json", srv.URL+"/series.json",
		WithHTTPClient(srv.Client()),
		WithProgress(func(resource string) {
			mu.Lock()
			seen[resource] = true
			mu.Unlock()
		}),
	)
	if _, err := l.LoadCatalog(context.Background()); err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if !seen["movies"] || !seen["series"] {
		t.Errorf("expected both resources reported, got %v", seen)
	}
}
