package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/catalogview/internal/catalog"
)

// StatusError is returned when a resource responds with a non-2xx status.
type StatusError struct {
	Resource   string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! Status: %d", e.StatusCode)
}

// Loader fetches the movies and series resources.
type Loader struct {
	moviesSource string
	seriesSource string
	client       *http.Client
	catalogOpts  []catalog.Option
	onFetched    func(resource string)
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient sets the client used for http(s) sources.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) { l.client = c }
}

// WithCatalogOptions passes options through to catalog.Normalize.
func WithCatalogOptions(opts ...catalog.Option) Option {
	return func(l *Loader) { l.catalogOpts = append(l.catalogOpts, opts...) }
}

// WithProgress registers fn to be called after each resource is fetched and
// validated. fn may be called from two goroutines at once.
func WithProgress(fn func(resource string)) Option {
	return func(l *Loader) { l.onFetched = fn }
}

// New creates a Loader. Each source is an http(s) URL, a file:// URL, or a
// local path.
func New(moviesSource, seriesSource string, opts ...Option) *Loader {
	l := &Loader{
		moviesSource: moviesSource,
		seriesSource: seriesSource,
		client:       http.DefaultClient,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches both resources concurrently. Both must succeed; the first
// failure cancels the other fetch and is returned.
func (l *Loader) Load(ctx context.Context) (catalog.MoviesPayload, catalog.SeriesPayload, error) {
	var (
		movies catalog.MoviesPayload
		series catalog.SeriesPayload
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := l.fetchJSON(gctx, "movies", l.moviesSource, &movies); err != nil {
			return err
		}
		if err := movies.Validate(); err != nil {
			return err
		}
		l.fetched("movies")
		return nil
	})
	g.Go(func() error {
		if err := l.fetchJSON(gctx, "series", l.seriesSource, &series); err != nil {
			return err
		}
		if err := series.Validate(); err != nil {
			return err
		}
		l.fetched("series")
		return nil
	})
	if err := g.Wait(); err != nil {
		return catalog.MoviesPayload{}, catalog.SeriesPayload{}, err
	}
	return movies, series, nil
}

// LoadCatalog fetches both resources and returns the normalized catalog.
func (l *Loader) LoadCatalog(ctx context.Context) ([]catalog.Item, error) {
	movies, series, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Normalize(movies, series, l.catalogOpts...), nil
}

func (l *Loader) fetched(resource string) {
	if l.onFetched != nil {
		l.onFetched(resource)
	}
}

func (l *Loader) fetchJSON(ctx context.Context, resource, source string, v any) error {
	body, err := l.open(ctx, resource, source)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s from %s: %w", resource, source, err)
	}
	return nil
}

func (l *Loader) open(ctx context.Context, resource, source string) (io.ReadCloser, error) {
	if source == "" {
		return nil, fmt.Errorf("%s source is not configured", resource)
	}

	u, err := url.Parse(source)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("building %s request: %w", resource, err)
		}
		req.Header.Set("Accept", "application/json")
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", resource, err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, &StatusError{Resource: resource, URL: source, StatusCode: resp.StatusCode}
		}
		return resp.Body, nil
	}

	path := source
	if err == nil && u.Scheme == "file" {
		path = u.Path
	}
	path = strings.TrimSpace(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", resource, err)
	}
	return f, nil
}
