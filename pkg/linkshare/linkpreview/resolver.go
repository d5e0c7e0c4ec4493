package linkpreview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds the single metadata fetch
const DefaultTimeout = 5 * time.Second

// maxBodyBytes caps how much of a page is read looking for metadata
const maxBodyBytes = 1 << 20

var errNoMetadata = errors.New("page has no preview metadata")

const userAgent = "Mozilla/5.0 (compatible; LinkShareBot/1.0; +https://github.com/syedhamzaalinaqvi/linkshare)"

// Resolver fetches link previews. It holds no mutable state of its own, so
// one Resolver can serve concurrent requests.
type Resolver struct {
	client  *http.Client
	timeout time.Duration
	cache   Cache
	logger  *zap.Logger
}

// ResolverOption configures a Resolver
type ResolverOption func(*Resolver)

// WithHTTPClient replaces the client used for fetches
func WithHTTPClient(c *http.Client) ResolverOption {
	return func(r *Resolver) { r.client = c }
}

// WithTimeout sets the fetch timeout
func WithTimeout(d time.Duration) ResolverOption {
	return func(r *Resolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithCache enables caching of fetched previews
func WithCache(c Cache) ResolverOption {
	return func(r *Resolver) { r.cache = c }
}

// WithLogger sets the logger used to record absorbed failures
func WithLogger(l *zap.Logger) ResolverOption {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver creates a Resolver
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		client:  &http.Client{},
		timeout: DefaultTimeout,
		cache:   NopCache{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns a preview for url. It never fails: any fetch or parse
// problem yields the default preview with Source set to SourceFallback.
func (r *Resolver) Resolve(ctx context.Context, url string) Result {
	if p, ok := r.cache.Get(ctx, url); ok {
		return Result{Preview: p, Source: SourceCache}
	}

	p, err := r.fetch(ctx, url)
	if err != nil {
		r.logger.Debug("link preview fell back to defaults",
			zap.String("url", url),
			zap.Error(err),
		)
		return fallback()
	}

	r.cache.Set(ctx, url, p)
	return Result{Preview: p, Source: SourceFetched}
}

func (r *Resolver) fetch(ctx context.Context, url string) (Preview, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Preview{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := r.client.Do(req)
	if err != nil {
		return Preview{}, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Preview{}, fmt.Errorf("fetch: unexpected status %d", resp.StatusCode)
	}

	md, err := parseMetadata(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Preview{}, fmt.Errorf("parse: %w", err)
	}

	p, ok := md.preview()
	if !ok {
		return Preview{}, errNoMetadata
	}
	return p, nil
}
