package extractor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/dealscout/dealscout/internal/domain"
)

// Fetch limits.
const (
	DefaultTimeout = 8 * time.Second
	MaxBodyBytes   = 512 * 1024
	// DefaultConcurrency bounds FetchAll.
	DefaultConcurrency = 4
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Fetcher implements domain.ListingFetcher over HTTP.
type Fetcher struct {
	client      *http.Client
	limiter     *rate.Limiter
	concurrency int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the default client. Its Timeout is left as given.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithRateLimit spaces requests at most every interval.
func WithRateLimit(interval time.Duration) Option {
	return func(f *Fetcher) { f.limiter = rate.NewLimiter(rate.Every(interval), 1) }
}

// WithConcurrency sets how many pages FetchAll reads at once.
func WithConcurrency(n int) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.concurrency = n
		}
	}
}

// NewFetcher returns a fetcher whose requests time out after timeout.
func NewFetcher(timeout time.Duration, opts ...Option) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	f := &Fetcher{
		client:      &http.Client{Timeout: timeout},
		limiter:     rate.NewLimiter(rate.Inf, 1),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ValidateURL accepts absolute http and https URLs only.
func ValidateURL(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, errors.New("URL is required")
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid URL format: %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("only http/https URLs are allowed (got %q)", u.Scheme)
	}
	return u, nil
}

// Fetch downloads a listing page and extracts it. Invalid URLs are errors;
// remote failures come back as a partial result so callers can fall back to
// manual entry.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*domain.ExtractionResult, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		msg := "Could not fetch the listing. Please enter vehicle details manually."
		if isTimeout(err) {
			msg = "Request timed out. The listing site may be blocking automated access."
		}
		return failed("Fetch failed", msg), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failed(fmt.Sprintf("Site returned %d", resp.StatusCode),
			"Could not read the listing. Please enter vehicle details below."), nil
	}
	if !strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return failed("Unexpected content type", "Please enter vehicle details manually."), nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		msg := "Could not fetch the listing. Please enter vehicle details manually."
		if isTimeout(err) {
			msg = "Request timed out. The listing site may be blocking automated access."
		}
		return failed("Fetch failed", msg), nil
	}

	res := Analyze(string(body))
	res.Data.ListingURL = u.String()
	return res, nil
}

// FetchResult pairs a URL with its extraction or the error that stopped it.
type FetchResult struct {
	URL    string                   `json:"url"`
	Result *domain.ExtractionResult `json:"result,omitempty"`
	Err    string                   `json:"error,omitempty"`
}

// FetchAll fetches urls concurrently, preserving input order. Per-URL
// failures are reported in the results; only context cancellation fails
// the batch.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) ([]FetchResult, error) {
	results := make([]FetchResult, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for i, raw := range urls {
		g.Go(func() error {
			res, err := f.Fetch(gctx, raw)
			results[i] = FetchResult{URL: raw, Result: res}
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				results[i].Err = err.Error()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("fetching listings: %w", err)
	}
	return results, nil
}

func failed(errMsg, message string) *domain.ExtractionResult {
	return &domain.ExtractionResult{Success: false, Partial: true, Error: errMsg, Message: message}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne interface{ Timeout() bool }
	return errors.As(err, &ne) && ne.Timeout()
}
