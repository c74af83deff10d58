package dataset

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	minoisehttp "github.com/handiism/minoise/internal/http"
	"github.com/handiism/minoise/internal/logging"
	"github.com/handiism/minoise/internal/model"
)

// RetryPolicy controls how HTTPSource retries failed fetches.
//
// The wait before attempt n+1 is Cooldown * Exponent^n.
type RetryPolicy struct {
	MaxRetries int
	Cooldown   time.Duration
	Exponent   float64
}

// DefaultRetryPolicy returns the policy used when none is configured.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		Cooldown:   200 * time.Millisecond,
		Exponent:   4.0,
	}
}

// HTTPSource fetches assets from <BaseURL>/<asset name>.
type HTTPSource struct {
	BaseURL string
	Retry   RetryPolicy

	client *minoisehttp.Client
}

// NewHTTPSource creates an HTTPSource using the default client.
func NewHTTPSource(baseURL string, retry RetryPolicy) *HTTPSource {
	return NewHTTPSourceWith(baseURL, retry, minoisehttp.NewClient())
}

// NewHTTPSourceWith creates an HTTPSource with a specific client.
func NewHTTPSourceWith(baseURL string, retry RetryPolicy, client *minoisehttp.Client) *HTTPSource {
	if retry.MaxRetries < 1 {
		retry.MaxRetries = 1
	}
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Retry:   retry,
		client:  client,
	}
}

// URL returns the asset URL for p.
func (s *HTTPSource) URL(p model.Projection) string {
	return s.BaseURL + "/" + p.AssetName()
}

// Fetch implements Source. Not-found responses fail immediately; other
// failures are retried according to the policy.
func (s *HTTPSource) Fetch(ctx context.Context, p model.Projection) ([]byte, error) {
	url := s.URL(p)

	var lastErr error
	for tries := 0; tries < s.Retry.MaxRetries; tries++ {
		data, err := s.client.Get(ctx, url)
		if err == nil {
			return data, nil
		}
		lastErr = err

		var statusErr *minoisehttp.StatusError
		if errors.As(err, &statusErr) {
			if statusErr.Code == http.StatusNotFound {
				return nil, errors.Mark(errors.Wrapf(err, "fetch %s", url), ErrAssetNotFound)
			}
			if !statusErr.Temporary() {
				break
			}
		}
		if ctx.Err() != nil || tries == s.Retry.MaxRetries-1 {
			break
		}

		logging.Warnw("Dataset fetch failed, retrying",
			"url", url,
			"attempt", tries+1,
			"max", s.Retry.MaxRetries,
			"error", err)
		s.waitForRetry(ctx, tries)
	}

	return nil, errors.Wrapf(lastErr, "fetch %s", url)
}

// Describe implements Source.
func (s *HTTPSource) Describe() string {
	return s.BaseURL
}

func (s *HTTPSource) waitForRetry(ctx context.Context, tries int) {
	cooldown := float64(s.Retry.Cooldown) * math.Pow(s.Retry.Exponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown)):
	}
}
