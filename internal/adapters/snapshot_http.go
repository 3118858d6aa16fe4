package adapters

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"shellpin/internal/ports"
	"shellpin/internal/shared"
	"shellpin/internal/types"
)

const defaultFetchTimeout = 60 * time.Second
const defaultFetchRetries = 3
const defaultFetchRetryDelay = 200 * time.Millisecond
const maxFetchRetryDelay = 2 * time.Second
const maxSnapshotBytes = 256 << 20

// SnapshotHTTPAdapter fetches snapshot bytes over HTTP with a
// write-through content-addressed cache. Concurrent fetches for the
// same revision are coalesced through a singleflight group so a cold
// cache never triggers redundant transfers or racing cache writes;
// fetches for different revisions proceed independently.
type SnapshotHTTPAdapter struct {
	Cache      ports.SnapshotCachePort
	Client     *http.Client
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration

	inflight *singleflight.Group
}

func NewSnapshotHTTPAdapter(cache ports.SnapshotCachePort) *SnapshotHTTPAdapter {
	return &SnapshotHTTPAdapter{
		Cache:      cache,
		Client:     http.DefaultClient,
		Timeout:    defaultFetchTimeout,
		Retries:    defaultFetchRetries,
		RetryDelay: defaultFetchRetryDelay,
		inflight:   &singleflight.Group{},
	}
}

func (a *SnapshotHTTPAdapter) Fetch(ctx context.Context, locator types.SnapshotLocator) ([]byte, error) {
	if strings.TrimSpace(locator.SourceURL) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("snapshot url is empty")
	}
	if strings.TrimSpace(locator.Revision) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("snapshot revision is empty")
	}

	result, err, _ := a.inflight.Do(locator.Revision, func() (any, error) {
		if a.Cache != nil {
			if data, ok, err := a.Cache.Get(locator.Revision); err == nil && ok {
				log.Ctx(ctx).Debug().
					Str("revision", shared.ShortRevision(locator.Revision)).
					Msg("snapshot cache hit")
				return data, nil
			}
		}
		data, err := a.download(ctx, locator)
		if err != nil {
			return nil, err
		}
		digest, err := verifySnapshotIntegrity(locator, data)
		if err != nil {
			return nil, err
		}
		if a.Cache != nil {
			if err := a.Cache.Put(locator.Revision, data); err != nil {
				// Cache write failure is not fatal; the bytes are valid.
				log.Ctx(ctx).Warn().Err(err).Msg("snapshot cache write failed")
			}
		}
		log.Ctx(ctx).Info().
			Str("revision", shared.ShortRevision(digest)).
			Int("bytes", len(data)).
			Msg("snapshot fetched")
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func (a *SnapshotHTTPAdapter) download(ctx context.Context, locator types.SnapshotLocator) ([]byte, error) {
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	retries := a.Retries
	if retries < 1 {
		retries = 1
	}
	delay := a.RetryDelay
	if delay <= 0 {
		delay = defaultFetchRetryDelay
	}

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		data, err := a.downloadOnce(ctx, locator, timeout)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if isFetchTimeout(err) || ctx.Err() != nil {
			break
		}
		if attempt < retries {
			log.Ctx(ctx).Debug().
				Int("attempt", attempt).
				Err(err).
				Msg("snapshot fetch retry")
			select {
			case <-ctx.Done():
				return nil, timeoutError(locator, ctx.Err())
			case <-time.After(delay):
			}
			delay *= 2
			if delay > maxFetchRetryDelay {
				delay = maxFetchRetryDelay
			}
		}
	}
	return nil, lastErr
}

func (a *SnapshotHTTPAdapter) downloadOnce(ctx context.Context, locator types.SnapshotLocator, timeout time.Duration) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, locator.SourceURL, nil)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid snapshot url").
			WithCause(err)
	}
	client := a.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return nil, timeoutError(locator, err)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("snapshot fetch failed: " + locator.String()).
			WithCause(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("snapshot fetch failed: " + locator.String()).
			WithCause(shared.HTTPStatusError(resp.StatusCode, locator.SourceURL))
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSnapshotBytes))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return nil, timeoutError(locator, err)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("snapshot fetch failed: " + locator.String()).
			WithCause(err)
	}
	return data, nil
}

func timeoutError(locator types.SnapshotLocator, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeDeadlineExceeded).
		WithMsg("snapshot fetch timed out: " + locator.String()).
		WithCause(cause)
}

func isFetchTimeout(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeDeadlineExceeded
}

var _ ports.SnapshotFetcherPort = (*SnapshotHTTPAdapter)(nil)
