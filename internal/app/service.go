package app

import (
	"context"
	"net/url"

	"github.com/rs/zerolog/log"

	"shellpin/internal/adapters"
	"shellpin/internal/core"
	"shellpin/internal/ports"
	"shellpin/internal/types"
)

// Service wires the resolver pipeline together. All collaborators are
// explicit port values so tests can swap any of them; there is no
// process-wide state beyond what the injected adapters own.
type Service struct {
	Descriptor  ports.DescriptorPort
	HTTPFetcher ports.SnapshotFetcherPort
	FileFetcher ports.SnapshotFetcherPort
	IndexCache  ports.IndexCachePort
	Launcher    ports.SessionLauncherPort
}

// NewService builds the default wiring with a content-addressed
// snapshot cache under cacheDir.
func NewService(cacheDir string) Service {
	indexCache, err := adapters.NewIndexCacheAdapter(0)
	if err != nil {
		// Only reachable with a negative size, which the default is not.
		panic(err)
	}
	return Service{
		Descriptor:  adapters.NewDescriptorFileAdapter(),
		HTTPFetcher: adapters.NewSnapshotHTTPAdapter(adapters.NewSnapshotCacheAdapter(cacheDir)),
		FileFetcher: adapters.NewSnapshotFileAdapter(),
		IndexCache:  indexCache,
		Launcher:    adapters.NewSessionExecAdapter(),
	}
}

// fetcherFor picks the transport for a locator by URL scheme. Local
// paths and file:// URLs skip the HTTP stack and its snapshot cache.
func (s Service) fetcherFor(locator types.SnapshotLocator) ports.SnapshotFetcherPort {
	parsed, err := url.Parse(locator.SourceURL)
	if err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") {
		return s.HTTPFetcher
	}
	return s.FileFetcher
}

// loadIndex fetches the pinned snapshot and builds (or recalls) its
// package index.
func (s Service) loadIndex(ctx context.Context, locator types.SnapshotLocator) (ports.PackageIndexPort, error) {
	if s.IndexCache != nil {
		if index, ok := s.IndexCache.Get(locator.Revision); ok {
			log.Ctx(ctx).Debug().Str("revision", locator.Revision).Msg("index cache hit")
			return index, nil
		}
	}
	raw, err := s.fetcherFor(locator).Fetch(ctx, locator)
	if err != nil {
		return nil, err
	}
	index, err := core.BuildIndex(raw, locator.Revision)
	if err != nil {
		return nil, err
	}
	if s.IndexCache != nil {
		s.IndexCache.Add(locator.Revision, index)
	}
	return index, nil
}
