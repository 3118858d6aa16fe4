package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"shellpin/internal/core"
	"shellpin/internal/types"
)

// Fetch warms the snapshot cache for a pin without resolving anything.
// The locator comes either from a descriptor file or from an explicit
// url/revision pair.
func (s Service) Fetch(ctx context.Context, req FetchRequest) (FetchResult, error) {
	locator, err := s.requestLocator(req.DescriptorPath, req.URL, req.Revision)
	if err != nil {
		return FetchResult{}, err
	}
	raw, err := s.fetcherFor(locator).Fetch(ctx, locator)
	if err != nil {
		return FetchResult{}, err
	}
	log.Ctx(ctx).Info().
		Str("snapshot", locator.String()).
		Int("bytes", len(raw)).
		Msg("snapshot cached")
	return FetchResult{Locator: locator, Bytes: len(raw)}, nil
}

// requestLocator extracts a validated locator from either source.
func (s Service) requestLocator(descriptorPath string, rawURL string, revision string) (types.SnapshotLocator, error) {
	descriptorPath = strings.TrimSpace(descriptorPath)
	rawURL = strings.TrimSpace(rawURL)
	revision = strings.ToLower(strings.TrimSpace(revision))

	var locator types.SnapshotLocator
	switch {
	case descriptorPath != "":
		parsed, _, err := s.Descriptor.LoadDescriptor(descriptorPath)
		if err != nil {
			return types.SnapshotLocator{}, err
		}
		locator = parsed
	case rawURL != "" && revision != "":
		locator = types.SnapshotLocator{SourceURL: rawURL, Revision: revision}
	default:
		return types.SnapshotLocator{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("either a descriptor path or a url and revision are required")
	}
	if err := core.ValidateLocator(locator); err != nil {
		return types.SnapshotLocator{}, err
	}
	return locator, nil
}
