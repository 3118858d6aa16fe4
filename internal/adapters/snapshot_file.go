package adapters

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"shellpin/internal/ports"
	"shellpin/internal/shared"
	"shellpin/internal/types"
)

// SnapshotFileAdapter fetches snapshot bytes from the local filesystem,
// for file:// locators and offline use. The integrity contract is the
// same as over HTTP: the content digest must match the pin.
type SnapshotFileAdapter struct{}

func NewSnapshotFileAdapter() SnapshotFileAdapter {
	return SnapshotFileAdapter{}
}

func (a SnapshotFileAdapter) Fetch(ctx context.Context, locator types.SnapshotLocator) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := locator.SourceURL
	if parsed, err := url.Parse(path); err == nil && parsed.Scheme == "file" {
		path = parsed.Path
	}
	if strings.TrimSpace(path) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("snapshot path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("snapshot fetch failed: " + locator.String()).
			WithCause(err)
	}
	digest, err := verifySnapshotIntegrity(locator, data)
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().
		Str("revision", shared.ShortRevision(digest)).
		Str("path", path).
		Msg("snapshot read from file")
	return data, nil
}

var _ ports.SnapshotFetcherPort = SnapshotFileAdapter{}
