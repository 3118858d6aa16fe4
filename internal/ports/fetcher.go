package ports

import (
	"context"

	"shellpin/internal/types"
)

// SnapshotFetcherPort retrieves raw snapshot bytes for a locator.
// Implementations must be idempotent: a cache hit bypasses the network,
// and concurrent fetches for the same revision are coalesced.
type SnapshotFetcherPort interface {
	Fetch(ctx context.Context, locator types.SnapshotLocator) ([]byte, error)
}
