package ports

import "shellpin/internal/types"

// PackageIndexPort is the queryable view of one parsed snapshot.
// Read-only after construction.
type PackageIndexPort interface {
	Lookup(attributePath string) (types.PackageDescriptor, bool)
	Paths() []string
	Revision() string
	Len() int
}

// IndexCachePort memoizes built indexes by revision so repeated
// resolutions against the same pin skip re-parsing the snapshot.
type IndexCachePort interface {
	Get(revision string) (PackageIndexPort, bool)
	Add(revision string, index PackageIndexPort)
}
