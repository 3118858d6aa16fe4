package adapters

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"shellpin/internal/ports"
)

const defaultIndexCacheSize = 16

// IndexCacheAdapter memoizes built package indexes by revision. Index
// construction is pure, so a cached index is indistinguishable from a
// rebuilt one; the LRU just bounds memory when many pins are in play.
type IndexCacheAdapter struct {
	cache *lru.Cache[string, ports.PackageIndexPort]
}

func NewIndexCacheAdapter(size int) (*IndexCacheAdapter, error) {
	if size <= 0 {
		size = defaultIndexCacheSize
	}
	cache, err := lru.New[string, ports.PackageIndexPort](size)
	if err != nil {
		return nil, err
	}
	return &IndexCacheAdapter{cache: cache}, nil
}

func (a *IndexCacheAdapter) Get(revision string) (ports.PackageIndexPort, bool) {
	return a.cache.Get(revision)
}

func (a *IndexCacheAdapter) Add(revision string, index ports.PackageIndexPort) {
	a.cache.Add(revision, index)
}

var _ ports.IndexCachePort = (*IndexCacheAdapter)(nil)
