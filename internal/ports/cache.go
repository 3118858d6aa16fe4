package ports

// SnapshotCachePort is a content-addressed store of raw snapshot bytes
// keyed by revision. Entries are immutable once fully written; the
// store must tolerate concurrent writers for the same key.
type SnapshotCachePort interface {
	Get(revision string) ([]byte, bool, error)
	Put(revision string, data []byte) error
}
