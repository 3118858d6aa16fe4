package adapters

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"shellpin/internal/ports"
)

// SnapshotCacheAdapter is a content-addressed on-disk cache: one file
// per revision under <dir>/snapshots. Writes go through a temp file and
// an atomic rename, so concurrent invocations on the same host can race
// on the same key without corrupting it (single writer wins, and every
// winner writes identical bytes).
type SnapshotCacheAdapter struct {
	Dir string
}

func NewSnapshotCacheAdapter(dir string) SnapshotCacheAdapter {
	return SnapshotCacheAdapter{Dir: dir}
}

func (a SnapshotCacheAdapter) Get(revision string) ([]byte, bool, error) {
	data, err := os.ReadFile(a.entryPath(revision))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read snapshot cache entry").
			WithCause(err)
	}
	return data, true, nil
}

func (a SnapshotCacheAdapter) Put(revision string, data []byte) error {
	dir := filepath.Join(a.Dir, "snapshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create snapshot cache directory").
			WithCause(err)
	}
	tmp, err := os.CreateTemp(dir, ".snap-*")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create snapshot cache temp file").
			WithCause(err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write snapshot cache entry").
			WithCause(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to close snapshot cache temp file").
			WithCause(err)
	}
	if err := os.Chmod(tmpPath, fs.FileMode(0o644)); err != nil {
		_ = os.Remove(tmpPath)
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to set snapshot cache entry permissions").
			WithCause(err)
	}
	if err := os.Rename(tmpPath, a.entryPath(revision)); err != nil {
		_ = os.Remove(tmpPath)
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to publish snapshot cache entry").
			WithCause(err)
	}
	return nil
}

func (a SnapshotCacheAdapter) entryPath(revision string) string {
	return filepath.Join(a.Dir, "snapshots", fmt.Sprintf("%s.snap", revision))
}

var _ ports.SnapshotCachePort = SnapshotCacheAdapter{}
