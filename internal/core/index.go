package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"
	"gopkg.in/yaml.v3"

	"shellpin/internal/ports"
	"shellpin/internal/types"
)

// PackageIndex is the queryable form of one snapshot: a flat, validated
// mapping from attribute path to package descriptor, built once and
// read-only afterwards. Attribute paths are resolved eagerly at build
// time so malformed entries surface here rather than mid-resolution.
type PackageIndex struct {
	revision    string
	descriptors map[string]types.PackageDescriptor
	paths       []string
}

// BuildIndex parses raw snapshot bytes into a PackageIndex. It is a
// pure function over its inputs: no network, no environment access.
// When a package lists several versions the highest one (Debian version
// ordering) becomes the descriptor for its attribute path.
func BuildIndex(raw []byte, revision string) (*PackageIndex, error) {
	var file types.SnapshotFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("snapshot index corrupt: not valid yaml").
			WithCause(err)
	}
	if len(file.Packages) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("snapshot index corrupt: no packages")
	}

	descriptors := make(map[string]types.PackageDescriptor, len(file.Packages))
	for attrPath, entries := range file.Packages {
		attrPath = strings.TrimSpace(attrPath)
		if attrPath == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("snapshot index corrupt: empty attribute path")
		}
		entry, err := selectEntry(attrPath, entries)
		if err != nil {
			return nil, err
		}
		descriptors[attrPath] = types.PackageDescriptor{
			AttributePath: attrPath,
			Version:       entry.Version,
			Channel:       entry.Channel,
			Binaries:      entry.Binaries,
			Libraries:     entry.Libraries,
			Headers:       entry.Headers,
			ExtraEnv:      entry.Env,
		}
	}

	paths := make([]string, 0, len(descriptors))
	for attrPath := range descriptors {
		paths = append(paths, attrPath)
	}
	sort.Strings(paths)

	return &PackageIndex{
		revision:    revision,
		descriptors: descriptors,
		paths:       paths,
	}, nil
}

// selectEntry picks the descriptor for an attribute path. Multiple
// entries are ordered by Debian version semantics; an exact duplicate
// version is a corrupt snapshot.
func selectEntry(attrPath string, entries []types.SnapshotPackage) (types.SnapshotPackage, error) {
	if len(entries) == 0 {
		return types.SnapshotPackage{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("snapshot index corrupt: %s has no entries", attrPath))
	}
	seen := map[string]struct{}{}
	for _, entry := range entries {
		if strings.TrimSpace(entry.Version) == "" {
			return types.SnapshotPackage{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("snapshot index corrupt: %s has an entry without a version", attrPath))
		}
		if _, dup := seen[entry.Version]; dup {
			return types.SnapshotPackage{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("snapshot index corrupt: %s lists version %s twice", attrPath, entry.Version))
		}
		seen[entry.Version] = struct{}{}
	}
	best := entries[0]
	for _, entry := range entries[1:] {
		if compareVersions(entry.Version, best.Version) > 0 {
			best = entry
		}
	}
	return best, nil
}

// compareVersions orders two version strings, preferring Debian version
// semantics and falling back to lexicographic comparison when either
// side does not parse.
func compareVersions(a string, b string) int {
	va, errA := debversion.NewVersion(a)
	vb, errB := debversion.NewVersion(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return va.Compare(vb)
}

// Lookup returns the descriptor for an attribute path, if present.
func (i *PackageIndex) Lookup(attributePath string) (types.PackageDescriptor, bool) {
	descriptor, ok := i.descriptors[attributePath]
	return descriptor, ok
}

// Paths returns all attribute paths in sorted order.
func (i *PackageIndex) Paths() []string {
	return i.paths
}

// Revision returns the revision this index was built from.
func (i *PackageIndex) Revision() string {
	return i.revision
}

// Len returns the number of attribute paths in the index.
func (i *PackageIndex) Len() int {
	return len(i.descriptors)
}

var _ ports.PackageIndexPort = (*PackageIndex)(nil)
