package types

// MinRevisionLen is the shortest accepted revision pin. Anything shorter
// is too likely to collide with an unrelated snapshot digest.
const MinRevisionLen = 7

// RevisionHexLen is the length of a full sha256 revision in hex.
const RevisionHexLen = 64

// SnapshotLocator identifies an exact package-universe snapshot: a
// source URL plus the hex digest of the snapshot bytes. The revision may
// be an abbreviated prefix of the full digest; integrity checking
// matches by prefix. Two locators with equal revisions denote identical
// universes.
type SnapshotLocator struct {
	SourceURL string `yaml:"url"`
	Revision  string `yaml:"revision"`
}

func (l SnapshotLocator) String() string {
	return l.SourceURL + "#" + l.Revision
}
