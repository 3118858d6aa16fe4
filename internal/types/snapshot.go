package types

// SnapshotFile is the on-the-wire form of a package universe: a YAML
// document mapping attribute paths to one or more package entries.
type SnapshotFile struct {
	Schema   string                       `yaml:"schema,omitempty"`
	Packages map[string][]SnapshotPackage `yaml:"packages"`
}

// SnapshotPackage is one published version of a package within a
// snapshot. Paths are recorded as exposed by the build-input provider.
type SnapshotPackage struct {
	Version   string            `yaml:"version"`
	Channel   string            `yaml:"channel,omitempty"`
	Binaries  []string          `yaml:"binaries,omitempty"`
	Libraries []string          `yaml:"libraries,omitempty"`
	Headers   []string          `yaml:"headers,omitempty"`
	Env       map[string]string `yaml:"env,omitempty"`
}
