package types

// EnvironmentDescriptor is the terminal artifact of composition: ordered
// search paths plus scalar variables, ready to be applied to a session.
// Construction is deterministic given the same ordered resolved inputs.
type EnvironmentDescriptor struct {
	SearchPath  []string          `yaml:"search_path" json:"search_path"`
	LibraryPath []string          `yaml:"library_path" json:"library_path"`
	IncludePath []string          `yaml:"include_path" json:"include_path"`
	Variables   map[string]string `yaml:"variables" json:"variables"`
}

// VariableOverrideWarning records a scalar variable collision during
// composition. Shadowing is expected for some toolchain/library pairs
// and is non-fatal, but must stay observable for debugging.
type VariableOverrideWarning struct {
	Key      string `yaml:"key" json:"key"`
	Previous string `yaml:"previous" json:"previous"`
	New      string `yaml:"new" json:"new"`
	Origin   string `yaml:"origin" json:"origin"`
}
