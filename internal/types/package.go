package types

// PackageDescriptor is the resolved view of one build input within a
// given snapshot. Identity is the attribute path; it carries no meaning
// across different snapshots.
type PackageDescriptor struct {
	AttributePath string            `yaml:"attribute_path"`
	Version       string            `yaml:"version"`
	Channel       string            `yaml:"channel,omitempty"`
	Binaries      []string          `yaml:"binaries,omitempty"`
	Libraries     []string          `yaml:"libraries,omitempty"`
	Headers       []string          `yaml:"headers,omitempty"`
	ExtraEnv      map[string]string `yaml:"env,omitempty"`
}

// Qualifier narrows which descriptor satisfies a specifier: an exact
// version, a version prefix (trailing "*"), or a channel name.
type Qualifier struct {
	Kind  QualifierKind
	Value string
}

// InputSpecifier is a user-supplied request for one build input,
// validated against the package index at resolution time.
type InputSpecifier struct {
	AttributePath string
	Qualifier     Qualifier
}

func (s InputSpecifier) String() string {
	switch s.Qualifier.Kind {
	case QualifierExact:
		return s.AttributePath + "@" + s.Qualifier.Value
	case QualifierPrefix:
		return s.AttributePath + "@" + s.Qualifier.Value + "*"
	case QualifierChannel:
		return s.AttributePath + "@channel:" + s.Qualifier.Value
	default:
		return s.AttributePath
	}
}

// ResolvedInput pairs a specifier with the descriptor it resolved to.
type ResolvedInput struct {
	Specifier  InputSpecifier
	Descriptor PackageDescriptor
}
