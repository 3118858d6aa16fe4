package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shellpin/internal/types"
)

func testIndex(t *testing.T) *PackageIndex {
	t.Helper()
	content := `packages:
  toolchain:
    - version: "1.58"
      channel: stable
      binaries: ["/store/toolchain/bin"]
  cli-tool:
    - version: "3.4.1"
      binaries: ["/store/cli-tool/bin"]
  libssl:
    - version: "3.0.13"
      libraries: ["/store/libssl/lib"]
      headers: ["/store/libssl/include"]
  pkg-config:
    - version: "0.29.2"
      binaries: ["/store/pkg-config/bin"]
`
	index, err := BuildIndex([]byte(content), "e91ed60")
	require.NoError(t, err)
	return index
}

func spec(path string) types.InputSpecifier {
	return types.InputSpecifier{AttributePath: path}
}

func TestResolvePreservesInputOrder(t *testing.T) {
	resolver := NewResolverCore(testIndex(t))
	specifiers := []types.InputSpecifier{
		spec("toolchain"), spec("cli-tool"), spec("libssl"), spec("pkg-config"),
	}

	resolved, err := resolver.Resolve(t.Context(), specifiers)
	require.NoError(t, err)
	require.Len(t, resolved, 4)
	for i, input := range resolved {
		assert.Equal(t, specifiers[i], input.Specifier)
		assert.Equal(t, specifiers[i].AttributePath, input.Descriptor.AttributePath)
	}
}

func TestResolveCollectsAllFailures(t *testing.T) {
	resolver := NewResolverCore(testIndex(t))
	specifiers := []types.InputSpecifier{
		spec("toolchain"),
		spec("no-such-pkg"),
		{AttributePath: "libssl", Qualifier: types.Qualifier{Kind: types.QualifierExact, Value: "9.9.9"}},
	}

	_, err := resolver.Resolve(t.Context(), specifiers)
	require.Error(t, err)

	var resolution types.ResolutionError
	require.ErrorAs(t, err, &resolution)
	require.Len(t, resolution.Failures, 2)

	var unresolved types.UnresolvedInputError
	require.ErrorAs(t, resolution.Failures[0], &unresolved)
	assert.Equal(t, "no-such-pkg", unresolved.Specifier.AttributePath)

	var mismatch types.VersionMismatchError
	require.ErrorAs(t, resolution.Failures[1], &mismatch)
	assert.Equal(t, "libssl", mismatch.Specifier.AttributePath)
	assert.Equal(t, "3.0.13", mismatch.Found)
}

func TestResolveVersionMismatchReportsFound(t *testing.T) {
	resolver := NewResolverCore(testIndex(t))
	specifiers := []types.InputSpecifier{
		{AttributePath: "toolchain", Qualifier: types.Qualifier{Kind: types.QualifierExact, Value: "9.9.9"}},
	}

	_, err := resolver.Resolve(t.Context(), specifiers)
	require.Error(t, err)

	var mismatch types.VersionMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "1.58", mismatch.Found)
}

func TestResolveRequiresIndex(t *testing.T) {
	resolver := ResolverCore{}
	_, err := resolver.Resolve(t.Context(), []types.InputSpecifier{spec("toolchain")})
	require.Error(t, err)
}

func TestResolveQualifiedInputs(t *testing.T) {
	resolver := NewResolverCore(testIndex(t))
	specifiers := []types.InputSpecifier{
		{AttributePath: "toolchain", Qualifier: types.Qualifier{Kind: types.QualifierChannel, Value: "stable"}},
		{AttributePath: "libssl", Qualifier: types.Qualifier{Kind: types.QualifierPrefix, Value: "3.0"}},
	}

	resolved, err := resolver.Resolve(t.Context(), specifiers)
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "1.58", resolved[0].Descriptor.Version)
	assert.Equal(t, "3.0.13", resolved[1].Descriptor.Version)
}
