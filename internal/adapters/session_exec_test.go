package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shellpin/internal/types"
)

func TestApplyEnvironmentPrependsPaths(t *testing.T) {
	base := []string{"PATH=/usr/bin:/bin", "HOME=/home/dev"}
	env := types.EnvironmentDescriptor{
		SearchPath:  []string{"/opt/toolchain/bin", "/opt/cli/bin"},
		LibraryPath: []string{"/opt/libssl/lib"},
	}

	out := applyEnvironment(base, env)

	assert.Contains(t, out, "PATH=/opt/toolchain/bin:/opt/cli/bin:/usr/bin:/bin")
	assert.Contains(t, out, "LD_LIBRARY_PATH=/opt/libssl/lib")
	assert.Contains(t, out, "LIBRARY_PATH=/opt/libssl/lib")
	assert.Contains(t, out, "HOME=/home/dev")
}

func TestApplyEnvironmentScalarsReplace(t *testing.T) {
	base := []string{"CC=gcc", "LANG=C"}
	env := types.EnvironmentDescriptor{
		Variables: map[string]string{"CC": "clang", "PKG_CONFIG_PATH": "/opt/pc"},
	}

	out := applyEnvironment(base, env)

	assert.Contains(t, out, "CC=clang")
	assert.NotContains(t, out, "CC=gcc")
	assert.Contains(t, out, "PKG_CONFIG_PATH=/opt/pc")
	assert.Contains(t, out, "LANG=C")
}

func TestApplyEnvironmentSortedAndStable(t *testing.T) {
	base := []string{"ZVAR=1", "AVAR=2"}
	env := types.EnvironmentDescriptor{SearchPath: []string{"/opt/bin"}}

	first := applyEnvironment(base, env)
	second := applyEnvironment(base, env)

	assert.Equal(t, first, second)
	assert.IsIncreasing(t, first)
}

func TestApplyEnvironmentEmptyDescriptor(t *testing.T) {
	base := []string{"HOME=/home/dev", "PATH=/usr/bin"}

	out := applyEnvironment(base, types.EnvironmentDescriptor{})

	assert.ElementsMatch(t, base, out)
}
