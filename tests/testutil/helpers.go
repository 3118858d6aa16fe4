// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// WriteSnapshot writes raw snapshot bytes into dir and returns the file
// path together with the full content digest, ready to be pinned.
func WriteSnapshot(t *testing.T, dir string, content string) (string, string) {
	t.Helper()
	path := filepath.Join(dir, "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	sum := sha256.Sum256([]byte(content))
	return path, hex.EncodeToString(sum[:])
}

// WriteDescriptor writes descriptor text into dir and returns its path.
func WriteDescriptor(t *testing.T, dir string, content string) string {
	t.Helper()
	path := filepath.Join(dir, "env.pin")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// SampleSnapshot is a small package universe covering a toolchain, a
// CLI utility, and two native libraries.
const SampleSnapshot = `packages:
  toolchain:
    - version: "1.58"
      channel: stable
      binaries: ["/store/toolchain-1.58/bin"]
      libraries: ["/store/toolchain-1.58/lib"]
      env:
        CC: "/store/toolchain-1.58/bin/cc"
  cli-tool:
    - version: "3.4.1"
      binaries: ["/store/cli-tool-3.4.1/bin"]
  libssl:
    - version: "3.0.13"
      libraries: ["/store/libssl-3.0.13/lib"]
      headers: ["/store/libssl-3.0.13/include"]
  pkg-config:
    - version: "0.29.2"
      binaries: ["/store/pkg-config-0.29.2/bin"]
      env:
        PKG_CONFIG_PATH: "/store/libssl-3.0.13/lib/pkgconfig"
`
