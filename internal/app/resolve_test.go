package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shellpin/internal/types"
	"shellpin/tests/testutil"
)

func writeSampleDescriptor(t *testing.T, dir string) string {
	t.Helper()
	snapshotPath, digest := testutil.WriteSnapshot(t, dir, testutil.SampleSnapshot)
	return testutil.WriteDescriptor(t, dir, fmt.Sprintf(`# development environment
snapshot %s %s

input toolchain
input cli-tool
input libssl@3.0.13
input pkg-config
`, snapshotPath, digest[:12]))
}

func TestResolvePipeline(t *testing.T) {
	dir := t.TempDir()
	descriptorPath := writeSampleDescriptor(t, dir)
	outputDir := filepath.Join(dir, "out")
	service := NewService(filepath.Join(dir, "cache"))

	result, err := service.Resolve(t.Context(), ResolveRequest{
		DescriptorPath: descriptorPath,
		OutputDir:      outputDir,
	})
	require.NoError(t, err)

	require.Len(t, result.Inputs, 4)
	assert.Equal(t, "toolchain", result.Inputs[0].Descriptor.AttributePath)
	assert.Equal(t, "1.58", result.Inputs[0].Descriptor.Version)
	assert.Equal(t, "3.0.13", result.Inputs[2].Descriptor.Version)

	assert.Equal(t, []string{
		"/store/toolchain-1.58/bin",
		"/store/cli-tool-3.4.1/bin",
		"/store/pkg-config-0.29.2/bin",
	}, result.Environment.SearchPath)
	assert.Equal(t, []string{
		"/store/toolchain-1.58/lib",
		"/store/libssl-3.0.13/lib",
	}, result.Environment.LibraryPath)
	assert.Equal(t, []string{"/store/libssl-3.0.13/include"}, result.Environment.IncludePath)
	assert.Equal(t, map[string]string{
		"CC":              "/store/toolchain-1.58/bin/cc",
		"PKG_CONFIG_PATH": "/store/libssl-3.0.13/lib/pkgconfig",
	}, result.Environment.Variables)
	assert.Empty(t, result.Warnings)

	for _, name := range []string{"env.sh", "environment.json"} {
		_, err := os.Stat(filepath.Join(outputDir, name))
		assert.NoError(t, err, name)
	}
}

func TestResolveDeterministic(t *testing.T) {
	dir := t.TempDir()
	descriptorPath := writeSampleDescriptor(t, dir)
	service := NewService(filepath.Join(dir, "cache"))

	var outputs [][]byte
	var results []ResolveResult
	for i := 0; i < 2; i++ {
		outputDir := filepath.Join(dir, fmt.Sprintf("out-%d", i))
		result, err := service.Resolve(t.Context(), ResolveRequest{
			DescriptorPath: descriptorPath,
			OutputDir:      outputDir,
		})
		require.NoError(t, err)
		results = append(results, result)

		data, err := os.ReadFile(filepath.Join(outputDir, "env.sh"))
		require.NoError(t, err)
		outputs = append(outputs, data)
	}

	assert.Empty(t, cmp.Diff(results[0].Environment, results[1].Environment))
	assert.Equal(t, outputs[0], outputs[1])
}

func TestResolveReportsAllFailures(t *testing.T) {
	dir := t.TempDir()
	snapshotPath, digest := testutil.WriteSnapshot(t, dir, testutil.SampleSnapshot)
	descriptorPath := testutil.WriteDescriptor(t, dir, fmt.Sprintf(`snapshot %s %s
input toolchain@9.9.9
input no-such-pkg
input cli-tool
`, snapshotPath, digest[:12]))
	service := NewService(filepath.Join(dir, "cache"))

	_, err := service.Resolve(t.Context(), ResolveRequest{
		DescriptorPath: descriptorPath,
		OutputDir:      filepath.Join(dir, "out"),
	})
	require.Error(t, err)

	var resolution types.ResolutionError
	require.ErrorAs(t, err, &resolution)
	require.Len(t, resolution.Failures, 2)

	var mismatch types.VersionMismatchError
	require.ErrorAs(t, resolution.Failures[0], &mismatch)
	assert.Equal(t, "1.58", mismatch.Found)

	var unresolved types.UnresolvedInputError
	require.ErrorAs(t, resolution.Failures[1], &unresolved)
	assert.Equal(t, "no-such-pkg", unresolved.Specifier.AttributePath)

	// no partial outputs on failure
	_, statErr := os.Stat(filepath.Join(dir, "out", "env.sh"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestResolveRejectsEmptyRequest(t *testing.T) {
	service := NewService(t.TempDir())

	_, err := service.Resolve(t.Context(), ResolveRequest{OutputDir: "out"})
	assert.Error(t, err)

	_, err = service.Resolve(t.Context(), ResolveRequest{DescriptorPath: "env.pin"})
	assert.Error(t, err)
}

type captureLauncher struct {
	env  types.EnvironmentDescriptor
	argv []string
}

func (l *captureLauncher) Launch(_ context.Context, env types.EnvironmentDescriptor, argv []string) error {
	l.env = env
	l.argv = argv
	return nil
}

func TestEnterLaunchesComposedSession(t *testing.T) {
	dir := t.TempDir()
	descriptorPath := writeSampleDescriptor(t, dir)
	launcher := &captureLauncher{}
	service := NewService(filepath.Join(dir, "cache"))
	service.Launcher = launcher

	err := service.Enter(t.Context(), EnterRequest{
		DescriptorPath: descriptorPath,
		Command:        []string{"make", "test"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"make", "test"}, launcher.argv)
	assert.Contains(t, launcher.env.SearchPath, "/store/toolchain-1.58/bin")
}
