package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shellpin/internal/types"
)

const sampleDescriptor = `# dev environment
snapshot https://snap.example/archive e91ed60

input toolchain
input cli-tool
input libssl@3.0.13
input pkg-config
`

func TestParseDescriptor(t *testing.T) {
	adapter := NewDescriptorFileAdapter()
	locator, specifiers, err := adapter.ParseDescriptor(sampleDescriptor)
	require.NoError(t, err)

	assert.Equal(t, types.SnapshotLocator{
		SourceURL: "https://snap.example/archive",
		Revision:  "e91ed60",
	}, locator)

	require.Len(t, specifiers, 4)
	assert.Equal(t, "toolchain", specifiers[0].AttributePath)
	assert.Equal(t, "cli-tool", specifiers[1].AttributePath)
	assert.Equal(t, types.InputSpecifier{
		AttributePath: "libssl",
		Qualifier:     types.Qualifier{Kind: types.QualifierExact, Value: "3.0.13"},
	}, specifiers[2])
	assert.Equal(t, "pkg-config", specifiers[3].AttributePath)
}

func TestParseDescriptorSyntaxErrors(t *testing.T) {
	adapter := NewDescriptorFileAdapter()
	cases := []struct {
		name string
		text string
		line int
	}{
		{
			name: "unknown directive",
			text: "snapshot https://snap.example/a e91ed60\npackage toolchain\n",
			line: 2,
		},
		{
			name: "snapshot missing revision",
			text: "snapshot https://snap.example/a\n",
			line: 1,
		},
		{
			name: "duplicate snapshot",
			text: "snapshot https://a e91ed60\nsnapshot https://b e91ed60\n",
			line: 2,
		},
		{
			name: "input with spaces",
			text: "snapshot https://a e91ed60\ninput toolchain extras\n",
			line: 2,
		},
		{
			name: "bad specifier",
			text: "snapshot https://a e91ed60\ninput @1.0\n",
			line: 2,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := adapter.ParseDescriptor(tc.text)
			require.Error(t, err)
			var syntax types.DescriptorSyntaxError
			require.ErrorAs(t, err, &syntax)
			assert.Equal(t, tc.line, syntax.Line)
			assert.NotEmpty(t, syntax.Detail)
		})
	}
}

func TestParseDescriptorMissingSnapshotLine(t *testing.T) {
	adapter := NewDescriptorFileAdapter()
	_, _, err := adapter.ParseDescriptor("input toolchain\n")
	require.Error(t, err)
	var syntax types.DescriptorSyntaxError
	require.ErrorAs(t, err, &syntax)
	assert.Contains(t, syntax.Detail, "missing a snapshot line")
}

func TestLoadDescriptor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.pin")
	require.NoError(t, os.WriteFile(path, []byte(sampleDescriptor), 0o644))

	adapter := NewDescriptorFileAdapter()
	locator, specifiers, err := adapter.LoadDescriptor(path)
	require.NoError(t, err)
	assert.Equal(t, "e91ed60", locator.Revision)
	assert.Len(t, specifiers, 4)

	_, _, err = adapter.LoadDescriptor(filepath.Join(dir, "missing.pin"))
	assert.Error(t, err)
}
