package policies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOverridePolicy(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		want    string
		wantErr bool
	}{
		{name: "empty defaults to warn", mode: "", want: OverrideModeWarn},
		{name: "warn", mode: "warn", want: OverrideModeWarn},
		{name: "silent", mode: "silent", want: OverrideModeSilent},
		{name: "case insensitive", mode: "WARN", want: OverrideModeWarn},
		{name: "padded", mode: "  silent  ", want: OverrideModeSilent},
		{name: "unknown", mode: "strict", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			policy, err := NewOverridePolicy(tc.mode)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, policy.Mode)
		})
	}
}

func TestApplyOverride(t *testing.T) {
	warn, _ := NewOverridePolicy(OverrideModeWarn)
	warning, surfaced := warn.ApplyOverride("CC", "gcc", "clang", "toolchain")
	assert.True(t, surfaced)
	assert.Equal(t, "CC", warning.Key)
	assert.Equal(t, "gcc", warning.Previous)
	assert.Equal(t, "clang", warning.New)
	assert.Equal(t, "toolchain", warning.Origin)

	silent, _ := NewOverridePolicy(OverrideModeSilent)
	_, surfaced = silent.ApplyOverride("CC", "gcc", "clang", "toolchain")
	assert.False(t, surfaced)
}
