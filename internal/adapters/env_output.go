package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"shellpin/internal/ports"
	"shellpin/internal/types"
)

const envScriptName = "env.sh"
const envJSONName = "environment.json"

// EnvOutputAdapter materializes a composed environment descriptor as a
// sourceable POSIX script and a JSON dump. Emission is deterministic:
// path lists keep composition order and variables are written sorted,
// so identical descriptors produce byte-identical files.
type EnvOutputAdapter struct {
	Dir string
}

func NewEnvOutputAdapter(dir string) EnvOutputAdapter {
	return EnvOutputAdapter{Dir: dir}
}

func (a EnvOutputAdapter) WriteEnvScript(env types.EnvironmentDescriptor) error {
	var b strings.Builder
	b.WriteString("# generated by shellpin; source this file to enter the environment\n")
	if len(env.SearchPath) > 0 {
		fmt.Fprintf(&b, "export PATH=%s\"${PATH:+:$PATH}\"\n", shellQuote(strings.Join(env.SearchPath, ":")))
	}
	if len(env.LibraryPath) > 0 {
		joined := shellQuote(strings.Join(env.LibraryPath, ":"))
		fmt.Fprintf(&b, "export LD_LIBRARY_PATH=%s\"${LD_LIBRARY_PATH:+:$LD_LIBRARY_PATH}\"\n", joined)
		fmt.Fprintf(&b, "export LIBRARY_PATH=%s\"${LIBRARY_PATH:+:$LIBRARY_PATH}\"\n", joined)
	}
	if len(env.IncludePath) > 0 {
		fmt.Fprintf(&b, "export CPATH=%s\"${CPATH:+:$CPATH}\"\n", shellQuote(strings.Join(env.IncludePath, ":")))
	}
	for _, key := range sortedVariableKeys(env.Variables) {
		fmt.Fprintf(&b, "export %s=%s\n", key, shellQuote(env.Variables[key]))
	}
	return a.writeFile(envScriptName, []byte(b.String()))
}

func (a EnvOutputAdapter) WriteEnvJSON(env types.EnvironmentDescriptor, warnings []types.VariableOverrideWarning) error {
	if warnings == nil {
		warnings = []types.VariableOverrideWarning{}
	}
	payload := struct {
		Environment types.EnvironmentDescriptor     `json:"environment"`
		Warnings    []types.VariableOverrideWarning `json:"warnings"`
	}{Environment: env, Warnings: warnings}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal environment json").
			WithCause(err)
	}
	return a.writeFile(envJSONName, append(data, '\n'))
}

func (a EnvOutputAdapter) writeFile(name string, data []byte) error {
	if err := os.MkdirAll(a.Dir, 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	path := filepath.Join(a.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write %s", name)).
			WithCause(err)
	}
	return nil
}

// shellQuote single-quotes a value for POSIX shells.
func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}

func sortedVariableKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

var _ ports.OutputPort = EnvOutputAdapter{}
