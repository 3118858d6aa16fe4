package adapters

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"shellpin/internal/ports"
	"shellpin/internal/types"
)

// SessionExecAdapter launches a command or interactive shell with the
// composed environment applied on top of the current process
// environment. The core's obligation ends at handing over a fully
// formed descriptor; this adapter only performs the spawn.
type SessionExecAdapter struct {
	Shell string
}

func NewSessionExecAdapter() SessionExecAdapter {
	return SessionExecAdapter{}
}

func (a SessionExecAdapter) Launch(ctx context.Context, env types.EnvironmentDescriptor, argv []string) error {
	if len(argv) == 0 {
		shell := a.Shell
		if shell == "" {
			shell = os.Getenv("SHELL")
		}
		if shell == "" {
			shell = "/bin/sh"
		}
		argv = []string{shell}
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = applyEnvironment(os.Environ(), env)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Ctx(ctx).Info().Str("command", argv[0]).Msg("launching session")
	if err := cmd.Run(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("session command failed: %s", argv[0])).
			WithCause(err)
	}
	return nil
}

// applyEnvironment overlays a descriptor on a base "KEY=VALUE"
// environment: path lists are prepended to their host counterparts,
// scalar variables replace existing values.
func applyEnvironment(base []string, env types.EnvironmentDescriptor) []string {
	merged := map[string]string{}
	order := make([]string, 0, len(base))
	for _, kv := range base {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if _, seen := merged[key]; !seen {
			order = append(order, key)
		}
		merged[key] = value
	}

	prepend := func(key string, paths []string) {
		if len(paths) == 0 {
			return
		}
		joined := strings.Join(paths, ":")
		if existing, ok := merged[key]; ok && existing != "" {
			merged[key] = joined + ":" + existing
		} else {
			merged[key] = joined
			order = append(order, key)
		}
	}
	prepend("PATH", env.SearchPath)
	prepend("LD_LIBRARY_PATH", env.LibraryPath)
	prepend("LIBRARY_PATH", env.LibraryPath)
	prepend("CPATH", env.IncludePath)

	for _, key := range sortedVariableKeys(env.Variables) {
		if _, seen := merged[key]; !seen {
			order = append(order, key)
		}
		merged[key] = env.Variables[key]
	}

	sort.Strings(order)
	out := make([]string, 0, len(order))
	for _, key := range order {
		out = append(out, key+"="+merged[key])
	}
	return out
}

var _ ports.SessionLauncherPort = SessionExecAdapter{}
