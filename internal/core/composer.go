package core

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"shellpin/internal/policies"
	"shellpin/internal/types"
)

// ComposerCore merges the capability sets of resolved inputs into one
// environment descriptor. Composition is total: given well-formed
// inputs every ambiguity degrades to a deterministic tie-break rather
// than an error. Path lists keep first-seen order (earlier inputs take
// search precedence); scalar variables are last-wins.
type ComposerCore struct {
	Override policies.OverridePolicy
}

func NewComposerCore(override policies.OverridePolicy) ComposerCore {
	return ComposerCore{Override: override}
}

// Compose iterates resolved inputs in the given order. Identical paths
// contributed twice are deduplicated at their first occurrence; variable
// collisions are overwritten by the later input and reported as
// warnings in deterministic (input, sorted-key) order.
func (c ComposerCore) Compose(ctx context.Context, resolved []types.ResolvedInput) (types.EnvironmentDescriptor, []types.VariableOverrideWarning) {
	env := types.EnvironmentDescriptor{
		SearchPath:  []string{},
		LibraryPath: []string{},
		IncludePath: []string{},
		Variables:   map[string]string{},
	}
	var warnings []types.VariableOverrideWarning

	seenSearch := map[string]struct{}{}
	seenLibrary := map[string]struct{}{}
	seenInclude := map[string]struct{}{}

	for _, input := range resolved {
		descriptor := input.Descriptor
		env.SearchPath = appendUnique(env.SearchPath, seenSearch, descriptor.Binaries)
		env.LibraryPath = appendUnique(env.LibraryPath, seenLibrary, descriptor.Libraries)
		env.IncludePath = appendUnique(env.IncludePath, seenInclude, descriptor.Headers)

		for _, key := range sortedKeys(descriptor.ExtraEnv) {
			next := descriptor.ExtraEnv[key]
			previous, collided := env.Variables[key]
			env.Variables[key] = next
			if !collided || previous == next {
				continue
			}
			warning, warn := c.Override.ApplyOverride(key, previous, next, descriptor.AttributePath)
			if !warn {
				continue
			}
			warnings = append(warnings, warning)
			log.Ctx(ctx).Warn().
				Str("key", key).
				Str("previous", previous).
				Str("new", next).
				Str("origin", descriptor.AttributePath).
				Msg("environment variable overridden")
		}
	}

	log.Ctx(ctx).Debug().
		Int("inputs", len(resolved)).
		Int("search_paths", len(env.SearchPath)).
		Int("warnings", len(warnings)).
		Msg("composition completed")
	return env, warnings
}

func appendUnique(dst []string, seen map[string]struct{}, paths []string) []string {
	for _, path := range paths {
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		dst = append(dst, path)
	}
	return dst
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
