package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"shellpin/internal/ports"
	"shellpin/internal/types"
)

// ResolverCore resolves an ordered list of input specifiers against a
// package index. Output order mirrors input order; composition depends
// on that for its conflict tie-breaks.
type ResolverCore struct {
	Index ports.PackageIndexPort
}

func NewResolverCore(index ports.PackageIndexPort) ResolverCore {
	return ResolverCore{Index: index}
}

// Resolve is all-or-nothing: every failing specifier is collected and
// reported together so the caller sees the full set of problems in one
// pass instead of a fix-one, re-run, fix-next cycle.
func (r ResolverCore) Resolve(ctx context.Context, specifiers []types.InputSpecifier) ([]types.ResolvedInput, error) {
	if r.Index == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires a package index")
	}

	resolved := make([]types.ResolvedInput, 0, len(specifiers))
	var failures []error
	for _, specifier := range specifiers {
		descriptor, ok := r.Index.Lookup(specifier.AttributePath)
		if !ok {
			failures = append(failures, types.UnresolvedInputError{Specifier: specifier})
			continue
		}
		if !Satisfies(specifier.Qualifier, descriptor) {
			failures = append(failures, types.VersionMismatchError{
				Specifier: specifier,
				Found:     descriptor.Version,
			})
			continue
		}
		resolved = append(resolved, types.ResolvedInput{
			Specifier:  specifier,
			Descriptor: descriptor,
		})
	}

	if len(failures) > 0 {
		log.Ctx(ctx).Error().
			Int("failed", len(failures)).
			Int("requested", len(specifiers)).
			Msg("resolution failed")
		return nil, types.ResolutionError{Failures: failures}
	}

	log.Ctx(ctx).Debug().Int("resolved", len(resolved)).Msg("resolver completed")
	return resolved, nil
}
