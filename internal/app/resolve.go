package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"shellpin/internal/adapters"
	"shellpin/internal/core"
	"shellpin/internal/policies"
	"shellpin/internal/types"
)

// Resolve runs the full pipeline for one descriptor: parse, validate,
// fetch the pinned snapshot, resolve every input, compose the
// environment, and write the materialized outputs. Resolver failures
// abort before composition; no partial environment is ever written.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	descriptorPath := strings.TrimSpace(req.DescriptorPath)
	if descriptorPath == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor path is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	override, err := policies.NewOverridePolicy(req.OverrideMode)
	if err != nil {
		return ResolveResult{}, err
	}

	locator, specifiers, env, warnings, resolved, err := s.resolveDescriptor(ctx, descriptorPath, override)
	if err != nil {
		return ResolveResult{}, err
	}

	output := adapters.NewEnvOutputAdapter(outputDir)
	if err := output.WriteEnvScript(env); err != nil {
		return ResolveResult{}, err
	}
	if err := output.WriteEnvJSON(env, warnings); err != nil {
		return ResolveResult{}, err
	}

	log.Ctx(ctx).Info().
		Str("snapshot", locator.String()).
		Int("inputs", len(specifiers)).
		Int("warnings", len(warnings)).
		Msg("environment resolved")
	return ResolveResult{
		Locator:     locator,
		Inputs:      resolved,
		Environment: env,
		Warnings:    warnings,
	}, nil
}

// resolveDescriptor is the shared descriptor-to-environment path used by
// Resolve and Enter.
func (s Service) resolveDescriptor(ctx context.Context, descriptorPath string, override policies.OverridePolicy) (types.SnapshotLocator, []types.InputSpecifier, types.EnvironmentDescriptor, []types.VariableOverrideWarning, []types.ResolvedInput, error) {
	locator, specifiers, err := s.Descriptor.LoadDescriptor(descriptorPath)
	if err != nil {
		return types.SnapshotLocator{}, nil, types.EnvironmentDescriptor{}, nil, nil, err
	}
	validator := core.NewDescriptorValidator()
	if err := validator.ValidateDescriptor(ctx, locator, specifiers); err != nil {
		return types.SnapshotLocator{}, nil, types.EnvironmentDescriptor{}, nil, nil, err
	}
	index, err := s.loadIndex(ctx, locator)
	if err != nil {
		return types.SnapshotLocator{}, nil, types.EnvironmentDescriptor{}, nil, nil, err
	}
	resolver := core.NewResolverCore(index)
	resolved, err := resolver.Resolve(ctx, specifiers)
	if err != nil {
		return types.SnapshotLocator{}, nil, types.EnvironmentDescriptor{}, nil, nil, err
	}
	composer := core.NewComposerCore(override)
	env, warnings := composer.Compose(ctx, resolved)
	return locator, specifiers, env, warnings, resolved, nil
}
