package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"shellpin/internal/policies"
)

// Enter resolves a descriptor and launches a session with the composed
// environment applied. An empty command starts an interactive shell.
func (s Service) Enter(ctx context.Context, req EnterRequest) error {
	descriptorPath := strings.TrimSpace(req.DescriptorPath)
	if descriptorPath == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor path is required")
	}
	if s.Launcher == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no session launcher configured")
	}
	override, err := policies.NewOverridePolicy(req.OverrideMode)
	if err != nil {
		return err
	}
	_, _, env, _, _, err := s.resolveDescriptor(ctx, descriptorPath, override)
	if err != nil {
		return err
	}
	return s.Launcher.Launch(ctx, env, req.Command)
}
