package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"shellpin/internal/core"
)

// Validate parses and statically checks a descriptor file without any
// network access.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	descriptorPath := strings.TrimSpace(req.DescriptorPath)
	if descriptorPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor path is required")
	}
	locator, specifiers, err := s.Descriptor.LoadDescriptor(descriptorPath)
	if err != nil {
		return ValidateResult{}, err
	}
	validator := core.NewDescriptorValidator()
	if err := validator.ValidateDescriptor(ctx, locator, specifiers); err != nil {
		return ValidateResult{}, err
	}
	log.Ctx(ctx).Debug().
		Str("snapshot", locator.String()).
		Int("inputs", len(specifiers)).
		Msg("descriptor validated")
	return ValidateResult{Locator: locator, Inputs: specifiers}, nil
}
