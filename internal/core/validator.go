package core

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"shellpin/internal/shared"
	"shellpin/internal/types"
)

type DescriptorValidator struct{}

func NewDescriptorValidator() DescriptorValidator {
	return DescriptorValidator{}
}

// ValidateDescriptor statically checks a parsed descriptor: locator
// shape, revision pin, and specifier sanity. It needs no network access
// and never touches the snapshot itself.
func (v DescriptorValidator) ValidateDescriptor(ctx context.Context, locator types.SnapshotLocator, specifiers []types.InputSpecifier) error {
	assert.NotEmpty(ctx, locator.SourceURL, "snapshot url must be set")
	assert.NotEmpty(ctx, locator.Revision, "snapshot revision must be set")

	if err := ValidateLocator(locator); err != nil {
		return err
	}
	if len(specifiers) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor names no inputs")
	}
	seen := map[string]struct{}{}
	for _, specifier := range specifiers {
		if _, dup := seen[specifier.AttributePath]; dup {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate input: %s", specifier.AttributePath))
		}
		seen[specifier.AttributePath] = struct{}{}
	}
	return nil
}

// ValidateLocator checks that a locator is well-formed: a parseable
// http(s) or file URL and a hex revision pin of usable length.
func ValidateLocator(locator types.SnapshotLocator) error {
	parsed, err := url.Parse(locator.SourceURL)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid snapshot url: %s", locator.SourceURL)).
			WithCause(err)
	}
	switch parsed.Scheme {
	case "http", "https", "file", "":
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported snapshot url scheme: %s", parsed.Scheme))
	}
	revision := strings.ToLower(strings.TrimSpace(locator.Revision))
	if len(revision) < types.MinRevisionLen || len(revision) > types.RevisionHexLen {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("revision must be %d-%d hex chars: %s", types.MinRevisionLen, types.RevisionHexLen, locator.Revision))
	}
	if !shared.IsHexString(revision) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("revision is not a hex digest: %s", locator.Revision))
	}
	return nil
}
