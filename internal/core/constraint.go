package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"

	"shellpin/internal/types"
)

const channelQualifierPrefix = "channel:"

// ParseSpecifier splits a raw "path@qualifier" string into an
// InputSpecifier. Supported qualifiers: an exact version ("gcc@13.2"),
// a version prefix ("gcc@13.*"), or a channel ("gcc@channel:stable").
// A bare attribute path carries no qualifier.
func ParseSpecifier(raw string) (types.InputSpecifier, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.InputSpecifier{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty input specifier")
	}
	attrPath, qualifier, found := strings.Cut(raw, "@")
	attrPath = strings.TrimSpace(attrPath)
	if attrPath == "" {
		return types.InputSpecifier{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid input specifier: %s", raw))
	}
	if !found {
		return types.InputSpecifier{AttributePath: attrPath}, nil
	}

	qualifier = strings.TrimSpace(qualifier)
	if qualifier == "" {
		return types.InputSpecifier{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("input specifier has an empty qualifier: %s", raw))
	}

	if channel, ok := strings.CutPrefix(qualifier, channelQualifierPrefix); ok {
		channel = strings.TrimSpace(channel)
		if channel == "" {
			return types.InputSpecifier{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("input specifier has an empty channel: %s", raw))
		}
		return types.InputSpecifier{
			AttributePath: attrPath,
			Qualifier:     types.Qualifier{Kind: types.QualifierChannel, Value: channel},
		}, nil
	}

	if prefix, ok := strings.CutSuffix(qualifier, "*"); ok {
		prefix = strings.TrimSuffix(prefix, ".")
		if prefix == "" {
			return types.InputSpecifier{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("input specifier has an empty version prefix: %s", raw))
		}
		return types.InputSpecifier{
			AttributePath: attrPath,
			Qualifier:     types.Qualifier{Kind: types.QualifierPrefix, Value: prefix},
		}, nil
	}

	return types.InputSpecifier{
		AttributePath: attrPath,
		Qualifier:     types.Qualifier{Kind: types.QualifierExact, Value: qualifier},
	}, nil
}

// Satisfies reports whether a descriptor meets a specifier's qualifier.
// Exact matches compare under Debian version semantics when both sides
// parse, so "1.0" and "1.0-0" compare equal the way apt would see them.
func Satisfies(qualifier types.Qualifier, descriptor types.PackageDescriptor) bool {
	switch qualifier.Kind {
	case types.QualifierNone:
		return true
	case types.QualifierExact:
		return versionsEqual(descriptor.Version, qualifier.Value)
	case types.QualifierPrefix:
		// Prefixes match on component boundaries so "1" does not match
		// "15.0".
		if descriptor.Version == qualifier.Value {
			return true
		}
		return strings.HasPrefix(descriptor.Version, qualifier.Value+".") ||
			strings.HasPrefix(descriptor.Version, qualifier.Value+"-")
	case types.QualifierChannel:
		return descriptor.Channel == qualifier.Value
	default:
		return false
	}
}

func versionsEqual(a string, b string) bool {
	if a == b {
		return true
	}
	va, errA := debversion.NewVersion(a)
	vb, errB := debversion.NewVersion(b)
	if errA != nil || errB != nil {
		return false
	}
	return va.Equal(vb)
}
