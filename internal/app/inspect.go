package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"shellpin/internal/types"
)

// Inspect lists package descriptors in a pinned snapshot, or looks up a
// single attribute path when one is given.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	locator, err := s.requestLocator(req.DescriptorPath, req.URL, req.Revision)
	if err != nil {
		return InspectResult{}, err
	}
	index, err := s.loadIndex(ctx, locator)
	if err != nil {
		return InspectResult{}, err
	}

	attrPath := strings.TrimSpace(req.AttributePath)
	if attrPath != "" {
		descriptor, ok := index.Lookup(attrPath)
		if !ok {
			return InspectResult{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("attribute path not in snapshot: %s", attrPath))
		}
		return InspectResult{Locator: locator, Packages: []types.PackageDescriptor{descriptor}}, nil
	}

	packages := make([]types.PackageDescriptor, 0, index.Len())
	for _, path := range index.Paths() {
		if descriptor, ok := index.Lookup(path); ok {
			packages = append(packages, descriptor)
		}
	}
	return InspectResult{Locator: locator, Packages: packages}, nil
}
