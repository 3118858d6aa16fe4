package app

import "shellpin/internal/types"

type ResolveRequest struct {
	DescriptorPath string
	OutputDir      string
	OverrideMode   string
}

type ResolveResult struct {
	Locator     types.SnapshotLocator
	Inputs      []types.ResolvedInput
	Environment types.EnvironmentDescriptor
	Warnings    []types.VariableOverrideWarning
}

type EnterRequest struct {
	DescriptorPath string
	Command        []string
	OverrideMode   string
}

type FetchRequest struct {
	DescriptorPath string
	URL            string
	Revision       string
}

type FetchResult struct {
	Locator types.SnapshotLocator
	Bytes   int
}

type InspectRequest struct {
	DescriptorPath string
	URL            string
	Revision       string
	AttributePath  string
}

type InspectResult struct {
	Locator  types.SnapshotLocator
	Packages []types.PackageDescriptor
}

type ValidateRequest struct {
	DescriptorPath string
}

type ValidateResult struct {
	Locator types.SnapshotLocator
	Inputs  []types.InputSpecifier
}
