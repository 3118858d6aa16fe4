package ports

import "shellpin/internal/types"

// DescriptorPort loads and parses environment descriptor files: one
// snapshot locator plus an ordered list of input specifiers.
type DescriptorPort interface {
	ParseDescriptor(text string) (types.SnapshotLocator, []types.InputSpecifier, error)
	LoadDescriptor(path string) (types.SnapshotLocator, []types.InputSpecifier, error)
}
