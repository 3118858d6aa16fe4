package ports

import "shellpin/internal/types"

// OutputPort materializes a composed environment on disk.
type OutputPort interface {
	WriteEnvScript(env types.EnvironmentDescriptor) error
	WriteEnvJSON(env types.EnvironmentDescriptor, warnings []types.VariableOverrideWarning) error
}
