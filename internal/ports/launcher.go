package ports

import (
	"context"

	"shellpin/internal/types"
)

// SessionLauncherPort spawns a session with the composed environment
// applied. Argv may be empty, in which case an interactive shell is
// started. Process management beyond the spawn is out of core scope.
type SessionLauncherPort interface {
	Launch(ctx context.Context, env types.EnvironmentDescriptor, argv []string) error
}
