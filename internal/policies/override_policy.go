package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"shellpin/internal/types"
)

const (
	OverrideModeWarn   = "warn"
	OverrideModeSilent = "silent"
)

// OverridePolicy decides how scalar variable collisions during
// composition are surfaced. Later inputs always win; the policy only
// controls whether the shadowing is recorded.
type OverridePolicy struct {
	Mode string
}

func NewOverridePolicy(mode string) (OverridePolicy, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = OverrideModeWarn
	}
	if normalized != OverrideModeWarn && normalized != OverrideModeSilent {
		return OverridePolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown override mode: %s", mode))
	}
	return OverridePolicy{Mode: normalized}, nil
}

// ApplyOverride records one collision. The boolean reports whether the
// collision should be surfaced as a warning.
func (p OverridePolicy) ApplyOverride(key string, previous string, next string, origin string) (types.VariableOverrideWarning, bool) {
	warning := types.VariableOverrideWarning{
		Key:      key,
		Previous: previous,
		New:      next,
		Origin:   origin,
	}
	return warning, p.Mode == OverrideModeWarn
}
