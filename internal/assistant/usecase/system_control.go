package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkparthk/Buddy-AI/internal/assistant"
	"github.com/pkparthk/Buddy-AI/internal/assistant/pattern"
)

// handleSystemControl launches a local application. Known names are mapped
// to their executables, everything else falls back to "<name>.exe" on the
// assumption the user typed the binary name.
func (uc *implUseCase) handleSystemControl(ctx context.Context, name string) assistant.CommandResult {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return assistant.CommandResult{
			Success: true,
			Message: msgIncompleteQuery,
			Action:  actionIncompleteQuery,
		}
	}

	executable, ok := pattern.Applications[name]
	if !ok {
		executable = name + ".exe"
	}

	if err := uc.launcher.Start(name, executable); err != nil {
		uc.l.Errorf(ctx, "handleSystemControl: start %s (%s): %v", name, executable, err)
		return assistant.CommandResult{
			Success: false,
			Message: fmt.Sprintf("Could not open %s: %v", name, err),
			Action:  actionSystemControl,
		}
	}

	return assistant.CommandResult{
		Success: true,
		Message: fmt.Sprintf("Opening %s", titleCase(name)),
		Action:  actionSystemControl,
	}
}
