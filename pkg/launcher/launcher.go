package launcher

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Launcher starts a local application. The strategy differs per OS: Windows
// starts the executable identifier through the shell, macOS goes through
// `open -a` with the human name, Linux execs the name directly.
type Launcher interface {
	Start(name, executable string) error
}

type osLauncher struct{}

// New returns the Launcher for the current operating system.
func New() Launcher {
	return osLauncher{}
}

func (osLauncher) Start(name, executable string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", executable)
	case "darwin":
		cmd = exec.Command("open", "-a", name)
	default:
		cmd = exec.Command(name)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launcher: start %s: %w", name, err)
	}
	return nil
}
