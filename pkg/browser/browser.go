package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener opens a URL in the user's default browser. Injected as an
// interface so the dispatch engine can be tested without side effects.
type Opener interface {
	Open(url string) error
}

type osOpener struct{}

// New returns the Opener for the current operating system.
func New() Opener {
	return osOpener{}
}

func (osOpener) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("browser: open %s: %w", url, err)
	}
	return nil
}
