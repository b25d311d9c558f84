package chart

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Show opens a rendered chart in the desktop's default image viewer.
// It returns once the viewer has been started.
func Show(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return cmd.Process.Release()
}
