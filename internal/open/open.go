package open

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ShowFigure opens a rendered figure in $VIEWER, or the platform's default
// opener, and waits for the viewer to return.
func ShowFigure(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("figure not found: %s", path)
	}

	cmd := viewerCommand(os.Getenv("VIEWER"), runtime.GOOS, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("show %s: %w", path, err)
	}
	return nil
}

func viewerCommand(viewer, goos, path string) *exec.Cmd {
	if fields := strings.Fields(viewer); len(fields) > 0 {
		return exec.Command(fields[0], append(fields[1:], path)...)
	}

	switch goos {
	case "darwin":
		// -W waits until the viewer application exits.
		return exec.Command("open", "-W", path)
	case "windows":
		return exec.Command("cmd", "/c", "start", "/wait", "", path)
	default:
		return exec.Command("xdg-open", path)
	}
}
