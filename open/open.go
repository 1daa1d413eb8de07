// Package open launches URLs with the system's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Start opens input with the default handler without waiting for it to exit.
func Start(input string) error {
	cmd, err := command(runtime.GOOS, input)
	if err != nil {
		return err
	}
	return cmd.Start()
}

func command(goos, input string) (*exec.Cmd, error) {
	switch goos {
	case "windows":
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
	case "darwin":
		return exec.Command("open", input), nil
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", input), nil
	case "android":
		return exec.Command("termux-open", input), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}
