//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

// Notify displays a notification through Notification Center. The icon is
// not supported by osascript.
func Notify(title, body string, opts Options) error {
	script := fmt.Sprintf("display notification %q with title %q subtitle %q", body, title, AppName)
	return exec.Command("osascript", "-e", script).Run()
}
