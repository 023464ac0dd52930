//go:build linux

package platform

import (
	"github.com/godbus/dbus/v5"
)

const (
	notifyDest   = "org.freedesktop.Notifications"
	notifyPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod = "org.freedesktop.Notifications.Notify"
	// expireMillis keeps the bubble up long enough to read a file path.
	expireMillis = int32(5000)
)

// Notify sends a desktop notification over the session bus.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	hints := map[string]dbus.Variant{
		"category": dbus.MakeVariant("transfer.complete"),
	}
	call := conn.Object(notifyDest, notifyPath).Call(notifyMethod, 0,
		AppName, uint32(0), opts.IconPath, title, body, []string{}, hints, expireMillis)
	return call.Err
}
