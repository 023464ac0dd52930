// Package platform wraps the desktop notification service of each OS.
package platform

// AppName identifies the editor to the notification service.
const AppName = "Easel"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, is an image file shown with the
	// notification where supported.
	IconPath string
}
