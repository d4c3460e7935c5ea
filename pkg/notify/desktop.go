package notify

import (
	"os"
	"runtime"
	"sync/atomic"

	"github.com/gen2brain/beeep"
)

// DesktopPlatform delivers notifications through the desktop notification
// service of the host OS.
type DesktopPlatform struct {
	iconPath string
	denied   atomic.Bool

	// seams for tests
	headless func() bool
	notify   func(title, body, icon string) error
	alert    func(title, body, icon string) error
}

// setAppName tags every later delivery with name. beeep keeps the name
// process-wide, so the last platform constructed wins.
var setAppName = func(name string) {
	beeep.AppName = name
}

// NewDesktopPlatform returns a platform reporting appName to the host and
// using iconPath for every notification. An empty iconPath lets the host
// pick its default.
func NewDesktopPlatform(appName, iconPath string) *DesktopPlatform {
	if appName == "" {
		appName = DefaultAppName
	}
	setAppName(appName)
	return &DesktopPlatform{
		iconPath: iconPath,
		headless: isHeadless,
		notify: func(title, body, icon string) error {
			return beeep.Notify(title, body, icon)
		},
		alert: func(title, body, icon string) error {
			return beeep.Alert(title, body, icon)
		},
	}
}

// RequestPermission grants every style unless there is no display to show
// notifications on. The decision takes effect before RequestPermission
// returns; only done runs asynchronously. Once denied, later deliveries are
// dropped.
func (p *DesktopPlatform) RequestPermission(opts AuthOptions, done func(granted bool, err error)) {
	granted := !p.headless()
	p.denied.Store(!granted)
	if done == nil {
		return
	}
	go done(granted, nil)
}

// Schedule shows n immediately. Alerts with a sound go through beeep.Alert.
func (p *DesktopPlatform) Schedule(n Notification, done func(err error)) {
	denied := p.denied.Load()
	go func() {
		var err error
		if !denied {
			show := p.notify
			if n.Sound == SoundDefault {
				show = p.alert
			}
			err = show(n.Title, n.Body, p.iconPath)
		}
		if done != nil {
			done(err)
		}
	}()
}

// isHeadless reports a Linux session without X11 or Wayland.
func isHeadless() bool {
	return runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == ""
}
