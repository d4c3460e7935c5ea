package notify

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Dispatcher formats transfer events and hands them to a Platform.
//
// A Dispatcher holds no mutable state after construction and is safe for
// concurrent use. Neither Initialize nor Send ever blocks on the platform or
// reports an error: failures are logged and dropped.
type Dispatcher struct {
	platform Platform
	log      *slog.Logger
	config   Config
	newID    func() string
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for permission and delivery results.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(d *Dispatcher) {
		d.config = cfg
	}
}

// WithIDGenerator replaces the UUID generator used for notification ids.
func WithIDGenerator(gen func() string) Option {
	return func(d *Dispatcher) {
		if gen != nil {
			d.newID = gen
		}
	}
}

// NewDispatcher creates a dispatcher delivering through platform.
func NewDispatcher(platform Platform, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		platform: platform,
		log:      slog.Default(),
		config:   DefaultConfig(),
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.With("component", "notify", "app", d.config.AppName)
	return d
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}

// Initialize asks the platform for permission to show notifications.
// The outcome is only logged; Send keeps working either way and the
// platform decides whether anything is shown.
func (d *Dispatcher) Initialize() {
	opts := d.config.AuthOptions()
	d.platform.RequestPermission(opts, func(granted bool, err error) {
		switch {
		case err != nil:
			d.log.Error("notification permission request failed", "error", err)
		case granted:
			d.log.Info("notification permission granted")
		default:
			d.log.Warn("notification permission denied")
		}
	})
}

// Preview returns the message Send would deliver for kind and params.
func (d *Dispatcher) Preview(kind EventKind, params ...string) Message {
	return Format(kind, params...)
}

// Send formats kind with params and schedules it for immediate display.
// It returns as soon as the platform has accepted the request.
func (d *Dispatcher) Send(kind EventKind, params ...string) {
	if !kind.IsValid() {
		d.log.Warn("dropping notification with unknown kind", "kind", int(kind))
		return
	}
	if !d.config.Enabled {
		d.log.Debug("notifications disabled, dropping", "kind", kind.String())
		return
	}

	msg := Format(kind, params...)
	n := Notification{
		ID:    d.newID(),
		Title: msg.Title,
		Body:  msg.Body,
		Sound: SoundNone,
	}
	if d.config.Sound {
		n.Sound = SoundDefault
	}

	log := d.log.With("kind", kind.String(), "id", n.ID)
	d.platform.Schedule(n, func(err error) {
		if err != nil {
			log.Error("failed to deliver notification", "error", err)
			return
		}
		log.Debug("notification delivered")
	})
}

var (
	defaultOnce       sync.Once
	defaultDispatcher *Dispatcher
)

// Default returns the process-wide dispatcher, creating it on first use
// with a DesktopPlatform and DefaultConfig.
func Default() *Dispatcher {
	defaultOnce.Do(func() {
		cfg := DefaultConfig()
		defaultDispatcher = NewDispatcher(NewDesktopPlatform(cfg.AppName, cfg.IconPath), WithConfig(cfg))
	})
	return defaultDispatcher
}

// SetDefault installs d as the process-wide dispatcher. It must run before
// the first call to Default and reports false if that already happened.
func SetDefault(d *Dispatcher) bool {
	installed := false
	defaultOnce.Do(func() {
		defaultDispatcher = d
		installed = true
	})
	return installed
}
