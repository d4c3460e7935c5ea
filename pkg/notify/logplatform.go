package notify

import "log/slog"

// LogPlatform writes notifications to a logger instead of showing them.
// Both calls complete before returning.
type LogPlatform struct {
	log *slog.Logger
}

func NewLogPlatform(log *slog.Logger) *LogPlatform {
	if log == nil {
		log = slog.Default()
	}
	return &LogPlatform{log: log}
}

func (p *LogPlatform) RequestPermission(opts AuthOptions, done func(granted bool, err error)) {
	p.log.Info("notification permission requested",
		"alert", opts.Alert, "sound", opts.Sound, "badge", opts.Badge)
	if done != nil {
		done(true, nil)
	}
}

func (p *LogPlatform) Schedule(n Notification, done func(err error)) {
	p.log.Info("notification",
		"id", n.ID, "title", n.Title, "body", n.Body, "sound", n.Sound.String())
	if done != nil {
		done(nil)
	}
}
