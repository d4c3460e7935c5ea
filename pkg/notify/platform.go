package notify

// Sound selects the sound played with a notification.
type Sound int

const (
	SoundNone Sound = iota
	SoundDefault
)

func (s Sound) String() string {
	switch s {
	case SoundNone:
		return "none"
	case SoundDefault:
		return "default"
	default:
		return "unknown"
	}
}

// AuthOptions lists the alert styles requested from the host.
type AuthOptions struct {
	Alert bool
	Sound bool
	Badge bool
}

// Notification is a single local notification handed to the platform.
// It has no trigger and is shown as soon as the platform accepts it.
type Notification struct {
	ID    string
	Title string
	Body  string
	Sound Sound
}

// Platform is the host notification service.
//
// Both methods return immediately. The completion callback runs on a
// goroutine owned by the platform and may be nil.
type Platform interface {
	RequestPermission(opts AuthOptions, done func(granted bool, err error))
	Schedule(n Notification, done func(err error))
}
