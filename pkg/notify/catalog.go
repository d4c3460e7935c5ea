package notify

import (
	"errors"
	"fmt"
)

// EventKind identifies a file-transfer lifecycle event that raises a user notification.
type EventKind int

const (
	// SendStart fires when an outgoing file begins transferring.
	SendStart EventKind = iota
	// SendDone fires when an outgoing file has been delivered.
	SendDone
	// SendError fires when an outgoing file could not be delivered.
	SendError
	// ReceiveStart fires when an incoming file begins transferring.
	ReceiveStart
	// ReceiveDone fires when an incoming file has been stored.
	ReceiveDone
	// ReceiveError fires when an incoming file could not be received.
	ReceiveError

	eventKindCount
)

// ErrUnknownEventKind is returned by ParseEventKind for names outside the catalog.
var ErrUnknownEventKind = errors.New("unknown event kind")

const transferTitle = "File transfer"

type entry struct {
	name  string
	title string
	body  string
}

// catalog is positional: one entry per kind, in declaration order.
var catalog = [...]entry{
	{"send_start", transferTitle, "Starting to transfer {$} to {$}..."},
	{"send_done", transferTitle, "{$} transferred to {$} is complete"},
	{"send_error", transferTitle, "{$} transferred to {$} failed"},
	{"receive_start", transferTitle, "Starting to receive {$} from {$}..."},
	{"receive_done", transferTitle, "{$} received from {$} is complete"},
	{"receive_error", transferTitle, "{$} received from {$} failed"},
}

// A kind added without a catalog entry (or the reverse) makes one of these
// array lengths negative and stops the build.
var (
	_ [len(catalog) - int(eventKindCount)]struct{}
	_ [int(eventKindCount) - len(catalog)]struct{}
)

// AllEventKinds returns every kind in declaration order.
func AllEventKinds() []EventKind {
	kinds := make([]EventKind, 0, eventKindCount)
	for k := EventKind(0); k < eventKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// IsValid reports whether k is one of the declared kinds.
func (k EventKind) IsValid() bool {
	return k >= 0 && k < eventKindCount
}

// String returns the snake_case name of the kind, e.g. "send_start".
func (k EventKind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return catalog[k].name
}

// Title returns the notification title for the kind.
func (k EventKind) Title() string {
	if !k.IsValid() {
		return ""
	}
	return catalog[k].title
}

// BodyTemplate returns the raw body template for the kind. Placeholders
// appear in fill order: file name first, then peer name.
func (k EventKind) BodyTemplate() string {
	if !k.IsValid() {
		return ""
	}
	return catalog[k].body
}

// Placeholders returns how many parameters the kind's body template takes.
func (k EventKind) Placeholders() int {
	return CountPlaceholders(k.BodyTemplate())
}

// ParseEventKind resolves a snake_case kind name.
func ParseEventKind(name string) (EventKind, error) {
	for k := EventKind(0); k < eventKindCount; k++ {
		if catalog[k].name == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEventKind, name)
}
