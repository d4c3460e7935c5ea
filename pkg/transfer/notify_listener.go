package transfer

import (
	"github.com/google/uuid"

	"github.com/rescp17/transferNotify/pkg/notify"
)

// Sender delivers a notification for a transfer event.
// *notify.Dispatcher satisfies it.
type Sender interface {
	Send(kind notify.EventKind, params ...string)
}

// NotificationListener turns transfer status changes into user notifications.
type NotificationListener struct {
	id     string
	sender Sender
}

func NewNotificationListener(sender Sender) *NotificationListener {
	return &NotificationListener{
		id:     uuid.New().String(),
		sender: sender,
	}
}

// ID returns the unique identifier for this listener
func (nl *NotificationListener) ID() string {
	return nl.id
}

// OnFileStatusChanged sends the notification matching the transition, if any.
func (nl *NotificationListener) OnFileStatusChanged(filePath string, oldStatus, newStatus *TransferStatus) {
	kind, ok := EventKindFor(oldStatus, newStatus)
	if !ok {
		return
	}
	nl.sender.Send(kind, newStatus.FileName(), newStatus.PeerName)
}

// EventKindFor maps a status change to the notification it should raise.
// Only the first activation, completion and failure are announced; resuming
// a paused transfer, progress updates and cancellation are not.
func EventKindFor(oldStatus, newStatus *TransferStatus) (notify.EventKind, bool) {
	if newStatus == nil {
		return 0, false
	}
	if oldStatus != nil && oldStatus.State == newStatus.State {
		return 0, false
	}

	send := newStatus.Direction == DirectionSend
	switch newStatus.State {
	case TransferStateActive:
		if oldStatus != nil && oldStatus.State != TransferStatePending {
			return 0, false
		}
		return pick(send, notify.SendStart, notify.ReceiveStart), true
	case TransferStateCompleted:
		return pick(send, notify.SendDone, notify.ReceiveDone), true
	case TransferStateFailed:
		return pick(send, notify.SendError, notify.ReceiveError), true
	default:
		return 0, false
	}
}

func pick(send bool, sendKind, receiveKind notify.EventKind) notify.EventKind {
	if send {
		return sendKind
	}
	return receiveKind
}
