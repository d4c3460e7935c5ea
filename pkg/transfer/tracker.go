package transfer

import (
	"fmt"
	"sync"
	"time"
)

// Tracker holds the status of every known transfer and publishes each
// accepted change to a StatusHub.
type Tracker struct {
	mu        sync.Mutex
	transfers map[string]*TransferStatus
	hub       *StatusHub
	now       func() time.Time
}

func NewTracker(hub *StatusHub) *Tracker {
	if hub == nil {
		hub = NewStatusHub(nil)
	}
	return &Tracker{
		transfers: make(map[string]*TransferStatus),
		hub:       hub,
		now:       time.Now,
	}
}

// Hub returns the hub the tracker publishes to.
func (t *Tracker) Hub() *StatusHub {
	return t.hub
}

// Add starts tracking a pending transfer.
func (t *Tracker) Add(filePath, peerName string, dir Direction, totalBytes int64) (*TransferStatus, error) {
	t.mu.Lock()
	if _, exists := t.transfers[filePath]; exists {
		t.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrTransferExists, filePath)
	}
	status := &TransferStatus{
		FilePath:       filePath,
		PeerName:       peerName,
		Direction:      dir,
		State:          TransferStatePending,
		TotalBytes:     totalBytes,
		LastUpdateTime: t.now(),
	}
	t.transfers[filePath] = status
	snapshot := status.clone()
	t.mu.Unlock()

	t.hub.Publish(filePath, nil, snapshot)
	return snapshot.clone(), nil
}

// Get returns a copy of the transfer's current status.
func (t *Tracker) Get(filePath string) (*TransferStatus, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	status, ok := t.transfers[filePath]
	if !ok {
		return nil, ErrTransferNotFound
	}
	return status.clone(), nil
}

// Remove stops tracking a transfer without publishing anything.
func (t *Tracker) Remove(filePath string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.transfers[filePath]; !ok {
		return ErrTransferNotFound
	}
	delete(t.transfers, filePath)
	return nil
}

// Start moves a pending transfer to active.
func (t *Tracker) Start(filePath string) error {
	return t.transition(filePath, TransferStateActive, func(s *TransferStatus) {
		s.StartTime = s.LastUpdateTime
	})
}

// UpdateProgress records bytes moved so far for an active transfer.
func (t *Tracker) UpdateProgress(filePath string, bytesSent int64) error {
	t.mu.Lock()
	status, ok := t.transfers[filePath]
	if !ok {
		t.mu.Unlock()
		return ErrTransferNotFound
	}
	if status.State != TransferStateActive {
		t.mu.Unlock()
		return fmt.Errorf("%w: progress on %s transfer", ErrInvalidTransition, status.State)
	}
	old := status.clone()
	status.BytesSent = bytesSent
	status.LastUpdateTime = t.now()
	updated := status.clone()
	t.mu.Unlock()

	t.hub.Publish(filePath, old, updated)
	return nil
}

func (t *Tracker) Pause(filePath string) error {
	return t.transition(filePath, TransferStatePaused, nil)
}

func (t *Tracker) Resume(filePath string) error {
	return t.transition(filePath, TransferStateActive, nil)
}

// Complete marks an active transfer as finished.
func (t *Tracker) Complete(filePath string) error {
	return t.transition(filePath, TransferStateCompleted, func(s *TransferStatus) {
		s.BytesSent = s.TotalBytes
		done := s.LastUpdateTime
		s.CompletionTime = &done
	})
}

// Fail marks an active transfer as failed with cause.
func (t *Tracker) Fail(filePath string, cause error) error {
	return t.transition(filePath, TransferStateFailed, func(s *TransferStatus) {
		s.LastError = cause
		done := s.LastUpdateTime
		s.CompletionTime = &done
	})
}

func (t *Tracker) Cancel(filePath string) error {
	return t.transition(filePath, TransferStateCancelled, nil)
}

func (t *Tracker) transition(filePath string, to TransferState, mutate func(*TransferStatus)) error {
	t.mu.Lock()
	status, ok := t.transfers[filePath]
	if !ok {
		t.mu.Unlock()
		return ErrTransferNotFound
	}
	if !status.State.CanTransitionTo(to) {
		from := status.State
		t.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	old := status.clone()
	status.State = to
	status.LastUpdateTime = t.now()
	if mutate != nil {
		mutate(status)
	}
	updated := status.clone()
	t.mu.Unlock()

	t.hub.Publish(filePath, old, updated)
	return nil
}
