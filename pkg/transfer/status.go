package transfer

import (
	"errors"
	"path/filepath"
	"time"
)

// This file defines the status model that drives user notifications.
// A transfer moves through TransferState values; every accepted transition
// is published to the StatusHub so listeners can react to it.

// TransferState represents the current state of a file transfer
type TransferState int

const (
	// TransferStatePending indicates the transfer is queued but not yet started
	TransferStatePending TransferState = iota
	// TransferStateActive indicates the transfer is currently in progress
	TransferStateActive
	// TransferStatePaused indicates the transfer has been paused by user or system
	TransferStatePaused
	// TransferStateCompleted indicates the transfer finished successfully
	TransferStateCompleted
	// TransferStateFailed indicates the transfer failed due to an error
	TransferStateFailed
	// TransferStateCancelled indicates the transfer was cancelled by user
	TransferStateCancelled
)

// String returns a human-readable string representation of the transfer state
func (ts TransferState) String() string {
	switch ts {
	case TransferStatePending:
		return "pending"
	case TransferStateActive:
		return "active"
	case TransferStatePaused:
		return "paused"
	case TransferStateCompleted:
		return "completed"
	case TransferStateFailed:
		return "failed"
	case TransferStateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsTerminal returns true if the transfer state is final (completed, failed, or cancelled)
func (ts TransferState) IsTerminal() bool {
	return ts == TransferStateCompleted || ts == TransferStateFailed || ts == TransferStateCancelled
}

// CanTransitionTo checks if a state transition is valid
func (ts TransferState) CanTransitionTo(newState TransferState) bool {
	if ts.IsTerminal() {
		return false
	}

	switch ts {
	case TransferStatePending:
		return newState == TransferStateActive || newState == TransferStateCancelled
	case TransferStateActive:
		return newState == TransferStatePaused || newState == TransferStateCompleted ||
			newState == TransferStateFailed || newState == TransferStateCancelled
	case TransferStatePaused:
		return newState == TransferStateActive || newState == TransferStateCancelled
	default:
		return false
	}
}

// Direction tells whether this device is sending or receiving a file.
type Direction int

const (
	DirectionSend Direction = iota
	DirectionReceive
)

func (d Direction) String() string {
	switch d {
	case DirectionSend:
		return "send"
	case DirectionReceive:
		return "receive"
	default:
		return "unknown"
	}
}

// TransferStatus is a snapshot of one file transfer.
type TransferStatus struct {
	FilePath  string        `json:"file_path"`
	PeerName  string        `json:"peer_name"`
	Direction Direction     `json:"direction"`
	State     TransferState `json:"state"`

	BytesSent  int64 `json:"bytes_sent"`
	TotalBytes int64 `json:"total_bytes"`

	StartTime      time.Time  `json:"start_time"`
	LastUpdateTime time.Time  `json:"last_update_time"`
	CompletionTime *time.Time `json:"completion_time,omitempty"`

	LastError error `json:"-"`
}

// FileName returns the base name of the transferred file.
func (ts *TransferStatus) FileName() string {
	return filepath.Base(ts.FilePath)
}

// GetProgressPercentage calculates the completion percentage (0-100)
func (ts *TransferStatus) GetProgressPercentage() float64 {
	if ts.TotalBytes == 0 {
		return 0.0
	}
	return float64(ts.BytesSent) / float64(ts.TotalBytes) * 100.0
}

func (ts *TransferStatus) clone() *TransferStatus {
	c := *ts
	if ts.CompletionTime != nil {
		t := *ts.CompletionTime
		c.CompletionTime = &t
	}
	return &c
}

var (
	ErrTransferNotFound  = errors.New("transfer not found")
	ErrTransferExists    = errors.New("transfer already tracked")
	ErrInvalidTransition = errors.New("invalid state transition")
)
