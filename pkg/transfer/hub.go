package transfer

import (
	"log/slog"
	"sync"
)

// StatusListener interface for transfer status events
type StatusListener interface {
	ID() string
	// OnFileStatusChanged is called when an individual file's status changes.
	// oldStatus is nil for a newly tracked transfer.
	OnFileStatusChanged(filePath string, oldStatus, newStatus *TransferStatus)
}

// StatusHub fans status changes out to registered listeners.
type StatusHub struct {
	mu        sync.RWMutex
	listeners []StatusListener
	closed    bool
	wg        sync.WaitGroup
	log       *slog.Logger
}

func NewStatusHub(log *slog.Logger) *StatusHub {
	if log == nil {
		log = slog.Default()
	}
	return &StatusHub{log: log.With("component", "status_hub")}
}

// AddStatusListener adds a status change listener
func (h *StatusHub) AddStatusListener(listener StatusListener) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.listeners = append(h.listeners, listener)
}

// RemoveStatusListener drops the listener with the given id and reports
// whether one was registered.
func (h *StatusHub) RemoveStatusListener(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, l := range h.listeners {
		if l.ID() == id {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount returns the number of registered listeners.
func (h *StatusHub) ListenerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners)
}

// Publish notifies every listener in its own goroutine. A panicking
// listener is logged and does not affect the others. Changes published
// after Close are dropped.
func (h *StatusHub) Publish(filePath string, oldStatus, newStatus *TransferStatus) {
	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		h.log.Debug("status hub closed, dropping change", "file", filePath)
		return
	}
	listenersCopy := make([]StatusListener, len(h.listeners))
	copy(listenersCopy, h.listeners)
	// Add under the read lock so Close cannot start waiting in between.
	h.wg.Add(len(listenersCopy))
	h.mu.RUnlock()

	for _, listener := range listenersCopy {
		go func(l StatusListener) {
			defer h.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					h.log.Error("panic in status listener", "listener", l.ID(), "file", filePath, "panic", r)
				}
			}()
			l.OnFileStatusChanged(filePath, oldStatus, newStatus)
		}(listener)
	}
}

// Wait blocks until every change published so far has been handled.
// It must not run concurrently with Publish; use Close to shut down a hub
// that may still be receiving changes.
func (h *StatusHub) Wait() {
	h.wg.Wait()
}

// Close stops accepting changes and waits for in-flight listeners.
// It is safe to call concurrently with Publish and more than once.
func (h *StatusHub) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	h.wg.Wait()
}
