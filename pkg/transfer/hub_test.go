package transfer

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestListener implements StatusListener for testing
type TestListener struct {
	id          string
	callCount   int64
	panicOnCall bool
	mu          sync.Mutex
	events      []FileStatusEvent
}

type FileStatusEvent struct {
	FilePath  string
	OldStatus *TransferStatus
	NewStatus *TransferStatus
	Timestamp time.Time
}

func NewTestListener(id string) *TestListener {
	return &TestListener{id: id}
}

func (tl *TestListener) ID() string {
	return tl.id
}

func (tl *TestListener) OnFileStatusChanged(filePath string, oldStatus, newStatus *TransferStatus) {
	atomic.AddInt64(&tl.callCount, 1)
	if tl.panicOnCall {
		panic(fmt.Sprintf("Test panic in listener %s", tl.id))
	}
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.events = append(tl.events, FileStatusEvent{
		FilePath:  filePath,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		Timestamp: time.Now(),
	})
}

func (tl *TestListener) Calls() int64 {
	return atomic.LoadInt64(&tl.callCount)
}

func (tl *TestListener) Events() []FileStatusEvent {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return append([]FileStatusEvent(nil), tl.events...)
}

func TestStatusHub_Publish(t *testing.T) {
	hub := NewStatusHub(nil)
	a := NewTestListener("a")
	b := NewTestListener("b")
	hub.AddStatusListener(a)
	hub.AddStatusListener(b)

	newStatus := &TransferStatus{FilePath: "x.txt", State: TransferStateActive}
	hub.Publish("x.txt", nil, newStatus)
	hub.Wait()

	for _, l := range []*TestListener{a, b} {
		events := l.Events()
		require.Len(t, events, 1, "listener %s", l.ID())
		assert.Equal(t, "x.txt", events[0].FilePath)
		assert.Nil(t, events[0].OldStatus)
		assert.Same(t, newStatus, events[0].NewStatus)
	}
}

func TestStatusHub_RemoveStatusListener(t *testing.T) {
	hub := NewStatusHub(nil)
	a := NewTestListener("a")
	b := NewTestListener("b")
	hub.AddStatusListener(a)
	hub.AddStatusListener(b)

	assert.True(t, hub.RemoveStatusListener("a"))
	assert.False(t, hub.RemoveStatusListener("a"))
	assert.Equal(t, 1, hub.ListenerCount())

	hub.Publish("x", nil, &TransferStatus{})
	hub.Wait()

	assert.Zero(t, a.Calls())
	assert.Equal(t, int64(1), b.Calls())
}

func TestStatusHub_PanickingListenerIsolated(t *testing.T) {
	hub := NewStatusHub(nil)
	bad := NewTestListener("bad")
	bad.panicOnCall = true
	good := NewTestListener("good")
	hub.AddStatusListener(bad)
	hub.AddStatusListener(good)

	assert.NotPanics(t, func() {
		hub.Publish("x", nil, &TransferStatus{})
		hub.Wait()
	})

	assert.Equal(t, int64(1), bad.Calls())
	assert.Equal(t, int64(1), good.Calls())
}

func TestStatusHub_ConcurrentAddAndPublish(t *testing.T) {
	hub := NewStatusHub(nil)
	const workers = 10

	var wg sync.WaitGroup
	listeners := make([]*TestListener, workers)
	for i := 0; i < workers; i++ {
		listeners[i] = NewTestListener(fmt.Sprintf("l-%d", i))
		wg.Add(2)
		go func(l *TestListener) {
			defer wg.Done()
			hub.AddStatusListener(l)
		}(listeners[i])
		go func(i int) {
			defer wg.Done()
			hub.Publish(fmt.Sprintf("f-%d", i), nil, &TransferStatus{})
		}(i)
	}
	wg.Wait()
	hub.Wait()

	assert.Equal(t, workers, hub.ListenerCount())

	hub.Publish("final", nil, &TransferStatus{})
	hub.Wait()
	for _, l := range listeners {
		assert.GreaterOrEqual(t, l.Calls(), int64(1))
	}
}

func TestStatusHub_PublishAfterCloseDropped(t *testing.T) {
	hub := NewStatusHub(nil)
	l := NewTestListener("l")
	hub.AddStatusListener(l)

	hub.Publish("before", nil, &TransferStatus{})
	hub.Close()
	assert.Equal(t, int64(1), l.Calls())

	hub.Publish("after", nil, &TransferStatus{})
	hub.Close()
	assert.Equal(t, int64(1), l.Calls())
}

func TestStatusHub_CloseWhilePublishing(t *testing.T) {
	hub := NewStatusHub(nil)
	l := NewTestListener("l")
	hub.AddStatusListener(l)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				hub.Publish(fmt.Sprintf("f-%d-%d", i, j), nil, &TransferStatus{})
			}
		}(i)
	}
	hub.Close()
	handled := l.Calls()
	wg.Wait()
	hub.Close()

	// Nothing published once Close began may still reach the listener.
	assert.LessOrEqual(t, handled, int64(20*50))
	assert.Equal(t, handled, l.Calls())
}
