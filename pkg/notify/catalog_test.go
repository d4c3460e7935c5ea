package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsComplete(t *testing.T) {
	kinds := AllEventKinds()
	require.Len(t, kinds, 6)

	seen := make(map[string]EventKind)
	for _, kind := range kinds {
		assert.True(t, kind.IsValid(), "kind %d", int(kind))
		assert.NotEmpty(t, kind.Title(), "title for %s", kind)
		assert.NotEmpty(t, kind.BodyTemplate(), "template for %s", kind)
		assert.Equal(t, 2, kind.Placeholders(), "placeholders for %s", kind)

		prev, dup := seen[kind.String()]
		assert.False(t, dup, "%s shares its name with %d", kind, int(prev))
		seen[kind.String()] = kind
	}
}

func TestEventKind_Templates(t *testing.T) {
	tests := []struct {
		kind     EventKind
		name     string
		template string
	}{
		{SendStart, "send_start", "Starting to transfer {$} to {$}..."},
		{SendDone, "send_done", "{$} transferred to {$} is complete"},
		{SendError, "send_error", "{$} transferred to {$} failed"},
		{ReceiveStart, "receive_start", "Starting to receive {$} from {$}..."},
		{ReceiveDone, "receive_done", "{$} received from {$} is complete"},
		{ReceiveError, "receive_error", "{$} received from {$} failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.template, tt.kind.BodyTemplate())
			// Every kind currently shares one title; kept as-is pending product review.
			assert.Equal(t, "File transfer", tt.kind.Title())
		})
	}
}

func TestEventKind_LookupIsStable(t *testing.T) {
	for _, kind := range AllEventKinds() {
		first := kind.BodyTemplate()
		second := kind.BodyTemplate()
		assert.Equal(t, first, second)
		assert.Equal(t, kind.Title(), kind.Title())
	}
}

func TestEventKind_Invalid(t *testing.T) {
	for _, kind := range []EventKind{-1, eventKindCount, 42} {
		assert.False(t, kind.IsValid())
		assert.Empty(t, kind.Title())
		assert.Empty(t, kind.BodyTemplate())
		assert.Zero(t, kind.Placeholders())
	}
	assert.Equal(t, "EventKind(42)", EventKind(42).String())
}

func TestParseEventKind(t *testing.T) {
	for _, kind := range AllEventKinds() {
		got, err := ParseEventKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	_, err := ParseEventKind("send_started")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEventKind)
	assert.Contains(t, err.Error(), "send_started")
}
