package sse

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeramljak/charsibot/internal/testing/leaktest"
)

const testTimeout = 2 * time.Second

func receive(t *testing.T, client *Client) Event {
	t.Helper()
	select {
	case evt, ok := <-client.EventChannel:
		require.True(t, ok, "client channel closed unexpectedly")
		return evt
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func assertNoEvent(t *testing.T, client *Client) {
	t.Helper()
	select {
	case evt := <-client.EventChannel:
		t.Fatalf("unexpected event %q", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func startHub(t *testing.T, broadcastBuffer, clientBuffer int) *Hub {
	t.Helper()
	hub := NewHubWithBuffers(broadcastBuffer, clientBuffer)
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func TestHub_PublishWithNoSubscribers(t *testing.T) {
	hub := startHub(t, 10, 10)

	assert.NotPanics(t, func() {
		hub.Publish("blindbox_redemption", map[string]string{"userId": "u1"})
	})
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_FanOutToAllClients(t *testing.T) {
	hub := startHub(t, 10, 10)
	a := hub.Subscribe(TransportSSE, nil)
	b := hub.Subscribe(TransportWebSocket, nil)
	require.Equal(t, 2, hub.ClientCount())

	hub.Publish("collection_display", "payload")

	for _, c := range []*Client{a, b} {
		evt := receive(t, c)
		assert.Equal(t, "collection_display", evt.Type)
		assert.Equal(t, "payload", evt.Data)
		assert.NotEmpty(t, evt.ID)
		assert.NotZero(t, evt.Timestamp)
	}
}

func TestHub_SlowClientDoesNotAffectOthers(t *testing.T) {
	hub := startHub(t, 10, 1)
	slow := hub.Subscribe(TransportWebSocket, nil)
	fast := hub.Subscribe(TransportSSE, nil)

	for i := 0; i < 3; i++ {
		hub.Publish("blindbox_redemption", i)
		evt := receive(t, fast)
		assert.Equal(t, i, evt.Data)
	}

	// The slow client kept only the first event; the rest were dropped.
	evt := receive(t, slow)
	assert.Equal(t, 0, evt.Data)
	assertNoEvent(t, slow)
}

func TestHub_EventFilter(t *testing.T) {
	hub := startHub(t, 10, 10)
	onlyDisplay := hub.Subscribe(TransportSSE, []string{"collection_display"})
	all := hub.Subscribe(TransportSSE, nil)

	hub.Publish("blindbox_redemption", "r")
	hub.Publish("collection_display", "d")

	assert.Equal(t, "blindbox_redemption", receive(t, all).Type)
	assert.Equal(t, "collection_display", receive(t, all).Type)

	assert.Equal(t, "collection_display", receive(t, onlyDisplay).Type)
	assertNoEvent(t, onlyDisplay)
}

func TestHub_NoReplayForLateSubscribers(t *testing.T) {
	hub := startHub(t, 10, 10)
	early := hub.Subscribe(TransportSSE, nil)

	hub.Publish("blindbox_redemption", "before")
	receive(t, early)

	late := hub.Subscribe(TransportSSE, nil)
	assertNoEvent(t, late)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := startHub(t, 10, 10)
	client := hub.Subscribe(TransportSSE, nil)

	hub.Unsubscribe(client.ID)
	assert.Equal(t, 0, hub.ClientCount())

	_, ok := <-client.EventChannel
	assert.False(t, ok, "channel should be closed")

	assert.NotPanics(t, func() { hub.Unsubscribe(client.ID) })
	assert.NotPanics(t, func() { hub.Publish("blindbox_redemption", nil) })
}

func TestHub_Stop(t *testing.T) {
	hub := NewHubWithBuffers(10, 10)
	hub.Start()
	client := hub.Subscribe(TransportSSE, nil)

	hub.Stop()
	hub.Stop()

	_, ok := <-client.EventChannel
	assert.False(t, ok)
	assert.Equal(t, 0, hub.ClientCount())

	late := hub.Subscribe(TransportSSE, nil)
	_, ok = <-late.EventChannel
	assert.False(t, ok, "subscribing after stop yields a closed channel")
	assert.NotPanics(t, func() { hub.Unsubscribe(late.ID) })
}

func TestHub_StopLeavesNoGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		hub := NewHubWithBuffers(10, 10)
		hub.Start()
		hub.Subscribe(TransportSSE, nil)
		hub.Publish(EventTypeConnected, nil)
		hub.Stop()
	})
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	// Not started, so nothing drains the broadcast queue.
	hub := NewHubWithBuffers(1, 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			hub.Publish("blindbox_redemption", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(testTimeout):
		t.Fatal("Publish blocked on a full queue")
	}
}

func TestFormatSSEMessage(t *testing.T) {
	evt := Event{ID: "abc", Type: "collection_display", Timestamp: 42, Data: map[string]int{"collectionSize": 2}}

	msg, err := FormatSSEMessage(evt)
	require.NoError(t, err)

	lines := strings.Split(string(msg), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "id: abc", lines[0])
	assert.Equal(t, "event: collection_display", lines[1])
	require.True(t, strings.HasPrefix(lines[2], "data: "))
	assert.True(t, strings.HasSuffix(string(msg), "\n\n"))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(lines[2], "data: ")), &decoded))
	assert.Equal(t, "collection_display", decoded["type"])
	assert.Equal(t, map[string]interface{}{"collectionSize": float64(2)}, decoded["data"])
}
