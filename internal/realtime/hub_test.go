package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestHub_Route_UserRoom(t *testing.T) {
	h := NewHub(nil, newTestLogger(t))

	alice := NewClient("u1")
	bob := NewClient("u2")
	h.Register(alice)
	h.Register(bob)

	env := Envelope{
		Rooms:   []string{UserRoom("u1")},
		Event:   "ticket:issued",
		Payload: json.RawMessage(`{"id":"t1"}`),
	}
	h.Route(env)

	select {
	case got := <-alice.Send:
		assert.Equal(t, "ticket:issued", got.Event)
	default:
		t.Fatal("target client did not receive the envelope")
	}

	select {
	case <-bob.Send:
		t.Fatal("envelope leaked to another user's room")
	default:
	}
}

func TestHub_Route_Broadcast(t *testing.T) {
	h := NewHub(nil, newTestLogger(t))

	alice := NewClient("u1")
	bob := NewClient("u2")
	h.Register(alice)
	h.Register(bob)

	h.Route(Envelope{Rooms: []string{BroadcastRoom}, Event: "event:published"})

	require.Len(t, alice.Send, 1)
	require.Len(t, bob.Send, 1)
}

func TestHub_Route_LaggingClientDoesNotBlock(t *testing.T) {
	h := NewHub(nil, newTestLogger(t))

	slow := NewClient("u1")
	h.Register(slow)

	// Nobody drains Send; once the buffer fills, further envelopes must
	// be dropped without blocking Route.
	for i := 0; i < sendBuffer+5; i++ {
		h.Route(Envelope{Rooms: []string{UserRoom("u1")}, Event: "ticket:issued"})
	}

	assert.Len(t, slow.Send, sendBuffer)
}

func TestHub_Unregister_ClosesSend(t *testing.T) {
	h := NewHub(nil, newTestLogger(t))

	c := NewClient("u1")
	h.Register(c)
	h.Unregister(c)

	_, open := <-c.Send
	assert.False(t, open)

	// A second unregister is a no-op, not a double close.
	h.Unregister(c)

	// Routing after unregister must not deliver anywhere.
	h.Route(Envelope{Rooms: []string{UserRoom("u1")}, Event: "ticket:issued"})
}
