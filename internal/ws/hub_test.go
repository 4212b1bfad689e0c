package ws

import (
	"encoding/json"
	"testing"
	"time"
)

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("expected %d clients, have %d", want, h.ClientCount())
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	a := &Client{hub: h, send: make(chan []byte, 8)}
	b := &Client{hub: h, send: make(chan []byte, 8)}
	h.Register(a)
	h.Register(b)
	waitForClients(t, h, 2)

	h.Broadcast([]byte(`{"type":"resume_processed"}`))

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.send:
			if string(msg) != `{"type":"resume_processed"}` {
				t.Fatalf("unexpected payload: %s", msg)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("client never received the broadcast")
		}
	}
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	slow := &Client{hub: h, send: make(chan []byte)}
	h.Register(slow)
	waitForClients(t, h, 1)

	// An unbuffered, unread send channel forces the drop path.
	h.Broadcast([]byte("x"))
	waitForClients(t, h, 0)
}

func TestNotifyResumeProcessed_NilHubIsNoop(t *testing.T) {
	var h *Hub
	NotifyResumeProcessed(h, ResumeProcessedEvent{ResumeID: "r1"})
	if h.ClientCount() != 0 {
		t.Fatal("nil hub must stay empty")
	}
}

func TestNotifyResumeProcessed_SetsEventType(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	c := &Client{hub: h, send: make(chan []byte, 8)}
	h.Register(c)
	waitForClients(t, h, 1)

	NotifyResumeProcessed(h, ResumeProcessedEvent{
		ResumeID:      "r1",
		CandidateName: "Priya Sharma",
		Department:    "Engineering",
	})

	select {
	case msg := <-c.send:
		var evt ResumeProcessedEvent
		if err := json.Unmarshal(msg, &evt); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if evt.Type != "resume_processed" || evt.ResumeID != "r1" {
			t.Fatalf("unexpected event: %+v", evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event never delivered")
	}
}
