package events

import (
	"testing"
	"time"
)

func TestPublishReachesSubscriber(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ch, cancel := hub.Subscribe(0)
	defer cancel()

	hub.Publish(Event{
		Type:     EventCardChanged,
		Action:   ActionCreated,
		BoardID:  1,
		EntityID: 42,
	})

	select {
	case event := <-ch:
		if event.Type != EventCardChanged {
			t.Errorf("Expected card_changed, got %s", event.Type)
		}
		if event.EntityID != 42 {
			t.Errorf("Expected entity 42, got %d", event.EntityID)
		}
		if event.SequenceID != 1 {
			t.Errorf("Expected sequence 1, got %d", event.SequenceID)
		}
		if event.Timestamp.IsZero() {
			t.Error("Event should carry a timestamp")
		}
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for event")
	}
}

func TestBoardFilter(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	filtered, cancelFiltered := hub.Subscribe(2)
	defer cancelFiltered()
	all, cancelAll := hub.Subscribe(0)
	defer cancelAll()

	hub.Publish(Event{Type: EventCardChanged, Action: ActionCreated, BoardID: 1})
	hub.Publish(Event{Type: EventCardChanged, Action: ActionCreated, BoardID: 2})

	// The unfiltered subscriber sees both
	for i := 0; i < 2; i++ {
		select {
		case <-all:
		case <-time.After(time.Second):
			t.Fatal("Timed out waiting for unfiltered event")
		}
	}

	// The filtered subscriber sees only board 2
	select {
	case event := <-filtered:
		if event.BoardID != 2 {
			t.Errorf("Expected board 2, got %d", event.BoardID)
		}
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for filtered event")
	}
	select {
	case event := <-filtered:
		t.Errorf("Unexpected extra event for board %d", event.BoardID)
	default:
	}
}

func TestSequenceIDsIncrease(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ch, cancel := hub.Subscribe(0)
	defer cancel()

	for i := 0; i < 3; i++ {
		hub.Publish(Event{Type: EventBoardChanged, Action: ActionUpdated, BoardID: 1})
	}

	var last int64
	for i := 0; i < 3; i++ {
		select {
		case event := <-ch:
			if event.SequenceID <= last {
				t.Errorf("Sequence id %d should exceed %d", event.SequenceID, last)
			}
			last = event.SequenceID
		case <-time.After(time.Second):
			t.Fatal("Timed out waiting for event")
		}
	}
}

func TestSlowSubscriberDropsEvents(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	_, cancel := hub.Subscribe(0)
	defer cancel()

	// Fill the buffer and then some; nothing reads the channel
	total := defaultSubscriberBuffer + 5
	for i := 0; i < total; i++ {
		hub.Publish(Event{Type: EventCardChanged, Action: ActionUpdated, BoardID: 1})
	}

	snap := hub.Metrics().Snapshot()
	if snap.EventsPublished != int64(total) {
		t.Errorf("Expected %d published, got %d", total, snap.EventsPublished)
	}
	if snap.EventsDropped != 5 {
		t.Errorf("Expected 5 dropped, got %d", snap.EventsDropped)
	}
}

func TestCancelRemovesSubscriber(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ch, cancel := hub.Subscribe(0)

	if got := hub.Metrics().Snapshot().Subscribers; got != 1 {
		t.Errorf("Expected 1 subscriber, got %d", got)
	}

	cancel()
	// Cancel is safe to call twice
	cancel()

	if got := hub.Metrics().Snapshot().Subscribers; got != 0 {
		t.Errorf("Expected 0 subscribers after cancel, got %d", got)
	}

	// The channel is closed so consumers can exit their loops
	if _, open := <-ch; open {
		t.Error("Channel should be closed after cancel")
	}

	// Publishing after cancel must not panic
	hub.Publish(Event{Type: EventCardChanged, Action: ActionDeleted, BoardID: 1})
}

func TestNilPublisherHelper(t *testing.T) {
	t.Parallel()

	// Must not panic
	Publish(nil, Event{Type: EventBoardChanged, Action: ActionCreated, BoardID: 1})

	hub := NewHub()
	ch, cancel := hub.Subscribe(0)
	defer cancel()

	Publish(hub, Event{Type: EventBoardChanged, Action: ActionCreated, BoardID: 1})
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("Helper should forward to a non-nil publisher")
	}
}
