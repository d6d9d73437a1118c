package tracker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type capture struct {
	mu    sync.Mutex
	byAd  map[string][]string
	total int
}

func newCapture() *capture {
	return &capture{byAd: make(map[string][]string)}
}

func (c *capture) sink(adID, kind, date string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byAd[adID] = append(c.byAd[adID], kind)
	c.total++
}

func (c *capture) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

func waitForEvents(t *testing.T, c *capture, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.count() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d events, got %d", want, c.count())
}

func TestIngester_DeliversAllEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cap := newCapture()
	ing := NewIngester(4, cap.sink, zerolog.Nop())
	ing.Start(ctx)

	events := []Event{
		{AdID: "ad-1", Kind: "impression", Date: "2026-01-01"},
		{AdID: "ad-2", Kind: "impression", Date: "2026-01-01"},
		{AdID: "ad-1", Kind: "click", Date: "2026-01-01"},
		{AdID: "ad-3", Kind: "impression", Date: "2026-01-02"},
	}
	ing.EnqueueBatch(events)

	waitForEvents(t, cap, len(events))
}

func TestIngester_PerAdOrdering(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cap := newCapture()
	ing := NewIngester(3, cap.sink, zerolog.Nop())
	ing.Start(ctx)

	// Interleave two ads; each ad's own sequence must survive intact.
	var events []Event
	for i := 0; i < 20; i++ {
		kind := "impression"
		if i%2 == 1 {
			kind = "click"
		}
		events = append(events, Event{AdID: "ad-a", Kind: kind, Date: "2026-01-01"})
		events = append(events, Event{AdID: "ad-b", Kind: kind, Date: "2026-01-01"})
	}
	ing.EnqueueBatch(events)

	waitForEvents(t, cap, len(events))

	cap.mu.Lock()
	defer cap.mu.Unlock()
	for _, adID := range []string{"ad-a", "ad-b"} {
		got := cap.byAd[adID]
		if len(got) != 20 {
			t.Fatalf("%s: expected 20 events, got %d", adID, len(got))
		}
		for i, kind := range got {
			want := "impression"
			if i%2 == 1 {
				want = "click"
			}
			if kind != want {
				t.Fatalf("%s: event %d out of order: got %s, want %s", adID, i, kind, want)
			}
		}
	}
}

func TestIngester_DefaultWorkerCount(t *testing.T) {
	ing := NewIngester(0, func(string, string, string) {}, zerolog.Nop())
	if len(ing.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(ing.workers))
	}
}
