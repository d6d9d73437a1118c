// Package tracker ingests ad delivery events (impressions, clicks) and
// feeds them to an aggregation sink.
package tracker

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/adspace/adspace-cli/internal/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Event is one delivery observation for an ad.
type Event struct {
	AdID string
	Kind string // "impression" or "click"
	Date string // YYYY-MM-DD
}

// Sink receives each event exactly once, in per-ad order.
type Sink func(adID, kind, date string)

// Ingester routes events to a fixed set of workers using consistent
// hashing on the ad ID, guaranteeing per-ad ordering of counter updates.
type Ingester struct {
	workers []chan Event
	sink    Sink
	log     zerolog.Logger
}

// NewIngester creates an Ingester with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewIngester(numWorkers int, sink Sink, log zerolog.Logger) *Ingester {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	ing := &Ingester{
		workers: make([]chan Event, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range ing.workers {
		ing.workers[i] = make(chan Event, channelBuffer)
	}
	return ing
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (ing *Ingester) Start(ctx context.Context) {
	for i, ch := range ing.workers {
		go ing.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its ad.
// Non-blocking up to channelBuffer capacity.
func (ing *Ingester) Enqueue(event Event) {
	ing.workers[ing.shardIndex(event.AdID)] <- event
}

// EnqueueBatch enqueues multiple events preserving per-ad ordering.
func (ing *Ingester) EnqueueBatch(events []Event) {
	for _, e := range events {
		ing.Enqueue(e)
	}
}

// shardIndex maps an ad ID deterministically to a worker index.
func (ing *Ingester) shardIndex(adID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(adID))
	return int(h.Sum32()) % len(ing.workers)
}

func (ing *Ingester) runWorker(ctx context.Context, id int, ch <-chan Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			ing.sink(event.AdID, event.Kind, event.Date)
			metrics.TrackingEventsTotal.WithLabelValues(event.Kind).Inc()
			ing.log.Debug().
				Str("ad_id", event.AdID).
				Str("kind", event.Kind).
				Int("worker_id", id).
				Msg("event ingested")
		}
	}
}
