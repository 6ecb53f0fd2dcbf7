package ingestion

import (
	"context"
	"sync"
	"time"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
	"github.com/Schnee111/smart-city-monitoring-system/internal/core/partition"
)

const (
	DefaultWorkers        = 4
	DefaultQueueSize      = 1024
	DefaultEnqueueTimeout = 250 * time.Millisecond
)

type job struct {
	ctx        context.Context
	reading    v1.Reading
	pending    *Pending
	enqueuedAt time.Time
}

// dispatcher runs async writes on a fixed set of lanes. A sensor always maps
// to the same lane, so its async writes apply in submission order while
// different sensors proceed in parallel.
type dispatcher struct {
	lanes   []chan job
	handle  func(job)
	maxWait time.Duration

	mu      sync.Mutex
	closed  bool
	closing chan struct{}
	senders sync.WaitGroup

	workers   sync.WaitGroup
	closeOnce sync.Once
	drained   chan struct{}
}

func newDispatcher(workers, queueSize int, maxWait time.Duration, handle func(job)) *dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if maxWait <= 0 {
		maxWait = DefaultEnqueueTimeout
	}

	// Each lane gets its share of the total buffer.
	perLane := queueSize / workers
	if perLane < 1 {
		perLane = 1
	}

	d := &dispatcher{
		lanes:   make([]chan job, workers),
		handle:  handle,
		maxWait: maxWait,
		closing: make(chan struct{}),
		drained: make(chan struct{}),
	}
	d.workers.Add(workers)
	for i := range d.lanes {
		d.lanes[i] = make(chan job, perLane)
		go func(lane <-chan job) {
			defer d.workers.Done()
			for j := range lane {
				d.handle(j)
			}
		}(d.lanes[i])
	}
	return d
}

// enqueue waits at most maxWait for room in the sensor's lane. It fails with
// ErrQueueFull when the wait runs out, ErrWriterClosed once close has begun,
// or ctx.Err() if the caller gives up first.
func (d *dispatcher) enqueue(ctx context.Context, j job) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrWriterClosed
	}
	d.senders.Add(1)
	d.mu.Unlock()
	defer d.senders.Done()

	lane := d.lanes[partition.Lane(j.reading.SensorID, len(d.lanes))]

	// Fast path: room in the lane.
	select {
	case lane <- j:
		return nil
	default:
	}

	timer := time.NewTimer(d.maxWait)
	defer timer.Stop()

	select {
	case lane <- j:
		return nil
	case <-d.closing:
		return ErrWriterClosed
	case <-timer.C:
		return ErrQueueFull
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close stops intake and waits for queued jobs to drain, or for ctx.
// Senders still waiting for room are released with ErrWriterClosed; lanes are
// closed only after the last of them has returned.
func (d *dispatcher) close(ctx context.Context) error {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.closing)
		d.mu.Unlock()

		go func() {
			d.senders.Wait()
			for _, lane := range d.lanes {
				close(lane)
			}
			d.workers.Wait()
			close(d.drained)
		}()
	})

	select {
	case <-d.drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
