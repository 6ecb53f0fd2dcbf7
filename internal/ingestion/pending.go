package ingestion

import (
	"context"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
)

// Pending is the completion handle of a submitted reading.
// It resolves exactly once, with the stored reading or the write error.
type Pending struct {
	done    chan struct{}
	reading v1.Reading
	err     error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func resolvedPending(reading v1.Reading, err error) *Pending {
	p := newPending()
	p.resolve(reading, err)
	return p
}

func (p *Pending) resolve(reading v1.Reading, err error) {
	p.reading = reading
	p.err = err
	close(p.done)
}

// Done is closed once the write has finished, successfully or not.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the write finishes or ctx is done. Giving up on the wait
// does not cancel the write.
func (p *Pending) Wait(ctx context.Context) (v1.Reading, error) {
	select {
	case <-p.done:
		return p.reading, p.err
	case <-ctx.Done():
		return v1.Reading{}, ctx.Err()
	}
}
