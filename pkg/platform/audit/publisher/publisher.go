// Package publisher delivers audit events to a store, synchronously by
// default or through a buffered channel when loss of the final few events on
// crash is an acceptable trade for not blocking the request path.
package publisher

import (
	"context"
	"sync"

	"idverify/pkg/domain"
	audit "idverify/pkg/platform/audit"
)

// Publisher emits audit events to an audit.Store.
type Publisher struct {
	store audit.Store

	inbox chan audit.Event
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithAsyncBuffer switches the publisher to asynchronous delivery through a
// channel of the given capacity. Emit never blocks while the buffer has room.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		p.inbox = make(chan audit.Event, size)
	}
}

// NewPublisher creates a publisher writing to the given store.
func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}

	if p.inbox != nil {
		p.wg.Add(1)
		go p.drain()
	}

	return p
}

// Emit delivers an event. In sync mode the store write happens inline and its
// error is returned; in async mode the event is queued and Emit only fails
// when the publisher is already closed.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}

	if p.inbox == nil {
		return p.store.Append(ctx, event)
	}

	select {
	case p.inbox <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// List returns the events recorded for a user.
func (p *Publisher) List(ctx context.Context, userID domain.UserID) ([]audit.Event, error) {
	return p.store.List(ctx, userID)
}

// Close stops the async drain goroutine after flushing queued events.
func (p *Publisher) Close() {
	p.closeOnce.Do(func() {
		if p.inbox != nil {
			close(p.inbox)
		}
	})
	p.wg.Wait()
}

func (p *Publisher) drain() {
	defer p.wg.Done()
	for event := range p.inbox {
		// Store errors in async mode are dropped: there is no caller left
		// to surface them to, and audit must not take the pipeline down.
		_ = p.store.Append(context.Background(), event)
	}
}
