package pusher

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pusher batches messages and flushes them through the configured push
// logic on a fixed interval. A failed flush re-queues its batch ahead of
// anything added in the meantime.
type Pusher[T any] struct {
	mu       sync.Mutex
	buffer   []T
	interval time.Duration
	push     func(...T) error
	onError  func(error)
	stop     chan struct{}
	stopOnce sync.Once
}

func New[T any](options ...Option[T]) *Pusher[T] {
	p := &Pusher[T]{
		interval: time.Second,
		push:     func(...T) error { return nil },
		onError:  func(err error) { logx.Error(err) },
		stop:     make(chan struct{}),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Add queues messages for the next flush.
func (p *Pusher[T]) Add(messages ...T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.buffer = append(p.buffer, messages...)
}

// Flush pushes everything queued so far.
func (p *Pusher[T]) Flush() error {
	p.mu.Lock()
	pending := p.buffer
	p.buffer = nil
	p.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}
	if err := p.push(pending...); err != nil {
		p.mu.Lock()
		p.buffer = append(pending, p.buffer...)
		p.mu.Unlock()
		return err
	}
	return nil
}

// Start launches the flush loop.
func (p *Pusher[T]) Start() {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				if err := p.Flush(); err != nil {
					p.onError(err)
				}
				return
			case <-ticker.C:
				if err := p.Flush(); err != nil {
					p.onError(err)
				}
			}
		}
	}()
}

// Stop flushes one last time and ends the loop.
func (p *Pusher[T]) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
}
