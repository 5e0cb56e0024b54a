package pusher

import "time"

type Option[T any] func(*Pusher[T])

func WithPushLogic[T any](push func(...T) error) Option[T] {
	return func(p *Pusher[T]) {
		p.push = push
	}
}

func WithPushInterval[T any](interval time.Duration) Option[T] {
	return func(p *Pusher[T]) {
		p.interval = interval
	}
}

func WithErrorHandler[T any](onError func(error)) Option[T] {
	return func(p *Pusher[T]) {
		p.onError = onError
	}
}
