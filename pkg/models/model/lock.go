package model

import (
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

// RedisLock serializes writers that share a redis key across processes.
type RedisLock struct {
	*redis.RedisLock
}

func NewLock(rds *redis.Redis, name string) *RedisLock {
	return &RedisLock{RedisLock: redis.NewRedisLock(rds, name)}
}

// Do runs f while holding the lock.
func (l *RedisLock) Do(f func() error) error {
	if err := l.lock(); err != nil {
		return err
	}
	defer l.unlock()
	return f()
}

func (l *RedisLock) lock() error {
	for {
		acquired, err := l.Acquire()
		if err != nil {
			return err
		}
		if acquired {
			return nil
		}
		time.Sleep(time.Second / 5)
	}
}

func (l *RedisLock) unlock() {
	for {
		released, err := l.Release()
		if err != nil || released {
			return
		}
		time.Sleep(time.Second / 5)
	}
}
