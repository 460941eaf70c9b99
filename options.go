package fenwick

import (
	"errors"
	"sync"
)

type config struct {
	locker rwLocker
	clamp  bool
	rng    RNG
}

// Option configures a Tree at construction time.
type Option func(*config) error

// Synchronized guards the tree with a single read-write mutex.
//
// Update, Add and Sample take the write lock, every other method takes
// the read lock, so queries may run in parallel while no update is in
// flight. Without this option a Tree must not be used from more than
// one goroutine at a time.
func Synchronized() Option {
	return func(c *config) error {
		c.locker = new(sync.RWMutex)
		return nil
	}
}

// ClampQueries makes prefix queries permissive instead of strict.
//
// Query(n) with n < 0 returns 0 and with n > Len() returns the sum of
// the whole array, where the default is to fail with ErrIndexOutOfRange.
// RangeSum clamps both of its bounds the same way. Update, Add and Get
// keep rejecting out of range indices.
func ClampQueries() Option {
	return func(c *config) error {
		c.clamp = true
		return nil
	}
}

// WithRNG sets the random number generator Sample falls back to when it
// is given a nil RNG. The default draws from the math/rand global source.
func WithRNG(rng RNG) Option {
	return func(c *config) error {
		if rng == nil {
			return errors.New("fenwick: RNG must not be nil")
		}
		c.rng = rng
		return nil
	}
}

type rwLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

type zeroLocker struct{}

func (zeroLocker) Lock()    {}
func (zeroLocker) Unlock()  {}
func (zeroLocker) RLock()   {}
func (zeroLocker) RUnlock() {}
