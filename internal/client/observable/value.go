// Package observable provides Value, a state container with one logical
// writer and any number of readers. Readers either poll Get or Subscribe to
// receive the latest snapshot after every change.
package observable

import (
	"context"
	"sync"
)

// Value holds a T and notifies subscribers when it changes.
//
// Subscribers get a channel with a buffer of one. If a subscriber has not
// drained the previous snapshot, it is replaced by the newer one, so slow
// readers see coalesced updates but always end on the latest state.
type Value[T any] struct {
	mu     sync.Mutex
	cur    T
	subs   map[int]chan T
	nextID int
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{cur: initial, subs: make(map[int]chan T)}
}

// Get returns the current snapshot.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cur
}

// Set replaces the value and notifies subscribers.
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cur = next
	v.broadcastLocked()
}

// Update applies fn to the current value under the lock and publishes the
// result. It returns the new value.
func (v *Value[T]) Update(fn func(T) T) T {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cur = fn(v.cur)
	v.broadcastLocked()
	return v.cur
}

// CompareAndUpdate calls fn with the current value; if fn reports ok the
// returned value is published. The check and the write are atomic.
func (v *Value[T]) CompareAndUpdate(fn func(T) (T, bool)) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	next, ok := fn(v.cur)
	if !ok {
		return false
	}
	v.cur = next
	v.broadcastLocked()
	return true
}

// Subscribe returns a channel that first yields the current snapshot and then
// every subsequent one. The channel is closed when ctx is done.
func (v *Value[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = ch
	ch <- v.cur
	v.mu.Unlock()

	go func() {
		<-ctx.Done()
		v.mu.Lock()
		delete(v.subs, id)
		close(ch)
		v.mu.Unlock()
	}()

	return ch
}

func (v *Value[T]) broadcastLocked() {
	for _, ch := range v.subs {
		select {
		case ch <- v.cur:
		default:
			// drop the stale snapshot and publish the latest one
			select {
			case <-ch:
			default:
			}
			ch <- v.cur
		}
	}
}
