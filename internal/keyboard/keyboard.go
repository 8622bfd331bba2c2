// Package keyboard is the key buffer between whatever produces calculator key
// codes and the goroutine that consumes them.
package keyboard

import "sync"

// NoKey is returned by Get when the buffer is empty.
const NoKey = -1

// Buffer is a bounded circular buffer of key codes. Producers never block: once
// the buffer is full the oldest key is dropped to make room. Consumers either
// poll with Get or block in Wait.
type Buffer struct {
	mu     sync.Mutex
	keys   sync.Cond
	buffer []int
	begin  int
	count  int
	closed bool
}

func New(size int) *Buffer {
	b := &Buffer{buffer: make([]int, max(1, size))}
	b.keys.L = &b.mu
	return b
}

// Put adds a key and wakes any waiting consumer.
func (b *Buffer) Put(key int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.put(key)
}

// PutIfEmpty adds a key only if no other key is waiting. It is used for
// heartbeats, which are pointless while real keys are queued.
func (b *Buffer) PutIfEmpty(key int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.count == 0 {
		b.put(key)
	}
}

func (b *Buffer) put(key int) {
	if b.closed {
		return
	}
	if b.count == len(b.buffer) {
		b.begin = (b.begin + 1) % len(b.buffer)
		b.count--
	}
	b.buffer[(b.begin+b.count)%len(b.buffer)] = key
	b.count++
	b.keys.Broadcast()
}

// Get takes the oldest key, or returns NoKey if there is none.
func (b *Buffer) Get() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.get()
}

func (b *Buffer) get() int {
	if b.count == 0 {
		return NoKey
	}
	key := b.buffer[b.begin]
	b.begin = (b.begin + 1) % len(b.buffer)
	b.count--
	return key
}

func (b *Buffer) IsKeyPressed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count > 0
}

// Wait blocks until a key is available and takes it. It returns false once the
// buffer is closed and drained.
func (b *Buffer) Wait() (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.count == 0 && !b.closed {
		b.keys.Wait()
	}
	if b.count == 0 {
		return NoKey, false
	}
	return b.get(), true
}

// Close wakes every waiting consumer. Keys put after Close are dropped; keys
// already queued can still be taken.
func (b *Buffer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.keys.Broadcast()
}
