package entity

// Handle is an index into a Pool. Handles are not owning pointers: a
// released handle may be handed out again later.
type Handle int32

// NoHandle is never returned by a Pool.
const NoHandle Handle = -1

// Pool is a growable arena of T slots with an index free list.
// Slots are recycled, never freed; a live handle is never handed out twice.
type Pool[T any] struct {
	slots []T
	live  []bool
	free  []Handle
	count int
}

// NewPool creates a pool with room for capacity slots before growing.
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		slots: make([]T, 0, capacity),
		live:  make([]bool, 0, capacity),
	}
}

// Alloc returns a live handle and its slot. A recycled slot keeps its old
// contents; callers overwrite every field. The pointer is valid until the
// next Alloc.
func (p *Pool[T]) Alloc() (Handle, *T) {
	if n := len(p.free); n > 0 {
		h := p.free[n-1]
		p.free = p.free[:n-1]
		p.live[h] = true
		p.count++
		return h, &p.slots[h]
	}

	var zero T
	p.slots = append(p.slots, zero)
	p.live = append(p.live, true)
	p.count++
	h := Handle(len(p.slots) - 1) //#nosec G115 -- bounded by screen geometry
	return h, &p.slots[h]
}

// Release returns a slot to the free list. Releasing a handle that is not
// live is a no-op and reports false.
func (p *Pool[T]) Release(h Handle) bool {
	if !p.Live(h) {
		return false
	}
	p.live[h] = false
	p.free = append(p.free, h)
	p.count--
	return true
}

// Live reports whether h currently refers to an allocated slot.
func (p *Pool[T]) Live(h Handle) bool {
	return h >= 0 && int(h) < len(p.live) && p.live[h]
}

// Get returns the slot for a live handle, or nil.
func (p *Pool[T]) Get(h Handle) *T {
	if !p.Live(h) {
		return nil
	}
	return &p.slots[h]
}

// Len returns the number of live slots.
func (p *Pool[T]) Len() int {
	return p.count
}

// Cap returns the number of slots ever allocated.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Reset releases every slot while keeping the storage.
func (p *Pool[T]) Reset() {
	p.free = p.free[:0]
	for i := len(p.slots) - 1; i >= 0; i-- {
		p.live[i] = false
		p.free = append(p.free, Handle(i)) //#nosec G115 -- bounded by slot count
	}
	p.count = 0
}
