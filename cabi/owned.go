package cabi

import "unsafe"

// allocator provides memory which is not managed by the Go runtime.
type allocator interface {
	// alloc returns nil if the memory is exhausted.
	alloc(size uintptr) unsafe.Pointer
	free(p unsafe.Pointer)
}

// owned is a buffer of `len` values of type T, allocated with
// its exact size. It is the only way to free memory: a buffer
// given to the caller is first turned into a borrowed pointer
// by handOff.
type owned[T any] struct {
	ptr unsafe.Pointer
	len uintptr
}

func allocate[T any](a allocator, n int) (owned[T], bool) {
	var zero T
	p := a.alloc(unsafe.Sizeof(zero) * uintptr(n))
	if p == nil {
		return owned[T]{}, false
	}
	return owned[T]{ptr: p, len: uintptr(n)}, true
}

// reclaim takes back the ownership of a buffer returned by handOff.
// `n` must be the exact count returned with `p`.
func reclaim[T any](p unsafe.Pointer, n uintptr) owned[T] {
	return owned[T]{ptr: p, len: n}
}

func (o owned[T]) slice() []T {
	if o.ptr == nil {
		return nil
	}
	return unsafe.Slice((*T)(o.ptr), o.len)
}

// handOff gives up the ownership of the buffer, which
// may not be released through `o` anymore.
func (o *owned[T]) handOff() (unsafe.Pointer, uintptr) {
	p, n := o.ptr, o.len
	*o = owned[T]{}
	return p, n
}

func (o *owned[T]) release(a allocator) {
	if o.ptr != nil {
		a.free(o.ptr)
	}
	*o = owned[T]{}
}
