// Package cabi converts SVG documents into polylines stored
// outside of the Go heap, so that they can be handed to C callers.
//
// The result is a two level structure: an array of records,
// each pointing to a buffer of coordinate pairs. Every buffer
// is allocated with its exact size, so that a pointer and a count
// are enough to release it. Ownership of both levels moves
// to the caller, who must give it back with Release, exactly once.
package cabi

import (
	"unicode/utf8"
	"unsafe"

	"github.com/benoitkugler/svg2polylines/svgpolyline"
)

// Status is the result code of Convert.
type Status uint8

const (
	StatusOK      Status = 0 // output written
	StatusFailure Status = 1 // nothing written
)

// record mirrors the C struct
//
//	typedef struct { CoordinatePair *ptr; size_t len; } Polyline;
type record struct {
	ptr unsafe.Pointer
	len uintptr
}

// Handle locates the outer array of records returned by Convert.
// An empty result is the zero Handle.
type Handle struct {
	Ptr unsafe.Pointer
	Len uintptr
}

// Convert parses `text` and copies the resulting polylines to the C heap.
// On failure (malformed document, invalid UTF-8, memory exhaustion),
// nothing is allocated and the zero Handle is returned.
// `tolerance` is reserved for curve flattening and currently ignored.
func Convert(text string, tolerance float64) (Handle, Status) {
	return convert(cAllocator{}, text, tolerance)
}

// Release frees the memory described by `h`, which must have been
// returned by a successful call to Convert, with the same count.
// The zero Handle is ignored.
func Release(h Handle) {
	release(cAllocator{}, h)
}

func convert(a allocator, text string, tolerance float64) (Handle, Status) {
	if !utf8.ValidString(text) {
		return Handle{}, StatusFailure
	}
	lines, err := svgpolyline.ParseWithOptions(text, svgpolyline.Options{Tolerance: tolerance})
	if err != nil {
		return Handle{}, StatusFailure
	}
	if len(lines) == 0 {
		return Handle{}, StatusOK
	}

	outer, ok := allocate[record](a, len(lines))
	if !ok {
		return Handle{}, StatusFailure
	}
	records := outer.slice()
	for i, line := range lines {
		inner, ok := allocate[svgpolyline.CoordinatePair](a, len(line))
		if !ok {
			// give back what has been built so far
			for _, r := range records[:i] {
				done := reclaim[svgpolyline.CoordinatePair](r.ptr, r.len)
				done.release(a)
			}
			outer.release(a)
			return Handle{}, StatusFailure
		}
		copy(inner.slice(), line)
		ptr, n := inner.handOff()
		records[i] = record{ptr: ptr, len: n}
	}

	ptr, n := outer.handOff()
	return Handle{Ptr: ptr, Len: n}, StatusOK
}

// convertInto is convert with C style outputs: `out` and `outLen`
// are written only on success, and must not be nil.
func convertInto(a allocator, text string, tolerance float64, out *unsafe.Pointer, outLen *uintptr) Status {
	if out == nil || outLen == nil {
		return StatusFailure
	}
	h, status := convert(a, text, tolerance)
	if status != StatusOK {
		return status
	}
	*out, *outLen = h.Ptr, h.Len
	return StatusOK
}

func release(a allocator, h Handle) {
	if h.Ptr == nil {
		return
	}
	outer := reclaim[record](h.Ptr, h.Len)
	for _, r := range outer.slice() {
		inner := reclaim[svgpolyline.CoordinatePair](r.ptr, r.len)
		inner.release(a)
	}
	outer.release(a)
}
