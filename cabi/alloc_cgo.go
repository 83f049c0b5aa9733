package cabi

/*
#include <stdlib.h>

typedef struct {
	double x;
	double y;
} CoordinatePair;

typedef struct {
	CoordinatePair *ptr;
	size_t len;
} Polyline;

// unlike C.malloc, returns NULL on exhaustion
static void *cabi_alloc(size_t n) { return malloc(n); }
*/
import "C"

import "unsafe"

// cAllocator uses the C heap, so that the memory may be
// freed by C code as well.
type cAllocator struct{}

func (cAllocator) alloc(size uintptr) unsafe.Pointer { return C.cabi_alloc(C.size_t(size)) }

func (cAllocator) free(p unsafe.Pointer) { C.free(p) }

// cSizes returns the sizes of the C structs, which must
// match the Go definitions.
func cSizes() (pair, rec uintptr) {
	return uintptr(C.sizeof_CoordinatePair), uintptr(C.sizeof_Polyline)
}

// ConvertCString is Convert for a NUL terminated document `svg`.
// The result is stored through `out` and `outLen`, which are left
// untouched on failure. A nil argument is a failure.
func ConvertCString(svg unsafe.Pointer, tolerance float64, out *unsafe.Pointer, outLen *uintptr) Status {
	if svg == nil {
		return StatusFailure
	}
	return convertInto(cAllocator{}, C.GoString((*C.char)(svg)), tolerance, out, outLen)
}
