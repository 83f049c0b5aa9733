// Command libsvg2polylines builds the C library exposing
// the polylines conversion:
//
//	go build -buildmode=c-shared -o libsvg2polylines.so ./cmd/libsvg2polylines
//
// Polylines returned by svg_str_to_polylines must be freed
// with free_polylines, exactly once.
package main

/*
#include <stddef.h>
#include <stdint.h>

typedef struct {
	double x;
	double y;
} CoordinatePair;

typedef struct {
	CoordinatePair *ptr;
	size_t len;
} Polyline;
*/
import "C"

import (
	"unsafe"

	"github.com/benoitkugler/svg2polylines/cabi"
)

// svg_str_to_polylines converts the NUL terminated SVG document `svg`.
// On success, it returns 0 and stores the polylines through `polylines`
// and `polylines_len`. On failure, it returns 1 and leaves them untouched.
//
//export svg_str_to_polylines
func svg_str_to_polylines(svg *C.char, tol C.double, polylines **C.Polyline, polylines_len *C.size_t) C.uint8_t {
	status := cabi.ConvertCString(unsafe.Pointer(svg), float64(tol),
		(*unsafe.Pointer)(unsafe.Pointer(polylines)), (*uintptr)(unsafe.Pointer(polylines_len)))
	return C.uint8_t(status)
}

//export free_polylines
func free_polylines(polylines *C.Polyline, polylines_len C.size_t) {
	cabi.Release(cabi.Handle{Ptr: unsafe.Pointer(polylines), Len: uintptr(polylines_len)})
}

func main() {}
