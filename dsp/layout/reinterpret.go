package layout

import (
	"fmt"
	"unsafe"
)

// Reinterpret returns a view of s as a slice of To sharing the same memory.
// The byte length of s must be a multiple of To's size.
//
// A padded real row reinterpreted as complex is how in-place real
// transforms address their half spectrum.
func Reinterpret[From, To any](s []From) []To {
	if len(s) == 0 {
		return nil
	}
	fromSize := unsafe.Sizeof(*new(From))
	toSize := unsafe.Sizeof(*new(To))
	bytes := uintptr(len(s)) * fromSize
	if bytes%toSize != 0 {
		panic(fmt.Sprintf("layout: cannot view %d bytes as %T elements", bytes, *new(To)))
	}
	return unsafe.Slice((*To)(unsafe.Pointer(unsafe.SliceData(s))), bytes/toSize)
}

// sameMemory reports whether a and b start at the same address.
func sameMemory[A, B any](a []A, b []B) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return unsafe.Pointer(unsafe.SliceData(a)) == unsafe.Pointer(unsafe.SliceData(b))
}

// Aliases reports whether a and b start at the same address, which is how
// an in-place call is recognized when both buffers are passed.
func Aliases[A, B any](a []A, b []B) bool {
	return sameMemory(a, b)
}
