// Package memmap prints the addresses of values living in the different
// memory regions of a running Go process: the text segment, initialized
// and uninitialized package-level data, the goroutine stack, and the heap.
// It is a teaching aid, not an inspection tool: the runtime is free to
// move goroutine stacks, which the stack-growth demonstration makes
// visible.
package memmap

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"unsafe"
)

var globalInit int32 = 42 // initialized package-level variable (data segment)
var globalUninit int32    // zero-valued package-level variable (bss segment)

// Print writes the memory map demonstration to w: the system page size, a
// map of one representative address per region, and a stack-growth walk.
func Print(w io.Writer) {
	fmt.Fprintf(w, "System page size: %d bytes\n\n", os.Getpagesize())
	printAddresses(w)
	fmt.Fprintf(w, "\n===Stack growth demonstration===\n")
	recurse(w, 1)
}

// printAddresses prints one address from each region. The local's address
// is snapshotted as a uintptr first: handing fmt a real *int32 would make
// the variable escape to the heap and defeat the demonstration.
func printAddresses(w io.Writer) {
	localVar := int32(1)
	localAddr := uintptr(unsafe.Pointer(&localVar))

	heap := new(int32)
	*heap = 2

	fmt.Fprintf(w, "===Memory map of Variables===\n")
	fmt.Fprintf(w, "Function (text segment): 0x%x\n", reflect.ValueOf(Print).Pointer())
	fmt.Fprintf(w, "Global initialized: %p\n", &globalInit)
	fmt.Fprintf(w, "Global uninitialized: %p\n", &globalUninit)
	fmt.Fprintf(w, "Local variable: 0x%x\n", localAddr)
	fmt.Fprintf(w, "Heap variable: %p\n", heap)
	fmt.Fprintf(w, "===End of Memory map===\n")
}

// recurse prints the address of a local at each call depth. Successive
// addresses step downward as frames are pushed; a sudden jump means the
// runtime grew and relocated the goroutine stack.
func recurse(w io.Writer, depth int) {
	if depth > 10 {
		return
	}
	local := depth
	addr := uintptr(unsafe.Pointer(&local))
	fmt.Fprintf(w, "Depth %d - stack address: 0x%x\n", depth, addr)
	recurse(w, depth+1)
}
