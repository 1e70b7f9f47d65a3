// Package memdemo is a catalog of memory-usage mistakes that Go programs
// actually make, each demonstrated and then paired with the safe
// alternative. Go's runtime rules out the classic C errors (buffer
// overflows into neighbors, use-after-free, double free of raw memory),
// but aliased slices, retained backing arrays, stale unsafe pointers, and
// unchecked indexes produce the same class of surprises.
//
// The demonstrations are deterministic and harmless: nothing here
// corrupts real state, each one just shows the wrong result the pattern
// produces.
package memdemo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/charmbracelet/lipgloss"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

// RunAll writes every unsafe/safe demonstration pair to w.
func RunAll(w io.Writer) {
	printSeparator(w, "1. Aliased slice writes")
	aliasedSliceWrite(w)
	safeSliceCopy(w)

	printSeparator(w, "2. Backing-array retention")
	subsliceRetention(w)
	safeSubsliceClone(w)

	printSeparator(w, "3. Stale pointer across append")
	stalePointerAcrossAppend(w)
	safeIndexAfterGrowth(w)

	printSeparator(w, "4. Double close")
	doubleClose(w)
	safeSingleClose(w)

	printSeparator(w, "5. Unchecked index")
	uncheckedIndex(w)
	safeBoundsCheck(w)
}

func printSeparator(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", titleStyle.Render("=== "+title+" ==="))
}

// aliasedSliceWrite slices a slice and writes through the alias. Both
// views share one backing array, so the "copy" mutates the original.
func aliasedSliceWrite(w io.Writer) {
	fmt.Fprintf(w, "\n  UNSAFE: a subslice is a view, not a copy\n")
	original := []int{10, 20, 30, 40, 50}
	alias := original[1:4]

	alias[0] = -999

	fmt.Fprintf(w, "  Wrote -999 through the subslice\n")
	fmt.Fprintf(w, "  Original now reads: %v\n", original)
	fmt.Fprintf(w, "  The write went through the shared backing array.\n")
}

// safeSliceCopy copies before mutating so the original stays intact.
func safeSliceCopy(w io.Writer) {
	fmt.Fprintf(w, "\n  SAFE: copy before mutating\n")
	original := []int{10, 20, 30, 40, 50}
	independent := make([]int, 3)
	copy(independent, original[1:4])

	independent[0] = -999

	fmt.Fprintf(w, "  Original unchanged: %v\n", original)
	fmt.Fprintf(w, "  Copy carries the write: %v\n", independent)
}

// subsliceRetention keeps a tiny subslice of a large buffer. The garbage
// collector sees one live reference and keeps the whole backing array,
// which is Go's version of a memory leak.
func subsliceRetention(w io.Writer) {
	fmt.Fprintf(w, "\n  UNSAFE: a 3-element subslice can pin megabytes\n")
	big := make([]byte, 1<<20)
	big[0], big[1], big[2] = 'a', 'b', 'c'

	header := big[:3]

	fmt.Fprintf(w, "  Allocated buffer: %d bytes\n", len(big))
	fmt.Fprintf(w, "  Retained header: %q (len %d, cap %d)\n", header, len(header), cap(header))
	fmt.Fprintf(w, "  While the header lives, all %d bytes stay reachable.\n", cap(header))
}

// safeSubsliceClone clones the bytes that are actually needed, releasing
// the large buffer to the collector.
func safeSubsliceClone(w io.Writer) {
	fmt.Fprintf(w, "\n  SAFE: clone what you keep\n")
	big := make([]byte, 1<<20)
	big[0], big[1], big[2] = 'a', 'b', 'c'

	header := append([]byte(nil), big[:3]...)

	fmt.Fprintf(w, "  Retained header: %q (len %d, cap %d)\n", header, len(header), cap(header))
	fmt.Fprintf(w, "  The %d-byte buffer is now collectable.\n", 1<<20)
}

// stalePointerAcrossAppend takes an element pointer, then appends past
// capacity. The append reallocates the backing array and the pointer keeps
// referring to the old one, the closest thing Go has to a dangling
// pointer, here made explicit with unsafe.Pointer.
func stalePointerAcrossAppend(w io.Writer) {
	fmt.Fprintf(w, "\n  UNSAFE: element pointers do not survive append\n")
	values := make([]float64, 1, 1)
	values[0] = 1.5
	first := (*float64)(unsafe.Pointer(&values[0]))

	values = append(values, 2.5) // full capacity: this reallocates
	values[0] = 99

	fmt.Fprintf(w, "  Slice after append and write: %v\n", values)
	fmt.Fprintf(w, "  Pointer taken before append still reads: %v\n", *first)
	fmt.Fprintf(w, "  It points into the old backing array.\n")
}

// safeIndexAfterGrowth addresses elements by index, which always resolves
// against the current backing array.
func safeIndexAfterGrowth(w io.Writer) {
	fmt.Fprintf(w, "\n  SAFE: hold indexes, not element pointers\n")
	values := make([]float64, 1, 1)
	values[0] = 1.5

	values = append(values, 2.5)
	values[0] = 99

	fmt.Fprintf(w, "  values[0] after append and write: %v\n", values[0])
}

// doubleClose closes the same file twice. The second close does not
// corrupt anything in Go, but it reports an error the caller usually
// ignores, and with raw file descriptors it can close a descriptor that
// was already reused elsewhere.
func doubleClose(w io.Writer) {
	fmt.Fprintf(w, "\n  UNSAFE: closing twice\n")
	f, err := os.Create(filepath.Join(os.TempDir(), "memdemo-double-close"))
	if err != nil {
		fmt.Fprintf(w, "  Could not create demo file: %v\n", err)
		return
	}

	first := f.Close()
	second := f.Close()

	fmt.Fprintf(w, "  First close error: %v\n", first)
	fmt.Fprintf(w, "  Second close error: %v\n", second)
}

// safeSingleClose closes exactly once on every path with defer.
func safeSingleClose(w io.Writer) {
	fmt.Fprintf(w, "\n  SAFE: one deferred close per open\n")
	f, err := os.Create(filepath.Join(os.TempDir(), "memdemo-single-close"))
	if err != nil {
		fmt.Fprintf(w, "  Could not create demo file: %v\n", err)
		return
	}
	defer f.Close()

	fmt.Fprintf(w, "  Close runs once when the function returns, on every path.\n")
}

// uncheckedIndex indexes past the end of a slice. Go turns what would be
// silent corruption in C into a runtime panic; the recover here exists
// only so the demonstration can continue.
func uncheckedIndex(w io.Writer) {
	fmt.Fprintf(w, "\n  UNSAFE: indexing without a bounds check\n")
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(w, "  Runtime panic: %v\n", r)
		}
	}()

	values := []int{1, 2, 3}
	index := 7
	fmt.Fprintf(w, "  Reading values[%d] from a %d-element slice...\n", index, len(values))
	fmt.Fprintf(w, "  Got: %d\n", values[index])
}

// safeBoundsCheck validates the index before using it.
func safeBoundsCheck(w io.Writer) {
	fmt.Fprintf(w, "\n  SAFE: check the index first\n")
	values := []int{1, 2, 3}
	index := 7

	if index < 0 || index >= len(values) {
		fmt.Fprintf(w, "  Index %d is out of range for %d elements; skipping.\n", index, len(values))
		return
	}
	fmt.Fprintf(w, "  Got: %d\n", values[index])
}
