package memmap

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintSections(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf)
	out := buf.String()

	for _, want := range []string{
		"System page size:",
		"===Memory map of Variables===",
		"Function (text segment): 0x",
		"Global initialized: 0x",
		"Global uninitialized: 0x",
		"Local variable: 0x",
		"Heap variable: 0x",
		"===End of Memory map===",
		"===Stack growth demonstration===",
		"Depth 1 - stack address: 0x",
		"Depth 10 - stack address: 0x",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "Depth 11") {
		t.Fatal("recursion should stop after depth 10")
	}
}
