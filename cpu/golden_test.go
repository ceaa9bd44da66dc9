package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
)

// TestGoldenProgramState runs a small multi-instruction program and
// compares the resulting architectural state against a known-good
// snapshot. go-test/deep gives a field-by-field diff on mismatch instead
// of a single opaque assertion failure; go-spew dumps the full chip state
// for debugging if that happens.
func TestGoldenProgramState(t *testing.T) {
	c, b := newTestChip()
	program := []uint8{
		0xA9, 0x10, // LDA #$10
		0x85, 0x00, // STA $00
		0xA2, 0x05, // LDX #$05
		0x65, 0x00, // ADC $00
		0xE8,       // INX
		0x4C, 0x00, 0x10, // JMP $1000
	}
	b.set(0x0000, program...)

	for i := 0; i < 6; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	want := Snapshot{
		PC:     0x1000,
		A:      0x20,
		X:      0x06,
		Y:      0x00,
		SP:     0xFD,
		P:      FlagU | FlagI,
		Cycles: 2 + 3 + 2 + 3 + 2 + 3,
	}
	got := c.Snapshot()

	if diff := deep.Equal(want, got); diff != nil {
		t.Errorf("unexpected chip state: %v\nfull dump: %s", diff, spew.Sdump(got))
	}
}
