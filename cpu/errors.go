package cpu

import (
	"errors"
	"fmt"
)

// ErrIllegalOpcode is the sentinel IllegalOpcode.Is matches. Callers who
// only care that fetch failed, rather than which opcode and where, can use
// errors.Is(err, cpu.ErrIllegalOpcode).
var ErrIllegalOpcode = errors.New("illegal opcode")

// IllegalOpcode is returned by Step when the decode table has no handler
// for the fetched opcode byte. This core emulates none of the 105
// undocumented encodings, so any of them produce this error. Registers are
// left exactly as they were at fetch time: PC still names the illegal
// byte, nothing else was mutated.
type IllegalOpcode struct {
	Op byte
	PC uint16
}

func (e *IllegalOpcode) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X at 0x%04X", e.Op, e.PC)
}

func (e *IllegalOpcode) Is(target error) bool {
	return target == ErrIllegalOpcode
}
