package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullPPU_RegistersWrapAtEight(t *testing.T) {
	p := NewNullPPU()

	p.WriteReg(RegPPUCTRL, 0x80)
	assert.Equal(t, uint8(0x80), p.ReadReg(RegPPUCTRL))
	assert.Equal(t, uint8(0x80), p.ReadReg(8), "reg index wraps mod 8")
}
