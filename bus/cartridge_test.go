package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRAMCartridge_ReadWrite(t *testing.T) {
	c := NewRAMCartridge()

	c.PrgWrite(0x8000, 0x42)
	assert.Equal(t, uint8(0x42), c.PrgRead(0x8000))
	assert.Equal(t, uint8(0x00), c.PrgRead(0x4020), "distinct addresses stay independent")
}
