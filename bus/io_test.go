package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullIO_OAMDMARegisterIsPlainStorage(t *testing.T) {
	io := NewNullIO()

	io.WriteReg(OAMDMA, 0x02)
	assert.Equal(t, uint8(0x02), io.ReadReg(OAMDMA), "no DMA copy happens, but the write is retained")
}
