package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ReadWrite16(t *testing.T) {
	t.Run("little endian byte order", func(t *testing.T) {
		mem := New()
		mem.Write16(0x1000, 0xBEEF)

		assert.Equal(t, uint8(0xEF), mem.Read8(0x1000), "low byte")
		assert.Equal(t, uint8(0xBE), mem.Read8(0x1001), "high byte")
		assert.Equal(t, uint16(0xBEEF), mem.Read16(0x1000))
	})

	t.Run("round trip", func(t *testing.T) {
		mem := New()
		for _, addr := range []uint16{0x0000, 0x00FF, 0x8000, 0xFFFD} {
			mem.Write16(addr, 0xA55A)
			assert.Equal(t, uint16(0xA55A), mem.Read16(addr), "addr %04X", addr)
		}
	})

	t.Run("high byte wraps at the top of the address space", func(t *testing.T) {
		mem := New()
		mem.Write16(0xFFFF, 0x1234)

		assert.Equal(t, uint8(0x34), mem.Read8(0xFFFF), "low byte at FFFF")
		assert.Equal(t, uint8(0x12), mem.Read8(0x0000), "high byte wraps to 0000")
		assert.Equal(t, uint16(0x1234), mem.Read16(0xFFFF))
	})
}

func Test_LoadProgram(t *testing.T) {
	t.Run("copies bytes at the base address", func(t *testing.T) {
		mem := New()
		prog := []byte{0xA9, 0x05, 0x00}

		require.NoError(t, mem.LoadProgram(prog, ProgramBase))

		assert.Equal(t, uint8(0xA9), mem.Read8(0x8000))
		assert.Equal(t, uint8(0x05), mem.Read8(0x8001))
		assert.Equal(t, uint8(0x00), mem.Read8(0x8002))
	})

	t.Run("program filling the space exactly is accepted", func(t *testing.T) {
		mem := New()
		prog := make([]byte, Size-int(ProgramBase))

		assert.NoError(t, mem.LoadProgram(prog, ProgramBase))
	})

	t.Run("program past the end of memory is rejected, not truncated", func(t *testing.T) {
		mem := New()
		prog := make([]byte, Size-int(ProgramBase)+1)
		prog[0] = 0xA9

		require.Error(t, mem.LoadProgram(prog, ProgramBase))
		assert.Equal(t, uint8(0), mem.Read8(ProgramBase), "memory untouched on failure")
	})
}

func Test_SetResetVector(t *testing.T) {
	mem := New()
	mem.SetResetVector(0x8000)

	assert.Equal(t, uint8(0x00), mem.Read8(0xFFFC))
	assert.Equal(t, uint8(0x80), mem.Read8(0xFFFD))
	assert.Equal(t, uint16(0x8000), mem.Read16(ResetVector))
}
