package memory

import "fmt"

const (
	// Size of the addressable space. The address type is uint16,
	// so every address is in bounds by construction.
	Size = 0x10000

	// ProgramBase is where program images are loaded.
	//
	// $0000-$00FF: zero page
	// $0100-$01FF: stack page
	// $8000-$FFF9: program ROM area
	// $FFFC-$FFFD: reset vector
	ProgramBase = uint16(0x8000)

	// ResetVector holds the 16-bit entry address the CPU jumps to on reset.
	ResetVector = uint16(0xFFFC)
)

// Memory is a flat 64 KiB byte-addressable space.
type Memory struct {
	ram [Size]uint8
}

func New() *Memory {
	return &Memory{}
}

func (m *Memory) Read8(addr uint16) uint8 {
	return m.ram[addr]
}

func (m *Memory) Write8(addr uint16, data uint8) {
	m.ram[addr] = data
}

// Read16 reads a little-endian 16-bit value.
// addr+1 wraps at the top of the address space.
func (m *Memory) Read16(addr uint16) uint16 {
	return uint16(m.ram[addr]) | uint16(m.ram[addr+1])<<8
}

// Write16 writes a little-endian 16-bit value.
// addr+1 wraps at the top of the address space.
func (m *Memory) Write16(addr uint16, data uint16) {
	m.ram[addr] = uint8(data & 0xff)
	m.ram[addr+1] = uint8(data >> 8)
}

// LoadProgram copies prog into memory starting at base. A program that
// does not fit in the remaining space is rejected, never truncated.
func (m *Memory) LoadProgram(prog []byte, base uint16) error {
	if int(base)+len(prog) > Size {
		return fmt.Errorf("program of %d bytes doesn't fit at %04X", len(prog), base)
	}
	copy(m.ram[base:], prog)
	return nil
}

// SetResetVector stores addr at the reset-vector location.
func (m *Memory) SetResetVector(addr uint16) {
	m.Write16(ResetVector, addr)
}
