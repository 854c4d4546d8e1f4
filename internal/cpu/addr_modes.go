package cpu

import "fmt"

type addrMode uint8

const (
	// Immediate
	// Operand is the byte right after the opcode.
	// Example: LDA #$10
	addrModeIMM addrMode = iota + 1

	// Zero Page
	// Operand address is a single byte into the first 256 bytes of memory.
	// Example: LDA $10
	addrModeZP

	// Zero Page, X
	// Zero-page address plus the X register, wrapped within the page.
	// Example: LDA $10,X
	addrModeZPX

	// Zero Page, Y
	// Zero-page address plus the Y register, wrapped within the page.
	// Example: LDX $10,Y
	addrModeZPY

	// Absolute
	// Full little-endian 16-bit address.
	// Example: LDA $1234
	addrModeABS

	// Absolute, X
	// Full 16-bit address plus the X register.
	// Example: LDA $1234,X
	addrModeABSX

	// Absolute, Y
	// Full 16-bit address plus the Y register.
	// Example: LDA $1234,Y
	addrModeABSY

	// Indexed Indirect (X)
	// Zero-page pointer plus X, dereferenced within the zero page.
	// Example: LDA ($10,X)
	addrModeINDX

	// Indirect Indexed (Y)
	// Zero-page pointer dereferenced, then Y added to the result.
	// Example: LDA ($10),Y
	addrModeINDY

	// Implied
	// No memory operand.
	// Example: TAX
	addrModeIMP
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

// operandSize returns how many operand bytes follow the opcode.
func operandSize(mode addrMode) uint16 {
	switch mode {
	case addrModeABS, addrModeABSX, addrModeABSY:
		return 2
	case addrModeIMP:
		return 0
	}
	return 1
}

// operandAddress computes the effective address the current instruction
// operates on. pc must point at the first operand byte. The function is
// pure over its inputs; only indirect modes read memory, to dereference
// their zero-page pointers.
func operandAddress(mode addrMode, pc uint16, x, y uint8, mem Reader) uint16 {
	switch mode {
	case addrModeIMM:
		return pc

	case addrModeZP:
		return uint16(mem.Read8(pc))

	case addrModeZPX:
		// wraps within the zero page, never into the high byte
		return uint16(mem.Read8(pc) + x)

	case addrModeZPY:
		return uint16(mem.Read8(pc) + y)

	case addrModeABS:
		return uint16(mem.Read8(pc)) | uint16(mem.Read8(pc+1))<<8

	case addrModeABSX:
		base := uint16(mem.Read8(pc)) | uint16(mem.Read8(pc+1))<<8
		return base + uint16(x)

	case addrModeABSY:
		base := uint16(mem.Read8(pc)) | uint16(mem.Read8(pc+1))<<8
		return base + uint16(y)

	case addrModeINDX:
		// ptr is 0xFF, X is 0x0:
		// lo comes from 0x00FF, hi from 0x0000, not 0x0100
		ptr := mem.Read8(pc) + x
		lo := uint16(mem.Read8(uint16(ptr)))
		hi := uint16(mem.Read8(uint16(ptr + 1)))
		return lo | hi<<8

	case addrModeINDY:
		ptr := mem.Read8(pc)
		lo := uint16(mem.Read8(uint16(ptr)))
		hi := uint16(mem.Read8(uint16(ptr + 1)))
		return (lo | hi<<8) + uint16(y)
	}

	panic(fmt.Sprintf("effective address requested for addressing mode %s", mode))
}
