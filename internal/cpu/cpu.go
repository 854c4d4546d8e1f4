package cpu

import (
	"errors"
	"fmt"
)

const (
	flagCBit = uint8(1 << 0) // Carry flag
	flagZBit = uint8(1 << 1) // Zero flag
	flagIBit = uint8(1 << 2) // Interrupt Disable flag
	flagDBit = uint8(1 << 3) // Decimal Mode flag
	flagBBit = uint8(1 << 4) // Break Command flag
	flagUBit = uint8(1 << 5) // Unused
	flagVBit = uint8(1 << 6) // Overflow flag
	flagNBit = uint8(1 << 7) // Negative flag
)

// resetVectorAddr holds the 16-bit address Reset jumps to.
const resetVectorAddr = uint16(0xFFFC)

// ErrUnknownOpcode reports an opcode byte with no defined semantics.
// It aborts the run: skipping unknown opcodes would mask bugs in
// emitted programs.
var ErrUnknownOpcode = errors.New("unknown opcode")

// Reader is the memory view addressing needs. Indirect modes
// dereference pointers, so resolving an address may read memory.
type Reader interface {
	Read8(addr uint16) uint8
}

// ReadWriter is the full bus the CPU executes against.
type ReadWriter interface {
	Reader
	Write8(addr uint16, data uint8)
}

type instr struct {
	name string
	mode addrMode
	fn   func()
}

type CPU struct {
	a      uint8
	x      uint8
	y      uint8
	status uint8
	pc     uint16
	mem    ReadWriter
	instrs [0x100]instr

	// operandAddr is set by the dispatch loop before each
	// memory-referencing instruction runs.
	operandAddr uint16

	halted bool
}

func New(mem ReadWriter) *CPU {
	c := &CPU{
		mem: mem,
	}
	c.initInstructions()
	return c
}

func (c *CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c *CPU) read16(addr uint16) uint16 {
	return uint16(c.read8(addr)) | uint16(c.read8(addr+1))<<8
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

func (c *CPU) getFlag(flag uint8) bool {
	return c.status&flag > 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.status |= flag
		return
	}
	c.status &= ^flag
}

// setFlagsZN recomputes Zero and Negative from a result byte.
// The other six status bits are left untouched.
func (c *CPU) setFlagsZN(value uint8) {
	c.setFlag(flagZBit, value == 0)
	c.setFlag(flagNBit, value&flagNBit > 0)
}

// Reset clears A, X and the status register and jumps to the address
// stored at the reset vector. Y and memory are deliberately left
// untouched, matching the partial reset the hardware model exposes.
func (c *CPU) Reset() {
	c.a = 0
	c.x = 0
	c.status = 0
	c.pc = c.read16(resetVectorAddr)
	c.halted = false
}

// Step fetches, decodes and executes one instruction.
// An opcode with no defined semantics is fatal.
func (c *CPU) Step() error {
	opcode := c.read8(c.pc)
	c.pc++

	instr := c.instrs[opcode]
	if instr.fn == nil {
		return fmt.Errorf("%w %02X at PC %04X", ErrUnknownOpcode, opcode, c.pc-1)
	}

	c.operandAddr = 0
	if instr.mode != addrModeIMP {
		c.operandAddr = operandAddress(instr.mode, c.pc, c.x, c.y, c.mem)
		c.pc += operandSize(instr.mode)
	}
	instr.fn()
	return nil
}

// Run executes instructions until a BRK halts the CPU.
// A fatal abort is returned as an error, distinct from a normal halt.
func (c *CPU) Run() error {
	for !c.halted {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (c *CPU) A() uint8 { return c.a }
func (c *CPU) X() uint8 { return c.x }
func (c *CPU) Y() uint8 { return c.y }
func (c *CPU) Status() uint8 { return c.status }
func (c *CPU) PC() uint16 { return c.pc }
func (c *CPU) Halted() bool { return c.halted }

func (c *CPU) SetA(v uint8) { c.a = v }
func (c *CPU) SetX(v uint8) { c.x = v }
func (c *CPU) SetY(v uint8) { c.y = v }
func (c *CPU) SetPC(v uint16) { c.pc = v }
