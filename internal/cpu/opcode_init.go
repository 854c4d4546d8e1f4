package cpu

// initInstructions fills the opcode dispatch table. Byte values follow
// the 6502 instruction encoding and must never be renumbered; entries
// left empty are undefined opcodes and abort the run.
func (c *CPU) initInstructions() {
	c.instrs[0x00] = instr{name: "BRK", mode: addrModeIMP, fn: c.brk}

	c.instrs[0xa9] = instr{name: "LDA", mode: addrModeIMM, fn: c.lda}
	c.instrs[0xa5] = instr{name: "LDA", mode: addrModeZP, fn: c.lda}
	c.instrs[0xb5] = instr{name: "LDA", mode: addrModeZPX, fn: c.lda}
	c.instrs[0xad] = instr{name: "LDA", mode: addrModeABS, fn: c.lda}
	c.instrs[0xbd] = instr{name: "LDA", mode: addrModeABSX, fn: c.lda}
	c.instrs[0xb9] = instr{name: "LDA", mode: addrModeABSY, fn: c.lda}
	c.instrs[0xa1] = instr{name: "LDA", mode: addrModeINDX, fn: c.lda}
	c.instrs[0xb1] = instr{name: "LDA", mode: addrModeINDY, fn: c.lda}

	c.instrs[0xa2] = instr{name: "LDX", mode: addrModeIMM, fn: c.ldx}
	c.instrs[0xa6] = instr{name: "LDX", mode: addrModeZP, fn: c.ldx}
	c.instrs[0xb6] = instr{name: "LDX", mode: addrModeZPY, fn: c.ldx}
	c.instrs[0xae] = instr{name: "LDX", mode: addrModeABS, fn: c.ldx}
	c.instrs[0xbe] = instr{name: "LDX", mode: addrModeABSY, fn: c.ldx}

	c.instrs[0xa0] = instr{name: "LDY", mode: addrModeIMM, fn: c.ldy}
	c.instrs[0xa4] = instr{name: "LDY", mode: addrModeZP, fn: c.ldy}
	c.instrs[0xb4] = instr{name: "LDY", mode: addrModeZPX, fn: c.ldy}
	c.instrs[0xac] = instr{name: "LDY", mode: addrModeABS, fn: c.ldy}
	c.instrs[0xbc] = instr{name: "LDY", mode: addrModeABSX, fn: c.ldy}

	c.instrs[0x85] = instr{name: "STA", mode: addrModeZP, fn: c.sta}
	c.instrs[0x95] = instr{name: "STA", mode: addrModeZPX, fn: c.sta}
	c.instrs[0x8d] = instr{name: "STA", mode: addrModeABS, fn: c.sta}
	c.instrs[0x9d] = instr{name: "STA", mode: addrModeABSX, fn: c.sta}
	c.instrs[0x99] = instr{name: "STA", mode: addrModeABSY, fn: c.sta}
	c.instrs[0x81] = instr{name: "STA", mode: addrModeINDX, fn: c.sta}
	c.instrs[0x91] = instr{name: "STA", mode: addrModeINDY, fn: c.sta}

	c.instrs[0xaa] = instr{name: "TAX", mode: addrModeIMP, fn: c.tax}
	c.instrs[0xa8] = instr{name: "TAY", mode: addrModeIMP, fn: c.tay}
	c.instrs[0x8a] = instr{name: "TXA", mode: addrModeIMP, fn: c.txa}
	c.instrs[0x98] = instr{name: "TYA", mode: addrModeIMP, fn: c.tya}

	c.instrs[0xe8] = instr{name: "INX", mode: addrModeIMP, fn: c.inx}
	c.instrs[0xc8] = instr{name: "INY", mode: addrModeIMP, fn: c.iny}
}
