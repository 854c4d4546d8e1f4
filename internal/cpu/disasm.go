package cpu

import "fmt"

// Disassemble returns a map of addresses and their corresponding
// instructions from 0x0000 to 0xffff.
func (c *CPU) Disassemble() map[uint16]string {
	disasm := make(map[uint16]string, 0x10000)

	addr := uint32(0)
	for addr <= 0xFFFF {
		pc := uint16(addr)
		opcode := c.read8(pc)
		instr := c.instrs[opcode]
		if instr.fn == nil {
			disasm[pc] = fmt.Sprintf("$%04X: ???", pc)
			addr++
			continue
		}

		pc++
		switch instr.mode {
		case addrModeIMM:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s #$%02X {%s}", addr, instr.name, c.read8(pc), instr.mode)
		case addrModeZP:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%02X {%s}", addr, instr.name, c.read8(pc), instr.mode)
		case addrModeZPX:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%02X,X {%s}", addr, instr.name, c.read8(pc), instr.mode)
		case addrModeZPY:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%02X,Y {%s}", addr, instr.name, c.read8(pc), instr.mode)
		case addrModeABS:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%04X {%s}", addr, instr.name, c.read16(pc), instr.mode)
		case addrModeABSX:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%04X,X {%s}", addr, instr.name, c.read16(pc), instr.mode)
		case addrModeABSY:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%04X,Y {%s}", addr, instr.name, c.read16(pc), instr.mode)
		case addrModeINDX:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s ($%02X,X) {%s}", addr, instr.name, c.read8(pc), instr.mode)
		case addrModeINDY:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s ($%02X),Y {%s}", addr, instr.name, c.read8(pc), instr.mode)
		case addrModeIMP:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s {%s}", addr, instr.name, instr.mode)
		}

		addr = addr + 1 + uint32(operandSize(instr.mode))
	}

	return disasm
}
