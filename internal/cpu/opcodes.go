package cpu

// Load Accumulator
func (c *CPU) lda() {
	c.a = c.read8(c.operandAddr)
	c.setFlagsZN(c.a)
}

// Load X Register
func (c *CPU) ldx() {
	c.x = c.read8(c.operandAddr)
	c.setFlagsZN(c.x)
}

// Load Y Register
func (c *CPU) ldy() {
	c.y = c.read8(c.operandAddr)
	c.setFlagsZN(c.y)
}

// Store Accumulator
func (c *CPU) sta() {
	c.write8(c.operandAddr, c.a)
}

// Transfer Accumulator to X
func (c *CPU) tax() {
	c.x = c.a
	c.setFlagsZN(c.x)
}

// Transfer Accumulator to Y
func (c *CPU) tay() {
	c.y = c.a
	c.setFlagsZN(c.y)
}

// Transfer X to Accumulator
func (c *CPU) txa() {
	c.a = c.x
	c.setFlagsZN(c.a)
}

// Transfer Y to Accumulator
func (c *CPU) tya() {
	c.a = c.y
	c.setFlagsZN(c.a)
}

// Increment X Register, wrapping 0xFF to 0x00
func (c *CPU) inx() {
	c.x++
	c.setFlagsZN(c.x)
}

// Increment Y Register
func (c *CPU) iny() {
	c.y++
	c.setFlagsZN(c.y)
}

// Force Break: halts the run loop. Flags are untouched.
func (c *CPU) brk() {
	c.halted = true
}
