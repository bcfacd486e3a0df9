package cpu

// ld8 covers every 8-bit LD form: register-register, register-immediate,
// register-indirect and back. Cycle cost falls out of load8/store8's own
// tick accounting with no extra ticks needed.
func ld8(dst, src Operand) execFunc {
	return func(c *CPU) {
		c.store8(dst, c.load8(src))
	}
}

// ld16 covers LD rr,d16 and LD rr,rr' forms that need no internal delay.
func ld16(dst, src Operand) execFunc {
	return func(c *CPU) {
		c.store16(dst, c.load16(src))
	}
}

// ldSPHL implements LD SP,HL: a register-to-register 16-bit transfer that
// costs one extra internal M-cycle beyond the opcode fetch.
func ldSPHL(c *CPU) {
	c.SP = c.getHL()
	c.tick()
}

// ldHLSPr8 implements LD HL,SP+r8 using the ADD SP,r8 hardware quirk for
// flags; costs one extra internal M-cycle beyond the imm8 fetch.
func ldHLSPr8(c *CPU) {
	off := int8(c.fetch8())
	result, carry, half := add16Signed8(c.SP, off)
	c.setHL(result)
	c.setZNHC(false, false, half, carry)
	c.tick()
}

// ldNNSP implements LD (a16),SP: store SP's low byte then high byte at
// the fetched 16-bit address.
func ldNNSP(c *CPU) {
	addr := c.fetch16()
	c.write8(addr, byte(c.SP))
	c.write8(addr+1, byte(c.SP>>8))
}

func push(src Operand) execFunc {
	return func(c *CPU) {
		c.tick()
		c.push16(c.load16(src))
	}
}

func pop(dst Operand) execFunc {
	return func(c *CPU) {
		v := c.pop16()
		if dst.Kind == KindAF {
			v &= 0xFFF0 // F's low nibble is always zero
		}
		c.store16(dst, v)
	}
}
