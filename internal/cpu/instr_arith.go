package cpu

// aluAdd implements ADD A,src.
func aluAdd(src Operand) execFunc {
	return func(c *CPU) {
		v := c.load8(src)
		res, cy, h := add8(c.A, v)
		c.A = res
		c.setZNHC(res == 0, false, h, cy)
	}
}

// aluAdc implements ADC A,src as one three-operand add (A+src+carry),
// which yields the same carry/half as two sequential 8-bit adds with
// their flags OR'd together.
func aluAdc(src Operand) execFunc {
	return func(c *CPU) {
		v := c.load8(src)
		res, cy, h := adc8(c.A, v, c.flag(flagC))
		c.A = res
		c.setZNHC(res == 0, false, h, cy)
	}
}

func aluSub(src Operand) execFunc {
	return func(c *CPU) {
		v := c.load8(src)
		res, cy, h := sub8(c.A, v)
		c.A = res
		c.setZNHC(res == 0, true, h, cy)
	}
}

func aluSbc(src Operand) execFunc {
	return func(c *CPU) {
		v := c.load8(src)
		res, cy, h := sbc8(c.A, v, c.flag(flagC))
		c.A = res
		c.setZNHC(res == 0, true, h, cy)
	}
}

func aluAnd(src Operand) execFunc {
	return func(c *CPU) {
		c.A &= c.load8(src)
		c.setZNHC(c.A == 0, false, true, false)
	}
}

func aluXor(src Operand) execFunc {
	return func(c *CPU) {
		c.A ^= c.load8(src)
		c.setZNHC(c.A == 0, false, false, false)
	}
}

func aluOr(src Operand) execFunc {
	return func(c *CPU) {
		c.A |= c.load8(src)
		c.setZNHC(c.A == 0, false, false, false)
	}
}

func aluCp(src Operand) execFunc {
	return func(c *CPU) {
		v := c.load8(src)
		res, cy, h := sub8(c.A, v)
		c.setZNHC(res == 0, true, h, cy)
	}
}

// inc8 increments an 8-bit operand without touching the carry flag.
func inc8(op Operand) execFunc {
	return func(c *CPU) {
		v := c.load8(op)
		res, _, h := add8(v, 1)
		c.store8(op, res)
		c.setFlag(flagZ, res == 0)
		c.setFlag(flagN, false)
		c.setFlag(flagH, h)
	}
}

func dec8(op Operand) execFunc {
	return func(c *CPU) {
		v := c.load8(op)
		res, _, h := sub8(v, 1)
		c.store8(op, res)
		c.setFlag(flagZ, res == 0)
		c.setFlag(flagN, true)
		c.setFlag(flagH, h)
	}
}

// inc16/dec16 touch no flags but cost one extra internal M-cycle.
func inc16(op Operand) execFunc {
	return func(c *CPU) {
		c.store16(op, c.load16(op)+1)
		c.tick()
	}
}

func dec16(op Operand) execFunc {
	return func(c *CPU) {
		c.store16(op, c.load16(op)-1)
		c.tick()
	}
}

// addHL implements ADD HL,r16: does not touch Z, sets N=0 and H/C from
// bit 11/15 of the 16-bit add; costs one extra internal M-cycle.
func addHL(src Operand) execFunc {
	return func(c *CPU) {
		res, cy, h := add16(c.getHL(), c.load16(src))
		c.setHL(res)
		c.setFlag(flagN, false)
		c.setFlag(flagH, h)
		c.setFlag(flagC, cy)
		c.tick()
	}
}

// addSPr8 implements ADD SP,r8: flags from the signed-8 hardware quirk,
// Z=0, N=0; costs two extra internal M-cycles beyond the imm8 fetch.
func addSPr8(c *CPU) {
	off := int8(c.fetch8())
	result, cy, h := add16Signed8(c.SP, off)
	c.SP = result
	c.setZNHC(false, false, h, cy)
	c.tick()
	c.tick()
}

// daa adjusts A into packed BCD after an 8-bit add/sub, per the
// published algorithm.
func daa(c *CPU) {
	a := c.A
	n := c.flag(flagN)
	h := c.flag(flagH)
	cy := c.flag(flagC)

	if !n {
		if h || a&0x0F > 0x09 {
			a += 0x06
		}
		if cy || a > 0x99 {
			a += 0x60
			cy = true
		}
	} else {
		if h {
			a -= 0x06
		}
		if cy {
			a -= 0x60
		}
	}
	c.A = a
	c.setFlag(flagZ, a == 0)
	c.setFlag(flagH, false)
	c.setFlag(flagC, cy)
}

// cpl implements CPL: sets N=1,H=1; Z,C unchanged.
func cpl(c *CPU) {
	c.A = ^c.A
	c.setFlag(flagN, true)
	c.setFlag(flagH, true)
}

// ccf toggles carry; N=0,H=0.
func ccf(c *CPU) {
	c.setFlag(flagN, false)
	c.setFlag(flagH, false)
	c.setFlag(flagC, !c.flag(flagC))
}

// scf sets carry; N=0,H=0.
func scf(c *CPU) {
	c.setFlag(flagN, false)
	c.setFlag(flagH, false)
	c.setFlag(flagC, true)
}
