package cpu

// primaryOpcodeTable is the 256-entry unprefixed dispatch table, built
// once at package init time the way a table-driven SM83 core lays out
// its InstructionSet array: the regular 8x8 LD grid and the four ALU
// rows are generated programmatically, everything else is assigned
// explicitly.
var primaryOpcodeTable [256]execFunc

// the eight operand slots LD/ALU opcodes iterate over, in encoding order.
var r8Slots = [8]Operand{OpB, OpC, OpD, OpE, OpH, OpL, OpIndHL, OpA}

func init() {
	for i := range primaryOpcodeTable {
		primaryOpcodeTable[i] = undefined
	}

	// 0x40-0x7F: LD r,r' grid, with 0x76 overridden to HALT below.
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			op := 0x40 + dst*8 + src
			primaryOpcodeTable[op] = ld8(r8Slots[dst], r8Slots[src])
		}
	}
	primaryOpcodeTable[0x76] = halt

	// 0x80-0xBF: the four ALU-A rows, one operand slot per column.
	for src := 0; src < 8; src++ {
		primaryOpcodeTable[0x80+src] = aluAdd(r8Slots[src])
		primaryOpcodeTable[0x88+src] = aluAdc(r8Slots[src])
		primaryOpcodeTable[0x90+src] = aluSub(r8Slots[src])
		primaryOpcodeTable[0x98+src] = aluSbc(r8Slots[src])
		primaryOpcodeTable[0xA0+src] = aluAnd(r8Slots[src])
		primaryOpcodeTable[0xA8+src] = aluXor(r8Slots[src])
		primaryOpcodeTable[0xB0+src] = aluOr(r8Slots[src])
		primaryOpcodeTable[0xB8+src] = aluCp(r8Slots[src])
	}

	t := primaryOpcodeTable

	t[0x00] = func(c *CPU) {}
	t[0x01] = ld16(OpBC, OpImm16)
	t[0x02] = ld8(OpIndBC, OpA)
	t[0x03] = inc16(OpBC)
	t[0x04] = inc8(OpB)
	t[0x05] = dec8(OpB)
	t[0x06] = ld8(OpB, OpImm8)
	t[0x07] = rlca
	t[0x08] = ldNNSP
	t[0x09] = addHL(OpBC)
	t[0x0A] = ld8(OpA, OpIndBC)
	t[0x0B] = dec16(OpBC)
	t[0x0C] = inc8(OpC)
	t[0x0D] = dec8(OpC)
	t[0x0E] = ld8(OpC, OpImm8)
	t[0x0F] = rrca

	t[0x10] = stop
	t[0x11] = ld16(OpDE, OpImm16)
	t[0x12] = ld8(OpIndDE, OpA)
	t[0x13] = inc16(OpDE)
	t[0x14] = inc8(OpD)
	t[0x15] = dec8(OpD)
	t[0x16] = ld8(OpD, OpImm8)
	t[0x17] = rla
	t[0x18] = jr(CondAlways)
	t[0x19] = addHL(OpDE)
	t[0x1A] = ld8(OpA, OpIndDE)
	t[0x1B] = dec16(OpDE)
	t[0x1C] = inc8(OpE)
	t[0x1D] = dec8(OpE)
	t[0x1E] = ld8(OpE, OpImm8)
	t[0x1F] = rra

	t[0x20] = jr(CondNZ)
	t[0x21] = ld16(OpHL, OpImm16)
	t[0x22] = ld8(OpIndHLInc, OpA)
	t[0x23] = inc16(OpHL)
	t[0x24] = inc8(OpH)
	t[0x25] = dec8(OpH)
	t[0x26] = ld8(OpH, OpImm8)
	t[0x27] = daa
	t[0x28] = jr(CondZ)
	t[0x29] = addHL(OpHL)
	t[0x2A] = ld8(OpA, OpIndHLInc)
	t[0x2B] = dec16(OpHL)
	t[0x2C] = inc8(OpL)
	t[0x2D] = dec8(OpL)
	t[0x2E] = ld8(OpL, OpImm8)
	t[0x2F] = cpl

	t[0x30] = jr(CondNC)
	t[0x31] = ld16(OpSP, OpImm16)
	t[0x32] = ld8(OpIndHLDec, OpA)
	t[0x33] = inc16(OpSP)
	t[0x34] = inc8(OpIndHL)
	t[0x35] = dec8(OpIndHL)
	t[0x36] = ld8(OpIndHL, OpImm8)
	t[0x37] = scf
	t[0x38] = jr(CondC)
	t[0x39] = addHL(OpSP)
	t[0x3A] = ld8(OpA, OpIndHLDec)
	t[0x3B] = dec16(OpSP)
	t[0x3C] = inc8(OpA)
	t[0x3D] = dec8(OpA)
	t[0x3E] = ld8(OpA, OpImm8)
	t[0x3F] = ccf

	t[0xC0] = retCond(CondNZ)
	t[0xC1] = pop(OpBC)
	t[0xC2] = jp(CondNZ)
	t[0xC3] = jp(CondAlways)
	t[0xC4] = call(CondNZ)
	t[0xC5] = push(OpBC)
	t[0xC6] = aluAdd(OpImm8)
	t[0xC7] = rst(0x00)
	t[0xC8] = retCond(CondZ)
	t[0xC9] = ret
	t[0xCA] = jp(CondZ)
	// 0xCB is intercepted directly in Step() before this table is consulted.
	t[0xCC] = call(CondZ)
	t[0xCD] = call(CondAlways)
	t[0xCE] = aluAdc(OpImm8)
	t[0xCF] = rst(0x08)

	t[0xD0] = retCond(CondNC)
	t[0xD1] = pop(OpDE)
	t[0xD2] = jp(CondNC)
	t[0xD4] = call(CondNC)
	t[0xD5] = push(OpDE)
	t[0xD6] = aluSub(OpImm8)
	t[0xD7] = rst(0x10)
	t[0xD8] = retCond(CondC)
	t[0xD9] = reti
	t[0xDA] = jp(CondC)
	t[0xDC] = call(CondC)
	t[0xDE] = aluSbc(OpImm8)
	t[0xDF] = rst(0x18)

	t[0xE0] = ld8(OpIndFF00N, OpA)
	t[0xE1] = pop(OpHL)
	t[0xE2] = ld8(OpIndFF00C, OpA)
	t[0xE5] = push(OpHL)
	t[0xE6] = aluAnd(OpImm8)
	t[0xE7] = rst(0x20)
	t[0xE8] = addSPr8
	t[0xE9] = jpHL
	t[0xEA] = ld8(OpIndNN, OpA)
	t[0xEE] = aluXor(OpImm8)
	t[0xEF] = rst(0x28)

	t[0xF0] = ld8(OpA, OpIndFF00N)
	t[0xF1] = pop(OpAF)
	t[0xF2] = ld8(OpA, OpIndFF00C)
	t[0xF3] = di
	t[0xF5] = push(OpAF)
	t[0xF6] = aluOr(OpImm8)
	t[0xF7] = rst(0x30)
	t[0xF8] = ldHLSPr8
	t[0xF9] = ldSPHL
	t[0xFA] = ld8(OpA, OpIndNN)
	t[0xFB] = ei
	t[0xFE] = aluCp(OpImm8)
	t[0xFF] = rst(0x38)

	primaryOpcodeTable = t
}
