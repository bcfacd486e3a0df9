package cpu

// cbOpcodeTable is the 256-entry CB-prefixed dispatch table: eight rotate/
// shift rows (0x00-0x3F), then BIT/RES/SET across all eight operand slots
// for each of the eight bit positions (0x40-0xFF).
var cbOpcodeTable [256]execFunc

func init() {
	for reg := 0; reg < 8; reg++ {
		op := cbOperand(byte(reg))
		cbOpcodeTable[0x00+reg] = cbRotate(op, rlc)
		cbOpcodeTable[0x08+reg] = cbRotate(op, rrc)
		cbOpcodeTable[0x10+reg] = cbRotateCarry(op, rl)
		cbOpcodeTable[0x18+reg] = cbRotateCarry(op, rr)
		cbOpcodeTable[0x20+reg] = cbRotate(op, sla)
		cbOpcodeTable[0x28+reg] = cbRotate(op, sra)
		cbOpcodeTable[0x30+reg] = cbRotate(op, swap)
		cbOpcodeTable[0x38+reg] = cbRotate(op, srl)

		for n := byte(0); n < 8; n++ {
			cbOpcodeTable[0x40+int(n)*8+reg] = cbBit(n, op)
			cbOpcodeTable[0x80+int(n)*8+reg] = cbRes(n, op)
			cbOpcodeTable[0xC0+int(n)*8+reg] = cbSet(n, op)
		}
	}
}
