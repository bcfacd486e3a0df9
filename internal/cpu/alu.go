package cpu

// add8 returns a+b mod 256 along with the carry-out and half-carry-out
// (carry out of bit 3) flags.
func add8(a, b byte) (result byte, carry, half bool) {
	sum := int(a) + int(b)
	result = byte(sum)
	carry = sum >= 256
	half = (a^b^result)&0x10 != 0
	return
}

// adc8 adds a+b+carryIn.
func adc8(a, b byte, carryIn bool) (result byte, carry, half bool) {
	ci := byte(0)
	if carryIn {
		ci = 1
	}
	sum := int(a) + int(b) + int(ci)
	result = byte(sum)
	carry = sum >= 256
	half = (a^b^result)&0x10 != 0
	return
}

// sub8 returns a-b mod 256 along with the borrow-out and half-borrow-out
// flags.
func sub8(a, b byte) (result byte, carry, half bool) {
	diff := int(a) - int(b)
	result = byte(diff)
	carry = a < b
	half = (a^b^result)&0x10 != 0
	return
}

// sbc8 subtracts a-b-carryIn.
func sbc8(a, b byte, carryIn bool) (result byte, carry, half bool) {
	ci := byte(0)
	if carryIn {
		ci = 1
	}
	diff := int(a) - int(b) - int(ci)
	result = byte(diff)
	carry = diff < 0
	half = (a^b^result)&0x10 != 0
	return
}

// add16 returns a+b mod 65536 with carry-out (bit 15 overflow) and
// half-carry-out (carry out of bit 11).
func add16(a, b uint16) (result uint16, carry, half bool) {
	sum := uint32(a) + uint32(b)
	result = uint16(sum)
	carry = sum >= 0x10000
	half = (a^b^result)&0x1000 != 0
	return
}

// add16Signed8 implements the ADD SP,r8 / LD HL,SP+r8 hardware quirk:
// off is sign-extended, but carry/half are computed from the low-byte
// arithmetic as if it were an 8-bit add of base's low byte and off.
func add16Signed8(base uint16, off int8) (result uint16, carry, half bool) {
	result = uint16(int32(base) + int32(off))
	lowSum := int(byte(base)) + int(byte(off))
	carry = lowSum >= 256
	half = (byte(base)^byte(off)^byte(lowSum))&0x10 != 0
	return
}
