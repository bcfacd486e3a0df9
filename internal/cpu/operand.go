package cpu

// Kind enumerates every addressing mode an instruction's operand can take.
type Kind int

const (
	KindNone Kind = iota
	KindA
	KindAAlias // alias of A; load8/store8 treat it exactly like KindA
	KindB
	KindC
	KindD
	KindE
	KindH
	KindL
	KindAF
	KindBC
	KindDE
	KindHL
	KindSP
	KindImm8
	KindImm16
	KindIndBC
	KindIndDE
	KindIndHL
	KindIndHLInc
	KindIndHLDec
	KindIndNN
	KindIndFF00N
	KindIndFF00C
)

// Operand is the sum-type spec.md's addressing section describes,
// represented by its Kind tag alone: immediates are read through the
// CPU's fetch helpers at load/store time instead of being pre-resolved.
type Operand struct {
	Kind Kind
}

var (
	OpA    = Operand{KindA}
	OpAAlt = Operand{KindAAlias}
	OpB    = Operand{KindB}
	OpC    = Operand{KindC}
	OpD    = Operand{KindD}
	OpE    = Operand{KindE}
	OpH    = Operand{KindH}
	OpL    = Operand{KindL}
	OpAF   = Operand{KindAF}
	OpBC   = Operand{KindBC}
	OpDE   = Operand{KindDE}
	OpHL   = Operand{KindHL}
	OpSP   = Operand{KindSP}
	OpImm8 = Operand{KindImm8}
	OpImm16     = Operand{KindImm16}
	OpIndBC     = Operand{KindIndBC}
	OpIndDE     = Operand{KindIndDE}
	OpIndHL     = Operand{KindIndHL}
	OpIndHLInc  = Operand{KindIndHLInc}
	OpIndHLDec  = Operand{KindIndHLDec}
	OpIndNN     = Operand{KindIndNN}
	OpIndFF00N  = Operand{KindIndFF00N}
	OpIndFF00C  = Operand{KindIndFF00C}
)

// load8 resolves a read operand to a byte value, consuming one M-cycle
// per immediate fetch or indirect memory access. (HL+)/(HL-) mutate HL
// after the load completes.
func (c *CPU) load8(op Operand) byte {
	switch op.Kind {
	case KindA, KindAAlias:
		return c.A
	case KindB:
		return c.B
	case KindC:
		return c.C
	case KindD:
		return c.D
	case KindE:
		return c.E
	case KindH:
		return c.H
	case KindL:
		return c.L
	case KindImm8:
		return c.fetch8()
	case KindIndBC:
		return c.read8(c.getBC())
	case KindIndDE:
		return c.read8(c.getDE())
	case KindIndHL:
		return c.read8(c.getHL())
	case KindIndHLInc:
		addr := c.getHL()
		v := c.read8(addr)
		c.setHL(addr + 1)
		return v
	case KindIndHLDec:
		addr := c.getHL()
		v := c.read8(addr)
		c.setHL(addr - 1)
		return v
	case KindIndNN:
		addr := c.fetch16()
		return c.read8(addr)
	case KindIndFF00N:
		n := c.fetch8()
		return c.read8(0xFF00 | uint16(n))
	case KindIndFF00C:
		return c.read8(0xFF00 | uint16(c.C))
	default:
		panic(&OperandMisuseError{Op: "load8", Kind: op.Kind})
	}
}

func (c *CPU) store8(op Operand, v byte) {
	switch op.Kind {
	case KindA, KindAAlias:
		c.A = v
	case KindB:
		c.B = v
	case KindC:
		c.C = v
	case KindD:
		c.D = v
	case KindE:
		c.E = v
	case KindH:
		c.H = v
	case KindL:
		c.L = v
	case KindIndBC:
		c.write8(c.getBC(), v)
	case KindIndDE:
		c.write8(c.getDE(), v)
	case KindIndHL:
		c.write8(c.getHL(), v)
	case KindIndHLInc:
		addr := c.getHL()
		c.write8(addr, v)
		c.setHL(addr + 1)
	case KindIndHLDec:
		addr := c.getHL()
		c.write8(addr, v)
		c.setHL(addr - 1)
	case KindIndNN:
		addr := c.fetch16()
		c.write8(addr, v)
	case KindIndFF00N:
		n := c.fetch8()
		c.write8(0xFF00|uint16(n), v)
	case KindIndFF00C:
		c.write8(0xFF00|uint16(c.C), v)
	default:
		panic(&OperandMisuseError{Op: "store8", Kind: op.Kind})
	}
}

func (c *CPU) load16(op Operand) uint16 {
	switch op.Kind {
	case KindAF:
		return c.getAF()
	case KindBC:
		return c.getBC()
	case KindDE:
		return c.getDE()
	case KindHL:
		return c.getHL()
	case KindSP:
		return c.SP
	case KindImm16:
		return c.fetch16()
	default:
		panic(&OperandMisuseError{Op: "load16", Kind: op.Kind})
	}
}

func (c *CPU) store16(op Operand, v uint16) {
	switch op.Kind {
	case KindAF:
		c.setAF(v)
	case KindBC:
		c.setBC(v)
	case KindDE:
		c.setDE(v)
	case KindHL:
		c.setHL(v)
	case KindSP:
		c.SP = v
	default:
		panic(&OperandMisuseError{Op: "store16", Kind: op.Kind})
	}
}

// Cond is a branch condition.
type Cond int

const (
	CondAlways Cond = iota
	CondNZ
	CondZ
	CondNC
	CondC
)

func (c *CPU) test(cond Cond) bool {
	switch cond {
	case CondAlways:
		return true
	case CondNZ:
		return !c.flag(flagZ)
	case CondZ:
		return c.flag(flagZ)
	case CondNC:
		return !c.flag(flagC)
	case CondC:
		return c.flag(flagC)
	default:
		return false
	}
}

// OperandMisuseError is a programmer error: a load/store called with an
// Operand kind the addressing mode does not support (e.g. load16 of an
// 8-bit-only operand). It is never triggered by a well-formed opcode
// table and indicates a bug in the table, not in emulated code.
type OperandMisuseError struct {
	Op   string
	Kind Kind
}

func (e *OperandMisuseError) Error() string {
	return "cpu: operand misuse"
}
