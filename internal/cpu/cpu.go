package cpu

import (
	"bytes"
	"encoding/gob"
)

// execFunc is one opcode's body. It reads/writes registers and issues
// bus accesses through the CPU's tick-accounted helpers; the Step loop
// derives the instruction's M-cycle cost from how many ticks it made,
// rather than from a return value.
type execFunc func(c *CPU)

// Step executes exactly one instruction (or, while halted, consumes a
// single M-cycle) and returns the number of T-cycles it took. Peripherals
// are ticked for that many T-cycles before Step returns; a pending
// interrupt is serviced at the top of Step, ahead of the next fetch.
func (c *CPU) Step() (tCycles int, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case *DecodeFatalError, *OperandMisuseError:
				err = r.(error)
			default:
				panic(r)
			}
		}
	}()

	c.mCycle = 0

	if c.halted {
		c.tick()
		ie, iflag := c.bus.IE(), c.bus.IF()
		if ie&iflag&0x1F != 0 {
			c.halted = false
		}
		if c.IME {
			c.dispatchIfPending(ie, iflag)
		}
		return c.finishStep(), nil
	}

	if c.IME {
		ie, iflag := c.bus.IE(), c.bus.IF()
		if c.dispatchIfPending(ie, iflag) {
			return c.finishStep(), nil
		}
	}

	wasEIPending := c.eiPending

	opcode := c.fetch8()
	if c.haltBug {
		// The byte at the old PC was read without PC advancing on the
		// step that set haltBug; undo that single advance here so the
		// very next fetch re-reads the same byte once more.
		c.PC--
		c.haltBug = false
	}

	if opcode == 0xCB {
		cb := c.fetch8()
		cbOpcodeTable[cb](c)
	} else {
		primaryOpcodeTable[opcode](c)
	}

	if wasEIPending {
		c.IME = true
		c.eiPending = false
	}

	return c.finishStep(), nil
}

// finishStep converts the accumulated M-cycles to T-cycles, advances the
// free-running system counter, ticks peripherals, and emits a trace
// record for the instruction boundary that just completed.
func (c *CPU) finishStep() int {
	tCycles := c.mCycle * 4
	c.sysCounter += uint16(tCycles)
	c.bus.TickPeripherals(tCycles)
	c.exeCounter++
	c.emitTrace()
	return tCycles
}

// dispatchIfPending implements the dispatch spec.md section 4.6 describes:
// lowest-index pending interrupt wins, costs 3 M-cycles (1 internal, 2 for
// the PC push), clears IME and the serviced IF bit.
func (c *CPU) dispatchIfPending(ie, iflag byte) bool {
	bit, ok := pendingBit(ie, iflag)
	if !ok {
		return false
	}
	c.bus.ClearIF(bit)
	c.IME = false
	c.tick()
	c.push16(c.PC)
	c.PC = irqVectors[bit]
	return true
}

var irqVectors = [5]uint16{0x40, 0x48, 0x50, 0x58, 0x60}

func pendingBit(ie, iflag byte) (bit byte, ok bool) {
	active := ie & iflag & 0x1F
	if active == 0 {
		return 0, false
	}
	for b := byte(0); b < 5; b++ {
		if active&(1<<b) != 0 {
			return b, true
		}
	}
	return 0, false
}

func (c *CPU) emitTrace() {
	if c.traceSink == nil {
		return
	}
	rec := Record{
		ExeCounter: c.exeCounter,
		PC:         c.PC,
		SP:         c.SP,
		A:          c.A,
		Z:          c.flag(flagZ),
		N:          c.flag(flagN),
		H:          c.flag(flagH),
		C:          c.flag(flagC),
		BC:         c.getBC(),
		DE:         c.getDE(),
		HL:         c.getHL(),
		IME:        c.IME,
		IF:         c.bus.IF(),
		IE:         c.bus.IE(),
		HALT:       c.halted,
	}
	_ = c.traceSink.Write(rec)
}

type cpuState struct {
	A, F, B, C, D, E, H, L byte
	SP, PC                 uint16
	IME, Halted, HaltBug   bool
	EIPending              bool
	ExeCounter             uint64
}

// SaveState returns a self-contained snapshot of the register file and
// control-flow latches.
func (c *CPU) SaveState() []byte {
	s := cpuState{
		A: c.A, F: c.F, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		SP: c.SP, PC: c.PC,
		IME: c.IME, Halted: c.halted, HaltBug: c.haltBug, EIPending: c.eiPending,
		ExeCounter: c.exeCounter,
	}
	var buf bytes.Buffer
	_ = gob.NewEncoder(&buf).Encode(s)
	return buf.Bytes()
}

// LoadState restores a snapshot previously produced by SaveState.
func (c *CPU) LoadState(data []byte) error {
	var s cpuState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return err
	}
	c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L = s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L
	c.SP, c.PC = s.SP, s.PC
	c.IME, c.halted, c.haltBug, c.eiPending = s.IME, s.Halted, s.HaltBug, s.EIPending
	c.exeCounter = s.ExeCounter
	return nil
}
