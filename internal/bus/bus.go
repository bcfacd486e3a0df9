// Package bus implements the Game Boy's 16-bit memory map: cartridge
// ROM/RAM routed through a cart.Cartridge, a flat internal array for
// VRAM/WRAM/OAM/HRAM/echo, instantaneous OAM DMA, and the timer/serial/
// interrupt register window delegated to internal/peripheral.
package bus

import (
	"bytes"
	"encoding/gob"

	"github.com/go-gameboy/sm83core/internal/cart"
	"github.com/go-gameboy/sm83core/internal/peripheral"
)

const (
	regJOYP = 0xFF00
	regSB   = 0xFF01
	regSC   = 0xFF02
	regDIV  = 0xFF04
	regTIMA = 0xFF05
	regTMA  = 0xFF06
	regTAC  = 0xFF07
	regIF   = 0xFF0F
	regDMA  = 0xFF46
	regBootOff = 0xFF50
	regIE   = 0xFFFF
)

// Bus wires the cartridge mapper, a flat 0x8000-0xFFFF array, and the
// peripheral set together behind byte-addressed Read/Write.
type Bus struct {
	cart cart.Cartridge

	mem [0x10000]byte // only indices >= 0x8000 are ever touched

	joyp byte

	timer  *peripheral.Timer
	serial *peripheral.Serial
	irq    *peripheral.Interrupts

	bootROM    []byte
	bootActive bool
}

// New constructs a Bus over the given cartridge ROM image, selecting the
// mapper implementation from the parsed header's cartridge-type byte.
func New(rom []byte) *Bus {
	b := &Bus{cart: cart.NewCartridge(rom), joyp: 0xCF}
	b.irq = &peripheral.Interrupts{}
	b.timer = peripheral.NewTimer(b.irq)
	b.serial = peripheral.NewSerial(b.irq)
	return b
}

// SetBootROM installs a boot ROM image; while active it shadows cartridge
// reads for addresses 0x0000-0x00FF. Any write to 0xFF50 disables it,
// matching real hardware's boot-ROM handoff.
func (b *Bus) SetBootROM(rom []byte) {
	b.bootROM = rom
	b.bootActive = len(rom) > 0
}

func (b *Bus) Timer() *peripheral.Timer        { return b.timer }
func (b *Bus) Serial() *peripheral.Serial       { return b.serial }
func (b *Bus) Interrupts() *peripheral.Interrupts { return b.irq }

func (b *Bus) Read(addr uint16) byte {
	if b.bootActive && addr < 0x0100 && int(addr) < len(b.bootROM) {
		return b.bootROM[addr]
	}
	switch {
	case addr < 0x8000:
		return b.cart.Read(addr)
	case addr >= 0xA000 && addr < 0xC000:
		return b.cart.Read(addr)
	case addr >= 0xE000 && addr < 0xFE00:
		return b.mem[addr-0x2000]
	case addr >= 0xFEA0 && addr < 0xFF00:
		return 0xFF
	case addr == regJOYP:
		return b.joyp | 0xC0
	case addr == regSB:
		return b.serial.SB
	case addr == regSC:
		return b.serial.SC | 0x7E
	case addr == regDIV:
		return b.timer.DIV()
	case addr == regTIMA:
		return b.timer.TIMA
	case addr == regTMA:
		return b.timer.TMA
	case addr == regTAC:
		return b.timer.TAC | 0xF8
	case addr == regIF:
		return b.irq.IF | 0xE0
	default:
		return b.mem[addr]
	}
}

func (b *Bus) Write(addr uint16, v byte) {
	switch {
	case addr < 0x8000:
		b.cart.Write(addr, v)
	case addr >= 0xA000 && addr < 0xC000:
		b.cart.Write(addr, v)
	case addr >= 0xE000 && addr < 0xFE00:
		b.mem[addr-0x2000] = v
	case addr >= 0xFEA0 && addr < 0xFF00:
		// unusable region, writes ignored
	case addr == regJOYP:
		b.joyp = v & 0x3F
	case addr == regSB:
		b.serial.SB = v
	case addr == regSC:
		b.serial.SC = v
	case addr == regDIV:
		b.timer.ResetDIV()
	case addr == regTIMA:
		b.timer.TIMA = v
	case addr == regTMA:
		b.timer.TMA = v
	case addr == regTAC:
		b.timer.TAC = v & 0x07
	case addr == regIF:
		b.irq.IF = v & 0x1F
	case addr == regDMA:
		b.mem[regDMA] = v
		b.doDMA(v)
	case addr == regBootOff:
		b.bootActive = false
		b.mem[addr] = v
	default:
		b.mem[addr] = v
	}
}

// doDMA copies 160 bytes from (page<<8) to OAM (0xFE00-0xFE9F). Modeled
// as instantaneous per spec's open question on DMA M-cycle cost.
func (b *Bus) doDMA(page byte) {
	src := uint16(page) << 8
	for i := uint16(0); i < 160; i++ {
		b.mem[0xFE00+i] = b.Read(src + i)
	}
}

// TickPeripherals advances the timer and serial port by the given number
// of T-cycles; the interrupt controller has no clock of its own and only
// receives their requests. The CPU step loop calls this once per
// instruction with the accumulated M-cycles*4.
func (b *Bus) TickPeripherals(tCycles int) {
	b.timer.Tick(tCycles)
	b.serial.Tick(tCycles)
}

// IE reports the interrupt-enable mask stored at 0xFFFF.
func (b *Bus) IE() byte { return b.mem[regIE] }

// IF reports the interrupt-request mask owned by the interrupt controller.
func (b *Bus) IF() byte { return b.irq.IF }

// ClearIF clears a single pending interrupt request bit.
func (b *Bus) ClearIF(bit byte) { b.irq.Clear(bit) }

type busState struct {
	Mem     [0x10000]byte
	JOYP    byte
	CartRaw []byte

	TimerTIMA, TimerTMA, TimerTAC byte
	SerialSB, SerialSC            byte
	IF                            byte
}

// SaveState returns a snapshot of bus-owned state (the flat memory array,
// JOYP, the TIMA/TMA/TAC, SB/SC and IF register bytes) plus the cartridge
// mapper's own SaveState blob. The DIV counter, the timer and serial
// cycle accumulators, the serial output ring and the boot-ROM latch are
// not included. A host chooses whether and where to persist the bytes.
func (b *Bus) SaveState() []byte {
	s := busState{
		Mem:       b.mem,
		JOYP:      b.joyp,
		CartRaw:   b.cart.SaveState(),
		TimerTIMA: b.timer.TIMA,
		TimerTMA:  b.timer.TMA,
		TimerTAC:  b.timer.TAC,
		SerialSB:  b.serial.SB,
		SerialSC:  b.serial.SC,
		IF:        b.irq.IF,
	}
	var buf bytes.Buffer
	_ = gob.NewEncoder(&buf).Encode(s)
	return buf.Bytes()
}

// LoadState restores a snapshot previously produced by SaveState.
func (b *Bus) LoadState(data []byte) error {
	var s busState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return err
	}
	b.mem = s.Mem
	b.joyp = s.JOYP
	b.cart.LoadState(s.CartRaw)
	b.timer.TIMA, b.timer.TMA, b.timer.TAC = s.TimerTIMA, s.TimerTMA, s.TimerTAC
	b.serial.SB, b.serial.SC = s.SerialSB, s.SerialSC
	b.irq.IF = s.IF
	return nil
}
