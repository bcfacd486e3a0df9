package cart

import (
	"bytes"
	"encoding/gob"
)

// ROMRAM implements cartridge types 0x08 (ROM+RAM) and 0x09
// (ROM+RAM+BATTERY): no mapper chip at all, just a single fixed ROM bank
// at 0x0000-0x7FFF and external RAM at 0xA000-0xBFFF. Real boards of this
// class have no enable gate for the RAM since there is no MBC to hold
// one; it is always readable and writable once present.
type ROMRAM struct {
	rom []byte
	ram []byte
}

func NewROMRAM(rom []byte, ramSize int) *ROMRAM {
	m := &ROMRAM{rom: rom}
	if ramSize > 0 {
		m.ram = make([]byte, ramSize)
	}
	return m
}

func (m *ROMRAM) Read(addr uint16) byte {
	switch {
	case addr < 0x8000:
		if int(addr) < len(m.rom) {
			return m.rom[addr]
		}
		return 0xFF
	case addr >= 0xA000 && addr <= 0xBFFF:
		off := int(addr - 0xA000)
		if off < len(m.ram) {
			return m.ram[off]
		}
		return 0xFF
	default:
		return 0xFF
	}
}

// Write ignores anything below 0xA000: there is no mapper register file
// to steer, since this cartridge class has no MBC.
func (m *ROMRAM) Write(addr uint16, value byte) {
	if addr < 0xA000 || addr > 0xBFFF {
		return
	}
	off := int(addr - 0xA000)
	if off < len(m.ram) {
		m.ram[off] = value
	}
}

func (m *ROMRAM) SaveRAM() []byte {
	if len(m.ram) == 0 {
		return nil
	}
	out := make([]byte, len(m.ram))
	copy(out, m.ram)
	return out
}

func (m *ROMRAM) LoadRAM(data []byte) {
	if len(m.ram) == 0 || len(data) == 0 {
		return
	}
	copy(m.ram, data)
}

type romRAMState struct {
	RAM []byte
}

func (m *ROMRAM) SaveState() []byte {
	var buf bytes.Buffer
	s := romRAMState{RAM: append([]byte(nil), m.ram...)}
	_ = gob.NewEncoder(&buf).Encode(s)
	return buf.Bytes()
}

func (m *ROMRAM) LoadState(data []byte) {
	var s romRAMState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return
	}
	if len(m.ram) > 0 && len(s.RAM) > 0 {
		copy(m.ram, s.RAM)
	}
}
