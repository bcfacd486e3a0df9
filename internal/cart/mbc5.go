package cart

import (
	"bytes"
	"encoding/gob"
)

// MBC5 is the widest mapper this package models: a 9-bit ROM bank
// number addresses up to 8 MiB (512 banks of 0x4000), and a 4-bit RAM
// bank number addresses up to 128 KiB (16 banks of 0x2000). Unlike MBC1
// there's only one banking mode, and unlike MBC1/MBC3, writing 0 to the
// ROM bank register genuinely selects bank 0 in the switchable window —
// MBC5 has no bank-0-means-1 remap.
type MBC5 struct {
	rom []byte
	ram []byte

	romBank    uint16 // 9 bits, 0..511
	ramBank    byte   // 4 bits, 0..15
	ramEnabled bool
}

func NewMBC5(rom []byte, ramSize int) *MBC5 {
	m := &MBC5{rom: rom, romBank: 1}
	if ramSize > 0 {
		m.ram = make([]byte, ramSize)
	}
	return m
}

// switchableROMOffset is the byte offset of the bank currently mapped
// into 0x4000-0x7FFF.
func (m *MBC5) switchableROMOffset() int {
	return int(m.romBank) * 0x4000
}

// ramOffset is the byte offset of the bank currently mapped into
// 0xA000-0xBFFF, independent of any ROM banking mode since MBC5 RAM
// banking isn't coupled to ROM banking the way MBC1's is.
func (m *MBC5) ramOffset() int {
	return int(m.ramBank) * 0x2000
}

func (m *MBC5) Read(addr uint16) byte {
	switch {
	case addr < 0x4000:
		if int(addr) < len(m.rom) {
			return m.rom[addr]
		}
		return 0xFF
	case addr < 0x8000:
		off := m.switchableROMOffset() + int(addr-0x4000)
		if off >= 0 && off < len(m.rom) {
			return m.rom[off]
		}
		return 0xFF
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled || len(m.ram) == 0 {
			return 0xFF
		}
		off := m.ramOffset() + int(addr-0xA000)
		if off >= 0 && off < len(m.ram) {
			return m.ram[off]
		}
		return 0xFF
	default:
		return 0xFF
	}
}

func (m *MBC5) Write(addr uint16, value byte) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case addr < 0x3000: // low 8 bits of the 9-bit ROM bank number
		m.romBank = m.romBank&0x100 | uint16(value)
	case addr < 0x4000: // bit 8 of the ROM bank number
		if value&0x01 != 0 {
			m.romBank |= 0x100
		} else {
			m.romBank &^= 0x100
		}
	case addr < 0x6000:
		m.ramBank = value & 0x0F
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled || len(m.ram) == 0 {
			return
		}
		off := m.ramOffset() + int(addr-0xA000)
		if off >= 0 && off < len(m.ram) {
			m.ram[off] = value
		}
	}
}

func (m *MBC5) SaveRAM() []byte {
	if len(m.ram) == 0 {
		return nil
	}
	out := make([]byte, len(m.ram))
	copy(out, m.ram)
	return out
}

func (m *MBC5) LoadRAM(data []byte) {
	if len(m.ram) == 0 || len(data) == 0 {
		return
	}
	copy(m.ram, data)
}

// SaveState/LoadState for save states
type mbc5State struct {
	RAM        []byte
	RomBank    uint16
	RamBank    byte
	RamEnabled bool
}

func (m *MBC5) SaveState() []byte {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	s := mbc5State{RAM: append([]byte(nil), m.ram...), RomBank: m.romBank, RamBank: m.ramBank, RamEnabled: m.ramEnabled}
	_ = enc.Encode(s)
	return buf.Bytes()
}

func (m *MBC5) LoadState(data []byte) {
	var s mbc5State
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&s); err != nil {
		return
	}
	if len(m.ram) > 0 && len(s.RAM) > 0 {
		copy(m.ram, s.RAM)
	}
	m.romBank, m.ramBank, m.ramEnabled = s.RomBank, s.RamBank, s.RamEnabled
}
