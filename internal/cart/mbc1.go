package cart

import (
	"bytes"
	"encoding/gob"
)

// MBC1 implements the MBC1 ROM/RAM banking scheme: up to 2MB ROM (125
// usable banks) and up to 32KB RAM, with the two banking modes the real
// chip exposes through the 0x6000-0x7FFF mode-select latch.
type MBC1 struct {
	rom []byte
	ram []byte

	romBankLo  byte // 5 bits, 2000-3FFF write target, 0 remapped to 1
	romBankHi  byte // 2 bits, 4000-5FFF write target; also doubles as RAM bank
	ramEnabled bool
	bankMode   byte // 0: ROM banking mode, 1: RAM banking mode
}

func NewMBC1(rom []byte, ramSize int) *MBC1 {
	m := &MBC1{rom: rom, romBankLo: 1}
	if ramSize > 0 {
		m.ram = make([]byte, ramSize)
	}
	return m
}

// effectiveROMOffset computes the byte offset of the current switchable
// bank into the ROM image: (hi<<19)|(lo<<14), i.e. bank number (hi<<5)|lo
// times 0x4000.
func (m *MBC1) effectiveROMOffset() int {
	bank := int(m.romBankLo) | int(m.romBankHi)<<5
	return bank * 0x4000
}

// ramBankOffset is zero unless banking mode 1 is selected, in which case
// the same two bits steer the external RAM bank instead of the ROM's
// upper address bits.
func (m *MBC1) ramBankOffset() int {
	if m.bankMode == 0 {
		return 0
	}
	return int(m.romBankHi) * 0x2000
}

func (m *MBC1) Read(addr uint16) byte {
	switch {
	case addr < 0x4000:
		bank := 0
		if m.bankMode == 1 {
			bank = int(m.romBankHi) << 5
		}
		off := bank*0x4000 + int(addr)
		if off < len(m.rom) {
			return m.rom[off]
		}
		return 0xFF
	case addr < 0x8000:
		off := m.effectiveROMOffset() + int(addr-0x4000)
		if off >= 0 && off < len(m.rom) {
			return m.rom[off]
		}
		return 0xFF
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled || len(m.ram) == 0 {
			return 0xFF
		}
		off := m.ramBankOffset() + int(addr-0xA000)
		if off >= 0 && off < len(m.ram) {
			return m.ram[off]
		}
		return 0xFF
	default:
		return 0xFF
	}
}

func (m *MBC1) Write(addr uint16, value byte) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case addr < 0x4000:
		m.romBankLo = value & 0x1F
		if m.romBankLo == 0 {
			m.romBankLo = 1
		}
	case addr < 0x6000:
		m.romBankHi = value & 0x03
	case addr < 0x8000:
		m.bankMode = value & 0x01
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled || len(m.ram) == 0 {
			return
		}
		off := m.ramBankOffset() + int(addr-0xA000)
		if off >= 0 && off < len(m.ram) {
			m.ram[off] = value
		}
	}
}

func (m *MBC1) SaveRAM() []byte {
	if len(m.ram) == 0 {
		return nil
	}
	out := make([]byte, len(m.ram))
	copy(out, m.ram)
	return out
}

func (m *MBC1) LoadRAM(data []byte) {
	if len(m.ram) == 0 || len(data) == 0 {
		return
	}
	copy(m.ram, data)
}

type mbc1State struct {
	RAM        []byte
	RomBankLo  byte
	RomBankHi  byte
	RamEnabled bool
	BankMode   byte
}

func (m *MBC1) SaveState() []byte {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	s := mbc1State{
		RAM:        append([]byte(nil), m.ram...),
		RomBankLo:  m.romBankLo,
		RomBankHi:  m.romBankHi,
		RamEnabled: m.ramEnabled,
		BankMode:   m.bankMode,
	}
	_ = enc.Encode(s)
	return buf.Bytes()
}

func (m *MBC1) LoadState(data []byte) {
	var s mbc1State
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&s); err != nil {
		return
	}
	if len(m.ram) > 0 && len(s.RAM) > 0 {
		copy(m.ram, s.RAM)
	}
	m.romBankLo, m.romBankHi, m.ramEnabled, m.bankMode = s.RomBankLo, s.RomBankHi, s.RamEnabled, s.BankMode
}
