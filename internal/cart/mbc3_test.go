package cart

import "testing"

func TestMBC3_ROMBanking(t *testing.T) {
	rom := make([]byte, 256*1024)
	for bank := 0; bank < 16; bank++ {
		rom[bank*0x4000] = byte(bank)
	}
	m := NewMBC3(rom, 0)

	if got := m.Read(0x4000); got != 0x01 {
		t.Fatalf("default switchable bank = %02X, want 01", got)
	}
	m.Write(0x2000, 0x05)
	if got := m.Read(0x4000); got != 0x05 {
		t.Fatalf("bank5 read got %02X want 05", got)
	}
	m.Write(0x2000, 0x00)
	if got := m.Read(0x4000); got != 0x01 {
		t.Fatalf("bank0->1 remap failed: got %02X", got)
	}
}

func TestMBC3_RAMBanking(t *testing.T) {
	rom := make([]byte, 0x8000)
	m := NewMBC3(rom, 4*0x2000)

	m.Write(0x0000, 0x0A) // enable RAM
	m.Write(0x4000, 0x02) // select RAM bank 2
	m.Write(0xA000, 0x7E)
	if got := m.Read(0xA000); got != 0x7E {
		t.Fatalf("RAM bank2 RW failed: got %02X", got)
	}

	m.Write(0x4000, 0x01)
	if got := m.Read(0xA000); got == 0x7E {
		t.Fatalf("bank1 should not see bank2's byte")
	}
}

func TestMBC3_RAMDisabled_ReadsFF(t *testing.T) {
	rom := make([]byte, 0x8000)
	m := NewMBC3(rom, 0x2000)
	if got := m.Read(0xA000); got != 0xFF {
		t.Fatalf("disabled RAM read = %02X, want FF", got)
	}
}

func TestMBC3_RTCRegisterSelect_TreatedAsBank0(t *testing.T) {
	// Selecting an RTC register index (0x08-0x0C) is accepted without
	// erroring; since RTC is not modeled, it degrades to RAM bank 0.
	rom := make([]byte, 0x8000)
	m := NewMBC3(rom, 0x2000)
	m.Write(0x0000, 0x0A)
	m.Write(0xA000, 0x11)
	m.Write(0x4000, 0x08)
	if got := m.Read(0xA000); got != 0x11 {
		t.Fatalf("RTC-select fallback got %02X, want 11 (bank 0 byte)", got)
	}
}

func TestMBC3_SaveState_RoundTrip(t *testing.T) {
	rom := make([]byte, 0x8000)
	m := NewMBC3(rom, 0x2000)
	m.Write(0x0000, 0x0A)
	m.Write(0x2000, 0x03)
	m.Write(0xA000, 0x55)

	snap := m.SaveState()
	n := NewMBC3(rom, 0x2000)
	n.LoadState(snap)

	if n.romBank != 0x03 || !n.ramEnabled {
		t.Fatalf("romBank/ramEnabled not restored: romBank=%d ramEnabled=%v", n.romBank, n.ramEnabled)
	}
	if got := n.Read(0xA000); got != 0x55 {
		t.Fatalf("RAM not restored: got %02X want 55", got)
	}
}
