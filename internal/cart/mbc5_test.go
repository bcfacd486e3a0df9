package cart

import "testing"

func TestMBC5_ROMBanking_NineBits(t *testing.T) {
	rom := make([]byte, 512*0x4000)
	rom[0x1FF*0x4000] = 0xAB
	m := NewMBC5(rom, 0)

	m.Write(0x2000, 0xFF) // low 8 bits
	m.Write(0x3000, 0x01) // bit 8
	if got := m.Read(0x4000); got != 0xAB {
		t.Fatalf("bank 0x1FF read got %02X want AB", got)
	}
}

func TestMBC5_RAMBanking(t *testing.T) {
	rom := make([]byte, 0x8000)
	m := NewMBC5(rom, 16*0x2000)

	m.Write(0x0000, 0x0A) // enable RAM
	m.Write(0x4000, 0x0F) // RAM bank 15
	m.Write(0xA000, 0x42)
	if got := m.Read(0xA000); got != 0x42 {
		t.Fatalf("RAM bank15 RW failed: got %02X", got)
	}

	m.Write(0x4000, 0x00)
	if got := m.Read(0xA000); got == 0x42 {
		t.Fatalf("bank0 should not see bank15's byte")
	}
}

func TestMBC5_RAMDisabled_ReadsFF(t *testing.T) {
	rom := make([]byte, 0x8000)
	m := NewMBC5(rom, 0x2000)
	if got := m.Read(0xA000); got != 0xFF {
		t.Fatalf("disabled RAM read = %02X, want FF", got)
	}
}

func TestMBC5_SaveState_RoundTrip(t *testing.T) {
	rom := make([]byte, 0x8000)
	m := NewMBC5(rom, 0x2000)
	m.Write(0x0000, 0x0A)
	m.Write(0x2000, 0x07)
	m.Write(0xA000, 0x99)

	snap := m.SaveState()
	n := NewMBC5(rom, 0x2000)
	n.LoadState(snap)

	if n.romBank != 0x07 || !n.ramEnabled {
		t.Fatalf("romBank/ramEnabled not restored: romBank=%d ramEnabled=%v", n.romBank, n.ramEnabled)
	}
	if got := n.Read(0xA000); got != 0x99 {
		t.Fatalf("RAM not restored: got %02X want 99", got)
	}
}
