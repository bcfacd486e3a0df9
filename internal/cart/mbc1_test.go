package cart

import "testing"

// markedBankROM builds a ROM with n banks of 0x4000 bytes, each bank's
// first byte equal to its own bank number, so reads can be checked
// against "which bank is mapped in" without any header involved.
func markedBankROM(banks int) []byte {
	rom := make([]byte, banks*0x4000)
	for bank := 0; bank < banks; bank++ {
		rom[bank*0x4000] = byte(bank)
	}
	return rom
}

func TestMBC1_SwitchableBankFollowsRegisterWrites(t *testing.T) {
	m := NewMBC1(markedBankROM(8), 0)

	if got := m.Read(0x0000); got != 0x00 {
		t.Fatalf("fixed bank0 read = %#02x, want 00", got)
	}
	if got := m.Read(0x4000); got != 0x01 {
		t.Fatalf("default switchable bank read = %#02x, want 01", got)
	}

	m.Write(0x2000, 0x03)
	if got := m.Read(0x4000); got != 0x03 {
		t.Fatalf("after selecting bank 3, read = %#02x, want 03", got)
	}

	m.Write(0x2000, 0x00)
	if got := m.Read(0x4000); got != 0x01 {
		t.Fatalf("writing bank 0 should remap to bank 1, got %#02x", got)
	}
}

func TestMBC1_RAMBankingModeSelectsDistinctBank(t *testing.T) {
	m := NewMBC1(markedBankROM(8), 32*1024)

	m.Write(0x0000, 0x0A) // enable RAM
	m.Write(0x6000, 0x01) // mode 1: the hi bits steer RAM bank, not ROM
	m.Write(0x4000, 0x02) // select RAM bank 2

	m.Write(0xA000, 0x77)
	if got := m.Read(0xA000); got != 0x77 {
		t.Fatalf("RAM bank 2 round-trip = %#02x, want 77", got)
	}

	// Switching back to bank 0 must not see bank 2's data.
	m.Write(0x4000, 0x00)
	if got := m.Read(0xA000); got == 0x77 {
		t.Fatal("RAM bank 0 should be independent of bank 2's contents")
	}
}

func TestMBC1_RAMDisabledReadsOpenBus(t *testing.T) {
	m := NewMBC1(markedBankROM(2), 8*1024)
	m.Write(0xA000, 0x55) // RAM not enabled yet, write is dropped
	if got := m.Read(0xA000); got != 0xFF {
		t.Fatalf("disabled RAM read = %#02x, want FF", got)
	}
}

func TestMBC1_SaveStateRoundTrip(t *testing.T) {
	m := NewMBC1(markedBankROM(8), 8*1024)
	m.Write(0x0000, 0x0A)
	m.Write(0x2000, 0x05)
	m.Write(0xA000, 0x9C)

	snap := m.SaveState()

	other := NewMBC1(markedBankROM(8), 8*1024)
	other.LoadState(snap)

	if got := other.Read(0x4000); got != 0x05 {
		t.Fatalf("restored ROM bank read = %#02x, want 05", got)
	}
	if got := other.Read(0xA000); got != 0x9C {
		t.Fatalf("restored RAM read = %#02x, want 9C", got)
	}
}
