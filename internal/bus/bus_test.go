package bus

import "testing"

func romOnlyImage(size int) []byte {
	rom := make([]byte, size)
	rom[0x0147] = 0x00 // ROM ONLY
	rom[0x0148] = 0x00
	rom[0x0149] = 0x00
	return rom
}

func TestBus_WRAM_EchoMirror(t *testing.T) {
	b := New(romOnlyImage(0x8000))

	b.Write(0xC010, 0x42)
	if got := b.Read(0xE010); got != 0x42 {
		t.Fatalf("echo read = %02X, want 0x42", got)
	}

	b.Write(0xE020, 0x99)
	if got := b.Read(0xC020); got != 0x99 {
		t.Fatalf("WRAM read after echo write = %02X, want 0x99", got)
	}
}

func TestBus_UnusableRegion_ReadsFF(t *testing.T) {
	b := New(romOnlyImage(0x8000))
	if got := b.Read(0xFEA5); got != 0xFF {
		t.Fatalf("unusable read = %02X, want 0xFF", got)
	}
	b.Write(0xFEA5, 0x55)
	if got := b.Read(0xFEA5); got != 0xFF {
		t.Fatalf("unusable region should ignore writes, got %02X", got)
	}
}

func TestBus_HRAM_RoundTrip(t *testing.T) {
	b := New(romOnlyImage(0x8000))
	b.Write(0xFF80, 0x7B)
	if got := b.Read(0xFF80); got != 0x7B {
		t.Fatalf("HRAM read = %02X, want 0x7B", got)
	}
}

func TestBus_DMA_CopiesToOAM(t *testing.T) {
	b := New(romOnlyImage(0x8000))
	for i := 0; i < 160; i++ {
		b.Write(0xC100+uint16(i), byte(i))
	}
	b.Write(0xFF46, 0xC1)

	for i := 0; i < 160; i++ {
		if got := b.Read(0xFE00 + uint16(i)); got != byte(i) {
			t.Fatalf("OAM[%d] = %02X, want %02X", i, got, byte(i))
		}
	}
}

func TestBus_DIV_WriteResets(t *testing.T) {
	b := New(romOnlyImage(0x8000))
	b.TickPeripherals(2000)
	if b.Read(0xFF04) == 0 {
		t.Fatalf("expected DIV to have advanced")
	}
	b.Write(0xFF04, 0xAB) // any value resets to 0
	if got := b.Read(0xFF04); got != 0 {
		t.Fatalf("DIV after write = %02X, want 0", got)
	}
}

func TestBus_TAC_ReadMasksUpperBits(t *testing.T) {
	b := New(romOnlyImage(0x8000))
	b.Write(0xFF07, 0x05)
	if got := b.Read(0xFF07); got != 0xFD {
		t.Fatalf("TAC read = %02X, want 0xFD (0xF8|0x05)", got)
	}
}

func TestBus_IF_ReadMasksUpperBits(t *testing.T) {
	b := New(romOnlyImage(0x8000))
	b.Write(0xFF0F, 0x3F)
	if got := b.Read(0xFF0F); got != 0xFF {
		t.Fatalf("IF read = %02X, want 0xFF (0xE0|0x1F)", got)
	}
}

func TestBus_IE_PlainByte(t *testing.T) {
	b := New(romOnlyImage(0x8000))
	b.Write(0xFFFF, 0x1F)
	if got := b.Read(0xFFFF); got != 0x1F {
		t.Fatalf("IE read = %02X, want 0x1F", got)
	}
}

func TestBus_SaveState_RoundTrip(t *testing.T) {
	b := New(romOnlyImage(0x8000))
	b.Write(0xC000, 0x11)
	b.Write(0xFF05, 0x22)
	snap := b.SaveState()

	b2 := New(romOnlyImage(0x8000))
	if err := b2.LoadState(snap); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if got := b2.Read(0xC000); got != 0x11 {
		t.Fatalf("restored WRAM = %02X, want 0x11", got)
	}
	if got := b2.Read(0xFF05); got != 0x22 {
		t.Fatalf("restored TIMA = %02X, want 0x22", got)
	}
}

func TestBus_BootROM_ShadowsLowAddresses(t *testing.T) {
	rom := romOnlyImage(0x8000)
	rom[0x0000] = 0xAA
	b := New(rom)
	b.SetBootROM([]byte{0x11, 0x22})

	if got := b.Read(0x0000); got != 0x11 {
		t.Fatalf("boot ROM read = %02X, want 0x11", got)
	}
	b.Write(0xFF50, 0x01)
	if got := b.Read(0x0000); got != 0xAA {
		t.Fatalf("after boot handoff, cart ROM read = %02X, want 0xAA", got)
	}
}
