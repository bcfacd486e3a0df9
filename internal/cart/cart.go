// Package cart implements the cartridge side of the memory map: the
// header that every ROM image starts with, and the mapper chips (or lack
// of one) that decide what a CPU address in 0x0000-0x7FFF/0xA000-0xBFFF
// actually reaches.
package cart

// Cartridge is what the bus needs from whatever sits behind the ROM and
// external-RAM windows, whether that's a bare ROM image or a full MBC.
type Cartridge interface {
	// Read serves both ROM space (0x0000-0x7FFF) and external RAM
	// (0xA000-0xBFFF); the implementation decides which window addr
	// falls in.
	Read(addr uint16) byte
	// Write serves mapper control registers in ROM space and external
	// RAM writes; cartridges with no mapper (ROMOnly, ROMRAM) simply
	// ignore writes below 0xA000.
	Write(addr uint16, value byte)
	// SaveState/LoadState snapshot banking registers and RAM contents
	// for bus.Bus.SaveState to bundle alongside CPU/peripheral state.
	SaveState() []byte
	LoadState(data []byte)
}

// BatteryBacked is implemented by cartridges whose external RAM survives
// power loss on real hardware, so a host can persist it across runs.
// Implementations return a copy of RAM (nil if there is none) and accept
// the same shape back.
type BatteryBacked interface {
	SaveRAM() []byte
	LoadRAM(data []byte)
}

// cartTypeMapper selects a constructor by the header's CartType byte.
// Covers every type cartType 0x00/0x01/0x02/0x03/0x08/0x09 is required to
// support, plus MBC3/MBC5 so ROMs carrying those header bytes still get
// working banking rather than falling back to a static image.
func cartTypeMapper(cartType byte, rom []byte, ramSize int) Cartridge {
	switch cartType {
	case 0x00: // ROM ONLY
		return NewROMOnly(rom)
	case 0x01, 0x02, 0x03: // MBC1, MBC1+RAM, MBC1+RAM+BATTERY
		return NewMBC1(rom, ramSize)
	case 0x08, 0x09: // ROM+RAM, ROM+RAM+BATTERY: no mapper chip
		return NewROMRAM(rom, ramSize)
	case 0x0F, 0x10, 0x11, 0x12, 0x13: // MBC3 variants (RTC registers not modeled)
		return NewMBC3(rom, ramSize)
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E: // MBC5 variants
		return NewMBC5(rom, ramSize)
	default:
		return nil
	}
}

// NewCartridge parses the ROM's header and returns the matching mapper
// implementation, falling back to a plain ROM-only image for an
// unparseable or unrecognized header so malformed/homebrew ROMs still
// load instead of crashing the bus.
func NewCartridge(rom []byte) Cartridge {
	h, err := ParseHeader(rom)
	if err != nil {
		return NewROMOnly(rom)
	}
	if m := cartTypeMapper(h.CartType, rom, h.RAMSizeBytes); m != nil {
		return m
	}
	return NewROMOnly(rom)
}
