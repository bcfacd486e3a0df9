package cart

// ROMOnly is CartType 0x00: the entire 32 KiB address space 0x0000-0x7FFF
// is one fixed ROM image, there's no mapper register file, and there's
// no external RAM window at all — unlike ROMRAM (0x08/0x09), which looks
// almost identical but does have RAM behind 0xA000-0xBFFF.
type ROMOnly struct {
	rom []byte
}

func NewROMOnly(rom []byte) *ROMOnly {
	return &ROMOnly{rom: rom}
}

func (c *ROMOnly) Read(addr uint16) byte {
	if addr < 0x8000 && int(addr) < len(c.rom) {
		return c.rom[addr]
	}
	return 0xFF
}

// Write is a no-op across the whole address space: there's no mapper to
// steer and no RAM to hold the value.
func (c *ROMOnly) Write(addr uint16, value byte) {}

func (c *ROMOnly) SaveState() []byte     { return nil }
func (c *ROMOnly) LoadState(data []byte) {}
