package cart

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// headerEnd is the last byte offset the fixed cartridge header occupies;
// a ROM shorter than this can't be parsed at all.
const headerEnd = 0x014F

// nintendoLogo is the 48-byte bitmap every licensed ROM carries at
// 0x0104-0x0133. Real hardware refuses to boot a cartridge whose copy
// doesn't match; this parser only checks it for informational purposes
// since homebrew and test ROMs frequently omit it.
var nintendoLogo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E, 0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// Header is the parsed form of the 0x0100-0x014F cartridge header block
// every ROM image carries, plus a handful of decoded convenience fields
// callers otherwise have to compute themselves.
type Header struct {
	Title          string // trimmed ASCII, 0x0134-0x0143
	CGBFlag        byte   // 0x0143
	NewLicensee    string // 0x0144-0x0145, meaningful only when OldLicensee==0x33
	SGBFlag        byte   // 0x0146
	CartType       byte   // 0x0147: selects the mapper, see NewCartridge
	ROMSizeCode    byte   // 0x0148
	RAMSizeCode    byte   // 0x0149
	Destination    byte   // 0x014A
	OldLicensee    byte   // 0x014B
	ROMVersion     byte   // 0x014C
	HeaderChecksum byte   // 0x014D
	GlobalChecksum uint16 // 0x014E-0x014F

	ROMSizeBytes int
	ROMBanks     int
	RAMSizeBytes int
	CartTypeStr  string
}

// ParseHeader reads the fixed header fields out of rom and decodes the
// size-code fields into byte counts. It does not reject ROMs with a
// corrupt logo or bad checksum — see HeaderChecksumOK for that — only
// ROMs too short to contain the header at all.
func ParseHeader(rom []byte) (*Header, error) {
	if len(rom) < headerEnd+1 {
		return nil, fmt.Errorf("cart: ROM is %d bytes, too small to hold a header through 0x%04X", len(rom), headerEnd)
	}

	title := strings.TrimRight(string(rom[0x0134:0x0144]), "\x00")

	h := &Header{
		Title:          title,
		CGBFlag:        rom[0x0143],
		NewLicensee:    string(rom[0x0144:0x0146]),
		SGBFlag:        rom[0x0146],
		CartType:       rom[0x0147],
		ROMSizeCode:    rom[0x0148],
		RAMSizeCode:    rom[0x0149],
		Destination:    rom[0x014A],
		OldLicensee:    rom[0x014B],
		ROMVersion:     rom[0x014C],
		HeaderChecksum: rom[0x014D],
		GlobalChecksum: binary.BigEndian.Uint16(rom[0x014E:0x0150]),
	}

	h.ROMSizeBytes, h.ROMBanks = decodeROMSize(h.ROMSizeCode)
	h.RAMSizeBytes = decodeRAMSize(h.RAMSizeCode)
	h.CartTypeStr = cartTypeString(h.CartType)
	return h, nil
}

// LogoOK reports whether rom's 0x0104-0x0133 region matches the
// canonical Nintendo logo bitmap. Real hardware's boot ROM halts if this
// fails; ParseHeader itself doesn't enforce it so homebrew/test ROMs
// that omit the logo still load.
func LogoOK(rom []byte) bool {
	if len(rom) < 0x0104+len(nintendoLogo) {
		return false
	}
	for i, want := range nintendoLogo {
		if rom[0x0104+i] != want {
			return false
		}
	}
	return true
}

// HeaderChecksumOK verifies the one-byte checksum at 0x014D, computed
// over the title/licensee/type/size/version bytes at 0x0134-0x014C.
func HeaderChecksumOK(rom []byte) bool {
	if len(rom) < 0x014E {
		return false
	}
	var sum byte
	for addr := 0x0134; addr <= 0x014C; addr++ {
		sum = sum - rom[addr] - 1
	}
	return sum == rom[0x014D]
}

// decodeROMSize turns the 0x0148 size code into a byte count and bank
// count. Codes 0x00-0x08 follow the regular doubling rule, 32 KiB
// shifted left by the code; three further codes (0x52/0x53/0x54) exist
// on a handful of real carts for ROM sizes that don't fit that rule.
func decodeROMSize(code byte) (size, banks int) {
	switch code {
	case 0x52:
		return 1152 * 1024, 72
	case 0x53:
		return 1280 * 1024, 80
	case 0x54:
		return 1536 * 1024, 96
	}
	if code > 0x08 {
		return 0, 0
	}
	size = (32 * 1024) << code
	return size, size / 0x4000
}

// decodeRAMSize turns the 0x0149 size code into a byte count. Code 0x01
// (2 KiB) existed briefly in early documentation but no licensed cart
// uses it, so it decodes to zero here like any other unused code.
func decodeRAMSize(code byte) int {
	switch code {
	case 0x02:
		return 8 * 1024
	case 0x03:
		return 32 * 1024
	case 0x04:
		return 128 * 1024
	case 0x05:
		return 64 * 1024
	default:
		return 0
	}
}

// cartTypeString renders the 0x0147 byte as a human-readable label for
// logging; it groups sub-variants (e.g. "+RAM", "+RAM+BATTERY") under
// one family name rather than enumerating every byte value.
func cartTypeString(code byte) string {
	switch {
	case code == 0x00:
		return "ROM ONLY"
	case code == 0x01, code == 0x02, code == 0x03:
		return "MBC1 (variants)"
	case code == 0x05, code == 0x06:
		return "MBC2 (variants)"
	case code == 0x08, code == 0x09:
		return "ROM+RAM (variants)"
	case code >= 0x0F && code <= 0x13:
		return "MBC3 (variants)"
	case code >= 0x19 && code <= 0x1E:
		return "MBC5 (variants)"
	default:
		return "Other/unknown"
	}
}
