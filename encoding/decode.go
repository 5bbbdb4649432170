package encoding

import "strings"

// decodeWithEncoding decodes data using the specified encoding.
//
//nolint:gocognit // Complexity required for handling multiple encodings
func decodeWithEncoding(data []byte, enc *Encoding) (string, error) {
	switch enc.Name {
	case "UTF-8":
		return string(data), nil
	case "windows-1252":
		return decodeSingleByte(data, 0x80, windows1252Table[:]), nil
	case "ISO-8859-1":
		return decodeLatin1(data), nil
	case "iso-8859-2":
		return decodeSingleByte(data, 0x80, iso88592Table[:]), nil
	case "euc-jp":
		return decodeEUCJPApprox(data), nil
	case utf16LEName:
		return decodeUTF16(data, false), nil
	case utf16BEName:
		return decodeUTF16(data, true), nil
	case "utf-16":
		return decodeUTF16WithEmbeddedBOM(data), nil
	default:
		return "", ErrInvalidEncoding
	}
}

// decodeLatin1 maps each byte directly to the identically-numbered code
// point, which is exactly what ISO-8859-1 is defined to do.
func decodeLatin1(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}

// decodeSingleByte decodes a single-byte encoding whose bytes below
// highBitStart map straight through to the same code point, and whose
// remaining bytes are looked up in table (indexed from highBitStart).
func decodeSingleByte(data []byte, highBitStart byte, table []rune) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		if b < highBitStart {
			sb.WriteRune(rune(b))
			continue
		}
		idx := int(b) - int(highBitStart)
		if idx >= 0 && idx < len(table) {
			sb.WriteRune(table[idx])
		} else {
			sb.WriteRune(rune(b))
		}
	}
	return sb.String()
}

// decodeEUCJPApprox handles the ASCII subset of EUC-JP exactly and
// replaces every multi-byte sequence with U+FFFD. A full EUC-JP decoder
// needs JIS X 0208/0212 mapping tables this package does not carry.
func decodeEUCJPApprox(data []byte) string {
	var sb strings.Builder
	i := 0
	for i < len(data) {
		if data[i] < 0x80 {
			sb.WriteByte(data[i])
			i++
			continue
		}
		sb.WriteRune('�')
		i++
		if i < len(data) && data[i] >= 0x80 {
			i++
		}
	}
	return sb.String()
}

func decodeUTF16(data []byte, bigEndian bool) string {
	if len(data)%2 != 0 {
		data = append(data, 0)
	}
	runes := make([]rune, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		var r rune
		if bigEndian {
			r = rune(data[i])<<8 | rune(data[i+1])
		} else {
			r = rune(data[i]) | rune(data[i+1])<<8
		}
		runes = append(runes, r)
	}
	return string(runes)
}

// decodeUTF16WithEmbeddedBOM handles the generic "utf-16" label, which per
// spec means "sniff the BOM actually present in the data" rather than a
// fixed byte order; it defaults to little-endian when no BOM is found.
func decodeUTF16WithEmbeddedBOM(data []byte) string {
	if len(data) >= 2 {
		if data[0] == 0xFF && data[1] == 0xFE {
			return decodeUTF16(data[2:], false)
		}
		if data[0] == 0xFE && data[1] == 0xFF {
			return decodeUTF16(data[2:], true)
		}
	}
	return decodeUTF16(data, false)
}

// windows1252Table maps bytes 0x80-0x9F to their Unicode code points.
var windows1252Table = [32]rune{
	0x20AC, // 0x80 -> EURO SIGN
	0x0081, // 0x81 -> <control>
	0x201A, // 0x82 -> SINGLE LOW-9 QUOTATION MARK
	0x0192, // 0x83 -> LATIN SMALL LETTER F WITH HOOK
	0x201E, // 0x84 -> DOUBLE LOW-9 QUOTATION MARK
	0x2026, // 0x85 -> HORIZONTAL ELLIPSIS
	0x2020, // 0x86 -> DAGGER
	0x2021, // 0x87 -> DOUBLE DAGGER
	0x02C6, // 0x88 -> MODIFIER LETTER CIRCUMFLEX ACCENT
	0x2030, // 0x89 -> PER MILLE SIGN
	0x0160, // 0x8A -> LATIN CAPITAL LETTER S WITH CARON
	0x2039, // 0x8B -> SINGLE LEFT-POINTING ANGLE QUOTATION MARK
	0x0152, // 0x8C -> LATIN CAPITAL LIGATURE OE
	0x008D, // 0x8D -> <control>
	0x017D, // 0x8E -> LATIN CAPITAL LETTER Z WITH CARON
	0x008F, // 0x8F -> <control>
	0x0090, // 0x90 -> <control>
	0x2018, // 0x91 -> LEFT SINGLE QUOTATION MARK
	0x2019, // 0x92 -> RIGHT SINGLE QUOTATION MARK
	0x201C, // 0x93 -> LEFT DOUBLE QUOTATION MARK
	0x201D, // 0x94 -> RIGHT DOUBLE QUOTATION MARK
	0x2022, // 0x95 -> BULLET
	0x2013, // 0x96 -> EN DASH
	0x2014, // 0x97 -> EM DASH
	0x02DC, // 0x98 -> SMALL TILDE
	0x2122, // 0x99 -> TRADE MARK SIGN
	0x0161, // 0x9A -> LATIN SMALL LETTER S WITH CARON
	0x203A, // 0x9B -> SINGLE RIGHT-POINTING ANGLE QUOTATION MARK
	0x0153, // 0x9C -> LATIN SMALL LIGATURE OE
	0x009D, // 0x9D -> <control>
	0x017E, // 0x9E -> LATIN SMALL LETTER Z WITH CARON
	0x0178, // 0x9F -> LATIN CAPITAL LETTER Y WITH DIAERESIS
}

// iso88592Table maps bytes 0x80-0xFF to their Unicode code points for ISO-8859-2.
var iso88592Table = [128]rune{
	0x0080, 0x0081, 0x0082, 0x0083, 0x0084, 0x0085, 0x0086, 0x0087,
	0x0088, 0x0089, 0x008A, 0x008B, 0x008C, 0x008D, 0x008E, 0x008F,
	0x0090, 0x0091, 0x0092, 0x0093, 0x0094, 0x0095, 0x0096, 0x0097,
	0x0098, 0x0099, 0x009A, 0x009B, 0x009C, 0x009D, 0x009E, 0x009F,
	0x00A0, 0x0104, 0x02D8, 0x0141, 0x00A4, 0x013D, 0x015A, 0x00A7,
	0x00A8, 0x0160, 0x015E, 0x0164, 0x0179, 0x00AD, 0x017D, 0x017B,
	0x00B0, 0x0105, 0x02DB, 0x0142, 0x00B4, 0x013E, 0x015B, 0x02C7,
	0x00B8, 0x0161, 0x015F, 0x0165, 0x017A, 0x02DD, 0x017E, 0x017C,
	0x0154, 0x00C1, 0x00C2, 0x0102, 0x00C4, 0x0139, 0x0106, 0x00C7,
	0x010C, 0x00C9, 0x0118, 0x00CB, 0x011A, 0x00CD, 0x00CE, 0x010E,
	0x0110, 0x0143, 0x0147, 0x00D3, 0x00D4, 0x0150, 0x00D6, 0x00D7,
	0x0158, 0x016E, 0x00DA, 0x0170, 0x00DC, 0x00DD, 0x0162, 0x00DF,
	0x0155, 0x00E1, 0x00E2, 0x0103, 0x00E4, 0x013A, 0x0107, 0x00E7,
	0x010D, 0x00E9, 0x0119, 0x00EB, 0x011B, 0x00ED, 0x00EE, 0x010F,
	0x0111, 0x0144, 0x0148, 0x00F3, 0x00F4, 0x0151, 0x00F6, 0x00F7,
	0x0159, 0x016F, 0x00FA, 0x0171, 0x00FC, 0x00FD, 0x0163, 0x02D9,
}
