// Package encoding implements HTML5 encoding detection and decoding.
package encoding

import (
	"errors"
	"strings"
)

// ErrInvalidEncoding is returned when the specified encoding is not supported.
var ErrInvalidEncoding = errors.New("unsupported or invalid encoding")

// Encoding represents a character encoding.
type Encoding struct {
	// Name is the canonical name of the encoding.
	Name string

	// Labels are the encoding labels that map to this encoding.
	Labels []string
}

// Common encodings.
var (
	UTF8 = &Encoding{
		Name: "UTF-8",
		Labels: []string{
			"utf-8", "utf8", "unicode-1-1-utf-8",
			"unicode11utf8", "unicode20utf8", "x-unicode20utf8",
		},
	}
	Windows1252 = &Encoding{
		Name: "windows-1252",
		Labels: []string{
			"windows-1252", "windows1252", "cp1252", "x-cp1252",
			"ansi_x3.4-1968", "ascii", "us-ascii",
			"iso-ir-100", "csisolatin1",
		},
	}
	ISO88591 = &Encoding{
		Name: "ISO-8859-1",
		Labels: []string{
			"iso-8859-1", "iso8859-1", "iso88591",
			"iso_8859-1", "iso_8859-1:1987",
			"latin1", "latin-1", "l1",
			"cp819", "ibm819",
		},
	}
	ISO88592 = &Encoding{
		Name: "iso-8859-2",
		Labels: []string{
			"iso-8859-2", "iso8859-2", "iso88592",
			"iso_8859-2", "iso_8859-2:1987",
			"iso-ir-101", "csisolatin2",
			"latin2", "latin-2", "l2",
		},
	}
	EUCJP = &Encoding{
		Name: "euc-jp",
		Labels: []string{
			"euc-jp", "eucjp",
			"cseucpkdfmtjapanese", "x-euc-jp",
		},
	}
	UTF16   = &Encoding{Name: "utf-16", Labels: []string{"utf-16", "utf16"}}
	UTF16LE = &Encoding{Name: "utf-16le", Labels: []string{"utf-16le", "utf16le"}}
	UTF16BE = &Encoding{Name: "utf-16be", Labels: []string{"utf-16be", "utf16be"}}
)

const (
	utf16BEName = "utf-16be"
	utf16LEName = "utf-16le"
)

// knownEncodings lists every encoding this package can recognize by label,
// in the order normalizeEncodingLabel searches them.
var knownEncodings = []*Encoding{UTF8, Windows1252, ISO88591, ISO88592, EUCJP, UTF16, UTF16LE, UTF16BE}

// Decode decodes HTML bytes to a string using encoding detection.
//
// The detection order is:
// 1. Provided encoding hint (transport encoding), if it names a known
// encoding; a BOM in data is then stripped but does not override the hint
// 2. BOM (Byte Order Mark)
// 3. <meta charset> in the first 1024 bytes (non-comment content)
// 4. Fallback to windows-1252
func Decode(data []byte, hint string) (string, *Encoding, error) {
	if hint != "" {
		if enc := normalizeEncodingLabel(hint); enc != nil {
			bomLen := 0
			if bom := detectBOM(data); bom != nil {
				bomLen = bomLength(bom)
			}
			decoded, err := decodeWithEncoding(data[bomLen:], enc)
			return decoded, enc, err
		}
	}

	if enc := detectBOM(data); enc != nil {
		bomLen := bomLength(enc)
		decoded, err := decodeWithEncoding(data[bomLen:], enc)
		return decoded, enc, err
	}

	if enc := prescanForMetaCharset(data); enc != nil {
		decoded, err := decodeWithEncoding(data, enc)
		return decoded, enc, err
	}

	decoded, err := decodeWithEncoding(data, Windows1252)
	return decoded, Windows1252, err
}

// normalizeEncodingLabel normalizes an encoding label to a canonical encoding.
// Returns nil if the label is not recognized.
func normalizeEncodingLabel(label string) *Encoding {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return nil
	}

	// Security: never allow utf-7; treat it as the safe fallback instead.
	if label == "utf-7" || label == "utf7" || label == "x-utf-7" {
		return Windows1252
	}

	for _, enc := range knownEncodings {
		for _, l := range enc.Labels {
			if l == label {
				// HTML treats ISO-8859-1 labels as windows-1252.
				if enc == ISO88591 {
					return Windows1252
				}
				return enc
			}
		}
	}

	return nil
}

// normalizeMetaDeclaredEncoding normalizes a meta-declared encoding.
// UTF-16 labels in meta declarations are treated as UTF-8; UTF-32 labels are
// not recognized and yield nil.
func normalizeMetaDeclaredEncoding(label []byte) *Encoding {
	enc := normalizeEncodingLabel(string(label))
	if enc == nil {
		return nil
	}

	switch enc.Name {
	case "utf-16", utf16LEName, utf16BEName, "utf-32", "utf-32le", "utf-32be":
		return UTF8
	}

	return enc
}
