package constants

// Character classification lookup table for the tokenizer's hot path: one
// flag byte per ASCII value instead of one bool array per predicate, so
// each predicate tests a mask against one table entry (IsASCIIAlphaNum adds a
// separate digit range check) rather than doing N separate table lookups.

type charFlag uint8

const (
	flagWhitespace charFlag = 1 << iota // Per §13.2.6.4.1 of WHATWG HTML5 spec.
	flagUpper
	flagLower
)

var charFlags [256]charFlag

func init() {
	charFlags['\t'] |= flagWhitespace // U+0009 TAB
	charFlags['\n'] |= flagWhitespace // U+000A LF
	charFlags['\f'] |= flagWhitespace // U+000C FF
	charFlags[' '] |= flagWhitespace  // U+0020 SPACE

	for c := 'A'; c <= 'Z'; c++ {
		charFlags[c] |= flagUpper
	}
	for c := 'a'; c <= 'z'; c++ {
		charFlags[c] |= flagLower
	}
}

func hasFlag(c rune, f charFlag) bool {
	return c >= 0 && c < 256 && charFlags[c]&f != 0
}

// IsWhitespace returns true if c is an HTML5 whitespace character.
func IsWhitespace(c rune) bool {
	return hasFlag(c, flagWhitespace)
}

// IsASCIIUpper returns true if c is an uppercase ASCII letter (A-Z).
func IsASCIIUpper(c rune) bool {
	return hasFlag(c, flagUpper)
}

// IsASCIILower returns true if c is a lowercase ASCII letter (a-z).
func IsASCIILower(c rune) bool {
	return hasFlag(c, flagLower)
}

// IsASCIIAlpha returns true if c is an ASCII letter (A-Z or a-z).
func IsASCIIAlpha(c rune) bool {
	return hasFlag(c, flagUpper|flagLower)
}

// IsASCIIAlphaNum returns true if c is an ASCII alphanumeric character (0-9, A-Z, a-z).
func IsASCIIAlphaNum(c rune) bool {
	return hasFlag(c, flagUpper|flagLower) || (c >= '0' && c <= '9')
}

// ToLower converts an ASCII uppercase letter to lowercase.
// For non-ASCII or non-uppercase, returns the character unchanged.
// This is faster than unicode.ToLower for ASCII characters.
func ToLower(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + 32
	}
	return c
}
