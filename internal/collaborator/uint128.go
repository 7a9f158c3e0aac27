package collaborator

import (
	"fmt"
	"strconv"
	"strings"
)

// Uint128 is an unsigned 128-bit integer split into two 64-bit halves.
// Salts are stored and compared as plain values; no arithmetic is needed.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// ParseUint128Hex parses a base-16 string, with or without a leading "0x",
// into a Uint128. Digits may be upper or lower case.
func ParseUint128Hex(s string) (Uint128, error) {
	digits := strings.TrimPrefix(s, "0x")
	if digits == "" {
		return Uint128{}, fmt.Errorf("empty hex string %q", s)
	}
	if len(digits) > 32 {
		return Uint128{}, fmt.Errorf("hex string %q overflows 128 bits", s)
	}
	if len(digits) <= 16 {
		lo, err := strconv.ParseUint(digits, 16, 64)
		if err != nil {
			return Uint128{}, fmt.Errorf("hex string %q: %w", s, err)
		}
		return Uint128{Lo: lo}, nil
	}
	split := len(digits) - 16
	hi, err := strconv.ParseUint(digits[:split], 16, 64)
	if err != nil {
		return Uint128{}, fmt.Errorf("hex string %q: %w", s, err)
	}
	lo, err := strconv.ParseUint(digits[split:], 16, 64)
	if err != nil {
		return Uint128{}, fmt.Errorf("hex string %q: %w", s, err)
	}
	return Uint128{Hi: hi, Lo: lo}, nil
}

// Hex renders u as minimal lower-case hexadecimal without a prefix.
func (u Uint128) Hex() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 16)
	}
	return strconv.FormatUint(u.Hi, 16) + fmt.Sprintf("%016x", u.Lo)
}

// String renders u in the on-disk form, "0x" followed by Hex.
func (u Uint128) String() string {
	return "0x" + u.Hex()
}
