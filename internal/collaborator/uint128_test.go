package collaborator

import "testing"

func TestParseUint128Hex(t *testing.T) {
	cases := []struct {
		in   string
		want Uint128
	}{
		{"0x0", Uint128{}},
		{"0xff", Uint128{Lo: 0xff}},
		{"ff", Uint128{Lo: 0xff}},
		{"0x123456789abcdef0", Uint128{Lo: 0x123456789abcdef0}},
		{"0x11111111111111111111111111111112", Uint128{Hi: 0x1111111111111111, Lo: 0x1111111111111112}},
		{"0xABCDEF0123456789abcdef0123456789", Uint128{Hi: 0xabcdef0123456789, Lo: 0xabcdef0123456789}},
		{"0x10000000000000000", Uint128{Hi: 0x1, Lo: 0}},
	}
	for _, tc := range cases {
		got, err := ParseUint128Hex(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: got %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseUint128HexRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"0x",
		"0xZZ",
		"0x123g",
		"0x111111111111111111111111111111111", // 33 digits
	} {
		if _, err := ParseUint128Hex(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestUint128Hex(t *testing.T) {
	cases := []struct {
		in   Uint128
		want string
	}{
		{Uint128{}, "0"},
		{Uint128{Lo: 0xff}, "ff"},
		{Uint128{Lo: 0x123456789abcdef0}, "123456789abcdef0"},
		{Uint128{Hi: 0x1, Lo: 0}, "10000000000000000"},
		{Uint128{Hi: 0x1111111111111111, Lo: 0x12}, "11111111111111110000000000000012"},
	}
	for _, tc := range cases {
		if got := tc.in.Hex(); got != tc.want {
			t.Fatalf("hex of %+v: got %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := (Uint128{Lo: 0xff}).String(); got != "0xff" {
		t.Fatalf("string: got %q", got)
	}
}

func TestUint128HexRoundTrip(t *testing.T) {
	values := []Uint128{
		{},
		{Lo: 1},
		{Lo: 0xffffffffffffffff},
		{Hi: 1, Lo: 0},
		{Hi: 0xffffffffffffffff, Lo: 0xffffffffffffffff},
		{Hi: 0xdeadbeef, Lo: 0xcafebabe},
	}
	for _, v := range values {
		back, err := ParseUint128Hex(v.String())
		if err != nil {
			t.Fatalf("reparse %s: %v", v, err)
		}
		if back != v {
			t.Fatalf("round trip %s: got %+v", v, back)
		}
	}
}
