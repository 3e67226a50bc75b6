package fold

import "testing"

func TestByteFixedPoints(t *testing.T) {
	// × (0xD7) and ÷... actually the fixed points worth pinning are 0xD7
	// (MULTIPLICATION SIGN) and 0xDF (LATIN SMALL LETTER SHARP S): neither
	// has a distinct lowercase/uppercase counterpart in this table, so they
	// must map to themselves.
	if got := Byte(0xd7); got != 0xd7 {
		t.Errorf("Byte(0xd7) = %#x, want 0xd7", got)
	}
	if got := Byte(0xdf); got != 0xdf {
		t.Errorf("Byte(0xdf) = %#x, want 0xdf", got)
	}
}

func TestByteASCII(t *testing.T) {
	if got := Byte('A'); got != 'a' {
		t.Errorf("Byte('A') = %q, want 'a'", got)
	}
	if got := Byte('z'); got != 'z' {
		t.Errorf("Byte('z') = %q, want 'z'", got)
	}
}

func TestRuneDelegatesToTable(t *testing.T) {
	for c := uint16(0); c < 0x100; c++ {
		if got, want := Rune(c), uint16(Table[byte(c)]); got != want {
			t.Fatalf("Rune(%#x) = %#x, want %#x", c, got, want)
		}
	}
}
