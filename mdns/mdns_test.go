package mdns

import "testing"

func TestColonHexFormatsUUIDAsBytePairs(t *testing.T) {
	got := colonHex("AABBCCDD-1122-3344-5566-778899AABBCC")
	want := "AA:BB:CC:DD:11:22:33:44:55:66:77:88:99:AA:BB:CC"
	if got != want {
		t.Fatalf("colonHex() = %q, want %q", got, want)
	}
}

func TestColonHexHandlesOddLengthByTruncating(t *testing.T) {
	got := colonHex("abc")
	if got != "ab" {
		t.Fatalf("colonHex() = %q, want %q", got, "ab")
	}
}
