package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}
	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
}

func TestRange(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Range(data, 2, 2); !ok || len(got) != 0 {
		t.Fatalf("empty Range should succeed, got %v, %v", got, ok)
	}
	if _, ok := Range(data, 3, 2); ok {
		t.Fatalf("Range should reject end < begin")
	}
	if _, ok := Range(data, 0, 6); ok {
		t.Fatalf("Range should reject end > len")
	}
}

func TestCString(t *testing.T) {
	data := []byte("abc\x00de\x00fgh")
	if got, ok := CString(data, 0, len(data)); !ok || string(got) != "abc" {
		t.Fatalf("CString(0) = %q, %v", got, ok)
	}
	if got, ok := CString(data, 4, len(data)); !ok || string(got) != "de" {
		t.Fatalf("CString(4) = %q, %v", got, ok)
	}
	if _, ok := CString(data, 8, len(data)); ok {
		t.Fatalf("CString should fail without terminator")
	}
	if _, ok := CString(data, 4, 6); ok {
		t.Fatalf("CString should fail when terminator lies past limit")
	}
	if _, ok := CString(data, len(data), len(data)); ok {
		t.Fatalf("CString should fail at end of buffer")
	}
}
