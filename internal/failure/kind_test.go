package failure

import (
	"testing"
)

func TestKindsOrder(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 11 {
		t.Fatalf("Kinds() returned %d kinds, want 11", len(kinds))
	}
	if kinds[0] != KindIO || kinds[10] != KindMalformedNumber {
		t.Errorf("unexpected order: first %v, last %v", kinds[0], kinds[10])
	}
	for _, k := range kinds {
		if k == KindUnknown {
			t.Error("Kinds() should not include KindUnknown")
		}
	}
}

func TestIncludes(t *testing.T) {
	tests := []struct {
		declared Kind
		raised   Kind
		want     bool
	}{
		{KindIO, KindIO, true},
		{KindIO, KindMissingFile, true},
		{KindIO, KindEndOfStream, true},
		{KindEndOfStream, KindIO, false},
		{KindEndOfStream, KindMissingFile, false},
		{KindInvalidArgument, KindMalformedNumber, true},
		{KindMalformedNumber, KindInvalidArgument, false},
		{KindArithmetic, KindDatabase, false},
		{KindUnknown, KindUnknown, false},
		{KindUnknown, KindIO, false},
	}

	for _, tt := range tests {
		if got := tt.declared.Includes(tt.raised); got != tt.want {
			t.Errorf("%v.Includes(%v) = %v, want %v", tt.declared, tt.raised, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.Slug())
		if err != nil {
			t.Fatalf("ParseKind(%q) error = %v", k.Slug(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.Slug(), got, k)
		}
	}

	if _, err := ParseKind("unknown"); !IsUnknownKind(err) {
		t.Errorf("ParseKind(\"unknown\") should fail with ErrUnknownKind, got: %v", err)
	}
	if _, err := ParseKind("segfault"); !IsUnknownKind(err) {
		t.Errorf("ParseKind(\"segfault\") should fail with ErrUnknownKind, got: %v", err)
	}
}

func TestLabelOutOfRange(t *testing.T) {
	if got := Kind(99).Label(); got != KindUnknown.Label() {
		t.Errorf("Kind(99).Label() = %q, want %q", got, KindUnknown.Label())
	}
}
