package failure

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

func TestCaptureNil(t *testing.T) {
	if err := Capture(func() error { return nil }); err != nil {
		t.Errorf("Capture() = %v, want nil", err)
	}
}

func TestCaptureKeepsFailure(t *testing.T) {
	f := New(KindDatabase, "db down")
	err := Capture(func() error { return fmt.Errorf("query: %w", f) })

	var got *Failure
	if !AsFailure(err, &got) {
		t.Fatalf("expected a Failure, got: %v", err)
	}
	if got != f {
		t.Error("Capture() should keep the original Failure")
	}
}

func TestCaptureNumError(t *testing.T) {
	err := Capture(func() error {
		_, err := strconv.Atoi("x")
		return err
	})
	if KindOf(err) != KindMalformedNumber {
		t.Errorf("KindOf() = %v, want %v", KindOf(err), KindMalformedNumber)
	}

	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Error("classified error should unwrap to *strconv.NumError")
	}
}

func TestCapturePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
		want Kind
	}{
		{
			name: "failure value",
			fn:   func() error { panic(New(KindMissingType, "gone")) },
			want: KindMissingType,
		},
		{
			name: "plain string",
			fn:   func() error { panic("boom") },
			want: KindUnknown,
		},
		{
			name: "plain error",
			fn:   func() error { panic(errors.New("boom")) },
			want: KindUnknown,
		},
		{
			name: "slice bounds",
			fn: func() error {
				s := []int{1, 2}
				hi := 5
				_ = s[:hi]
				return nil
			},
			want: KindOutOfBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Capture(tt.fn)
			if err == nil {
				t.Fatal("Capture() should return the recovered panic")
			}
			if got := KindOf(err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatch(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		declared []Kind
		want     Kind
		ok       bool
	}{
		{"exact", New(KindIO, "x"), []Kind{KindIO}, KindIO, true},
		{"narrow first", New(KindEndOfStream, "x"), []Kind{KindEndOfStream, KindIO}, KindEndOfStream, true},
		{"fallback to broad", New(KindEndOfStream, "x"), []Kind{KindIO}, KindIO, true},
		{"broad declared first wins", New(KindEndOfStream, "x"), []Kind{KindIO, KindEndOfStream}, KindIO, true},
		{"unrelated", New(KindDatabase, "x"), []Kind{KindIO}, KindUnknown, false},
		{"nothing declared", New(KindIO, "x"), nil, KindUnknown, false},
		{"unclassified", errors.New("x"), []Kind{KindIO}, KindUnknown, false},
		{"unknown kind", New(KindUnknown, "x"), []Kind{KindIO}, KindUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Catch(tt.err, tt.declared...)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Catch() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSentinelHelpers(t *testing.T) {
	if !IsEscaped(fmt.Errorf("case 1: %w", ErrEscaped)) {
		t.Error("IsEscaped should match wrapped ErrEscaped")
	}
	if !IsNoFailure(fmt.Errorf("case 1: %w", ErrNoFailure)) {
		t.Error("IsNoFailure should match wrapped ErrNoFailure")
	}
	if IsEscaped(ErrNoFailure) {
		t.Error("IsEscaped should not match ErrNoFailure")
	}
}
