package domain

import (
	"math"
	"testing"
)

func TestBounds_PenaltyInside(t *testing.T) {
	b := Bounds{Lower: -0.5, Upper: 0.5}

	for _, v := range []float64{-0.5, -0.25, 0, 0.3, 0.5} {
		if got := b.Penalty(v); got != 0 {
			t.Errorf("Penalty(%g) = %g, want 0", v, got)
		}
		if got := b.Derivative(v); got != 0 {
			t.Errorf("Derivative(%g) = %g, want 0", v, got)
		}
	}
}

func TestBounds_PenaltyBelow(t *testing.T) {
	b := Bounds{Lower: -0.5, Upper: 0.5}

	for _, v := range []float64{-0.6, -1, -100} {
		want := b.Lower - v
		if got := b.Penalty(v); got != want {
			t.Errorf("Penalty(%g) = %g, want %g", v, got, want)
		}
		if got := b.Penalty(v); got <= 0 {
			t.Errorf("Penalty(%g) = %g, want > 0", v, got)
		}
		if got := b.Derivative(v); got != -1 {
			t.Errorf("Derivative(%g) = %g, want -1", v, got)
		}
	}
}

func TestBounds_PenaltyAbove(t *testing.T) {
	b := Bounds{Lower: -0.5, Upper: 0.5}

	for _, v := range []float64{0.6, 1, 100} {
		want := v - b.Upper
		if got := b.Penalty(v); got != want {
			t.Errorf("Penalty(%g) = %g, want %g", v, got, want)
		}
		if got := b.Derivative(v); got != 1 {
			t.Errorf("Derivative(%g) = %g, want 1", v, got)
		}
	}
}

func TestBounds_Unbounded(t *testing.T) {
	b := Unbounded()

	for _, v := range []float64{-1e12, -1, 0, 1, 1e12} {
		if got := b.Penalty(v); got != 0 {
			t.Errorf("Penalty(%g) = %g, want 0", v, got)
		}
		if got := b.Derivative(v); got != 0 {
			t.Errorf("Derivative(%g) = %g, want 0", v, got)
		}
	}
	if !math.IsInf(b.Lower, -1) || !math.IsInf(b.Upper, 1) {
		t.Errorf("Unbounded() = %v, want infinite on both sides", b)
	}
}

func TestNewBounds_Inverted(t *testing.T) {
	_, err := NewBounds(1, -1)
	if err == nil {
		t.Fatal("NewBounds(1, -1) should return error")
	}
	specErr, ok := err.(*SpecError)
	if !ok {
		t.Fatalf("error should be *SpecError, got %T", err)
	}
	if specErr.Field != "bounds" {
		t.Errorf("error Field = %q, want bounds", specErr.Field)
	}
}

func TestBounds_String(t *testing.T) {
	b := Bounds{Lower: -0.25, Upper: 0.5}
	if got, want := b.String(), "Bounds: (-0.25, 0.5)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
