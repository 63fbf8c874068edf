// Released under an MIT license. See LICENSE.

package rational

import (
	"testing"

	"github.com/schemecore/schemecore/internal/schemerr"
	"github.com/schemecore/schemecore/internal/value"
)

func half() value.Value  { return value.Rat{Num: 1, Den: 2} }
func third() value.Value { return value.Rat{Num: 1, Den: 3} }

func TestAddHalfAndThird(t *testing.T) {
	got := Add(half(), third())
	want := value.Rat{Num: 5, Den: 6}

	if !got.Equal(want) {
		t.Fatalf("1/2 + 1/3 = %v, want %v", got, want)
	}
}

func TestDivSixFour(t *testing.T) {
	got := Div(value.NewInt(6), value.NewInt(4))
	want := value.Rat{Num: 3, Den: 2}

	if !got.Equal(want) {
		t.Fatalf("6/4 = %v, want %v", got, want)
	}
}

func TestMulCollapsesToInt(t *testing.T) {
	got := Mul(value.NewInt(2), half())
	want := value.NewInt(1)

	if !got.Equal(want) {
		t.Fatalf("2 * 1/2 = %v, want %v", got, want)
	}

	if got.Kind() != value.IntKind {
		t.Fatalf("2 * 1/2 should collapse to Int, got %s", got.Kind())
	}
}

func TestModuloNegative(t *testing.T) {
	got := Modulo(value.NewInt(-7), value.NewInt(3))
	want := value.NewInt(int64(-7) % int64(3))

	if !got.Equal(want) {
		t.Fatalf("modulo -7 3 = %v, want %v", got, want)
	}
}

func TestModuloRejectsRational(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected modulo on a rational to panic")
		}

		if err, ok := r.(*schemerr.Error); !ok || err.Kind != schemerr.TypeMismatch {
			t.Fatalf("expected TypeMismatch, got %v", r)
		}
	}()

	Modulo(half(), value.NewInt(2))
}

func TestExptBasic(t *testing.T) {
	got := Expt(value.NewInt(2), value.NewInt(10))
	want := value.NewInt(1024)

	if !got.Equal(want) {
		t.Fatalf("2^10 = %v, want %v", got, want)
	}
}

func TestExptOverflow(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected overflow panic")
		}

		if err, ok := r.(*schemerr.Error); !ok || err.Kind != schemerr.NumericOverflow {
			t.Fatalf("expected NumericOverflow, got %v", r)
		}
	}()

	Expt(value.NewInt(2), value.NewInt(1000))
}

func TestExptZeroToZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected 0^0 to panic")
		}
	}()

	Expt(value.NewInt(0), value.NewInt(0))
}

func TestDivisionByZero(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected division by zero to panic")
		}

		if err, ok := r.(*schemerr.Error); !ok || err.Kind != schemerr.DivisionByZero {
			t.Fatalf("expected DivisionByZero, got %v", r)
		}
	}()

	Div(value.NewInt(1), value.NewInt(0))
}

func TestCompare(t *testing.T) {
	if Compare(value.NewInt(1), half()) <= 0 {
		t.Fatalf("expected 1 > 1/2")
	}

	if Compare(half(), half()) != 0 {
		t.Fatalf("expected 1/2 == 1/2")
	}
}
