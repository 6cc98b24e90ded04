package calc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestCall(t *testing.T) {
	cases := []struct {
		name string
		f    calc.Func
		x    float64
		mode calc.AngleMode
		r    float64
	}{
		{"sqrt", calc.FnSqrt, 2, calc.Degrees, math.Sqrt2},
		{"sin-deg", calc.FnSin, 90, calc.Degrees, 1},
		{"sin-rad", calc.FnSin, math.Pi / 6, calc.Radians, 0.5},
		{"cos-deg", calc.FnCos, 60, calc.Degrees, 0.5},
		{"tan-rad", calc.FnTan, math.Pi / 4, calc.Radians, 1},
		{"asin-deg", calc.FnAsin, 0.5, calc.Degrees, 30},
		{"acos-rad", calc.FnAcos, -1, calc.Radians, math.Pi},
		{"atan-deg", calc.FnAtan, -1, calc.Degrees, -45},
		{"sinh-mode", calc.FnSinh, 2, calc.Degrees, math.Sinh(2)},
		{"log", calc.FnLog, 0.01, calc.Degrees, -2},
		{"log-neg", calc.FnLog, -1, calc.Degrees, math.NaN()},
		{"ln", calc.FnLn, 1, calc.Degrees, 0},
		{"abs", calc.FnAbs, math.Inf(-1), calc.Degrees, math.Inf(1)},
		{"factorial", calc.FnFactorial, 10, calc.Degrees, 3628800},
		{"square", calc.FnSquare, -3, calc.Degrees, 9},
		{"square-big", calc.FnSquare, 1e200, calc.Degrees, math.Inf(1)},
		{"reciprocal", calc.FnReciprocal, 4, calc.Degrees, 0.25},
		{"reciprocal-zero", calc.FnReciprocal, 0, calc.Degrees, math.Inf(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if r := calc.Call(c.f, c.x, c.mode); !near(r, c.r) {
				t.Errorf("%v(%g) in %v: want %g, got %g", c.f, c.x, c.mode, c.r, r)
			}
		})
	}
}

func TestCallBinaryPanics(t *testing.T) {
	for _, f := range []calc.Func{calc.FnNPr, calc.FnNCr} {
		t.Run(f.String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Call(%v) didn't panic", f)
				}
			}()
			calc.Call(f, 1, calc.Degrees)
		})
	}
}

func TestFuncString(t *testing.T) {
	cases := []struct {
		f    calc.Func
		name string
	}{
		{calc.FnSqrt, "sqrt"},
		{calc.FnLog, "log"},
		{calc.FnFactorial, "factorial"},
		{calc.FnNCr, "nCr"},
		{calc.FnReciprocal, "reciprocal"},
		{calc.Func(100), "Func(100)"},
	}
	for _, c := range cases {
		if got := c.f.String(); got != c.name {
			t.Errorf("want %q, got %q", c.name, got)
		}
	}
}

func TestApply(t *testing.T) {
	cases := []struct {
		op   calc.Op
		x, y float64
		r    float64
	}{
		{calc.OpAdd, 2, 3, 5},
		{calc.OpSubtract, 2, 3, -1},
		{calc.OpMultiply, 2, 3, 6},
		{calc.OpDivide, 3, 2, 1.5},
		{calc.OpPower, 2, 10, 1024},
		{calc.OpRoot, 27, 3, 3},
		{calc.OpRoot, 16, 0.5, 256},
		{calc.OpModulo, 7, 4, 3},
		{calc.OpModulo, 7, 0, math.NaN()},
		{calc.OpPermutation, 6, 3, 120},
		{calc.OpCombination, 6, 3, 20},
	}
	for _, c := range cases {
		t.Run(c.op.String(), func(t *testing.T) {
			r, err := calc.Apply(c.op, c.x, c.y)
			if err != nil {
				t.Fatalf("%g %v %g: %v", c.x, c.op, c.y, err)
			}
			if !near(r, c.r) {
				t.Errorf("%g %v %g: want %g, got %g", c.x, c.op, c.y, c.r, r)
			}
		})
	}
}

func TestApplyErrors(t *testing.T) {
	if _, err := calc.Apply(calc.OpDivide, 1, 0); !errors.As(err, new(*calc.DivisionByZeroError)) {
		t.Errorf("divide by zero gave %#v", err)
	}
	_, err := calc.Apply(calc.OpRoot, 8, 0)
	var de *calc.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("zeroth root gave %#v", err)
	}
	if de.Arg != 2 || de.Op != "root" {
		t.Errorf("zeroth root gave %+v", de)
	}
	if _, err := calc.Apply(calc.OpPermutation, 3, 4); !errors.As(err, new(*calc.ArgumentsError)) {
		t.Errorf("3 nPr 4 gave %#v", err)
	}
	if _, err := calc.Apply(calc.OpCombination, 1000, 4); !errors.As(err, new(*calc.RangeError)) {
		t.Errorf("1000 nCr 4 gave %#v", err)
	}
}

func TestAngleMode(t *testing.T) {
	var zero calc.AngleMode
	if zero != calc.Degrees {
		t.Errorf("zero mode is %v", zero)
	}
	cases := []struct {
		name string
		mode calc.AngleMode
		ok   bool
	}{
		{"degrees", calc.Degrees, true},
		{"DEG", calc.Degrees, true},
		{"Radians", calc.Radians, true},
		{"rad", calc.Radians, true},
		{"gradians", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var m calc.AngleMode
			err := m.UnmarshalText([]byte(c.name))
			if !c.ok {
				if !errors.As(err, new(*calc.NameError)) {
					t.Errorf("%q gave %v, %#v", c.name, m, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if m != c.mode {
				t.Errorf("%q gave %v, want %v", c.name, m, c.mode)
			}
			b, _ := m.MarshalText()
			if n, err := calc.ParseAngleMode(string(b)); err != nil || n != m {
				t.Errorf("%v marshaled to %q, which parses to %v, %v", m, b, n, err)
			}
		})
	}
}
