package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestShow(t *testing.T) {
	cases := []struct {
		name string
		src  string
		s    settings
		want string
	}{
		{"regular", "1+2*3", settings{}, "7\n"},
		{"degrees", "sin(30)", settings{style: calc.Fixed}, "0.500000\n"},
		{"radians", "cos(pi)", settings{mode: calc.Radians}, "-1\n"},
		{"eng", "0.05", settings{style: calc.Engineering}, "50e-3\n"},
		{"overflow", "factorial(171)", settings{}, "Error: Overflow\n"},
		{"invalid", "sqrt(-1)", settings{}, "Error: Invalid\n"},
		{"div-zero", "1/0", settings{}, "Error: division by zero\n"},
		{"syntax", "2+", settings{}, "Error: invalid expression: no expression\n"},
		{"echo", "1+2", settings{echo: true}, "([1] + [2]) : 3\n"},
		{"exact", "25", settings{exact: true, style: calc.GroupedTriads}, "15,511,210,043,330,985,984,000,000\n"},
		{"exact-eng", "3+2", settings{exact: true, style: calc.Engineering}, "120e0\n"},
		{"exact-bad", "-1", settings{exact: true}, "Error: invalid factorial argument: not a non-negative integer\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b strings.Builder
			show(&b, c.src, c.s)
			if got := b.String(); got != c.want {
				t.Errorf("%q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestReadExprs(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		lines bool
		want  []string
	}{
		{"whole", "1+\n2\n", false, []string{"1+\n2\n"}},
		{"blank", " \n\t\n", false, nil},
		{"lines", "1+2\n\n3*4\n", true, []string{"1+2", "3*4"}},
		{"no-newline", "5", true, []string{"5"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := readExprs(strings.NewReader(c.in), c.lines)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}
