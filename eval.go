package calc

import (
	"math"
	"strconv"
	"strings"
)

// AngleMode selects the unit of angles for trigonometric functions.
type AngleMode int8

const (
	// Degrees interprets angles in degrees. It is the zero value.
	Degrees AngleMode = iota
	// Radians interprets angles in radians.
	Radians
)

func (m AngleMode) String() string {
	switch m {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	default:
		return "AngleMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseAngleMode parses the name of an angle mode. It accepts "degrees",
// "deg", "radians", and "rad" in any case.
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(s) {
	case "degrees", "deg":
		return Degrees, nil
	case "radians", "rad":
		return Radians, nil
	default:
		return 0, &NameError{Kind: "angle mode", Name: s}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m AngleMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *AngleMode) UnmarshalText(text []byte) error {
	v, err := ParseAngleMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m AngleMode) toRadians(x float64) float64 {
	if m == Degrees {
		return x * math.Pi / 180
	}
	return x
}

func (m AngleMode) fromRadians(x float64) float64 {
	if m == Degrees {
		return x * 180 / math.Pi
	}
	return x
}

// Eval evaluates the expression. NaN and infinite results are not errors;
// the only evaluation errors are division by zero and invalid arguments to
// nPr and nCr.
func (e *Expr) Eval(mode AngleMode) (float64, error) {
	return e.n.eval(mode)
}

// eval computes the node's value.
func (n *node) eval(mode AngleMode) (float64, error) {
	switch n.kind {
	case nodeNum, nodeConst:
		return n.num, nil
	case nodeCall:
		var args [2]float64
		k := 0
		for l := n.right; l != nil; l = l.right {
			v, err := l.left.eval(mode)
			if err != nil {
				return 0, err
			}
			args[k] = v
			k++
		}
		if k == 2 {
			return call2(n.fn, args[0], args[1])
		}
		return Call(n.fn, args[0], mode), nil
	case nodeArg:
		panic("calc: eval on nodeArg")
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		l, err := n.left.eval(mode)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(mode)
		if err != nil {
			return 0, err
		}
		switch n.kind {
		case nodeAdd:
			return l + r, nil
		case nodeSub:
			return l - r, nil
		case nodeMul:
			return l * r, nil
		case nodeDiv:
			if r == 0 {
				return 0, &DivisionByZeroError{Col: n.pos}
			}
			return l / r, nil
		case nodeMod:
			return math.Mod(l, r), nil
		default:
			return math.Pow(l, r), nil
		}
	default:
		panic("calc: invalid AST node " + n.kind.String())
	}
}

// Evaluate is a shortcut to parse an expression and evaluate it in the given
// angle mode.
func Evaluate(src string, mode AngleMode) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval(mode)
}

// NameError is an error from parsing the name of a setting, such as an angle
// mode or display style.
type NameError struct {
	// Kind is the kind of setting.
	Kind string
	// Name is the name that was not understood.
	Name string
}

func (err *NameError) Error() string {
	return "unknown " + err.Kind + ": " + strconv.Quote(err.Name)
}
