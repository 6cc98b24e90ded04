package calc

import (
	"math"
	"strconv"
)

// Op is a binary keypad operation, applied to a stored operand and the
// displayed one without going through the expression parser.
type Op int8

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
	OpRoot // x^(1/y)
	OpModulo
	OpPermutation
	OpCombination
)

var opnames = [...]string{
	OpAdd:         "+",
	OpSubtract:    "-",
	OpMultiply:    "*",
	OpDivide:      "/",
	OpPower:       "^",
	OpRoot:        "root",
	OpModulo:      "%",
	OpPermutation: "nPr",
	OpCombination: "nCr",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opnames) {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return opnames[op]
}

// Apply computes x op y. Division by zero, a zeroth root, and invalid
// permutation or combination arguments are errors; other out-of-domain
// operands give NaN or an infinity.
func Apply(op Op, x, y float64) (float64, error) {
	switch op {
	case OpAdd:
		return x + y, nil
	case OpSubtract:
		return x - y, nil
	case OpMultiply:
		return x * y, nil
	case OpDivide:
		if y == 0 {
			return 0, &DivisionByZeroError{}
		}
		return x / y, nil
	case OpPower:
		return math.Pow(x, y), nil
	case OpRoot:
		if y == 0 {
			return 0, &DomainError{X: y, Arg: 2, Op: "root"}
		}
		return math.Pow(x, 1/y), nil
	case OpModulo:
		return math.Mod(x, y), nil
	case OpPermutation:
		return Permutations(x, y)
	case OpCombination:
		return Combinations(x, y)
	default:
		panic("calc: Apply with " + op.String())
	}
}
