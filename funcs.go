package calc

import (
	"math"
	"strconv"
)

// Func is one of the calculator's scientific functions. Functions with names
// can be called in expressions; the rest are only reachable through Call.
type Func int8

const (
	fnNone Func = iota

	FnSqrt
	FnSin
	FnCos
	FnTan
	FnAsin
	FnAcos
	FnAtan
	FnSinh
	FnCosh
	FnTanh
	FnLog // base 10
	FnLn
	FnAbs
	FnFactorial

	// Two arguments.
	FnNPr
	FnNCr

	// Keypad only; no expression syntax.
	FnSquare
	FnReciprocal
)

// funcs maps the function names recognized by the parser to their functions.
var funcs = map[string]Func{
	"sqrt":      FnSqrt,
	"sin":       FnSin,
	"cos":       FnCos,
	"tan":       FnTan,
	"asin":      FnAsin,
	"acos":      FnAcos,
	"atan":      FnAtan,
	"sinh":      FnSinh,
	"cosh":      FnCosh,
	"tanh":      FnTanh,
	"log":       FnLog,
	"ln":        FnLn,
	"abs":       FnAbs,
	"factorial": FnFactorial,
	"fact":      FnFactorial,
	"nPr":       FnNPr,
	"nCr":       FnNCr,
}

// consts maps the named constants recognized by the parser to their values.
var consts = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

var fnames = [...]string{
	fnNone:       "",
	FnSqrt:       "sqrt",
	FnSin:        "sin",
	FnCos:        "cos",
	FnTan:        "tan",
	FnAsin:       "asin",
	FnAcos:       "acos",
	FnAtan:       "atan",
	FnSinh:       "sinh",
	FnCosh:       "cosh",
	FnTanh:       "tanh",
	FnLog:        "log",
	FnLn:         "ln",
	FnAbs:        "abs",
	FnFactorial:  "factorial",
	FnNPr:        "nPr",
	FnNCr:        "nCr",
	FnSquare:     "square",
	FnReciprocal: "reciprocal",
}

// String returns the function's name as written in expressions.
func (f Func) String() string {
	if f < 0 || int(f) >= len(fnames) {
		return "Func(" + strconv.Itoa(int(f)) + ")"
	}
	return fnames[f]
}

// arity returns the number of arguments f takes in an expression.
func arity(f Func) int {
	switch f {
	case fnNone:
		return 0
	case FnNPr, FnNCr:
		return 2
	default:
		return 1
	}
}

// Call evaluates a function of one argument. Trigonometric functions take
// their argument in degrees and inverse trigonometric functions return
// degrees when mode is Degrees. Out-of-domain arguments give NaN and
// overflow gives an infinity, as with package math; these are results, not
// errors. Calling a function of two arguments panics.
func Call(f Func, x float64, mode AngleMode) float64 {
	switch f {
	case FnSqrt:
		return math.Sqrt(x)
	case FnSin:
		return math.Sin(mode.toRadians(x))
	case FnCos:
		return math.Cos(mode.toRadians(x))
	case FnTan:
		return math.Tan(mode.toRadians(x))
	case FnAsin:
		return mode.fromRadians(math.Asin(x))
	case FnAcos:
		return mode.fromRadians(math.Acos(x))
	case FnAtan:
		return mode.fromRadians(math.Atan(x))
	case FnSinh:
		return math.Sinh(x)
	case FnCosh:
		return math.Cosh(x)
	case FnTanh:
		return math.Tanh(x)
	case FnLog:
		return math.Log10(x)
	case FnLn:
		return math.Log(x)
	case FnAbs:
		return math.Abs(x)
	case FnFactorial:
		return Factorial(x)
	case FnSquare:
		return x * x
	case FnReciprocal:
		if x == 0 {
			return math.Inf(1)
		}
		return 1 / x
	default:
		panic("calc: Call with " + f.String())
	}
}

// call2 evaluates a function of two arguments.
func call2(f Func, x, y float64) (float64, error) {
	switch f {
	case FnNPr:
		return Permutations(x, y)
	case FnNCr:
		return Combinations(x, y)
	default:
		panic("calc: call2 with " + f.String())
	}
}
