package calc

import (
	"strconv"
)

// InvalidExpressionError is an error indicating input that does not form an
// expression: an invalid token, an unknown name, a misplaced or unbalanced
// parenthesis or separator, or an empty (sub)expression. It implements
// InputError.
type InvalidExpressionError struct {
	// Col is the position of the start of the offending text.
	Col int
	// Text is the offending text, from Col to the end of the token or
	// subexpression that could not be parsed.
	Text string
}

func (err *InvalidExpressionError) Error() string {
	if err.Text == "" {
		return "invalid expression: no expression"
	}
	return "invalid expression: " + err.Text
}

func (err *InvalidExpressionError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function call with the wrong number of
// arguments. It implements InputError.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments given.
	Len int
}

func (err *CallError) Error() string {
	want := "one argument"
	if arity(funcs[err.Func]) == 2 {
		want = "two arguments: " + err.Func + "(n,r)"
	}
	return err.Func + " requires " + want + ", not " + strconv.Itoa(err.Len)
}

func (err *CallError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating a division whose divisor
// evaluated to zero. It implements InputError. For divisions that are not
// part of a parsed expression, Col is 0.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return "division by zero"
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// ArgumentsError is an error returned when a permutation, combination or
// exact factorial is requested for arguments that are negative, fractional,
// or out of order.
type ArgumentsError struct {
	// Func is a name identifying the function, e.g. "nPr".
	Func string
	// Args are the rejected arguments.
	Args []float64
}

func (err *ArgumentsError) Error() string {
	if err.Func == "factorial" {
		return "invalid factorial argument: not a non-negative integer"
	}
	return "invalid " + err.Func + " arguments"
}

// RangeError is an error returned when an argument is too large for a
// function to compute.
type RangeError struct {
	// Func is a name identifying the function.
	Func string
	// X is the rejected argument.
	X float64
	// Max is the largest argument the function accepts.
	Max float64
}

func (err *RangeError) Error() string {
	m := strconv.FormatFloat(err.Max, 'f', -1, 64)
	if err.Func == "factorial" {
		return "too large (max " + m + ")"
	}
	return "n too large (max " + m + ")"
}

// DomainError is an error returned when a direct operation is applied to an
// operand outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Arg is the 1-based index of the argument.
	Arg int
	// Op is a name identifying the operation.
	Op string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Op != "" {
		r += " of " + err.Op
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

// InputError is an error with position information. Every error resulting from
// malformed input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error, counted after
	// whitespace is removed.
	Pos() int
}

var (
	_ InputError = (*InvalidExpressionError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)
