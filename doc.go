// Package calc implements the evaluation and display engine of a scientific
// calculator.
//
// Expressions are the kind typed into a calculator's expression line:
// "2(3+4)", "sin(30)^2", "nCr(52,5)/1e6". Whitespace is ignored entirely, a
// parenthesis directly following a digit or another parenthesis multiplies,
// and the operators are, from loosest to tightest, + - * / % ^, each
// left-associative, so "2^3^2" is 64. A minus sign is a sign only on a
// literal number in operand position: "-2^2" is 4, and "-pi" is an error.
//
// Evaluation is in float64. Results are shown with Format in one of five
// styles; factorials beyond the float64 range are available exactly through
// BigFactorial. Nothing in the package keeps state between calls: the angle
// mode and display style are passed in every time.
package calc
