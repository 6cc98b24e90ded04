package calc

import (
	"math"
	"math/big"
)

const (
	// MaxFactorial is the largest n for which n! is finite as a float64.
	MaxFactorial = 170
	// MaxBigFactorial is the largest n accepted by BigFactorial.
	MaxBigFactorial = 100000
)

// isNatural reports whether x is a non-negative integer.
func isNatural(x float64) bool {
	return x >= 0 && !math.IsInf(x, 0) && x == math.Trunc(x)
}

// Factorial computes n!. The result is NaN if n is negative or not an integer
// and +Inf if n exceeds MaxFactorial.
func Factorial(n float64) float64 {
	if !isNatural(n) {
		return math.NaN()
	}
	if n > MaxFactorial {
		return math.Inf(1)
	}
	r := 1.0
	for i := 2; i <= int(n); i++ {
		r *= float64(i)
	}
	return r
}

// checkChoose validates the arguments shared by Permutations and
// Combinations.
func checkChoose(name string, n, r float64) error {
	if !isNatural(n) || !isNatural(r) || r > n {
		return &ArgumentsError{Func: name, Args: []float64{n, r}}
	}
	if n > MaxFactorial {
		return &RangeError{Func: name, X: n, Max: MaxFactorial}
	}
	return nil
}

// Permutations computes nPr, the number of ordered selections of r items from
// n. n and r must be non-negative integers with r <= n <= MaxFactorial.
func Permutations(n, r float64) (float64, error) {
	if err := checkChoose("nPr", n, r); err != nil {
		return 0, err
	}
	p := 1.0
	for i := 0; i < int(r); i++ {
		p *= n - float64(i)
	}
	return p, nil
}

// Combinations computes nCr, the number of unordered selections of r items
// from n. n and r must be non-negative integers with r <= n <= MaxFactorial.
func Combinations(n, r float64) (float64, error) {
	if err := checkChoose("nCr", n, r); err != nil {
		return 0, err
	}
	k := r
	if n-r < k {
		k = n - r
	}
	// c is C(n, i+1) after each step.
	c := 1.0
	for i := 0; i < int(k); i++ {
		c *= (n - float64(i)) / float64(i+1)
	}
	return c, nil
}

// BigFactorialInt computes n! exactly. n must be a non-negative integer no
// larger than MaxBigFactorial.
func BigFactorialInt(n float64) (*big.Int, error) {
	if !isNatural(n) {
		return nil, &ArgumentsError{Func: "factorial", Args: []float64{n}}
	}
	if n > MaxBigFactorial {
		return nil, &RangeError{Func: "factorial", X: n, Max: MaxBigFactorial}
	}
	r := big.NewInt(1)
	var k big.Int
	for i := int64(2); i <= int64(n); i++ {
		r.Mul(r, k.SetInt64(i))
	}
	return r, nil
}

// BigFactorial computes n! exactly and renders it in decimal with digits
// grouped in threes.
func BigFactorial(n float64) (string, error) {
	r, err := BigFactorialInt(n)
	if err != nil {
		return "", err
	}
	return Group(r.String()), nil
}
