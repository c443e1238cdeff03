// SPDX-License-Identifier: MIT
// Package scalar provides Float, an arbitrary-precision binary floating-point
// value that is comparable with == and therefore usable as a map key, a tree
// node id or a branch weight.
//
// Precision is a property of each value, passed at construction. There is no
// package-level precision setting, so trees keyed by Floats of different
// precisions coexist. Two Floats are == iff they have the same precision and
// the same value; Cmp compares values only.
package scalar

import (
	"math"
	"math/big"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for Float construction and arithmetic.
var (
	// ErrInvalidPrecision indicates a precision of 0 or above big.MaxPrec.
	ErrInvalidPrecision = errors.New("scalar: invalid precision")

	// ErrNaN indicates a NaN input or an operation whose result is NaN.
	ErrNaN = errors.New("scalar: NaN")

	// ErrSyntax indicates a string that does not parse as a number.
	ErrSyntax = errors.New("scalar: invalid syntax")
)

// mode is the rounding mode used for every conversion.
const mode = big.ToNearestEven

// Float is an immutable arbitrary-precision number.
//
// The value is kept in the exact hexadecimal-mantissa form produced by
// big.Float.Text('p', 0), which is canonical for a given value, so the struct
// is comparable. The zero Float is 0 with precision 0.
type Float struct {
	prec uint
	text string
}

// NewFloat rounds x to prec bits of mantissa.
func NewFloat(x float64, prec uint) (Float, error) {
	if math.IsNaN(x) {
		return Float{}, errors.Wrapf(ErrNaN, "NewFloat(%v, %d)", x, prec)
	}
	if err := checkPrec(prec); err != nil {
		return Float{}, err
	}

	return fromBig(new(big.Float).SetPrec(prec).SetMode(mode).SetFloat64(x)), nil
}

// ParseFloat parses s (decimal, or 0x/0b/0o prefixed, "Inf" accepted) and
// rounds the result to prec bits.
func ParseFloat(s string, prec uint) (Float, error) {
	if err := checkPrec(prec); err != nil {
		return Float{}, err
	}
	f, _, err := big.ParseFloat(s, 0, prec, mode)
	if err != nil {
		return Float{}, errors.Wrapf(ErrSyntax, "ParseFloat(%q): %v", s, err)
	}

	return fromBig(f), nil
}

// MustFloat is like ParseFloat but panics on error. Intended for literals.
func MustFloat(s string, prec uint) Float {
	f, err := ParseFloat(s, prec)
	if err != nil {
		panic(err)
	}

	return f
}

// Prec returns the mantissa precision in bits.
func (f Float) Prec() uint { return f.prec }

// Big returns a fresh *big.Float holding f's value at f's precision.
func (f Float) Big() *big.Float {
	if f.text == "" {
		return new(big.Float)
	}
	// text was produced by Text('p', 0) and always parses back exactly.
	z, _, err := big.ParseFloat(f.text, 0, f.prec, mode)
	if err != nil {
		panic(errors.AssertionFailedf("scalar: corrupt canonical form %q: %v", f.text, err))
	}

	return z
}

// Cmp compares the values of f and g, ignoring precision:
// -1 if f < g, 0 if f == g, +1 if f > g.
func (f Float) Cmp(g Float) int { return f.Big().Cmp(g.Big()) }

// Less reports whether f < g by value.
func (f Float) Less(g Float) bool { return f.Cmp(g) < 0 }

// Add returns f + g rounded to the larger of the two precisions.
// Adding infinities of opposite sign returns ErrNaN.
func (f Float) Add(g Float) (Float, error) {
	x, y := f.Big(), g.Big()
	if x.IsInf() && y.IsInf() && x.Signbit() != y.Signbit() {
		return Float{}, errors.Wrapf(ErrNaN, "%s + %s", f, g)
	}
	prec := max(f.prec, g.prec)
	if prec == 0 {
		return Float{}, nil
	}

	return fromBig(new(big.Float).SetPrec(prec).SetMode(mode).Add(x, y)), nil
}

// String returns the shortest decimal representation that rounds back to f.
func (f Float) String() string { return f.Big().Text('g', -1) }

func checkPrec(prec uint) error {
	if prec == 0 || prec > big.MaxPrec {
		return errors.Wrapf(ErrInvalidPrecision, "precision %d not in [1, %d]", prec, uint(big.MaxPrec))
	}

	return nil
}

// fromBig canonicalizes z; negative zero becomes positive zero so that the
// two compare == as well as by Cmp.
func fromBig(z *big.Float) Float {
	if z.Sign() == 0 {
		z = new(big.Float).SetPrec(z.Prec())
	}

	return Float{prec: z.Prec(), text: z.Text('p', 0)}
}
