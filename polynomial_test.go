package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolyFromBytesRoundTrip(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78}
	p := NewPolyFromBytes(data)
	assert.Equal(t, data, p.Bytes(len(data)))
}

func TestPolyBytesZeroPadsLeadingEnd(t *testing.T) {
	p := NewPolyFromBytes([]byte{0xAB})
	out := p.Bytes(3)
	assert.Equal(t, []byte{0x00, 0x00, 0xAB}, out)
}

func TestPolyAddIsSelfInverse(t *testing.T) {
	a := Poly{1, 2, 3}
	b := Poly{4, 5, 6, 7}
	sum := polyadd(a, b)
	back := polyadd(sum, b)
	assert.True(t, back.equals(a))
}

func TestPolyMulByUnit(t *testing.T) {
	a := Poly{1, 2, 3}
	assert.True(t, polymul(a, unitPoly).equals(a))
}

func TestPolyMulByZero(t *testing.T) {
	a := Poly{1, 2, 3}
	assert.True(t, polymul(a, Poly{0}).iszeropoly())
}

func TestEuclideanDivideReconstructsDividend(t *testing.T) {
	a := Poly{1, 0, 1, 1, 0, 1}
	b := Poly{1, 1, 0, 1}
	q, r, err := euclideanDivide(a, b)
	assert.NoError(t, err)
	reconstructed := polyadd(polymul(q, b), r)
	assert.True(t, reconstructed.equals(a))
	assert.True(t, r.degree() < b.degree() || r.iszeropoly())
}

func TestEuclideanDivideByZeroErrors(t *testing.T) {
	_, _, err := euclideanDivide(Poly{1, 2}, Poly{0})
	assert.Error(t, err)
}

func TestPolynomialEvalAtZeroIsConstantTerm(t *testing.T) {
	p := Poly{9, 1, 1}
	assert.Equal(t, 9, polynomialEval(p, 0))
}

func TestPolynomialEvalMatchesHornerByHand(t *testing.T) {
	p := Poly{gfpow2(3), gfpow2(5), 1}
	x := gfpow2(2)
	want := gfadd(gfadd(p[0], gfmult(p[1], x)), gfmult(p[2], gfmult(x, x)))
	assert.Equal(t, want, polynomialEval(p, x))
}

func TestFormalDerivativeDropsEvenPowers(t *testing.T) {
	p := Poly{1, 2, 3, 4, 5}
	d := formalDerivative(p)
	assert.Equal(t, Poly{2, 0, 4}, Poly(d).rstripzeros())
}

func TestFormalDerivativeOfConstantIsZero(t *testing.T) {
	assert.True(t, formalDerivative(Poly{7}).iszeropoly())
}

func TestRstripzerosCanonicalizesZero(t *testing.T) {
	p := Poly{0, 0, 0}
	assert.Equal(t, Poly{0}, p.rstripzeros())
}

func TestPolyShiftPrependsZero(t *testing.T) {
	p := Poly{1, 2, 3}
	shifted := polyshift(p)
	assert.Equal(t, Poly{0, 1, 2, 3}, shifted)
}
