package qrcode

// Poly is a dense polynomial over GF(256), stored as coefficients from
// lowest degree to highest: Poly{c0, c1, c2} means c0 + c1*x + c2*x^2.
//
// The zero polynomial is represented as Poly{0}, never as an empty slice.
type Poly []int

// unitPoly is the multiplicative identity, the polynomial "1".
var unitPoly = Poly{1}

// NewPoly copies coeffs into a new Poly. An empty input yields the zero
// polynomial.
func NewPoly(coeffs []int) Poly {
	if len(coeffs) == 0 {
		return Poly{0}
	}
	p := make(Poly, len(coeffs))
	copy(p, coeffs)
	return p
}

// NewPolyFromBytes builds a Poly whose coefficients, from lowest to highest
// degree, are the bytes of data read back to front — i.e. data[len(data)-1]
// becomes c0 and data[0] becomes the leading coefficient. This is the
// convention used for a received QR codeword, whose low-order coefficients
// are the trailing parity bytes.
func NewPolyFromBytes(data []byte) Poly {
	if len(data) == 0 {
		return Poly{0}
	}
	p := make(Poly, len(data))
	for i, b := range data {
		p[len(data)-1-i] = int(b)
	}
	return p
}

// Bytes renders p back into a byte slice of the given length using the
// inverse of NewPolyFromBytes's convention, zero-padding or truncating the
// leading end as needed.
func (p Poly) Bytes(length int) []byte {
	out := make([]byte, length)
	for i := 0; i < length && i < len(p); i++ {
		out[length-1-i] = byte(p[i] & 0xFF)
	}
	return out
}

// length returns the number of stored coefficients (not the same as degree
// when there are trailing zero coefficients).
func (p Poly) length() int {
	return len(p)
}

// degree returns the index of the highest non-zero coefficient, or 0 for
// the zero polynomial.
func (p Poly) degree() int {
	for i := len(p) - 1; i > 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return 0
}

// iszeropoly reports whether p, after stripping, is the zero polynomial.
func (p Poly) iszeropoly() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// rstripzeros returns the canonical form of p: either length 1, or with a
// non-zero leading coefficient.
func (p Poly) rstripzeros() Poly {
	d := p.degree()
	if d == 0 && p.iszeropoly() {
		return Poly{0}
	}
	return append(Poly{}, p[:d+1]...)
}

// equals compares two polynomials coefficient-wise after stripping.
func (p Poly) equals(q Poly) bool {
	a, b := p.rstripzeros(), q.rstripzeros()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// clone returns an independent copy of p.
func (p Poly) clone() Poly {
	q := make(Poly, len(p))
	copy(q, p)
	return q
}

// polyadd returns a+b over GF(256), coefficient-wise XOR with zero padding.
func polyadd(a, b Poly) Poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	r := make(Poly, n)
	for i := 0; i < n; i++ {
		var x, y int
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		r[i] = gfadd(x, y)
	}
	return r.rstripzeros()
}

// polymul returns a*b over GF(256), schoolbook convolution.
func polymul(a, b Poly) Poly {
	if a.iszeropoly() || b.iszeropoly() {
		return Poly{0}
	}
	r := make(Poly, len(a)+len(b)-1)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			if bj == 0 {
				continue
			}
			r[i+j] = gfadd(r[i+j], gfmult(ai, bj))
		}
	}
	return r.rstripzeros()
}

// polyscale returns a scaled by the constant c.
func polyscale(a Poly, c int) Poly {
	if c == 0 {
		return Poly{0}
	}
	r := make(Poly, len(a))
	for i, ai := range a {
		r[i] = gfmult(ai, c)
	}
	return r.rstripzeros()
}

// polyMonomialX returns the monomial coefficient*x^degree.
func polyMonomialX(degree int, coefficient int) Poly {
	if coefficient == 0 {
		return Poly{0}
	}
	r := make(Poly, degree+1)
	r[degree] = coefficient
	return r
}

// polyshift multiplies a by x, i.e. prepends a zero coefficient.
func polyshift(a Poly) Poly {
	r := make(Poly, len(a)+1)
	copy(r[1:], a)
	return r
}

// euclideanDivide divides a by b (b must not be the zero polynomial),
// returning (q, r) such that a = q*b + r and degree(r) < degree(b).
func euclideanDivide(a, b Poly) (q, r Poly, err error) {
	if b.iszeropoly() {
		return nil, nil, newMalformedInputf("euclidean_divide: division by zero polynomial")
	}
	b = b.rstripzeros()
	r = a.rstripzeros()
	bDeg := b.degree()
	bLead := b[bDeg]
	bLeadInv, _ := gfinv(bLead)

	qcoeffs := make([]int, 0)
	for r.degree() >= bDeg && !r.iszeropoly() {
		shift := r.degree() - bDeg
		coeff := gfmult(r[r.degree()], bLeadInv)
		for len(qcoeffs) <= shift {
			qcoeffs = append(qcoeffs, 0)
		}
		qcoeffs[shift] = coeff
		term := polymul(b, polyMonomialX(shift, coeff))
		r = polyadd(r, term)
	}
	if len(qcoeffs) == 0 {
		qcoeffs = []int{0}
	}
	return Poly(qcoeffs).rstripzeros(), r.rstripzeros(), nil
}

// polynomialEval applies Horner's method, evaluating p at x.
func polynomialEval(p Poly, x int) int {
	d := p.degree()
	v := p[d]
	for i := d - 1; i >= 0; i-- {
		v = gfadd(gfmult(v, x), p[i])
	}
	return v
}

// formalDerivative computes the formal derivative of p over GF(256), a
// characteristic-2 field: coefficients originally at even powers vanish,
// and coefficients at odd powers shift down one index.
func formalDerivative(p Poly) Poly {
	if len(p) <= 1 {
		return Poly{0}
	}
	r := make(Poly, len(p)-1)
	for i := 1; i < len(p); i++ {
		if i%2 == 1 {
			r[i-1] = p[i]
		}
	}
	return r.rstripzeros()
}
