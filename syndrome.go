package qrcode

// syndromePolynomial computes the syndrome of the received polynomial R:
// s_i = R(alpha^i) for i = 0..n-1.
func syndromePolynomial(r Poly, n int) (Poly, error) {
	if n < 0 {
		return nil, newMalformedInputf("syndrome_polynomial: negative n")
	}
	if n == 0 {
		return Poly{0}, nil
	}
	s := make(Poly, n)
	for i := 0; i < n; i++ {
		s[i] = polynomialEval(r, gfpow2(i))
	}
	return s, nil
}

// haserrors reports whether R's syndrome over n parity symbols is
// non-zero. When the true number of errors is <= n, a zero result is
// certain to indicate an error-free codeword.
func haserrors(r Poly, n int) (bool, error) {
	s, err := syndromePolynomial(r, n)
	if err != nil {
		return false, err
	}
	return !s.iszeropoly(), nil
}

// erratalocatorPolynomial returns the product over the given positions of
// (1 + alpha^i * x). An empty input yields the unit polynomial. This is
// used both to seed Berlekamp-Massey with known erasures and to build the
// Euclidean decoder's known-erasure factor Gamma.
func erratalocatorPolynomial(positions []int) Poly {
	loc := unitPoly.clone()
	for _, i := range positions {
		term := Poly{1, gfpow2(i)}
		loc = polymul(loc, term)
	}
	return loc
}
