package qrcode

// forney computes the error magnitudes at the given positions using
// Forney's algorithm, given the errata locator lambda and the error
// evaluator omega. The returned slice is in the same order as positions.
func forney(lambda, omega Poly, positions []int) ([]int, error) {
	lambdaPrime := formalDerivative(lambda)

	magnitudes := make([]int, len(positions))
	for i, k := range positions {
		xInv := gfpow2(-k)
		numerator := gfmult(gfpow2(k), polynomialEval(omega, xInv))
		denominator := polynomialEval(lambdaPrime, xInv)
		e, err := gfdivide(numerator, denominator)
		if err != nil {
			return nil, newReedSolomonErrorf("forney: position %d has a repeated or non-simple root", k)
		}
		magnitudes[i] = e
	}
	return magnitudes, nil
}

// evaluatorPolynomial computes Omega(x) = truncate_n(S(x) * Lambda(x)),
// keeping coefficients 0..n-1.
func evaluatorPolynomial(s, lambda Poly, n int) Poly {
	full := polymul(s, lambda)
	if len(full) > n {
		full = full[:n]
	}
	return full.rstripzeros()
}
