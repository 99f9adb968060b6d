package qrcode

// berlekampMasseyLocator runs the erasure-aware Berlekamp-Massey algorithm
// over syndrome polynomial s (length n) and known erasure positions e,
// producing the error (or errata) locator polynomial Lambda.
//
// When check is true, the locator is additionally rejected with
// ReedSolomonError unless it fully splits into roots in GF(256) — useful
// on paths where the caller suspects uncorrectable input and wants that
// caught here rather than surfacing later as a root-finding failure.
func berlekampMasseyLocator(s Poly, e []int, check bool) (Poly, error) {
	n := len(s)
	rho := len(e)
	if rho > n {
		return nil, newReedSolomonErrorf("berlekamp_massey: %d erasures exceeds %d parity symbols", rho, n)
	}

	lambda := erratalocatorPolynomial(e)
	b := lambda.clone()
	l := rho

	for r := rho + 1; r <= n; r++ {
		delta := bmDiscrepancy(s, lambda, r)

		shiftedB := polyshift(b)
		newLambda := polyadd(lambda, polyscale(shiftedB, delta))

		if delta == 0 || 2*l > r+rho-1 {
			b = shiftedB
		} else {
			newL := r - l - rho
			deltaInv, err := gfinv(delta)
			if err != nil {
				return nil, err
			}
			b = polyscale(lambda, deltaInv)
			l = newL
		}
		lambda = newLambda
	}

	lambda = lambda.rstripzeros()
	if lambda.iszeropoly() {
		return nil, newReedSolomonErrorf("berlekamp_massey: zero locator")
	}

	v := lambda.degree() - rho
	if 2*v+rho > n {
		return nil, newReedSolomonErrorf("berlekamp_massey: locator degree %d inconsistent with %d parity symbols and %d erasures", lambda.degree(), n, rho)
	}

	if check {
		if len(positions(lambda)) == 0 {
			return nil, newReedSolomonErrorf("berlekamp_massey: locator does not fully split in GF(256)")
		}
	}

	return lambda, nil
}

// bmDiscrepancy computes the step-r discrepancy of lambda against the
// syndrome polynomial s, 1-based r: delta = XOR_k lambda[k] * s[r-1-k]
// over every coefficient of lambda, treating out-of-range syndromes as
// zero.
func bmDiscrepancy(s, lambda Poly, r int) int {
	delta := 0
	for k := 0; k < len(lambda); k++ {
		idx := r - 1 - k
		if idx < 0 || idx >= len(s) {
			continue
		}
		coef := 0
		if k < len(lambda) {
			coef = lambda[k]
		}
		delta = gfadd(delta, gfmult(coef, s[idx]))
	}
	return delta
}
