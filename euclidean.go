package qrcode

// extendedEuclideanDivide runs the extended Euclidean algorithm on
// polynomials r1 and r2, returning (u, v, g) such that u*r1 + v*r2 = g =
// gcd(r1, r2). Termination is when the running remainder becomes zero.
func extendedEuclideanDivide(r1, r2 Poly) (u, v, g Poly, err error) {
	return sugiyamaReduce(r1, r2, -1)
}

// sugiyamaEuclideanDivide is the extended Euclidean algorithm with a
// degree-bounded early exit: iteration stops as soon as the running
// remainder's degree is at most upperdeg, or the remainder becomes zero,
// whichever comes first. u is the Bezout coefficient attached to r1, v the
// coefficient attached to r2, and the returned polynomial is the running
// remainder at the point of exit (conventionally named r2 at the call
// site, since that is what becomes the error evaluator).
func sugiyamaEuclideanDivide(r1, r2 Poly, upperdeg int) (u, v, remainder Poly, err error) {
	return sugiyamaReduce(r1, r2, upperdeg)
}

// sugiyamaReduce is the shared implementation behind both Euclidean
// variants above. At every point of the iteration, u*r1 + v*r2 equals the
// current running remainder, which starts at r2 and shrinks in degree each
// step. upperdeg < 0 means "run to completion" (plain extended Euclid):
// the last non-zero remainder, the gcd, is then returned with its
// cofactors instead of the final zero remainder.
func sugiyamaReduce(r1, r2 Poly, upperdeg int) (u, v, remainder Poly, err error) {
	rPrev, rCur := r1.rstripzeros(), r2.rstripzeros()
	uPrev, uCur := unitPoly.clone(), Poly{0}
	vPrev, vCur := Poly{0}, unitPoly.clone()

	for !rCur.iszeropoly() && rCur.degree() > upperdeg {
		q, rem, derr := euclideanDivide(rPrev, rCur)
		if derr != nil {
			return nil, nil, nil, derr
		}

		newUCur := polyadd(uPrev, polymul(q, uCur))
		newVCur := polyadd(vPrev, polymul(q, vCur))

		uPrev, uCur = uCur, newUCur
		vPrev, vCur = vCur, newVCur
		rPrev, rCur = rCur, rem
	}

	if upperdeg < 0 {
		return uPrev.rstripzeros(), vPrev.rstripzeros(), rPrev.rstripzeros(), nil
	}
	return uCur.rstripzeros(), vCur.rstripzeros(), rCur.rstripzeros(), nil
}

// euclideanLocatorAndEvaluator runs Sugiyama's algorithm for the full
// Euclidean decoder (§4.G): given the combined syndrome*erasure-locator
// polynomial sGamma and the modulus monomial x^n, it returns the error
// locator lambda and the error evaluator omega.
func euclideanLocatorAndEvaluator(sGamma, xn Poly, upperdeg int) (lambda, omega Poly, err error) {
	lambda, _, omega, err = sugiyamaEuclideanDivide(sGamma, xn, upperdeg)
	return lambda, omega, err
}
