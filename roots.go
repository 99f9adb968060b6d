package qrcode

// findroots returns the roots of p in GF(256), found by repeated Horner
// reduction via synthetic division while r counts up from 0, and returned
// in the reverse of that discovery order (descending).
// It returns an empty slice whenever p has fewer than degree(p) distinct
// roots in GF(256) — callers must treat that as a decoding failure.
func findroots(p Poly) []int {
	work := p.rstripzeros()
	n := work.degree()
	if n == 0 {
		return []int{}
	}

	found := make([]int, 0, n)
	for r := 0; r <= 255; r++ {
		divisor := Poly{r, 1} // (x - r), which is (x + r) over GF(2^k)
		q, rem, err := euclideanDivide(work, divisor)
		if err != nil {
			continue
		}
		if !rem.iszeropoly() {
			continue
		}
		found = append(found, r)
		work = q
		n--
		if n == 0 {
			reversed := make([]int, len(found))
			for i, v := range found {
				reversed[len(found)-1-i] = v
			}
			return reversed
		}
	}
	return []int{}
}

// positions converts the roots of an error locator polynomial into
// zero-based error positions within the received polynomial:
// position = (-log_alpha(root)) mod 255.
func positions(lambda Poly) []int {
	rs := findroots(lambda)
	if len(rs) == 0 {
		return []int{}
	}
	out := make([]int, 0, len(rs))
	for _, r := range rs {
		if r == 0 {
			// A root at 0 cannot correspond to a valid error position
			// (the locator's constant term being non-zero rules this out
			// in every call site); skip defensively rather than panic.
			continue
		}
		k, err := gflog2(r)
		if err != nil {
			continue
		}
		out = append(out, modExp255(-k))
	}
	return out
}
