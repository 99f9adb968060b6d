package qrcode

// Systematic Reed-Solomon encoding for QR Code error correction, built on
// top of the shared GF(256) tables and polynomial algebra in gf256.go and
// polynomial.go so the encoder and the decoder core provably agree on the
// field.

// GenerateGeneratorPoly creates a generator polynomial for the given
// number of error correction codewords: g(x) = prod_{i=0}^{deg-1} (x - a^i).
func GenerateGeneratorPoly(numECCodewords int) []int {
	gen := unitPoly.clone()
	for i := 0; i < numECCodewords; i++ {
		gen = polymul(gen, Poly{gfpow2(i), 1})
	}
	return []int(gen)
}

// CalculateECCodewords generates error correction codewords for the given
// data via systematic polynomial division against the generator
// polynomial, returning only the remainder (the parity bytes).
func CalculateECCodewords(data []int, numECCodewords int) []int {
	generator := GenerateGeneratorPoly(numECCodewords)

	remainder := make([]int, len(data)+numECCodewords)
	copy(remainder, data)

	// remainder is highest degree first while generator is lowest degree
	// first, so the generator is walked from its leading coefficient down.
	for i := 0; i < len(data); i++ {
		coef := remainder[i]
		if coef != 0 {
			for j := 0; j < len(generator); j++ {
				remainder[i+j] = gfadd(remainder[i+j], gfmult(generator[len(generator)-1-j], coef))
			}
		}
	}

	return remainder[len(data):]
}
