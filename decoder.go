package qrcode

import "fmt"

// maxCodewordLength is the longest codeword this decoder will work with:
// QR's GF(256) has exactly 255 non-zero elements, so a codeword with its
// parity symbols cannot exceed 255 bytes.
const maxCodewordLength = 255

// TraceFunc receives one call per decoder stage transition (syndrome
// computed, locator found, positions resolved, magnitudes applied) when
// installed via WithTrace. It never influences decoding: a Decoder with no
// trace sink behaves identically, just silently.
type TraceFunc func(stage, detail string)

// Option configures a Decoder constructed with NewDecoder.
type Option func(*Decoder)

// WithTrace installs sink as the decoder's trace sink. Pass nil to disable
// tracing, which is also the zero-value Decoder's default.
func WithTrace(sink TraceFunc) Option {
	return func(d *Decoder) { d.trace = sink }
}

// WithErasureCheck sets the check flag (§4.F) used by this Decoder's
// Berlekamp-Massey methods (BMDecode, BMDecodeErasures, FillErasures). The
// Euclidean methods do not use it.
func WithErasureCheck(check bool) Option {
	return func(d *Decoder) { d.check = check }
}

// Decoder bundles the ambient configuration around the Reed-Solomon core:
// an optional trace sink and the default erasure-check strictness. The
// zero-value Decoder{} is equivalent to calling the package-level decode
// functions directly.
type Decoder struct {
	trace TraceFunc
	check bool
}

// NewDecoder constructs a Decoder with the given options applied in order.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Decoder) tracef(stage, format string, args ...interface{}) {
	if d == nil || d.trace == nil {
		return
	}
	d.trace(stage, fmt.Sprintf(format, args...))
}

var defaultDecoder = &Decoder{}

// SyndromePolynomial returns the syndrome of r over n parity symbols (§4.E).
func SyndromePolynomial(r Poly, n int) (Poly, error) {
	return syndromePolynomial(r, n)
}

// HasErrors reports whether r's syndrome over n parity symbols is non-zero.
func HasErrors(r Poly, n int) (bool, error) {
	return haserrors(r, n)
}

// ErrataLocatorPolynomial returns the product of (1 + alpha^i*x) over the
// given positions (§4.E). An empty slice yields the unit polynomial.
func ErrataLocatorPolynomial(positions []int) Poly {
	return erratalocatorPolynomial(positions)
}

// FindRoots returns the roots of p in GF(256) (§4.D), or an empty slice if
// p does not split into degree(p) distinct roots.
func FindRoots(p Poly) []int {
	return findroots(p)
}

// Positions converts an error locator's roots into zero-based positions in
// the received polynomial.
func Positions(lambda Poly) []int {
	return positions(lambda)
}

// ForneyMagnitudes computes error magnitudes at positions using Forney's
// algorithm, given the errata locator and evaluator (§4.H).
func ForneyMagnitudes(lambda, omega Poly, positions []int) ([]int, error) {
	return forney(lambda, omega, positions)
}

// BMDecode corrects r using the Berlekamp-Massey decoder with no erasures.
func BMDecode(r Poly, n int) (Poly, error) {
	return defaultDecoder.BMDecodeErasures(r, nil, n)
}

// BMDecodeErasures corrects r using the Berlekamp-Massey decoder, treating
// the positions in e as known erasures.
func BMDecodeErasures(r Poly, e []int, n int) (Poly, error) {
	return defaultDecoder.BMDecodeErasures(r, e, n)
}

// EuclideanDecode corrects r using Sugiyama's Euclidean decoder with no
// erasures.
func EuclideanDecode(r Poly, n int) (Poly, error) {
	return defaultDecoder.EuclideanDecodeErasures(r, nil, n)
}

// EuclideanDecodeErasures corrects r using Sugiyama's Euclidean decoder,
// treating the positions in e as known erasures.
func EuclideanDecodeErasures(r Poly, e []int, n int) (Poly, error) {
	return defaultDecoder.EuclideanDecodeErasures(r, e, n)
}

// FillErasures corrects r assuming every corrupted symbol is listed in e
// (no unknown-position errors). It is equivalent to decoding with e as the
// full erasure set.
func FillErasures(r Poly, e []int, n int) (Poly, error) {
	return defaultDecoder.FillErasures(r, e, n)
}

func validateReceived(r Poly, e []int, n int) error {
	if len(r) > maxCodewordLength {
		return newMalformedInputf("received polynomial has length %d, exceeds %d", len(r), maxCodewordLength)
	}
	if n < 0 {
		return newMalformedInputf("negative parity symbol count %d", n)
	}
	for _, pos := range e {
		if pos < 0 || pos >= len(r) {
			return newMalformedInputf("erasure position %d outside [0, %d)", pos, len(r))
		}
	}
	if len(e) > n {
		return newReedSolomonErrorf("%d erasures exceeds %d parity symbols", len(e), n)
	}
	return nil
}

// applyMagnitudes XORs magnitudes into a clone of r at the given
// positions, returning an error if any position falls outside r.
func applyMagnitudes(r Poly, pos []int, magnitudes []int) (Poly, error) {
	corrected := r.clone()
	for i, p := range pos {
		if p < 0 || p >= len(corrected) {
			return nil, newReedSolomonErrorf("error position %d outside received polynomial of length %d", p, len(corrected))
		}
		corrected[p] = gfadd(corrected[p], magnitudes[i])
	}
	return corrected, nil
}

// BMDecode corrects r using the Berlekamp-Massey decoder with no erasures,
// using this Decoder's configured trace sink and erasure-check default.
func (d *Decoder) BMDecode(r Poly, n int) (Poly, error) {
	return d.BMDecodeErasures(r, nil, n)
}

// BMDecodeErasures corrects r using the Berlekamp-Massey decoder (§4.F,
// §4.I), treating the positions in e as known erasures.
func (d *Decoder) BMDecodeErasures(r Poly, e []int, n int) (Poly, error) {
	if err := validateReceived(r, e, n); err != nil {
		return nil, err
	}

	s, err := syndromePolynomial(r, n)
	if err != nil {
		return nil, err
	}
	d.tracef("syndrome", "degree=%d zero=%v", s.degree(), s.iszeropoly())
	if s.iszeropoly() {
		return r.clone(), nil
	}

	lambda, err := berlekampMasseyLocator(s, e, d.check)
	if err != nil {
		return nil, err
	}
	d.tracef("locator", "bm degree=%d", lambda.degree())

	pos := positions(lambda)
	if len(pos) == 0 {
		return nil, newReedSolomonErrorf("berlekamp-massey: locator has no roots in GF(256)")
	}
	d.tracef("positions", "count=%d", len(pos))

	omega := evaluatorPolynomial(s, lambda, n)
	magnitudes, err := forney(lambda, omega, pos)
	if err != nil {
		return nil, err
	}
	d.tracef("magnitudes", "applied=%d", len(magnitudes))

	return applyMagnitudes(r, pos, magnitudes)
}

// EuclideanDecode corrects r using Sugiyama's Euclidean decoder with no
// erasures, using this Decoder's configured trace sink.
func (d *Decoder) EuclideanDecode(r Poly, n int) (Poly, error) {
	return d.EuclideanDecodeErasures(r, nil, n)
}

// EuclideanDecodeErasures corrects r using Sugiyama's Euclidean decoder
// (§4.G, §4.I), treating the positions in e as known erasures.
func (d *Decoder) EuclideanDecodeErasures(r Poly, e []int, n int) (Poly, error) {
	if err := validateReceived(r, e, n); err != nil {
		return nil, err
	}

	s, err := syndromePolynomial(r, n)
	if err != nil {
		return nil, err
	}
	d.tracef("syndrome", "degree=%d zero=%v", s.degree(), s.iszeropoly())
	if s.iszeropoly() {
		return r.clone(), nil
	}

	gamma := erratalocatorPolynomial(e)
	xn := polyMonomialX(n, 1)
	sGamma := polymul(s, gamma)
	upperdeg := (n+len(e))/2 - 1

	lambda, omega, err := euclideanLocatorAndEvaluator(sGamma, xn, upperdeg)
	if err != nil {
		return nil, err
	}

	errataLocator := polymul(lambda, gamma)
	pos := append(positions(lambda), e...)
	d.tracef("locator", "euclidean degree=%d positions=%d", errataLocator.degree(), len(pos))

	if len(pos) != errataLocator.degree() {
		return nil, newReedSolomonErrorf("euclidean: %d positions found, locator degree is %d", len(pos), errataLocator.degree())
	}

	magnitudes, err := forney(errataLocator, omega, pos)
	if err != nil {
		return nil, err
	}
	d.tracef("magnitudes", "applied=%d", len(magnitudes))

	return applyMagnitudes(r, pos, magnitudes)
}

// FillErasures corrects r on this Decoder assuming every corrupted symbol
// is listed in e.
func (d *Decoder) FillErasures(r Poly, e []int, n int) (Poly, error) {
	return d.BMDecodeErasures(r, e, n)
}
