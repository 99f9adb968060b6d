package qrcode

import "github.com/cockroachdb/errors"

// ErrMalformedInput is the domain error returned when the shape of the
// input itself is invalid: a received polynomial longer than 255 symbols,
// an erasure index outside the received polynomial, a negative number of
// parity symbols, or division by the zero polynomial. It is never returned
// for input that is merely uncorrectable — see ReedSolomonError for that.
var ErrMalformedInput = errors.New("qrcode: malformed input")

// ReedSolomonError is returned when a received codeword could not be
// decoded: too many erasures, a locator degree inconsistent with the
// guaranteed correction bound, a locator with no roots in GF(256), a root
// count that disagrees with the locator's degree, or a non-splitting
// locator rejected by an erasure-check decoder.
var ReedSolomonError = errors.New("qrcode: reed-solomon decode failed")

func newMalformedInputf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedInput, format, args...)
}

func newReedSolomonErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ReedSolomonError, format, args...)
}
