package qrcode

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewMalformedInputfIsErrMalformedInput(t *testing.T) {
	err := newMalformedInputf("bad thing: %d", 7)
	assert.True(t, errors.Is(err, ErrMalformedInput))
	assert.Contains(t, err.Error(), "bad thing: 7")
}

func TestNewReedSolomonErrorfIsReedSolomonError(t *testing.T) {
	err := newReedSolomonErrorf("uncorrectable: %s", "too many errors")
	assert.True(t, errors.Is(err, ReedSolomonError))
}

func TestValidateReceivedErrorsAreDistinguishable(t *testing.T) {
	err := validateReceived(Poly{1}, []int{5}, 2)
	assert.True(t, errors.Is(err, ErrMalformedInput))

	err = validateReceived(Poly{1, 2, 3}, []int{0, 1, 2}, 1)
	assert.True(t, errors.Is(err, ReedSolomonError))
}
