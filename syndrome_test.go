package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyndromePolynomialZeroForCodeword(t *testing.T) {
	codeword := encodeCodeword([]byte("SYNC"), 6)
	s, err := syndromePolynomial(codeword, 6)
	require.NoError(t, err)
	assert.True(t, s.iszeropoly())
}

func TestSyndromePolynomialNonZeroForCorruptedWord(t *testing.T) {
	codeword := encodeCodeword([]byte("SYNC"), 6)
	corrupted := corrupt(codeword, 1, 0x40)
	s, err := syndromePolynomial(corrupted, 6)
	require.NoError(t, err)
	assert.False(t, s.iszeropoly())
}

func TestSyndromePolynomialRejectsNegativeN(t *testing.T) {
	_, err := syndromePolynomial(Poly{1, 2}, -1)
	assert.Error(t, err)
}

func TestHasErrorsMatchesSyndromeZeroCheck(t *testing.T) {
	codeword := encodeCodeword([]byte("SYNC"), 6)
	clean, err := haserrors(codeword, 6)
	require.NoError(t, err)
	assert.False(t, clean)
}

func TestErrataLocatorPolynomialDegreeMatchesPositionCount(t *testing.T) {
	loc := erratalocatorPolynomial([]int{0, 4, 9})
	assert.Equal(t, 3, loc.degree())
}

func TestErrataLocatorPolynomialOfEmptyIsUnit(t *testing.T) {
	loc := erratalocatorPolynomial(nil)
	assert.True(t, loc.equals(unitPoly))
}

func TestErrataLocatorPolynomialConstantTermIsOne(t *testing.T) {
	loc := erratalocatorPolynomial([]int{3, 7})
	assert.Equal(t, 1, loc[0])
}
