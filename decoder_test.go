package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeCodeword builds a systematic codeword (message followed by parity)
// for the given message bytes and parity count, using the same generator
// polynomial division the encoder uses.
func encodeCodeword(message []byte, parity int) Poly {
	data := make([]int, len(message))
	for i, b := range message {
		data[i] = int(b)
	}
	ec := CalculateECCodewords(data, parity)
	full := append(append([]int{}, data...), ec...)
	bytes := make([]byte, len(full))
	for i, v := range full {
		bytes[i] = byte(v)
	}
	return NewPolyFromBytes(bytes)
}

func corrupt(p Poly, pos, magnitude int) Poly {
	q := p.clone()
	q[pos] = gfadd(q[pos], magnitude)
	return q
}

func TestBMDecodeNoErrorsReturnsInputUnchanged(t *testing.T) {
	codeword := encodeCodeword([]byte("HELLO"), 6)
	corrected, err := BMDecode(codeword, 6)
	require.NoError(t, err)
	assert.True(t, corrected.equals(codeword))
}

func TestBMDecodeCorrectsSingleError(t *testing.T) {
	codeword := encodeCodeword([]byte("HELLO"), 6)
	received := corrupt(codeword, 2, 0x5A)
	corrected, err := BMDecode(received, 6)
	require.NoError(t, err)
	assert.True(t, corrected.equals(codeword))
}

func TestBMDecodeCorrectsUpToTErrors(t *testing.T) {
	codeword := encodeCodeword([]byte("QRCODES!"), 8) // t = 4
	received := codeword.clone()
	for i, pos := range []int{0, 3, 6, 9} {
		received[pos] = gfadd(received[pos], 0x11*(i+1))
	}
	corrected, err := BMDecode(received, 8)
	require.NoError(t, err)
	assert.True(t, corrected.equals(codeword))
}

func TestBMDecodeFailsBeyondCapacity(t *testing.T) {
	codeword := encodeCodeword([]byte("HELLO"), 6) // t = 3
	received := codeword.clone()
	for _, pos := range []int{0, 1, 2, 3} {
		received[pos] = gfadd(received[pos], 0x7F)
	}
	_, err := BMDecode(received, 6)
	assert.Error(t, err)
}

func TestBMDecodeErasuresCorrectsKnownPositions(t *testing.T) {
	codeword := encodeCodeword([]byte("ERASURE!"), 8)
	received := codeword.clone()
	erasures := []int{1, 4}
	for _, pos := range erasures {
		received[pos] = 0
	}
	corrected, err := BMDecodeErasures(received, erasures, 8)
	require.NoError(t, err)
	assert.True(t, corrected.equals(codeword))
}

func TestEuclideanDecodeNoErrorsReturnsInputUnchanged(t *testing.T) {
	codeword := encodeCodeword([]byte("HELLO"), 6)
	corrected, err := EuclideanDecode(codeword, 6)
	require.NoError(t, err)
	assert.True(t, corrected.equals(codeword))
}

func TestEuclideanDecodeAgreesWithBMDecode(t *testing.T) {
	codeword := encodeCodeword([]byte("QRCODES!"), 8)
	received := codeword.clone()
	for _, pos := range []int{1, 5, 9} {
		received[pos] = gfadd(received[pos], 0x33)
	}

	viaBM, err := BMDecode(received, 8)
	require.NoError(t, err)
	viaEuclidean, err := EuclideanDecode(received, 8)
	require.NoError(t, err)
	assert.True(t, viaBM.equals(viaEuclidean))
	assert.True(t, viaBM.equals(codeword))
}

func TestEuclideanDecodeErasuresCorrectsKnownPositions(t *testing.T) {
	codeword := encodeCodeword([]byte("ERASURE!"), 8)
	received := codeword.clone()
	erasures := []int{2, 7}
	for _, pos := range erasures {
		received[pos] = 0
	}
	corrected, err := EuclideanDecodeErasures(received, erasures, 8)
	require.NoError(t, err)
	assert.True(t, corrected.equals(codeword))
}

func TestFillErasuresAssumesListedPositionsAreTheOnlyCorruption(t *testing.T) {
	codeword := encodeCodeword([]byte("FILLME!!"), 8)
	received := codeword.clone()
	erasures := []int{0, 2, 4, 6}
	for _, pos := range erasures {
		received[pos] = gfadd(received[pos], 0xFF)
	}
	corrected, err := FillErasures(received, erasures, 8)
	require.NoError(t, err)
	assert.True(t, corrected.equals(codeword))
}

func TestValidateReceivedRejectsTooManyErasures(t *testing.T) {
	codeword := encodeCodeword([]byte("HI"), 4)
	_, err := BMDecodeErasures(codeword, []int{0, 1, 2, 3, 4}, 4)
	assert.Error(t, err)
}

func TestValidateReceivedRejectsErasurePositionOutOfRange(t *testing.T) {
	codeword := encodeCodeword([]byte("HI"), 4)
	_, err := BMDecodeErasures(codeword, []int{len(codeword)}, 4)
	assert.Error(t, err)
}

func TestNewDecoderZeroValueMatchesPackageLevelFacade(t *testing.T) {
	codeword := encodeCodeword([]byte("HELLO"), 6)
	received := corrupt(codeword, 2, 0x5A)

	d := NewDecoder()
	viaDecoder, err := d.BMDecode(received, 6)
	require.NoError(t, err)

	viaPackage, err := BMDecode(received, 6)
	require.NoError(t, err)

	assert.True(t, viaDecoder.equals(viaPackage))
}

func TestWithTraceReceivesStageCallbacks(t *testing.T) {
	codeword := encodeCodeword([]byte("HELLO"), 6)
	received := corrupt(codeword, 2, 0x5A)

	var stages []string
	d := NewDecoder(WithTrace(func(stage, detail string) {
		stages = append(stages, stage)
	}))

	_, err := d.BMDecode(received, 6)
	require.NoError(t, err)
	assert.Contains(t, stages, "syndrome")
	assert.Contains(t, stages, "positions")
	assert.Contains(t, stages, "magnitudes")
}

func TestWithErasureCheckRejectsNonSplittingLocator(t *testing.T) {
	codeword := encodeCodeword([]byte("HELLO"), 6)
	received := codeword.clone()
	// Five errors: the locator still passes the degree bound, but it does
	// not split into roots in GF(256).
	for _, pos := range []int{0, 1, 2, 3, 4} {
		received[pos] = gfadd(received[pos], 0x7F)
	}

	d := NewDecoder(WithErasureCheck(true))
	_, err := d.BMDecode(received, 6)
	assert.ErrorContains(t, err, "does not fully split")
}

func TestHasErrorsDetectsCorruption(t *testing.T) {
	codeword := encodeCodeword([]byte("HELLO"), 6)
	clean, err := HasErrors(codeword, 6)
	require.NoError(t, err)
	assert.False(t, clean)

	corrupted := corrupt(codeword, 0, 0x01)
	dirty, err := HasErrors(corrupted, 6)
	require.NoError(t, err)
	assert.True(t, dirty)
}
