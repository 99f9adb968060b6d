package qrcode

import (
	"errors"
)

// Mode indicators
const (
	ModeNumeric      = 1
	ModeAlphanumeric = 2
	ModeByte         = 4
	ModeKanji        = 8
	ModeECI          = 7
)

// ECC Levels
const (
	LevelL = 1 // 7%
	LevelM = 0 // 15%
	LevelQ = 3 // 25%
	LevelH = 2 // 30%
)

// VersionInfo Version 1-40 info
type VersionInfo struct {
	TotalCodewords int
	ECCodewords    int
	Blocks         int // Number of blocks in group 1 (simplified for V1-V2)
	// For larger versions, there are groups. We will start with support for small versions.
	// We will implement dynamic lookup or just support V1 and V2 for "create and read again".
}

// Simplified table for Versions 1-4, all four ECC levels
// Ref: https://www.thonky.com/qr-code-tutorial/error-correction-table
var versionTable = map[int]map[int]VersionInfo{
	1: {
		LevelL: {TotalCodewords: 26, ECCodewords: 7, Blocks: 1},
		LevelM: {TotalCodewords: 26, ECCodewords: 10, Blocks: 1},
		LevelQ: {TotalCodewords: 26, ECCodewords: 13, Blocks: 1},
		LevelH: {TotalCodewords: 26, ECCodewords: 17, Blocks: 1},
	},
	2: {
		LevelL: {TotalCodewords: 44, ECCodewords: 10, Blocks: 1},
		LevelM: {TotalCodewords: 44, ECCodewords: 16, Blocks: 1},
		LevelQ: {TotalCodewords: 44, ECCodewords: 22, Blocks: 1},
		LevelH: {TotalCodewords: 44, ECCodewords: 28, Blocks: 1},
	},
	3: {
		LevelL: {TotalCodewords: 70, ECCodewords: 15, Blocks: 1},
		LevelM: {TotalCodewords: 70, ECCodewords: 26, Blocks: 1},
		LevelQ: {TotalCodewords: 70, ECCodewords: 36, Blocks: 2}, // split not implemented
		LevelH: {TotalCodewords: 70, ECCodewords: 44, Blocks: 2}, // split not implemented
	},
	4: {
		LevelL: {TotalCodewords: 100, ECCodewords: 20, Blocks: 1},
		LevelM: {TotalCodewords: 100, ECCodewords: 36, Blocks: 2}, // split not implemented
		LevelQ: {TotalCodewords: 100, ECCodewords: 52, Blocks: 2}, // split not implemented
		LevelH: {TotalCodewords: 100, ECCodewords: 64, Blocks: 4}, // split not implemented
	},
	// Add more if needed.
}

type QRCode struct {
	Version int
	Level   int
	Size    int // Dimension (21 + 4*(V-1))
	Modules [][]bool
}

// NewQRCode creates a matrix for the given string.
// Currently defaults to Byte Mode.
func NewQRCode(content string, level int) (*QRCode, error) {
	// Analyze data and choose version.
	// Start with V1 and move up one version at a time (up to V4) until it fits.
	data := []byte(content)

	var v int
	var vInfo VersionInfo
	found := false

	// Try versions 1 to 4
	for ver := 1; ver <= 4; ver++ {
		info := versionTable[ver][level]
		if info.Blocks > 1 {
			// Skip versions requiring interleaving for this simplified implementation
			continue
		}

		// Capacity check
		// Byte mode: 4 bits mode + 8 bits count (V1-9) + 8*len
		// V1-9 count indicator is 8 bits.
		totalDataBits := 4 + 8 + len(data)*8
		if totalDataBits <= (info.TotalCodewords-info.ECCodewords)*8 {
			v = ver
			vInfo = info
			found = true
			break
		}
	}

	if !found {
		return nil, errors.New("content too long or requires block interleaving (not implemented)")
	}

	// Data Encoding
	bitBuffer := NewBitBuffer()
	bitBuffer.Put(ModeByte, 4)
	bitBuffer.Put(len(data), 8) // 8 bits for count in V1-V9
	for _, b := range data {
		bitBuffer.Put(int(b), 8)
	}

	// Terminator and Padding
	dataCapacityBits := (vInfo.TotalCodewords - vInfo.ECCodewords) * 8
	if bitBuffer.Len() < dataCapacityBits {
		// Terminator (up to 4 zeros)
		term := 4
		if bitBuffer.Len()+term > dataCapacityBits {
			term = dataCapacityBits - bitBuffer.Len()
		}
		bitBuffer.Put(0, term)
	}

	// Byte alignment
	if bitBuffer.Len()%8 != 0 {
		bitBuffer.Put(0, 8-(bitBuffer.Len()%8))
	}

	// Pad bytes
	padBytes := []int{0xEC, 0x11}
	padIdx := 0
	for bitBuffer.Len() < dataCapacityBits {
		bitBuffer.Put(padBytes[padIdx], 8)
		padIdx = (padIdx + 1) % 2
	}

	// Error Correction Coding
	dataCodewords := make([]int, 0)
	// Convert bits to bytes
	bits := bitBuffer.Bits
	for i := 0; i < len(bits); i += 8 {
		val := 0
		for j := 0; j < 8; j++ {
			if i+j < len(bits) && bits[i+j] {
				val |= 1 << (7 - j)
			}
		}
		dataCodewords = append(dataCodewords, val)
	}

	ecCodewords := CalculateECCodewords(dataCodewords, vInfo.ECCodewords)

	finalMessage := append(dataCodewords, ecCodewords...)

	// Matrix Construction
	qr := &QRCode{
		Version: v,
		Level:   level,
		Size:    21 + 4*(v-1),
	}
	qr.Modules = make([][]bool, qr.Size)
	for i := range qr.Modules {
		qr.Modules[i] = make([]bool, qr.Size)
	}

	isFunction := buildFunctionPatterns(qr)

	// Place Data
	idx := 0
	totalBits := len(finalMessage) * 8

	// Mask Pattern 0: (row + col) % 2 == 0 (Checkerboard). The only mask
	// this encoder uses.
	maskPattern := 0

	getBit := func(k int) bool {
		byteIdx := k / 8
		bitIdx := 7 - (k % 8)
		return (finalMessage[byteIdx]>>bitIdx)&1 == 1
	}

	for _, p := range dataModuleOrder(qr.Size, isFunction) {
		bit := false
		if idx < totalBits {
			bit = getBit(idx)
			idx++
		}
		if (p.r+p.c)%2 == 0 {
			bit = !bit
		}
		qr.Modules[p.r][p.c] = bit
	}

	placeFormatInfo(qr, level, maskPattern)

	return qr, nil
}

// BitBuffer helper
type BitBuffer struct {
	Bits []bool
}

func NewBitBuffer() *BitBuffer {
	return &BitBuffer{Bits: []bool{}}
}

func (b *BitBuffer) Put(num, length int) {
	for i := 0; i < length; i++ {
		b.Bits = append(b.Bits, ((num>>(length-1-i))&1) == 1)
	}
}

func (b *BitBuffer) Len() int {
	return len(b.Bits)
}
