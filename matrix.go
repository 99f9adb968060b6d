package qrcode

// Matrix geometry shared between encoding (encoder.go) and decoding
// (decode.go): function-pattern placement, the zig-zag data traversal
// order, and format-information bit placement/extraction. Factored out of
// the original single-pass NewQRCode so decode.go can walk the same
// geometry in reverse without duplicating the placement rules.

// versionForSize maps a detected module-grid size back to a QR version,
// for the simplified version 1-4 range this library supports.
func versionForSize(size int) (int, bool) {
	if size < 21 || (size-21)%4 != 0 {
		return 0, false
	}
	v := (size-21)/4 + 1
	if v < 1 || v > 4 {
		return 0, false
	}
	return v, true
}

// modulePos is a single (row, column) coordinate in the module grid.
type modulePos struct {
	r, c int
}

// buildFunctionPatterns paints every function pattern (finders,
// separators, alignment patterns, timing patterns, the dark module, and
// the format-information reservation areas) onto qr.Modules and returns
// the accompanying isFunction mask marking which cells are function
// patterns rather than data.
func buildFunctionPatterns(qr *QRCode) [][]bool {
	size := qr.Size
	isFunction := make([][]bool, size)
	for i := range isFunction {
		isFunction[i] = make([]bool, size)
	}

	addFinderPattern := func(r, c int) {
		for i := 0; i < 7; i++ {
			for j := 0; j < 7; j++ {
				if r+i >= size || c+j >= size || r+i < 0 || c+j < 0 {
					continue
				}
				isFunction[r+i][c+j] = true
				if i == 0 || i == 6 || j == 0 || j == 6 || (i >= 2 && i <= 4 && j >= 2 && j <= 4) {
					qr.Modules[r+i][c+j] = true
				} else {
					qr.Modules[r+i][c+j] = false
				}
			}
		}
	}

	addFinderPattern(0, 0)
	addFinderPattern(0, size-7)
	addFinderPattern(size-7, 0)

	for i := 0; i < 8; i++ {
		if i < size && 7 < size {
			isFunction[i][7] = true
			qr.Modules[i][7] = false
			isFunction[7][i] = true
			qr.Modules[7][i] = false
		}
	}
	for i := 0; i < 8; i++ {
		if i < size && size-8 >= 0 {
			isFunction[i][size-8] = true
			qr.Modules[i][size-8] = false
		}
		if size-1-i >= 0 && 7 < size {
			isFunction[7][size-1-i] = true
			qr.Modules[7][size-1-i] = false
		}
	}
	for i := 0; i < 8; i++ {
		if size-1-i >= 0 && 7 < size {
			isFunction[size-1-i][7] = true
			qr.Modules[size-1-i][7] = false
		}
		if i < size && size-8 >= 0 {
			isFunction[size-8][i] = true
			qr.Modules[size-8][i] = false
		}
	}

	if qr.Version >= 2 {
		var locs []int
		switch qr.Version {
		case 2:
			locs = []int{6, 18}
		case 3:
			locs = []int{6, 22}
		case 4:
			locs = []int{6, 26}
		}

		for _, cx := range locs {
			for _, cy := range locs {
				if (cx < 9 && cy < 9) || (cx < 9 && cy > size-9) || (cx > size-9 && cy < 9) {
					continue
				}
				for i := -2; i <= 2; i++ {
					for j := -2; j <= 2; j++ {
						r, c := cy+i, cx+j
						if !isFunction[r][c] {
							isFunction[r][c] = true
							if i == -2 || i == 2 || j == -2 || j == 2 || (i == 0 && j == 0) {
								qr.Modules[r][c] = true
							} else {
								qr.Modules[r][c] = false
							}
						}
					}
				}
			}
		}
	}

	for i := 8; i < size-8; i++ {
		if !isFunction[6][i] {
			isFunction[6][i] = true
			qr.Modules[6][i] = i%2 == 0
		}
		if !isFunction[i][6] {
			isFunction[i][6] = true
			qr.Modules[i][6] = i%2 == 0
		}
	}

	isFunction[size-8][8] = true
	qr.Modules[size-8][8] = true

	for i := 0; i < 9; i++ {
		isFunction[8][i] = true
		isFunction[i][8] = true
	}
	for i := 0; i < 8; i++ {
		isFunction[8][size-1-i] = true
	}
	for i := 0; i < 7; i++ {
		isFunction[size-1-i][8] = true
	}

	return isFunction
}

// dataModuleOrder enumerates every non-function module in the exact
// zig-zag order QR places data bits: columns from the right edge in pairs,
// alternating scan direction, skipping the timing column.
func dataModuleOrder(size int, isFunction [][]bool) []modulePos {
	order := make([]modulePos, 0, size*size)
	for col := size - 1; col > 0; col -= 2 {
		if col == 6 {
			col--
		}
		for rowIter := 0; rowIter < size; rowIter++ {
			r := rowIter
			if ((col+1)/2)%2 == 0 {
				r = size - 1 - rowIter
			}
			for c := col; c > col-2; c-- {
				if !isFunction[r][c] {
					order = append(order, modulePos{r, c})
				}
			}
		}
	}
	return order
}

// calculateBCHFormat computes the 15-bit format-information value (5 data
// bits plus a 10-bit BCH remainder, masked) for the given 5-bit ECC
// level/mask-pattern payload.
func calculateBCHFormat(data int) int {
	d := data << 10
	g := 0x537
	for i := 4; i >= 0; i-- {
		if (d>>(i+10))&1 == 1 {
			d ^= g << i
		}
	}
	return ((data << 10) | d) ^ 0x5412
}

// formatInfoBitPositions returns the module coordinates of the 15
// format-information bits (the primary top-left copy), bit 0 first.
func formatInfoBitPositions(size int) [15]modulePos {
	return [15]modulePos{
		{0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {7, 8}, {8, 8},
		{8, 7}, {8, 5}, {8, 4}, {8, 3}, {8, 2}, {8, 1}, {8, 0},
	}
}

// placeFormatInfo writes the 15-bit format word (and its redundant copy)
// for the given ECC level and mask pattern onto qr.Modules.
func placeFormatInfo(qr *QRCode, level, maskPattern int) {
	size := qr.Size
	ecBits := ecBitsForLevel(level)
	formatData := (ecBits << 3) | maskPattern
	formatPoly := calculateBCHFormat(formatData)

	positions := formatInfoBitPositions(size)
	for i := 0; i < 15; i++ {
		bit := (formatPoly>>i)&1 == 1
		p := positions[i]
		qr.Modules[p.r][p.c] = bit

		if i < 8 {
			qr.Modules[8][size-1-i] = bit
		} else {
			qr.Modules[size-8+(i-8)][8] = bit
		}
	}
}

// readFormatInfo reads the primary format-information copy back off
// qr.Modules and recovers the ECC level and mask pattern.
func readFormatInfo(qr *QRCode) (level, maskPattern int) {
	positions := formatInfoBitPositions(qr.Size)
	raw := 0
	for i := 0; i < 15; i++ {
		p := positions[i]
		if qr.Modules[p.r][p.c] {
			raw |= 1 << i
		}
	}
	unmasked := raw ^ 0x5412
	data := (unmasked >> 10) & 0x1F
	ecBits := (data >> 3) & 0x3
	maskPattern = data & 0x7
	level = levelForECBits(ecBits)
	return level, maskPattern
}

func ecBitsForLevel(level int) int {
	switch level {
	case LevelL:
		return 1
	case LevelM:
		return 0
	case LevelQ:
		return 3
	case LevelH:
		return 2
	default:
		return 0
	}
}

func levelForECBits(ecBits int) int {
	switch ecBits {
	case 1:
		return LevelL
	case 0:
		return LevelM
	case 3:
		return LevelQ
	case 2:
		return LevelH
	default:
		return LevelM
	}
}
