package qrcode

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Decode reads a PNG-rendered QR code and recovers the original string,
// inverting WritePNG/NewQRCode: it locates the module grid inside the
// image, reads the format-information bits to recover the ECC level,
// samples the data modules in the same zig-zag order the encoder used and
// removes mask pattern 0 from them (the mask pattern stored in the format
// bits is not consulted), runs the recovered codewords through the Reed-Solomon
// decoder core, and finally unpacks the byte-mode bit stream.
func Decode(r io.Reader) (string, error) {
	img, err := png.Decode(r)
	if err != nil {
		return "", fmt.Errorf("qrcode: decoding PNG: %w", err)
	}

	qr, _, err := sampleModules(img)
	if err != nil {
		return "", err
	}

	level, _ := readFormatInfo(qr)
	qr.Level = level

	vInfo, ok := versionTable[qr.Version][level]
	if !ok {
		return "", errors.New("qrcode: unknown version/level combination")
	}

	isFunction := recomputeFunctionMask(qr)
	order := dataModuleOrder(qr.Size, isFunction)

	totalBits := vInfo.TotalCodewords * 8
	bits := make([]bool, 0, totalBits)
	for _, p := range order {
		bit := qr.Modules[p.r][p.c]
		if (p.r+p.c)%2 == 0 {
			bit = !bit
		}
		bits = append(bits, bit)
		if len(bits) == totalBits {
			break
		}
	}
	if len(bits) < totalBits {
		return "", fmt.Errorf("qrcode: insufficient modules decoded: have %d bits, need %d", len(bits), totalBits)
	}

	codewords := make([]byte, vInfo.TotalCodewords)
	for i := 0; i < vInfo.TotalCodewords; i++ {
		val := 0
		for j := 0; j < 8; j++ {
			if bits[i*8+j] {
				val |= 1 << (7 - j)
			}
		}
		codewords[i] = byte(val)
	}

	received := NewPolyFromBytes(codewords)
	corrected, err := BMDecode(received, vInfo.ECCodewords)
	if err != nil {
		return "", fmt.Errorf("qrcode: reed-solomon correction: %w", err)
	}
	correctedBytes := corrected.Bytes(vInfo.TotalCodewords)

	dataBytes := correctedBytes[:vInfo.TotalCodewords-vInfo.ECCodewords]

	return decodeByteModeStream(dataBytes)
}

// recomputeFunctionMask reconstructs the isFunction mask for an
// already-populated QRCode (as recovered by sampleModules) without
// touching its module values, mirroring buildFunctionPatterns's geometry
// but against a scratch grid so the sampled data modules survive.
func recomputeFunctionMask(qr *QRCode) [][]bool {
	scratch := &QRCode{Version: qr.Version, Level: qr.Level, Size: qr.Size}
	scratch.Modules = make([][]bool, qr.Size)
	for i := range scratch.Modules {
		scratch.Modules[i] = make([]bool, qr.Size)
	}
	return buildFunctionPatterns(scratch)
}

// sampleModules locates the module grid within a rendered PNG (accounting
// for the border quiet zone and integer scale WritePNG applies) and
// returns a QRCode whose Modules reflect the sampled dark/light state of
// every module, along with the detected scale factor.
func sampleModules(img image.Image) (*QRCode, int, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width != height || width <= 0 {
		return nil, 0, errors.New("qrcode: image is not square")
	}

	const border = 4
	for scale := 1; scale <= 64; scale++ {
		for size := 21; size <= 33; size += 4 {
			if width != (size+2*border)*scale {
				continue
			}
			version, ok := versionForSize(size)
			if !ok {
				continue
			}

			qr := &QRCode{Version: version, Size: size}
			qr.Modules = make([][]bool, size)
			for i := range qr.Modules {
				qr.Modules[i] = make([]bool, size)
			}

			for row := 0; row < size; row++ {
				for col := 0; col < size; col++ {
					px := bounds.Min.X + (col+border)*scale + scale/2
					py := bounds.Min.Y + (row+border)*scale + scale/2
					qr.Modules[row][col] = isDarkPixel(img.At(px, py))
				}
			}
			return qr, scale, nil
		}
	}
	return nil, 0, fmt.Errorf("qrcode: unrecognized image dimensions %dx%d", width, height)
}

func isDarkPixel(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	// WritePNG renders modules as pure black/white; luminance threshold
	// handles any interpolation a viewer/rescaler may have introduced.
	lum := (299*int(r>>8) + 587*int(g>>8) + 114*int(b>>8)) / 1000
	return lum < 128
}

// decodeByteModeStream inverts NewQRCode's byte-mode bit-stream encoding:
// a 4-bit mode indicator, an 8-bit count, then that many literal data
// bytes, ignoring the terminator/padding that follows.
func decodeByteModeStream(data []byte) (string, error) {
	buf := newBitReader(data)

	mode, err := buf.read(4)
	if err != nil {
		return "", err
	}
	if mode != ModeByte {
		return "", fmt.Errorf("qrcode: unsupported mode indicator %d", mode)
	}

	count, err := buf.read(8)
	if err != nil {
		return "", err
	}

	out := make([]byte, count)
	for i := 0; i < count; i++ {
		b, err := buf.read(8)
		if err != nil {
			return "", fmt.Errorf("qrcode: truncated data stream at byte %d: %w", i, err)
		}
		out[i] = byte(b)
	}
	return string(out), nil
}

type bitReader struct {
	data []byte
	pos  int
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{data: data}
}

func (b *bitReader) read(n int) (int, error) {
	val := 0
	for i := 0; i < n; i++ {
		byteIdx := b.pos / 8
		if byteIdx >= len(b.data) {
			return 0, errors.New("qrcode: bit stream exhausted")
		}
		bitIdx := 7 - (b.pos % 8)
		bit := (b.data[byteIdx] >> bitIdx) & 1
		val = (val << 1) | int(bit)
		b.pos++
	}
	return val, nil
}
