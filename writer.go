package gifcodec

import "io"

// EncodeOptions configures GIF encoding. Fields correspond to the
// options named in spec.md §6.
type EncodeOptions struct {
	// NoDictReset suppresses the LZW CLEAR code normally emitted when
	// the encoder dictionary saturates; encoding instead continues
	// against the frozen dictionary. May compress highly repetitive
	// images better, at the cost of divergence from most reference
	// encoders.
	NoDictReset bool

	// Verbose enables statistics reporting. When set and Stats is
	// non-nil, WriteGIF fills it in after encoding; purely
	// observational, never consulted by the encoder itself.
	Verbose bool

	// Stats, if non-nil and Verbose is set, receives code/bit/pixel
	// counts for the encode pass just performed.
	Stats *Stats
}

// Stats reports purely observational statistics about one encode
// pass, populated only when Verbose is requested.
type Stats struct {
	Codes  int
	Bits   int
	Pixels int
}

// WriteGIF emits a minimal valid GIF87a file containing one image and
// a Global Color Table: no Local Color Table, no extensions. Grounded
// on the teacher's GIFEncoder.writeHeader/writeLSD/writePalette/
// writeImageDesc for field layout and on
// original_source/gifenc.py's generate_gif for exact values.
func WriteGIF(w io.Writer, width, height uint16, pal Palette, indexed []byte, opts EncodeOptions) error {
	const op = "WriteGIF"
	if width == 0 || height == 0 {
		return newErr(op, KindImageAreaZero)
	}

	gctBits := paletteBits(pal.Len())
	lzwMinCodeSize := gctBits
	if lzwMinCodeSize < 2 {
		lzwMinCodeSize = 2
	}

	if _, err := w.Write([]byte("GIF87a")); err != nil {
		return wrapErr(op, KindTruncated, err)
	}

	header := make([]byte, 0, 7)
	header = appendLE16(header, width)
	header = appendLE16(header, height)
	header = append(header, 0x80|(gctBits-1), 0, 0) // packed, background, aspect
	if _, err := w.Write(header); err != nil {
		return wrapErr(op, KindTruncated, err)
	}

	if err := writePaddedPalette(w, pal, gctBits); err != nil {
		return wrapErr(op, KindTruncated, err)
	}

	imgDesc := make([]byte, 0, 9)
	imgDesc = appendLE16(imgDesc, 0) // left
	imgDesc = appendLE16(imgDesc, 0) // top
	imgDesc = appendLE16(imgDesc, width)
	imgDesc = appendLE16(imgDesc, height)
	imgDesc = append(imgDesc, 0) // packed fields: no LCT, no interlace
	if _, err := w.Write([]byte{','}); err != nil {
		return wrapErr(op, KindTruncated, err)
	}
	if _, err := w.Write(imgDesc); err != nil {
		return wrapErr(op, KindTruncated, err)
	}

	if _, err := w.Write([]byte{lzwMinCodeSize}); err != nil {
		return wrapErr(op, KindTruncated, err)
	}

	sbw := newSubBlockWriter(w)
	bw := newBitWriter(sbw)
	if err := lzwEncode(bw, indexed, lzwMinCodeSize, opts.NoDictReset); err != nil {
		return err
	}
	if err := bw.flush(); err != nil {
		return wrapErr(op, KindTruncated, err)
	}
	if err := sbw.close(); err != nil {
		return wrapErr(op, KindTruncated, err)
	}

	if opts.Verbose && opts.Stats != nil {
		*opts.Stats = Stats{Codes: bw.codes, Bits: bw.bitsTotal, Pixels: len(indexed)}
	}

	if _, err := w.Write([]byte{';'}); err != nil {
		return wrapErr(op, KindTruncated, err)
	}
	return nil
}

func appendLE16(b []byte, v uint16) []byte {
	return append(b, byte(v), byte(v>>8))
}

// writePaddedPalette writes pal followed by zero bytes out to
// 3*2^bits total length.
func writePaddedPalette(w io.Writer, pal Palette, bits uint8) error {
	if _, err := w.Write(pal); err != nil {
		return err
	}
	want := 3 * (1 << bits)
	pad := want - len(pal)
	if pad <= 0 {
		return nil
	}
	zeros := make([]byte, pad)
	_, err := w.Write(zeros)
	return err
}
