// Package gifcodec implements a GIF87a/89a codec for single-image
// files: parsing, LZW decoding/encoding, interlace handling, and exact
// RGB/palette-index conversion. Multi-frame animation, dithering, and
// palette reduction are out of scope; see DESIGN.md.
package gifcodec

// Decode reads a single-image GIF87a/89a file and returns its
// dimensions and pixel data as flat RGB bytes (3 bytes per pixel,
// row-major, top-to-bottom). It wires together the container parser,
// LZW decoder, interlace transform, and palette expansion, in the
// same top-to-bottom shape as deepteams-webp's Decode: parse headers,
// decode the compressed payload, then convert to the caller-facing
// pixel format.
func Decode(gifBytes []byte) (width, height int, rgb []byte, err error) {
	p, err := NewParser(gifBytes)
	if err != nil {
		return 0, 0, nil, err
	}

	lzwData, err := p.LZWData()
	if err != nil {
		return 0, 0, nil, err
	}

	indexed, err := lzwDecode(lzwData, p.Image.LZWMinCodeSize)
	if err != nil {
		return 0, 0, nil, err
	}

	w := int(p.Image.Width)
	h := int(p.Image.Height)
	want := w * h
	if len(indexed) > want {
		indexed = indexed[:want]
	} else if len(indexed) < want {
		return 0, 0, nil, newErr("Decode", KindTruncated)
	}

	if p.Image.Interlaced {
		indexed = Deinterlace(indexed, w)
	}

	// Below 8 bits the palette can't cover every possible index value,
	// so an out-of-range index can only come from a malformed or
	// adversarial LZW stream; at 8 bits every byte value is in range by
	// construction and the check is redundant (spec.md §9).
	if p.Image.PaletteBits < 8 {
		limit := 1 << p.Image.PaletteBits
		for _, idx := range indexed {
			if int(idx) >= limit {
				return 0, 0, nil, newErr("Decode", KindBadIndex)
			}
		}
	}

	rgb = Expand(p.Palette(), indexed)
	return w, h, rgb, nil
}

// Encode builds a single-image, non-interlaced GIF87a file from flat
// RGB pixel data (3 bytes per pixel, row-major, top-to-bottom, width
// pixels per row). The palette is built from the raster's own distinct
// colors (exact lookup, no quantization); opts.NoDictReset controls
// the LZW encoder's dictionary-saturation behavior. Grounded on the
// teacher's util.go convenience wrappers around GIFEncoder, flattened
// here into one function since this codec handles only one frame.
func Encode(width int, rgb []byte, opts EncodeOptions) ([]byte, error) {
	const op = "Encode"
	if width <= 0 {
		return nil, newErr(op, KindImageAreaZero)
	}
	if len(rgb)%3 != 0 {
		return nil, wrapErr(op, KindBadRGBSize, nil)
	}
	pixels := len(rgb) / 3
	if pixels == 0 || pixels%width != 0 {
		return nil, wrapErr(op, KindBadRGBSize, nil)
	}
	height := pixels / width

	// width and height are both serialized as u16 (LSD, Image
	// Descriptor); an inferred dimension beyond that range would
	// silently wrap on the uint16 conversion below and desync the
	// declared raster size from the actual pixel count.
	if width > 0xFFFF || height > 0xFFFF {
		return nil, wrapErr(op, KindBadRGBSize, nil)
	}

	pal, err := BuildPalette(rgb)
	if err != nil {
		return nil, err
	}
	indexed, err := Index(pal, rgb)
	if err != nil {
		return nil, err
	}

	var buf byteBuffer
	if err := WriteGIF(&buf, uint16(width), uint16(height), pal, indexed, opts); err != nil {
		return nil, err
	}
	return buf.b, nil
}

// byteBuffer is a minimal growable io.Writer, avoiding a bytes.Buffer
// import for what is otherwise a single append loop.
type byteBuffer struct{ b []byte }

func (w *byteBuffer) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	return len(p), nil
}
