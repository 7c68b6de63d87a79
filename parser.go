package gifcodec

// ImageInfo describes the first image found in a GIF byte stream:
// its geometry plus the byte offsets needed to read its effective
// palette and LZW data without copying the file.
type ImageInfo struct {
	Width, Height  uint16
	Interlaced     bool
	PaletteOffset  int
	PaletteBits    uint8
	LZWMinCodeSize uint8
	LZWDataOffset  int
}

// Parser walks a GIF block stream to locate the palette and LZW data
// of the first image. It never copies the backing buffer; it only
// records offsets into it, in the same spirit as
// pspoerri-geotiff2pmtiles/internal/cog.Reader parsing TIFF IFDs
// directly out of a memory-mapped buffer.
type Parser struct {
	data    []byte
	Version string // "87a", "89a", or whatever 3 bytes followed "GIF"
	Image   ImageInfo
}

// NewParser parses data's header, Logical Screen Descriptor, and
// blocks up to and including the first Image Descriptor. Exact block
// dispatch and error conditions are grounded on
// original_source/gifdec.py's get_gif_info/get_first_image_info/
// get_image_info.
func NewParser(data []byte) (*Parser, error) {
	const op = "NewParser"
	p := &Parser{data: data}

	if len(data) < 13 {
		return nil, wrapErr(op, KindTruncated, nil)
	}
	if string(data[0:3]) != "GIF" {
		return nil, newErr(op, KindNotGIF)
	}
	p.Version = string(data[3:6])
	// An unrecognized version string is a warning, not an error: the
	// core proceeds to parse the rest of the stream regardless.

	packed := data[10]
	pos := 13

	var gctOffset int = -1
	var gctBits uint8
	if packed&0x80 != 0 {
		gctBits = (packed & 0x07) + 1
		gctOffset = pos
		size := 3 * (1 << gctBits)
		if pos+size > len(data) {
			return nil, wrapErr(op, KindTruncated, nil)
		}
		pos += size
	}

	var lctOffset int = -1
	var lctBits uint8
	foundImage := false

	for !foundImage {
		if pos >= len(data) {
			return nil, wrapErr(op, KindTruncated, nil)
		}
		blockType := data[pos]
		pos++

		switch blockType {
		case ',':
			if pos+9 > len(data) {
				return nil, wrapErr(op, KindTruncated, nil)
			}
			// left, top (ignored), width, height, packed
			width := le16(data[pos+4 : pos+6])
			height := le16(data[pos+6 : pos+8])
			imgPacked := data[pos+8]
			pos += 9

			if width == 0 || height == 0 {
				return nil, newErr(op, KindImageAreaZero)
			}

			if imgPacked&0x80 != 0 {
				lctBits = (imgPacked & 0x07) + 1
				lctOffset = pos
				size := 3 * (1 << lctBits)
				if pos+size > len(data) {
					return nil, wrapErr(op, KindTruncated, nil)
				}
				pos += size
			}

			if pos >= len(data) {
				return nil, wrapErr(op, KindTruncated, nil)
			}
			minCodeSize := data[pos]
			pos++
			if minCodeSize < 2 || minCodeSize > 11 {
				return nil, newErr(op, KindBadLZWMinCodeSize)
			}

			p.Image = ImageInfo{
				Width:          width,
				Height:         height,
				Interlaced:     imgPacked&0x40 != 0,
				LZWMinCodeSize: minCodeSize,
				LZWDataOffset:  pos,
			}
			foundImage = true

		case '!':
			if pos >= len(data) {
				return nil, wrapErr(op, KindTruncated, nil)
			}
			label := data[pos]
			pos++
			switch label {
			case 0x01, 0xF9, 0xFF:
				if pos >= len(data) {
					return nil, wrapErr(op, KindTruncated, nil)
				}
				size := int(data[pos])
				pos++
				if pos+size > len(data) {
					return nil, wrapErr(op, KindTruncated, nil)
				}
				pos += size
				var err error
				pos, err = skipSubBlocks(data, pos)
				if err != nil {
					return nil, err
				}
			case 0xFE:
				var err error
				pos, err = skipSubBlocks(data, pos)
				if err != nil {
					return nil, err
				}
			default:
				return nil, newErr(op, KindBadExtension)
			}

		case ';':
			return nil, newErr(op, KindNoImage)

		default:
			return nil, newErr(op, KindBadBlockType)
		}
	}

	// Effective palette: Local Color Table wins over Global.
	switch {
	case lctOffset >= 0:
		p.Image.PaletteOffset = lctOffset
		p.Image.PaletteBits = lctBits
	case gctOffset >= 0:
		p.Image.PaletteOffset = gctOffset
		p.Image.PaletteBits = gctBits
	default:
		return nil, newErr(op, KindNoPalette)
	}

	return p, nil
}

// Palette returns the effective palette (LCT if present, else GCT)
// for the first image.
func (p *Parser) Palette() Palette {
	n := 3 * (1 << p.Image.PaletteBits)
	return Palette(p.data[p.Image.PaletteOffset : p.Image.PaletteOffset+n])
}

// LZWData returns the concatenated sub-block payload for the first
// image's LZW-compressed data.
func (p *Parser) LZWData() ([]byte, error) {
	payload, _, err := decodeSubBlocks(p.data, p.Image.LZWDataOffset)
	return payload, err
}

func le16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}
