package gifcodec

import (
	"fmt"
	"strings"
)

// Describe walks the entire block stream of a GIF (not just the first
// image) and returns a human-readable structure dump: version, color
// tables, and each Image Descriptor / Extension / the Trailer in
// order. It never decodes pixel data.
//
// This restores a tool the distilled specification dropped:
// original_source/gifstruct.py prints the same information for
// debugging malformed or unfamiliar GIF files; Describe is its Go
// equivalent, wired into `gifconv -mode=info`.
func Describe(data []byte) (string, error) {
	const op = "Describe"
	if len(data) < 13 {
		return "", wrapErr(op, KindTruncated, nil)
	}
	if string(data[0:3]) != "GIF" {
		return "", newErr(op, KindNotGIF)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Version: %s\n", data[3:6])

	packed := data[10]
	pos := 13
	if packed&0x80 != 0 {
		gctBits := (packed & 0x07) + 1
		fmt.Fprintf(&b, "Global Color Table: %d colors\n", 1<<gctBits)
		size := 3 * (1 << gctBits)
		if pos+size > len(data) {
			return "", wrapErr(op, KindTruncated, nil)
		}
		pos += size
	} else {
		b.WriteString("Global Color Table: none\n")
	}

	for {
		if pos >= len(data) {
			return "", wrapErr(op, KindTruncated, nil)
		}
		fmt.Fprintf(&b, "At 0x%x: ", pos)
		blockType := data[pos]
		pos++

		switch blockType {
		case ',':
			if pos+9 > len(data) {
				return "", wrapErr(op, KindTruncated, nil)
			}
			width := le16(data[pos+4 : pos+6])
			height := le16(data[pos+6 : pos+8])
			imgPacked := data[pos+8]
			pos += 9
			if width == 0 || height == 0 {
				return "", newErr(op, KindImageAreaZero)
			}

			fmt.Fprintf(&b, "Image Descriptor: %dx%d, interlace=%v, ",
				width, height, imgPacked&0x40 != 0)
			if imgPacked&0x80 != 0 {
				lctBits := (imgPacked & 0x07) + 1
				fmt.Fprintf(&b, "Local Color Table: %d colors, ", 1<<lctBits)
				size := 3 * (1 << lctBits)
				if pos+size > len(data) {
					return "", wrapErr(op, KindTruncated, nil)
				}
				pos += size
			} else {
				b.WriteString("Local Color Table: none, ")
			}

			if pos >= len(data) {
				return "", wrapErr(op, KindTruncated, nil)
			}
			minCodeSize := data[pos]
			pos++
			if minCodeSize < 2 || minCodeSize > 11 {
				return "", newErr(op, KindBadLZWMinCodeSize)
			}
			fmt.Fprintf(&b, "LZW min code size: %d\n", minCodeSize)

			payload, newPos, err := decodeSubBlocks(data, pos)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "    LZW data bytes: %d\n", len(payload))
			pos = newPos

		case '!':
			if pos >= len(data) {
				return "", wrapErr(op, KindTruncated, nil)
			}
			label := data[pos]
			pos++
			fmt.Fprintf(&b, "Extension: label 0x%02x\n", label)
			switch label {
			case 0x01, 0xF9, 0xFF:
				if pos >= len(data) {
					return "", wrapErr(op, KindTruncated, nil)
				}
				size := int(data[pos])
				pos++
				if pos+size > len(data) {
					return "", wrapErr(op, KindTruncated, nil)
				}
				pos += size
				var err error
				pos, err = skipSubBlocks(data, pos)
				if err != nil {
					return "", err
				}
			case 0xFE:
				var err error
				pos, err = skipSubBlocks(data, pos)
				if err != nil {
					return "", err
				}
			default:
				return "", newErr(op, KindBadExtension)
			}

		case ';':
			b.WriteString("Trailer\n")
			return b.String(), nil

		default:
			return "", newErr(op, KindBadBlockType)
		}
	}
}
