package gifcodec

// lzwEntry is one dictionary slot: a root (prefix == -1, suffix == the
// root's own byte value) or a chain node pointing at its prefix code.
// Flat-array representation adapted from
// pspoerri-geotiff2pmtiles/internal/cog/lzw.go's lzwEntry (that file's
// TIFF variant also tracks a precomputed length; GIF entries are
// reconstructed by walking the chain instead, since GIF's dictionary
// churns every CLEAR and precomputing lengths buys little).
type lzwEntry struct {
	prefix int32
	suffix byte
}

const lzwMaxDictSize = 1 << 12 // 4096

// lzwDecode decodes LZW-compressed data with the canonical GIF quirks
// (CLEAR/END codes, deferred code-length growth, the KwKwK special
// case). minCodeSize is the lzw_min_code_size byte (palette bit depth,
// not the initial code width). Grounded on
// original_source/gifdec.py's lzw_decode, restated as a single loop
// per the specification's design notes.
func lzwDecode(data []byte, minCodeSize uint8) ([]byte, error) {
	const op = "lzwDecode"
	if minCodeSize < 2 || minCodeSize > 11 {
		return nil, newErr(op, KindBadLZWMinCodeSize)
	}

	p := int(minCodeSize)
	clearCode := 1 << p
	endCode := clearCode + 1

	var dict [lzwMaxDictSize]lzwEntry
	resetDict := func() int {
		for i := 0; i < clearCode; i++ {
			dict[i] = lzwEntry{prefix: -1, suffix: byte(i)}
		}
		return clearCode + 2
	}

	dictLen := resetDict()
	codeLen := p + 1
	prevCode := -1

	r := newBitReader(data)
	var out []byte
	var entry []byte // scratch, reused per code

	for {
		code, err := r.readCode(codeLen)
		if err != nil {
			return nil, err
		}

		switch {
		case code == clearCode:
			dictLen = resetDict()
			codeLen = p + 1
			prevCode = -1
			continue
		case code == endCode:
			return out, nil
		case code > dictLen:
			return nil, newErr(op, KindBadCode)
		}

		if prevCode == -1 && code == dictLen {
			// first code after CLEAR must already be a root
			return nil, newErr(op, KindBadCode)
		}

		if prevCode != -1 {
			var suffixSource int
			switch {
			case code < dictLen:
				suffixSource = code
			case code == dictLen:
				suffixSource = prevCode // KwKwK case
			default:
				return nil, newErr(op, KindBadCode)
			}
			b, err := firstByte(&dict, suffixSource)
			if err != nil {
				return nil, err
			}
			// A frozen dictionary (no_dict_reset) can saturate without
			// a CLEAR ever following; once full there is simply no
			// slot left to add to, and no code referencing the next
			// (unassigned) slot can legitimately arrive.
			if dictLen < lzwMaxDictSize {
				dict[dictLen] = lzwEntry{prefix: int32(prevCode), suffix: b}
				dictLen++
			}
		}

		entry, err = reconstruct(&dict, code, entry[:0])
		if err != nil {
			return nil, err
		}
		out = append(out, entry...)
		prevCode = code

		if dictLen == 1<<uint(codeLen) && codeLen < 12 {
			codeLen++
		}
	}
}

// reconstruct walks code's prefix chain back to its root, appending
// bytes into buf in reverse order, then reverses buf in place so the
// result reads root-to-leaf.
func reconstruct(dict *[lzwMaxDictSize]lzwEntry, code int, buf []byte) ([]byte, error) {
	for code != -1 {
		if code < 0 || code >= lzwMaxDictSize {
			return nil, newErr("lzwDecode", KindBadCode)
		}
		e := dict[code]
		buf = append(buf, e.suffix)
		code = int(e.prefix)
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf, nil
}

// firstByte walks code's prefix chain to its root and returns the
// root's byte value (the first byte of the entry code designates).
func firstByte(dict *[lzwMaxDictSize]lzwEntry, code int) (byte, error) {
	for {
		if code < 0 || code >= lzwMaxDictSize {
			return 0, newErr("lzwDecode", KindBadCode)
		}
		e := dict[code]
		if e.prefix == -1 {
			return e.suffix, nil
		}
		code = int(e.prefix)
	}
}
