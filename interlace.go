package gifcodec

// Deinterlace reorders an indexed raster (width*height bytes, width
// bytes per row) from GIF interlaced storage order into top-to-bottom
// row order. Grounded on original_source/gifdec.py's deinterlace
// generator.
func Deinterlace(indexed []byte, width int) []byte {
	if width == 0 {
		return append([]byte(nil), indexed...)
	}
	height := len(indexed) / width
	out := make([]byte, len(indexed))

	group2Start := (height + 7) / 8
	group3Start := (height + 3) / 4
	group4Start := (height + 1) / 2

	for dy := 0; dy < height; dy++ {
		var sy int
		switch {
		case dy%8 == 0:
			sy = dy / 8
		case dy%8 == 4:
			sy = group2Start + dy/8
		case dy%4 == 2:
			sy = group3Start + dy/4
		default:
			sy = group4Start + dy/2
		}
		copy(out[dy*width:(dy+1)*width], indexed[sy*width:(sy+1)*width])
	}
	return out
}

// Interlace is the forward permutation: it reorders a top-to-bottom
// indexed raster into GIF interlaced storage order (pass 1 rows
// 0,8,16,...; pass 2 rows 4,12,20,...; pass 3 rows 2,6,10,...; pass 4
// rows 1,3,5,...). It is the documented inverse of Deinterlace, so
// that Deinterlace(Interlace(r)) == r and Interlace(Deinterlace(r)) == r.
func Interlace(rowOrder []byte, width int) []byte {
	if width == 0 {
		return append([]byte(nil), rowOrder...)
	}
	height := len(rowOrder) / width
	out := make([]byte, len(rowOrder))

	group2Start := (height + 7) / 8
	group3Start := (height + 3) / 4
	group4Start := (height + 1) / 2

	for dy := 0; dy < height; dy++ {
		var sy int
		switch {
		case dy%8 == 0:
			sy = dy / 8
		case dy%8 == 4:
			sy = group2Start + dy/8
		case dy%4 == 2:
			sy = group3Start + dy/4
		default:
			sy = group4Start + dy/2
		}
		// Deinterlace copies storageRow[sy] -> displayRow[dy]; the
		// forward transform copies the other way.
		copy(out[sy*width:(sy+1)*width], rowOrder[dy*width:(dy+1)*width])
	}
	return out
}
