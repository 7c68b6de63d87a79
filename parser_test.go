package gifcodec

import "testing"

func TestNewParserTruncated(t *testing.T) {
	if _, err := NewParser([]byte{'G', 'I', 'F', '8', '9'}); err == nil {
		t.Fatal("expected Truncated error for 5-byte input")
	}
}

func TestNewParserNotGIF(t *testing.T) {
	data := append([]byte("PNG89a"), make([]byte, 7)...)
	if _, err := NewParser(data); err == nil {
		t.Fatal("expected NotGIF error")
	}
}

func TestNewParserImageAreaZero(t *testing.T) {
	data := []byte{
		'G', 'I', 'F', '8', '9', 'a',
		0, 0, 0, 0, // width, height (LSD, unused)
		0x00, 0, 0, // packed (no GCT), bg, aspect
		',',
		0, 0, 0, 0, // left, top
		0, 0, // width = 0
		1, 0, // height = 1
		0x00, // packed
		2,    // lzw_min_code_size
		0,    // terminator
		';',
	}
	_, err := NewParser(data)
	if err == nil {
		t.Fatal("expected ImageAreaZero error")
	}
}

func TestNewParserNoPalette(t *testing.T) {
	data := []byte{
		'G', 'I', 'F', '8', '9', 'a',
		1, 0, 1, 0,
		0x00, 0, 0, // no GCT
		',',
		0, 0, 0, 0,
		1, 0,
		1, 0,
		0x00, // no LCT
		2,
		0,
		';',
	}
	_, err := NewParser(data)
	if err == nil {
		t.Fatal("expected NoPalette error")
	}
}

func TestNewParserFindsFirstImage(t *testing.T) {
	pal := []byte{0, 0, 0, 255, 255, 255}
	data := []byte{
		'G', 'I', 'F', '8', '9', 'a',
		2, 0, 1, 0,
		0x80, 0, 0, // GCT present, 2 colors
	}
	data = append(data, pal...)
	data = append(data, ',',
		0, 0, 0, 0,
		2, 0,
		1, 0,
		0x00,
		2,
		1, 0x00, // one-byte sub-block then terminator
		0,
		';')

	p, err := NewParser(data)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	if p.Image.Width != 2 || p.Image.Height != 1 {
		t.Errorf("got %dx%d, want 2x1", p.Image.Width, p.Image.Height)
	}
	if p.Image.Interlaced {
		t.Error("expected non-interlaced")
	}
	gotPal := p.Palette()
	if string(gotPal) != string(pal) {
		t.Errorf("palette = %v, want %v", gotPal, pal)
	}
}

func TestNewParserBadLZWMinCodeSize(t *testing.T) {
	data := []byte{
		'G', 'I', 'F', '8', '9', 'a',
		1, 0, 1, 0,
		0x80, 0, 0, // GCT present, 2 colors (minimum GCT size)
		0, 0, 0, 255, 255, 255, // 2 color entries
		',',
		0, 0, 0, 0,
		1, 0,
		1, 0,
		0x00,
		1, // invalid: must be in [2,11]
		0,
		';',
	}
	if _, err := NewParser(data); err == nil {
		t.Fatal("expected BadLzwMinCodeSize error")
	}
}

func TestNewParserNoImageBeforeTrailer(t *testing.T) {
	data := []byte{
		'G', 'I', 'F', '8', '9', 'a',
		1, 0, 1, 0,
		0x80, 0, 0,
		0, 0, 0, 0, 0, 0, // 2-color GCT
		';',
	}
	if _, err := NewParser(data); err == nil {
		t.Fatal("expected NoImage error")
	}
}

func TestNewParserBadBlockType(t *testing.T) {
	data := []byte{
		'G', 'I', 'F', '8', '9', 'a',
		1, 0, 1, 0,
		0x80, 0, 0,
		0, 0, 0, 0, 0, 0, // 2-color GCT
		'?',
	}
	if _, err := NewParser(data); err == nil {
		t.Fatal("expected BadBlockType error")
	}
}
