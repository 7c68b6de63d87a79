package gifcodec

import (
	"strings"
	"testing"
)

func TestDescribeBasicStructure(t *testing.T) {
	pal := Palette{0, 0, 0, 255, 255, 255}
	indexed := []byte{0, 1, 0, 1}

	gifBytes, err := func() ([]byte, error) {
		var buf byteBuffer
		if err := WriteGIF(&buf, 4, 1, pal, indexed, EncodeOptions{}); err != nil {
			return nil, err
		}
		return buf.b, nil
	}()
	if err != nil {
		t.Fatalf("WriteGIF: %v", err)
	}

	desc, err := Describe(gifBytes)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	for _, want := range []string{"Version: 87a", "Global Color Table: 2 colors", "Image Descriptor: 4x1", "Trailer"} {
		if !strings.Contains(desc, want) {
			t.Errorf("Describe output missing %q:\n%s", want, desc)
		}
	}
}

func TestDescribeTruncated(t *testing.T) {
	if _, err := Describe([]byte("GIF8")); err == nil {
		t.Fatal("expected Truncated error")
	}
}

func TestDescribeNotGIF(t *testing.T) {
	data := append([]byte("PNG89a"), make([]byte, 7)...)
	if _, err := Describe(data); err == nil {
		t.Fatal("expected NotGIF error")
	}
}
