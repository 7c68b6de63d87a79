package gifcodec

import "testing"

func TestBitReaderReadCode(t *testing.T) {
	// 0x05 is 00000101: the lowest 3 bits (LSB-first) are 1,0,1 -> 5;
	// the next 3 bits are 0,0,0 -> 0.
	data := []byte{0x05}
	r := newBitReader(data)

	code, err := r.readCode(3)
	if err != nil || code != 5 {
		t.Fatalf("first readCode(3) = %d, %v; want 5, nil", code, err)
	}
	code, err = r.readCode(3)
	if err != nil || code != 0 {
		t.Fatalf("second readCode(3) = %d, %v; want 0, nil", code, err)
	}
}

func TestBitReaderSpansByteBoundary(t *testing.T) {
	// A 12-bit code straddling a byte boundary, round-tripped through
	// bitWriter so the expected packing doesn't need to be hand-coded.
	sink := &fakeSink{}
	w := newBitWriter(sink)
	if err := w.writeCode(0xABC, 12); err != nil {
		t.Fatalf("writeCode: %v", err)
	}
	if err := w.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	r := newBitReader(sink.out)
	got, err := r.readCode(12)
	if err != nil {
		t.Fatalf("readCode: %v", err)
	}
	if got != 0xABC {
		t.Errorf("got %#x, want %#x", got, 0xABC)
	}
}

func TestBitReaderTruncated(t *testing.T) {
	r := newBitReader([]byte{0x01})
	if _, err := r.readCode(12); err == nil {
		t.Fatal("expected truncation error reading 12 bits from 1 byte")
	}
}

type fakeSink struct{ out []byte }

func (s *fakeSink) WriteByte(b byte) error {
	s.out = append(s.out, b)
	return nil
}

func TestBitWriterRoundTripsWithReader(t *testing.T) {
	codes := []struct{ code, n int }{
		{0, 3}, {1, 3}, {2, 3}, {2, 3}, {1, 3}, {3, 4}, {0, 4},
	}

	sink := &fakeSink{}
	w := newBitWriter(sink)
	for _, c := range codes {
		if err := w.writeCode(c.code, c.n); err != nil {
			t.Fatalf("writeCode: %v", err)
		}
	}
	if err := w.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	r := newBitReader(sink.out)
	for i, c := range codes {
		got, err := r.readCode(c.n)
		if err != nil {
			t.Fatalf("readCode %d: %v", i, err)
		}
		if got != c.code {
			t.Errorf("code %d: got %d, want %d", i, got, c.code)
		}
	}
}

func TestBitWriterFlushEmpty(t *testing.T) {
	sink := &fakeSink{}
	w := newBitWriter(sink)
	if err := w.flush(); err != nil {
		t.Fatalf("flush on empty writer: %v", err)
	}
	if len(sink.out) != 0 {
		t.Errorf("expected no output, got %v", sink.out)
	}
}
