package fixedbuf_test

import (
	"testing"

	"github.com/keurnel/x86encode/internal/fixedbuf"
)

func TestBuf15PushAndSlice(t *testing.T) {
	var b fixedbuf.Buf15
	b.PushByte(0x4D)
	b.PushSlice([]byte{0x8D, 0xB4, 0x47})
	b.PushSlice([]byte{0x03, 0x00, 0x00, 0x00})

	got := b.AsSlice()
	want := []byte{0x4D, 0x8D, 0xB4, 0x47, 0x03, 0x00, 0x00, 0x00}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
	if b.Cap() != 15 {
		t.Errorf("Cap() = %d, want 15", b.Cap())
	}
}

func TestBuf15OverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overflow")
		}
	}()
	var b fixedbuf.Buf15
	b.PushSlice(make([]byte, 16))
}

func TestBuf7PushAndSlice(t *testing.T) {
	var b fixedbuf.Buf7
	b.PushByte(0x8D)
	b.PushSlice([]byte{0x04, 0x85, 0x03, 0x00, 0x00, 0x00})

	if b.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", b.Len())
	}
	if b.AsSlice()[0] != 0x8D {
		t.Errorf("first byte = %#x, want 0x8D", b.AsSlice()[0])
	}
}

func TestBuf7OverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overflow")
		}
	}()
	var b fixedbuf.Buf7
	b.PushSlice(make([]byte, 8))
}
