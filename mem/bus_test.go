package mem

import "testing"

func TestFlatBusReadWrite(t *testing.T) {
	b := NewFlatBus()
	if got := b.Read(0x1234); got != 0 {
		t.Fatalf("fresh bus at 0x1234: got %#x, want 0", got)
	}
	b.Write(0x1234, 0x42)
	if got := b.Read(0x1234); got != 0x42 {
		t.Fatalf("after write: got %#x, want 0x42", got)
	}
}

func TestFlatBusTopOfAddressSpace(t *testing.T) {
	b := NewFlatBus()
	if got := b.Read(0xFFFF); got != 0 {
		t.Fatalf("top of address space: got %#x, want 0", got)
	}
	b.Write(0xFFFF, 0x99)
	if got := b.Read(0xFFFF); got != 0x99 {
		t.Fatalf("top of address space after write: got %#x, want 0x99", got)
	}
}

func TestLoadAt(t *testing.T) {
	b := NewFlatBus()
	LoadAt(b, 0x8000, []byte{0xA9, 0x00, 0xEA})
	want := map[uint16]uint8{0x8000: 0xA9, 0x8001: 0x00, 0x8002: 0xEA}
	for addr, v := range want {
		if got := b.Read(addr); got != v {
			t.Errorf("addr %#x: got %#x, want %#x", addr, got, v)
		}
	}
}

func TestSetResetVector(t *testing.T) {
	b := NewFlatBus()
	SetResetVector(b, 0x8000)
	if got := b.Read(0xFFFC); got != 0x00 {
		t.Errorf("low byte: got %#x, want 0x00", got)
	}
	if got := b.Read(0xFFFD); got != 0x80 {
		t.Errorf("high byte: got %#x, want 0x80", got)
	}
}
