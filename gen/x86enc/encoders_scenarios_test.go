package x86enc_test

import (
	"bytes"
	"testing"

	"github.com/keurnel/x86encode/architecture/x86_64"
	"github.com/keurnel/x86encode/gen/x86enc"
)

// These reproduce the literal call/byte pairs every implementation of this
// encoder must match exactly.
func TestEncodingScenarios(t *testing.T) {
	tests := []struct {
		name string
		got  x86_64.EncodedInstruction
		want []byte
	}{
		{"ret", x86enc.EncodeRet(), []byte{0xC3}},
		{"nop", x86enc.EncodeNop(), []byte{0x90}},
		{"cpuid", x86enc.EncodeCpuid(), []byte{0x0F, 0xA2}},
		{"lock", x86enc.EncodeLock(), []byte{0xF0}},
		{"add AL, 127", x86enc.EncodeAddAlImm8(x86_64.Immediate8FromInt8(127)), []byte{0x04, 0x7F}},
		{"add AX, 1234", x86enc.EncodeAddAxImm16(x86_64.Immediate16FromUint16(1234)), []byte{0x66, 0x05, 0xD2, 0x04}},
		{"add EAX, 12345678", x86enc.EncodeAddEaxImm32(x86_64.Immediate32FromUint32(12345678)), []byte{0x05, 0x4E, 0x61, 0xBC, 0x00}},
		{"add RAX, -1", x86enc.EncodeAddRaxImm32(x86_64.Immediate32FromInt32(-1)), []byte{0x48, 0x05, 0xFF, 0xFF, 0xFF, 0xFF}},
		{
			"add rm8(AH), 0",
			x86enc.EncodeAddRm8Imm8(x86_64.GPROperand(x86_64.AH), x86_64.Immediate8FromInt8(0)),
			[]byte{0x80, 0xC4, 0x00},
		},
		{
			"add rm8(SPL), 0",
			x86enc.EncodeAddRm8Imm8(x86_64.GPROperand(x86_64.SPL), x86_64.Immediate8FromInt8(0)),
			[]byte{0x40, 0x80, 0xC4, 0x00},
		},
		{
			"add rm8(R15B), -15",
			x86enc.EncodeAddRm8Imm8(x86_64.GPROperand(x86_64.R15B), x86_64.Immediate8FromInt8(-15)),
			[]byte{0x41, 0x80, 0xC7, 0xF1},
		},
		{
			"add rm8([RSP]), 3",
			x86enc.EncodeAddRm8Imm8(x86_64.MemoryOperand(x86_64.NewMemoryBased(x86_64.RSP, x86_64.OffsetNone)), x86_64.Immediate8FromInt8(3)),
			[]byte{0x80, 0x04, 0x24, 0x03},
		},
		{
			"add rm8([R12]), 3",
			x86enc.EncodeAddRm8Imm8(x86_64.MemoryOperand(x86_64.NewMemoryBased(x86_64.R12, x86_64.OffsetNone)), x86_64.Immediate8FromInt8(3)),
			[]byte{0x41, 0x80, 0x04, 0x24, 0x03},
		},
		{
			"add rm8([RBP]), 4",
			x86enc.EncodeAddRm8Imm8(x86_64.MemoryOperand(x86_64.NewMemoryBased(x86_64.RBP, x86_64.OffsetNone)), x86_64.Immediate8FromInt8(4)),
			[]byte{0x80, 0x45, 0x00, 0x04},
		},
		{
			"add rm8([R13]), 4",
			x86enc.EncodeAddRm8Imm8(x86_64.MemoryOperand(x86_64.NewMemoryBased(x86_64.R13, x86_64.OffsetNone)), x86_64.Immediate8FromInt8(4)),
			[]byte{0x41, 0x80, 0x45, 0x00, 0x04},
		},
		{
			"add rm8([RIP-2000]), 3",
			x86enc.EncodeAddRm8Imm8(x86_64.MemoryOperand(x86_64.NewMemoryRelativeToRIP(x86_64.OffsetFromInt32(-2000))), x86_64.Immediate8FromInt8(3)),
			[]byte{0x80, 0x05, 0x30, 0xF8, 0xFF, 0xFF, 0x03},
		},
		{
			"mov RAX, -1",
			x86enc.EncodeMovReg64Imm64(x86_64.RAX, x86_64.Immediate64FromInt64(-1)),
			[]byte{0x48, 0xB8, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		},
		{
			"mov R15, -15",
			x86enc.EncodeMovReg64Imm64(x86_64.R15, x86_64.Immediate64FromInt64(-15)),
			[]byte{0x49, 0xBF, 0xF1, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		},
		{
			"mov R11, R12",
			x86enc.EncodeMovReg64Rm64(x86_64.R11, x86_64.GPROperand(x86_64.R12)),
			[]byte{0x4D, 0x8B, 0xDC},
		},
		{
			"lea R14, [R15 + RAX*2 + 3]",
			x86enc.EncodeLeaReg64M(x86_64.R14, x86_64.NewMemoryBasedScaled(x86_64.R15, x86_64.RAX, x86_64.Scale2, x86_64.OffsetFromInt32(3))),
			[]byte{0x4D, 0x8D, 0xB4, 0x47, 0x03, 0x00, 0x00, 0x00},
		},
		{"jmp -1", x86enc.EncodeJmpRel8(x86_64.Immediate8FromInt8(-1)), []byte{0xEB, 0xFF}},
		{"jcc GE, 1", x86enc.EncodeJccGeImm32(x86_64.Immediate32FromInt32(1)), []byte{0x0F, 0x8D, 0x01, 0x00, 0x00, 0x00}},
		{
			"call [RDX+2]",
			x86enc.EncodeCallRm64(x86_64.MemoryOperand(x86_64.NewMemoryBased(x86_64.RDX, x86_64.OffsetFromInt8(2)))),
			[]byte{0xFF, 0x52, 0x02},
		},
		{"push 0x12345678", x86enc.EncodePushImm32(x86_64.Immediate32FromUint32(0x12345678)), []byte{0x68, 0x78, 0x56, 0x34, 0x12}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.got.AsSlice()
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("got % X, want % X", got, tc.want)
			}
		})
	}
}

func TestNopWithLength(t *testing.T) {
	tests := []struct {
		length uint8
		want   []byte
	}{
		{1, []byte{0x90}},
		{5, []byte{0x0F, 0x1F, 0x44, 0x00, 0x00}},
		{9, []byte{0x66, 0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00}},
	}
	for _, tc := range tests {
		got := x86_64.EncodeNopWithLength(tc.length).AsSlice()
		if !bytes.Equal(got, tc.want) {
			t.Errorf("length %d: got % X, want % X", tc.length, got, tc.want)
		}
	}
}

func TestNopWithLengthPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range length")
		}
	}()
	x86_64.EncodeNopWithLength(10)
}

// Determinism: repeated calls with identical inputs produce identical bytes.
func TestDeterminism(t *testing.T) {
	a := x86enc.EncodeAddRm8Imm8(x86_64.GPROperand(x86_64.R15B), x86_64.Immediate8FromInt8(-15))
	b := x86enc.EncodeAddRm8Imm8(x86_64.GPROperand(x86_64.R15B), x86_64.Immediate8FromInt8(-15))
	if !bytes.Equal(a.AsSlice(), b.AsSlice()) {
		t.Fatalf("identical inputs produced different bytes: % X vs % X", a.AsSlice(), b.AsSlice())
	}
}

// Length bound: the longest scenario above (mov RAX, imm64) fits the
// 15-byte instruction cap.
func TestLengthBound(t *testing.T) {
	insn := x86enc.EncodeMovReg64Imm64(x86_64.RAX, x86_64.Immediate64FromInt64(-1))
	if insn.Len() > x86_64.MaxInstructionSize {
		t.Fatalf("Len() = %d, want <= %d", insn.Len(), x86_64.MaxInstructionSize)
	}
}

// Prefix-order invariant: when present, 0x66 and any REX byte precede the
// opcode body.
func TestPrefixOrder(t *testing.T) {
	insn := x86enc.EncodeAddRm8Imm8(x86_64.GPROperand(x86_64.SPL), x86_64.Immediate8FromInt8(0))
	got := insn.AsSlice()
	if got[0] < 0x40 || got[0] > 0x4F {
		t.Fatalf("expected leading REX byte, got % X", got)
	}
}

func TestMnemonicRoundTrip(t *testing.T) {
	for m := x86enc.Mnemonic(1); m.String() != ""; m++ {
		parsed, err := x86enc.ParseMnemonic(m.String())
		if err != nil {
			t.Fatalf("ParseMnemonic(%q): %v", m.String(), err)
		}
		if parsed != m {
			t.Errorf("ParseMnemonic(%q) = %v, want %v", m.String(), parsed, m)
		}
	}
}

func TestMnemonicRoundTripUnknown(t *testing.T) {
	if _, err := x86enc.ParseMnemonic("frobnicate"); err != x86enc.ErrUnknownMnemonic {
		t.Fatalf("ParseMnemonic(unknown) err = %v, want ErrUnknownMnemonic", err)
	}
}
