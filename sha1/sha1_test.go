package sha1

import (
	"bytes"
	stdsha1 "crypto/sha1"
	"fmt"
	"testing"
)

type sha1Vector struct {
	in   string
	want string
}

// Vectors from RFC 3174 plus common references.
var golden = []sha1Vector{
	{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
	{"a", "86f7e437faa5a7fce15d1ddcb9eaeaea377667b8"},
	{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
	{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "84983e441c3bd26ebaae4aa1f95129e5e54670f1"},
	{"The quick brown fox jumps over the lazy dog", "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12"},
	{"The quick brown fox jumps over the lazy cog", "de9f2c7fd25e1b3afad3e85a0bd17d9b100db4b3"},
}

func TestGolden(t *testing.T) {
	for i, g := range golden {
		sum := Sum([]byte(g.in))
		if got := fmt.Sprintf("%x", sum); got != g.want {
			t.Errorf("#%d: Sum(%q) = %s, want %s", i, g.in, got, g.want)
		}

		h := New()
		h.Write([]byte(g.in))
		if got := fmt.Sprintf("%x", h.Sum(nil)); got != g.want {
			t.Errorf("#%d: New().Sum(%q) = %s, want %s", i, g.in, got, g.want)
		}
	}
}

// TestAgainstStandardLibrary cross-checks the block function against
// crypto/sha1 over messages that exercise every padding shape, in
// particular lengths 55, 56 and 64 around the length-field boundary.
func TestAgainstStandardLibrary(t *testing.T) {
	for n := 0; n <= 200; n++ {
		in := bytes.Repeat([]byte{0xa5}, n)
		got := Sum(in)
		want := stdsha1.Sum(in)
		if got != want {
			t.Fatalf("length %d: got %x, want %x", n, got, want)
		}
	}
}

func TestLargeInput(t *testing.T) {
	in := bytes.Repeat([]byte("a"), 1000000)
	want := "34aa973cd4c4daa4f61eeb2bdbad27316534016f" // RFC 3174 test 4
	if got := fmt.Sprintf("%x", Sum(in)); got != want {
		t.Errorf("Sum(1M 'a') = %s, want %s", got, want)
	}
}

// TestSplitWrites feeds the same message through Write in varying chunk
// sizes and expects the one-shot digest every time.
func TestSplitWrites(t *testing.T) {
	in := []byte("The quick brown fox jumps over the lazy dog, twice over, " +
		"so that the message spans more than a single 64-byte block.")
	want := Sum(in)

	for _, size := range []int{1, 2, 3, 7, 16, 63, 64, 65, 100} {
		h := New()
		for off := 0; off < len(in); off += size {
			end := off + size
			if end > len(in) {
				end = len(in)
			}
			h.Write(in[off:end])
		}
		var got [Size]byte
		copy(got[:], h.Sum(nil))
		if got != want {
			t.Errorf("chunk size %d: got %x, want %x", size, got, want)
		}
	}
}

// TestSumDoesNotFinalize verifies Sum leaves the digest usable for
// further writes.
func TestSumDoesNotFinalize(t *testing.T) {
	h := New()
	h.Write([]byte("ab"))
	mid := fmt.Sprintf("%x", h.Sum(nil))
	if want := fmt.Sprintf("%x", Sum([]byte("ab"))); mid != want {
		t.Fatalf("intermediate sum = %s, want %s", mid, want)
	}
	h.Write([]byte("c"))
	if got, want := fmt.Sprintf("%x", h.Sum(nil)), golden[2].want; got != want {
		t.Errorf("sum after continued write = %s, want %s", got, want)
	}
}

// TestPaddingInvariants checks the padded stream length directly: a
// multiple of 64 bytes, at least 9 bytes longer than the message, and
// exactly one extra block for the empty message.
func TestPaddingInvariants(t *testing.T) {
	for _, n := range []int{0, 1, 54, 55, 56, 57, 63, 64, 65, 119, 127, 128} {
		var d digest
		d.Reset()
		d.Write(bytes.Repeat([]byte{0x42}, n))
		d.checkSum()
		if d.len%64 != 0 {
			t.Errorf("message length %d: padded length %d not a multiple of 64", n, d.len)
		}
		if d.len < uint64(n)+9 {
			t.Errorf("message length %d: padded length %d < %d", n, d.len, n+9)
		}
	}

	var d digest
	d.Reset()
	d.checkSum()
	if d.len != 64 {
		t.Errorf("empty message: padded to %d bytes, want one 64-byte block", d.len)
	}
}

func TestDeterminism(t *testing.T) {
	in := []byte("determinism probe")
	if Sum(in) != Sum(in) {
		t.Error("identical input produced different digests")
	}
}

// TestSensitivity flips one byte at every position of a sample message
// and expects the digest to change each time.
func TestSensitivity(t *testing.T) {
	in := bytes.Repeat([]byte{0x17}, 80)
	base := Sum(in)
	for i := range in {
		mut := append([]byte(nil), in...)
		mut[i] ^= 0x01
		if Sum(mut) == base {
			t.Errorf("flipping byte %d left the digest unchanged", i)
		}
	}
}

func TestReset(t *testing.T) {
	h := New()
	h.Write([]byte("garbage that must not leak into the next message"))
	h.Reset()
	h.Write([]byte("abc"))
	if got := fmt.Sprintf("%x", h.Sum(nil)); got != golden[2].want {
		t.Errorf("digest after Reset = %s, want %s", got, golden[2].want)
	}
}

func BenchmarkSum(b *testing.B) {
	for _, size := range []int{64, 1024, 8192, 1048576} {
		in := bytes.Repeat([]byte("m"), size)
		b.Run(fmt.Sprintf("%dB", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				Sum(in)
			}
		})
	}
}
