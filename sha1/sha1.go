// Package sha1 implements the SHA-1 hash algorithm as defined in RFC 3174.
//
// SHA-1 is cryptographically broken and must not be used where collision
// resistance matters. This package exists to interoperate with systems
// that still identify data by SHA-1 digests.
package sha1

import (
	"encoding/binary"
	"hash"
)

// Size is the size of a SHA-1 checksum in bytes.
const Size = 20

// BlockSize is the block size of SHA-1 in bytes.
const BlockSize = 64

const (
	chunk = 64
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

// digest represents the partial evaluation of a checksum. The chaining
// state h is owned by exactly one in-progress computation, so independent
// digests may run on separate goroutines without coordination.
type digest struct {
	h   [5]uint32
	x   [chunk]byte
	nx  int
	len uint64
}

func (d *digest) Reset() {
	d.h[0] = init0
	d.h[1] = init1
	d.h[2] = init2
	d.h[3] = init3
	d.h[4] = init4
	d.nx = 0
	d.len = 0
}

// New returns a new hash.Hash computing the SHA-1 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

// Write absorbs message bytes in arbitrary chunks. Only complete 64-byte
// blocks are compressed; the remainder stays buffered in d.x until more
// data arrives or the digest is finalized.
func (d *digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	d.len += uint64(nn)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == chunk {
			block(d, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= chunk {
		n := len(p) &^ (chunk - 1)
		block(d, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

// Sum appends the current checksum to in. The digest state is copied
// first, so the caller may keep writing afterwards.
func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

// checkSum pads the absorbed message and serializes the chaining state.
// Padding appends 0x80, then zero bytes until the length is 56 mod 64,
// then the original bit length as a big-endian 64-bit integer. Messages
// of 2^64 bits or more wrap the length counter; that limit is inherited
// from the algorithm, not checked here.
func (d *digest) checkSum() [Size]byte {
	n := d.len

	var pad [chunk + 8]byte
	pad[0] = 0x80
	if n%chunk < 56 {
		d.Write(pad[0 : 56-n%chunk])
	} else {
		d.Write(pad[0 : chunk+56-n%chunk])
	}

	// Length in bits.
	binary.BigEndian.PutUint64(pad[:8], n<<3)
	d.Write(pad[0:8])

	if d.nx != 0 {
		panic("sha1: internal error, partial block after padding")
	}

	var sum [Size]byte
	binary.BigEndian.PutUint32(sum[0:], d.h[0])
	binary.BigEndian.PutUint32(sum[4:], d.h[1])
	binary.BigEndian.PutUint32(sum[8:], d.h[2])
	binary.BigEndian.PutUint32(sum[12:], d.h[3])
	binary.BigEndian.PutUint32(sum[16:], d.h[4])
	return sum
}

// Sum returns the SHA-1 checksum of data.
func Sum(data []byte) [Size]byte {
	var d digest
	d.Reset()
	d.Write(data)
	return d.checkSum()
}
