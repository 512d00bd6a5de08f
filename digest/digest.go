// Package digest defines the 20-byte SHA-1 digest value type and its
// hexadecimal string form.
package digest

import (
	"encoding/hex"
	"fmt"
)

// Size is the array size used to store SHA-1 digests.  See Digest.
const Size = 20

// MaxDigestStringSize is the maximum length of a Digest hex string.
const MaxDigestStringSize = Size * 2

// ErrDigestStrSize describes an error that indicates the caller specified
// a digest string that has too many characters.
var ErrDigestStrSize = fmt.Errorf("max digest string length is %v bytes", MaxDigestStringSize)

// Digest is the 160-bit result of hashing a message with SHA-1.
type Digest [Size]byte

// String returns the Digest as a 40-character lowercase hexadecimal
// string.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Bytes returns the bytes which represent the digest as a byte slice.
//
// NOTE: This makes a copy of the bytes.  It is generally cheaper to just
// slice the digest directly thereby reusing the same bytes.
func (d *Digest) Bytes() []byte {
	newDigest := make([]byte, Size)
	copy(newDigest, d[:])

	return newDigest
}

// SetBytes sets the bytes which represent the digest.  An error is
// returned if the number of bytes passed in is not Size.
func (d *Digest) SetBytes(newDigest []byte) error {
	ndlen := len(newDigest)
	if ndlen != Size {
		return fmt.Errorf("invalid digest length of %v, want %v", ndlen, Size)
	}
	copy(d[:], newDigest)

	return nil
}

// IsEqual returns true if target is the same as d.
func (d *Digest) IsEqual(target *Digest) bool {
	if d == nil && target == nil {
		return true
	}
	if d == nil || target == nil {
		return false
	}
	return *d == *target
}

// NewDigest returns a new Digest from a byte slice.  An error is returned
// if the number of bytes passed in is not Size.
func NewDigest(newDigest []byte) (*Digest, error) {
	var d Digest
	err := d.SetBytes(newDigest)
	if err != nil {
		return nil, err
	}
	return &d, err
}

// NewDigestFromStr creates a Digest from a hexadecimal digest string.
// Any missing characters result in zero padding at the front of the
// Digest.
func NewDigestFromStr(s string) (*Digest, error) {
	ret := new(Digest)
	err := Decode(ret, s)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Decode decodes the hexadecimal string encoding of a Digest to a
// destination.
func Decode(dst *Digest, src string) error {
	// Return error if digest string is too long.
	if len(src) > MaxDigestStringSize {
		return ErrDigestStrSize
	}

	// Hex decoder expects the digest to be a multiple of two.  When not,
	// pad with a leading zero.
	var srcBytes []byte
	if len(src)%2 == 0 {
		srcBytes = []byte(src)
	} else {
		srcBytes = make([]byte, 1+len(src))
		srcBytes[0] = '0'
		copy(srcBytes[1:], src)
	}

	// Hex decode the source bytes to a temporary destination.
	var result Digest
	_, err := hex.Decode(result[Size-hex.DecodedLen(len(srcBytes)):], srcBytes)
	if err != nil {
		return err
	}

	copy((*dst)[:], result[:])

	return nil
}
