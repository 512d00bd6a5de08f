// Package hashutil provides one-shot and streaming helpers over the
// sha1 engine. Every call hashes its input as an independent message
// with a fresh chaining state.
package hashutil

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/digestkit/sha1sum/digest"
	"github.com/digestkit/sha1sum/sha1"
)

// Sum returns the SHA-1 digest of data.
func Sum(data []byte) digest.Digest {
	return digest.Digest(sha1.Sum(data))
}

// SumString returns the SHA-1 digest of the bytes of s. Encoding the
// string to bytes is the caller's concern; Go strings arrive as UTF-8.
func SumString(s string) digest.Digest {
	return Sum([]byte(s))
}

// SumReader streams r through the engine in arbitrary chunks and
// returns the digest of everything read.
func SumReader(r io.Reader) (digest.Digest, error) {
	var d digest.Digest
	h := sha1.New()
	if _, err := io.Copy(h, r); err != nil {
		return d, errors.Wrap(err, "read message")
	}
	copy(d[:], h.Sum(nil))
	return d, nil
}

// SumFile returns the digest of the full contents of the file at path.
func SumFile(path string) (digest.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return digest.Digest{}, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	d, err := SumReader(f)
	if err != nil {
		return digest.Digest{}, errors.Wrapf(err, "hash %s", path)
	}
	return d, nil
}
