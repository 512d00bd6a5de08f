package digest

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// emptyMessageDigest is SHA-1 of the empty message.
var emptyMessageDigest = Digest([Size]byte{ // Make go vet happy.
	0xda, 0x39, 0xa3, 0xee, 0x5e, 0x6b, 0x4b, 0x0d,
	0x32, 0x55, 0xbf, 0xef, 0x95, 0x60, 0x18, 0x90,
	0xaf, 0xd8, 0x07, 0x09,
})

// TestDigest tests the Digest API.
func TestDigest(t *testing.T) {
	digestStr := "a9993e364706816aba3e25717850c26c9cd0d89d"
	d, err := NewDigestFromStr(digestStr)
	if err != nil {
		t.Errorf("NewDigestFromStr: %v", err)
	}

	buf := []byte{
		0x2f, 0xd4, 0xe1, 0xc6, 0x7a, 0x2d, 0x28, 0xfc,
		0xed, 0x84, 0x9e, 0xe1, 0xbb, 0x76, 0xe7, 0x39,
		0x1b, 0x93, 0xeb, 0x12,
	}

	dg, err := NewDigest(buf)
	if err != nil {
		t.Errorf("NewDigest: unexpected error %v", err)
	}

	// Ensure proper size.
	if len(dg) != Size {
		t.Errorf("NewDigest: digest length mismatch - got: %v, want: %v",
			len(dg), Size)
	}

	// Ensure contents match.
	if !bytes.Equal(dg[:], buf) {
		t.Errorf("NewDigest: digest contents mismatch - got: %v, want: %v",
			dg[:], buf)
	}

	// Ensure the two digests are distinct.
	if dg.IsEqual(d) {
		t.Errorf("IsEqual: digest contents should not match - got: %v, want: %v",
			dg, d)
	}

	// Set digest from byte slice and ensure contents match.
	err = dg.SetBytes(d.Bytes())
	if err != nil {
		t.Errorf("SetBytes: %v", err)
	}
	if !dg.IsEqual(d) {
		t.Errorf("IsEqual: digest contents mismatch - got: %v, want: %v",
			dg, d)
	}

	// Invalid size for SetBytes.
	err = dg.SetBytes([]byte{0x00})
	if err == nil {
		t.Errorf("SetBytes: failed to receive expected err - got: nil")
	}

	// Invalid size for NewDigest.
	invalidDigest := make([]byte, Size+1)
	_, err = NewDigest(invalidDigest)
	if err == nil {
		t.Errorf("NewDigest: failed to receive expected err - got: nil")
	}
}

// TestDigestString tests the stringized output for digests.
func TestDigestString(t *testing.T) {
	wantStr := "da39a3ee5e6b4b0d3255bfef95601890afd80709"
	if got := emptyMessageDigest.String(); got != wantStr {
		t.Errorf("String: wrong digest string - got %v, want %v",
			got, wantStr)
	}
}

// TestNewDigestFromStr executes tests against the NewDigestFromStr
// function.
func TestNewDigestFromStr(t *testing.T) {
	tests := []struct {
		in   string
		want Digest
		err  error
	}{
		{
			"da39a3ee5e6b4b0d3255bfef95601890afd80709",
			emptyMessageDigest,
			nil,
		},

		// Digest with stripped leading zeros.
		{
			"5601890afd80709",
			Digest([Size]byte{ // Make go vet happy.
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x05, 0x60, 0x18, 0x90,
				0xaf, 0xd8, 0x07, 0x09,
			}),
			nil,
		},

		// Empty string.
		{
			"",
			Digest{},
			nil,
		},

		// Single digit.
		{
			"1",
			Digest([Size]byte{ // Make go vet happy.
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x01,
			}),
			nil,
		},

		// Digest string that is too long.
		{
			"012345678901234567890123456789012345678912345",
			Digest{},
			ErrDigestStrSize,
		},

		// Digest string that contains non-hex chars.
		{
			"abcdefg",
			Digest{},
			hex.InvalidByteError('g'),
		},
	}

	unexpectedErrStr := "NewDigestFromStr #%d failed to detect expected error - got: %v want: %v"
	unexpectedResultStr := "NewDigestFromStr #%d got: %v want: %v"
	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result, err := NewDigestFromStr(test.in)
		if err != test.err {
			t.Errorf(unexpectedErrStr, i, err, test.err)
			continue
		} else if err != nil {
			// Got expected error. Move on to the next test.
			continue
		}
		if !test.want.IsEqual(result) {
			t.Errorf(unexpectedResultStr, i, result, &test.want)
			continue
		}
	}
}
