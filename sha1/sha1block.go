// SHA-1 block step.
// In its own file so that a faster assembly or C version
// can be substituted easily.

package sha1

// Round constants, one per 20-round span.
const (
	_K0 = 0x5A827999
	_K1 = 0x6ED9EBA1
	_K2 = 0x8F1BBCDC
	_K3 = 0xCA62C1D6
)

func block(dig *digest, p []byte) {
	var w [80]uint32
	h0, h1, h2, h3, h4 := dig.h[0], dig.h[1], dig.h[2], dig.h[3], dig.h[4]
	for len(p) >= chunk {
		for i := 0; i < 16; i++ {
			j := i * 4
			w[i] = uint32(p[j])<<24 | uint32(p[j+1])<<16 | uint32(p[j+2])<<8 | uint32(p[j+3])
		}
		// Expand the 16 message words to the 80-word schedule:
		// w[i] = (w[i-3] ^ w[i-8] ^ w[i-14] ^ w[i-16]) <<< 1.
		for i := 16; i < 80; i++ {
			v := w[i-3] ^ w[i-8] ^ w[i-14] ^ w[i-16]
			w[i] = v<<1 | v>>(32-1)
		}

		a, b, c, d, e := h0, h1, h2, h3, h4

		for i := 0; i < 80; i++ {
			var f, k uint32
			switch {
			case i < 20:
				f = b&c | ^b&d
				k = _K0
			case i < 40:
				f = b ^ c ^ d
				k = _K1
			case i < 60:
				f = b&c | b&d | c&d
				k = _K2
			default:
				f = b ^ c ^ d
				k = _K3
			}
			t := (a<<5 | a>>(32-5)) + f + e + k + w[i]

			e = d
			d = c
			c = b<<30 | b>>(32-30)
			b = a
			a = t
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e

		p = p[chunk:]
	}

	dig.h[0], dig.h[1], dig.h[2], dig.h[3], dig.h[4] = h0, h1, h2, h3, h4
}
