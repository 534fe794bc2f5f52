package ethping

import "encoding/binary"

// Checksum returns the Internet checksum (RFC 1071) of b in network byte order.
func Checksum(b []byte) [2]byte {
	var out [2]byte
	binary.BigEndian.PutUint16(out[:], onesComplementChecksum(b))
	return out
}

// onesComplementChecksum sums b as big-endian 16-bit words, padding an odd
// trailing byte with zero, folds the carries and returns the complement.
func onesComplementChecksum(b []byte) uint16 {
	var csum uint32

	n := len(b)
	for i := 0; i+1 < n; i += 2 {
		csum += uint32(b[i])<<8 | uint32(b[i+1])
	}

	if n%2 == 1 {
		csum += uint32(b[n-1]) << 8
	}

	for csum > 0xffff {
		// add carry to the sum
		csum = (csum >> 16) + (csum & 0xffff)
	}

	return ^uint16(csum)
}
