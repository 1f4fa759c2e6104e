package crypto

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
)

// nonceGenerator is the HMAC-SHA256 DRBG of RFC 6979 section 3.2. With a
// 256 bit curve order and a 256 bit digest every candidate is one block.
type nonceGenerator struct {
	k []byte
	v []byte
}

func hmacSum(key []byte, data ...[]byte) []byte {
	m := hmac.New(sha256.New, key)
	for _, d := range data {
		m.Write(d)
	}
	return m.Sum(nil)
}

// newNonceGenerator seeds the generator with int2octets(x) and
// bits2octets(h), both 32 bytes long.
func newNonceGenerator(x, h []byte) *nonceGenerator {
	g := &nonceGenerator{
		k: make([]byte, sha256.Size),
		v: bytes.Repeat([]byte{0x01}, sha256.Size),
	}
	g.k = hmacSum(g.k, g.v, []byte{0x00}, x, h)
	g.v = hmacSum(g.k, g.v)
	g.k = hmacSum(g.k, g.v, []byte{0x01}, x, h)
	g.v = hmacSum(g.k, g.v)
	return g
}

// next returns the next nonce candidate and prepares the state for a retry.
func (g *nonceGenerator) next() []byte {
	g.v = hmacSum(g.k, g.v)
	t := make([]byte, len(g.v))
	copy(t, g.v)
	g.k = hmacSum(g.k, g.v, []byte{0x00})
	g.v = hmacSum(g.k, g.v)
	return t
}
