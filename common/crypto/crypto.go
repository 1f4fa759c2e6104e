package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"math/big"

	"filippo.io/nistec"

	"github.com/zkkontos/kontos-go/common/errors"
)

const (
	PrivateKeyLen = 32
	// HashLen is the maximum length of a message hash for signing.
	HashLen = 32

	PublicKeyLenCompressed   = 33
	PublicKeyLenUncompressed = 65

	scalarLen = 32
)

var (
	// Secp256r1N is the order of the secp256r1 (NIST P-256) group.
	Secp256r1N, _  = new(big.Int).SetString("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551", 16)
	Secp256r1HalfN = new(big.Int).Rsh(Secp256r1N, 1)

	secp256r1P = elliptic.P256().Params().P
)

// Keypair holds a private scalar and its 65-byte uncompressed public key.
type Keypair struct {
	Privkey []byte
	Pubkey  []byte
}

func checkHash(hash []byte) error {
	if len(hash) == 0 || len(hash) > HashLen {
		return errors.Wrapf(ErrInvalidHashLength, "InvalidHashLength(len=%d)", len(hash))
	}
	return nil
}

func scalarOf(privkey []byte) (*big.Int, error) {
	if len(privkey) != PrivateKeyLen {
		return nil, errors.Wrapf(ErrInvalidPrivateKey, "InvalidPrivateKey(len=%d)", len(privkey))
	}
	d := new(big.Int).SetBytes(privkey)
	if d.Sign() == 0 || d.Cmp(Secp256r1N) >= 0 {
		return nil, errors.Wrap(ErrInvalidPrivateKey, "InvalidPrivateKey(out of range)")
	}
	return d, nil
}

func scalarBytes(v *big.Int) []byte {
	return v.FillBytes(make([]byte, scalarLen))
}

// parsePoint decodes a compressed or uncompressed encoding of a point other
// than the identity.
func parsePoint(pubkey []byte) (*nistec.P256Point, error) {
	switch len(pubkey) {
	case PublicKeyLenCompressed, PublicKeyLenUncompressed:
	default:
		return nil, errors.Wrapf(ErrInvalidPubkeyLength, "InvalidPubkeyLength(len=%d)", len(pubkey))
	}
	p, err := nistec.NewP256Point().SetBytes(pubkey)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPubkey, "InvalidPubkey(err=%v)", err)
	}
	return p, nil
}

// MakeKeypair derives the public key of privkey.
func MakeKeypair(privkey []byte) (*Keypair, error) {
	if _, err := scalarOf(privkey); err != nil {
		return nil, err
	}
	p, err := nistec.NewP256Point().ScalarBaseMult(privkey)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPrivateKey, "InvalidPrivateKey(err=%v)", err)
	}
	kp := &Keypair{
		Privkey: make([]byte, PrivateKeyLen),
		Pubkey:  p.Bytes(),
	}
	copy(kp.Privkey, privkey)
	return kp, nil
}

// CreateSignature signs hash with a deterministic RFC 6979 nonce. The
// returned s is always in the lower half of the curve order.
func CreateSignature(hash, privkey []byte) (*ExtendedSignature, error) {
	if err := checkHash(hash); err != nil {
		return nil, err
	}
	d, err := scalarOf(privkey)
	if err != nil {
		return nil, err
	}
	e := new(big.Int).SetBytes(hash)
	e.Mod(e, Secp256r1N)

	nonces := newNonceGenerator(scalarBytes(d), scalarBytes(e))
	for {
		kb := nonces.next()
		k := new(big.Int).SetBytes(kb)
		if k.Sign() == 0 || k.Cmp(Secp256r1N) >= 0 {
			continue
		}
		p, err := nistec.NewP256Point().ScalarBaseMult(kb)
		if err != nil {
			return nil, errors.CriticalInvariantError.Wrap(err, "ScalarBaseMultFailure")
		}
		rb := p.Bytes()
		x := new(big.Int).SetBytes(rb[1 : 1+scalarLen])
		r := new(big.Int).Mod(x, Secp256r1N)
		if r.Sign() == 0 {
			continue
		}

		s := new(big.Int).Mul(r, d)
		s.Add(s, e)
		s.Mul(s, new(big.Int).ModInverse(k, Secp256r1N))
		s.Mod(s, Secp256r1N)
		if s.Sign() == 0 {
			continue
		}

		// x >= n leaves the second recovery bit set, which the 0/1
		// indicator of the extended form cannot carry.
		if x.Cmp(Secp256r1N) >= 0 {
			return nil, errors.Wrap(ErrMissingRecoveryParam, "MissingRecoveryParam(x>=n)")
		}
		recovery := rb[PublicKeyLenUncompressed-1] & 1
		if s.Cmp(Secp256r1HalfN) > 0 {
			s.Sub(Secp256r1N, s)
			recovery ^= 1
		}
		return &ExtendedSignature{
			Signature: Signature{r: r, s: s},
			Recovery:  recovery,
		}, nil
	}
}

func inRange(v *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(Secp256r1N) < 0
}

// VerifySignature reports whether sig is a valid signature of hash by
// pubkey. It accepts compressed and uncompressed keys. Any malformed input
// gives false.
func VerifySignature(sig *Signature, hash, pubkey []byte) bool {
	if sig == nil || checkHash(hash) != nil {
		return false
	}
	if !inRange(sig.r) || !inRange(sig.s) {
		return false
	}
	p, err := parsePoint(pubkey)
	if err != nil {
		return false
	}
	ub := p.Bytes()
	pub := &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(ub[1 : 1+scalarLen]),
		Y:     new(big.Int).SetBytes(ub[1+scalarLen:]),
	}
	return ecdsa.Verify(pub, hash, sig.r, sig.s)
}

// RecoverPubkey returns the uncompressed public key which produced sig over
// hash.
func RecoverPubkey(sig *ExtendedSignature, hash []byte) ([]byte, error) {
	if err := checkHash(hash); err != nil {
		return nil, err
	}
	if sig == nil || !inRange(sig.r) || !inRange(sig.s) {
		return nil, errors.Wrap(ErrInvalidSignature, "InvalidSignature(r or s out of range)")
	}
	if sig.Recovery > 3 {
		return nil, errors.Wrapf(ErrInvalidSignature, "InvalidSignature(recovery=%d)", sig.Recovery)
	}

	x := new(big.Int).Set(sig.r)
	if sig.Recovery&2 != 0 {
		x.Add(x, Secp256r1N)
		if x.Cmp(secp256r1P) >= 0 {
			return nil, errors.Wrap(ErrInvalidSignature, "InvalidSignature(x out of field)")
		}
	}
	enc := make([]byte, PublicKeyLenCompressed)
	enc[0] = 0x02 | (sig.Recovery & 1)
	x.FillBytes(enc[1:])
	rp, err := nistec.NewP256Point().SetBytes(enc)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSignature, "InvalidSignature(err=%v)", err)
	}

	// Q = r^-1 (s R - e G)
	rInv := new(big.Int).ModInverse(sig.r, Secp256r1N)
	e := new(big.Int).SetBytes(hash)
	u1 := new(big.Int).Neg(e)
	u1.Mul(u1, rInv)
	u1.Mod(u1, Secp256r1N)
	u2 := new(big.Int).Mul(sig.s, rInv)
	u2.Mod(u2, Secp256r1N)

	p1, err := nistec.NewP256Point().ScalarBaseMult(scalarBytes(u1))
	if err != nil {
		return nil, errors.CriticalInvariantError.Wrap(err, "ScalarBaseMultFailure")
	}
	p2, err := nistec.NewP256Point().ScalarMult(rp, scalarBytes(u2))
	if err != nil {
		return nil, errors.CriticalInvariantError.Wrap(err, "ScalarMultFailure")
	}
	q := nistec.NewP256Point().Add(p1, p2).Bytes()
	if len(q) != PublicKeyLenUncompressed {
		return nil, errors.Wrap(ErrInvalidSignature, "InvalidSignature(identity)")
	}
	return q, nil
}

// CompressPubkey returns the 33-byte form of a compressed or uncompressed
// public key.
func CompressPubkey(pubkey []byte) ([]byte, error) {
	p, err := parsePoint(pubkey)
	if err != nil {
		return nil, err
	}
	return p.BytesCompressed(), nil
}

// UncompressPubkey returns the 65-byte form of a compressed or uncompressed
// public key.
func UncompressPubkey(pubkey []byte) ([]byte, error) {
	p, err := parsePoint(pubkey)
	if err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}
