package crypto

import (
	"encoding/hex"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/zkkontos/kontos-go/common/errors"
)

const (
	// SignatureLenRaw is the bytes length of [R|S]
	SignatureLenRaw = 64
	// SignatureLenRawWithV is the bytes length of [R|S|V]
	SignatureLenRawWithV = 65
)

// Signature is an ECDSA signature over secp256r1 without recovery data.
type Signature struct {
	r *big.Int
	s *big.Int
}

// ExtendedSignature is a Signature carrying the recovery indicator of the
// public key, 0 or 1.
type ExtendedSignature struct {
	Signature
	Recovery byte
}

func checkComponent(name string, v *big.Int) error {
	if v.Sign() <= 0 || v.BitLen() > scalarLen*8 {
		return errors.Wrapf(ErrInvalidSignature, "InvalidSignature(%s=%s)", name, v.Text(16))
	}
	return nil
}

// NewSignature makes a signature from unpadded big-endian r and s.
func NewSignature(r, s []byte) (*Signature, error) {
	if len(r) == 0 || len(r) > scalarLen || r[0] == 0 {
		return nil, errors.Wrap(ErrInvalidSignature, "InvalidSignature(r must be unpadded big endian)")
	}
	if len(s) == 0 || len(s) > scalarLen || s[0] == 0 {
		return nil, errors.Wrap(ErrInvalidSignature, "InvalidSignature(s must be unpadded big endian)")
	}
	return &Signature{
		r: new(big.Int).SetBytes(r),
		s: new(big.Int).SetBytes(s),
	}, nil
}

func newSignatureFromInts(r, s *big.Int) (*Signature, error) {
	if err := checkComponent("r", r); err != nil {
		return nil, err
	}
	if err := checkComponent("s", s); err != nil {
		return nil, err
	}
	return &Signature{r: r, s: s}, nil
}

// SignatureFromFixedLength parses 64 bytes of [R|S].
func SignatureFromFixedLength(data []byte) (*Signature, error) {
	if len(data) != SignatureLenRaw {
		return nil, errors.Wrapf(ErrInvalidSignatureLength, "InvalidSignatureLength(len=%d)", len(data))
	}
	return newSignatureFromInts(
		new(big.Int).SetBytes(data[:scalarLen]),
		new(big.Int).SetBytes(data[scalarLen:]),
	)
}

// SignatureFromDer parses an ASN.1 SEQUENCE of the two INTEGERs r and s.
func SignatureFromDer(data []byte) (*Signature, error) {
	var inner cryptobyte.String
	r, s := new(big.Int), new(big.Int)
	input := cryptobyte.String(data)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) || !input.Empty() ||
		!inner.ReadASN1Integer(r) || !inner.ReadASN1Integer(s) ||
		!inner.Empty() {
		return nil, errors.Wrap(ErrInvalidSignature, "InvalidSignature(malformed DER)")
	}
	return newSignatureFromInts(r, s)
}

// R returns r in big-endian left padded to length bytes. A length of zero
// returns the minimal encoding.
func (sig *Signature) R(length int) []byte {
	return padded(sig.r, length)
}

// S returns s in big-endian left padded to length bytes. A length of zero
// returns the minimal encoding.
func (sig *Signature) S(length int) []byte {
	return padded(sig.s, length)
}

func padded(v *big.Int, length int) []byte {
	if length == 0 {
		return v.Bytes()
	}
	return v.FillBytes(make([]byte, length))
}

// ToFixedLength returns 64 bytes of [R|S].
func (sig *Signature) ToFixedLength() []byte {
	out := make([]byte, SignatureLenRaw)
	sig.r.FillBytes(out[:scalarLen])
	sig.s.FillBytes(out[scalarLen:])
	return out
}

func (sig *Signature) ToDer() []byte {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(sig.r)
		b.AddASN1BigInt(sig.s)
	})
	return b.BytesOrPanic()
}

// IsLowS reports whether s is in the lower half of the curve order.
func (sig *Signature) IsLowS() bool {
	return sig.s.Cmp(Secp256r1HalfN) <= 0
}

// ToLowS returns the signature itself or its twin with s replaced by n - s.
func (sig *Signature) ToLowS() *Signature {
	if sig.IsLowS() {
		return sig
	}
	return &Signature{r: sig.r, s: new(big.Int).Sub(Secp256r1N, sig.s)}
}

func (sig *Signature) Equal(sig2 *Signature) bool {
	if sig == nil || sig2 == nil {
		return sig == sig2
	}
	return sig.r.Cmp(sig2.r) == 0 && sig.s.Cmp(sig2.s) == 0
}

// String returns the string representation.
func (sig *Signature) String() string {
	if sig == nil || sig.r == nil {
		return "[empty]"
	}
	return "0x" + hex.EncodeToString(sig.ToFixedLength())
}

// ExtendedSignatureFromFixedLength parses 65 bytes of [R|S|V].
func ExtendedSignatureFromFixedLength(data []byte) (*ExtendedSignature, error) {
	if len(data) != SignatureLenRawWithV {
		return nil, errors.Wrapf(ErrInvalidSignatureLength, "InvalidSignatureLength(len=%d)", len(data))
	}
	sig, err := SignatureFromFixedLength(data[:SignatureLenRaw])
	if err != nil {
		return nil, err
	}
	return &ExtendedSignature{
		Signature: *sig,
		Recovery:  data[SignatureLenRaw],
	}, nil
}

// ToFixedLength returns 65 bytes of [R|S|V].
func (sig *ExtendedSignature) ToFixedLength() []byte {
	out := make([]byte, SignatureLenRawWithV)
	copy(out, sig.Signature.ToFixedLength())
	out[SignatureLenRaw] = sig.Recovery
	return out
}

func (sig *ExtendedSignature) String() string {
	if sig == nil || sig.r == nil {
		return "[empty]"
	}
	return "0x" + hex.EncodeToString(sig.ToFixedLength())
}

// TrimRecoveryByte returns the [R|S] part of a 64 or 65 byte signature.
func TrimRecoveryByte(sig []byte) ([]byte, error) {
	switch len(sig) {
	case SignatureLenRaw:
		return sig, nil
	case SignatureLenRawWithV:
		return sig[:SignatureLenRaw], nil
	default:
		return nil, errors.Wrapf(ErrInvalidSignatureLength, "InvalidSignatureLength(len=%d)", len(sig))
	}
}
