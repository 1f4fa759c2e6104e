package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"io"
)

// PrivateKey is a secp256r1 private key with its public key.
type PrivateKey struct {
	bytes []byte // 32-byte
	pub   *PublicKey
}

// PublicKey is a secp256r1 public key, which can be serialized to or
// deserialized from compressed or uncompressed formats.
type PublicKey struct {
	bytes []byte // 33-byte compressed
}

// ParsePrivateKey parses a 32-byte private key.
func ParsePrivateKey(b []byte) (*PrivateKey, error) {
	kp, err := MakeKeypair(b)
	if err != nil {
		return nil, err
	}
	pub, err := ParsePublicKey(kp.Pubkey)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{bytes: kp.Privkey, pub: pub}, nil
}

// Bytes returns a copy of the 32-byte private key.
func (key *PrivateKey) Bytes() []byte {
	b := make([]byte, len(key.bytes))
	copy(b, key.bytes)
	return b
}

func (key *PrivateKey) PublicKey() *PublicKey {
	return key.pub
}

// Sign signs hash, see CreateSignature.
func (key *PrivateKey) Sign(hash []byte) (*ExtendedSignature, error) {
	return CreateSignature(hash, key.bytes)
}

// String never exposes the key itself.
func (key *PrivateKey) String() string {
	return "PrivateKey(" + key.pub.String() + ")"
}

// ParsePublicKey parses the public key into a PublicKey instance. It supports
// uncompressed and compressed formats, and rejects points off the curve.
func ParsePublicKey(pubKey []byte) (*PublicKey, error) {
	comp, err := CompressPubkey(pubKey)
	if err != nil {
		return nil, err
	}
	return &PublicKey{comp}, nil
}

// SerializeCompressed serializes the public key in a 33-byte compressed format.
// For the efficiency, it returns the slice internally used, so don't change
// any internal value in the returned slice.
func (key *PublicKey) SerializeCompressed() []byte {
	return key.bytes
}

// SerializeUncompressed serializes the public key in a 65-byte uncompressed format.
func (key *PublicKey) SerializeUncompressed() []byte {
	b, _ := UncompressPubkey(key.bytes)
	return b
}

// Equal returns true if the given public key is same as this instance
// semantically
func (key *PublicKey) Equal(key2 *PublicKey) bool {
	if key == nil || key2 == nil {
		return key == key2
	}
	return bytes.Equal(key.bytes, key2.bytes)
}

// Verify verifies the signature of hash using the public key.
func (key *PublicKey) Verify(sig *Signature, hash []byte) bool {
	return VerifySignature(sig, hash, key.bytes)
}

func (key *PublicKey) String() string {
	return "0x" + hex.EncodeToString(key.bytes)
}

func generateKeyPair(r io.Reader) (*PrivateKey, *PublicKey, error) {
	b := make([]byte, PrivateKeyLen)
	for {
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, nil, err
		}
		if sk, err := ParsePrivateKey(b); err == nil {
			return sk, sk.pub, nil
		}
	}
}

// GenerateKeyPair generates a private and public key pair.
func GenerateKeyPair() (privKey *PrivateKey, pubKey *PublicKey) {
	privKey, pubKey, err := generateKeyPair(rand.Reader)
	if err != nil {
		panic(err)
	}
	return
}
