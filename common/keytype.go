package common

import (
	"strings"

	"github.com/zkkontos/kontos-go/common/crypto"
	"github.com/zkkontos/kontos-go/common/errors"
)

// KeyType names the algorithm of a public key for address derivation.
type KeyType string

const (
	KeyTypeEd25519    KeyType = "ed25519"
	KeyTypeBls12377   KeyType = "bls12377"
	KeyTypeSecp256k1  KeyType = "secp256k1"
	KeyTypeKSecp256r1 KeyType = "ksecp256r1"
)

const RawAddressBytes = 20

type addressRule struct {
	pubkeyLen int
	hash      func(pubkey []byte) []byte
}

func sha256Prefix(pubkey []byte) []byte {
	return crypto.SHA256Sum(pubkey)[:RawAddressBytes]
}

var addressRules = map[KeyType]addressRule{
	KeyTypeEd25519:    {32, sha256Prefix},
	KeyTypeBls12377:   {96, sha256Prefix},
	KeyTypeSecp256k1:  {crypto.PublicKeyLenCompressed, crypto.Hash160},
	KeyTypeKSecp256r1: {crypto.PublicKeyLenCompressed, crypto.Hash160},
}

func ParseKeyType(s string) (KeyType, error) {
	kt := KeyType(strings.ToLower(s))
	if _, ok := addressRules[kt]; !ok {
		return "", errors.Wrapf(ErrUnsupportedPubkeyType, "UnsupportedPubkeyType(type=%s)", s)
	}
	return kt, nil
}

func (kt KeyType) String() string {
	return string(kt)
}

// PubkeyLen returns the public key length the address rule of kt expects.
func (kt KeyType) PubkeyLen() (int, error) {
	rule, ok := addressRules[kt]
	if !ok {
		return 0, errors.Wrapf(ErrUnsupportedPubkeyType, "UnsupportedPubkeyType(type=%s)", kt)
	}
	return rule.pubkeyLen, nil
}

// RawAddressFromPubkey returns the 20-byte account address of pubkey.
// Secp256k1 and ksecp256r1 keys must be compressed.
func RawAddressFromPubkey(kt KeyType, pubkey []byte) ([]byte, error) {
	rule, ok := addressRules[kt]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedPubkeyType, "UnsupportedPubkeyType(type=%s)", kt)
	}
	if len(pubkey) != rule.pubkeyLen {
		return nil, errors.Wrapf(ErrUnsupportedPubkeyLength,
			"UnsupportedPubkeyLength(type=%s,len=%d,expected=%d)", kt, len(pubkey), rule.pubkeyLen)
	}
	return rule.hash(pubkey), nil
}
