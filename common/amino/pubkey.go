package amino

import (
	"encoding/base64"
	"encoding/json"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/zkkontos/kontos-go/common"
	"github.com/zkkontos/kontos-go/common/crypto"
	"github.com/zkkontos/kontos-go/common/errors"
)

// Type tags of amino JSON public keys.
const (
	PubkeyTypeEd25519           = "tendermint/PubKeyEd25519"
	PubkeyTypeEdBls12377        = "tendermint/PubKeyEdbls12377"
	PubkeyTypeSecp256k1         = "tendermint/PubKeySecp256k1"
	PubkeyTypeSr25519           = "tendermint/PubKeySr25519"
	PubkeyTypeKSecp256r1        = "kontos/PubKeyKSecp256r1"
	PubkeyTypeMultisigThreshold = "tendermint/PubKeyMultisigThreshold"
)

// Pubkey is the wire form of any amino JSON public key. Value is a JSON
// string for single keys and an object for multisig threshold keys.
type Pubkey struct {
	Type  string          `json:"type" validate:"t_pubkey_tag"`
	Value json.RawMessage `json:"value" validate:"required"`
}

// SinglePubkey is a non multisig public key. Value is the base64 encoding
// of the key bytes.
type SinglePubkey struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type singleKeyInfo struct {
	keyType common.KeyType
	length  int
}

// singleKeys lists every single key tag. A key type is empty if the chain
// derives no account address from that kind of key.
var singleKeys = map[string]singleKeyInfo{
	PubkeyTypeEd25519:    {common.KeyTypeEd25519, 32},
	PubkeyTypeEdBls12377: {common.KeyTypeBls12377, 96},
	PubkeyTypeSecp256k1:  {common.KeyTypeSecp256k1, crypto.PublicKeyLenCompressed},
	PubkeyTypeSr25519:    {"", 32},
	PubkeyTypeKSecp256r1: {common.KeyTypeKSecp256r1, crypto.PublicKeyLenCompressed},
}

func IsEd25519Pubkey(p Pubkey) bool {
	return p.Type == PubkeyTypeEd25519
}

func IsEdBls12377Pubkey(p Pubkey) bool {
	return p.Type == PubkeyTypeEdBls12377
}

func IsSecp256k1Pubkey(p Pubkey) bool {
	return p.Type == PubkeyTypeSecp256k1
}

func IsSecp256r1Pubkey(p Pubkey) bool {
	return p.Type == PubkeyTypeKSecp256r1
}

// IsSinglePubkey reports whether p is an ed25519, edbls12377, secp256k1 or
// secp256r1 key. sr25519 keys decode and validate, but are not single keys
// here since no address is derived from them. It is never true for
// multisig threshold keys or unknown tags.
func IsSinglePubkey(p Pubkey) bool {
	info, ok := singleKeys[p.Type]
	return ok && len(info.keyType) != 0
}

func IsMultisigThresholdPubkey(p Pubkey) bool {
	return p.Type == PubkeyTypeMultisigThreshold
}

// KeyTypeOf maps a single key tag to its address derivation key type.
func KeyTypeOf(tag string) (common.KeyType, error) {
	info, ok := singleKeys[tag]
	if !ok || len(info.keyType) == 0 {
		return "", errors.Wrapf(common.ErrUnsupportedPubkeyType, "UnsupportedPubkeyType(type=%s)", tag)
	}
	return info.keyType, nil
}

// Single returns the typed view of a single key.
func (p Pubkey) Single() (*SinglePubkey, error) {
	if !IsSinglePubkey(p) {
		return nil, errors.Wrapf(common.ErrUnsupportedPubkeyType, "NotSinglePubkey(type=%s)", p.Type)
	}
	var value string
	if err := json.Unmarshal(p.Value, &value); err != nil {
		return nil, errors.Wrapf(ErrInvalidPubkey, "InvalidPubkeyValue(type=%s,err=%v)", p.Type, err)
	}
	return &SinglePubkey{Type: p.Type, Value: value}, nil
}

// Pubkey returns the wire form of the key.
func (p SinglePubkey) Pubkey() Pubkey {
	value, _ := json.Marshal(p.Value)
	return Pubkey{Type: p.Type, Value: value}
}

// Bytes decodes the base64 value.
func (p SinglePubkey) Bytes() ([]byte, error) {
	bs, err := base64.StdEncoding.DecodeString(p.Value)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPubkey, "InvalidBase64(type=%s,err=%v)", p.Type, err)
	}
	return bs, nil
}

// Validate checks the length of the key for its tag, and that secp256k1
// and secp256r1 keys are points on their curves.
func (p SinglePubkey) Validate() error {
	info, ok := singleKeys[p.Type]
	if !ok {
		return errors.Wrapf(common.ErrUnsupportedPubkeyType, "UnsupportedPubkeyType(type=%s)", p.Type)
	}
	bs, err := p.Bytes()
	if err != nil {
		return err
	}
	if len(bs) != info.length {
		return errors.Wrapf(ErrInvalidPubkeyValue, "InvalidPubkeyLength(type=%s,len=%d)", p.Type, len(bs))
	}
	switch p.Type {
	case PubkeyTypeSecp256k1:
		if _, err := secp256k1.ParsePubKey(bs); err != nil {
			return errors.Wrapf(ErrInvalidPubkey, "InvalidSecp256k1Pubkey(err=%v)", err)
		}
	case PubkeyTypeKSecp256r1:
		if _, err := crypto.ParsePublicKey(bs); err != nil {
			return errors.Wrapf(ErrInvalidPubkey, "InvalidSecp256r1Pubkey(err=%v)", err)
		}
	}
	return nil
}

// RawAddressOf returns the account address of a single key.
func RawAddressOf(p Pubkey) ([]byte, error) {
	single, err := p.Single()
	if err != nil {
		return nil, err
	}
	kt, err := KeyTypeOf(single.Type)
	if err != nil {
		return nil, err
	}
	bs, err := single.Bytes()
	if err != nil {
		return nil, err
	}
	return common.RawAddressFromPubkey(kt, bs)
}
