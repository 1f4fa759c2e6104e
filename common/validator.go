package common

import (
	"encoding/hex"
	"strings"

	"github.com/zkkontos/kontos-go/common/errors"
)

// ValidatorPubkey is a consensus key as reported by the node.
type ValidatorPubkey struct {
	Algorithm KeyType     `json:"algorithm"`
	Data      RawHexBytes `json:"data"`
}

// PubkeyToRawAddress returns the consensus address of a validator key.
// Only ed25519, secp256k1 and bls12377 keys sign blocks.
func PubkeyToRawAddress(kt KeyType, data []byte) ([]byte, error) {
	switch kt {
	case KeyTypeEd25519, KeyTypeSecp256k1, KeyTypeBls12377:
		return RawAddressFromPubkey(kt, data)
	default:
		return nil, errors.Wrapf(ErrUnsupportedPubkeyType, "UnsupportedPubkeyType(type=%s)", kt)
	}
}

// PubkeyToAddress returns the consensus address in uppercase hex.
func PubkeyToAddress(kt KeyType, data []byte) (string, error) {
	raw, err := PubkeyToRawAddress(kt, data)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(raw)), nil
}

func (p *ValidatorPubkey) Address() (string, error) {
	return PubkeyToAddress(p.Algorithm, p.Data)
}
