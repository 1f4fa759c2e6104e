package amino

import (
	"encoding/base64"
	"encoding/json"

	"github.com/zkkontos/kontos-go/common/crypto"
	"github.com/zkkontos/kontos-go/common/errors"
)

// StdSignature is a signature with the public key to verify it.
type StdSignature struct {
	PubKey    Pubkey `json:"pub_key"`
	Signature string `json:"signature" validate:"required,base64"`
}

// AminoSignResponse is the document as signed with its signature. Signed
// may differ from the requested document if the signer changed it.
type AminoSignResponse struct {
	Signed    StdSignDoc   `json:"signed"`
	Signature StdSignature `json:"signature"`
}

// EncodeSecp256r1Pubkey wraps a 33-byte compressed secp256r1 key.
func EncodeSecp256r1Pubkey(pubkey []byte) (Pubkey, error) {
	if len(pubkey) != crypto.PublicKeyLenCompressed || (pubkey[0] != 0x02 && pubkey[0] != 0x03) {
		return Pubkey{}, errors.Wrapf(ErrInvalidPubkeyValue,
			"PubkeyMustBeCompressed(len=%d)", len(pubkey))
	}
	return SinglePubkey{
		Type:  PubkeyTypeKSecp256r1,
		Value: base64.StdEncoding.EncodeToString(pubkey),
	}.Pubkey(), nil
}

// EncodeSecp256r1Signature makes the StdSignature of a 64-byte [R|S]
// signature.
func EncodeSecp256r1Signature(pubkey, signature []byte) (*StdSignature, error) {
	if len(signature) != crypto.SignatureLenRaw {
		return nil, errors.Wrapf(crypto.ErrInvalidSignatureLength,
			"SignatureMustBeFixedLength(len=%d)", len(signature))
	}
	pk, err := EncodeSecp256r1Pubkey(pubkey)
	if err != nil {
		return nil, err
	}
	return &StdSignature{
		PubKey:    pk,
		Signature: base64.StdEncoding.EncodeToString(signature),
	}, nil
}

// DecodeSignature returns the public key bytes and the 64-byte signature of
// a secp256r1 or secp256k1 StdSignature.
func DecodeSignature(sig *StdSignature) (pubkey, signature []byte, err error) {
	switch sig.PubKey.Type {
	case PubkeyTypeKSecp256r1, PubkeyTypeSecp256k1:
	default:
		return nil, nil, errors.Wrapf(ErrInvalidSignature,
			"UnsupportedSignatureType(type=%s)", sig.PubKey.Type)
	}
	var value string
	if err := json.Unmarshal(sig.PubKey.Value, &value); err != nil {
		return nil, nil, errors.Wrapf(ErrInvalidSignature, "InvalidPubkeyValue(err=%v)", err)
	}
	if pubkey, err = base64.StdEncoding.DecodeString(value); err != nil {
		return nil, nil, errors.Wrapf(ErrInvalidSignature, "InvalidPubkeyBase64(err=%v)", err)
	}
	if signature, err = base64.StdEncoding.DecodeString(sig.Signature); err != nil {
		return nil, nil, errors.Wrapf(ErrInvalidSignature, "InvalidSignatureBase64(err=%v)", err)
	}
	if len(signature) != crypto.SignatureLenRaw {
		return nil, nil, errors.Wrapf(crypto.ErrInvalidSignatureLength,
			"InvalidSignatureLength(len=%d)", len(signature))
	}
	return pubkey, signature, nil
}

// VerifySecp256r1Signature checks sig against the sha256 of signBytes.
func VerifySecp256r1Signature(sig *StdSignature, signBytes []byte) bool {
	if sig == nil || sig.PubKey.Type != PubkeyTypeKSecp256r1 {
		return false
	}
	pubkey, raw, err := DecodeSignature(sig)
	if err != nil {
		return false
	}
	s, err := crypto.SignatureFromFixedLength(raw)
	if err != nil {
		return false
	}
	return crypto.VerifySignature(s, crypto.SHA256Sum(signBytes), pubkey)
}
