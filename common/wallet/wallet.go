package wallet

import (
	"github.com/zkkontos/kontos-go/common/crypto"
	"github.com/zkkontos/kontos-go/module"
)

type softwareWallet struct {
	signer
	skey *crypto.PrivateKey
}

func (w *softwareWallet) signHash(hash []byte) ([]byte, error) {
	sig, err := w.skey.Sign(hash)
	if err != nil {
		return nil, err
	}
	return sig.Signature.ToFixedLength(), nil
}

func newSoftwareWallet(sk *crypto.PrivateKey, prefix string) *softwareWallet {
	w := &softwareWallet{skey: sk}
	w.signer = newSigner(sk.PublicKey(), prefix, w.signHash)
	return w
}

// New makes a wallet with a new random key.
func New(prefix string) module.Signer {
	sk, _ := crypto.GenerateKeyPair()
	return newSoftwareWallet(sk, prefix)
}

func NewFromPrivateKey(sk *crypto.PrivateKey, prefix string) module.Signer {
	return newSoftwareWallet(sk, prefix)
}

// NewSecp256r1Wallet makes a signing wallet of a 32-byte secp256r1 key. An
// empty prefix means common.DefaultPrefix.
func NewSecp256r1Wallet(privkey []byte, prefix string) (module.Signer, error) {
	sk, err := crypto.ParsePrivateKey(privkey)
	if err != nil {
		return nil, err
	}
	return newSoftwareWallet(sk, prefix), nil
}
