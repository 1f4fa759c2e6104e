package wallet

import (
	"context"

	"github.com/zkkontos/kontos-go/common"
	"github.com/zkkontos/kontos-go/common/crypto"
	"github.com/zkkontos/kontos-go/common/errors"
	"github.com/zkkontos/kontos-go/module"
)

// queryWallet knows an account without its private key. It implements
// module.Wallet but none of the signer interfaces.
type queryWallet struct {
	name    string
	pubkey  []byte
	address *common.Address
}

// NewQueryWallet makes a wallet of a secp256r1 public key.
func NewQueryWallet(pubkey []byte, prefix string) (module.Wallet, error) {
	pk, err := crypto.ParsePublicKey(pubkey)
	if err != nil {
		return nil, err
	}
	return &queryWallet{
		pubkey:  pk.SerializeCompressed(),
		address: common.NewAccountAddressFromPublicKey(prefix, pk),
	}, nil
}

// NewNamedQueryWallet makes a wallet whose address comes from name. The
// public key is optional and is only reported.
func NewNamedQueryWallet(name string, pubkey []byte, prefix string) (module.Wallet, error) {
	if len(name) == 0 {
		return nil, errors.IllegalArgumentError.New("EmptyName")
	}
	w := &queryWallet{name: name}
	if len(pubkey) > 0 {
		pk, err := crypto.ParsePublicKey(pubkey)
		if err != nil {
			return nil, err
		}
		w.pubkey = pk.SerializeCompressed()
	}
	addr, err := common.NewNamedAddress(prefix, name)
	if err != nil {
		return nil, err
	}
	w.address = addr
	return w, nil
}

func (w *queryWallet) Name() string {
	return w.name
}

func (w *queryWallet) Address() string {
	return w.address.String()
}

func (w *queryWallet) PublicKey() []byte {
	return w.pubkey
}

func (w *queryWallet) GetAccounts(ctx context.Context) ([]module.AccountData, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return []module.AccountData{{
		Algo:    module.AlgoKSecp256r1,
		Address: w.Address(),
		Pubkey:  w.pubkey,
	}}, nil
}
