package module

import (
	"context"

	"github.com/zkkontos/kontos-go/common/amino"
	"github.com/zkkontos/kontos-go/common/direct"
)

const AlgoKSecp256r1 = "ksecp256r1"

// AccountData describes an account a wallet can report.
type AccountData struct {
	Algo    string `json:"algo"`
	Address string `json:"address"`
	Pubkey  []byte `json:"pubkey"`
}

// Account reports the accounts of a wallet, signing or not.
type Account interface {
	GetAccounts(ctx context.Context) ([]AccountData, error)
}

// Wallet is an account with a single key.
type Wallet interface {
	Account
	Address() string
	PublicKey() []byte
}

// AminoSigner signs documents in amino JSON sign mode.
type AminoSigner interface {
	Wallet
	SignAmino(ctx context.Context, signerAddress string, doc *amino.StdSignDoc) (*amino.AminoSignResponse, error)
}

// DirectSigner signs documents in direct sign mode.
type DirectSigner interface {
	Wallet
	SignDirect(ctx context.Context, signerAddress string, doc *direct.SignDoc) (*direct.DirectSignResponse, error)
}

// Signer signs in both modes.
type Signer interface {
	AminoSigner
	DirectSigner
}
