package wallet

import (
	"context"

	"github.com/zkkontos/kontos-go/common"
	"github.com/zkkontos/kontos-go/common/amino"
	"github.com/zkkontos/kontos-go/common/crypto"
	"github.com/zkkontos/kontos-go/common/direct"
	"github.com/zkkontos/kontos-go/common/errors"
	"github.com/zkkontos/kontos-go/common/log"
	"github.com/zkkontos/kontos-go/module"
)

// hashSigner returns the 64-byte [R|S] signature of a 32-byte hash.
type hashSigner func(hash []byte) ([]byte, error)

// signer is the part shared by wallets holding a secp256r1 key, wherever
// the key is kept.
type signer struct {
	pkey    *crypto.PublicKey
	address *common.Address
	sign    hashSigner
	log     log.Logger
}

func newSigner(pkey *crypto.PublicKey, prefix string, sign hashSigner) signer {
	addr := common.NewAccountAddressFromPublicKey(prefix, pkey)
	return signer{
		pkey:    pkey,
		address: addr,
		sign:    sign,
		log: log.WithFields(log.Fields{
			log.FieldKeyAddress: addr.String(),
			log.FieldKeyModule:  "wallet",
		}),
	}
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.InterruptedError.Wrap(err, "Canceled")
	}
	return nil
}

func (s *signer) Address() string {
	return s.address.String()
}

func (s *signer) PublicKey() []byte {
	return s.pkey.SerializeCompressed()
}

func (s *signer) GetAccounts(ctx context.Context) ([]module.AccountData, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return []module.AccountData{{
		Algo:    module.AlgoKSecp256r1,
		Address: s.Address(),
		Pubkey:  s.PublicKey(),
	}}, nil
}

func (s *signer) checkAddress(signerAddress string) error {
	if signerAddress != s.Address() {
		return errors.Wrapf(ErrAddressMismatch,
			"AddressMismatch(addr=%s,wallet=%s)", signerAddress, s.Address())
	}
	return nil
}

func (s *signer) signBytes(msg []byte) (*amino.StdSignature, error) {
	sig, err := s.sign(crypto.SHA256Sum(msg))
	if err != nil {
		return nil, err
	}
	return amino.EncodeSecp256r1Signature(s.PublicKey(), sig)
}

func (s *signer) SignAmino(ctx context.Context, signerAddress string, doc *amino.StdSignDoc) (*amino.AminoSignResponse, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := s.checkAddress(signerAddress); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.Wrap(amino.ErrInvalidSignDoc, "InvalidSignDoc(nil)")
	}
	msg, err := amino.SerializeSignDoc(doc)
	if err != nil {
		return nil, err
	}
	sig, err := s.signBytes(msg)
	if err != nil {
		return nil, err
	}
	s.log.Debugf("SignAmino(chain=%s,account=%s,seq=%s,msgs=%d)",
		doc.ChainID, doc.AccountNumber, doc.Sequence, len(doc.Msgs))
	return &amino.AminoSignResponse{
		Signed:    *doc,
		Signature: *sig,
	}, nil
}

func (s *signer) SignDirect(ctx context.Context, signerAddress string, doc *direct.SignDoc) (*direct.DirectSignResponse, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := s.checkAddress(signerAddress); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.Wrap(direct.ErrInvalidSignDoc, "InvalidSignDoc(nil)")
	}
	sig, err := s.signBytes(direct.MakeSignBytes(doc))
	if err != nil {
		return nil, err
	}
	s.log.Debugf("SignDirect(chain=%s,account=%d)", doc.ChainID, doc.AccountNumber)
	return &direct.DirectSignResponse{
		Signed:    doc,
		Signature: *sig,
	}, nil
}

// SignAmino signs doc with w if it holds a key.
func SignAmino(ctx context.Context, w module.Account, signerAddress string, doc *amino.StdSignDoc) (*amino.AminoSignResponse, error) {
	if s, ok := w.(module.AminoSigner); ok {
		return s.SignAmino(ctx, signerAddress, doc)
	}
	return nil, errors.Wrapf(ErrMissingPrivateKey, "MissingPrivateKey(addr=%s)", signerAddress)
}

// SignDirect signs doc with w if it holds a key.
func SignDirect(ctx context.Context, w module.Account, signerAddress string, doc *direct.SignDoc) (*direct.DirectSignResponse, error) {
	if s, ok := w.(module.DirectSigner); ok {
		return s.SignDirect(ctx, signerAddress, doc)
	}
	return nil, errors.Wrapf(ErrMissingPrivateKey, "MissingPrivateKey(addr=%s)", signerAddress)
}
