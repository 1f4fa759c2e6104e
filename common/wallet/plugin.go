/*
 * Copyright 2020 ICON Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package wallet

import (
	"plugin"

	"github.com/zkkontos/kontos-go/common/crypto"
	"github.com/zkkontos/kontos-go/common/errors"
	"github.com/zkkontos/kontos-go/common/log"
	"github.com/zkkontos/kontos-go/module"
)

// walletImpl is a key kept out of the process, like a hardware module or
// a remote signer. Sign returns [R|S] or [R|S|V] of the hash.
type walletImpl interface {
	Sign(hash []byte) ([]byte, error)
	PublicKey() []byte
}

const builderName = "NewWallet"

type pluginWallet struct {
	signer
	impl   walletImpl
	plugin *plugin.Plugin
}

// signHash accepts the signature only if it verifies against the reported
// key, and normalizes it to low S.
func (w *pluginWallet) signHash(hash []byte) ([]byte, error) {
	raw, err := w.impl.Sign(hash)
	if err != nil {
		return nil, err
	}
	rs, err := crypto.TrimRecoveryByte(raw)
	if err != nil {
		return nil, err
	}
	sig, err := crypto.SignatureFromFixedLength(rs)
	if err != nil {
		return nil, err
	}
	if !w.pkey.Verify(sig, hash) {
		return nil, errors.Wrap(crypto.ErrInvalidSignature, "ExternalSignatureNotVerified")
	}
	return sig.ToLowS().ToFixedLength(), nil
}

func newExternalWallet(impl walletImpl, prefix string) (*pluginWallet, error) {
	pk, err := crypto.ParsePublicKey(impl.PublicKey())
	if err != nil {
		return nil, err
	}
	w := &pluginWallet{impl: impl}
	w.signer = newSigner(pk, prefix, w.signHash)
	return w, nil
}

// OpenPlugin loads a signer from a Go plugin exporting
//
//	func NewWallet(params map[string]string) (interface{}, error)
//
// whose result has the methods of walletImpl.
func OpenPlugin(p string, opts map[string]string, prefix string) (wallet module.Signer, ret error) {
	mod, err := plugin.Open(p)
	if err != nil {
		log.Debugf("Fail to open plugin=%s err=%+v", p, err)
		return nil, err
	}
	bdi, err := mod.Lookup(builderName)
	if err != nil {
		log.Debugf("Fail to find %s with plugin=%s err=%+v", builderName, p, err)
		return nil, err
	}
	bd, ok := bdi.(func(params map[string]string) (interface{}, error))
	if !ok {
		return nil, errors.IllegalArgumentError.Errorf(
			"IncompatibleWalletImpl(plugin=%s)", p)
	}
	defer func() {
		rec := recover()
		if rec != nil {
			log.Errorf("Fail to build plugin err=%+v", rec)
			wallet = nil
			ret = errors.ErrIllegalArgument
			return
		}
	}()
	wi, err := bd(opts)
	if err != nil {
		return nil, err
	}
	impl, ok := wi.(walletImpl)
	if !ok {
		return nil, errors.IllegalArgumentError.Errorf(
			"InvalidWalletType(type=%T)", wi)
	}

	w, err := newExternalWallet(impl, prefix)
	if err != nil {
		return nil, err
	}
	w.plugin = mod
	return w, nil
}
