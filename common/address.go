package common

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/zkkontos/kontos-go/common/crypto"
	"github.com/zkkontos/kontos-go/common/errors"
)

// DefaultPrefix is the bech32 human readable part of kontos accounts.
const DefaultPrefix = "kontos"

// Address is a raw account address with the bech32 prefix it is shown with.
type Address struct {
	prefix string
	raw    []byte
}

// NewBech32Address makes an address of raw shown with prefix. An empty
// prefix means DefaultPrefix.
func NewBech32Address(prefix string, raw []byte) (*Address, error) {
	if len(prefix) == 0 {
		prefix = DefaultPrefix
	}
	prefix = strings.ToLower(prefix)
	if len(raw) == 0 {
		return nil, errors.Wrap(ErrInvalidAddress, "InvalidAddress(empty)")
	}
	a := &Address{prefix: prefix, raw: make([]byte, len(raw))}
	copy(a.raw, raw)
	if _, err := a.encode(); err != nil {
		return nil, err
	}
	return a, nil
}

func MustNewBech32Address(prefix string, raw []byte) *Address {
	if a, err := NewBech32Address(prefix, raw); err != nil {
		panic(err)
	} else {
		return a
	}
}

// ParseAddress decodes a bech32 address string.
func ParseAddress(s string) (*Address, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidAddress, "InvalidAddress(addr=%q,err=%v)", s, err)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidAddress, "InvalidAddress(addr=%q,err=%v)", s, err)
	}
	return NewBech32Address(hrp, raw)
}

// NewAccountAddressFromPublicKey returns the address of a secp256r1 account.
func NewAccountAddressFromPublicKey(prefix string, pubKey *crypto.PublicKey) *Address {
	raw, err := RawAddressFromPubkey(KeyTypeKSecp256r1, pubKey.SerializeCompressed())
	if err != nil {
		panic(err)
	}
	return MustNewBech32Address(prefix, raw)
}

func (a *Address) encode() (string, error) {
	data, err := bech32.ConvertBits(a.raw, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidAddress, "InvalidAddress(err=%v)", err)
	}
	s, err := bech32.Encode(a.prefix, data)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidAddress, "InvalidAddress(prefix=%q,err=%v)", a.prefix, err)
	}
	return s, nil
}

func (a *Address) String() string {
	if a == nil {
		return "<nil>"
	}
	s, _ := a.encode()
	return s
}

func (a *Address) Prefix() string {
	return a.prefix
}

// Bytes returns the raw address. Don't modify the returned slice.
func (a *Address) Bytes() []byte {
	return a.raw
}

// WithPrefix returns the same raw address shown with another prefix.
func (a *Address) WithPrefix(prefix string) (*Address, error) {
	return NewBech32Address(prefix, a.raw)
}

func (a *Address) Equal(a2 *Address) bool {
	if a == nil || a2 == nil {
		return a == a2
	}
	return a.prefix == a2.prefix && bytes.Equal(a.raw, a2.raw)
}

func (a *Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	addr, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = *addr
	return nil
}

var abiString = func() abi.Arguments {
	t, err := abi.NewType("string", "", nil)
	if err != nil {
		panic(err)
	}
	return abi.Arguments{{Type: t}}
}()

// RawAddressFromName returns keccak256(abi.encode(name))[12:32].
func RawAddressFromName(name string) []byte {
	encoded, err := abiString.Pack(name)
	if err != nil {
		// packing a string argument can't fail
		panic(err)
	}
	return ethcrypto.Keccak256(encoded)[12:]
}

// AddressFromName returns the named address in 0x prefixed lowercase hex.
func AddressFromName(name string) string {
	return hexutil.Encode(RawAddressFromName(name))
}

// NewNamedAddress returns the bech32 address of a name.
func NewNamedAddress(prefix, name string) (*Address, error) {
	raw, err := hexutil.Decode(AddressFromName(name))
	if err != nil {
		return nil, errors.CriticalFormatError.Wrap(err, "InvalidNamedAddress")
	}
	return NewBech32Address(prefix, raw)
}
