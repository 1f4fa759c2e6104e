package wallet

import (
	"github.com/zkkontos/kontos-go/common/errors"
)

var (
	ErrAddressMismatch   = errors.NewBase(errors.AddressMismatchError, "AddressMismatch")
	ErrMissingPrivateKey = errors.NewBase(errors.MissingPrivateKeyError, "MissingPrivateKey")
	ErrInvalidKeyStore   = errors.NewBase(errors.IllegalArgumentError, "InvalidKeyStore")
	ErrInvalidPassword   = errors.NewBase(errors.IllegalArgumentError, "InvalidPassword")
)
