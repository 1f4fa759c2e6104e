package crypto

import (
	"github.com/zkkontos/kontos-go/common/errors"
)

var (
	ErrInvalidPrivateKey      = errors.NewBase(errors.InvalidKeyMaterialError, "InvalidPrivateKey")
	ErrInvalidPubkey          = errors.NewBase(errors.InvalidKeyMaterialError, "InvalidPubkey")
	ErrInvalidHashLength      = errors.NewBase(errors.InvalidHashLengthError, "InvalidHashLength")
	ErrInvalidPubkeyLength    = errors.NewBase(errors.InvalidEncodingLengthError, "InvalidPubkeyLength")
	ErrInvalidSignatureLength = errors.NewBase(errors.InvalidEncodingLengthError, "InvalidSignatureLength")
	ErrInvalidSignature       = errors.NewBase(errors.IllegalArgumentError, "InvalidSignature")
	ErrMissingRecoveryParam   = errors.NewBase(errors.CriticalInvariantError, "MissingRecoveryParam")
)
