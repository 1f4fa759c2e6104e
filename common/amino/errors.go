package amino

import (
	"github.com/zkkontos/kontos-go/common/errors"
)

var (
	ErrInvalidPubkey      = errors.NewBase(errors.InvalidKeyMaterialError, "InvalidPubkey")
	ErrInvalidPubkeyValue = errors.NewBase(errors.InvalidEncodingLengthError, "InvalidPubkeyValue")
	ErrInvalidMultisig    = errors.NewBase(errors.IllegalArgumentError, "InvalidMultisigThresholdPubkey")
	ErrInvalidSignDoc     = errors.NewBase(errors.IllegalArgumentError, "InvalidSignDoc")
	ErrInvalidSignature   = errors.NewBase(errors.IllegalArgumentError, "InvalidStdSignature")
)
