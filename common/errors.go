package common

import (
	"github.com/zkkontos/kontos-go/common/errors"
)

var (
	ErrUnsupportedPubkeyLength = errors.NewBase(errors.InvalidEncodingLengthError, "UnsupportedPubkeyLength")
	ErrUnsupportedPubkeyType   = errors.NewBase(errors.UnsupportedPubkeyTypeError, "UnsupportedPubkeyType")
	ErrInvalidAddress          = errors.NewBase(errors.IllegalArgumentError, "InvalidAddress")
)
