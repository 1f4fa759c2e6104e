package direct

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/zkkontos/kontos-go/common/amino"
	"github.com/zkkontos/kontos-go/common/errors"
)

var ErrInvalidSignDoc = errors.NewBase(errors.IllegalArgumentError, "InvalidDirectSignDoc")

// Field numbers of cosmos.tx.v1beta1.SignDoc
const (
	fieldBodyBytes     protowire.Number = 1
	fieldAuthInfoBytes protowire.Number = 2
	fieldChainID       protowire.Number = 3
	fieldAccountNumber protowire.Number = 4
)

// SignDoc is the document signed in direct sign mode. BodyBytes and
// AuthInfoBytes are already encoded by the transaction layer.
type SignDoc struct {
	BodyBytes     []byte `json:"body_bytes"`
	AuthInfoBytes []byte `json:"auth_info_bytes"`
	ChainID       string `json:"chain_id"`
	AccountNumber uint64 `json:"account_number,string"`
}

// DirectSignResponse is the document as signed with its signature.
type DirectSignResponse struct {
	Signed    *SignDoc           `json:"signed"`
	Signature amino.StdSignature `json:"signature"`
}

func MakeSignDoc(bodyBytes, authInfoBytes []byte, chainID string, accountNumber uint64) *SignDoc {
	return &SignDoc{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		ChainID:       chainID,
		AccountNumber: accountNumber,
	}
}

// MakeSignBytes returns the protobuf encoding of doc. Fields with zero
// values are omitted like proto3 does.
func MakeSignBytes(doc *SignDoc) []byte {
	var b []byte
	if len(doc.BodyBytes) > 0 {
		b = protowire.AppendTag(b, fieldBodyBytes, protowire.BytesType)
		b = protowire.AppendBytes(b, doc.BodyBytes)
	}
	if len(doc.AuthInfoBytes) > 0 {
		b = protowire.AppendTag(b, fieldAuthInfoBytes, protowire.BytesType)
		b = protowire.AppendBytes(b, doc.AuthInfoBytes)
	}
	if len(doc.ChainID) > 0 {
		b = protowire.AppendTag(b, fieldChainID, protowire.BytesType)
		b = protowire.AppendString(b, doc.ChainID)
	}
	if doc.AccountNumber != 0 {
		b = protowire.AppendTag(b, fieldAccountNumber, protowire.VarintType)
		b = protowire.AppendVarint(b, doc.AccountNumber)
	}
	return b
}

// ParseSignBytes decodes sign bytes made by MakeSignBytes. Unknown fields
// are skipped.
func ParseSignBytes(b []byte) (*SignDoc, error) {
	doc := new(SignDoc)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, errors.Wrapf(ErrInvalidSignDoc, "InvalidTag(err=%v)", protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == fieldBodyBytes && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return nil, errors.Wrapf(ErrInvalidSignDoc, "InvalidBodyBytes(err=%v)", protowire.ParseError(m))
			}
			doc.BodyBytes, n = append([]byte(nil), v...), m
		case num == fieldAuthInfoBytes && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return nil, errors.Wrapf(ErrInvalidSignDoc, "InvalidAuthInfoBytes(err=%v)", protowire.ParseError(m))
			}
			doc.AuthInfoBytes, n = append([]byte(nil), v...), m
		case num == fieldChainID && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(b)
			if m < 0 {
				return nil, errors.Wrapf(ErrInvalidSignDoc, "InvalidChainID(err=%v)", protowire.ParseError(m))
			}
			doc.ChainID, n = v, m
		case num == fieldAccountNumber && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return nil, errors.Wrapf(ErrInvalidSignDoc, "InvalidAccountNumber(err=%v)", protowire.ParseError(m))
			}
			doc.AccountNumber, n = v, m
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, errors.Wrapf(ErrInvalidSignDoc, "InvalidField(num=%d,err=%v)", num, protowire.ParseError(n))
			}
		}
		b = b[n:]
	}
	return doc, nil
}
