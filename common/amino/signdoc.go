package amino

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/zkkontos/kontos-go/common/errors"
)

type Coin struct {
	Denom  string `json:"denom" validate:"t_denom"`
	Amount string `json:"amount" validate:"t_uint"`
}

type StdFee struct {
	Amount  []Coin `json:"amount" validate:"dive"`
	Gas     string `json:"gas" validate:"t_uint"`
	Granter string `json:"granter,omitempty" validate:"optional,t_bech32"`
	Payer   string `json:"payer,omitempty" validate:"optional,t_bech32"`
}

// AminoMsg is a message of any type. Value is kept as raw JSON and is
// sorted like the rest of the document when serialized.
type AminoMsg struct {
	Type  string          `json:"type" validate:"required"`
	Value json.RawMessage `json:"value" validate:"required"`
}

// StdSignDoc is the document signed in amino JSON sign mode.
type StdSignDoc struct {
	ChainID       string     `json:"chain_id" validate:"required"`
	AccountNumber string     `json:"account_number" validate:"t_uint"`
	Sequence      string     `json:"sequence" validate:"t_uint"`
	Fee           StdFee     `json:"fee"`
	Msgs          []AminoMsg `json:"msgs" validate:"dive"`
	Memo          string     `json:"memo"`
}

func MakeSignDoc(msgs []AminoMsg, fee StdFee, chainID, memo string, accountNumber, sequence uint64) *StdSignDoc {
	return &StdSignDoc{
		ChainID:       chainID,
		AccountNumber: strconv.FormatUint(accountNumber, 10),
		Sequence:      strconv.FormatUint(sequence, 10),
		Fee:           fee,
		Msgs:          append([]AminoMsg{}, msgs...),
		Memo:          memo,
	}
}

func (doc *StdSignDoc) normalized() *StdSignDoc {
	n := *doc
	if n.Msgs == nil {
		n.Msgs = []AminoMsg{}
	}
	if n.Fee.Amount == nil {
		n.Fee.Amount = []Coin{}
	}
	return &n
}

// SerializeSignDoc returns the canonical JSON of doc: object keys sorted at
// every level, no white space, and '&', '<', '>' escaped as \u0026, \u003c
// and \u003e. U+2028 and U+2029 are escaped too.
//
// Number literals inside message values are kept as written, so 1.50 stays
// 1.50 and 1e3 stays 1e3. Signers that rewrite numbers in their shortest
// form produce other bytes for such values; amounts are strings on the
// wire to keep clear of this.
func SerializeSignDoc(doc *StdSignDoc) ([]byte, error) {
	if doc == nil {
		return nil, errors.Wrap(ErrInvalidSignDoc, "InvalidSignDoc(nil)")
	}
	bs, err := json.Marshal(doc.normalized())
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSignDoc, "InvalidSignDoc(err=%v)", err)
	}
	return sortJSON(bs)
}

// sortJSON decodes into maps and encodes again, which sorts the keys.
// Numbers are kept as their literal text.
func sortJSON(bs []byte) ([]byte, error) {
	var obj interface{}
	dec := json.NewDecoder(bytes.NewReader(bs))
	dec.UseNumber()
	if err := dec.Decode(&obj); err != nil {
		return nil, errors.Wrapf(ErrInvalidSignDoc, "InvalidJSON(err=%v)", err)
	}
	return json.Marshal(obj)
}
