package amino

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkkontos/kontos-go/common/crypto"
	"github.com/zkkontos/kontos-go/common/errors"
)

const testSignDocJSON = `{"account_number":"7","chain_id":"kontos-1",` +
	`"fee":{"amount":[{"amount":"2000","denom":"ukos"}],"gas":"180000"},` +
	`"memo":"a\u0026b\u003cc\u003e",` +
	`"msgs":[{"type":"cosmos-sdk/MsgSend","value":{"amount":[{"amount":"1234","denom":"ukos"}],` +
	`"from_address":"kontos1wsa0kx979dg7gc2ckjg4t3nwafgc53lujw7pqp",` +
	`"to_address":"kontos1jq0w9jzcj97xlu7as8mmgugq0qfrfz0nyws4hu"}}],"sequence":"3"}`

func testSignDoc() *StdSignDoc {
	msg := AminoMsg{
		Type: "cosmos-sdk/MsgSend",
		Value: json.RawMessage(`{
			"to_address": "kontos1jq0w9jzcj97xlu7as8mmgugq0qfrfz0nyws4hu",
			"from_address": "kontos1wsa0kx979dg7gc2ckjg4t3nwafgc53lujw7pqp",
			"amount": [{"denom": "ukos", "amount": "1234"}]
		}`),
	}
	fee := StdFee{
		Amount: []Coin{{Denom: "ukos", Amount: "2000"}},
		Gas:    "180000",
	}
	return MakeSignDoc([]AminoMsg{msg}, fee, "kontos-1", "a&b<c>", 7, 3)
}

func TestSerializeSignDoc(t *testing.T) {
	bs, err := SerializeSignDoc(testSignDoc())
	require.NoError(t, err)
	assert.Equal(t, testSignDocJSON, string(bs))
	assert.Equal(t,
		"a771dfe6317428b1840fb7411451e83c5bd1513c646f770b680db90c787d1c03",
		hex.EncodeToString(crypto.SHA256Sum(bs)))

	again, err := SerializeSignDoc(testSignDoc())
	require.NoError(t, err)
	assert.Equal(t, bs, again)
}

func TestSerializeSignDoc_Empty(t *testing.T) {
	doc := &StdSignDoc{ChainID: "c", AccountNumber: "0", Sequence: "0"}
	bs, err := SerializeSignDoc(doc)
	require.NoError(t, err)
	assert.Equal(t,
		`{"account_number":"0","chain_id":"c","fee":{"amount":[],"gas":""},"memo":"","msgs":[],"sequence":"0"}`,
		string(bs))
	assert.Nil(t, doc.Msgs)
}

func TestSerializeSignDoc_Numbers(t *testing.T) {
	doc := MakeSignDoc([]AminoMsg{{
		Type:  "t",
		Value: json.RawMessage(`{"z":1.50,"e":1e3,"a":12345678901234567890}`),
	}}, StdFee{Gas: "1"}, "c", "", 0, 0)
	bs, err := SerializeSignDoc(doc)
	require.NoError(t, err)
	assert.Contains(t, string(bs), `"value":{"a":12345678901234567890,"e":1e3,"z":1.50}`)

	_, err = SerializeSignDoc(nil)
	assert.True(t, errors.Is(err, ErrInvalidSignDoc))

	doc.Msgs[0].Value = json.RawMessage(`{bad`)
	_, err = SerializeSignDoc(doc)
	assert.True(t, errors.Is(err, ErrInvalidSignDoc))
}

func TestValidateSignDoc(t *testing.T) {
	assert.NoError(t, ValidateSignDoc(testSignDoc()))

	bad := []func(doc *StdSignDoc){
		func(doc *StdSignDoc) { doc.ChainID = "" },
		func(doc *StdSignDoc) { doc.AccountNumber = "-1" },
		func(doc *StdSignDoc) { doc.Sequence = "01" },
		func(doc *StdSignDoc) { doc.Fee.Gas = "1.5" },
		func(doc *StdSignDoc) { doc.Fee.Amount[0].Denom = "u" },
		func(doc *StdSignDoc) { doc.Fee.Amount[0].Amount = "" },
		func(doc *StdSignDoc) { doc.Fee.Payer = "kontos1invalid" },
		func(doc *StdSignDoc) { doc.Msgs[0].Type = "" },
		func(doc *StdSignDoc) { doc.Msgs[0].Value = nil },
	}
	for i, mutate := range bad {
		doc := testSignDoc()
		mutate(doc)
		err := ValidateSignDoc(doc)
		assert.True(t, errors.Is(err, ErrInvalidSignDoc), "case=%d", i)
	}

	doc := testSignDoc()
	doc.Fee.Granter = testAddress
	assert.NoError(t, ValidateSignDoc(doc))
	assert.Error(t, ValidateSignDoc(nil))
}
