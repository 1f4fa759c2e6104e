package wallet

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkkontos/kontos-go/common/amino"
	"github.com/zkkontos/kontos-go/common/direct"
	"github.com/zkkontos/kontos-go/common/errors"
	"github.com/zkkontos/kontos-go/module"
)

const (
	testPrivateKeyHex = "5b44b93366536ca29097ad0327d7f8f2da914ba5ab912249882aea77c5ea4992"
	testPubkeyHex     = "031eebbfbdc9417ba609c9dff678f6a0427ec264c24436512abc1ffeec30105e0d"
	testAddress       = "kontos1wsa0kx979dg7gc2ckjg4t3nwafgc53lujw7pqp"

	testAminoSignature  = "dzr3wxa5ZF03hx2FvKoA37VVZs2e0H9xSOTuCzDjZyktlSjq+TvpOprTSQLi3Y3//J9qQxjSrk8E6vF64fpl7Q=="
	testDirectSignature = "VId3Ho9rLTCbc6SJqHWaM1UjPf/guupTwmgXpHpOC9FvPqsgr0idFFC3L097Oy9VaINJN5c+6aqonc5J3X41wA=="
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func testAminoDoc() *amino.StdSignDoc {
	msg := amino.AminoMsg{
		Type: "cosmos-sdk/MsgSend",
		Value: json.RawMessage(`{
			"to_address": "kontos1jq0w9jzcj97xlu7as8mmgugq0qfrfz0nyws4hu",
			"from_address": "kontos1wsa0kx979dg7gc2ckjg4t3nwafgc53lujw7pqp",
			"amount": [{"denom": "ukos", "amount": "1234"}]
		}`),
	}
	fee := amino.StdFee{
		Amount: []amino.Coin{{Denom: "ukos", Amount: "2000"}},
		Gas:    "180000",
	}
	return amino.MakeSignDoc([]amino.AminoMsg{msg}, fee, "kontos-1", "a&b<c>", 7, 3)
}

func testDirectDoc() *direct.SignDoc {
	return direct.MakeSignDoc([]byte{0x0a, 0x0b}, []byte{0x12, 0x13}, "kontos-1", 300)
}

func testWallet(t *testing.T) module.Signer {
	w, err := NewSecp256r1Wallet(mustHex(testPrivateKeyHex), "")
	require.NoError(t, err)
	return w
}

func TestWallet_GetAccounts(t *testing.T) {
	w := testWallet(t)
	assert.Equal(t, testAddress, w.Address())
	assert.Equal(t, mustHex(testPubkeyHex), w.PublicKey())

	accounts, err := w.GetAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []module.AccountData{{
		Algo:    module.AlgoKSecp256r1,
		Address: testAddress,
		Pubkey:  mustHex(testPubkeyHex),
	}}, accounts)
}

func TestWallet_Prefix(t *testing.T) {
	w, err := NewSecp256r1Wallet(mustHex(testPrivateKeyHex), "COSMOS")
	require.NoError(t, err)
	assert.Equal(t, "cosmos1wsa0kx979dg7gc2ckjg4t3nwafgc53luwgvupa", w.Address())
}

func TestWallet_InvalidKey(t *testing.T) {
	_, err := NewSecp256r1Wallet(make([]byte, 32), "")
	assert.True(t, errors.InvalidKeyMaterialError.Equals(err))
	_, err = NewSecp256r1Wallet(make([]byte, 31), "")
	assert.Error(t, err)
}

func TestWallet_SignAmino(t *testing.T) {
	w := testWallet(t)
	doc := testAminoDoc()

	res, err := w.SignAmino(context.Background(), testAddress, doc)
	require.NoError(t, err)
	assert.Equal(t, *doc, res.Signed)
	assert.Equal(t, testAminoSignature, res.Signature.Signature)
	assert.Equal(t, amino.PubkeyTypeKSecp256r1, res.Signature.PubKey.Type)

	signBytes, err := amino.SerializeSignDoc(doc)
	require.NoError(t, err)
	assert.True(t, amino.VerifySecp256r1Signature(&res.Signature, signBytes))

	again, err := SignAmino(context.Background(), w, testAddress, doc)
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

func TestWallet_SignDirect(t *testing.T) {
	w := testWallet(t)
	doc := testDirectDoc()

	res, err := w.SignDirect(context.Background(), testAddress, doc)
	require.NoError(t, err)
	assert.Equal(t, doc, res.Signed)
	assert.Equal(t, testDirectSignature, res.Signature.Signature)
	assert.True(t, amino.VerifySecp256r1Signature(&res.Signature, direct.MakeSignBytes(doc)))
}

func TestWallet_AddressMismatch(t *testing.T) {
	w := testWallet(t)
	other := "kontos1jq0w9jzcj97xlu7as8mmgugq0qfrfz0nyws4hu"

	_, err := w.SignAmino(context.Background(), other, testAminoDoc())
	assert.True(t, errors.Is(err, ErrAddressMismatch))
	assert.True(t, errors.AddressMismatchError.Equals(err))

	_, err = w.SignDirect(context.Background(), other, testDirectDoc())
	assert.True(t, errors.Is(err, ErrAddressMismatch))
}

func TestWallet_Canceled(t *testing.T) {
	w := testWallet(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := w.GetAccounts(ctx)
	assert.True(t, errors.InterruptedError.Equals(err))
	_, err = w.SignAmino(ctx, testAddress, testAminoDoc())
	assert.True(t, errors.InterruptedError.Equals(err))
	_, err = w.SignDirect(ctx, testAddress, testDirectDoc())
	assert.True(t, errors.InterruptedError.Equals(err))
}

func TestWallet_NilDoc(t *testing.T) {
	w := testWallet(t)
	ctx := context.Background()

	assert.NotPanics(t, func() {
		res, err := w.SignAmino(ctx, testAddress, nil)
		assert.Nil(t, res)
		assert.True(t, errors.Is(err, amino.ErrInvalidSignDoc))

		dres, err := w.SignDirect(ctx, testAddress, nil)
		assert.Nil(t, dres)
		assert.True(t, errors.Is(err, direct.ErrInvalidSignDoc))
	})
}

func TestNew(t *testing.T) {
	w1 := New("")
	w2 := New("")
	assert.NotEqual(t, w1.Address(), w2.Address())

	res, err := w1.SignDirect(context.Background(), w1.Address(), testDirectDoc())
	require.NoError(t, err)
	assert.True(t, amino.VerifySecp256r1Signature(&res.Signature, direct.MakeSignBytes(testDirectDoc())))
}
