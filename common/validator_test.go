package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkkontos/kontos-go/common/errors"
)

func TestPubkeyToAddress(t *testing.T) {
	data := make([]byte, 32)
	for i := range data {
		data[i] = byte(i)
	}
	addr, err := PubkeyToAddress(KeyTypeEd25519, data)
	require.NoError(t, err)
	assert.Equal(t, "630DCD2966C4336691125448BBB25B4FF412A49C", addr)

	_, err = PubkeyToAddress(KeyTypeKSecp256r1, mustHex(testPubkey))
	assert.True(t, errors.Is(err, ErrUnsupportedPubkeyType))

	_, err = PubkeyToAddress(KeyTypeSecp256k1, data)
	assert.True(t, errors.Is(err, ErrUnsupportedPubkeyLength))
}

func TestValidatorPubkey_JSON(t *testing.T) {
	var vp ValidatorPubkey
	js := `{"algorithm":"secp256k1","data":"` + testPubkey + `"}`
	require.NoError(t, json.Unmarshal([]byte(js), &vp))
	assert.Equal(t, KeyTypeSecp256k1, vp.Algorithm)

	addr, err := vp.Address()
	require.NoError(t, err)
	assert.Equal(t, "743AFB18BE2B51E46158B49155C66EEA518A47FC", addr)

	bs, err := json.Marshal(&vp)
	require.NoError(t, err)
	assert.JSONEq(t, js, string(bs))
}
