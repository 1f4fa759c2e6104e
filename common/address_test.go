package common

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkkontos/kontos-go/common/crypto"
	"github.com/zkkontos/kontos-go/common/errors"
)

const (
	testPubkey     = "031eebbfbdc9417ba609c9dff678f6a0427ec264c24436512abc1ffeec30105e0d"
	testRawAddress = "743afb18be2b51e46158b49155c66eea518a47fc"
	testAddress    = "kontos1wsa0kx979dg7gc2ckjg4t3nwafgc53lujw7pqp"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestAddress_FromPubkey(t *testing.T) {
	raw, err := RawAddressFromPubkey(KeyTypeKSecp256r1, mustHex(testPubkey))
	require.NoError(t, err)
	assert.Equal(t, testRawAddress, hex.EncodeToString(raw))

	addr, err := NewBech32Address("", raw)
	require.NoError(t, err)
	assert.Equal(t, DefaultPrefix, addr.Prefix())
	assert.Equal(t, testAddress, addr.String())

	pk, err := crypto.ParsePublicKey(mustHex(testPubkey))
	require.NoError(t, err)
	assert.True(t, addr.Equal(NewAccountAddressFromPublicKey(DefaultPrefix, pk)))
}

func TestAddress_Prefixes(t *testing.T) {
	raw := mustHex(testRawAddress)
	a1 := MustNewBech32Address("kontos", raw)
	a2, err := a1.WithPrefix("cosmos")
	require.NoError(t, err)

	assert.Equal(t, "cosmos1wsa0kx979dg7gc2ckjg4t3nwafgc53luwgvupa", a2.String())
	assert.NotEqual(t, a1.String(), a2.String())
	assert.False(t, a1.Equal(a2))

	p1, err := ParseAddress(a1.String())
	require.NoError(t, err)
	p2, err := ParseAddress(a2.String())
	require.NoError(t, err)
	assert.Equal(t, p1.Bytes(), p2.Bytes())
	assert.Equal(t, raw, p1.Bytes())
	assert.Equal(t, "cosmos", p2.Prefix())
}

func TestAddress_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		raw, err := RawAddressFromPubkey(KeyTypeKSecp256r1, mustHex(testPubkey))
		require.NoError(t, err)
		assert.Equal(t, testAddress, MustNewBech32Address(DefaultPrefix, raw).String())
	}
}

func TestParseAddress_Invalid(t *testing.T) {
	for _, s := range []string{
		"",
		"kontos",
		"kontos1wsa0kx979dg7gc2ckjg4t3nwafgc53lujw7pqq",
		"Kontos1wsa0kx979dg7gc2ckjg4t3nwafgc53lujw7pqp",
		"0x743afb18be2b51e46158b49155c66eea518a47fc",
	} {
		_, err := ParseAddress(s)
		assert.True(t, errors.Is(err, ErrInvalidAddress), "addr=%q", s)
	}
	_, err := NewBech32Address(DefaultPrefix, nil)
	assert.True(t, errors.IllegalArgumentError.Equals(err))
}

func TestAddress_JSON(t *testing.T) {
	addr, err := ParseAddress(testAddress)
	require.NoError(t, err)

	bs, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, `"`+testAddress+`"`, string(bs))

	var addr2 Address
	require.NoError(t, json.Unmarshal(bs, &addr2))
	assert.True(t, addr.Equal(&addr2))

	assert.Error(t, json.Unmarshal([]byte(`"kontos1xyz"`), &addr2))
	assert.Error(t, json.Unmarshal([]byte(`12`), &addr2))
}

func TestAddressFromName(t *testing.T) {
	cases := []struct {
		name    string
		hex     string
		address string
	}{
		{"alice", "0x901ee2c858917c6ff3dd81f7b4710078123489f3", "kontos1jq0w9jzcj97xlu7as8mmgugq0qfrfz0nyws4hu"},
		{"kontos", "0x86fc1a4ee594b26b34bc07be4cf91ec1f832c5c3", "kontos1sm7p5nh9jjexkd9uq7lye7g7c8ur93wrvd2mnd"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.hex, AddressFromName(c.name))
			assert.Len(t, RawAddressFromName(c.name), RawAddressBytes)

			addr, err := NewNamedAddress("", c.name)
			require.NoError(t, err)
			assert.Equal(t, c.address, addr.String())
		})
	}
}
