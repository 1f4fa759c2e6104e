package direct

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/zkkontos/kontos-go/common/errors"
)

func testSignDoc() *SignDoc {
	return MakeSignDoc([]byte{0x0a, 0x0b}, []byte{0x12, 0x13}, "kontos-1", 300)
}

func TestMakeSignBytes(t *testing.T) {
	bs := MakeSignBytes(testSignDoc())
	assert.Equal(t, "0a020a0b120212131a086b6f6e746f732d3120ac02", hex.EncodeToString(bs))

	assert.Empty(t, MakeSignBytes(&SignDoc{}))
	assert.Equal(t, []byte{0x1a, 0x01, 'c'}, MakeSignBytes(&SignDoc{ChainID: "c"}))
}

func TestParseSignBytes(t *testing.T) {
	doc := testSignDoc()
	parsed, err := ParseSignBytes(MakeSignBytes(doc))
	require.NoError(t, err)
	assert.Equal(t, doc, parsed)

	// unknown fields are skipped
	bs := protowire.AppendTag(MakeSignBytes(doc), 9, protowire.VarintType)
	bs = protowire.AppendVarint(bs, 1)
	parsed, err = ParseSignBytes(bs)
	require.NoError(t, err)
	assert.Equal(t, doc, parsed)

	for _, bad := range [][]byte{
		{0x0a},
		{0x0a, 0x05, 0x01},
		{0x20, 0xff},
		{0x00},
	} {
		_, err := ParseSignBytes(bad)
		assert.True(t, errors.Is(err, ErrInvalidSignDoc), "bytes=%x", bad)
	}
}

func TestSignDoc_JSON(t *testing.T) {
	bs, err := json.Marshal(testSignDoc())
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"body_bytes":"Cgs=","auth_info_bytes":"EhM=","chain_id":"kontos-1","account_number":"300"}`,
		string(bs))

	var doc SignDoc
	require.NoError(t, json.Unmarshal(bs, &doc))
	assert.Equal(t, testSignDoc(), &doc)
}
