package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexBytes_JSON(t *testing.T) {
	var hb HexBytes
	assert.NoError(t, json.Unmarshal([]byte(`"0x0102"`), &hb))
	assert.Equal(t, HexBytes{1, 2}, hb)
	assert.Equal(t, "0x0102", hb.String())

	bs, err := json.Marshal(hb)
	assert.NoError(t, err)
	assert.Equal(t, `"0x0102"`, string(bs))

	assert.NoError(t, json.Unmarshal([]byte(`null`), &hb))
	assert.Nil(t, hb)
	assert.Error(t, json.Unmarshal([]byte(`"0xzz"`), &hb))

	var rh RawHexBytes
	assert.NoError(t, json.Unmarshal([]byte(`"0a0b"`), &rh))
	assert.Equal(t, RawHexBytes{10, 11}, rh)
	bs, err = json.Marshal(rh)
	assert.NoError(t, err)
	assert.Equal(t, `"0a0b"`, string(bs))
}

func TestParseHexBytes(t *testing.T) {
	bs, err := ParseHexBytes("0xff00")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0}, bs)

	bs, err = ParseHexBytes("ff00")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0}, bs)

	_, err = ParseHexBytes("0xf")
	assert.Error(t, err)
}
