package crypto

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkkontos/kontos-go/common/errors"
)

const (
	sampleFixed = "efd48b2aacb6a8fd1140dd9cd45e81d69d2c877b56aaf991c34d0ea84eaf3716" +
		"0834e36ad29a83bf2bc9385e491d6099c8fdf9d1ed67aa7ea5f51f93782857a9"
	sampleDer = "3045022100efd48b2aacb6a8fd1140dd9cd45e81d69d2c877b56aaf991c34d0ea84eaf3716" +
		"02200834e36ad29a83bf2bc9385e491d6099c8fdf9d1ed67aa7ea5f51f93782857a9"
)

func TestSignature_FixedLength(t *testing.T) {
	sig, err := SignatureFromFixedLength(mustDecode(sampleFixed))
	require.NoError(t, err)
	assert.Equal(t, sampleFixed, hex.EncodeToString(sig.ToFixedLength()))
	assert.Equal(t, "0x"+sampleFixed, sig.String())

	assert.Len(t, sig.R(0), 32)
	assert.Len(t, sig.S(0), 32)
	assert.Equal(t, byte(0x08), sig.S(0)[0])
	assert.Len(t, sig.R(40), 40)
	assert.Equal(t, make([]byte, 8), sig.R(40)[:8])

	for _, l := range []int{0, 63, 65} {
		_, err = SignatureFromFixedLength(make([]byte, l))
		assert.True(t, errors.Is(err, ErrInvalidSignatureLength), "len=%d", l)
	}
	_, err = SignatureFromFixedLength(make([]byte, 64))
	assert.True(t, errors.Is(err, ErrInvalidSignature))
}

func TestSignature_Der(t *testing.T) {
	sig, err := SignatureFromFixedLength(mustDecode(sampleFixed))
	require.NoError(t, err)
	assert.Equal(t, sampleDer, hex.EncodeToString(sig.ToDer()))

	sig2, err := SignatureFromDer(mustDecode(sampleDer))
	require.NoError(t, err)
	assert.True(t, sig.Equal(sig2))

	for _, bad := range []string{
		"",
		"3000",
		sampleDer + "00",
		"30060201000201ff",
		"3006020101020100",
	} {
		_, err := SignatureFromDer(mustDecode(bad))
		assert.True(t, errors.Is(err, ErrInvalidSignature), "der=%s", bad)
	}
}

func TestNewSignature(t *testing.T) {
	sig, err := NewSignature([]byte{0x01}, []byte{0x02, 0x03})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, sig.R(0))
	assert.Equal(t, []byte{0x02, 0x03}, sig.S(0))

	_, err = NewSignature([]byte{0x00, 0x01}, []byte{0x01})
	assert.True(t, errors.Is(err, ErrInvalidSignature))
	_, err = NewSignature([]byte{0x01}, make([]byte, 33))
	assert.True(t, errors.Is(err, ErrInvalidSignature))
	_, err = NewSignature(nil, []byte{0x01})
	assert.Error(t, err)
}

func TestExtendedSignature_FixedLength(t *testing.T) {
	hash := SHA256Sum([]byte("sample"))
	sig, err := CreateSignature(hash, rfcPrivateKey)
	require.NoError(t, err)

	raw := sig.ToFixedLength()
	assert.Len(t, raw, SignatureLenRawWithV)
	assert.Equal(t, sampleFixed+"01", hex.EncodeToString(raw))

	sig2, err := ExtendedSignatureFromFixedLength(raw)
	require.NoError(t, err)
	assert.Equal(t, sig.Recovery, sig2.Recovery)
	assert.True(t, sig.Signature.Equal(&sig2.Signature))

	_, err = ExtendedSignatureFromFixedLength(raw[:64])
	assert.True(t, errors.Is(err, ErrInvalidSignatureLength))
}

func TestTrimRecoveryByte(t *testing.T) {
	raw := mustDecode(sampleFixed + "01")
	b, err := TrimRecoveryByte(raw)
	require.NoError(t, err)
	assert.Equal(t, raw[:64], b)

	b, err = TrimRecoveryByte(raw[:64])
	require.NoError(t, err)
	assert.Equal(t, raw[:64], b)

	_, err = TrimRecoveryByte(raw[:63])
	assert.True(t, errors.InvalidEncodingLengthError.Equals(err))
}

func TestSignature_ToLowS(t *testing.T) {
	sig, err := CreateSignature(SHA256Sum([]byte("sample")), rfcPrivateKey)
	require.NoError(t, err)
	assert.True(t, sig.ToLowS() == &sig.Signature)

	high := &Signature{r: sig.r, s: new(big.Int).Sub(Secp256r1N, sig.s)}
	low := high.ToLowS()
	assert.True(t, low.IsLowS())
	assert.True(t, low.Equal(&sig.Signature))
}
