package wallet

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"io"

	"github.com/gofrs/uuid"
	"golang.org/x/crypto/scrypt"

	"github.com/zkkontos/kontos-go/common"
	"github.com/zkkontos/kontos-go/common/crypto"
	"github.com/zkkontos/kontos-go/common/errors"
	"github.com/zkkontos/kontos-go/common/log"
	"github.com/zkkontos/kontos-go/module"
)

const (
	coinTypeKontos  = "kontos"
	cipherAES128CTR = "aes-128-ctr"
	kdfScrypt       = "scrypt"
	keyStoreVersion = 3
)

type AES128CTRParams struct {
	IV common.RawHexBytes `json:"iv"`
}

type ScryptParams struct {
	DKLen int                `json:"dklen"`
	N     int                `json:"n"`
	R     int                `json:"r"`
	P     int                `json:"p"`
	Salt  common.RawHexBytes `json:"salt"`
}

// scryptN is the cost of new key stores.
var scryptN = 1 << 16

func (p *ScryptParams) Init() error {
	salt := make([]byte, 8)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return err
	}
	p.DKLen = 32
	p.P = 1
	p.R = 8
	p.N = scryptN
	p.Salt = salt
	return nil
}

func (p *ScryptParams) Key(pw []byte) ([]byte, error) {
	if p.DKLen < 32 {
		return nil, errors.Wrapf(ErrInvalidKeyStore, "InvalidDKLen(dklen=%d)", p.DKLen)
	}
	return scrypt.Key(pw, p.Salt, p.N, p.R, p.P, p.DKLen)
}

type CryptoData struct {
	Cipher       string             `json:"cipher"`
	CipherParams json.RawMessage    `json:"cipherparams"`
	CipherText   common.RawHexBytes `json:"ciphertext"`
	KDF          string             `json:"kdf"`
	KDFParams    json.RawMessage    `json:"kdfparams"`
	MAC          common.RawHexBytes `json:"mac"`
}

type KeyStoreData struct {
	Address  *common.Address `json:"address"`
	ID       string          `json:"id"`
	Version  int             `json:"version"`
	CoinType string          `json:"coinType"`
	Crypto   CryptoData      `json:"crypto"`
}

func EncryptKeyAsKeyStore(s *crypto.PrivateKey, pw []byte, prefix string) ([]byte, error) {
	var ks KeyStoreData
	var c AES128CTRParams
	var k ScryptParams

	if err := k.Init(); err != nil {
		return nil, err
	}
	key, err := k.Key(pw)
	if err != nil {
		return nil, err
	}
	ks.Crypto.KDF = kdfScrypt
	ks.Crypto.KDFParams, err = json.Marshal(&k)
	if err != nil {
		return nil, err
	}

	b, err := aes.NewCipher(key[0:16])
	if err != nil {
		return nil, err
	}
	c.IV = make([]byte, b.BlockSize())
	_, err = io.ReadFull(rand.Reader, c.IV)
	if err != nil {
		return nil, err
	}
	secret := s.Bytes()
	cipherText := make([]byte, len(secret))
	enc := cipher.NewCTR(b, c.IV)
	enc.XORKeyStream(cipherText, secret)

	ks.Crypto.Cipher = cipherAES128CTR
	ks.Crypto.CipherParams, err = json.Marshal(&c)
	if err != nil {
		return nil, err
	}
	ks.Crypto.CipherText = cipherText
	ks.Crypto.MAC = crypto.SHA3SumKeccak256(key[16:32], cipherText)
	ks.Version = keyStoreVersion
	ks.CoinType = coinTypeKontos
	ks.ID = uuid.Must(uuid.NewV4()).String()
	ks.Address = common.NewAccountAddressFromPublicKey(prefix, s.PublicKey())

	return json.Marshal(&ks)
}

func parseKeyStore(data []byte) (*KeyStoreData, error) {
	var ksData KeyStoreData
	if err := json.Unmarshal(data, &ksData); err != nil {
		return nil, errors.Wrapf(ErrInvalidKeyStore, "InvalidJSON(err=%v)", err)
	}
	if ksData.CoinType != coinTypeKontos {
		return nil, errors.Wrapf(ErrInvalidKeyStore, "InvalidCoinType(coin=%s)", ksData.CoinType)
	}
	if ksData.Address == nil {
		return nil, errors.Wrap(ErrInvalidKeyStore, "NoAddress")
	}
	return &ksData, nil
}

func DecryptKeyStore(data, pw []byte) (*crypto.PrivateKey, error) {
	ksData, err := parseKeyStore(data)
	if err != nil {
		return nil, err
	}

	if ksData.Crypto.Cipher != cipherAES128CTR {
		return nil, errors.Wrapf(ErrInvalidKeyStore, "UnsupportedCipher(cipher=%s)",
			ksData.Crypto.Cipher)
	}
	var cipherParams AES128CTRParams
	if err := json.Unmarshal(ksData.Crypto.CipherParams, &cipherParams); err != nil {
		return nil, errors.Wrapf(ErrInvalidKeyStore, "InvalidCipherParams(err=%v)", err)
	}

	if ksData.Crypto.KDF != kdfScrypt {
		return nil, errors.Wrapf(ErrInvalidKeyStore, "UnsupportedKDF(kdf=%s)", ksData.Crypto.KDF)
	}
	var kdfParams ScryptParams
	if err := json.Unmarshal(ksData.Crypto.KDFParams, &kdfParams); err != nil {
		return nil, errors.Wrapf(ErrInvalidKeyStore, "InvalidKDFParams(err=%v)", err)
	}

	key, err := kdfParams.Key(pw)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidKeyStore, "KDFFailure(err=%v)", err)
	}

	cipheredBytes := []byte(ksData.Crypto.CipherText)
	mac := crypto.SHA3SumKeccak256(key[16:32], cipheredBytes)
	if !bytes.Equal(mac, ksData.Crypto.MAC) {
		return nil, errors.WithStack(ErrInvalidPassword)
	}

	block, err := aes.NewCipher(key[0:16])
	if err != nil {
		return nil, err
	}
	if len(cipherParams.IV) != block.BlockSize() {
		return nil, errors.Wrapf(ErrInvalidKeyStore, "InvalidIV(len=%d)", len(cipherParams.IV))
	}

	secretBytes := make([]byte, len(cipheredBytes))

	stream := cipher.NewCTR(block, cipherParams.IV)
	stream.XORKeyStream(secretBytes, cipheredBytes)

	secret, err := crypto.ParsePrivateKey(secretBytes)
	if err != nil {
		return nil, err
	}
	address := common.NewAccountAddressFromPublicKey(ksData.Address.Prefix(), secret.PublicKey())
	if !address.Equal(ksData.Address) {
		log.Warnf("Recovered address %s != keyStore address %s",
			address.String(), ksData.Address.String())
	}
	return secret, nil
}

func ReadAddressFromKeyStore(data []byte) (*common.Address, error) {
	ksData, err := parseKeyStore(data)
	if err != nil {
		return nil, err
	}
	return ksData.Address, nil
}

// NewFromKeyStore opens a key store as a signing wallet. An empty prefix
// keeps the prefix of the stored address.
func NewFromKeyStore(data, pw []byte, prefix string) (module.Signer, error) {
	secret, err := DecryptKeyStore(data, pw)
	if err != nil {
		return nil, err
	}
	if len(prefix) == 0 {
		if addr, err := ReadAddressFromKeyStore(data); err == nil {
			prefix = addr.Prefix()
		}
	}
	return NewFromPrivateKey(secret, prefix), nil
}

// KeyStoreFromWallet returns nil if w doesn't keep its key in memory.
func KeyStoreFromWallet(w module.Wallet, pw []byte) ([]byte, error) {
	s, ok := w.(*softwareWallet)
	if ok {
		return EncryptKeyAsKeyStore(s.skey, pw, s.address.Prefix())
	} else {
		return nil, nil
	}
}
