package common

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/zkkontos/kontos-go/common/errors"
)

// RawHexBytes is shown as hex without prefix in JSON.
type RawHexBytes []byte

func (rh RawHexBytes) MarshalJSON() ([]byte, error) {
	if rh == nil {
		return []byte("null"), nil
	}
	return json.Marshal(hex.EncodeToString(rh))
}

func (rh *RawHexBytes) UnmarshalJSON(b []byte) error {
	bs, err := unmarshalHex(b, false)
	if err != nil {
		return err
	}
	*rh = bs
	return nil
}

func (rh RawHexBytes) String() string {
	if rh == nil {
		return "null"
	}
	return hex.EncodeToString(rh)
}

// HexBytes is shown as 0x prefixed hex in JSON.
type HexBytes []byte

func (hs HexBytes) MarshalJSON() ([]byte, error) {
	if hs == nil {
		return []byte("null"), nil
	}
	return json.Marshal(hs.String())
}

func (hs *HexBytes) UnmarshalJSON(b []byte) error {
	bs, err := unmarshalHex(b, true)
	if err != nil {
		return err
	}
	*hs = bs
	return nil
}

func (hs HexBytes) String() string {
	if hs == nil {
		return "null"
	}
	return "0x" + hex.EncodeToString(hs)
}

func unmarshalHex(b []byte, prefixed bool) ([]byte, error) {
	var os *string
	if err := json.Unmarshal(b, &os); err != nil {
		return nil, err
	}
	if os == nil {
		return nil, nil
	}
	s := *os
	if prefixed {
		s = strings.TrimPrefix(s, "0x")
	}
	bs, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.IllegalArgumentError.Wrapf(err, "InvalidHex(%q)", *os)
	}
	return bs, nil
}

// ParseHexBytes decodes hex with or without 0x prefix.
func ParseHexBytes(s string) ([]byte, error) {
	bs, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, errors.IllegalArgumentError.Wrapf(err, "InvalidHex(%q)", s)
	}
	return bs, nil
}
