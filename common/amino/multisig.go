package amino

import (
	"encoding/json"
	"strconv"

	"github.com/zkkontos/kontos-go/common/errors"
)

// MultisigThresholdPubkey needs signatures of at least Threshold of its
// members. Members are single keys, so multisig keys nest one level.
type MultisigThresholdPubkey struct {
	Threshold int
	Pubkeys   []SinglePubkey
}

type multisigValue struct {
	Threshold string         `json:"threshold"`
	Pubkeys   []SinglePubkey `json:"pubkeys"`
}

func NewMultisigThresholdPubkey(threshold int, pubkeys []SinglePubkey) (*MultisigThresholdPubkey, error) {
	m := &MultisigThresholdPubkey{
		Threshold: threshold,
		Pubkeys:   append([]SinglePubkey(nil), pubkeys...),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MultisigThresholdPubkey) Validate() error {
	if m.Threshold < 1 {
		return errors.Wrapf(ErrInvalidMultisig, "InvalidThreshold(threshold=%d)", m.Threshold)
	}
	if m.Threshold > len(m.Pubkeys) {
		return errors.Wrapf(ErrInvalidMultisig,
			"ThresholdExceedsKeys(threshold=%d,keys=%d)", m.Threshold, len(m.Pubkeys))
	}
	for i, pk := range m.Pubkeys {
		if !IsSinglePubkey(pk.Pubkey()) {
			return errors.Wrapf(ErrInvalidMultisig, "NotSingleMember(idx=%d,type=%s)", i, pk.Type)
		}
		if err := pk.Validate(); err != nil {
			return errors.Wrapf(err, "InvalidMember(idx=%d)", i)
		}
	}
	return nil
}

// Pubkey returns the wire form with the threshold as a decimal string.
func (m *MultisigThresholdPubkey) Pubkey() (Pubkey, error) {
	value, err := json.Marshal(&multisigValue{
		Threshold: strconv.Itoa(m.Threshold),
		Pubkeys:   m.Pubkeys,
	})
	if err != nil {
		return Pubkey{}, err
	}
	return Pubkey{Type: PubkeyTypeMultisigThreshold, Value: value}, nil
}

// ParseMultisigThresholdPubkey decodes and validates a multisig key.
func ParseMultisigThresholdPubkey(p Pubkey) (*MultisigThresholdPubkey, error) {
	if !IsMultisigThresholdPubkey(p) {
		return nil, errors.Wrapf(ErrInvalidMultisig, "NotMultisigPubkey(type=%s)", p.Type)
	}
	var v multisigValue
	if err := json.Unmarshal(p.Value, &v); err != nil {
		return nil, errors.Wrapf(ErrInvalidMultisig, "InvalidValue(err=%v)", err)
	}
	threshold, err := strconv.ParseUint(v.Threshold, 10, 31)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidMultisig, "InvalidThreshold(threshold=%q)", v.Threshold)
	}
	return NewMultisigThresholdPubkey(int(threshold), v.Pubkeys)
}
