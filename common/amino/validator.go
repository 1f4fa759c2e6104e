package amino

import (
	"regexp"
	"strings"

	"gopkg.in/go-playground/validator.v9"

	"github.com/zkkontos/kontos-go/common"
	"github.com/zkkontos/kontos-go/common/errors"
)

var (
	uintRegex  = regexp.MustCompile("^(0|[1-9][0-9]*)$")
	denomRegex = regexp.MustCompile("^[a-zA-Z][a-zA-Z0-9/:._-]{2,127}$")
)

type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	v := &Validator{
		validator: validator.New(),
	}

	v.RegisterAlias("optional", "omitempty")

	v.RegisterValidation("t_uint", isUint)
	v.RegisterValidation("t_denom", isDenom)
	v.RegisterValidation("t_bech32", isBech32Address)
	v.RegisterValidation("t_pubkey_tag", isKnownPubkeyTag)
	v.RegisterValidation("t_lower", isLower)

	return v
}

func (v *Validator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func (v *Validator) RegisterValidation(tag string, fn validator.Func) {
	_ = v.validator.RegisterValidation(tag, fn)
}

func (v *Validator) RegisterAlias(alias string, tags string) {
	v.validator.RegisterAlias(alias, tags)
}

func isUint(fl validator.FieldLevel) bool {
	return uintRegex.MatchString(fl.Field().String())
}

func isDenom(fl validator.FieldLevel) bool {
	return denomRegex.MatchString(fl.Field().String())
}

func isBech32Address(fl validator.FieldLevel) bool {
	_, err := common.ParseAddress(fl.Field().String())
	return err == nil
}

func isLower(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == strings.ToLower(s)
}

func isKnownPubkeyTag(fl validator.FieldLevel) bool {
	tag := fl.Field().String()
	_, ok := singleKeys[tag]
	return ok || tag == PubkeyTypeMultisigThreshold
}

var defaultValidator = NewValidator()

// ValidateSignDoc checks the fields of doc before it is signed.
func ValidateSignDoc(doc *StdSignDoc) error {
	if doc == nil {
		return errors.Wrap(ErrInvalidSignDoc, "InvalidSignDoc(nil)")
	}
	if err := defaultValidator.Validate(doc); err != nil {
		return errors.Wrapf(ErrInvalidSignDoc, "InvalidSignDoc(err=%v)", err)
	}
	return nil
}

// ValidateStdSignature checks the tag and encodings of sig.
func ValidateStdSignature(sig *StdSignature) error {
	if sig == nil {
		return errors.Wrap(ErrInvalidSignature, "InvalidStdSignature(nil)")
	}
	if err := defaultValidator.Validate(sig); err != nil {
		return errors.Wrapf(ErrInvalidSignature, "InvalidStdSignature(err=%v)", err)
	}
	return nil
}
