package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Code classifies a failure. Codes are grouped in segments of CodeSegment
// so a caller can match a whole family with Code.Segment.
type Code int

const CodeSegment = 1000

const (
	CodeGeneral Code = (iota + 1) * CodeSegment
	CodeCrypto
	CodeWallet
	CodeCritical
)

const (
	Success      Code = 0
	UnknownError Code = CodeGeneral + iota
	IllegalArgumentError
	InterruptedError
)

// Failures of key material, hashes, encodings and key types.
const (
	InvalidKeyMaterialError Code = CodeCrypto + iota
	InvalidHashLengthError
	InvalidEncodingLengthError
	UnsupportedPubkeyTypeError
)

// Failures of the signer against its caller.
const (
	AddressMismatchError Code = CodeWallet + iota
	MissingPrivateKeyError
)

// Broken internal invariants. They are bugs, not caller mistakes.
const (
	CriticalFormatError Code = CodeCritical + iota
	CriticalInvariantError
)

var codeNames = map[Code]string{
	Success:                    "Success",
	UnknownError:               "Unknown",
	IllegalArgumentError:       "IllegalArgument",
	InterruptedError:           "Interrupted",
	InvalidKeyMaterialError:    "InvalidKeyMaterial",
	InvalidHashLengthError:     "InvalidHashLength",
	InvalidEncodingLengthError: "InvalidEncodingLength",
	UnsupportedPubkeyTypeError: "UnsupportedPubkeyType",
	AddressMismatchError:       "AddressMismatch",
	MissingPrivateKeyError:     "MissingPrivateKey",
	CriticalFormatError:        "CriticalFormat",
	CriticalInvariantError:     "CriticalInvariant",
}

var ErrIllegalArgument = NewBase(IllegalArgumentError, "IllegalArgument")

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Segment returns the first code of the segment c belongs to.
func (c Code) Segment() Code {
	return c / CodeSegment * CodeSegment
}

func (c Code) IsCritical() bool {
	return c.Segment() == CodeCritical
}

func IsCritical(e error) bool {
	return CodeOf(e).IsCritical()
}

func (c Code) New(msg string) error {
	return &codedError{code: c, error: errors.New(msg)}
}

func (c Code) Errorf(f string, args ...interface{}) error {
	return &codedError{code: c, error: errors.Errorf(f, args...)}
}

// Wrap returns an error of code c caused by e.
func (c Code) Wrap(e error, msg string) error {
	return &wrappedError{error: errors.New(msg), code: c, origin: e}
}

func (c Code) Wrapf(e error, f string, args ...interface{}) error {
	return &wrappedError{error: errors.Errorf(f, args...), code: c, origin: e}
}

func (c Code) Equals(e error) bool {
	return e != nil && CodeOf(e) == c
}

// New makes an error with a stack and without a code.
func New(msg string) error {
	return errors.New(msg)
}

func Errorf(f string, args ...interface{}) error {
	return errors.Errorf(f, args...)
}

func WithStack(e error) error {
	return errors.WithStack(e)
}

// baseError is a sentinel. Wrap it to add detail and compare with Is.
type baseError struct {
	code Code
	msg  string
}

func (e *baseError) Error() string {
	return e.msg
}

func (e *baseError) ErrorCode() Code {
	return e.code
}

func (e *baseError) Format(f fmt.State, c rune) {
	switch c {
	case 'v', 's', 'q':
		fmt.Fprintf(f, "E%04d:%s", e.code, e.msg)
	}
}

func NewBase(code Code, msg string) *baseError {
	return &baseError{code, msg}
}

type codedError struct {
	code Code
	error
}

func (e *codedError) Format(f fmt.State, c rune) {
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "E%04d:%+v", e.code, e.error)
		return
	}
	fmt.Fprintf(f, "E%04d:%s", e.code, e.Error())
}

func (e *codedError) ErrorCode() Code {
	return e.code
}

func (e *codedError) Unwrap() error {
	return e.error
}

// messageError adds a message to origin and keeps its code.
type messageError struct {
	error
	origin error
}

func (e *messageError) Format(f fmt.State, c rune) {
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "%+v\nWrapping %+v", e.error, e.origin)
		return
	}
	fmt.Fprintf(f, "%s", e.error)
}

func (e *messageError) Unwrap() error {
	return e.origin
}

func Wrap(e error, msg string) error {
	return &messageError{error: errors.New(msg), origin: e}
}

func Wrapf(e error, f string, args ...interface{}) error {
	return &messageError{error: errors.Errorf(f, args...), origin: e}
}

// wrappedError replaces the code of origin.
type wrappedError struct {
	error
	code   Code
	origin error
}

func (e *wrappedError) Format(f fmt.State, c rune) {
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "E%04d:%+v\nWrapping %+v", e.code, e.error, e.origin)
		return
	}
	fmt.Fprintf(f, "E%04d:%s", e.code, e.error)
}

func (e *wrappedError) Unwrap() error {
	return e.origin
}

func (e *wrappedError) ErrorCode() Code {
	return e.code
}

type coder interface {
	ErrorCode() Code
}

func unwrap(err error) error {
	switch obj := err.(type) {
	case interface{ Unwrap() error }:
		return obj.Unwrap()
	case interface{ Cause() error }:
		return obj.Cause()
	default:
		return nil
	}
}

// CodeOf returns the code of the outermost coded error in the chain of e.
func CodeOf(e error) Code {
	if e == nil {
		return Success
	}
	for err := e; err != nil; err = unwrap(err) {
		if c, ok := err.(coder); ok {
			return c.ErrorCode()
		}
	}
	return UnknownError
}

// Is checks whether err is caused by the target.
func Is(err, target error) bool {
	if target == nil {
		return err == target
	}
	isComparable := reflect.TypeOf(target).Comparable()
	for ; err != nil; err = unwrap(err) {
		if isComparable && err == target {
			return true
		}
		if x, ok := err.(interface{ Is(error) bool }); ok && x.Is(target) {
			return true
		}
	}
	return false
}
