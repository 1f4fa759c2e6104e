package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zkkontos/kontos-go/common"
	"github.com/zkkontos/kontos-go/common/amino"
	"github.com/zkkontos/kontos-go/common/direct"
	"github.com/zkkontos/kontos-go/common/errors"
)

var ErrSignatureNotVerified = errors.NewBase(errors.IllegalArgumentError, "SignatureNotVerified")

// verifySignature checks sig over signBytes and prints the signer address.
func verifySignature(cmd *cobra.Command, cfg *Config, sig *amino.StdSignature, signBytes []byte) error {
	if err := amino.ValidateStdSignature(sig); err != nil {
		return err
	}
	if !amino.VerifySecp256r1Signature(sig, signBytes) {
		return errors.WithStack(ErrSignatureNotVerified)
	}
	raw, err := amino.RawAddressOf(sig.PubKey)
	if err != nil {
		return err
	}
	addr, err := common.NewBech32Address(cfg.Prefix, raw)
	if err != nil {
		return err
	}
	cmd.Printf("SUCCESS signer=%s\n", addr)
	return nil
}

func NewVerifyCmd(parentCmd *cobra.Command, parentVc *viper.Viper, cfg *Config) *cobra.Command {
	rootCmd, _ := NewCommand(parentCmd, parentVc, "verify", "Verify the output of sign")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "amino FILE",
		Short: "Verify an amino sign response in JSON, '-' for stdin",
		Args:  ArgsWithDefaultErrorFunc(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			var res amino.AminoSignResponse
			if err := json.Unmarshal(bs, &res); err != nil {
				return errors.Wrapf(amino.ErrInvalidSignature, "InvalidJSON(err=%v)", err)
			}
			signBytes, err := amino.SerializeSignDoc(&res.Signed)
			if err != nil {
				return err
			}
			return verifySignature(cmd, cfg, &res.Signature, signBytes)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "direct FILE",
		Short: "Verify a direct sign response in JSON, '-' for stdin",
		Args:  ArgsWithDefaultErrorFunc(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			var res direct.DirectSignResponse
			if err := json.Unmarshal(bs, &res); err != nil {
				return errors.Wrapf(amino.ErrInvalidSignature, "InvalidJSON(err=%v)", err)
			}
			if res.Signed == nil {
				return errors.Wrap(direct.ErrInvalidSignDoc, "NoSignedDoc")
			}
			return verifySignature(cmd, cfg, &res.Signature, direct.MakeSignBytes(res.Signed))
		},
	})
	return rootCmd
}
