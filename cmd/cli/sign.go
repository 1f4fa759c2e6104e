package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zkkontos/kontos-go/common/amino"
	"github.com/zkkontos/kontos-go/common/direct"
	"github.com/zkkontos/kontos-go/common/errors"
	"github.com/zkkontos/kontos-go/common/log"
	"github.com/zkkontos/kontos-go/module"
)

func printOrSave(cmd *cobra.Command, v interface{}) error {
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := JsonPrettySaveFile(out, 0644, v); err != nil {
			return err
		}
		log.Infof("Save signed document to %s", out)
		return nil
	}
	return JsonPrettyPrintln(cmd.OutOrStdout(), v)
}

func signerAddress(cmd *cobra.Command, w module.Wallet) string {
	if s, _ := cmd.Flags().GetString("signer"); s != "" {
		return s
	}
	return w.Address()
}

func NewSignCmd(parentCmd *cobra.Command, parentVc *viper.Viper, cfg *Config) *cobra.Command {
	rootCmd, _ := NewCommand(parentCmd, parentVc, "sign", "Sign a document with the keystore")
	pFlags := rootCmd.PersistentFlags()
	pFlags.String("signer", "", "Signer address(default:address of the keystore)")
	pFlags.StringP("out", "o", "", "Output file path of the signed document")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "amino FILE",
		Short: "Sign a StdSignDoc in JSON, '-' for stdin",
		Args:  ArgsWithDefaultErrorFunc(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			var doc amino.StdSignDoc
			if err := json.Unmarshal(bs, &doc); err != nil {
				return errors.Wrapf(amino.ErrInvalidSignDoc, "InvalidJSON(err=%v)", err)
			}
			if err := amino.ValidateSignDoc(&doc); err != nil {
				return err
			}
			w, err := cfg.Wallet()
			if err != nil {
				return err
			}
			res, err := w.SignAmino(context.Background(), signerAddress(cmd, w), &doc)
			if err != nil {
				return err
			}
			return printOrSave(cmd, res)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "direct FILE",
		Short: "Sign a direct SignDoc in JSON, '-' for stdin",
		Args:  ArgsWithDefaultErrorFunc(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			var doc direct.SignDoc
			if err := json.Unmarshal(bs, &doc); err != nil {
				return errors.Wrapf(direct.ErrInvalidSignDoc, "InvalidJSON(err=%v)", err)
			}
			if doc.ChainID == "" {
				return errors.Wrap(direct.ErrInvalidSignDoc, "NoChainID")
			}
			w, err := cfg.Wallet()
			if err != nil {
				return err
			}
			res, err := w.SignDirect(context.Background(), signerAddress(cmd, w), &doc)
			if err != nil {
				return err
			}
			return printOrSave(cmd, res)
		},
	})
	return rootCmd
}
