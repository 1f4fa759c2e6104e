package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zkkontos/kontos-go/common"
	"github.com/zkkontos/kontos-go/common/crypto"
)

func NewAddressCmd(parentCmd *cobra.Command, parentVc *viper.Viper, cfg *Config) *cobra.Command {
	rootCmd, _ := NewCommand(parentCmd, parentVc, "address", "Address derivation")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "from-name NAME",
		Short: "Address of an account name",
		Args:  ArgsWithDefaultErrorFunc(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := common.NewNamedAddress(cfg.Prefix, args[0])
			if err != nil {
				return err
			}
			cmd.Println(common.AddressFromName(args[0]))
			cmd.Println(addr)
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "from-pubkey HEX",
		Short: "Account address of a secp256r1 public key",
		Args:  ArgsWithDefaultErrorFunc(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := common.ParseHexBytes(args[0])
			if err != nil {
				return err
			}
			pk, err := crypto.ParsePublicKey(bs)
			if err != nil {
				return err
			}
			cmd.Println(common.NewAccountAddressFromPublicKey(cfg.Prefix, pk))
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "validator TYPE HEX",
		Short: "Consensus address of a validator key(ed25519,secp256k1,bls12377)",
		Args:  ArgsWithDefaultErrorFunc(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			kt, err := common.ParseKeyType(args[0])
			if err != nil {
				return err
			}
			bs, err := common.ParseHexBytes(args[1])
			if err != nil {
				return err
			}
			addr, err := common.PubkeyToAddress(kt, bs)
			if err != nil {
				return err
			}
			cmd.Println(addr)
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "convert ADDRESS",
		Short: "Re-encode a bech32 address with the prefix",
		Args:  ArgsWithDefaultErrorFunc(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := common.ParseAddress(args[0])
			if err != nil {
				return err
			}
			converted, err := addr.WithPrefix(cfg.Prefix)
			if err != nil {
				return err
			}
			cmd.Println(converted)
			return nil
		},
	})
	return rootCmd
}
