package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zkkontos/kontos-go/common"
	"github.com/zkkontos/kontos-go/common/errors"
	"github.com/zkkontos/kontos-go/common/wallet"
)

func NewKeystoreCmd(parentCmd *cobra.Command, parentVc *viper.Viper, cfg *Config) *cobra.Command {
	rootCmd, _ := NewCommand(parentCmd, parentVc, "keystore", "Keystore manipulation")

	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate keystore",
		Args:  ArgsWithDefaultErrorFunc(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			pb, err := cfg.Password("Password: ")
			if err != nil {
				return err
			}
			if len(pb) == 0 {
				return errors.IllegalArgumentError.New("EmptyPassword")
			}
			w := wallet.New(cfg.Prefix)
			ks, err := wallet.KeyStoreFromWallet(w, pb)
			if err != nil {
				return errors.Wrapf(err, "fail to generate keystore err=%v", err)
			}
			if err := os.WriteFile(out, ks, 0600); err != nil {
				return errors.Errorf("fail to write keystore err=%+v", err)
			}
			cmd.Printf("%s ==> %s\n", w.Address(), out)
			return nil
		},
	}
	genCmd.Flags().StringP("out", "o", "keystore.json", "Output file path")
	rootCmd.AddCommand(genCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "verify FILE...",
		Short: "Verify keystore with the password",
		Args:  ArgsWithDefaultErrorFunc(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			pb, err := cfg.Password("Password: ")
			if err != nil {
				return err
			}
			failed := 0
			for _, arg := range args {
				kb, err := os.ReadFile(arg)
				if err != nil {
					return errors.Errorf("fail to open keystore file=%s err=%+v", arg, err)
				}
				if w, err := wallet.NewFromKeyStore(kb, pb, cfg.Prefix); err != nil {
					cmd.Printf("%s FAIL err=%v\n", arg, err)
					failed++
				} else {
					cmd.Printf("%s SUCCESS %s\n", arg, w.Address())
				}
			}
			if failed > 0 {
				return errors.Errorf("%d keystore(s) failed", failed)
			}
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key of the keystore",
		Args:  ArgsWithDefaultErrorFunc(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := cfg.Wallet()
			if err != nil {
				return err
			}
			cmd.Println(common.HexBytes(w.PublicKey()).String())
			return nil
		},
	})
	return rootCmd
}
