package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewKontosCmd(version, build string) (*cobra.Command, *viper.Viper) {
	rootCmd, vc := NewCommand(nil, NewViper(EnvPrefix), "kontos", "Kontos account and signing tool")
	rootCmd.Version = version + "-" + build
	rootCmd.SilenceUsage = true

	cfg := &Config{}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg.FilePath = vc.GetString("config")
		cfg.Interactive = vc.GetBool("interactive")
		if err := MergeWithViper(vc, cfg); err != nil {
			return err
		}
		return cfg.ApplyLog()
	}

	rootPFlags := rootCmd.PersistentFlags()
	rootPFlags.StringP("config", "c", "", "Parsing configuration file")
	rootPFlags.String("prefix", "", "Bech32 prefix of addresses(default:kontos)")
	rootPFlags.String("key_store", "", "KeyStore file for wallet")
	rootPFlags.String("key_password", "", "Password for the KeyStore file")
	rootPFlags.String("key_secret", "", "Secret(password) file for KeyStore")
	rootPFlags.BoolP("interactive", "i", false, "Interactive mode for password input")
	rootPFlags.String("log_level", "info", "Console log level (trace,debug,info,warn,error,fatal,panic)")
	rootPFlags.String("log_file", "", "File to copy logs into")
	BindPFlags(vc, rootPFlags)

	NewKeystoreCmd(rootCmd, vc, cfg)
	NewAccountsCmd(rootCmd, vc, cfg)
	NewSignCmd(rootCmd, vc, cfg)
	NewVerifyCmd(rootCmd, vc, cfg)
	NewAddressCmd(rootCmd, vc, cfg)
	return rootCmd, vc
}
