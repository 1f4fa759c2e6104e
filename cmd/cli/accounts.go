package cli

import (
	"context"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zkkontos/kontos-go/common"
	"github.com/zkkontos/kontos-go/common/wallet"
	"github.com/zkkontos/kontos-go/module"
)

func AccountsToTable(accounts []module.AccountData, maxColWidth uint) *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = maxColWidth
	table.AddRow("Algo", "Address", "Pubkey")
	for _, a := range accounts {
		pubkey := TableCellDisplayNil
		if len(a.Pubkey) > 0 {
			pubkey = common.HexBytes(a.Pubkey).String()
		}
		table.AddRow(a.Algo, a.Address, pubkey)
	}
	return table
}

const TableCellDisplayNil = "-"

func NewAccountsCmd(parentCmd *cobra.Command, parentVc *viper.Viper, cfg *Config) *cobra.Command {
	cmd, _ := NewCommand(parentCmd, parentVc, "accounts", "List accounts of a wallet")
	cmd.Args = ArgsWithDefaultErrorFunc(cobra.NoArgs)
	flags := cmd.Flags()
	flags.String("pubkey", "", "Use the wallet of the public key(hex) instead of the keystore")
	flags.String("name", "", "Use the wallet of the account name instead of the keystore")
	flags.Bool("json", false, "Print as JSON")
	flags.Uint("max_width", 80, "Maximum width of a column")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		w, err := walletFromFlags(cmd, cfg)
		if err != nil {
			return err
		}
		accounts, err := w.GetAccounts(context.Background())
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return JsonPrettyPrintln(cmd.OutOrStdout(), accounts)
		}
		maxWidth, _ := cmd.Flags().GetUint("max_width")
		cmd.Println(AccountsToTable(accounts, maxWidth))
		return nil
	}
	return cmd
}

func walletFromFlags(cmd *cobra.Command, cfg *Config) (module.Wallet, error) {
	name, _ := cmd.Flags().GetString("name")
	pubkeyHex, _ := cmd.Flags().GetString("pubkey")
	var pubkey []byte
	if pubkeyHex != "" {
		var err error
		if pubkey, err = common.ParseHexBytes(pubkeyHex); err != nil {
			return nil, err
		}
	}
	switch {
	case name != "":
		return wallet.NewNamedQueryWallet(name, pubkey, cfg.Prefix)
	case pubkey != nil:
		return wallet.NewQueryWallet(pubkey, cfg.Prefix)
	default:
		return cfg.Wallet()
	}
}
