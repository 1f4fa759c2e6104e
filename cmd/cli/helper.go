package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zkkontos/kontos-go/common/errors"
)

const EnvPrefix = "KONTOS"

// NewCommand makes a sub command whose viper inherits the env prefix and the
// persistent flags of the parent.
func NewCommand(parentCmd *cobra.Command, parentVc *viper.Viper, use, short string) (*cobra.Command, *viper.Viper) {
	c := &cobra.Command{Use: use, Short: short}
	c.SetFlagErrorFunc(DefaultFlagErrorFunc)
	if parentCmd != nil {
		parentCmd.AddCommand(c)
	}

	var pFlags *pflag.FlagSet
	envPrefix := strings.ReplaceAll(c.CommandPath(), " ", "_")
	if parentVc != nil {
		if v := parentVc.Get("env_prefix"); v != nil {
			envPrefix = v.(string)
		}
		if v := parentVc.Get("pflags"); v != nil {
			pFlags = v.(*pflag.FlagSet)
		}
	}
	vc := NewViper(envPrefix)
	if pFlags != nil {
		BindPFlags(vc, pFlags)
	}
	return c, vc
}

func NewViper(envPrefix string) *viper.Viper {
	vc := viper.New()
	vc.AutomaticEnv()
	vc.SetEnvPrefix(envPrefix)
	vc.Set("env_prefix", envPrefix)
	return vc
}

func BindPFlags(vc *viper.Viper, pFlags *pflag.FlagSet) error {
	var bindPFlags *pflag.FlagSet
	if v := vc.Get("pflags"); v != nil {
		bindPFlags = v.(*pflag.FlagSet)
	} else {
		bindPFlags = pflag.NewFlagSet("pflags", pflag.ContinueOnError)
		vc.Set("pflags", bindPFlags)
	}
	bindPFlags.AddFlagSet(pFlags)
	return vc.BindPFlags(pFlags)
}

// ViperDecodeOptJson decodes with json tags. A string given for a
// json.RawMessage field is taken as the path of the file holding it.
func ViperDecodeOptJson(c *mapstructure.DecoderConfig) {
	c.TagName = "json"
	c.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		func(inputValType reflect.Type, outValType reflect.Type, input interface{}) (interface{}, error) {
			if outValType.Name() == "RawMessage" {
				if inputValType.Kind() == reflect.Map && inputValType.Key().Kind() == reflect.String {
					return json.Marshal(input)
				} else if inputValType.Kind() == reflect.String && input != "" {
					return os.ReadFile(input.(string))
				}
			}
			return input, nil
		},
		c.DecodeHook)
}

func ArgsWithDefaultErrorFunc(arg cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := arg(cmd, args); err != nil {
			return DefaultArgErrorFunc(cmd, err)
		}
		return nil
	}
}

func DefaultArgErrorFunc(cmd *cobra.Command, err error) error {
	cmd.Println("Usage: " + cmd.UseLine())
	return err
}

func DefaultFlagErrorFunc(cmd *cobra.Command, err error) error {
	names := make([]string, 0)
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		name := "--" + f.Name
		if f.Shorthand != "" {
			name = name + " or -" + f.Shorthand
		}
		names = append(names, name)
	})
	cmd.Println("Available Flags: " + strings.Join(names, ", "))
	return err
}

func JsonPrettyPrintln(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Errorf("failed JsonPrettyPrintln v=%+v, err=%+v", v, err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func JsonPrettySaveFile(filename string, perm os.FileMode, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Errorf("failed JsonPrettySaveFile v=%+v, err=%+v", v, err)
	}
	if err := os.MkdirAll(path.Dir(filename), 0700); err != nil {
		return errors.Errorf("fail to create directory %s err=%+v", filename, err)
	}
	if err := os.WriteFile(filename, b, perm); err != nil {
		return errors.Errorf("fail to save to the file=%s err=%+v", filename, err)
	}
	return nil
}

// readInput returns the content of the file p, or of stdin for "-".
func readInput(cmd *cobra.Command, p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	bs, err := os.ReadFile(p)
	if err != nil {
		return nil, errors.Errorf("fail to read file=%s err=%+v", p, err)
	}
	return bs, nil
}
