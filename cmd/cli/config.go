package cli

import (
	"encoding/json"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/zkkontos/kontos-go/common/amino"
	"github.com/zkkontos/kontos-go/common/errors"
	"github.com/zkkontos/kontos-go/common/log"
	"github.com/zkkontos/kontos-go/common/wallet"
	"github.com/zkkontos/kontos-go/module"
)

type Config struct {
	Prefix       string          `json:"prefix" validate:"optional,alphanum,t_lower"`
	KeyStoreData json.RawMessage `json:"key_store,omitempty"`
	KeyStorePass string          `json:"key_password,omitempty"`
	KeySecret    string          `json:"key_secret,omitempty" validate:"optional,file"`
	LogLevel     string          `json:"log_level" validate:"optional,oneof=trace debug info warn warning error fatal panic"`
	LogFile      string          `json:"log_file,omitempty"`

	FilePath    string `json:"-"`
	Interactive bool   `json:"-"`
}

var configValidator = amino.NewValidator()

// MergeWithViper fills cfg from the config file, then the environment and
// the flags bound to vc.
func MergeWithViper(vc *viper.Viper, cfg *Config) error {
	if cfg.FilePath != "" {
		f, err := os.Open(cfg.FilePath)
		if err != nil {
			return errors.Errorf("fail to open config file=%s err=%+v", cfg.FilePath, err)
		}
		defer f.Close()
		vc.SetConfigType("json")
		if err = vc.ReadConfig(f); err != nil {
			return errors.Errorf("fail to read config file=%s err=%+v", cfg.FilePath, err)
		}
	}
	if err := vc.Unmarshal(cfg, ViperDecodeOptJson); err != nil {
		return errors.Errorf("fail to unmarshall config err=%+v", err)
	}
	return cfg.Validate()
}

func (cfg *Config) Validate() error {
	if err := configValidator.Validate(cfg); err != nil {
		return errors.IllegalArgumentError.Wrapf(err, "InvalidConfig(err=%v)", err)
	}
	return nil
}

// ApplyLog sets the level and the file copy of the global logger.
func (cfg *Config) ApplyLog() error {
	logger := log.GlobalLogger()
	if cfg.LogLevel != "" {
		lv, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logger.SetConsoleLevel(lv)
	}
	if cfg.LogFile != "" {
		w, err := log.NewWriter(&log.WriterConfig{
			Filename:   cfg.LogFile,
			MaxSize:    100,
			MaxBackups: 3,
			Compress:   true,
		})
		if err != nil {
			return err
		}
		logger.SetFileWriter(w)
	}
	return nil
}

func readPassword(prompt string) ([]byte, error) {
	os.Stderr.WriteString(prompt)
	pb, err := term.ReadPassword(int(syscall.Stdin))
	os.Stderr.WriteString("\n")
	return pb, err
}

// Password returns the key store password from the prompt, the secret file
// or the configured password in that order.
func (cfg *Config) Password(prompt string) ([]byte, error) {
	if cfg.Interactive {
		return readPassword(prompt)
	}
	if cfg.KeySecret != "" {
		pb, err := os.ReadFile(cfg.KeySecret)
		if err != nil {
			return nil, errors.Errorf("fail to open KeySecret file=%s err=%+v", cfg.KeySecret, err)
		}
		return []byte(strings.TrimRight(string(pb), "\r\n")), nil
	}
	return []byte(cfg.KeyStorePass), nil
}

// Wallet opens the configured key store.
func (cfg *Config) Wallet() (module.Signer, error) {
	if len(cfg.KeyStoreData) == 0 {
		return nil, errors.IllegalArgumentError.New("NoKeyStore(set key_store)")
	}
	pb, err := cfg.Password("Password: ")
	if err != nil {
		return nil, err
	}
	w, err := wallet.NewFromKeyStore(cfg.KeyStoreData, pb, cfg.Prefix)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to decrypt KeyStore err=%v", err)
	}
	return w, nil
}
