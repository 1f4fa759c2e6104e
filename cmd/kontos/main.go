package main

import (
	"os"

	"github.com/zkkontos/kontos-go/cmd/cli"
	"github.com/zkkontos/kontos-go/common/errors"
	"github.com/zkkontos/kontos-go/common/log"
)

var (
	version = "unknown"
	build   = "unknown"
)

func main() {
	rootCmd, _ := cli.NewKontosCmd(version, build)
	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode returns 2 for broken invariants, with the stack logged, and 1
// for everything else.
func exitCode(err error) int {
	if errors.IsCritical(err) {
		log.Errorf("%+v", err)
		return 2
	}
	return 1
}
