package main

import (
	"fmt"
	"os"

	"github.com/cosmos/interchain-security-model/cmd/ccv-model/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
