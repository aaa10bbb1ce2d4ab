package main

import (
	"os"

	"github.com/ryantking/faultdemo/internal/cli"
	"github.com/ryantking/faultdemo/internal/exitcode"
	"github.com/ryantking/faultdemo/internal/output"
)

func main() {
	if err := cli.Execute(); err != nil {
		output.Error(err)
		os.Exit(exitcode.FromError(err))
	}
}
