package main

import (
	"fmt"
	"os"

	"github.com/temirov/lambda-version-cleaner/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main runs lambda-version-cleaner and exits non-zero when the run fails.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
