package main

import (
	"fmt"
	"io"
	"os"

	"github.com/trezcool/studylab/core"
)

var newConfigFunc = core.NewConfig // mockable

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// runMain loads the config and runs the command line, returning the exit code.
func runMain(args []string, out, errOut io.Writer) int {
	conf, err := newConfigFunc()
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return exitError
	}
	return newCommandLine(conf, out, errOut).run(args)
}
