package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jenniferntran/gitlet/cmd/ui"
	gerr "github.com/jenniferntran/gitlet/pkg/common/err"
)

var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	CommitSHA = "unknown"
)

func main() {
	a := newApp(os.Stdout, os.Stderr)
	os.Exit(a.run(context.Background(), os.Args[1:]))
}

// run executes one command and returns the process exit status. Operator
// errors print their single line on stdout; anything else is reported on
// stderr.
func (a *app) run(ctx context.Context, args []string) int {
	root := a.newRootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if line, ok := gerr.Reported(err); ok {
		fmt.Fprintln(a.stdout, line)
		return 1
	}
	reportInternal(a.stderr, err)
	return 1
}

func reportInternal(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", ui.ErrorMessage("Error:"), err)
}
