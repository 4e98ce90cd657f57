package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/ren/internal/cli"
	"github.com/arthur-debert/ren/pkg/errors"
	"github.com/arthur-debert/ren/pkg/ui/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		// Bad invocations additionally get the usage text
		if errors.GetErrorCode(err) == errors.ErrUsage {
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Usage()
		}

		os.Exit(errors.ExitCode(err))
	}
}
