// Command pslcheck validates the indexes of Prisma schema files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/satishbabariya/pslcheck/cli/commands"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

func main() {
	if err := commands.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		// diagnostics were already printed
		if !errors.Is(err, diagnostics.ErrValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
