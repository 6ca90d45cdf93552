package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/pslcheck/cli/internal/ui"
	"github.com/satishbabariya/pslcheck/cli/internal/version"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(a *app) *cobra.Command {
	var (
		check  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Fprintln(out, info.FullString())

			if check == "" {
				return nil
			}
			cmp, err := version.Check(info.Version, check)
			if err != nil {
				return err
			}
			switch cmp {
			case version.Outdated:
				ui.PrintWarning("pslcheck %s is older than %s", info.Version, check)
				ui.PrintInfo("Update with: go install github.com/satishbabariya/pslcheck/cmd/pslcheck@latest")
			default:
				ui.PrintSuccess("pslcheck %s is %s (compared to %s)", info.Version, cmp, check)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&check, "check", "", "Compare against this version, e.g. the latest release")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version information as JSON")
	return cmd
}
