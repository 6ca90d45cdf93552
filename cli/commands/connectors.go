package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/pslcheck/cli/internal/ui"
	"github.com/satishbabariya/pslcheck/psl/connector"
)

// NewConnectorsCommand creates the connectors command.
func NewConnectorsCommand(a *app) *cobra.Command {
	var showScopes bool

	cmd := &cobra.Command{
		Use:   "connectors",
		Short: "List the builtin connectors and their index capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := connector.BuiltinRegistry()
			if showScopes {
				return ui.PrintTable(scopeTable(registry))
			}
			return ui.PrintTable(capabilityTable(registry))
		},
	}

	cmd.Flags().BoolVar(&showScopes, "scopes", false, "Show constraint name scopes instead of capabilities")
	return cmd
}

func capabilityTable(registry *connector.Registry) ([]string, [][]string) {
	headers := []string{"Connector", "Provider"}
	for _, c := range connector.IndexCapabilities {
		headers = append(headers, c.String())
	}

	var rows [][]string
	for _, conn := range registry.All() {
		row := []string{conn.Name(), conn.ProviderName()}
		for _, c := range connector.IndexCapabilities {
			mark := "-"
			if conn.HasCapability(c) {
				mark = "✓"
			}
			row = append(row, mark)
		}
		rows = append(rows, row)
	}
	return headers, rows
}

func scopeTable(registry *connector.Registry) ([]string, [][]string) {
	headers := []string{"Connector", "Max identifier", "Name scopes"}
	var rows [][]string
	for _, conn := range registry.All() {
		scopes := make([]string, 0, len(conn.ConstraintViolationScopes()))
		for _, s := range conn.ConstraintViolationScopes() {
			scopes = append(scopes, s.Description("<model>"))
		}
		rows = append(rows, []string{
			conn.Name(),
			strconv.Itoa(conn.MaxIdentifierLength()),
			strings.Join(scopes, "; "),
		})
	}
	return headers, rows
}
