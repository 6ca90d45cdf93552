package commands

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/pslcheck/cli/internal/ui"
)

//go:embed rules/*.md
var ruleDocs embed.FS

// ruleNames returns the documented rules, sorted.
func ruleNames() []string {
	entries, err := ruleDocs.ReadDir("rules")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

func ruleDoc(name string) (string, error) {
	data, err := ruleDocs.ReadFile(path.Join("rules", strings.ToLower(name)+".md"))
	if err != nil {
		return "", fmt.Errorf("unknown rule %q; known rules: %s", name, strings.Join(ruleNames(), ", "))
	}
	return string(data), nil
}

// NewExplainCommand creates the explain command.
func NewExplainCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "explain [rule]",
		Short:     "Describe a validation rule",
		Long:      "Describe a validation rule. Without an argument the known rules are listed.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: ruleNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				ui.PrintSection("Rules")
				ui.PrintList(ruleNames())
				return nil
			}
			doc, err := ruleDoc(args[0])
			if err != nil {
				return err
			}
			return ui.PrintMarkdown(doc)
		},
	}
}
