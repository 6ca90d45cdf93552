package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/pslcheck/cli/internal/ui"
	"github.com/satishbabariya/pslcheck/psl/core"
)

var stageNames = map[core.FeatureStage]string{
	core.StageActive:     "preview",
	core.StageStabilized: "stable",
	core.StageDeprecated: "deprecated",
}

// NewFeaturesCommand creates the features command.
func NewFeaturesCommand(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "features",
		Short: "List the known preview features",
		Long: `List the preview features that can be enabled in previewFeatures or with
--preview-feature. Stabilized and deprecated names are only shown with --all.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, f := range core.AllFeatures() {
				if !all && f.Stage() != core.StageActive {
					continue
				}
				rows = append(rows, []string{f.String(), stageNames[f.Stage()]})
			}
			return ui.PrintTable([]string{"Feature", "Stage"}, rows)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include stabilized and deprecated features")
	return cmd
}
