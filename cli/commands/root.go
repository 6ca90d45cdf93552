// Package commands implements the pslcheck CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/satishbabariya/pslcheck/cli/internal/config"
	"github.com/satishbabariya/pslcheck/cli/internal/ui"
	"github.com/satishbabariya/pslcheck/cli/internal/version"
	"github.com/satishbabariya/pslcheck/internal/debug"
)

// flagKeys maps command line flags onto config keys. Flags win over the
// environment and the config file.
var flagKeys = map[string]string{
	"schema":          "schema_path",
	"provider":        "provider",
	"preview-feature": "preview_features",
	"jobs":            "jobs",
	"format":          "format",
	"probe":           "probe",
	"debug":           "debug",
	"no-color":        "no_color",
}

// newPrompter builds the prompter used by init.
var newPrompter = func() prompter { return surveyPrompter{} }

// app is the state shared by every command once flags and config are loaded.
type app struct {
	configFile string
	v          *viper.Viper
	cfg        *config.Config
}

func (a *app) load(cmd *cobra.Command) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return fmt.Errorf("failed to bind flags: %w", bindErr)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.v, a.cfg = v, cfg

	debug.InitWriter(cmd.ErrOrStderr(), cfg.Debug)
	ui.Out, ui.Err = cmd.OutOrStdout(), cmd.ErrOrStderr()
	ui.SetNoColor(cfg.NoColor)

	if used := v.ConfigFileUsed(); used != "" {
		debug.Debug("Loaded config", "file", used)
	}
	return nil
}

// NewRootCommand creates the pslcheck command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "pslcheck",
		Short: "Check the indexes of a Prisma schema",
		Long: `pslcheck validates the @@index, @@unique, @@fulltext and @unique
attributes of a Prisma schema against the capabilities of its database
connector and the enabled preview features.`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (default: .pslcheck.yaml in . or $HOME)")
	flags.Bool("debug", false, "Enable debug logging")
	flags.Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(
		NewValidateCommand(a),
		NewConnectorsCommand(a),
		NewFeaturesCommand(a),
		NewExplainCommand(a),
		NewInitCommand(a, newPrompter()),
		NewVersionCommand(a),
	)
	return cmd
}
