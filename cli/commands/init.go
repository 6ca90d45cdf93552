package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/pslcheck/cli/internal/config"
	"github.com/satishbabariya/pslcheck/cli/internal/ui"
	"github.com/satishbabariya/pslcheck/psl/connector"
	"github.com/satishbabariya/pslcheck/psl/core"
)

// prompter asks the questions of the init command.
type prompter interface {
	Select(message string, options []string, def string) (string, error)
	MultiSelect(message string, options []string) ([]string, error)
	Input(message, def string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Select{Message: message, Options: options, Default: def}, &answer)
	return answer, err
}

func (surveyPrompter) MultiSelect(message string, options []string) ([]string, error) {
	var answer []string
	err := survey.AskOne(&survey.MultiSelect{Message: message, Options: options}, &answer)
	return answer, err
}

func (surveyPrompter) Input(message, def string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer, survey.WithValidator(survey.Required))
	return answer, err
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer)
	return answer, err
}

type initOptions struct {
	output string
	yes    bool
	force  bool
}

// NewInitCommand creates the init command.
func NewInitCommand(a *app, p prompter) *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a pslcheck config file",
		Long: `Create a .pslcheck.yaml config file. The provider, preview features and
schema path are asked for interactively unless --yes is given, in which case
the flags and their defaults are used. A starter schema is written when the
schema file does not exist yet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, p, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", config.FileName+".yaml", "Config file to write")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "Do not prompt; use flags and defaults")
	flags.BoolVar(&opts.force, "force", false, "Overwrite an existing config file")
	flags.StringP("schema", "s", "", "Path to schema file")
	flags.StringP("provider", "p", "", "Datasource provider")
	flags.StringSlice("preview-feature", nil, "Enable a preview feature (repeatable)")

	return cmd
}

func (a *app) runInit(cmd *cobra.Command, p prompter, opts initOptions) error {
	if _, err := config.AppFs.Stat(opts.output); err == nil && !opts.force {
		if opts.yes {
			return fmt.Errorf("%s already exists (use --force to overwrite)", opts.output)
		}
		overwrite, err := p.Confirm(fmt.Sprintf("%s already exists. Overwrite it?", opts.output), false)
		if err != nil {
			return err
		}
		if !overwrite {
			ui.PrintInfo("Nothing written")
			return nil
		}
	}

	cfg := &config.Config{
		SchemaPath:      a.cfg.SchemaPath,
		Provider:        a.cfg.Provider,
		PreviewFeatures: a.cfg.PreviewFeatures,
		Jobs:            a.cfg.Jobs,
		Format:          a.cfg.Format,
	}
	if cfg.SchemaPath == "" {
		cfg.SchemaPath = filepath.Join("prisma", "schema.prisma")
	}
	if cfg.Provider == "" {
		cfg.Provider = connector.ProviderPostgres
	}
	if conn, err := connector.BuiltinRegistry().Lookup(cfg.Provider); err == nil {
		cfg.Provider = conn.ProviderName()
	}

	if !opts.yes {
		ui.PrintHeader("pslcheck", "Create a config file")
		if err := askConfig(p, cfg); err != nil {
			return err
		}
	}

	if _, err := connector.BuiltinRegistry().Lookup(cfg.Provider); err != nil {
		return err
	}
	var unknown []string
	for _, name := range cfg.PreviewFeatures {
		if _, ok := core.ParsePreviewFeature(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown preview features: %s", strings.Join(unknown, ", "))
	}

	if err := config.SaveConfig(cfg, opts.output); err != nil {
		return err
	}
	ui.PrintSuccess("Wrote %s", opts.output)

	created, err := writeStarterSchema(cfg)
	if err != nil {
		return err
	}
	if created {
		ui.PrintSuccess("Created starter schema %s", cfg.SchemaPath)
	}
	return nil
}

func askConfig(p prompter, cfg *config.Config) error {
	var err error
	if cfg.Provider, err = p.Select("Datasource provider:", connector.BuiltinRegistry().Providers(), cfg.Provider); err != nil {
		return err
	}
	if cfg.PreviewFeatures, err = p.MultiSelect("Preview features to enable:", core.ActiveFeatures()); err != nil {
		return err
	}
	if cfg.SchemaPath, err = p.Input("Schema path:", cfg.SchemaPath); err != nil {
		return err
	}
	return nil
}

// writeStarterSchema creates the schema file unless it exists already.
func writeStarterSchema(cfg *config.Config) (bool, error) {
	_, err := config.AppFs.Stat(cfg.SchemaPath)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, afero.ErrFileNotFound) {
		return false, fmt.Errorf("failed to stat %s: %w", cfg.SchemaPath, err)
	}
	if dir := filepath.Dir(cfg.SchemaPath); dir != "." {
		if err := config.AppFs.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(config.AppFs, cfg.SchemaPath, []byte(starterSchema(cfg)), 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", cfg.SchemaPath, err)
	}
	return true, nil
}

func starterSchema(cfg *config.Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "datasource db {\n  provider = %q\n  url      = env(\"DATABASE_URL\")\n}\n\n", cfg.Provider)
	b.WriteString("generator client {\n  provider = \"prisma-client-js\"\n")
	if len(cfg.PreviewFeatures) > 0 {
		quoted := make([]string, len(cfg.PreviewFeatures))
		for i, f := range cfg.PreviewFeatures {
			quoted[i] = fmt.Sprintf("%q", f)
		}
		fmt.Fprintf(&b, "  previewFeatures = [%s]\n", strings.Join(quoted, ", "))
	}
	b.WriteString(`}

model User {
  id    Int    @id
  email String @unique
  name  String

  @@index([name])
}
`)
	return b.String()
}
