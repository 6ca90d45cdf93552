package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/pslcheck/cli/internal/config"
	"github.com/satishbabariya/pslcheck/cli/internal/ui"
	"github.com/satishbabariya/pslcheck/cli/internal/watch"
	"github.com/satishbabariya/pslcheck/internal/debug"
	"github.com/satishbabariya/pslcheck/psl"
	"github.com/satishbabariya/pslcheck/psl/connector"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

const probeTimeout = 10 * time.Second

// NewValidateCommand creates the validate command.
func NewValidateCommand(a *app) *cobra.Command {
	var (
		watchMode   bool
		showIndexes bool
	)

	cmd := &cobra.Command{
		Use:   "validate [schema]",
		Short: "Validate the indexes of a Prisma schema",
		Long: `Validate the index, unique and fulltext attributes of a Prisma schema.

The schema is looked up in this order: the positional argument, --schema,
schema_path from the config file, ./schema.prisma and ./prisma/schema.prisma.
The connector comes from the datasource provider unless --provider is given.

With --probe the datasource url is used to read the database server version,
and capabilities the server lacks are disabled before validating.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit := ""
			if len(args) > 0 {
				explicit = args[0]
			}
			return a.runValidate(cmd, explicit, watchMode, showIndexes)
		},
	}

	flags := cmd.Flags()
	flags.StringP("schema", "s", "", "Path to schema file")
	flags.StringP("provider", "p", "", "Validate against this provider instead of the datasource's")
	flags.StringSlice("preview-feature", nil, "Enable a preview feature (repeatable)")
	flags.IntP("jobs", "j", 0, "Parallel index validations (default: GOMAXPROCS)")
	flags.StringP("format", "f", config.FormatPretty, "Output format: pretty, json or short")
	flags.Bool("probe", false, "Refine connector capabilities from the live database")
	flags.BoolVarP(&watchMode, "watch", "w", false, "Re-validate whenever the schema changes")
	flags.BoolVar(&showIndexes, "indexes", false, "List every index with its database name")

	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, explicit string, watchMode, showIndexes bool) error {
	path, err := config.ResolveSchemaPath(explicit, a.cfg)
	if err != nil {
		return err
	}
	if err := config.LoadEnv(filepath.Dir(path)); err != nil {
		return err
	}

	if !watchMode {
		return a.validateOnce(cmd, path, showIndexes)
	}

	w, err := watch.NewWatcher(path, func() error {
		err := a.validateOnce(cmd, path, showIndexes)
		if errors.Is(err, diagnostics.ErrValidationFailed) {
			return nil
		}
		return err
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ui.PrintInfo("Watching %s for changes (Ctrl+C to stop)", path)
	return w.Run(ctx)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// validateOnce validates path and renders the result. It returns an error
// wrapping diagnostics.ErrValidationFailed when the schema has errors.
func (a *app) validateOnce(cmd *cobra.Command, path string, showIndexes bool) error {
	text, err := config.ReadFile(path)
	if err != nil {
		return err
	}

	file := psl.NewSourceFile(path, text)
	opts := psl.Config{
		Provider:        a.cfg.Provider,
		PreviewFeatures: a.cfg.PreviewFeatures,
		Jobs:            a.cfg.Jobs,
	}
	res := psl.Validate(file, opts)
	if a.cfg.Probe && res.Connector != nil {
		res = probeAndRevalidate(commandContext(cmd), file, opts, res)
	}

	if err := render(cmd.OutOrStdout(), a.cfg.Format, path, text, &res, showIndexes); err != nil {
		return err
	}
	return res.Diagnostics.ToResult()
}

// probeAndRevalidate reads the server version behind the datasource url and
// validates again with the capabilities that server actually has.
func probeAndRevalidate(ctx context.Context, file psl.SourceFile, opts psl.Config, res psl.ValidatedSchema) psl.ValidatedSchema {
	if len(res.Datasources) == 0 {
		ui.PrintWarning("--probe needs a datasource block; skipping")
		return res
	}
	source := res.Datasources[0]
	url, err := source.LoadURL(os.LookupEnv)
	if err != nil {
		var dmErr diagnostics.DatamodelError
		if errors.As(err, &dmErr) {
			res.Diagnostics.PushError(dmErr)
		}
		return res
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	server, err := connector.Probe(ctx, res.Connector.ProviderName(), url)
	if err != nil {
		ui.PrintWarning("Could not probe the database: %v", err)
		return res
	}
	debug.Debug("Revalidating with server info", "provider", server.Provider, "version", server.Raw)

	opts.Server = server
	return psl.Validate(file, opts)
}

func render(w io.Writer, format, path, text string, res *psl.ValidatedSchema, showIndexes bool) error {
	diags := &res.Diagnostics
	switch format {
	case config.FormatJSON:
		return diags.WriteJSON(w, path, text)
	case config.FormatShort:
		_, err := io.WriteString(w, diags.ShortString(path, text))
		return err
	}

	fmt.Fprint(w, diags.WarningsToPrettyString(path, text))
	fmt.Fprint(w, diags.ToPrettyString(path, text))

	counts := ui.Counts(len(diags.Errors()), len(diags.Warnings()))
	if diags.HasErrors() {
		ui.PrintError("%s: %s", path, counts)
		return nil
	}
	ui.PrintSuccess("%s is valid for %s (%s)", path, res.Connector.Name(), counts)
	if showIndexes {
		return printIndexes(res)
	}
	return nil
}

func printIndexes(res *psl.ValidatedSchema) error {
	var rows [][]string
	for _, index := range res.Db.WalkIndexes() {
		fields := make([]string, 0, len(index.Fields()))
		for _, f := range index.Fields() {
			fields = append(fields, f.ScalarField().Name())
		}
		rows = append(rows, []string{
			index.Model().Name(),
			index.AttributeName(),
			strings.Join(fields, ", "),
			index.FinalDatabaseName(),
			strconv.FormatBool(index.MappedName() != nil),
		})
	}
	if len(rows) == 0 {
		return nil
	}
	fmt.Fprintln(ui.Out)
	return ui.PrintTable([]string{"Model", "Attribute", "Fields", "Database name", "Mapped"}, rows)
}
