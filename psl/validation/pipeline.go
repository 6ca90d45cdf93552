package validation

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/satishbabariya/pslcheck/internal/debug"
	"github.com/satishbabariya/pslcheck/psl/database"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// Options tune the validation pass.
type Options struct {
	// Jobs bounds the number of indexes validated concurrently.
	// Zero means runtime.GOMAXPROCS(0); one validates sequentially.
	Jobs int
}

func (o Options) jobs() int {
	if o.Jobs > 0 {
		return o.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

// ValidateIndexes runs every index rule against every index of the schema,
// then the model level fulltext rule. Each index gets its own diagnostics
// which are merged in index order, so the result does not depend on Jobs.
func ValidateIndexes(ctx *Context, opts Options) {
	indexes := ctx.Db.WalkIndexes()
	defer debug.Timed("Validated indexes", "indexes", len(indexes), "jobs", opts.jobs())()

	results := make([]diagnostics.Diagnostics, len(indexes))

	if jobs := opts.jobs(); jobs <= 1 || len(indexes) < 2 {
		for i, index := range indexes {
			results[i] = validateOne(ctx, index)
		}
	} else {
		// rules never fail, the group only bounds concurrency
		g, _ := errgroup.WithContext(context.Background())
		g.SetLimit(min(jobs, len(indexes)))
		for i, index := range indexes {
			g.Go(func() error {
				results[i] = validateOne(ctx, index)
				return nil
			})
		}
		_ = g.Wait()
	}

	for i := range results {
		ctx.Diagnostics.Merge(&results[i])
	}

	for _, model := range ctx.Db.WalkModels() {
		validateOnlyOneFulltextAttribute(ctx, model)
	}
}

func validateOne(ctx *Context, index *database.IndexWalker) diagnostics.Diagnostics {
	diags := diagnostics.NewDiagnostics()
	validateIndex(ctx.withDiagnostics(&diags), index)
	if n := diags.Len(); n > 0 {
		debug.Debug("Index rules fired",
			"model", index.Model().Name(),
			"attribute", index.AttributeName(),
			"diagnostics", n)
	}
	return diags
}
