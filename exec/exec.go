package exec

import (
	"context"

	"github.com/OmarAglan/arbsh/cmdlet"
	"github.com/OmarAglan/arbsh/parse"
	"github.com/OmarAglan/arbsh/sink"
	pool "github.com/jolestar/go-commons-pool"
)

// Execute runs every statement in order against reg, reporting results
// and failures through out (spec.md §4.6). A failure in one statement
// does not abort later statements (§4.6.1); every stage error across the
// whole call is collected into the returned Aggregate.
func Execute(statements []parse.Statement, reg *cmdlet.Registry, out sink.ExecutionSink, options *ExecutionOptions, session *SessionState) error {
	if options == nil {
		options = DefaultOptions()
	}
	ctx := context.Background()
	bufPool := newBatchBufferPool(ctx)
	defer bufPool.Close(ctx)

	var overall *Aggregate
	for _, stmt := range statements {
		stages := buildPipeline(stmt, reg, session, options, out)
		if stages == nil {
			// Construction failed; already reported via out. Move on to
			// the next statement (§4.6.1).
			continue
		}
		if agg := runPipeline(ctx, stages, options, out, bufPool); agg != nil {
			if overall == nil {
				overall = &Aggregate{}
			}
			overall.Errors = append(overall.Errors, agg.Errors...)
		}
	}
	if overall.empty() {
		return nil
	}
	return overall
}

// newBatchBufferPool pools the []interface{} scratch buffers each
// pipeline stage borrows while draining its input channel, avoiding
// per-statement allocation churn across repeated pipeline construction
// (spec.md §4.6.3, SPEC_FULL.md's domain stack wiring for
// go-commons-pool).
func newBatchBufferPool(ctx context.Context) *pool.ObjectPool {
	factory := pool.NewPooledObjectFactorySimple(
		func(ctx context.Context) (interface{}, error) {
			return make([]interface{}, 0, 16), nil
		},
	)
	return pool.NewObjectPool(ctx, factory, pool.NewDefaultPoolConfig())
}
