package exec

import (
	"context"
	"sync"

	"github.com/OmarAglan/arbsh/cmdlet"
	"github.com/OmarAglan/arbsh/parse"
	"github.com/OmarAglan/arbsh/sink"
	pool "github.com/jolestar/go-commons-pool"
)

// preparedStage is a pipeline stage fully resolved and bound, ready to run
// as a goroutine (spec.md §4.6.2's construction steps already applied).
type preparedStage struct {
	command string
	factory cmdlet.Factory
	bound   map[string]interface{}
	redirs  *stageRedirections
}

// buildPipeline resolves, materializes, and binds every command in a
// statement (spec.md §4.6.2). It stops at the first failure, reporting it
// to out and returning nil stages.
func buildPipeline(stmt parse.Statement, reg *cmdlet.Registry, session *SessionState, options *ExecutionOptions, out sink.ExecutionSink) []*preparedStage {
	stages := make([]*preparedStage, 0, len(stmt))
	for _, cmd := range stmt {
		c, ok := reg.Lookup(cmd.Name)
		if !ok {
			msg := "command not found: " + cmd.Name
			if hint, ok := reg.Suggest(cmd.Name); ok {
				msg += " (did you mean " + hint + "?)"
			}
			out.WriteError(msg)
			return nil
		}

		named := make(map[string]interface{}, len(cmd.Params))
		for _, p := range cmd.Params {
			if p.Value == nil {
				named[p.Name] = true
				continue
			}
			v, err := materialize(*p.Value, session, reg, options)
			if err != nil {
				out.WriteError(err.Error())
				return nil
			}
			named[p.Name] = v
		}

		positional := make([]interface{}, 0, len(cmd.Args))
		for _, a := range cmd.Args {
			v, err := materialize(a, session, reg, options)
			if err != nil {
				out.WriteError(err.Error())
				return nil
			}
			positional = append(positional, v)
		}

		bound, err := bindParameters(cmd.Name, c.Descriptor.Parameters, named, positional)
		if err != nil {
			out.WriteError(err.Error())
			return nil
		}

		redirTargets := make([]string, len(cmd.Redirs))
		for i, r := range cmd.Redirs {
			if r.Target == nil {
				continue
			}
			v, err := materialize(*r.Target, session, reg, options)
			if err != nil {
				out.WriteError(err.Error())
				return nil
			}
			redirTargets[i] = projectToString(v)
		}
		entries := make([]parse.RedirectionEntry, len(cmd.Redirs))
		copy(entries, cmd.Redirs)
		redirs, err := openRedirections(entries, redirTargets, session.WorkingDir)
		if err != nil {
			out.WriteError(err.Error())
			return nil
		}

		stages = append(stages, &preparedStage{
			command: cmd.Name,
			factory: c.New,
			bound:   bound,
			redirs:  redirs,
		})
	}
	return stages
}

// runPipeline runs every stage concurrently, wired stdout-to-stdin by
// bounded channels (spec.md §4.6.3). The final stage's output is drained
// to out.
func runPipeline(ctx context.Context, stages []*preparedStage, options *ExecutionOptions, out sink.ExecutionSink, bufPool *pool.ObjectPool) *Aggregate {
	agg := &Aggregate{}
	var aggMu sync.Mutex
	recordErr := func(e *ExecError) {
		aggMu.Lock()
		agg.add(e)
		aggMu.Unlock()
		out.WriteError(e.Error())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	var in chan interface{}

	for _, stage := range stages {
		stageOut := make(chan interface{}, options.PipelineBufferSize)
		wg.Add(1)
		go runStage(ctx, cancel, stage, in, stageOut, bufPool, &wg, recordErr)
		in = stageOut
	}

	final := in
	if final != nil {
		for v := range final {
			out.WriteObject(sink.StringObject(projectToString(v)))
			if options.Tap != nil {
				options.Tap.publish(v)
			}
		}
	}
	wg.Wait()

	for _, s := range stages {
		s.redirs.closeAll()
	}

	if agg.empty() {
		return nil
	}
	return agg
}

func runStage(ctx context.Context, cancel context.CancelFunc, stage *preparedStage, in <-chan interface{}, out chan<- interface{}, bufPool *pool.ObjectPool, wg *sync.WaitGroup, recordErr func(*ExecError)) {
	defer wg.Done()
	defer close(out)

	emit := func(v interface{}) {
		s := projectToString(v)
		stage.redirs.writeRecord(s)
		if stage.redirs.mergeOutToErr {
			recordErr(&ExecError{Kind: PipelineStageError, Command: stage.command, Message: s})
			return
		}
		select {
		case out <- v:
		case <-ctx.Done():
		}
	}

	inst, err := stage.factory(stage.bound, emit)
	if err != nil {
		recordErr(&ExecError{Kind: PipelineStageError, Command: stage.command, Message: err.Error()})
		cancel()
		return
	}

	borrowed, poolErr := bufPool.BorrowObject(ctx)
	var batch []interface{}
	if poolErr == nil {
		batch, _ = borrowed.([]interface{})
	}
	defer func() {
		if poolErr == nil {
			bufPool.ReturnObject(ctx, batch[:0])
		}
	}()

	reportStageErr := func(err error) {
		if stage.redirs.mergeErrToOut {
			emit(err.Error())
			return
		}
		recordErr(&ExecError{Kind: PipelineStageError, Command: stage.command, Message: err.Error()})
	}

	if err := inst.BeginProcessing(); err != nil {
		reportStageErr(err)
		cancel()
		return
	}

	for _, line := range stage.redirs.inputLines {
		if err := inst.ProcessRecord(line); err != nil {
			reportStageErr(err)
			cancel()
			return
		}
	}

	if in != nil {
		for {
			v, ok := <-in
			if !ok {
				break
			}
			select {
			case <-ctx.Done():
				return
			default:
			}
			batch = append(batch, v)
			// Opportunistically drain whatever is already queued, up to
			// the pooled buffer's capacity, instead of taking the
			// channel-receive/select path once per record.
		drain:
			for len(batch) < cap(batch) {
				select {
				case v2, ok2 := <-in:
					if !ok2 {
						break drain
					}
					batch = append(batch, v2)
				default:
					break drain
				}
			}
			for _, item := range batch {
				if err := inst.ProcessRecord(item); err != nil {
					reportStageErr(err)
					cancel()
					return
				}
			}
			batch = batch[:0]
		}
	}

	if err := inst.EndProcessing(); err != nil {
		reportStageErr(err)
		cancel()
	}
}
