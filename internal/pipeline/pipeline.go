// Package pipeline orchestrates one analysis request end to end:
// resolve the input, invoke the generative backend, validate its
// output, derive the meter, and emit the event stream. Nothing may
// escape the boundary of Stream or Execute; every failure becomes a
// terminal error event or a Fault.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fitellieburger/ask-better-questions/internal/model"
	"github.com/fitellieburger/ask-better-questions/internal/normalize"
	"github.com/fitellieburger/ask-better-questions/internal/resolve"
	"github.com/fitellieburger/ask-better-questions/pkg/llm"
)

const (
	stageReading  = "Reading the article closely…"
	stageAsking   = "Asking better questions…"
	stageChecking = "Checking the answers…"
)

type Pipeline struct {
	resolver  *resolve.Resolver
	generator llm.Generator
	timeout   time.Duration
}

func New(resolver *resolve.Resolver, generator llm.Generator, timeout time.Duration) *Pipeline {
	return &Pipeline{resolver: resolver, generator: generator, timeout: timeout}
}

// Request is one fully-parsed analysis request.
type Request struct {
	Mode    model.Mode
	Resolve resolve.Request
}

// Outcome is the terminal payload of a successful run: exactly one of
// Choice or Result is set.
type Outcome struct {
	Choice *ChoiceData
	Result *ResultData
}

// Stream runs the pipeline and feeds events to emit in order. The
// stream always ends with exactly one terminal event; panics are
// recovered and converted rather than propagated.
func (p *Pipeline) Stream(ctx context.Context, req Request, emit func(Event)) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("pipeline panic", "panic", r, "mode", req.Mode)
			emit(errorEvent(&Fault{Kind: FaultInternal, Message: genericMessage, Detail: fmt.Sprint(r)}))
		}
	}()

	out, err := p.run(ctx, req, func(stage string) {
		emit(progressEvent(stage))
	})
	if err != nil {
		fault := classify(err)
		slog.Error("analysis failed", "error", err, "mode", req.Mode, "kind", fault.Kind)
		emit(errorEvent(fault))
		return
	}

	if out.Choice != nil {
		emit(choiceEvent(out.Choice))
		return
	}
	emit(resultEvent(out.Result))
}

// Execute runs the pipeline without progress events, for the
// non-streaming route. The returned Fault carries the HTTP status.
func (p *Pipeline) Execute(ctx context.Context, req Request) (out *Outcome, fault *Fault) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("pipeline panic", "panic", r, "mode", req.Mode)
			out = nil
			fault = &Fault{Kind: FaultInternal, Message: genericMessage, Detail: fmt.Sprint(r)}
		}
	}()

	result, err := p.run(ctx, req, func(string) {})
	if err != nil {
		f := classify(err)
		slog.Error("analysis failed", "error", err, "mode", req.Mode, "kind", f.Kind)
		return nil, f
	}
	return result, nil
}

func (p *Pipeline) run(ctx context.Context, req Request, progress func(string)) (*Outcome, error) {
	res, err := p.resolver.Resolve(ctx, req.Resolve)
	if err != nil {
		return nil, err
	}

	if res.Kind == resolve.KindChoice {
		return &Outcome{Choice: &ChoiceData{
			Mode:        string(req.Mode),
			NeedsChoice: true,
			SourceURL:   res.SourceURL,
			Candidates:  res.Candidates,
		}}, nil
	}

	progress(stageReading)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if req.Mode == model.ModeBundle {
		return p.runBundle(ctx, res.Text, progress)
	}
	return p.runSingle(ctx, res.Text, req.Mode, progress)
}

func (p *Pipeline) runSingle(ctx context.Context, text string, mode model.Mode, progress func(string)) (*Outcome, error) {
	progress(stageAsking)

	parsed, err := llm.Invoke(ctx, p.generator, llm.BuildPrompt(text, mode))
	if err != nil {
		return nil, err
	}

	progress(stageChecking)

	set, err := normalize.NormalizeSet(parsed, mode)
	if err != nil {
		return nil, err
	}

	data := &ResultData{Mode: string(mode), Items: set.Items, Meta: set.Meta}
	if set.Meta != nil {
		meter := model.ComputeMeter(*set.Meta)
		data.Meter = &meter
	}
	return &Outcome{Result: data}, nil
}

// runBundle fans out one invocation per sub-mode and joins them
// before anything is emitted. All three must succeed; there is no
// partial bundle.
func (p *Pipeline) runBundle(ctx context.Context, text string, progress func(string)) (*Outcome, error) {
	progress(stageAsking)

	subModes := model.SubModes()
	sets := make([]*normalize.SetResult, len(subModes))

	g, gctx := errgroup.WithContext(ctx)
	for i, sub := range subModes {
		g.Go(func() error {
			parsed, err := llm.Invoke(gctx, p.generator, llm.BuildPrompt(text, sub))
			if err != nil {
				return err
			}
			set, err := normalize.NormalizeSet(parsed, sub)
			if err != nil {
				return err
			}
			sets[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	progress(stageChecking)

	fast, deeper, cliff := sets[0], sets[1], sets[2]

	// Fast meta is canonical; the prompts push all three toward the
	// same scores, so divergence is only worth a warning.
	warnIfMetaDiverges(fast.Meta, deeper.Meta, "deeper")
	warnIfMetaDiverges(fast.Meta, cliff.Meta, "cliff")

	data := &ResultData{
		Mode: string(model.ModeBundle),
		Bundle: &model.Bundle{
			Fast:   fast.Items,
			Deeper: deeper.Items,
			Cliff:  cliff.Items,
		},
		Meta: fast.Meta,
	}
	if fast.Meta != nil {
		meter := model.ComputeMeter(*fast.Meta)
		data.Meter = &meter
	}
	return &Outcome{Result: data}, nil
}

func warnIfMetaDiverges(fast, other *model.Meta, set string) {
	if fast == nil || other == nil {
		return
	}
	d := abs(fast.Support-other.Support) + abs(fast.Heat-other.Heat) + abs(fast.Neutrality-other.Neutrality)
	if d >= 15 {
		slog.Warn("bundle meta diverges from fast set", "set", set, "delta", d)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
