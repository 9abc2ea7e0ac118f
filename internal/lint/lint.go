// Package lint runs a rule set over a batch of commit messages.
package lint

import (
	"context"
	"runtime"

	"github.com/wizzomafizzo/commitlint/internal/logging"
	"github.com/wizzomafizzo/commitlint/internal/message"
	"github.com/wizzomafizzo/commitlint/internal/rules"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of linting one message.
type Result struct {
	Message    *message.Message
	Violations []rules.Violation
}

// Count returns the number of violations at level.
func (r Result) Count(level rules.Level) int {
	n := 0
	for _, v := range r.Violations {
		if v.Level == level {
			n++
		}
	}
	return n
}

// HasErrors reports whether any violation is at error level.
func (r Result) HasErrors() bool {
	return r.Count(rules.LevelError) > 0
}

// Summary totals a batch of results.
type Summary struct {
	Messages int
	Errors   int
	Warnings int
}

// Summarize counts error and warning violations across results. Ignored
// violations are not counted.
func Summarize(results []Result) Summary {
	s := Summary{Messages: len(results)}
	for _, r := range results {
		s.Errors += r.Count(rules.LevelError)
		s.Warnings += r.Count(rules.LevelWarning)
	}
	return s
}

// Failed reports whether the batch must fail the run.
func (s Summary) Failed() bool {
	return s.Errors > 0
}

// Linter validates messages against a fixed rule set. It is safe for
// concurrent use.
type Linter struct {
	rules   *rules.Rules
	workers int
}

// New creates a Linter for rs. rs must not be modified while linting.
func New(rs *rules.Rules) *Linter {
	return &Linter{rules: rs, workers: runtime.NumCPU()}
}

// Lint parses and validates every raw message. Results are returned in input
// order. The only error is cancellation of ctx.
func (l *Linter) Lint(ctx context.Context, raws []string) ([]Result, error) {
	log := logging.Get(ctx)

	active := l.rules.Active()
	names := make([]string, len(active))
	for i, rule := range active {
		names[i] = rule.Name()
	}
	log.Debug().Int("messages", len(raws)).Strs("rules", names).Msg("linting commit messages")

	results := make([]Result, len(raws))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)

	for i, raw := range raws {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			msg := message.Parse(raw)
			// Each goroutine owns its slot.
			results[i] = Result{Message: msg, Violations: l.rules.Validate(msg)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := Summarize(results)
	log.Debug().
		Int("messages", summary.Messages).
		Int("errors", summary.Errors).
		Int("warnings", summary.Warnings).
		Msg("lint finished")

	return results, nil
}
