// Package output renders lint results for the terminal.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/commitlint/internal/lint"
	"github.com/wizzomafizzo/commitlint/internal/rules"
)

const (
	errorSymbol   = "✖"
	warningSymbol = "⚠"
	inputSymbol   = "⧗"
)

// Printer writes violations and a summary line. Color follows color.NoColor.
type Printer struct {
	out     io.Writer
	errorC  *color.Color
	warnC   *color.Color
	subtleC *color.Color
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:     out,
		errorC:  color.New(color.FgRed, color.Bold),
		warnC:   color.New(color.FgYellow, color.Bold),
		subtleC: color.New(color.Faint),
	}
}

// Print renders every result with visible violations, then the summary when
// anything was reported. Ignore-level violations are never printed.
func (p *Printer) Print(results []lint.Result) lint.Summary {
	summary := lint.Summarize(results)

	for _, result := range results {
		visible := visibleViolations(result.Violations)
		if len(visible) == 0 {
			continue
		}

		subject := ""
		if result.Message.Subject != nil {
			subject = *result.Message.Subject
		}
		_, _ = p.subtleC.Fprintf(p.out, "%s   input: %s\n", inputSymbol, subject)

		for _, v := range visible {
			p.printViolation(v)
		}
		_, _ = fmt.Fprintln(p.out)
	}

	if summary.Errors > 0 || summary.Warnings > 0 {
		p.printSummary(summary)
	}
	return summary
}

func (p *Printer) printViolation(v rules.Violation) {
	switch v.Level {
	case rules.LevelError:
		_, _ = p.errorC.Fprint(p.out, errorSymbol)
	case rules.LevelWarning:
		_, _ = p.warnC.Fprint(p.out, warningSymbol)
	default:
		return
	}
	_, _ = fmt.Fprintf(p.out, "   %s\n", v.Message)
}

func (p *Printer) printSummary(s lint.Summary) {
	symbol, c := warningSymbol, p.warnC
	if s.Failed() {
		symbol, c = errorSymbol, p.errorC
	}
	_, _ = c.Fprint(p.out, symbol)
	_, _ = fmt.Fprintf(p.out, "   found %d %s, %d %s in %d %s\n",
		s.Errors, plural(s.Errors, "error"),
		s.Warnings, plural(s.Warnings, "warning"),
		s.Messages, plural(s.Messages, "message"))
}

func visibleViolations(violations []rules.Violation) []rules.Violation {
	visible := make([]rules.Violation, 0, len(violations))
	for _, v := range violations {
		if v.Level == rules.LevelError || v.Level == rules.LevelWarning {
			visible = append(visible, v)
		}
	}
	return visible
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
