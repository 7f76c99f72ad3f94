package tally

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/midbel/tally/env"
)

// Runner executes a script one line at a time against a single shared
// environment. A failing line is reported and never stops the run.
type Runner struct {
	Env   env.Env[Value]
	Color bool

	out  io.Writer
	eval *Evaluator
}

func NewRunner(out io.Writer) *Runner {
	return &Runner{
		Env:  env.EmptyEnv[Value](),
		out:  out,
		eval: NewEvaluator(out),
	}
}

func (r *Runner) Run(in io.Reader) error {
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		r.RunLine(line)
	}
	return scan.Err()
}

// RunLine parses and evaluates one line. Expression results echo as
// "<line> = <value>"; assignments and prints echo nothing.
func (r *Runner) RunLine(line string) {
	expr, err := ParseLine(line)
	if err != nil {
		r.report(line, err)
		return
	}
	val, err := r.eval.Eval(expr, r.Env)
	if err != nil {
		r.report(line, err)
		return
	}
	if val == nil {
		return
	}
	fmt.Fprintf(r.out, "%s = %s\n", line, display(val))
}

var errLine = color.New(color.FgRed)

func (r *Runner) report(line string, err error) {
	msg := fmt.Sprintf("Error in line \"%s\": %s", line, err)
	if r.Color {
		errLine.Fprintln(r.out, msg)
		return
	}
	fmt.Fprintln(r.out, msg)
}

func display(val Value) string {
	if _, ok := val.Raw().(string); ok {
		return "\"" + val.String() + "\""
	}
	return val.String()
}
